package catalog

import (
	"boutique/internal/catalog/repository"
	"boutique/internal/config"

	"go.uber.org/zap"
)

// NewModule loads the catalog seed (the configured file, or the bundled default)
// and returns the service together with its HTTP controller.
func NewModule(cfg config.StoreConfig, logger *zap.Logger) (Service, *Controller, error) {
	var (
		repo *repository.YAMLRepository
		err  error
	)
	if cfg.CatalogPath != "" {
		repo, err = repository.NewYAMLFileRepository(cfg.CatalogPath)
	} else {
		repo, err = repository.NewDefaultRepository()
	}
	if err != nil {
		return nil, nil, err
	}

	svc := NewService(repo)
	return svc, NewController(NewSearchUseCase(svc), logger), nil
}
