package billing

import (
	"boutique/internal/advisory"
	"boutique/internal/billing/controller"
	"boutique/internal/billing/service"
	"boutique/internal/billing/usecase"
	"boutique/internal/config"
	"boutique/internal/infrastructure/metrics"
	"boutique/internal/ledger"

	"go.uber.org/zap"
)

func NewModule(
	cfg config.StoreConfig,
	orders *ledger.Ledger,
	advisor *advisory.Service,
	products controller.ProductFinder,
	storeMetrics *metrics.StoreMetrics,
	logger *zap.Logger,
) (*service.BillingService, *controller.BillingController, error) {
	ids, err := service.NewOrderIDGenerator(cfg.Code)
	if err != nil {
		return nil, nil, err
	}

	svc := service.NewBillingService(orders, advisor, ids, storeMetrics, logger)
	return svc, controller.NewBillingController(svc, usecase.NewCheckoutUseCase(svc), products, logger), nil
}
