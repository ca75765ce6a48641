package catalog

import (
	"net/http"

	"boutique/internal/commons"
	"boutique/internal/domain"
	apperrors "boutique/internal/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Controller struct {
	useCase SearchUseCase
	logger  *zap.Logger
}

func NewController(useCase SearchUseCase, logger *zap.Logger) *Controller {
	return &Controller{
		useCase: useCase,
		logger:  logger,
	}
}

func (c *Controller) HandleSearchProducts(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()

	query := r.URL.Query().Get("q")
	category := domain.Category(r.URL.Query().Get("category"))
	if category != "" && category != CategoryAll && !category.Valid() {
		commons.WriteValidationError(w, traceID, "unknown category", c.logger, apperrors.ValidationDetail{
			Field:   "category",
			Message: "category must be one of the catalog categories or All",
		})
		return
	}

	resp, err := c.useCase.SearchProducts(r.Context(), query, category)
	if err != nil {
		commons.WriteError(w, traceID, err, c.logger)
		return
	}

	commons.WriteJSON(w, http.StatusOK, resp, c.logger)
}
