package controller

import (
	"bytes"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"boutique/internal/commons"
	"boutique/internal/domain"
	"boutique/internal/dto"
	apperrors "boutique/internal/errors"
	"boutique/internal/reporting/export"
	"boutique/internal/reporting/service"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const defaultRecentOrders = 5

type OrderSource interface {
	Orders() []domain.Order
	FindByID(id string) (*domain.Order, error)
}

// ReportingController serves the dashboard, order history and customer views.
// Every request recomputes its view from a fresh copy of the ledger.
type ReportingController struct {
	orders OrderSource
	logger *zap.Logger
}

func NewReportingController(orders OrderSource, logger *zap.Logger) *ReportingController {
	return &ReportingController{
		orders: orders,
		logger: logger,
	}
}

func (c *ReportingController) GetDashboard(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	dash := service.BuildDashboard(c.orders.Orders())

	commons.WriteJSON(w, http.StatusOK, dto.DashboardResponse{
		TraceID:       traceID,
		Revenue:       dto.ToRevenueDTO(dash.Revenue),
		CategoryUnits: dto.ToCategoryUnitsDTOs(dash.CategoryUnits),
		RecentOrders:  dto.ToOrderDTOs(dash.RecentOrders),
	}, c.logger)
}

func (c *ReportingController) SearchOrders(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	orders := service.SearchOrders(c.orders.Orders(), r.URL.Query().Get("q"))

	commons.WriteJSON(w, http.StatusOK, dto.OrderListResponse{
		TraceID: traceID,
		Orders:  dto.ToOrderDTOs(orders),
	}, c.logger)
}

func (c *ReportingController) RecentOrders(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()

	n := defaultRecentOrders
	if raw := r.URL.Query().Get("n"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			commons.WriteValidationError(w, traceID, "invalid n", c.logger, apperrors.ValidationDetail{
				Field:   "n",
				Message: "n must be an integer",
			})
			return
		}
		n = parsed
	}

	commons.WriteJSON(w, http.StatusOK, dto.OrderListResponse{
		TraceID: traceID,
		Orders:  dto.ToOrderDTOs(service.RecentOrders(c.orders.Orders(), n)),
	}, c.logger)
}

// ExportOrders streams the whole order history as an xlsx workbook.
func (c *ReportingController) ExportOrders(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()

	var buf bytes.Buffer
	if err := export.WriteOrders(&buf, c.orders.Orders()); err != nil {
		commons.WriteError(w, traceID, apperrors.NewInternalError("exporting orders", err), c.logger)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", "attachment; filename=orders.xlsx")
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		c.logger.Warn("order export interrupted", zap.String("traceId", traceID), zap.Error(err))
	}
}

func (c *ReportingController) GetOrder(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()

	order, err := c.orders.FindByID(chi.URLParam(r, "orderId"))
	if err != nil {
		commons.WriteError(w, traceID, err, c.logger)
		return
	}

	commons.WriteJSON(w, http.StatusOK, dto.CheckoutResponse{
		TraceID: traceID,
		Order:   dto.ToOrderDTO(*order),
	}, c.logger)
}

func (c *ReportingController) SearchCustomers(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	profiles := service.SearchCustomers(service.CustomerProfiles(c.orders.Orders()), r.URL.Query().Get("q"))

	resp := dto.CustomerListResponse{
		TraceID:   traceID,
		Customers: make([]dto.CustomerSummaryDTO, 0, len(profiles)),
	}
	for _, p := range profiles {
		resp.Customers = append(resp.Customers, dto.ToCustomerSummaryDTO(p))
	}

	commons.WriteJSON(w, http.StatusOK, resp, c.logger)
}

// GetCustomer returns one profile with its order history, oldest first.
func (c *ReportingController) GetCustomer(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()

	name, err := customerNameParam(r)
	if err != nil {
		commons.WriteValidationError(w, traceID, "invalid customer name", c.logger, apperrors.ValidationDetail{
			Field:   "name",
			Message: "name must be a valid URL path segment",
		})
		return
	}

	profile, ok := service.CustomerProfiles(c.orders.Orders())[name]
	if !ok {
		commons.WriteError(w, traceID, apperrors.NewNotFoundError(fmt.Sprintf("customer %s not found", name)), c.logger)
		return
	}

	commons.WriteJSON(w, http.StatusOK, dto.CustomerProfileResponse{
		TraceID:  traceID,
		Customer: dto.ToCustomerSummaryDTO(profile),
		Orders:   dto.ToOrderDTOs(profile.Orders),
	}, c.logger)
}

// customerNameParam returns the decoded {name} segment. chi hands back the
// escaped form whenever the request path kept a non-default encoding.
func customerNameParam(r *http.Request) (string, error) {
	name := chi.URLParam(r, "name")
	if r.URL.RawPath == "" {
		return name, nil
	}
	return url.PathUnescape(name)
}
