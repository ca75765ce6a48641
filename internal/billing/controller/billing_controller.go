package controller

import (
	"context"
	"net/http"

	"boutique/internal/advisory"
	"boutique/internal/billing/service"
	"boutique/internal/commons"
	"boutique/internal/domain"
	"boutique/internal/dto"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BillingSession interface {
	AddItem(product domain.Product)
	SetQuantity(productID string, delta int)
	RemoveItem(productID string)
	SetCustomer(name, phone, notes string)
	Cart() service.CartView
	Reset()
	RequestAdvice(ctx context.Context) advisory.Snapshot
	Advice() advisory.Snapshot
}

type CheckoutUseCase interface {
	Checkout(ctx context.Context, req dto.CheckoutRequest) (*dto.OrderDTO, error)
}

type ProductFinder interface {
	FindByID(ctx context.Context, id string) (*domain.Product, error)
}

type BillingController struct {
	session  BillingSession
	checkout CheckoutUseCase
	products ProductFinder
	logger   *zap.Logger
}

func NewBillingController(session BillingSession, checkout CheckoutUseCase, products ProductFinder, logger *zap.Logger) *BillingController {
	return &BillingController{
		session:  session,
		checkout: checkout,
		products: products,
		logger:   logger,
	}
}

func (c *BillingController) GetCart(w http.ResponseWriter, r *http.Request) {
	c.writeCart(w, uuid.New().String(), http.StatusOK)
}

func (c *BillingController) AddItem(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	var req dto.AddItemRequest
	if err := commons.DecodeJSONBody(r, &req); err != nil {
		commons.WriteError(w, traceID, err, logger)
		return
	}

	product, err := c.products.FindByID(r.Context(), req.ProductID)
	if err != nil {
		logger.Info("add to cart failed", zap.String("productId", req.ProductID), zap.Error(err))
		commons.WriteError(w, traceID, err, logger)
		return
	}

	c.session.AddItem(*product)
	c.writeCart(w, traceID, http.StatusOK)
}

func (c *BillingController) ChangeQuantity(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()

	var req dto.ChangeQuantityRequest
	if err := commons.DecodeJSONBody(r, &req); err != nil {
		commons.WriteError(w, traceID, err, c.logger)
		return
	}

	c.session.SetQuantity(chi.URLParam(r, "productId"), req.Delta)
	c.writeCart(w, traceID, http.StatusOK)
}

func (c *BillingController) RemoveItem(w http.ResponseWriter, r *http.Request) {
	c.session.RemoveItem(chi.URLParam(r, "productId"))
	c.writeCart(w, uuid.New().String(), http.StatusOK)
}

func (c *BillingController) UpdateCustomer(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()

	var req dto.CustomerRequest
	if err := commons.DecodeJSONBody(r, &req); err != nil {
		commons.WriteError(w, traceID, err, c.logger)
		return
	}

	c.session.SetCustomer(req.CustomerName, req.CustomerPhone, req.Notes)
	c.writeCart(w, traceID, http.StatusOK)
}

func (c *BillingController) ClearCart(w http.ResponseWriter, r *http.Request) {
	c.session.Reset()
	c.writeCart(w, uuid.New().String(), http.StatusOK)
}

func (c *BillingController) Checkout(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	var req dto.CheckoutRequest
	if err := commons.DecodeJSONBody(r, &req); err != nil {
		commons.WriteError(w, traceID, err, logger)
		return
	}

	order, err := c.checkout.Checkout(r.Context(), req)
	if err != nil {
		commons.WriteError(w, traceID, err, logger)
		return
	}

	commons.WriteJSON(w, http.StatusCreated, dto.CheckoutResponse{
		TraceID: traceID,
		Order:   *order,
	}, logger)
}

func (c *BillingController) RequestAdvice(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	snapshot := c.session.RequestAdvice(r.Context())
	commons.WriteJSON(w, http.StatusAccepted, toAdviceResponse(traceID, snapshot), c.logger)
}

func (c *BillingController) GetAdvice(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	commons.WriteJSON(w, http.StatusOK, toAdviceResponse(traceID, c.session.Advice()), c.logger)
}

func (c *BillingController) writeCart(w http.ResponseWriter, traceID string, status int) {
	view := c.session.Cart()
	commons.WriteJSON(w, status, dto.CartResponse{
		TraceID:       traceID,
		Items:         dto.ToCartLineDTOs(view.Lines),
		CustomerName:  view.CustomerName,
		CustomerPhone: view.CustomerPhone,
		Notes:         view.Notes,
		Total:         view.Total,
	}, c.logger)
}

func toAdviceResponse(traceID string, s advisory.Snapshot) dto.AdviceResponse {
	return dto.AdviceResponse{
		TraceID: traceID,
		Status:  string(s.State),
		Advice:  s.Text,
	}
}
