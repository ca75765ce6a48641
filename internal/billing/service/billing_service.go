package service

import (
	"context"
	"sync"
	"time"

	"boutique/internal/advisory"
	"boutique/internal/domain"
	apperrors "boutique/internal/errors"
	"boutique/internal/infrastructure/metrics"

	"go.uber.org/zap"
)

type OrderLedger interface {
	Contains(id string) bool
	Append(ctx context.Context, order domain.Order) error
}

type Advisor interface {
	Request(ctx context.Context, items []string) <-chan string
}

type Recorder interface {
	IncCheckout(result string)
	AddRevenue(amount int64)
	AddUnits(category string, units int)
}

// CartView is a detached copy of the cart for presentation.
type CartView struct {
	Lines         []domain.CartLine
	CustomerName  string
	CustomerPhone string
	Notes         string
	Total         int64
}

// BillingService is the single billing session of the store. All cart
// operations and checkout are serialized on one mutex.
type BillingService struct {
	mu       sync.Mutex
	cart     domain.Cart
	ledger   OrderLedger
	advisor  Advisor
	board    *advisory.Board
	ids      *OrderIDGenerator
	recorder Recorder
	logger   *zap.Logger
	now      func() time.Time
}

func NewBillingService(
	ledger OrderLedger,
	advisor Advisor,
	ids *OrderIDGenerator,
	recorder Recorder,
	logger *zap.Logger,
) *BillingService {
	return &BillingService{
		ledger:   ledger,
		advisor:  advisor,
		board:    advisory.NewBoard(),
		ids:      ids,
		recorder: recorder,
		logger:   logger,
		now:      time.Now,
	}
}

func (s *BillingService) AddItem(product domain.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.AddItem(product)
}

func (s *BillingService) SetQuantity(productID string, delta int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.SetQuantity(productID, delta)
}

func (s *BillingService) RemoveItem(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.RemoveItem(productID)
}

func (s *BillingService) Total() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Total()
}

// SetCustomer stores the customer fields typed into the billing form.
func (s *BillingService) SetCustomer(name, phone, notes string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.CustomerName = name
	s.cart.CustomerPhone = phone
	s.cart.Notes = notes
}

func (s *BillingService) Cart() CartView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return CartView{
		Lines:         s.cart.Snapshot(),
		CustomerName:  s.cart.CustomerName,
		CustomerPhone: s.cart.CustomerPhone,
		Notes:         s.cart.Notes,
		Total:         s.cart.Total(),
	}
}

// Reset discards the cart, the customer fields and any advice.
func (s *BillingService) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Clear()
	s.board.Reset()
}

// Checkout turns the cart into a completed order and appends it to the ledger.
// On any error neither the ledger nor the cart is changed.
func (s *BillingService) Checkout(ctx context.Context, customerName, customerPhone, notes string) (*domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := validateCheckout(customerName, customerPhone, &s.cart); err != nil {
		s.recorder.IncCheckout(metrics.CheckoutResultRejected)
		s.logger.Info("checkout rejected", zap.Int("lineCount", len(s.cart.Lines)), zap.Int("violations", len(err.Details)))
		return nil, err
	}

	now := s.now()
	id, err := s.ids.Next(now, s.ledger.Contains)
	if err != nil {
		s.recorder.IncCheckout(metrics.CheckoutResultFailed)
		return nil, apperrors.NewInternalError("generating order id", err)
	}

	order := domain.Order{
		ID:                 id,
		CustomerName:       customerName,
		CustomerPhone:      customerPhone,
		Items:              s.cart.Snapshot(),
		TotalAmount:        s.cart.Total(),
		Date:               now.Format(domain.OrderDateLayout),
		CreatedAt:          now,
		Status:             domain.OrderStatusCompleted,
		CustomizationNotes: notes,
	}

	if err := s.ledger.Append(ctx, order); err != nil {
		s.recorder.IncCheckout(metrics.CheckoutResultFailed)
		s.logger.Error("checkout failed", zap.String("orderId", order.ID), zap.Error(err))
		return nil, err
	}

	s.cart.Clear()
	s.board.Reset()

	s.recorder.IncCheckout(metrics.CheckoutResultCompleted)
	s.recorder.AddRevenue(order.TotalAmount)
	for _, item := range order.Items {
		s.recorder.AddUnits(string(item.Category), item.Quantity)
	}
	s.logger.Info("bill generated",
		zap.String("orderId", order.ID),
		zap.String("customer", order.CustomerName),
		zap.Int("lineCount", len(order.Items)),
		zap.Int64("totalAmount", order.TotalAmount),
	)

	result := order.Clone()
	return &result, nil
}

func validateCheckout(customerName, customerPhone string, cart *domain.Cart) *apperrors.ValidationError {
	var details []apperrors.ValidationDetail

	if customerName == "" {
		details = append(details, apperrors.ValidationDetail{
			Field:   "customerName",
			Message: "customer name is required",
		})
	}

	if customerPhone == "" {
		details = append(details, apperrors.ValidationDetail{
			Field:   "customerPhone",
			Message: "customer phone is required",
		})
	}

	if cart.IsEmpty() {
		details = append(details, apperrors.ValidationDetail{
			Field:   "items",
			Message: "cart must contain at least one item",
		})
	}

	if len(details) > 0 {
		return apperrors.NewValidationError("please enter customer details and add items to cart", details...)
	}
	return nil
}

// RequestAdvice starts a styling-advice request for the current cart and
// returns immediately. The result lands on the advice board unless a checkout
// or reset happened in the meantime.
func (s *BillingService) RequestAdvice(ctx context.Context) advisory.Snapshot {
	s.mu.Lock()
	items := s.cart.Descriptors()
	generation := s.board.Begin()
	s.mu.Unlock()

	results := s.advisor.Request(context.WithoutCancel(ctx), items)
	go func() {
		text := <-results
		if !s.board.Complete(generation, text) {
			s.logger.Debug("discarding stale styling advice", zap.Uint64("generation", generation))
		}
	}()

	return s.board.Snapshot()
}

func (s *BillingService) Advice() advisory.Snapshot {
	return s.board.Snapshot()
}
