package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"boutique/internal/billing/service"
	"boutique/internal/domain"
	"boutique/internal/dto"
	apperrors "boutique/internal/errors"
)

type mockSession struct {
	CartFunc     func() service.CartView
	CheckoutFunc func(ctx context.Context, customerName, customerPhone, notes string) (*domain.Order, error)
}

func (m *mockSession) Cart() service.CartView {
	return m.CartFunc()
}

func (m *mockSession) Checkout(ctx context.Context, customerName, customerPhone, notes string) (*domain.Order, error) {
	return m.CheckoutFunc(ctx, customerName, customerPhone, notes)
}

func storedCustomer() service.CartView {
	return service.CartView{CustomerName: "Arjun", CustomerPhone: "9876543210", Notes: "shorten sleeves"}
}

func TestCheckout_FillsMissingFieldsFromCart(t *testing.T) {
	var gotName, gotPhone, gotNotes string
	uc := NewCheckoutUseCase(&mockSession{
		CartFunc: storedCustomer,
		CheckoutFunc: func(ctx context.Context, name, phone, notes string) (*domain.Order, error) {
			gotName, gotPhone, gotNotes = name, phone, notes
			return &domain.Order{ID: "VV-000042", CustomerName: name, TotalAmount: 2999, Status: domain.OrderStatusCompleted}, nil
		},
	})

	resp, err := uc.Checkout(context.Background(), dto.CheckoutRequest{CustomerPhone: "9000000000"})

	require.NoError(t, err)
	assert.Equal(t, "Arjun", gotName)
	assert.Equal(t, "9000000000", gotPhone)
	assert.Equal(t, "shorten sleeves", gotNotes)
	assert.Equal(t, "VV-000042", resp.ID)
	assert.Equal(t, "Completed", resp.Status)
}

func TestCheckout_PropagatesValidationError(t *testing.T) {
	uc := NewCheckoutUseCase(&mockSession{
		CartFunc: func() service.CartView { return service.CartView{} },
		CheckoutFunc: func(ctx context.Context, name, phone, notes string) (*domain.Order, error) {
			return nil, apperrors.NewValidationError("please enter customer details and add items to cart")
		},
	})

	resp, err := uc.Checkout(context.Background(), dto.CheckoutRequest{})

	assert.Nil(t, resp)
	_, ok := apperrors.IsValidationError(err)
	assert.True(t, ok)
}
