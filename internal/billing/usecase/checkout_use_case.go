package usecase

import (
	"context"

	"boutique/internal/billing/service"
	"boutique/internal/domain"
	"boutique/internal/dto"
)

type Session interface {
	Cart() service.CartView
	Checkout(ctx context.Context, customerName, customerPhone, notes string) (*domain.Order, error)
}

type CheckoutUseCase struct {
	session Session
}

func NewCheckoutUseCase(session Session) *CheckoutUseCase {
	return &CheckoutUseCase{session: session}
}

// Checkout completes the bill. Fields left empty in req are taken from the
// customer details already stored on the cart.
func (uc *CheckoutUseCase) Checkout(ctx context.Context, req dto.CheckoutRequest) (*dto.OrderDTO, error) {
	stored := uc.session.Cart()
	if req.CustomerName == "" {
		req.CustomerName = stored.CustomerName
	}
	if req.CustomerPhone == "" {
		req.CustomerPhone = stored.CustomerPhone
	}
	if req.Notes == "" {
		req.Notes = stored.Notes
	}

	order, err := uc.session.Checkout(ctx, req.CustomerName, req.CustomerPhone, req.Notes)
	if err != nil {
		return nil, err
	}

	result := dto.ToOrderDTO(*order)
	return &result, nil
}
