package dto

import (
	"time"

	"boutique/internal/domain"
)

// CheckoutRequest fields left empty fall back to the customer details stored
// on the cart.
type CheckoutRequest struct {
	CustomerName  string `json:"customerName" validate:"max=150"`
	CustomerPhone string `json:"customerPhone" validate:"max=30"`
	Notes         string `json:"notes" validate:"max=2000"`
}

type OrderDTO struct {
	ID                 string        `json:"id"`
	CustomerName       string        `json:"customerName"`
	CustomerPhone      string        `json:"customerPhone"`
	Items              []CartLineDTO `json:"items"`
	TotalAmount        int64         `json:"totalAmount"`
	Date               string        `json:"date"`
	CreatedAt          time.Time     `json:"createdAt"`
	Status             string        `json:"status"`
	CustomizationNotes string        `json:"customizationNotes,omitempty"`
}

type CheckoutResponse struct {
	TraceID string   `json:"traceId"`
	Order   OrderDTO `json:"order"`
}

type OrderListResponse struct {
	TraceID string     `json:"traceId"`
	Orders  []OrderDTO `json:"orders"`
}

func ToOrderDTO(o domain.Order) OrderDTO {
	return OrderDTO{
		ID:                 o.ID,
		CustomerName:       o.CustomerName,
		CustomerPhone:      o.CustomerPhone,
		Items:              ToCartLineDTOs(o.Items),
		TotalAmount:        o.TotalAmount,
		Date:               o.Date,
		CreatedAt:          o.CreatedAt,
		Status:             string(o.Status),
		CustomizationNotes: o.CustomizationNotes,
	}
}

func ToOrderDTOs(orders []domain.Order) []OrderDTO {
	out := make([]OrderDTO, 0, len(orders))
	for _, o := range orders {
		out = append(out, ToOrderDTO(o))
	}
	return out
}
