package dto

import "boutique/internal/domain"

type AddItemRequest struct {
	ProductID string `json:"productId" validate:"required,max=64"`
}

// ChangeQuantityRequest adjusts a line by Delta. Zero leaves the line as is.
type ChangeQuantityRequest struct {
	Delta int `json:"delta"`
}

type CustomerRequest struct {
	CustomerName  string `json:"customerName" validate:"max=150"`
	CustomerPhone string `json:"customerPhone" validate:"max=30"`
	Notes         string `json:"notes" validate:"max=2000"`
}

type CartLineDTO struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	Category  string `json:"category"`
	Variety   string `json:"variety"`
	Price     int64  `json:"price"`
	Image     string `json:"image"`
	Quantity  int    `json:"quantity"`
	Subtotal  int64  `json:"subtotal"`
}

type CartResponse struct {
	TraceID       string        `json:"traceId"`
	Items         []CartLineDTO `json:"items"`
	CustomerName  string        `json:"customerName"`
	CustomerPhone string        `json:"customerPhone"`
	Notes         string        `json:"notes"`
	Total         int64         `json:"total"`
}

type AdviceResponse struct {
	TraceID string `json:"traceId"`
	Status  string `json:"status"`
	Advice  string `json:"advice,omitempty"`
}

func ToCartLineDTOs(lines []domain.CartLine) []CartLineDTO {
	out := make([]CartLineDTO, 0, len(lines))
	for _, l := range lines {
		out = append(out, CartLineDTO{
			ProductID: l.ID,
			Name:      l.Name,
			Category:  string(l.Category),
			Variety:   l.Variety,
			Price:     l.Price,
			Image:     l.Image,
			Quantity:  l.Quantity,
			Subtotal:  l.Subtotal(),
		})
	}
	return out
}
