package domain

import "time"

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "Pending"
	OrderStatusCompleted OrderStatus = "Completed"
	OrderStatusCancelled OrderStatus = "Cancelled"
)

// OrderDateLayout renders dates the way the billing desk prints them, e.g. "16 Oct 2026".
const OrderDateLayout = "2 Jan 2006"

type Order struct {
	ID                 string
	CustomerName       string
	CustomerPhone      string
	Items              []CartLine
	TotalAmount        int64
	Date               string
	CreatedAt          time.Time
	Status             OrderStatus
	CustomizationNotes string
}

// Clone returns a copy whose Items slice is independent of the receiver's.
func (o Order) Clone() Order {
	items := make([]CartLine, len(o.Items))
	copy(items, o.Items)
	o.Items = items
	return o
}

func (o Order) UnitCount() int {
	units := 0
	for _, item := range o.Items {
		units += item.Quantity
	}
	return units
}
