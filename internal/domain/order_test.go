package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOrder_Creation(t *testing.T) {
	createdAt := time.Date(2026, time.October, 16, 11, 30, 0, 0, time.UTC)

	order := Order{
		ID:                 "VV-123456",
		CustomerName:       "Arjun Mehta",
		CustomerPhone:      "9820012345",
		Items:              []CartLine{{Product: velvetSherwani, Quantity: 1}},
		TotalAmount:        24999,
		Date:               createdAt.Format(OrderDateLayout),
		CreatedAt:          createdAt,
		Status:             OrderStatusCompleted,
		CustomizationNotes: "shorten sleeves",
	}

	assert.Equal(t, "16 Oct 2026", order.Date)
	assert.Equal(t, OrderStatusCompleted, order.Status)
	assert.Equal(t, 1, order.UnitCount())
}

func TestOrder_StatusConstants(t *testing.T) {
	assert.Equal(t, OrderStatus("Pending"), OrderStatusPending)
	assert.Equal(t, OrderStatus("Completed"), OrderStatusCompleted)
	assert.Equal(t, OrderStatus("Cancelled"), OrderStatusCancelled)
}

func TestOrder_CloneDetachesItems(t *testing.T) {
	order := Order{ID: "VV-1", Items: []CartLine{{Product: linenKurta, Quantity: 2}}}

	clone := order.Clone()
	clone.Items[0].Quantity = 9

	assert.Equal(t, 2, order.Items[0].Quantity)
}

func TestCategory_Valid(t *testing.T) {
	for _, c := range Categories {
		assert.True(t, c.Valid(), string(c))
	}
	assert.False(t, Category("Lehenga").Valid())
	assert.False(t, Category("").Valid())
}
