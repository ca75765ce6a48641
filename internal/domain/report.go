package domain

import "github.com/shopspring/decimal"

type RevenueSummary struct {
	TotalRevenue      int64
	OrderCount        int
	AverageOrderValue decimal.Decimal
}

// CategoryUnitCounts maps a category to the units sold in it. Categories with
// no sales have no entry.
type CategoryUnitCounts map[Category]int

type CustomerProfile struct {
	Name          string
	Phone         string
	TotalSpent    int64
	OrderCount    int
	LastOrderDate string
	Orders        []Order
}

// CustomerProfiles is keyed by the exact customer name recorded on each order.
type CustomerProfiles map[string]CustomerProfile
