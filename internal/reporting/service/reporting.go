// Package service holds the read-side aggregations over the order ledger.
// Every function is pure: inputs are never modified and results share no
// memory with them.
package service

import (
	"sort"
	"strings"

	"boutique/internal/domain"

	"github.com/shopspring/decimal"
)

// DashboardRecentCount is the number of orders listed on the dashboard.
const DashboardRecentCount = 5

type Dashboard struct {
	Revenue       domain.RevenueSummary
	CategoryUnits domain.CategoryUnitCounts
	RecentOrders  []domain.Order
}

func RevenueSummary(orders []domain.Order) domain.RevenueSummary {
	summary := domain.RevenueSummary{
		OrderCount:        len(orders),
		AverageOrderValue: decimal.Zero,
	}
	for _, o := range orders {
		summary.TotalRevenue += o.TotalAmount
	}
	if summary.OrderCount > 0 {
		summary.AverageOrderValue = decimal.NewFromInt(summary.TotalRevenue).
			Div(decimal.NewFromInt(int64(summary.OrderCount)))
	}
	return summary
}

func CategoryUnitCounts(orders []domain.Order) domain.CategoryUnitCounts {
	counts := make(domain.CategoryUnitCounts)
	for _, o := range orders {
		for _, item := range o.Items {
			if item.Quantity > 0 {
				counts[item.Category] += item.Quantity
			}
		}
	}
	return counts
}

// CustomerProfiles groups orders by exact customer name. Phone and last order
// date come from the customer's most recent order.
func CustomerProfiles(orders []domain.Order) domain.CustomerProfiles {
	profiles := make(domain.CustomerProfiles)
	for _, o := range orders {
		p := profiles[o.CustomerName]
		p.Name = o.CustomerName
		p.Phone = o.CustomerPhone
		p.LastOrderDate = o.Date
		p.TotalSpent += o.TotalAmount
		p.OrderCount++
		p.Orders = append(p.Orders, o.Clone())
		profiles[o.CustomerName] = p
	}
	return profiles
}

// RecentOrders returns up to n orders, most recent first.
func RecentOrders(orders []domain.Order, n int) []domain.Order {
	if n <= 0 {
		return []domain.Order{}
	}
	if n > len(orders) {
		n = len(orders)
	}
	out := make([]domain.Order, 0, n)
	for i := len(orders) - 1; i >= len(orders)-n; i-- {
		out = append(out, orders[i].Clone())
	}
	return out
}

// SearchOrders matches query case-insensitively against the customer name or
// the order id. Results are most recent first; an empty query matches all.
func SearchOrders(orders []domain.Order, query string) []domain.Order {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]domain.Order, 0, len(orders))
	for i := len(orders) - 1; i >= 0; i-- {
		o := orders[i]
		if q != "" && !strings.Contains(strings.ToLower(o.CustomerName), q) && !strings.Contains(strings.ToLower(o.ID), q) {
			continue
		}
		out = append(out, o.Clone())
	}
	return out
}

// SearchCustomers matches query case-insensitively against the name, or as a
// plain substring of the phone number. Results are sorted by name.
func SearchCustomers(profiles domain.CustomerProfiles, query string) []domain.CustomerProfile {
	q := strings.TrimSpace(query)
	lower := strings.ToLower(q)
	out := make([]domain.CustomerProfile, 0, len(profiles))
	for _, p := range profiles {
		if q != "" && !strings.Contains(strings.ToLower(p.Name), lower) && !strings.Contains(p.Phone, q) {
			continue
		}
		p.Orders = cloneOrders(p.Orders)
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func BuildDashboard(orders []domain.Order) Dashboard {
	return Dashboard{
		Revenue:       RevenueSummary(orders),
		CategoryUnits: CategoryUnitCounts(orders),
		RecentOrders:  RecentOrders(orders, DashboardRecentCount),
	}
}

func cloneOrders(orders []domain.Order) []domain.Order {
	out := make([]domain.Order, len(orders))
	for i, o := range orders {
		out[i] = o.Clone()
	}
	return out
}
