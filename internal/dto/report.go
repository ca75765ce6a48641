package dto

import (
	"sort"

	"github.com/shopspring/decimal"

	"boutique/internal/domain"
)

type RevenueDTO struct {
	TotalRevenue      int64           `json:"totalRevenue"`
	OrderCount        int             `json:"orderCount"`
	AverageOrderValue decimal.Decimal `json:"averageOrderValue"`
}

type CategoryUnitsDTO struct {
	Category string `json:"category"`
	Units    int    `json:"units"`
}

type DashboardResponse struct {
	TraceID       string             `json:"traceId"`
	Revenue       RevenueDTO         `json:"revenue"`
	CategoryUnits []CategoryUnitsDTO `json:"categoryUnits"`
	RecentOrders  []OrderDTO         `json:"recentOrders"`
}

type CustomerSummaryDTO struct {
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	TotalSpent    int64  `json:"totalSpent"`
	OrderCount    int    `json:"orderCount"`
	LastOrderDate string `json:"lastOrderDate"`
}

type CustomerListResponse struct {
	TraceID   string               `json:"traceId"`
	Customers []CustomerSummaryDTO `json:"customers"`
}

type CustomerProfileResponse struct {
	TraceID  string             `json:"traceId"`
	Customer CustomerSummaryDTO `json:"customer"`
	Orders   []OrderDTO         `json:"orders"`
}

func ToRevenueDTO(s domain.RevenueSummary) RevenueDTO {
	return RevenueDTO{
		TotalRevenue:      s.TotalRevenue,
		OrderCount:        s.OrderCount,
		AverageOrderValue: s.AverageOrderValue,
	}
}

// ToCategoryUnitsDTOs lists categories in catalog display order.
func ToCategoryUnitsDTOs(counts domain.CategoryUnitCounts) []CategoryUnitsDTO {
	out := make([]CategoryUnitsDTO, 0, len(counts))
	for _, c := range domain.Categories {
		if units, ok := counts[c]; ok {
			out = append(out, CategoryUnitsDTO{Category: string(c), Units: units})
		}
	}
	var unknown []CategoryUnitsDTO
	for c, units := range counts {
		if !c.Valid() {
			unknown = append(unknown, CategoryUnitsDTO{Category: string(c), Units: units})
		}
	}
	sort.Slice(unknown, func(i, j int) bool { return unknown[i].Category < unknown[j].Category })
	return append(out, unknown...)
}

func ToCustomerSummaryDTO(p domain.CustomerProfile) CustomerSummaryDTO {
	return CustomerSummaryDTO{
		Name:          p.Name,
		Phone:         p.Phone,
		TotalSpent:    p.TotalSpent,
		OrderCount:    p.OrderCount,
		LastOrderDate: p.LastOrderDate,
	}
}
