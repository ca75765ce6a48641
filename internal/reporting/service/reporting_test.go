package service

import (
	"fmt"
	"testing"

	"boutique/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func line(id string, category domain.Category, price int64, qty int) domain.CartLine {
	return domain.CartLine{
		Product:  domain.Product{ID: id, Name: "Item " + id, Category: category, Price: price},
		Quantity: qty,
	}
}

func order(id, name, phone, date string, total int64, items ...domain.CartLine) domain.Order {
	return domain.Order{
		ID:            id,
		CustomerName:  name,
		CustomerPhone: phone,
		Items:         items,
		TotalAmount:   total,
		Date:          date,
		Status:        domain.OrderStatusCompleted,
	}
}

func sampleOrders() []domain.Order {
	return []domain.Order{
		order("VV-000001", "A", "111", "1 Mar 2026", 100, line("1", domain.CategorySherwani, 100, 1)),
		order("VV-000002", "B", "222", "2 Mar 2026", 75, line("5", domain.CategoryKurtaPajama, 25, 3)),
		order("VV-000003", "A", "333", "3 Mar 2026", 50, line("5", domain.CategoryKurtaPajama, 25, 2)),
	}
}

func TestRevenueSummary(t *testing.T) {
	summary := RevenueSummary(sampleOrders())

	assert.Equal(t, int64(225), summary.TotalRevenue)
	assert.Equal(t, 3, summary.OrderCount)
	assert.True(t, summary.AverageOrderValue.Equal(decimal.NewFromInt(75)))
}

func TestRevenueSummary_Empty(t *testing.T) {
	summary := RevenueSummary(nil)

	assert.Equal(t, int64(0), summary.TotalRevenue)
	assert.Equal(t, 0, summary.OrderCount)
	assert.True(t, summary.AverageOrderValue.IsZero())
}

func TestRevenueSummary_FractionalAverage(t *testing.T) {
	orders := []domain.Order{
		order("VV-000001", "A", "1", "", 10),
		order("VV-000002", "A", "1", "", 0),
		order("VV-000003", "A", "1", "", 0),
	}

	summary := RevenueSummary(orders)

	assert.Equal(t, "3.33", summary.AverageOrderValue.StringFixed(2))
}

func TestCategoryUnitCounts(t *testing.T) {
	counts := CategoryUnitCounts(sampleOrders())

	assert.Equal(t, domain.CategoryUnitCounts{
		domain.CategorySherwani:    1,
		domain.CategoryKurtaPajama: 5,
	}, counts)
	_, ok := counts[domain.CategoryJodhpuri]
	assert.False(t, ok)
	assert.Empty(t, CategoryUnitCounts(nil))
}

func TestCustomerProfiles(t *testing.T) {
	profiles := CustomerProfiles(sampleOrders())

	require.Len(t, profiles, 2)

	a := profiles["A"]
	assert.Equal(t, int64(150), a.TotalSpent)
	assert.Equal(t, 2, a.OrderCount)
	assert.Equal(t, "333", a.Phone)
	assert.Equal(t, "3 Mar 2026", a.LastOrderDate)
	require.Len(t, a.Orders, 2)
	assert.Equal(t, "VV-000001", a.Orders[0].ID)
	assert.Equal(t, "VV-000003", a.Orders[1].ID)

	b := profiles["B"]
	assert.Equal(t, int64(75), b.TotalSpent)
	assert.Equal(t, 1, b.OrderCount)
}

func TestCustomerProfiles_ExactNameKey(t *testing.T) {
	orders := []domain.Order{
		order("VV-000001", "Ravi", "1", "", 10),
		order("VV-000002", "ravi", "1", "", 20),
	}

	assert.Len(t, CustomerProfiles(orders), 2)
	assert.Empty(t, CustomerProfiles(nil))
}

func TestRecentOrders(t *testing.T) {
	three := sampleOrders()
	got := RecentOrders(three, 5)
	require.Len(t, got, 3)
	assert.Equal(t, "VV-000003", got[0].ID)
	assert.Equal(t, "VV-000001", got[2].ID)

	var eight []domain.Order
	for i := 1; i <= 8; i++ {
		eight = append(eight, order(fmt.Sprintf("VV-%06d", i), "A", "1", "", int64(i)))
	}
	got = RecentOrders(eight, 5)
	require.Len(t, got, 5)
	assert.Equal(t, "VV-000008", got[0].ID)
	assert.Equal(t, "VV-000004", got[4].ID)

	assert.Empty(t, RecentOrders(eight, 0))
	assert.Empty(t, RecentOrders(eight, -1))
	assert.Empty(t, RecentOrders(nil, 5))
}

func TestAggregations_DoNotMutateInput(t *testing.T) {
	orders := sampleOrders()
	before := make([]domain.Order, len(orders))
	for i, o := range orders {
		before[i] = o.Clone()
	}

	RevenueSummary(orders)
	CategoryUnitCounts(orders)
	profiles := CustomerProfiles(orders)
	recent := RecentOrders(orders, 2)
	found := SearchOrders(orders, "a")
	BuildDashboard(orders)

	profiles["A"].Orders[0].Items[0].Quantity = 99
	recent[0].Items[0].Quantity = 99
	found[0].CustomerName = "changed"

	assert.Equal(t, before, orders)
}

func TestSearchOrders(t *testing.T) {
	orders := sampleOrders()

	byName := SearchOrders(orders, "a")
	require.Len(t, byName, 2)
	assert.Equal(t, "VV-000003", byName[0].ID)
	assert.Equal(t, "VV-000001", byName[1].ID)

	byID := SearchOrders(orders, "vv-000002")
	require.Len(t, byID, 1)
	assert.Equal(t, "B", byID[0].CustomerName)

	all := SearchOrders(orders, "  ")
	assert.Len(t, all, 3)
	assert.Empty(t, SearchOrders(orders, "zzz"))
}

func TestSearchCustomers(t *testing.T) {
	profiles := CustomerProfiles([]domain.Order{
		order("VV-000001", "Vikram", "9876500001", "", 10),
		order("VV-000002", "Arjun", "9123400002", "", 20),
		order("VV-000003", "Kabir", "9876511111", "", 30),
	})

	all := SearchCustomers(profiles, "")
	require.Len(t, all, 3)
	assert.Equal(t, []string{"Arjun", "Kabir", "Vikram"}, []string{all[0].Name, all[1].Name, all[2].Name})

	byName := SearchCustomers(profiles, "ARJ")
	require.Len(t, byName, 1)
	assert.Equal(t, "Arjun", byName[0].Name)

	byPhone := SearchCustomers(profiles, "98765")
	require.Len(t, byPhone, 2)
	assert.Equal(t, "Kabir", byPhone[0].Name)
}

func TestBuildDashboard(t *testing.T) {
	dash := BuildDashboard(sampleOrders())

	assert.Equal(t, int64(225), dash.Revenue.TotalRevenue)
	assert.Equal(t, 5, dash.CategoryUnits[domain.CategoryKurtaPajama])
	assert.Len(t, dash.RecentOrders, 3)

	empty := BuildDashboard(nil)
	assert.Equal(t, 0, empty.Revenue.OrderCount)
	assert.Empty(t, empty.CategoryUnits)
	assert.Empty(t, empty.RecentOrders)
}

func TestSearchCustomers_DoesNotShareOrders(t *testing.T) {
	profiles := CustomerProfiles(sampleOrders())

	found := SearchCustomers(profiles, "A")
	require.NotEmpty(t, found)
	found[0].Orders[0].ID = "VV-999999"
	found[0].Orders[0].Items[0].Quantity = 42

	assert.Equal(t, "VV-000001", profiles["A"].Orders[0].ID)
	assert.Equal(t, 1, profiles["A"].Orders[0].Items[0].Quantity)
}
