package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	CheckoutResultCompleted = "completed"
	CheckoutResultRejected  = "rejected"
	CheckoutResultFailed    = "failed"
)

const (
	AdviceOutcomeAdvice      = "advice"
	AdviceOutcomePlaceholder = "placeholder"
	AdviceOutcomeFallback    = "fallback"
)

// StoreMetrics records billing-desk activity.
type StoreMetrics struct {
	checkouts *prometheus.CounterVec
	revenue   prometheus.Counter
	units     *prometheus.CounterVec
	advice    *prometheus.CounterVec
}

// NewStoreMetrics registers the store metrics on the provided registerer. A nil
// registerer yields a no-op recorder.
func NewStoreMetrics(reg prometheus.Registerer) *StoreMetrics {
	if reg == nil {
		return &StoreMetrics{}
	}
	checkouts := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "boutique_checkouts_total",
		Help: "Checkout attempts by result.",
	}, []string{"result"})
	revenue := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "boutique_revenue_total",
		Help: "Sum of order totals for completed checkouts.",
	})
	units := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "boutique_units_sold_total",
		Help: "Units sold by product category.",
	}, []string{"category"})
	advice := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "boutique_advice_requests_total",
		Help: "Styling advice requests by outcome.",
	}, []string{"outcome"})
	reg.MustRegister(checkouts, revenue, units, advice)
	return &StoreMetrics{
		checkouts: checkouts,
		revenue:   revenue,
		units:     units,
		advice:    advice,
	}
}

func (m *StoreMetrics) IncCheckout(result string) {
	if m == nil || m.checkouts == nil {
		return
	}
	m.checkouts.WithLabelValues(result).Inc()
}

func (m *StoreMetrics) AddRevenue(amount int64) {
	if m == nil || m.revenue == nil || amount <= 0 {
		return
	}
	m.revenue.Add(float64(amount))
}

func (m *StoreMetrics) AddUnits(category string, units int) {
	if m == nil || m.units == nil || units <= 0 {
		return
	}
	m.units.WithLabelValues(normalizeLabel(category)).Add(float64(units))
}

func (m *StoreMetrics) IncAdvice(outcome string) {
	if m == nil || m.advice == nil {
		return
	}
	m.advice.WithLabelValues(normalizeLabel(outcome)).Inc()
}

func normalizeLabel(v string) string {
	if v == "" {
		return "unknown"
	}
	return v
}
