package server

import (
	"net/http"

	billingctrl "boutique/internal/billing/controller"
	"boutique/internal/catalog"
	reportingctrl "boutique/internal/reporting/controller"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func NewRouter(
	catalogCtrl *catalog.Controller,
	billingCtrl *billingctrl.BillingController,
	reportingCtrl *reportingctrl.ReportingController,
	gatherer prometheus.Gatherer,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()
	r.Use(Recoverer(logger), AccessLog(logger))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	r.Get("/products", catalogCtrl.HandleSearchProducts)

	r.Route("/cart", func(r chi.Router) {
		r.Get("/", billingCtrl.GetCart)
		r.Delete("/", billingCtrl.ClearCart)
		r.Put("/customer", billingCtrl.UpdateCustomer)
		r.Post("/items", billingCtrl.AddItem)
		r.Patch("/items/{productId}", billingCtrl.ChangeQuantity)
		r.Delete("/items/{productId}", billingCtrl.RemoveItem)
	})
	r.Post("/checkout", billingCtrl.Checkout)
	r.Post("/advice", billingCtrl.RequestAdvice)
	r.Get("/advice", billingCtrl.GetAdvice)

	r.Get("/dashboard", reportingCtrl.GetDashboard)
	r.Route("/orders", func(r chi.Router) {
		r.Get("/", reportingCtrl.SearchOrders)
		r.Get("/recent", reportingCtrl.RecentOrders)
		r.Get("/export", reportingCtrl.ExportOrders)
		r.Get("/{orderId}", reportingCtrl.GetOrder)
	})
	r.Route("/customers", func(r chi.Router) {
		r.Get("/", reportingCtrl.SearchCustomers)
		r.Get("/{name}", reportingCtrl.GetCustomer)
	})

	return r
}
