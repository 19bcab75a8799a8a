package handlers

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/kodipay/rentledger/pkg/gateway"
	"github.com/kodipay/rentledger/pkg/handlers/payments"
	"github.com/kodipay/rentledger/pkg/handlers/portfolio"
	"github.com/kodipay/rentledger/pkg/handlers/properties"
	"github.com/kodipay/rentledger/pkg/handlers/reminders"
	"github.com/kodipay/rentledger/pkg/handlers/tenants"
	"github.com/kodipay/rentledger/pkg/ledger"
	"github.com/kodipay/rentledger/pkg/middleware"
	"github.com/kodipay/rentledger/pkg/notify"
	"github.com/kodipay/rentledger/pkg/storage"
)

// NewRouter wires every ledger service onto a chi router.
func NewRouter(store storage.Storage, gw gateway.Client, notifier notify.Notifier, logger *slog.Logger) chi.Router {
	processor := ledger.NewPaymentProcessor(store, gw)
	dues := ledger.NewDueAggregator(store)
	reconciler := ledger.NewReconciler(store)
	aggregator := ledger.NewPortfolioAggregator(store)
	scheduler := ledger.NewReminderScheduler(store, notifier)

	paymentsHandler := payments.NewPaymentsHandler(store, processor)
	tenantsHandler := tenants.NewTenantsHandler(store, dues, reconciler)
	propertiesHandler := properties.NewPropertiesHandler(store)
	portfolioHandler := portfolio.NewPortfolioHandler(aggregator)
	remindersHandler := reminders.NewRemindersHandler(scheduler)

	router := chi.NewRouter()
	router.Use(chimw.RequestID)
	router.Use(middleware.NewStructuredLogger(logger))
	router.Use(chimw.Recoverer)

	router.Route("/payments", func(r chi.Router) {
		r.Post("/", paymentsHandler.ConfirmPayment)
		r.Get("/{paymentId}", paymentsHandler.GetPaymentById)
	})

	router.Route("/tenants", func(r chi.Router) {
		r.Post("/", tenantsHandler.CreateTenant)
		r.Get("/{tenantId}", tenantsHandler.GetTenantById)
		r.Get("/{tenantId}/dues", tenantsHandler.GetTenantDues)
		r.Get("/{tenantId}/payments", paymentsHandler.ListTenantPayments)
		r.Post("/{tenantId}/reconcile", tenantsHandler.ReconcileTenant)
	})

	router.Route("/properties", func(r chi.Router) {
		r.Post("/", propertiesHandler.CreateProperty)
		r.Get("/{propertyId}", propertiesHandler.GetPropertyById)
	})

	router.Route("/owners/{ownerId}", func(r chi.Router) {
		r.Get("/properties", propertiesHandler.ListOwnerProperties)
		r.Get("/stats", portfolioHandler.GetOwnerStats)
		r.Get("/reminders", remindersHandler.ListDueReminders)
		r.Post("/reminders/send", remindersHandler.SendReminders)
	})

	return router
}
