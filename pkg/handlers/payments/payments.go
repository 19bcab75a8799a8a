package payments

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/kodipay/rentledger/pkg/api"
	"github.com/kodipay/rentledger/pkg/gateway"
	"github.com/kodipay/rentledger/pkg/ledger"
	"github.com/kodipay/rentledger/pkg/mapping"
	"github.com/kodipay/rentledger/pkg/models"
	"github.com/kodipay/rentledger/pkg/storage"
)

// PaymentsHandler holds the dependencies for payment-related handlers.
type PaymentsHandler struct {
	Store     storage.PaymentStore
	Processor *ledger.PaymentProcessor
}

// NewPaymentsHandler creates a new PaymentsHandler.
func NewPaymentsHandler(store storage.PaymentStore, processor *ledger.PaymentProcessor) *PaymentsHandler {
	return &PaymentsHandler{Store: store, Processor: processor}
}

// ConfirmPayment handles one confirmed-payment event: it records the payment,
// allocates it across the tenant's due buckets and returns the updated ledger.
func (h *PaymentsHandler) ConfirmPayment(w http.ResponseWriter, r *http.Request) {
	var req api.ConfirmPayment
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	payment, tenant, err := h.Processor.ConfirmPayment(r.Context(), ledger.ConfirmPaymentInput{
		TenantId:      req.TenantId,
		PropertyId:    req.PropertyId,
		Amount:        req.Amount,
		Type:          models.PaymentType(req.Type),
		TransactionId: req.TransactionId,
		Reference:     req.Reference,
		PaymentDate:   req.PaymentDate,
	})
	if err != nil {
		writeConfirmError(w, err)
		return
	}

	result := api.PaymentResult{Payment: *mapping.ToApiPayment(payment)}
	if tenant != nil {
		result.Tenant = mapping.ToApiTenant(tenant)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(result); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

func writeConfirmError(w http.ResponseWriter, err error) {
	var validationErr *ledger.ValidationError
	switch {
	case errors.As(err, &validationErr):
		http.Error(w, validationErr.Error(), http.StatusBadRequest)
	case errors.Is(err, storage.ErrTenantNotFound), errors.Is(err, storage.ErrPropertyNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, storage.ErrDuplicateTransaction):
		http.Error(w, "Payment with this transaction id already processed", http.StatusConflict)
	case errors.Is(err, storage.ErrConcurrencyConflict):
		http.Error(w, "Tenant ledger modified concurrently, retry", http.StatusConflict)
	case errors.Is(err, gateway.ErrDeclined):
		http.Error(w, "Transaction declined by gateway", http.StatusUnprocessableEntity)
	case errors.Is(err, gateway.ErrUnavailable):
		http.Error(w, "Gateway status check failed, payment left pending", http.StatusBadGateway)
	default:
		http.Error(w, fmt.Sprintf("Failed to process payment: %v", err), http.StatusInternalServerError)
	}
}

// GetPaymentById handles the logic for retrieving a payment by its ID.
func (h *PaymentsHandler) GetPaymentById(w http.ResponseWriter, r *http.Request) {
	paymentID := chi.URLParam(r, "paymentId")

	payment, err := h.Store.GetPayment(r.Context(), paymentID)
	if err != nil {
		if errors.Is(err, storage.ErrPaymentNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
		} else {
			http.Error(w, fmt.Sprintf("Failed to retrieve payment: %v", err), http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(mapping.ToApiPayment(payment)); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

// ListTenantPayments handles the logic for retrieving a tenant's payment history.
func (h *PaymentsHandler) ListTenantPayments(w http.ResponseWriter, r *http.Request) {
	tenantID := chi.URLParam(r, "tenantId")

	payments, err := h.Store.ListPaymentsByTenant(r.Context(), tenantID)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to retrieve payments: %v", err), http.StatusInternalServerError)
		return
	}

	apiPayments := make([]*api.Payment, len(payments))
	for i := range payments {
		apiPayments[i] = mapping.ToApiPayment(&payments[i])
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(apiPayments); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}
