package tenants

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/kodipay/rentledger/pkg/api"
	"github.com/kodipay/rentledger/pkg/ledger"
	"github.com/kodipay/rentledger/pkg/mapping"
	"github.com/kodipay/rentledger/pkg/storage"
)

// TenantsHandler holds the dependencies for tenant-related handlers.
type TenantsHandler struct {
	Store      storage.TenantStore
	Dues       *ledger.DueAggregator
	Reconciler *ledger.Reconciler
}

// NewTenantsHandler creates a new TenantsHandler.
func NewTenantsHandler(store storage.TenantStore, dues *ledger.DueAggregator, reconciler *ledger.Reconciler) *TenantsHandler {
	return &TenantsHandler{Store: store, Dues: dues, Reconciler: reconciler}
}

// CreateTenant handles the logic for creating a tenant at lease signing.
func (h *TenantsHandler) CreateTenant(w http.ResponseWriter, r *http.Request) {
	var newTenant api.NewTenant
	if err := json.NewDecoder(r.Body).Decode(&newTenant); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	tenant := mapping.ToDomainNewTenant(&newTenant)
	if tenant.Id == "" {
		tenant.Id = uuid.New().String()
	}

	created, err := h.Store.CreateTenant(r.Context(), tenant)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to create tenant: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(mapping.ToApiTenant(created)); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

// GetTenantById handles the logic for retrieving a tenant's ledger state.
func (h *TenantsHandler) GetTenantById(w http.ResponseWriter, r *http.Request) {
	tenantID := chi.URLParam(r, "tenantId")

	tenant, err := h.Store.GetTenant(r.Context(), tenantID)
	if err != nil {
		if errors.Is(err, storage.ErrTenantNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
		} else {
			http.Error(w, fmt.Sprintf("Failed to retrieve tenant: %v", err), http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(mapping.ToApiTenant(tenant)); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

// GetTenantDues handles the logic for computing a tenant's outstanding dues.
// The as_of query parameter defaults to now.
func (h *TenantsHandler) GetTenantDues(w http.ResponseWriter, r *http.Request) {
	tenantID := chi.URLParam(r, "tenantId")

	asOf := time.Now()
	if raw := r.URL.Query().Get("as_of"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			http.Error(w, fmt.Sprintf("Invalid as_of parameter: %v", err), http.StatusBadRequest)
			return
		}
		asOf = parsed
	}

	dues, err := h.Dues.GetDues(r.Context(), tenantID, asOf)
	if err != nil {
		if errors.Is(err, storage.ErrTenantNotFound) || errors.Is(err, storage.ErrPropertyNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
		} else {
			http.Error(w, fmt.Sprintf("Failed to compute dues: %v", err), http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dues); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

// ReconcileTenant handles the logic for re-deriving a tenant's running totals
// from the payment history.
func (h *TenantsHandler) ReconcileTenant(w http.ResponseWriter, r *http.Request) {
	tenantID := chi.URLParam(r, "tenantId")

	result, err := h.Reconciler.Reconcile(r.Context(), tenantID)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrTenantNotFound):
			http.Error(w, err.Error(), http.StatusNotFound)
		case errors.Is(err, storage.ErrConcurrencyConflict):
			http.Error(w, "Tenant ledger modified concurrently, retry", http.StatusConflict)
		default:
			http.Error(w, fmt.Sprintf("Failed to reconcile tenant: %v", err), http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(result); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}
