package properties

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/kodipay/rentledger/pkg/api"
	"github.com/kodipay/rentledger/pkg/mapping"
	"github.com/kodipay/rentledger/pkg/storage"
)

// PropertiesHandler holds the dependencies for property-related handlers.
type PropertiesHandler struct {
	Store storage.PropertyStore
}

// NewPropertiesHandler creates a new PropertiesHandler.
func NewPropertiesHandler(store storage.PropertyStore) *PropertiesHandler {
	return &PropertiesHandler{Store: store}
}

// CreateProperty handles the logic for registering a property.
func (h *PropertiesHandler) CreateProperty(w http.ResponseWriter, r *http.Request) {
	var newProperty api.NewProperty
	if err := json.NewDecoder(r.Body).Decode(&newProperty); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	if newProperty.RentPaymentDate < 1 || newProperty.RentPaymentDate > 28 {
		http.Error(w, "rent_payment_date must be between 1 and 28", http.StatusBadRequest)
		return
	}

	property := mapping.ToDomainNewProperty(&newProperty)
	if property.Id == "" {
		property.Id = uuid.New().String()
	}

	created, err := h.Store.CreateProperty(r.Context(), property)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to create property: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(mapping.ToApiProperty(created)); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

// GetPropertyById handles the logic for retrieving a property.
func (h *PropertiesHandler) GetPropertyById(w http.ResponseWriter, r *http.Request) {
	propertyID := chi.URLParam(r, "propertyId")

	property, err := h.Store.GetProperty(r.Context(), propertyID)
	if err != nil {
		if errors.Is(err, storage.ErrPropertyNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
		} else {
			http.Error(w, fmt.Sprintf("Failed to retrieve property: %v", err), http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(mapping.ToApiProperty(property)); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

// ListOwnerProperties handles the logic for listing an owner's properties.
func (h *PropertiesHandler) ListOwnerProperties(w http.ResponseWriter, r *http.Request) {
	ownerID := chi.URLParam(r, "ownerId")

	properties, err := h.Store.ListPropertiesByOwner(r.Context(), ownerID)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to retrieve properties: %v", err), http.StatusInternalServerError)
		return
	}

	apiProperties := make([]*api.Property, len(properties))
	for i := range properties {
		apiProperties[i] = mapping.ToApiProperty(&properties[i])
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(apiProperties); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}
