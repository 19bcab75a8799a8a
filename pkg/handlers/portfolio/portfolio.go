package portfolio

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/kodipay/rentledger/pkg/ledger"
)

// PortfolioHandler holds the dependencies for owner-level statistics.
type PortfolioHandler struct {
	Aggregator *ledger.PortfolioAggregator
}

// NewPortfolioHandler creates a new PortfolioHandler.
func NewPortfolioHandler(aggregator *ledger.PortfolioAggregator) *PortfolioHandler {
	return &PortfolioHandler{Aggregator: aggregator}
}

// GetOwnerStats handles the logic for computing portfolio statistics for an
// owner. Every call recomputes from storage.
func (h *PortfolioHandler) GetOwnerStats(w http.ResponseWriter, r *http.Request) {
	ownerID := chi.URLParam(r, "ownerId")

	asOf := time.Now()
	if raw := r.URL.Query().Get("as_of"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			http.Error(w, fmt.Sprintf("Invalid as_of parameter: %v", err), http.StatusBadRequest)
			return
		}
		asOf = parsed
	}

	stats, err := h.Aggregator.OwnerStats(r.Context(), ownerID, asOf)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to compute owner stats: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(stats); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}
