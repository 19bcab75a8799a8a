package reminders

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/kodipay/rentledger/pkg/ledger"
)

// RemindersHandler holds the dependencies for reminder-related handlers.
type RemindersHandler struct {
	Scheduler *ledger.ReminderScheduler
}

// NewRemindersHandler creates a new RemindersHandler.
func NewRemindersHandler(scheduler *ledger.ReminderScheduler) *RemindersHandler {
	return &RemindersHandler{Scheduler: scheduler}
}

// ListDueReminders handles the logic for previewing which tenants would
// receive a reminder today without sending anything.
func (h *RemindersHandler) ListDueReminders(w http.ResponseWriter, r *http.Request) {
	ownerID := chi.URLParam(r, "ownerId")

	asOf, ok := parseAsOf(w, r)
	if !ok {
		return
	}

	candidates, err := h.Scheduler.DueReminders(r.Context(), ownerID, asOf)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to compute due reminders: %v", err), http.StatusInternalServerError)
		return
	}

	if candidates == nil {
		candidates = []ledger.ReminderCandidate{}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(candidates); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

// SendReminders handles the logic for running a reminder sweep across an
// owner's properties. Delivery failures are reported, not fatal.
func (h *RemindersHandler) SendReminders(w http.ResponseWriter, r *http.Request) {
	ownerID := chi.URLParam(r, "ownerId")

	asOf, ok := parseAsOf(w, r)
	if !ok {
		return
	}

	result, err := h.Scheduler.SendReminders(r.Context(), ownerID, asOf)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to run reminder sweep: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(result); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

func parseAsOf(w http.ResponseWriter, r *http.Request) (time.Time, bool) {
	raw := r.URL.Query().Get("as_of")
	if raw == "" {
		return time.Now(), true
	}
	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		http.Error(w, fmt.Sprintf("Invalid as_of parameter: %v", err), http.StatusBadRequest)
		return time.Time{}, false
	}
	return parsed, true
}
