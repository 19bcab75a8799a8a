package ledger

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/kodipay/rentledger/pkg/models"
	"github.com/kodipay/rentledger/pkg/storage"
)

// BucketTotals holds the running paid totals for the three due buckets.
type BucketTotals struct {
	Rent    int64 `json:"rent"`
	Utility int64 `json:"utility"`
	Deposit int64 `json:"deposit"`
}

// ReconcileResult reports whether a tenant's stored totals drifted from the
// payment history and what they were corrected to.
type ReconcileResult struct {
	TenantId  string       `json:"tenant_id"`
	Corrected bool         `json:"corrected"`
	Previous  BucketTotals `json:"previous"`
	Current   BucketTotals `json:"current"`
}

// Reconciler recomputes a tenant's running totals from the authoritative
// payment history and corrects drift. Drift is not an error: it is logged for
// audit and overwritten.
type Reconciler struct {
	Store storage.LedgerStore
}

// NewReconciler creates a new Reconciler.
func NewReconciler(store storage.LedgerStore) *Reconciler {
	return &Reconciler{Store: store}
}

// Reconcile recomputes all three bucket totals as the sum of completed
// payments of each type recorded since lease start, and overwrites the stored
// totals when they differ. Idempotent: with no new payments a second call
// finds no drift and writes nothing.
func (r *Reconciler) Reconcile(ctx context.Context, tenantID string) (*ReconcileResult, error) {
	tenant, err := r.Store.GetTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	payments, err := r.Store.ListPaymentsByTenant(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments for tenant %s: %w", tenantID, err)
	}

	previous := BucketTotals{
		Rent:    tenant.TotalRentPaid,
		Utility: tenant.TotalUtilityPaid,
		Deposit: tenant.TotalDepositPaid,
	}
	current := recomputeTotals(tenant, payments)

	result := &ReconcileResult{
		TenantId: tenantID,
		Previous: previous,
		Current:  current,
	}

	if current == previous {
		return result, nil
	}

	slog.Warn("ledger drift detected, correcting from payment history",
		"tenant_id", tenantID,
		"stored_rent", previous.Rent, "derived_rent", current.Rent,
		"stored_utility", previous.Utility, "derived_utility", current.Utility,
		"stored_deposit", previous.Deposit, "derived_deposit", current.Deposit,
	)

	_, err = r.Store.UpdateTenantLedger(ctx, &models.LedgerUpdate{
		TenantId:         tenant.Id,
		ExpectedVersion:  tenant.Version,
		WalletBalance:    tenant.WalletBalance,
		TotalRentPaid:    current.Rent,
		TotalUtilityPaid: current.Utility,
		TotalDepositPaid: current.Deposit,
		PaymentStanding:  tenant.PaymentStanding,
	})
	if err != nil {
		return nil, err
	}

	result.Corrected = true
	return result, nil
}

// recomputeTotals sums completed payments per bucket since lease start.
func recomputeTotals(tenant *models.Tenant, payments []models.Payment) BucketTotals {
	var totals BucketTotals
	for _, p := range payments {
		if p.Status != models.COMPLETED || p.CreatedAt.Before(tenant.LeaseStart) {
			continue
		}
		switch p.Type {
		case models.RENT:
			totals.Rent += p.Amount
		case models.UTILITY:
			totals.Utility += p.Amount
		case models.DEPOSIT:
			totals.Deposit += p.Amount
		}
	}
	return totals
}
