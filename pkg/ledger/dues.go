package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/kodipay/rentledger/pkg/models"
	"github.com/kodipay/rentledger/pkg/storage"
)

// Dues holds a tenant's outstanding amounts per due bucket as of a date.
type Dues struct {
	RentOwedToDate int64 `json:"rent_owed_to_date"`
	RentDue        int64 `json:"rent_due"`
	UtilityDue     int64 `json:"utility_due"`
	DepositDue     int64 `json:"deposit_due"`
	TotalDue       int64 `json:"total_due"`
}

// DueAggregator computes outstanding dues for a tenant from its unit pricing
// and payment history.
type DueAggregator struct {
	Store storage.LedgerStore
}

// NewDueAggregator creates a new DueAggregator.
func NewDueAggregator(store storage.LedgerStore) *DueAggregator {
	return &DueAggregator{Store: store}
}

// GetDues loads the tenant, its unit pricing and payment history, and returns
// the outstanding dues as of the given date.
func (a *DueAggregator) GetDues(ctx context.Context, tenantID string, asOf time.Time) (*Dues, error) {
	tenant, unit, payments, err := loadLedgerInputs(ctx, a.Store, tenantID)
	if err != nil {
		return nil, err
	}
	return ComputeDues(tenant, unit, payments, asOf), nil
}

// ComputeDues derives outstanding dues from the tenant's denormalized totals
// and completed payment history. Rent and deposit accrue cumulatively since
// lease start; utility resets every calendar month. All dues are zero before
// the lease starts.
func ComputeDues(tenant *models.Tenant, unit *models.UnitType, payments []models.Payment, asOf time.Time) *Dues {
	if asOf.Before(tenant.LeaseStart) {
		return &Dues{}
	}

	rentOwed := unit.Price * MonthsElapsed(tenant.LeaseStart, asOf)
	d := &Dues{
		RentOwedToDate: rentOwed,
		RentDue:        clampNonNegative(rentOwed - tenant.TotalRentPaid),
		UtilityDue:     clampNonNegative(unit.MonthlyUtility - utilityPaidInMonth(payments, asOf)),
		DepositDue:     clampNonNegative(unit.Deposit - tenant.TotalDepositPaid),
	}
	d.TotalDue = d.RentDue + d.UtilityDue + d.DepositDue
	return d
}

// ComputeOverdueAmount is the reporting variant of ComputeDues. It clamps the
// accrual window to [leaseStart, min(leaseEnd, asOf)] so that a tenant whose
// lease has ended stops accruing rent, and measures the utility bucket against
// the final month of that window.
func ComputeOverdueAmount(tenant *models.Tenant, unit *models.UnitType, payments []models.Payment, asOf time.Time) int64 {
	end := asOf
	if !tenant.LeaseOpenEnded() && tenant.LeaseEnd.Before(end) {
		end = tenant.LeaseEnd
	}
	if end.Before(tenant.LeaseStart) {
		return 0
	}

	rentOver := clampNonNegative(unit.Price*MonthsElapsed(tenant.LeaseStart, end) - tenant.TotalRentPaid)
	utilOver := clampNonNegative(unit.MonthlyUtility - utilityPaidInMonth(payments, end))
	depOver := clampNonNegative(unit.Deposit - tenant.TotalDepositPaid)
	return rentOver + utilOver + depOver
}

// utilityPaidInMonth sums completed utility payments dated within asOf's
// calendar month. Only payments recorded with type UTILITY count: utility
// covered by draining another payment's remainder raises TotalUtilityPaid but
// is invisible here, so that month's utility can be billed again.
func utilityPaidInMonth(payments []models.Payment, asOf time.Time) int64 {
	var total int64
	for _, p := range payments {
		if p.Type == models.UTILITY && p.Status == models.COMPLETED && sameCalendarMonth(p.PaymentDate, asOf) {
			total += p.Amount
		}
	}
	return total
}

// loadLedgerInputs fetches the tenant, its unit pricing and payment history.
func loadLedgerInputs(ctx context.Context, store storage.LedgerStore, tenantID string) (*models.Tenant, *models.UnitType, []models.Payment, error) {
	tenant, err := store.GetTenant(ctx, tenantID)
	if err != nil {
		return nil, nil, nil, err
	}

	property, err := store.GetProperty(ctx, tenant.PropertyId)
	if err != nil {
		return nil, nil, nil, err
	}

	unit := property.UnitType(tenant.UnitTypeId)
	if unit == nil {
		return nil, nil, nil, fmt.Errorf("tenant %s references unit type %s on property %s: %w",
			tenant.Id, tenant.UnitTypeId, property.Id, storage.ErrUnitTypeNotFound)
	}

	payments, err := store.ListPaymentsByTenant(ctx, tenantID)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to list payments for tenant %s: %w", tenantID, err)
	}

	return tenant, unit, payments, nil
}

func clampNonNegative(v int64) int64 {
	if v < 0 {
		return 0
	}
	return v
}
