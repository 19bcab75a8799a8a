package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/kodipay/rentledger/pkg/models"
	"github.com/kodipay/rentledger/pkg/storage"
)

// PortfolioStats aggregates ledger state across all of an owner's properties.
type PortfolioStats struct {
	OwnerId             string `json:"owner_id"`
	Properties          int    `json:"properties"`
	Tenants             int    `json:"tenants"`
	TotalUnits          int    `json:"total_units"`
	OccupiedUnits       int    `json:"occupied_units"`
	MonthlyRent         int64  `json:"monthly_rent"`
	OverdueTenants      int    `json:"overdue_tenants"`
	OverdueAmount       int64  `json:"overdue_amount"`
	CollectedThisMonth  int64  `json:"collected_this_month"`
	CollectedAllTime    int64  `json:"collected_all_time"`
}

// PortfolioAggregator folds per-tenant dues into owner-level statistics.
// Every call is a batch recomputation from storage; there is no caching or
// incremental maintenance.
type PortfolioAggregator struct {
	Store storage.LedgerStore
}

// NewPortfolioAggregator creates a new PortfolioAggregator.
func NewPortfolioAggregator(store storage.LedgerStore) *PortfolioAggregator {
	return &PortfolioAggregator{Store: store}
}

// OwnerStats computes portfolio statistics for an owner as of the given date.
func (pa *PortfolioAggregator) OwnerStats(ctx context.Context, ownerID string, asOf time.Time) (*PortfolioStats, error) {
	properties, err := pa.Store.ListPropertiesByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list properties for owner %s: %w", ownerID, err)
	}

	stats := &PortfolioStats{OwnerId: ownerID}

	for i := range properties {
		property := &properties[i]
		stats.Properties++
		stats.TotalUnits += property.TotalUnits()

		tenants, err := pa.Store.ListTenantsByProperty(ctx, property.Id)
		if err != nil {
			return nil, fmt.Errorf("failed to list tenants for property %s: %w", property.Id, err)
		}

		for j := range tenants {
			tenant := &tenants[j]
			if tenant.Status != models.ACTIVE {
				continue
			}

			unit := property.UnitType(tenant.UnitTypeId)
			if unit == nil {
				return nil, fmt.Errorf("tenant %s references unit type %s on property %s: %w",
					tenant.Id, tenant.UnitTypeId, property.Id, storage.ErrUnitTypeNotFound)
			}

			stats.Tenants++
			stats.OccupiedUnits++

			if leaseSpansMonth(tenant, asOf) {
				stats.MonthlyRent += unit.Price
			}

			payments, err := pa.Store.ListPaymentsByTenant(ctx, tenant.Id)
			if err != nil {
				return nil, fmt.Errorf("failed to list payments for tenant %s: %w", tenant.Id, err)
			}

			if overdue := ComputeOverdueAmount(tenant, unit, payments, asOf); overdue > 0 {
				stats.OverdueTenants++
				stats.OverdueAmount += overdue
			}

			for _, p := range payments {
				if p.Status != models.COMPLETED {
					continue
				}
				stats.CollectedAllTime += p.Amount
				if sameCalendarMonth(p.PaymentDate, asOf) {
					stats.CollectedThisMonth += p.Amount
				}
			}
		}
	}

	return stats, nil
}

// leaseSpansMonth reports whether the tenant's lease covers any part of asOf's
// calendar month.
func leaseSpansMonth(tenant *models.Tenant, asOf time.Time) bool {
	monthStart := time.Date(asOf.Year(), asOf.Month(), 1, 0, 0, 0, 0, asOf.Location())
	monthEnd := monthStart.AddDate(0, 1, 0)

	if !tenant.LeaseStart.Before(monthEnd) {
		return false
	}
	if tenant.LeaseOpenEnded() {
		return true
	}
	return !tenant.LeaseEnd.Before(monthStart)
}
