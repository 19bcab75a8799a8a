package storage

import (
	"context"

	"github.com/kodipay/rentledger/pkg/models"
)

// TenantStore defines the interface for managing tenant ledger records.
type TenantStore interface {
	// GetTenant retrieves a tenant by its ID.
	GetTenant(ctx context.Context, tenantID string) (*models.Tenant, error)

	// CreateTenant creates a new tenant record at lease signing.
	CreateTenant(ctx context.Context, tenant *models.Tenant) (*models.Tenant, error)

	// ListTenantsByProperty retrieves all tenants attached to a property.
	ListTenantsByProperty(ctx context.Context, propertyID string) ([]models.Tenant, error)

	// ListActiveTenants retrieves every tenant with an open lease.
	ListActiveTenants(ctx context.Context) ([]models.Tenant, error)

	// UpdateTenantLedger applies new running totals, wallet balance and
	// payment standing in a single conditional write guarded by the tenant's
	// version counter. Returns ErrConcurrencyConflict if the stored version
	// no longer matches update.ExpectedVersion.
	UpdateTenantLedger(ctx context.Context, update *models.LedgerUpdate) (*models.Tenant, error)
}
