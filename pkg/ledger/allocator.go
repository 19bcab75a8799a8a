package ledger

import (
	"context"
	"log/slog"
	"time"

	"github.com/kodipay/rentledger/pkg/models"
	"github.com/kodipay/rentledger/pkg/storage"
)

// Allocator distributes a confirmed payment across a tenant's due buckets and
// persists the resulting ledger state behind an optimistic-concurrency guard.
type Allocator struct {
	Store storage.LedgerStore
}

// NewAllocator creates a new Allocator.
func NewAllocator(store storage.LedgerStore) *Allocator {
	return &Allocator{Store: store}
}

// allocation holds the amounts a single payment moved into each bucket and
// the wallet balance left after the drain phase.
type allocation struct {
	rent    int64
	utility int64
	deposit int64
	wallet  int64
}

// ApplyPayment applies one confirmed payment to the tenant's ledger:
// direct application to the bucket matching the payment type, remainder to
// the wallet, then a wallet drain in fixed Rent > Utility > Deposit priority.
// The write is a single conditional update on the tenant's version counter;
// on conflict storage.ErrConcurrencyConflict is returned and no partial
// change is applied.
func (al *Allocator) ApplyPayment(ctx context.Context, payment *models.Payment) (*models.Tenant, error) {
	if payment.Amount <= 0 {
		return nil, &ValidationError{Field: "amount", Reason: "must be positive"}
	}
	if !models.KnownPaymentType(payment.Type) {
		return nil, &ValidationError{Field: "type", Reason: "unrecognized payment type"}
	}

	tenant, unit, payments, err := loadLedgerInputs(ctx, al.Store, payment.TenantId)
	if err != nil {
		return nil, err
	}

	asOf := payment.PaymentDate
	if asOf.IsZero() {
		asOf = time.Now()
	}
	dues := ComputeDues(tenant, unit, payments, asOf)
	alloc := allocate(dues, tenant.WalletBalance, payment.Amount, payment.Type)

	standing := models.CURRENT
	if dues.TotalDue-alloc.rent-alloc.utility-alloc.deposit > 0 {
		standing = models.OVERDUE
	}

	update := &models.LedgerUpdate{
		TenantId:         tenant.Id,
		ExpectedVersion:  tenant.Version,
		WalletBalance:    alloc.wallet,
		TotalRentPaid:    tenant.TotalRentPaid + alloc.rent,
		TotalUtilityPaid: tenant.TotalUtilityPaid + alloc.utility,
		TotalDepositPaid: tenant.TotalDepositPaid + alloc.deposit,
		PaymentStanding:  standing,
	}

	updated, err := al.Store.UpdateTenantLedger(ctx, update)
	if err != nil {
		return nil, err
	}

	slog.Info("payment allocated",
		"tenant_id", tenant.Id,
		"payment_id", payment.Id,
		"amount", payment.Amount,
		"type", payment.Type,
		"applied_rent", alloc.rent,
		"applied_utility", alloc.utility,
		"applied_deposit", alloc.deposit,
		"wallet_balance", alloc.wallet,
	)

	return updated, nil
}

// allocate runs the waterfall for one payment. Direct application hits the
// bucket matching the payment type; OTHER payments skip straight to the
// wallet. The drain phase then pours wallet funds into the first unmet bucket
// in Rent > Utility > Deposit order until the wallet is empty or all dues are
// zero. The ordering is deterministic and must hold for both phases.
func allocate(dues *Dues, walletBalance, amount int64, paymentType models.PaymentType) allocation {
	rentDue, utilityDue, depositDue := dues.RentDue, dues.UtilityDue, dues.DepositDue

	var applied allocation
	remainder := amount

	switch paymentType {
	case models.RENT:
		direct := min64(rentDue, remainder)
		applied.rent += direct
		rentDue -= direct
		remainder -= direct
	case models.UTILITY:
		direct := min64(utilityDue, remainder)
		applied.utility += direct
		utilityDue -= direct
		remainder -= direct
	case models.DEPOSIT:
		direct := min64(depositDue, remainder)
		applied.deposit += direct
		depositDue -= direct
		remainder -= direct
	case models.OTHER:
		// No bucket; the full amount carries into the wallet.
	}

	wallet := walletBalance + remainder

	for wallet > 0 && rentDue+utilityDue+depositDue > 0 {
		switch {
		case rentDue > 0:
			drained := min64(rentDue, wallet)
			applied.rent += drained
			rentDue -= drained
			wallet -= drained
		case utilityDue > 0:
			drained := min64(utilityDue, wallet)
			applied.utility += drained
			utilityDue -= drained
			wallet -= drained
		default:
			drained := min64(depositDue, wallet)
			applied.deposit += drained
			depositDue -= drained
			wallet -= drained
		}
	}

	applied.wallet = wallet
	return applied
}

func min64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}
