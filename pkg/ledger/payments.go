package ledger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/kodipay/rentledger/pkg/gateway"
	"github.com/kodipay/rentledger/pkg/models"
	"github.com/kodipay/rentledger/pkg/storage"
)

// maxAllocationRetries bounds the re-read-and-retry loop on version conflicts.
// Retries are the only ordering mechanism for concurrent allocations.
const maxAllocationRetries = 3

// ConfirmPaymentInput carries one confirmed-payment event from the gateway
// callback or a manual entry.
type ConfirmPaymentInput struct {
	TenantId      string
	PropertyId    string
	Amount        int64
	Type          models.PaymentType
	TransactionId string
	Reference     string
	PaymentDate   time.Time
}

// PaymentProcessor runs the full confirmation flow for one payment event:
// record, verify with the gateway, allocate, settle.
type PaymentProcessor struct {
	Store     storage.LedgerStore
	Gateway   gateway.Client
	Allocator *Allocator
}

// NewPaymentProcessor creates a new PaymentProcessor.
func NewPaymentProcessor(store storage.LedgerStore, gw gateway.Client) *PaymentProcessor {
	return &PaymentProcessor{
		Store:     store,
		Gateway:   gw,
		Allocator: NewAllocator(store),
	}
}

// ConfirmPayment records the payment, verifies its transaction id with the
// gateway, allocates it across the tenant's due buckets and marks it
// completed. A gateway failure leaves the payment pending for the caller to
// retry; the retry resumes the same pending payment through its transaction
// id. Version conflicts during allocation are retried a bounded number of
// times; each retry re-reads the tenant before re-applying.
func (p *PaymentProcessor) ConfirmPayment(ctx context.Context, input ConfirmPaymentInput) (*models.Payment, *models.Tenant, error) {
	if input.Amount <= 0 {
		return nil, nil, &ValidationError{Field: "amount", Reason: "must be positive"}
	}
	if !models.KnownPaymentType(input.Type) {
		return nil, nil, &ValidationError{Field: "type", Reason: "unrecognized payment type"}
	}
	if input.TenantId == "" {
		return nil, nil, &ValidationError{Field: "tenant_id", Reason: "must not be empty"}
	}

	paymentDate := input.PaymentDate
	if paymentDate.IsZero() {
		paymentDate = time.Now()
	}

	payment, err := p.Store.CreatePayment(ctx, &models.Payment{
		TenantId:      input.TenantId,
		PropertyId:    input.PropertyId,
		Amount:        input.Amount,
		Type:          input.Type,
		PaymentDate:   paymentDate,
		TransactionId: input.TransactionId,
		Reference:     input.Reference,
	})
	if err != nil {
		if input.TransactionId == "" || !errors.Is(err, storage.ErrDuplicateTransaction) {
			return nil, nil, err
		}
		// The transaction id was already claimed. If the earlier confirmation
		// stalled before settling (gateway outage), resume it rather than
		// stranding the pending payment; a settled payment is a real duplicate.
		existing, lookupErr := p.Store.GetPaymentByTransactionId(ctx, input.TransactionId)
		if lookupErr != nil {
			return nil, nil, fmt.Errorf("failed to look up payment for transaction %s: %v: %w", input.TransactionId, lookupErr, err)
		}
		if existing.Status != models.PENDING {
			return existing, nil, err
		}
		slog.Info("resuming pending payment confirmation", "payment_id", existing.Id, "transaction_id", input.TransactionId)
		payment = existing
	}

	// Verify the external transaction before touching the ledger. On a failed
	// status check the payment stays PENDING and the caller retries the whole
	// confirmation.
	if input.TransactionId != "" {
		status, err := p.Gateway.TransactionStatus(ctx, input.TransactionId)
		if err != nil {
			return payment, nil, fmt.Errorf("status check for transaction %s: %w: %v", input.TransactionId, gateway.ErrUnavailable, err)
		}
		switch status {
		case gateway.StatusFailed:
			if _, err := p.Store.SettlePayment(ctx, payment.Id, models.FAILED); err != nil {
				return payment, nil, fmt.Errorf("failed to mark declined payment %s: %w", payment.Id, err)
			}
			return payment, nil, gateway.ErrDeclined
		case gateway.StatusPending:
			return payment, nil, fmt.Errorf("transaction %s still pending at gateway: %w", input.TransactionId, gateway.ErrUnavailable)
		}
	}

	tenant, err := p.allocateWithRetry(ctx, payment)
	if err != nil {
		return payment, nil, err
	}

	settled, err := p.Store.SettlePayment(ctx, payment.Id, models.COMPLETED)
	if err != nil {
		// The ledger already reflects the payment; reconciliation re-derives
		// totals from history if this settle is lost.
		slog.Error("payment allocated but not settled", "payment_id", payment.Id, "error", err)
		return payment, tenant, fmt.Errorf("failed to settle payment %s: %w", payment.Id, err)
	}

	return settled, tenant, nil
}

// allocateWithRetry re-reads and re-applies on version conflicts.
func (p *PaymentProcessor) allocateWithRetry(ctx context.Context, payment *models.Payment) (*models.Tenant, error) {
	var tenant *models.Tenant
	var err error
	for attempt := 0; attempt < maxAllocationRetries; attempt++ {
		tenant, err = p.Allocator.ApplyPayment(ctx, payment)
		if err == nil {
			return tenant, nil
		}
		if !errors.Is(err, storage.ErrConcurrencyConflict) {
			return nil, err
		}
		slog.Warn("allocation conflict, retrying", "payment_id", payment.Id, "attempt", attempt+1)
	}
	return nil, err
}
