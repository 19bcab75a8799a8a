package storage

import (
	"context"

	"github.com/kodipay/rentledger/pkg/models"
)

// PaymentStore defines the interface for the append-only payment history.
type PaymentStore interface {
	// CreatePayment records a new pending payment. When the payment carries an
	// external transaction id, uniqueness of that id is enforced atomically;
	// a second confirmation of the same gateway transaction returns
	// ErrDuplicateTransaction.
	CreatePayment(ctx context.Context, payment *models.Payment) (*models.Payment, error)

	// GetPayment retrieves a payment by its ID.
	GetPayment(ctx context.Context, paymentID string) (*models.Payment, error)

	// GetPaymentByTransactionId retrieves the payment that claimed an external
	// transaction id, so a confirmation that stalled mid-flow can be resumed.
	GetPaymentByTransactionId(ctx context.Context, transactionID string) (*models.Payment, error)

	// SettlePayment transitions a pending payment to a terminal status and
	// attaches the settlement timestamp. The transition happens exactly once;
	// a payment already in a terminal status returns ErrPaymentNotPending.
	SettlePayment(ctx context.Context, paymentID string, status models.PaymentStatus) (*models.Payment, error)

	// ListPaymentsByTenant retrieves all payments recorded for a tenant.
	ListPaymentsByTenant(ctx context.Context, tenantID string) ([]models.Payment, error)
}
