package gateway

import (
	"context"
	"errors"
)

// Status is the state a mobile-money transaction reports at the gateway.
type Status string

const (
	StatusConfirmed Status = "CONFIRMED"
	StatusPending   Status = "PENDING"
	StatusFailed    Status = "FAILED"
)

// ErrUnavailable is returned when the status-check call to the gateway could
// not complete. The payment stays pending and the caller retries.
var ErrUnavailable = errors.New("payment gateway unavailable")

// ErrDeclined is returned when the gateway reports the transaction failed.
var ErrDeclined = errors.New("transaction declined by gateway")

// Client verifies the state of an externally issued transaction with the
// mobile-money gateway. The gateway's wire protocol is outside this module;
// callers only see the resulting status.
type Client interface {
	// TransactionStatus returns the gateway's view of the transaction.
	TransactionStatus(ctx context.Context, transactionID string) (Status, error)
}

// NoOpClient is a gateway client that confirms every transaction. Used when
// payments arrive pre-verified (gateway callbacks, manual entry).
type NoOpClient struct{}

// TransactionStatus always reports the transaction as confirmed.
func (c *NoOpClient) TransactionStatus(ctx context.Context, transactionID string) (Status, error) {
	return StatusConfirmed, nil
}
