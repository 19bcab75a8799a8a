package storage

import (
	"context"

	"github.com/kodipay/rentledger/pkg/models"
)

// ReminderStore defines the interface for reminder dedupe records.
type ReminderStore interface {
	// CreateReminderRecord persists a reminder record. Returns
	// ErrReminderAlreadySent if a record with the same tenant, trigger type
	// and calendar day already exists.
	CreateReminderRecord(ctx context.Context, record *models.ReminderRecord) error

	// HasReminderRecord reports whether a reminder record already exists for
	// the given dedupe key.
	HasReminderRecord(ctx context.Context, recordID string) (bool, error)
}
