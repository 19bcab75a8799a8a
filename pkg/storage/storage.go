package storage

// LedgerStore defines the data access the ledger engine itself needs:
// tenant records, property pricing and the authoritative payment history.
type LedgerStore interface {
	TenantStore
	PropertyStore
	PaymentStore
}

// Storage defines the root interface for the entire data layer.
// It composes all available storage operations. Components should depend on
// the more granular interfaces (TenantStore, PaymentStore, etc.) instead of
// this one.
type Storage interface {
	LedgerStore
	ReminderStore
}
