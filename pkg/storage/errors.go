package storage

import "errors"

// ErrTenantNotFound is returned when no tenant record exists for the given id.
var ErrTenantNotFound = errors.New("tenant not found")

// ErrPropertyNotFound is returned when no property record exists for the given id.
var ErrPropertyNotFound = errors.New("property not found")

// ErrPaymentNotFound is returned when no payment record exists for the given id.
var ErrPaymentNotFound = errors.New("payment not found")

// ErrUnitTypeNotFound is returned when a tenant references a unit type its
// property does not define.
var ErrUnitTypeNotFound = errors.New("unit type not found")

// ErrConcurrencyConflict is returned when a conditional ledger write finds the
// tenant's version counter has moved since it was read. No partial change is
// applied; the caller must re-read and retry.
var ErrConcurrencyConflict = errors.New("tenant ledger modified concurrently")

// ErrDuplicateTransaction is returned when a payment with the same external
// transaction id has already been recorded.
var ErrDuplicateTransaction = errors.New("duplicate external transaction id")

// ErrPaymentNotPending is returned when a status transition is attempted on a
// payment that has already reached a terminal status.
var ErrPaymentNotPending = errors.New("payment not in a pending state")

// ErrReminderAlreadySent is returned when a reminder record already exists for
// the same tenant, trigger type and calendar day.
var ErrReminderAlreadySent = errors.New("reminder already recorded for this day")
