package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMonthsElapsed(t *testing.T) {
	leaseStart := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("Before Lease Start", func(t *testing.T) {
		asOf := leaseStart.AddDate(0, 0, -10)
		assert.Equal(t, int64(0), MonthsElapsed(leaseStart, asOf))
	})

	t.Run("Same Day", func(t *testing.T) {
		assert.Equal(t, int64(0), MonthsElapsed(leaseStart, leaseStart))
	})

	t.Run("29 Days Is Zero Months", func(t *testing.T) {
		asOf := leaseStart.AddDate(0, 0, 29)
		assert.Equal(t, int64(0), MonthsElapsed(leaseStart, asOf))
	})

	t.Run("30 Days Is One Month", func(t *testing.T) {
		asOf := leaseStart.AddDate(0, 0, 30)
		assert.Equal(t, int64(1), MonthsElapsed(leaseStart, asOf))
	})

	t.Run("65 Days Is Two Months", func(t *testing.T) {
		asOf := leaseStart.AddDate(0, 0, 65)
		assert.Equal(t, int64(2), MonthsElapsed(leaseStart, asOf))
	})

	t.Run("Time Of Day Is Ignored", func(t *testing.T) {
		start := time.Date(2026, 1, 1, 18, 0, 0, 0, time.UTC)
		asOf := time.Date(2026, 1, 31, 6, 0, 0, 0, time.UTC)
		assert.Equal(t, int64(1), MonthsElapsed(start, asOf))
	})

	t.Run("DST Transition Does Not Shave A Day", func(t *testing.T) {
		// 30 calendar days spanning a spring-forward: wall-clock elapsed time
		// is an hour short of 30 full days, but the month still counts.
		est := time.FixedZone("EST", -5*60*60)
		edt := time.FixedZone("EDT", -4*60*60)
		start := time.Date(2026, 3, 1, 0, 0, 0, 0, est)
		asOf := time.Date(2026, 3, 31, 0, 0, 0, 0, edt)
		assert.Equal(t, int64(1), MonthsElapsed(start, asOf))
	})
}

func TestReminderTriggerFor(t *testing.T) {
	t.Run("Payment Date", func(t *testing.T) {
		asOf := time.Date(2026, 6, 10, 8, 0, 0, 0, time.UTC)
		assert.Equal(t, TriggerPaymentDate, ReminderTriggerFor(10, asOf))
	})

	t.Run("Five Days Before", func(t *testing.T) {
		asOf := time.Date(2026, 6, 5, 8, 0, 0, 0, time.UTC)
		assert.Equal(t, TriggerFiveDaysBefore, ReminderTriggerFor(10, asOf))
	})

	t.Run("No Trigger", func(t *testing.T) {
		asOf := time.Date(2026, 6, 7, 8, 0, 0, 0, time.UTC)
		assert.Equal(t, TriggerNone, ReminderTriggerFor(10, asOf))
	})

	t.Run("Early Reminder Wraps Into Previous Month", func(t *testing.T) {
		// Payment day 3: the early reminder lands 5 days before, which in a
		// 30-day month is day 28.
		asOf := time.Date(2026, 6, 28, 8, 0, 0, 0, time.UTC)
		assert.Equal(t, TriggerFiveDaysBefore, ReminderTriggerFor(3, asOf))
	})

	t.Run("Wrap Uses Actual Month Length", func(t *testing.T) {
		// Same payment day in a 31-day month lands on day 29, not 28.
		asOf28 := time.Date(2026, 7, 28, 8, 0, 0, 0, time.UTC)
		asOf29 := time.Date(2026, 7, 29, 8, 0, 0, 0, time.UTC)
		assert.Equal(t, TriggerNone, ReminderTriggerFor(3, asOf28))
		assert.Equal(t, TriggerFiveDaysBefore, ReminderTriggerFor(3, asOf29))
	})
}
