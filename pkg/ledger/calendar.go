package ledger

import "time"

// ReminderTrigger identifies which reminder, if any, a calendar day calls for.
type ReminderTrigger string

const (
	TriggerNone           ReminderTrigger = "NONE"
	TriggerPaymentDate    ReminderTrigger = "PAYMENT_DATE"
	TriggerFiveDaysBefore ReminderTrigger = "FIVE_DAYS_BEFORE"
)

const daysPerBillingMonth = 30

// MonthsElapsed returns the number of whole 30-day billing months between the
// lease start and asOf, floored at zero for leases that have not started.
// Both times are reduced to calendar dates first, so time of day and DST
// offsets never shave a day off the count.
func MonthsElapsed(leaseStart, asOf time.Time) int64 {
	days := int64(dateOnly(asOf).Sub(dateOnly(leaseStart)) / (24 * time.Hour))
	if days < 0 {
		return 0
	}
	return days / daysPerBillingMonth
}

// dateOnly truncates t to its calendar date in UTC.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ReminderTriggerFor returns the reminder trigger for asOf given a property's
// rent payment day (1-28). The five-days-before check wraps into the previous
// month's day count when rentPaymentDate-5 is zero or negative: for a payment
// day of 3, the early reminder in a 30-day month falls on day 28.
func ReminderTriggerFor(rentPaymentDate int, asOf time.Time) ReminderTrigger {
	if asOf.Day() == rentPaymentDate {
		return TriggerPaymentDate
	}

	early := rentPaymentDate - 5
	if early <= 0 {
		early += daysInMonth(asOf)
	}
	if asOf.Day() == early {
		return TriggerFiveDaysBefore
	}

	return TriggerNone
}

// daysInMonth returns the number of calendar days in t's month.
func daysInMonth(t time.Time) int {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, t.Location()).Day()
}

// sameCalendarMonth reports whether a and b fall in the same calendar month.
func sameCalendarMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}
