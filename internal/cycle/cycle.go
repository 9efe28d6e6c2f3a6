// Package cycle holds the day-of-month arithmetic and urgency
// classification used by the dashboard and the reminder scan.
package cycle

import "github.com/revertpixels/CardReminder/internal/models"

// CycleLength is the assumed month length for wrap-around arithmetic.
// This is an approximation: every month is treated as 30 days, so
// results near 28/29/31-day month boundaries can be off by 1-3 days.
// The dashboard and the reminder scan both depend on exactly this
// behavior, so it must not be "fixed" to a calendar-aware version.
const CycleLength = 30

// ReminderWindow is the horizon, in days, inside which a billing or
// due event counts as "soon".
const ReminderWindow = 3

// DaysUntil returns the number of days from today's day-of-month to
// the target day-of-month, wrapping across the assumed 30-day cycle.
// Inputs are trusted day-of-month values in [1,31]; validation happens
// at the boundary where they enter the system. Note that the result
// can reach 30 (today=1, target=31): 31-1=30 is not negative, so no
// wrap is applied.
func DaysUntil(today, target int) int {
	diff := target - today
	if diff < 0 {
		diff += CycleLength
	}
	return diff
}

// DueUrgency classifies how urgent a card's payment is.
type DueUrgency int

const (
	DueNone DueUrgency = iota
	DueSoon
	DuePaid
)

// BillingUrgency classifies how close a card's statement date is.
type BillingUrgency int

const (
	BillingNone BillingUrgency = iota
	BillingSoon
)

func (u DueUrgency) String() string {
	switch u {
	case DueSoon:
		return "due_soon"
	case DuePaid:
		return "paid"
	default:
		return "none"
	}
}

func (u BillingUrgency) String() string {
	if u == BillingSoon {
		return "billing_soon"
	}
	return "none"
}

// Classify buckets a single card for the given day-of-month. Paid
// state suppresses due-urgency only; billing-urgency is computed
// regardless of whether the card is paid.
func Classify(card *models.Card, today int) (DueUrgency, BillingUrgency) {
	due := DueNone
	if card.PaidThisCycle {
		due = DuePaid
	} else if DaysUntil(today, card.DueDay) <= ReminderWindow {
		due = DueSoon
	}

	billing := BillingNone
	if DaysUntil(today, card.BillingDay) <= ReminderWindow {
		billing = BillingSoon
	}
	return due, billing
}
