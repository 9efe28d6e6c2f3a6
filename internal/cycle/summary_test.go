package cycle

import (
	"testing"

	"github.com/revertpixels/CardReminder/internal/models"
)

func TestSummarize(t *testing.T) {
	today := 10
	cards := []*models.Card{
		// paid and due within window: counts as paid, not dueSoon
		{DueDay: 12, BillingDay: 25, PaidThisCycle: true},
		// unpaid, due within window
		{DueDay: 13, BillingDay: 25},
		// unpaid, nothing soon
		{DueDay: 25, BillingDay: 25},
	}

	got := Summarize(cards, today)
	want := Summary{Total: 3, DueSoon: 1, BillingSoon: 0, Paid: 1}
	if got != want {
		t.Errorf("Summarize() = %+v, want %+v", got, want)
	}
}

func TestSummarize_BillingIndependentOfPaid(t *testing.T) {
	today := 14
	cards := []*models.Card{
		{DueDay: 20, BillingDay: 15, PaidThisCycle: true},
		{DueDay: 16, BillingDay: 16},
	}

	got := Summarize(cards, today)
	want := Summary{Total: 2, DueSoon: 1, BillingSoon: 2, Paid: 1}
	if got != want {
		t.Errorf("Summarize() = %+v, want %+v", got, want)
	}
}

func TestSummarize_Empty(t *testing.T) {
	got := Summarize(nil, 1)
	if got != (Summary{}) {
		t.Errorf("Summarize(nil) = %+v, want zero value", got)
	}
}
