package cycle

import (
	"testing"

	"github.com/revertpixels/CardReminder/internal/models"
)

func TestDaysUntil(t *testing.T) {
	tests := []struct {
		name   string
		today  int
		target int
		want   int
	}{
		{name: "same day", today: 5, target: 5, want: 0},
		{name: "tomorrow", today: 14, target: 15, want: 1},
		{name: "end of window", today: 14, target: 17, want: 3},
		{name: "wrap across month end", today: 28, target: 2, want: 4},
		{name: "wrap from 30 to 1", today: 30, target: 1, want: 1},
		{name: "far away", today: 1, target: 20, want: 19},
		{
			// 31-1=30 is not negative, so no wrap applies and the
			// result exceeds the nominal [0,29] range. Intentional.
			name:   "day 31 from day 1 reaches 30",
			today:  1,
			target: 31,
			want:   30,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DaysUntil(tt.today, tt.target); got != tt.want {
				t.Errorf("DaysUntil(%d, %d) = %d, want %d", tt.today, tt.target, got, tt.want)
			}
		})
	}
}

func TestDaysUntil_Range(t *testing.T) {
	for today := 1; today <= 31; today++ {
		for target := 1; target <= 31; target++ {
			got := DaysUntil(today, target)
			if got < 0 || got > CycleLength {
				t.Fatalf("DaysUntil(%d, %d) = %d, out of [0,%d]", today, target, got, CycleLength)
			}
			if today == target && got != 0 {
				t.Fatalf("DaysUntil(%d, %d) = %d, want 0", today, target, got)
			}
		}
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name        string
		card        models.Card
		today       int
		wantDue     DueUrgency
		wantBilling BillingUrgency
	}{
		{
			name:    "due today",
			card:    models.Card{DueDay: 15, BillingDay: 1},
			today:   15,
			wantDue: DueSoon,
		},
		{
			name:    "due in three days with wrap",
			card:    models.Card{DueDay: 1, BillingDay: 10},
			today:   28,
			wantDue: DueSoon,
		},
		{
			name:    "due in four days is not soon",
			card:    models.Card{DueDay: 19, BillingDay: 10},
			today:   15,
			wantDue: DueNone,
		},
		{
			name:    "paid suppresses due",
			card:    models.Card{DueDay: 15, BillingDay: 1, PaidThisCycle: true},
			today:   15,
			wantDue: DuePaid,
		},
		{
			name:        "paid does not suppress billing",
			card:        models.Card{DueDay: 20, BillingDay: 16, PaidThisCycle: true},
			today:       15,
			wantDue:     DuePaid,
			wantBilling: BillingSoon,
		},
		{
			name:        "billing today",
			card:        models.Card{DueDay: 25, BillingDay: 15},
			today:       15,
			wantDue:     DueNone,
			wantBilling: BillingSoon,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			due, billing := Classify(&tt.card, tt.today)
			if due != tt.wantDue {
				t.Errorf("due = %v, want %v", due, tt.wantDue)
			}
			if billing != tt.wantBilling {
				t.Errorf("billing = %v, want %v", billing, tt.wantBilling)
			}
		})
	}
}
