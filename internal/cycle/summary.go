package cycle

import "github.com/revertpixels/CardReminder/internal/models"

// Summary holds the dashboard counters for one user's cards.
type Summary struct {
	Total       int `json:"total"`
	DueSoon     int `json:"due_soon"`
	BillingSoon int `json:"billing_soon"`
	Paid        int `json:"paid"`
}

// Summarize counts urgency buckets over a user's cards. A paid card
// counts toward Paid and never toward DueSoon; BillingSoon is counted
// independently of paid state. Iteration order does not matter.
func Summarize(cards []*models.Card, today int) Summary {
	s := Summary{Total: len(cards)}
	for _, card := range cards {
		due, billing := Classify(card, today)
		switch due {
		case DuePaid:
			s.Paid++
		case DueSoon:
			s.DueSoon++
		}
		if billing == BillingSoon {
			s.BillingSoon++
		}
	}
	return s
}
