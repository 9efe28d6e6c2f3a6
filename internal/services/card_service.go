package services

import (
	"errors"
	"strings"

	"github.com/revertpixels/CardReminder/internal/cycle"
	"github.com/revertpixels/CardReminder/internal/models"
	"github.com/revertpixels/CardReminder/internal/repositories"
)

var (
	// ErrNotFound covers both a missing card and an ownership
	// mismatch: every query is scoped to (id, owner_id), so a card
	// belonging to someone else is indistinguishable from no card.
	ErrNotFound = errors.New("card not found")

	ErrInvalidCycleDay = errors.New("billing and due day must be between 1 and 31")
)

type CardService struct {
	Repo repositories.CardRepository
}

// CardView is a card decorated with its urgency buckets, as shown on
// the dashboard.
type CardView struct {
	*models.Card
	DueUrgency     string `json:"due_urgency"`
	BillingUrgency string `json:"billing_urgency"`
	DaysUntilDue   int    `json:"days_until_due"`
}

func NewCardService(repo repositories.CardRepository) *CardService {
	return &CardService{Repo: repo}
}

func (s *CardService) Create(card *models.Card) (int64, error) {
	if err := validateCard(card); err != nil {
		return 0, err
	}
	return s.Repo.Create(card)
}

// Update rewrites the card's terms; the repository clears the paid
// flag in the same statement, so an edited card starts a fresh cycle.
func (s *CardService) Update(card *models.Card) error {
	if err := validateCard(card); err != nil {
		return err
	}
	ok, err := s.Repo.Update(card)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}

func (s *CardService) Delete(id, ownerID int) error {
	ok, err := s.Repo.Delete(id, ownerID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}

func (s *CardService) GetByID(id, ownerID int) (*models.Card, error) {
	card, err := s.Repo.GetByID(id, ownerID)
	if err != nil {
		return nil, err
	}
	if card == nil {
		return nil, ErrNotFound
	}
	return card, nil
}

func (s *CardService) ListByOwner(ownerID int) ([]*models.Card, error) {
	return s.Repo.ListByOwner(ownerID)
}

// SetPaid toggles paid_this_cycle. The update is idempotent: marking
// an already-paid card paid again succeeds.
func (s *CardService) SetPaid(id, ownerID int, paid bool) error {
	ok, err := s.Repo.SetPaid(id, ownerID, paid)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}

// Dashboard returns the urgency summary plus per-card classification
// for one owner, evaluated at the given day-of-month.
func (s *CardService) Dashboard(ownerID, today int) (cycle.Summary, []CardView, error) {
	cards, err := s.Repo.ListByOwner(ownerID)
	if err != nil {
		return cycle.Summary{}, nil, err
	}

	views := make([]CardView, 0, len(cards))
	for _, card := range cards {
		due, billing := cycle.Classify(card, today)
		views = append(views, CardView{
			Card:           card,
			DueUrgency:     due.String(),
			BillingUrgency: billing.String(),
			DaysUntilDue:   cycle.DaysUntil(today, card.DueDay),
		})
	}
	return cycle.Summarize(cards, today), views, nil
}

func validateCard(card *models.Card) error {
	if strings.TrimSpace(card.HolderName) == "" {
		return errors.New("holder name is required")
	}
	if strings.TrimSpace(card.BankName) == "" {
		return errors.New("bank name is required")
	}
	if card.BillingDay < 1 || card.BillingDay > 31 || card.DueDay < 1 || card.DueDay > 31 {
		return ErrInvalidCycleDay
	}
	return nil
}
