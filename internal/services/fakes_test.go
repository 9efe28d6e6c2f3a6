package services

import (
	"errors"
	"time"

	"github.com/revertpixels/CardReminder/internal/models"
)

// --- in-memory user repository ---

type fakeUserRepo struct {
	users  map[string]*models.User // keyed by email
	nextID int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*models.User{}, nextID: 1}
}

func (r *fakeUserRepo) Create(user *models.User) error {
	user.ID = r.nextID
	r.nextID++
	user.CreatedAt = time.Now()
	r.users[user.Email] = user
	return nil
}

func (r *fakeUserRepo) GetByID(id int) (*models.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	return r.users[email], nil
}

func (r *fakeUserRepo) UpdatePassword(userID int, hash string) error {
	for _, u := range r.users {
		if u.ID == userID {
			u.PasswordHash = hash
			return nil
		}
	}
	return errors.New("no such user")
}

func (r *fakeUserRepo) UpdateTelegramChatID(userID int, chatID *int64) error {
	for _, u := range r.users {
		if u.ID == userID {
			u.TelegramChatID = chatID
			return nil
		}
	}
	return errors.New("no such user")
}

// --- in-memory password reset repository ---

type fakeResetRepo struct {
	challenges map[int]*models.PasswordReset
}

func newFakeResetRepo() *fakeResetRepo {
	return &fakeResetRepo{challenges: map[int]*models.PasswordReset{}}
}

func (r *fakeResetRepo) Upsert(userID int, code string, expiresAt time.Time) (*models.PasswordReset, error) {
	pr := &models.PasswordReset{
		ID:        userID,
		UserID:    userID,
		Code:      code,
		ExpiresAt: expiresAt,
		CreatedAt: time.Now(),
	}
	r.challenges[userID] = pr
	return pr, nil
}

func (r *fakeResetRepo) GetByUserID(userID int) (*models.PasswordReset, error) {
	return r.challenges[userID], nil
}

func (r *fakeResetRepo) MarkVerified(userID int, code string, now time.Time) (bool, error) {
	pr := r.challenges[userID]
	if pr == nil || pr.Code != code || !pr.ExpiresAt.After(now) {
		return false, nil
	}
	pr.Verified = true
	return true, nil
}

func (r *fakeResetRepo) Delete(userID int) error {
	delete(r.challenges, userID)
	return nil
}

// --- in-memory card repository ---

type fakeCardRepo struct {
	cards  map[int]*models.Card
	owners map[int]string // ownerID -> email
	nextID int

	listErr error
}

func newFakeCardRepo() *fakeCardRepo {
	return &fakeCardRepo{cards: map[int]*models.Card{}, owners: map[int]string{}, nextID: 1}
}

func (r *fakeCardRepo) Create(card *models.Card) (int64, error) {
	card.ID = r.nextID
	r.nextID++
	card.CreatedAt = time.Now()
	r.cards[card.ID] = card
	return int64(card.ID), nil
}

func (r *fakeCardRepo) Update(card *models.Card) (bool, error) {
	existing := r.cards[card.ID]
	if existing == nil || existing.OwnerID != card.OwnerID {
		return false, nil
	}
	card.PaidThisCycle = false
	card.CreatedAt = existing.CreatedAt
	r.cards[card.ID] = card
	return true, nil
}

func (r *fakeCardRepo) Delete(id, ownerID int) (bool, error) {
	existing := r.cards[id]
	if existing == nil || existing.OwnerID != ownerID {
		return false, nil
	}
	delete(r.cards, id)
	return true, nil
}

func (r *fakeCardRepo) GetByID(id, ownerID int) (*models.Card, error) {
	existing := r.cards[id]
	if existing == nil || existing.OwnerID != ownerID {
		return nil, nil
	}
	return existing, nil
}

func (r *fakeCardRepo) ListByOwner(ownerID int) ([]*models.Card, error) {
	var res []*models.Card
	for _, c := range r.cards {
		if c.OwnerID == ownerID {
			res = append(res, c)
		}
	}
	return res, nil
}

func (r *fakeCardRepo) ListAllWithOwner() ([]*models.CardWithOwner, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	var res []*models.CardWithOwner
	for _, c := range r.cards {
		res = append(res, &models.CardWithOwner{Card: *c, OwnerEmail: r.owners[c.OwnerID]})
	}
	return res, nil
}

func (r *fakeCardRepo) SetPaid(id, ownerID int, paid bool) (bool, error) {
	existing := r.cards[id]
	if existing == nil || existing.OwnerID != ownerID {
		return false, nil
	}
	existing.PaidThisCycle = paid
	return true, nil
}

// --- fake notifiers ---

type fakeEmailService struct {
	reminders []string // "email/bank/lastfour/days"
	resets    map[string]string
	welcomes  []string

	reminderErrFor string // email address whose dispatch fails
	resetErr       error
}

func newFakeEmailService() *fakeEmailService {
	return &fakeEmailService{resets: map[string]string{}}
}

func (f *fakeEmailService) SendWelcomeEmail(email, name string) error {
	f.welcomes = append(f.welcomes, email)
	return nil
}

func (f *fakeEmailService) SendResetCode(email, code string) error {
	if f.resetErr != nil {
		return f.resetErr
	}
	f.resets[email] = code
	return nil
}

func (f *fakeEmailService) SendDueReminder(email, bankName, lastFour string, daysLeft int) error {
	if f.reminderErrFor == email {
		return errors.New("smtp unavailable")
	}
	f.reminders = append(f.reminders, email)
	return nil
}

type fakeTelegramService struct {
	sent []int64
}

func (f *fakeTelegramService) SendDueReminder(chatID int64, bankName, lastFour string, daysLeft int) error {
	f.sent = append(f.sent, chatID)
	return nil
}
