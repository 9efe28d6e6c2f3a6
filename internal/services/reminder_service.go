package services

import (
	"log"
	"time"

	"github.com/revertpixels/CardReminder/internal/cycle"
	"github.com/revertpixels/CardReminder/internal/models"
	"github.com/revertpixels/CardReminder/internal/repositories"
)

// ReminderIntent is one notification the scan decided to send.
type ReminderIntent struct {
	Email          string
	TelegramChatID *int64
	BankName       string
	LastFour       string
	DaysLeft       int
}

// ReminderService runs the scheduled due-date scan. Every firing
// re-evaluates all cards from scratch; there is no record of what was
// already sent, so a card inside the 0-3 day window is re-notified on
// each firing. A card marked paid still gets due reminders: the paid
// flag only affects the dashboard, not the scan.
type ReminderService struct {
	Repo     repositories.CardRepository
	Emails   EmailService
	Telegram TelegramService // may be nil
}

func NewReminderService(repo repositories.CardRepository, emails EmailService, telegram TelegramService) *ReminderService {
	return &ReminderService{Repo: repo, Emails: emails, Telegram: telegram}
}

// ComputeIntents picks, for the given day-of-month, every card whose
// due day falls within the reminder window. Pure: no I/O, no clock.
func ComputeIntents(cards []*models.CardWithOwner, today int) []ReminderIntent {
	var intents []ReminderIntent
	for _, card := range cards {
		daysLeft := cycle.DaysUntil(today, card.DueDay)
		if daysLeft > cycle.ReminderWindow {
			continue
		}
		intents = append(intents, ReminderIntent{
			Email:          card.OwnerEmail,
			TelegramChatID: card.TelegramChatID,
			BankName:       card.BankName,
			LastFour:       card.LastFour,
			DaysLeft:       daysLeft,
		})
	}
	return intents
}

// Run executes one scan firing. A failed dispatch is logged and
// skipped; it never aborts the rest of the batch.
func (s *ReminderService) Run(now time.Time) error {
	cards, err := s.Repo.ListAllWithOwner()
	if err != nil {
		return err
	}

	intents := ComputeIntents(cards, now.Day())
	sent := 0
	for _, in := range intents {
		if err := s.Emails.SendDueReminder(in.Email, in.BankName, in.LastFour, in.DaysLeft); err != nil {
			log.Printf("[reminder] email dispatch failed to=%s bank=%s: %v", in.Email, in.BankName, err)
		} else {
			sent++
		}
		if s.Telegram != nil && in.TelegramChatID != nil {
			if err := s.Telegram.SendDueReminder(*in.TelegramChatID, in.BankName, in.LastFour, in.DaysLeft); err != nil {
				log.Printf("[reminder] telegram dispatch failed chat_id=%d bank=%s: %v", *in.TelegramChatID, in.BankName, err)
			}
		}
	}
	log.Printf("[reminder] scan complete: cards=%d intents=%d emails_sent=%d", len(cards), len(intents), sent)
	return nil
}
