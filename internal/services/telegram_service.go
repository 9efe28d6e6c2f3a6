package services

import (
	"fmt"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/revertpixels/CardReminder/internal/config"
)

// TelegramService is an optional second reminder channel. A nil
// service (no bot token configured) is safe to call and does nothing.
type TelegramService interface {
	SendDueReminder(chatID int64, bankName, lastFour string, daysLeft int) error
}

type telegramService struct {
	bot    *tgbotapi.BotAPI
	dryRun bool
}

func NewTelegramService(cfg config.TelegramConfig) (TelegramService, error) {
	if cfg.BotToken == "" {
		return nil, nil
	}
	bot, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		return nil, fmt.Errorf("telegram bot init: %w", err)
	}
	log.Printf("[tg] bot authorized as @%s (dry_run=%v)", bot.Self.UserName, cfg.DryRun)
	return &telegramService{bot: bot, dryRun: cfg.DryRun}, nil
}

func (t *telegramService) SendDueReminder(chatID int64, bankName, lastFour string, daysLeft int) error {
	text := fmt.Sprintf("⚠️ Bill Due: %s (Ending: %s): %s.", bankName, lastFour, dueWording(daysLeft))
	if t.dryRun {
		log.Printf("[tg][dry-run] chat_id=%d text=%q", chatID, text)
		return nil
	}
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := t.bot.Send(msg); err != nil {
		return fmt.Errorf("telegram sendMessage: %w", err)
	}
	return nil
}
