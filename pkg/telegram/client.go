package telegram

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Notifier sends operator notifications.
type Notifier interface {
	SendMessage(text string) error
}

type client struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

// NewClient creates a Telegram notifier for one chat.
func NewClient(botToken string, chatID int64) (Notifier, error) {
	if chatID == 0 {
		return nil, fmt.Errorf("telegram chat id is required")
	}
	bot, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}
	return &client{
		bot:    bot,
		chatID: chatID,
	}, nil
}

// NewOptionalClient returns a nil Notifier when no bot token is configured.
func NewOptionalClient(botToken string, chatID int64) (Notifier, error) {
	if botToken == "" {
		return nil, nil
	}
	return NewClient(botToken, chatID)
}

// SendMessage sends a Markdown message to the configured chat.
func (c *client) SendMessage(text string) error {
	msg := tgbotapi.NewMessage(c.chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	msg.DisableWebPagePreview = true
	_, err := c.bot.Send(msg)
	return err
}
