// Package telegram sends store owner alerts through the Telegram Bot API.
package telegram

import (
	"context"
	"fmt"
	"strconv"

	"marketplace/internal/core/domain/model/notification"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Sender is implemented by *tgbotapi.BotAPI.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// ChatNotifier delivers KindChat notifications.
type ChatNotifier struct {
	bot Sender
}

// NewBot authorizes with the Bot API using token.
func NewBot(token string) (*tgbotapi.BotAPI, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to authorize telegram bot: %w", err)
	}
	return bot, nil
}

func NewChatNotifier(bot Sender) *ChatNotifier {
	return &ChatNotifier{bot: bot}
}

// Notify sends the title in bold followed by the body. The Bot API client
// has no context support, so the call runs in its own goroutine and Notify
// returns when ctx is done even if the request is still in flight.
func (c *ChatNotifier) Notify(ctx context.Context, n notification.Notification) error {
	if err := n.Validate(); err != nil {
		return err
	}
	if n.Kind() != notification.KindChat {
		return fmt.Errorf("telegram cannot deliver %s notifications", n.Kind())
	}

	chatID, err := strconv.ParseInt(n.Recipient(), 10, 64)
	if err != nil {
		return fmt.Errorf("invalid chat id %q: %w", n.Recipient(), err)
	}

	msg := tgbotapi.NewMessage(chatID, render(n))
	msg.ParseMode = tgbotapi.ModeHTML
	msg.DisableWebPagePreview = true

	done := make(chan error, 1)
	go func() {
		_, sendErr := c.bot.Send(msg)
		done <- sendErr
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case err = <-done:
		if err != nil {
			return fmt.Errorf("failed to send telegram message: %w", err)
		}
		return nil
	}
}

func render(n notification.Notification) string {
	text := "<b>" + escape(n.Title()) + "</b>"
	if n.Body() != "" {
		text += "\n" + escape(n.Body())
	}
	return text
}
