package telegram_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"marketplace/internal/adapters/out/telegram"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/notification"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockSender struct{ mock.Mock }

func (m *MockSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	args := m.Called(c)
	return tgbotapi.Message{}, args.Error(0)
}

func TestChatNotifier_Notify(t *testing.T) {
	sender := new(MockSender)
	sender.On("Send", mock.MatchedBy(func(c tgbotapi.Chattable) bool {
		msg, ok := c.(tgbotapi.MessageConfig)
		return ok &&
			msg.ChatID == 100500 &&
			msg.ParseMode == tgbotapi.ModeHTML &&
			msg.Text == "<b>New order #1 &amp; more</b>\n2 item(s) for &lt;250.00&gt;"
	})).Return(nil).Once()

	n, err := notification.NewChat(100500, kernel.NewUUID(), "New order #1 & more", "2 item(s) for <250.00>")
	require.NoError(t, err)

	require.NoError(t, telegram.NewChatNotifier(sender).Notify(t.Context(), n))
	sender.AssertExpectations(t)
}

func TestChatNotifier_Notify_SendFails(t *testing.T) {
	sendErr := errors.New("Forbidden: bot was blocked by the user")
	sender := new(MockSender)
	sender.On("Send", mock.Anything).Return(sendErr).Once()

	n, err := notification.NewChat(7, kernel.NewUUID(), "Delivered", "")
	require.NoError(t, err)

	err = telegram.NewChatNotifier(sender).Notify(t.Context(), n)
	require.ErrorIs(t, err, sendErr)
}

func TestChatNotifier_Notify_RespectsDeadline(t *testing.T) {
	sender := new(MockSender)
	sender.On("Send", mock.Anything).After(200 * time.Millisecond).Return(nil)

	n, err := notification.NewChat(7, kernel.NewUUID(), "Delivered", "")
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(t.Context(), 10*time.Millisecond)
	defer cancel()

	err = telegram.NewChatNotifier(sender).Notify(ctx, n)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestChatNotifier_Notify_WrongKind(t *testing.T) {
	sender := new(MockSender)
	n, err := notification.NewBroadcast(kernel.NewUUID(), "New delivery", "")
	require.NoError(t, err)

	err = telegram.NewChatNotifier(sender).Notify(t.Context(), n)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "broadcast")
	sender.AssertNotCalled(t, "Send", mock.Anything)
}
