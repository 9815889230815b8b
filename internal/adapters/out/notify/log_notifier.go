package notify

import (
	"context"
	"log/slog"

	"marketplace/internal/core/domain/model/notification"
)

// LogNotifier writes notifications to the log instead of delivering them.
// It stands in for channels that are not configured, e.g. Telegram
// without a bot token in development.
type LogNotifier struct {
	logger *slog.Logger
}

func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger.With("component", "LogNotifier")}
}

func (l *LogNotifier) Notify(ctx context.Context, n notification.Notification) error {
	l.logger.InfoContext(ctx, "notification not delivered, channel disabled",
		"kind", n.Kind().String(),
		"recipient", n.Recipient(),
		"order_id", n.OrderID().String(),
		"title", n.Title(),
	)
	return nil
}
