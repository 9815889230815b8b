package ports

import (
	"context"

	"marketplace/internal/core/domain/model/notification"
)

// Notifier delivers a notification through one messaging channel.
// Implementations send at most once and never retry.
type Notifier interface {
	Notify(ctx context.Context, n notification.Notification) error
}
