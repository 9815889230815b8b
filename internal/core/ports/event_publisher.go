package ports

import (
	"context"

	"marketplace/internal/core/domain/model/order"
)

// OrderEventPublisher emits an OrderStatusChanged event for every applied
// transition. Publishing is best-effort.
type OrderEventPublisher interface {
	PublishStatusChanged(ctx context.Context, change order.Change) error
}
