// Package notify picks the delivery channel for a notification.
package notify

import (
	"context"
	"fmt"

	"marketplace/internal/core/domain/model/notification"
	"marketplace/internal/core/ports"
)

// Router implements ports.Notifier by handing each notification to the
// notifier registered for its kind.
type Router struct {
	routes map[notification.Kind]ports.Notifier
}

func NewRouter() *Router {
	return &Router{routes: make(map[notification.Kind]ports.Notifier)}
}

// Route registers n for kind, replacing any earlier registration.
func (r *Router) Route(kind notification.Kind, n ports.Notifier) *Router {
	r.routes[kind] = n
	return r
}

// ErrNoRoute is returned for kinds with no registered notifier.
type ErrNoRoute struct {
	Kind notification.Kind
}

func (e ErrNoRoute) Error() string {
	return fmt.Sprintf("no notifier configured for %s notifications", e.Kind)
}

func (r *Router) Notify(ctx context.Context, n notification.Notification) error {
	target, ok := r.routes[n.Kind()]
	if !ok {
		return ErrNoRoute{Kind: n.Kind()}
	}
	return target.Notify(ctx, n)
}
