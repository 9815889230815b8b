package notification

import (
	"errors"
	"fmt"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

// Kind is how a notification reaches its audience.
type Kind int

const (
	KindUnknown Kind = iota
	// KindDevice is a push to one user's devices, keyed by user id.
	KindDevice
	// KindBroadcast goes to every member of the rider pool.
	KindBroadcast
	// KindChat is a message to a store owner's Telegram chat.
	KindChat
)

func (k Kind) String() string {
	switch k {
	case KindDevice:
		return "device"
	case KindBroadcast:
		return "broadcast"
	case KindChat:
		return "chat"
	default:
		return "unknown"
	}
}

var ErrNotificationIsNotConstructed = errors.New("Notification must be created via a constructor")

// Notification is one message to one audience about one order.
type Notification struct {
	kind      Kind
	recipient string
	orderID   kernel.UUID
	title     string
	body      string
}

// NewDevice addresses the devices of a single user.
func NewDevice(userID, orderID kernel.UUID, title, body string) (Notification, error) {
	if err := userID.Validate(); err != nil {
		return Notification{}, err
	}
	return newNotification(KindDevice, userID.String(), orderID, title, body)
}

// NewBroadcast addresses the whole rider pool.
func NewBroadcast(orderID kernel.UUID, title, body string) (Notification, error) {
	return newNotification(KindBroadcast, "", orderID, title, body)
}

// NewChat addresses a Telegram chat.
func NewChat(chatID int64, orderID kernel.UUID, title, body string) (Notification, error) {
	if chatID == 0 {
		return Notification{}, errs.NewValueIsRequiredError("chat id")
	}
	return newNotification(KindChat, fmt.Sprint(chatID), orderID, title, body)
}

func newNotification(kind Kind, recipient string, orderID kernel.UUID, title, body string) (Notification, error) {
	var titleErr error
	if title == "" {
		titleErr = errs.NewValueIsRequiredError("title")
	}
	if err := errors.Join(orderID.Validate(), titleErr); err != nil {
		return Notification{}, err
	}
	return Notification{
		kind:      kind,
		recipient: recipient,
		orderID:   orderID,
		title:     title,
		body:      body,
	}, nil
}

func (n Notification) Kind() Kind {
	return n.kind
}

// Recipient is the user id for KindDevice, the chat id for KindChat and
// empty for KindBroadcast.
func (n Notification) Recipient() string {
	return n.recipient
}

func (n Notification) OrderID() kernel.UUID {
	return n.orderID
}

func (n Notification) Title() string {
	return n.title
}

func (n Notification) Body() string {
	return n.body
}

func (n Notification) Validate() error {
	if n.kind == KindUnknown {
		return ErrNotificationIsNotConstructed
	}
	return nil
}
