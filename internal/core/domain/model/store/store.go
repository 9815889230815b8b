package store

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

const maxNameLength = 120

// Domain errors for store operations.
var (
	// ErrNameIsRequired is returned when attempting to create a store without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrStoreIsNotConstructed is returned when using an improperly initialized Store.
	ErrStoreIsNotConstructed = errors.New("Store must be created via NewStore constructor")
)

// Store is a restaurant or shop selling through the marketplace. A store
// actor in the order lifecycle acts on behalf of exactly one Store.
//
// Business rules:
//   - Store must have a valid UUID and a non-empty name
//   - The owner chat is optional; without it the owner gets no instant alerts
//
// Example usage:
//
//	chatID := int64(100500)
//	s, err := NewStore(kernel.NewUUID(), "Pizza Place", &chatID, time.Now())
//	if err != nil {
//	    // Handle construction error
//	}
type Store struct {
	// id uniquely identifies the store
	id kernel.UUID
	// name is shown to customers and riders
	name string
	// ownerChatID is the Telegram chat receiving order alerts
	ownerChatID *int64
	// createdAt is the registration time
	createdAt time.Time
	// guard ensures the store was properly constructed
	guard guard.ConstructorGuard
}

// NewStore registers a store. The name is trimmed before validation.
func NewStore(id kernel.UUID, name string, ownerChatID *int64, now time.Time) (*Store, error) {
	return RestoreStore(id, name, ownerChatID, now)
}

// RestoreStore rebuilds a Store from persistent storage.
func RestoreStore(id kernel.UUID, name string, ownerChatID *int64, createdAt time.Time) (*Store, error) {
	s := &Store{
		createdAt: createdAt.UTC(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		s.setID(id),
		s.setName(name),
	); err != nil {
		return nil, err
	}
	s.setOwnerChatID(ownerChatID)

	return s, nil
}

// IsEqual compares two stores by identifier.
func (s *Store) IsEqual(other *Store) bool {
	if other == nil {
		return false
	}
	return s.id.IsEqual(other.id)
}

// Validate checks if the Store was properly constructed.
func (s *Store) Validate() error {
	if s == nil {
		return ErrStoreIsNotConstructed
	}
	return s.guard.Validate(ErrStoreIsNotConstructed)
}

func (s *Store) ID() kernel.UUID {
	return s.id
}

func (s *Store) Name() string {
	return s.name
}

// OwnerChatID returns the owner's Telegram chat, if any.
func (s *Store) OwnerChatID() (int64, bool) {
	if s.ownerChatID == nil {
		return 0, false
	}
	return *s.ownerChatID, true
}

func (s *Store) CreatedAt() time.Time {
	return s.createdAt
}

func (s *Store) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Store) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameIsRequired
	}
	if l := utf8.RuneCountInString(name); l > maxNameLength {
		return errs.NewValueIsOutOfRangeError("name length", l, 1, maxNameLength)
	}
	s.name = name
	return nil
}

func (s *Store) setOwnerChatID(chatID *int64) {
	if chatID == nil || *chatID == 0 {
		s.ownerChatID = nil
		return
	}
	id := *chatID
	s.ownerChatID = &id
}
