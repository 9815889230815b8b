package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var (
	ErrCreateStoreCommandIsNotConstructed = errors.New(
		"CreateStoreCommand must be created via NewCreateStoreCommand constructor",
	)
	ErrStoreNameIsRequired = errors.New("store name is required")
)

// CreateStoreCommand registers a store on the marketplace.
//
// Example:
//
//	chatID := int64(100500)
//	cmd, err := NewCreateStoreCommand(kernel.NewUUID(), "Pizza Place", &chatID)
//	if err != nil {
//	    return fmt.Errorf("invalid store data: %w", err)
//	}
type CreateStoreCommand struct { //nolint:recvcheck //using for validation
	storeID     kernel.UUID
	name        string
	ownerChatID *int64

	guard guard.ConstructorGuard
}

// NewCreateStoreCommand validates the identifier and name. ownerChatID may be nil.
func NewCreateStoreCommand(storeID kernel.UUID, name string, ownerChatID *int64) (CreateStoreCommand, error) {
	cmd := CreateStoreCommand{
		guard:       guard.NewConstructorGuard(),
		ownerChatID: ownerChatID,
	}

	if err := errors.Join(
		cmd.setStoreID(storeID),
		cmd.setName(name),
	); err != nil {
		return CreateStoreCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateStoreCommand) Validate() error {
	return c.guard.Validate(ErrCreateStoreCommandIsNotConstructed)
}

func (c CreateStoreCommand) StoreID() kernel.UUID {
	return c.storeID
}

func (c CreateStoreCommand) Name() string {
	return c.name
}

func (c CreateStoreCommand) OwnerChatID() *int64 {
	return c.ownerChatID
}

func (c *CreateStoreCommand) setStoreID(storeID kernel.UUID) error {
	if err := storeID.Validate(); err != nil {
		return err
	}

	c.storeID = storeID
	return nil
}

func (c *CreateStoreCommand) setName(name string) error {
	if name == "" {
		return ErrStoreNameIsRequired
	}

	c.name = name
	return nil
}
