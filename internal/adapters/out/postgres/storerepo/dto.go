// Package storerepo persists stores in the stores table.
package storerepo

import (
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/store"

	"github.com/google/uuid"
)

// StoreDTO is one row of the stores table.
type StoreDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"type:varchar(120);not null"`
	OwnerChatID *int64
	CreatedAt   time.Time `gorm:"not null"`
}

func (StoreDTO) TableName() string {
	return "stores"
}

func fromDomain(aggregate *store.Store) StoreDTO {
	dto := StoreDTO{
		ID:        aggregate.ID().Bytes(),
		Name:      aggregate.Name(),
		CreatedAt: aggregate.CreatedAt(),
	}
	if chatID, ok := aggregate.OwnerChatID(); ok {
		dto.OwnerChatID = &chatID
	}
	return dto
}

func toDomain(dto StoreDTO) (*store.Store, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}
	return store.RestoreStore(id, dto.Name, dto.OwnerChatID, dto.CreatedAt)
}
