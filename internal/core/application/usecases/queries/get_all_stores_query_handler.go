package queries

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetAllStoresQueryHandler struct {
	db *gorm.DB
}

func NewGetAllStoresQueryHandler(db *gorm.DB) GetAllStoresQueryHandler {
	return GetAllStoresQueryHandler{db: db}
}

func (h GetAllStoresQueryHandler) Handle(
	ctx context.Context,
	query GetAllStoresQuery,
) ([]GetAllStoresQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	stores := make([]GetAllStoresQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			owner_chat_id IS NOT NULL,
			created_at
		FROM stores
		ORDER BY name, id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var s GetAllStoresQueryResponse
		var id uuid.UUID

		if err = rows.Scan(&id, &s.Name, &s.HasOwnerChat, &s.CreatedAt); err != nil {
			return nil, err
		}

		if s.ID, err = kernel.UUIDFromGoogle(id); err != nil {
			return nil, err
		}
		s.CreatedAt = s.CreatedAt.UTC()
		stores = append(stores, s)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return stores, nil
}
