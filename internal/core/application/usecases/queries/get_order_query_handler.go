package queries

import (
	"context"
	"database/sql"
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrderQueryHandler reads one order and its items with two SQL queries.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle returns errs.ObjectNotFoundError when the order does not exist.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (*GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var row orderRow
	err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderColumns+`
		FROM orders o
		WHERE o.id = ?
	`, query.OrderID().Bytes()).Row().Scan(row.targets()...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.NewObjectNotFoundError("order", query.OrderID().String())
		}
		return nil, err
	}

	summary, err := row.summary()
	if err != nil {
		return nil, err
	}

	items, err := h.items(ctx, row.id)
	if err != nil {
		return nil, err
	}

	return &GetOrderQueryResponse{
		OrderSummary: summary,
		Items:        items,
	}, nil
}

func (h GetOrderQueryHandler) items(ctx context.Context, orderID uuid.UUID) ([]OrderItemView, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			name,
			quantity,
			unit_price
		FROM order_items
		WHERE order_id = ?
		ORDER BY position
	`, orderID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]OrderItemView, 0)
	for rows.Next() {
		var item OrderItemView
		var price decimal.Decimal

		if err = rows.Scan(&item.Name, &item.Quantity, &price); err != nil {
			return nil, err
		}

		if item.UnitPrice, err = kernel.NewMoney(price); err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
