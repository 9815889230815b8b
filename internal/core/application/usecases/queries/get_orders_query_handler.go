package queries

import (
	"context"
	"strings"

	"gorm.io/gorm"
)

// GetOrdersQueryHandler lists orders with one SQL query.
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

func (h GetOrdersQueryHandler) Handle(ctx context.Context, query GetOrdersQuery) ([]OrderSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	conditions := make([]string, 0, 2)
	args := make([]any, 0, 3)
	if status, ok := query.Status(); ok {
		conditions = append(conditions, "o.status = ?")
		args = append(args, status.String())
	}
	if storeID, ok := query.StoreID(); ok {
		conditions = append(conditions, "o.store_id = ?")
		args = append(args, storeID.Bytes())
	}

	where := ""
	if len(conditions) > 0 {
		where = "WHERE " + strings.Join(conditions, " AND ")
	}
	args = append(args, query.Limit())

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderColumns+`
		FROM orders o
		`+where+`
		ORDER BY o.created_at DESC, o.id
		LIMIT ?
	`, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]OrderSummary, 0)
	for rows.Next() {
		var row orderRow
		if err = rows.Scan(row.targets()...); err != nil {
			return nil, err
		}

		summary, convErr := row.summary()
		if convErr != nil {
			return nil, convErr
		}
		orders = append(orders, summary)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
