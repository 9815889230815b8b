package queries

import (
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// orderColumns is the select list shared by the order queries. It must match
// orderRow.targets.
const orderColumns = `
	o.id,
	o.store_id,
	o.customer_id,
	o.rider_id,
	o.status,
	o.total,
	(SELECT count(*) FROM order_items i WHERE i.order_id = o.id) AS item_count,
	o.created_at,
	o.updated_at,
	o.version`

// orderRow holds the raw column values of one orders row.
type orderRow struct {
	id         uuid.UUID
	storeID    uuid.UUID
	customerID uuid.UUID
	riderID    uuid.NullUUID
	status     string
	total      decimal.Decimal
	itemCount  int
	createdAt  time.Time
	updatedAt  time.Time
	version    int
}

func (r *orderRow) targets() []any {
	return []any{
		&r.id,
		&r.storeID,
		&r.customerID,
		&r.riderID,
		&r.status,
		&r.total,
		&r.itemCount,
		&r.createdAt,
		&r.updatedAt,
		&r.version,
	}
}

func (r *orderRow) summary() (OrderSummary, error) {
	var (
		s   OrderSummary
		err error
	)
	if s.ID, err = kernel.UUIDFromGoogle(r.id); err != nil {
		return OrderSummary{}, err
	}
	if s.StoreID, err = kernel.UUIDFromGoogle(r.storeID); err != nil {
		return OrderSummary{}, err
	}
	if s.CustomerID, err = kernel.UUIDFromGoogle(r.customerID); err != nil {
		return OrderSummary{}, err
	}
	if r.riderID.Valid {
		rider, riderErr := kernel.UUIDFromGoogle(r.riderID.UUID)
		if riderErr != nil {
			return OrderSummary{}, riderErr
		}
		s.RiderID = &rider
	}
	if s.Status, err = order.ParseStatus(r.status); err != nil {
		return OrderSummary{}, err
	}
	if s.Total, err = kernel.NewMoney(r.total); err != nil {
		return OrderSummary{}, err
	}

	s.ItemCount = r.itemCount
	s.CreatedAt = r.createdAt.UTC()
	s.UpdatedAt = r.updatedAt.UTC()
	s.Version = r.version
	return s, nil
}
