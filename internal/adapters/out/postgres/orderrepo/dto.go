// Package orderrepo maps order aggregates to the orders and order_items
// tables and implements ports.OrderRepository on top of them.
package orderrepo

import (
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO is one row of the orders table. Status is stored by name so the
// table stays readable from psql and dashboards.
type OrderDTO struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	StoreID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	CustomerID uuid.UUID       `gorm:"type:uuid;not null;index"`
	RiderID    *uuid.UUID      `gorm:"type:uuid;index"`
	Total      decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Status     string          `gorm:"type:varchar(32);not null;index:idx_orders_status_updated,priority:1"`
	CreatedAt  time.Time       `gorm:"not null"`
	UpdatedAt  time.Time       `gorm:"not null;index:idx_orders_status_updated,priority:2"`
	Version    int             `gorm:"not null"`
	Items      []OrderItemDTO  `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO is one line of an order. Position keeps the checkout order.
type OrderItemDTO struct {
	OrderID   uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Position  int             `gorm:"primaryKey"`
	Name      string          `gorm:"type:varchar(255);not null"`
	Quantity  int             `gorm:"not null"`
	UnitPrice decimal.Decimal `gorm:"type:numeric(12,2);not null"`
}

func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order aggregate to its row and item rows.
func fromDomain(aggregate *order.Order) OrderDTO {
	snap := aggregate.Snapshot()
	id := snap.ID.Bytes()

	items := make([]OrderItemDTO, 0, len(snap.Items))
	for i, item := range snap.Items {
		items = append(items, OrderItemDTO{
			OrderID:   id,
			Position:  i,
			Name:      item.Name(),
			Quantity:  item.Quantity(),
			UnitPrice: item.UnitPrice().Decimal(),
		})
	}

	return OrderDTO{
		ID:         id,
		StoreID:    snap.StoreID.Bytes(),
		CustomerID: snap.CustomerID.Bytes(),
		RiderID:    riderColumn(snap.RiderID),
		Total:      snap.Total.Decimal(),
		Status:     snap.Status.String(),
		CreatedAt:  snap.CreatedAt,
		UpdatedAt:  snap.UpdatedAt,
		Version:    snap.Version,
		Items:      items,
	}
}

func riderColumn(riderID *kernel.UUID) *uuid.UUID {
	if riderID == nil {
		return nil
	}
	raw := riderID.Bytes()
	return &raw
}

// toDomain rebuilds the aggregate with RestoreOrder, which re-checks the
// stored total against the items.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}
	storeID, err := kernel.UUIDFromGoogle(dto.StoreID)
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromGoogle(dto.CustomerID)
	if err != nil {
		return nil, err
	}

	var riderID *kernel.UUID
	if dto.RiderID != nil {
		rID, riderErr := kernel.UUIDFromGoogle(*dto.RiderID)
		if riderErr != nil {
			return nil, riderErr
		}
		riderID = &rID
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	total, err := kernel.NewMoney(dto.Total)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(order.Snapshot{
		ID:         id,
		StoreID:    storeID,
		CustomerID: customerID,
		RiderID:    riderID,
		Items:      items,
		Total:      total,
		Status:     status,
		CreatedAt:  dto.CreatedAt,
		UpdatedAt:  dto.UpdatedAt,
		Version:    dto.Version,
	})
}

func itemToDomain(dto OrderItemDTO) (order.Item, error) {
	price, err := kernel.NewMoney(dto.UnitPrice)
	if err != nil {
		return order.Item{}, err
	}
	return order.NewItem(dto.Name, dto.Quantity, price)
}
