// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries read straight from the tables and return flat read models; they
// never go through aggregates or the unit of work.
package queries

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/guard"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
)

// GetOrderQuery loads one order with its items.
//
// Example:
//
//	query, err := NewGetOrderQuery(orderID)
//	if err != nil {
//	    return err
//	}
//	view, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // 404
//	}
type GetOrderQuery struct {
	orderID kernel.UUID
	guard   guard.ConstructorGuard
}

func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}
	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// OrderItemView is one line of an order as shown to clients.
type OrderItemView struct {
	Name      string
	Quantity  int
	UnitPrice kernel.Money
}

// OrderSummary is an order without its items, as listed on dashboards.
type OrderSummary struct {
	ID         kernel.UUID
	StoreID    kernel.UUID
	CustomerID kernel.UUID
	RiderID    *kernel.UUID
	Status     order.Status
	Total      kernel.Money
	ItemCount  int
	CreatedAt  time.Time
	UpdatedAt  time.Time
	Version    int
}

// GetOrderQueryResponse is the full read model of an order.
type GetOrderQueryResponse struct {
	OrderSummary
	Items []OrderItemView
}
