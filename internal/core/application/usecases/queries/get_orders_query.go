package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

const (
	DefaultOrdersLimit = 50
	MaxOrdersLimit     = 500
)

var (
	ErrGetOrdersQueryIsNotConstructed = errors.New(
		"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
	)
)

// GetOrdersQuery lists orders for the store and rider dashboards, newest
// first. Both filters are optional.
//
// Example:
//
//	status := order.NotifyingRiders
//	query, err := NewGetOrdersQuery(&status, nil, 0) // what riders can claim
type GetOrdersQuery struct {
	status  *order.Status
	storeID *kernel.UUID
	limit   int
	guard   guard.ConstructorGuard
}

// NewGetOrdersQuery validates the filters. A limit of 0 means
// DefaultOrdersLimit.
func NewGetOrdersQuery(status *order.Status, storeID *kernel.UUID, limit int) (GetOrdersQuery, error) {
	q := GetOrdersQuery{
		limit: limit,
		guard: guard.NewConstructorGuard(),
	}

	var statusErr, storeErr, limitErr error
	if status != nil {
		if statusErr = status.Validate(); statusErr == nil {
			s := *status
			q.status = &s
		}
	}
	if storeID != nil {
		if storeErr = storeID.Validate(); storeErr == nil {
			id := *storeID
			q.storeID = &id
		}
	}
	if limit == 0 {
		q.limit = DefaultOrdersLimit
	} else if limit < 0 || limit > MaxOrdersLimit {
		limitErr = errs.NewValueIsOutOfRangeError("limit", limit, 1, MaxOrdersLimit)
	}

	if err := errors.Join(statusErr, storeErr, limitErr); err != nil {
		return GetOrdersQuery{}, err
	}
	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

func (q GetOrdersQuery) Status() (order.Status, bool) {
	if q.status == nil {
		return order.Unknown, false
	}
	return *q.status, true
}

func (q GetOrdersQuery) StoreID() (kernel.UUID, bool) {
	if q.storeID == nil {
		return kernel.UUID{}, false
	}
	return *q.storeID, true
}

func (q GetOrdersQuery) Limit() int {
	return q.limit
}
