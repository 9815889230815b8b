package http

import (
	"time"

	"github.com/google/uuid"
)

// Request and response bodies of the /api/v1 endpoints. Money travels as a
// decimal string with two fraction digits.

type NewItem struct {
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unitPrice"`
}

type Item = NewItem

type NewOrder struct {
	StoreID uuid.UUID `json:"storeId"`
	Items   []NewItem `json:"items"`
}

type OrderSummary struct {
	ID         uuid.UUID  `json:"id"`
	StoreID    uuid.UUID  `json:"storeId"`
	CustomerID uuid.UUID  `json:"customerId"`
	RiderID    *uuid.UUID `json:"riderId,omitempty"`
	Status     string     `json:"status"`
	TotalPrice string     `json:"totalPrice"`
	ItemCount  int        `json:"itemCount"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
	Version    int        `json:"version"`
}

type Order struct {
	OrderSummary
	Items []Item `json:"items"`
}

type Transition struct {
	TargetStatus   string  `json:"targetStatus"`
	ExpectedStatus *string `json:"expectedStatus,omitempty"`
}

type NewStore struct {
	Name        string `json:"name"`
	OwnerChatID *int64 `json:"ownerChatId,omitempty"`
}

type Store struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	HasOwnerChat bool      `json:"hasOwnerChat"`
	CreatedAt    time.Time `json:"createdAt"`
}

type ListOrdersParams struct {
	Status  *string
	StoreID *uuid.UUID
	Limit   *int
}

// Error is the body of every non-2xx response. Retryable is set when the
// same request may succeed later unchanged.
type Error struct {
	Code      int    `json:"code"`
	Message   string `json:"message"`
	Retryable bool   `json:"retryable,omitempty"`
}
