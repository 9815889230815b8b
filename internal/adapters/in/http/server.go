// Package http is the REST surface of the order lifecycle: checkout, order
// lookups for dashboards, status transitions and store registration.
package http

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/store"
	"marketplace/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type (
	CreateStoreHandler interface {
		Handle(ctx context.Context, cmd commands.CreateStoreCommand) (*store.Store, error)
	}
	CreateOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) (*order.Order, error)
	}
	TransitionOrderHandler interface {
		Handle(ctx context.Context, cmd commands.TransitionOrderCommand) (*order.Order, error)
	}
	GetOrderHandler interface {
		Handle(ctx context.Context, query queries.GetOrderQuery) (*queries.GetOrderQueryResponse, error)
	}
	GetOrdersHandler interface {
		Handle(ctx context.Context, query queries.GetOrdersQuery) ([]queries.OrderSummary, error)
	}
	GetAllStoresHandler interface {
		Handle(ctx context.Context, query queries.GetAllStoresQuery) ([]queries.GetAllStoresQueryResponse, error)
	}
)

// Server implements ServerInterface on top of the command and query handlers.
type Server struct {
	// Command handlers
	createStoreHandler     CreateStoreHandler
	createOrderHandler     CreateOrderHandler
	transitionOrderHandler TransitionOrderHandler

	// Query handlers
	getOrderHandler     GetOrderHandler
	getOrdersHandler    GetOrdersHandler
	getAllStoresHandler GetAllStoresHandler

	logger *slog.Logger
}

func NewServer(
	createStoreHandler CreateStoreHandler,
	createOrderHandler CreateOrderHandler,
	transitionOrderHandler TransitionOrderHandler,
	getOrderHandler GetOrderHandler,
	getOrdersHandler GetOrdersHandler,
	getAllStoresHandler GetAllStoresHandler,
	logger *slog.Logger,
) *Server {
	return &Server{
		createStoreHandler:     createStoreHandler,
		createOrderHandler:     createOrderHandler,
		transitionOrderHandler: transitionOrderHandler,
		getOrderHandler:        getOrderHandler,
		getOrdersHandler:       getOrdersHandler,
		getAllStoresHandler:    getAllStoresHandler,
		logger:                 logger.With("component", "HTTPServer"),
	}
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return s.respondError(ctx, err)
	}

	var body NewOrder
	if err = ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	storeID, err := kernel.UUIDFromGoogle(body.StoreID)
	if err != nil {
		return s.respondError(ctx, errs.NewValueIsInvalidErrorWithCause("storeId", err))
	}

	items, err := toDomainItems(body.Items)
	if err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), storeID, actor, items)
	if err != nil {
		return s.respondError(ctx, err)
	}

	o, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toOrder(o))
}

// ListOrders handles GET /api/v1/orders.
func (s *Server) ListOrders(ctx echo.Context, params ListOrdersParams) error {
	var status *order.Status
	if params.Status != nil {
		parsed, err := order.ParseStatus(*params.Status)
		if err != nil {
			return s.respondError(ctx, err)
		}
		status = &parsed
	}

	var storeID *kernel.UUID
	if params.StoreID != nil {
		id, err := kernel.UUIDFromGoogle(*params.StoreID)
		if err != nil {
			return s.respondError(ctx, errs.NewValueIsInvalidErrorWithCause("storeId", err))
		}
		storeID = &id
	}

	limit := 0
	if params.Limit != nil {
		limit = *params.Limit
	}

	query, err := queries.NewGetOrdersQuery(status, storeID, limit)
	if err != nil {
		return s.respondError(ctx, err)
	}

	orders, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	response := make([]OrderSummary, len(orders))
	for i, o := range orders {
		response[i] = fromSummary(o)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/v1/orders/{id}.
func (s *Server) GetOrder(ctx echo.Context, id uuid.UUID) error {
	orderID, err := kernel.UUIDFromGoogle(id)
	if err != nil {
		return s.respondError(ctx, errs.NewValueIsInvalidErrorWithCause("id", err))
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return s.respondError(ctx, err)
	}

	view, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	items := make([]Item, len(view.Items))
	for i, item := range view.Items {
		items[i] = Item{
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice.String(),
		}
	}

	return ctx.JSON(http.StatusOK, Order{
		OrderSummary: fromSummary(view.OrderSummary),
		Items:        items,
	})
}

// TransitionOrder handles POST /api/v1/orders/{id}/transition.
func (s *Server) TransitionOrder(ctx echo.Context, id uuid.UUID) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return s.respondError(ctx, err)
	}

	orderID, err := kernel.UUIDFromGoogle(id)
	if err != nil {
		return s.respondError(ctx, errs.NewValueIsInvalidErrorWithCause("id", err))
	}

	var body Transition
	if err = ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	target, err := order.ParseStatus(body.TargetStatus)
	if err != nil {
		return s.respondError(ctx, err)
	}

	var expected *order.Status
	if body.ExpectedStatus != nil {
		parsed, parseErr := order.ParseStatus(*body.ExpectedStatus)
		if parseErr != nil {
			return s.respondError(ctx, parseErr)
		}
		expected = &parsed
	}

	cmd, err := commands.NewTransitionOrderCommand(orderID, actor, target, expected)
	if err != nil {
		return s.respondError(ctx, err)
	}

	o, err := s.transitionOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrder(o))
}

// CreateStore handles POST /api/v1/stores. An admin registers a store under
// a new id; a store owner registers the store they act for, under their
// own actor id.
func (s *Server) CreateStore(ctx echo.Context) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return s.respondError(ctx, err)
	}

	var storeID kernel.UUID
	switch actor.Role() {
	case order.RoleAdmin:
		storeID = kernel.NewUUID()
	case order.RoleStore:
		storeID = actor.ID()
	default:
		return ctx.JSON(http.StatusForbidden, Error{
			Code:    http.StatusForbidden,
			Message: "only admins and store owners can register stores",
		})
	}

	var body NewStore
	if err = ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreateStoreCommand(storeID, body.Name, body.OwnerChatID)
	if err != nil {
		return s.respondError(ctx, err)
	}

	created, err := s.createStoreHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	_, hasChat := created.OwnerChatID()
	return ctx.JSON(http.StatusCreated, Store{
		ID:           created.ID().Bytes(),
		Name:         created.Name(),
		HasOwnerChat: hasChat,
		CreatedAt:    created.CreatedAt(),
	})
}

// ListStores handles GET /api/v1/stores.
func (s *Server) ListStores(ctx echo.Context) error {
	stores, err := s.getAllStoresHandler.Handle(ctx.Request().Context(), queries.NewGetAllStoresQuery())
	if err != nil {
		return s.respondError(ctx, err)
	}

	response := make([]Store, len(stores))
	for i, st := range stores {
		response[i] = Store{
			ID:           st.ID.Bytes(),
			Name:         st.Name,
			HasOwnerChat: st.HasOwnerChat,
			CreatedAt:    st.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

func toDomainItems(body []NewItem) ([]order.Item, error) {
	items := make([]order.Item, 0, len(body))
	for _, item := range body {
		price, err := kernel.MoneyFromString(strings.TrimSpace(item.UnitPrice))
		if err != nil {
			return nil, err
		}
		domainItem, err := order.NewItem(item.Name, item.Quantity, price)
		if err != nil {
			return nil, err
		}
		items = append(items, domainItem)
	}
	return items, nil
}

func toOrder(o *order.Order) Order {
	snap := o.Snapshot()

	var riderID *uuid.UUID
	if snap.RiderID != nil {
		raw := snap.RiderID.Bytes()
		riderID = &raw
	}

	items := make([]Item, len(snap.Items))
	for i, item := range snap.Items {
		items[i] = Item{
			Name:      item.Name(),
			Quantity:  item.Quantity(),
			UnitPrice: item.UnitPrice().String(),
		}
	}

	return Order{
		OrderSummary: OrderSummary{
			ID:         snap.ID.Bytes(),
			StoreID:    snap.StoreID.Bytes(),
			CustomerID: snap.CustomerID.Bytes(),
			RiderID:    riderID,
			Status:     snap.Status.String(),
			TotalPrice: snap.Total.String(),
			ItemCount:  len(snap.Items),
			CreatedAt:  snap.CreatedAt,
			UpdatedAt:  snap.UpdatedAt,
			Version:    snap.Version,
		},
		Items: items,
	}
}

func fromSummary(o queries.OrderSummary) OrderSummary {
	var riderID *uuid.UUID
	if o.RiderID != nil {
		raw := o.RiderID.Bytes()
		riderID = &raw
	}

	return OrderSummary{
		ID:         o.ID.Bytes(),
		StoreID:    o.StoreID.Bytes(),
		CustomerID: o.CustomerID.Bytes(),
		RiderID:    riderID,
		Status:     o.Status.String(),
		TotalPrice: o.Total.String(),
		ItemCount:  o.ItemCount,
		CreatedAt:  o.CreatedAt,
		UpdatedAt:  o.UpdatedAt,
		Version:    o.Version,
	}
}
