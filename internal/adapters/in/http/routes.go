package http

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// ServerInterface lists the operations of openapi.yaml.
type ServerInterface interface {
	// Place an order (customer checkout)
	// (POST /api/v1/orders)
	CreateOrder(ctx echo.Context) error
	// List orders for dashboards
	// (GET /api/v1/orders)
	ListOrders(ctx echo.Context, params ListOrdersParams) error
	// Get an order with its items
	// (GET /api/v1/orders/{id})
	GetOrder(ctx echo.Context, id uuid.UUID) error
	// Move an order to another status
	// (POST /api/v1/orders/{id}/transition)
	TransitionOrder(ctx echo.Context, id uuid.UUID) error
	// Register a store
	// (POST /api/v1/stores)
	CreateStore(ctx echo.Context) error
	// List stores
	// (GET /api/v1/stores)
	ListStores(ctx echo.Context) error
}

// ServerInterfaceWrapper converts echo contexts to typed parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func (w *ServerInterfaceWrapper) CreateOrder(ctx echo.Context) error {
	return w.Handler.CreateOrder(ctx)
}

func (w *ServerInterfaceWrapper) ListOrders(ctx echo.Context) error {
	var params ListOrdersParams

	if err := runtime.BindQueryParameter("form", true, false, "status", ctx.QueryParams(), &params.Status); err != nil {
		return invalidParameter(ctx, "status", err)
	}
	if err := runtime.BindQueryParameter("form", true, false, "storeId", ctx.QueryParams(), &params.StoreID); err != nil {
		return invalidParameter(ctx, "storeId", err)
	}
	if err := runtime.BindQueryParameter("form", true, false, "limit", ctx.QueryParams(), &params.Limit); err != nil {
		return invalidParameter(ctx, "limit", err)
	}

	return w.Handler.ListOrders(ctx, params)
}

func (w *ServerInterfaceWrapper) GetOrder(ctx echo.Context) error {
	id, err := bindOrderID(ctx)
	if err != nil {
		return invalidParameter(ctx, "id", err)
	}
	return w.Handler.GetOrder(ctx, id)
}

func (w *ServerInterfaceWrapper) TransitionOrder(ctx echo.Context) error {
	id, err := bindOrderID(ctx)
	if err != nil {
		return invalidParameter(ctx, "id", err)
	}
	return w.Handler.TransitionOrder(ctx, id)
}

func (w *ServerInterfaceWrapper) CreateStore(ctx echo.Context) error {
	return w.Handler.CreateStore(ctx)
}

func (w *ServerInterfaceWrapper) ListStores(ctx echo.Context) error {
	return w.Handler.ListStores(ctx)
}

func bindOrderID(ctx echo.Context) (uuid.UUID, error) {
	var id uuid.UUID
	err := runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id, runtime.BindStyledParameterOptions{
		ParamLocation: runtime.ParamLocationPath,
		Explode:       false,
		Required:      true,
	})
	return id, err
}

func invalidParameter(ctx echo.Context, name string, err error) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: fmt.Sprintf("Invalid format for parameter %s: %s", name, err),
	})
}

// EchoRouter is satisfied by *echo.Echo and *echo.Group.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlersWithBaseURL mounts every operation under baseURL.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{Handler: si}

	router.POST(baseURL+"/orders", wrapper.CreateOrder)
	router.GET(baseURL+"/orders", wrapper.ListOrders)
	router.GET(baseURL+"/orders/:id", wrapper.GetOrder)
	router.POST(baseURL+"/orders/:id/transition", wrapper.TransitionOrder)
	router.POST(baseURL+"/stores", wrapper.CreateStore)
	router.GET(baseURL+"/stores", wrapper.ListStores)
}
