package http

import (
	"errors"
	"log/slog"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

const (
	HeaderActorID   = "X-Actor-ID"
	HeaderActorRole = "X-Actor-Role"

	actorContextKey = "marketplace.actor"
)

// Identity reads the caller set by the gateway and stores it in the
// context. Requests without a valid identity are answered with 401.
func Identity() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			actor, err := parseActor(c.Request().Header.Get(HeaderActorID), c.Request().Header.Get(HeaderActorRole))
			if err != nil {
				return c.JSON(statusFor(ErrMissingIdentity), Error{
					Code:    statusFor(ErrMissingIdentity),
					Message: ErrMissingIdentity.Error(),
				})
			}
			c.Set(actorContextKey, actor)
			return next(c)
		}
	}
}

func parseActor(rawID, rawRole string) (order.Actor, error) {
	if rawID == "" || rawRole == "" {
		return order.Actor{}, ErrMissingIdentity
	}
	id, err := kernel.UUIDFromString(rawID)
	if err != nil {
		return order.Actor{}, errors.Join(ErrMissingIdentity, err)
	}
	role, err := order.ParseRole(rawRole)
	if err != nil {
		return order.Actor{}, errors.Join(ErrMissingIdentity, err)
	}
	return order.NewActor(id, role)
}

func actorFrom(c echo.Context) (order.Actor, error) {
	actor, ok := c.Get(actorContextKey).(order.Actor)
	if !ok {
		return order.Actor{}, ErrMissingIdentity
	}
	return actor, nil
}

// Timeout bounds the request context. Handlers see context.DeadlineExceeded
// from persistence and answer 503.
func Timeout(d time.Duration) echo.MiddlewareFunc {
	return middleware.ContextTimeoutWithConfig(middleware.ContextTimeoutConfig{
		Timeout: d,
	})
}

// Metrics records a request counter and latency per route template.
func Metrics(m *metrics.Metrics) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			status := c.Response().Status
			var httpErr *echo.HTTPError
			if errors.As(err, &httpErr) {
				status = httpErr.Code
			}
			m.ObserveRequest(c.Request().Method, c.Path(), status, time.Since(start))
			return err
		}
	}
}

// RequestLogger writes one structured line per request.
func RequestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []any{
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
			}
			if v.Error != nil {
				logger.ErrorContext(c.Request().Context(), "request", append(attrs, "error", v.Error)...)
				return nil
			}
			logger.InfoContext(c.Request().Context(), "request", attrs...)
			return nil
		},
	})
}
