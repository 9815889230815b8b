package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"marketplace/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

const BaseURL = "/api/v1"

// Pinger reports whether a dependency is reachable. *sql.DB satisfies it.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Options configures NewEcho. Zero values disable the matching feature.
type Options struct {
	RequestTimeout time.Duration
	Metrics        *metrics.Metrics
	Logger         *slog.Logger
	Pinger         Pinger
}

// NewEcho assembles the HTTP surface: health, metrics, swagger UI and the
// validated /api/v1 group served by si.
func NewEcho(si ServerInterface, opts Options) (*echo.Echo, error) {
	doc, err := GetSwagger()
	if err != nil {
		return nil, err
	}
	validator, err := RequestValidator(doc)
	if err != nil {
		return nil, err
	}
	if err = RegisterSwaggerDoc(doc); err != nil {
		return nil, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(RequestLogger(logger.With("component", "HTTP")))
	if opts.Metrics != nil {
		e.Use(Metrics(opts.Metrics))
	}

	e.GET("/health", func(c echo.Context) error {
		if opts.Pinger != nil {
			if pingErr := opts.Pinger.PingContext(c.Request().Context()); pingErr != nil {
				return c.String(http.StatusServiceUnavailable, "Unhealthy")
			}
		}
		return c.String(http.StatusOK, "Healthy")
	})
	if opts.Metrics != nil {
		e.GET("/metrics", echo.WrapHandler(opts.Metrics.Handler()))
	}
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group(BaseURL)
	api.Use(Identity())
	if opts.RequestTimeout > 0 {
		api.Use(Timeout(opts.RequestTimeout))
	}
	api.Use(validator)
	RegisterHandlersWithBaseURL(api, si, "")

	return e, nil
}
