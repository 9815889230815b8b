package http

import (
	"context"
	"errors"
	"net/http"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ErrMissingIdentity is returned when the gateway headers are absent or
// malformed.
var ErrMissingIdentity = errors.New("caller identity is missing or invalid")

// statusFor maps an application error to an HTTP status. The first match
// wins, so more specific errors come first.
func statusFor(err error) int {
	switch {
	case errors.Is(err, ErrMissingIdentity):
		return http.StatusUnauthorized
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, order.ErrUnauthorized):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, order.ErrInvalidTransition),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) respondError(ctx echo.Context, err error) error {
	code := statusFor(err)
	body := Error{Code: code, Message: err.Error()}

	switch code {
	case http.StatusConflict:
		var conflict *errs.ConflictError
		if errors.As(err, &conflict) {
			body.Message = conflict.Reason
		}
	case http.StatusServiceUnavailable:
		body.Message = "request timed out, try again"
		body.Retryable = true
	case http.StatusInternalServerError:
		s.logger.Error("request failed",
			"method", ctx.Request().Method,
			"path", ctx.Path(),
			"error", err,
		)
		body.Message = "Internal server error"
	}

	return ctx.JSON(code, body)
}

func (s *Server) badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
