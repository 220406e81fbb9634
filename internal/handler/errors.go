package handler

import (
	"errors"
	"net/http"

	"github.com/grachmannico95/transfer-engine/internal/domain"
	"github.com/grachmannico95/transfer-engine/pkg/logger"
	"github.com/labstack/echo/v4"
)

// statusFor maps a domain error to its HTTP status. Order matters: wrapped
// errors can match more than one kind.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrAuthenticationFailed):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrAuthorizationRejected),
		errors.Is(err, domain.ErrOwnershipViolation):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrSettlementUnavailable):
		return http.StatusServiceUnavailable
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrReversalAmountExceeded),
		errors.Is(err, domain.ErrInvalidTransition),
		errors.Is(err, domain.ErrInvalidOwner),
		errors.Is(err, domain.ErrInvalidAccount):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrValidationFailed):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrOwnerExists):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c echo.Context, log *logger.Logger, err error) error {
	status := statusFor(err)
	message := err.Error()

	if status == http.StatusInternalServerError {
		log.Error(c.Request().Context(), "Request failed",
			"path", c.Path(),
			"error", err,
		)
		if !errors.Is(err, domain.ErrTransferExecutionFailed) {
			message = "internal server error"
		}
	}

	return c.JSON(status, map[string]string{
		"error": message,
	})
}

func badRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, map[string]string{
		"error": message,
	})
}
