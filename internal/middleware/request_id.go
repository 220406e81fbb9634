package middleware

import (
	"github.com/google/uuid"
	"github.com/grachmannico95/transfer-engine/pkg/logger"
	"github.com/labstack/echo/v4"
)

const (
	HeaderTraceID   = "X-Trace-ID"
	maxTraceIDBytes = 64
)

// RequestID attaches a trace id to the request context and echoes it back.
// A caller-supplied id is reused when it is short enough to log safely.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			traceID := c.Request().Header.Get(HeaderTraceID)
			if traceID == "" {
				traceID = c.Request().Header.Get(echo.HeaderXRequestID)
			}
			if traceID == "" || len(traceID) > maxTraceIDBytes {
				traceID = uuid.New().String()
			}

			ctx := logger.WithTraceID(c.Request().Context(), traceID)
			c.SetRequest(c.Request().WithContext(ctx))

			c.Response().Header().Set(HeaderTraceID, traceID)

			return next(c)
		}
	}
}
