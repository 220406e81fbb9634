package middleware

import (
	"net/http"
	"time"

	"github.com/grachmannico95/transfer-engine/pkg/logger"
	"github.com/labstack/echo/v4"
)

func Logging(log *logger.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)

			fields := []interface{}{
				"method", c.Request().Method,
				"path", c.Path(),
				"status", c.Response().Status,
				"duration_ms", time.Since(start).Milliseconds(),
				"remote_addr", c.RealIP(),
			}

			if c.Response().Status >= http.StatusInternalServerError {
				log.Warn(c.Request().Context(), "HTTP request failed", fields...)
			} else {
				log.Info(c.Request().Context(), "HTTP request", fields...)
			}

			return err
		}
	}
}
