package handler

import (
	"net/http"
	"time"

	"github.com/grachmannico95/transfer-engine/internal/eventbus"
	"github.com/labstack/echo/v4"
	"github.com/sony/gobreaker"
)

// BreakerReporter reports the state of the settlement circuit breaker.
type BreakerReporter interface {
	State() gobreaker.State
}

type EventStatsReporter interface {
	Stats() eventbus.Stats
}

type HealthHandler struct {
	settlement BreakerReporter
	events     EventStatsReporter
}

func NewHealthHandler(settlement BreakerReporter, events EventStatsReporter) *HealthHandler {
	return &HealthHandler{settlement: settlement, events: events}
}

// Check reports degraded while the settlement breaker is open. The process
// itself is still serving reads.
func (h *HealthHandler) Check(c echo.Context) error {
	status := "ok"
	breaker := "unknown"

	if h.settlement != nil {
		state := h.settlement.State()
		breaker = state.String()
		if state == gobreaker.StateOpen {
			status = "degraded"
		}
	}

	body := map[string]interface{}{
		"status":     status,
		"settlement": breaker,
		"timestamp":  time.Now().Format(time.RFC3339),
	}
	if h.events != nil {
		body["events"] = h.events.Stats()
	}

	return c.JSON(http.StatusOK, body)
}
