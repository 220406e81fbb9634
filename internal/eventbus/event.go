package eventbus

import (
	"time"

	"github.com/google/uuid"
	"github.com/grachmannico95/transfer-engine/internal/domain"
)

type EventType string

// Transfer lifecycle event types share their names with the audit actions.
const (
	EventTypeTransferCompleted EventType = EventType(domain.AuditActionCompleted)
	EventTypeTransferFailed    EventType = EventType(domain.AuditActionFailed)
	EventTypeTransferReversed  EventType = EventType(domain.AuditActionReversed)
)

func TransferEventTypes() []EventType {
	return []EventType{
		EventTypeTransferCompleted,
		EventTypeTransferFailed,
		EventTypeTransferReversed,
	}
}

type Event struct {
	ID         string      `json:"id"`
	Type       EventType   `json:"type"`
	TransferID string      `json:"transfer_id,omitempty"`
	Payload    interface{} `json:"payload"`
	Timestamp  time.Time   `json:"timestamp"`
	Retries    int         `json:"retries"`
}

// TransferEvent reports one step of a transfer's lifecycle.
type TransferEvent struct {
	TransferID string                `json:"transfer_id"`
	Action     domain.AuditAction    `json:"action"`
	Status     domain.TransferStatus `json:"status,omitempty"`
	Reason     string                `json:"reason,omitempty"`
}

// NewTransferEvent wraps payload in an event typed after its action.
func NewTransferEvent(payload TransferEvent, at time.Time) Event {
	return Event{
		ID:         uuid.New().String(),
		Type:       EventType(payload.Action),
		TransferID: payload.TransferID,
		Payload:    payload,
		Timestamp:  at,
	}
}
