package eventbus

import (
	"context"
	"fmt"

	"github.com/grachmannico95/transfer-engine/internal/domain"
	"github.com/grachmannico95/transfer-engine/pkg/logger"
	"github.com/grachmannico95/transfer-engine/pkg/retry"
)

// AuditConsumer appends transfer lifecycle events to the audit log. Each
// event is applied at most once.
type AuditConsumer struct {
	repo        domain.AuditLog
	logger      *logger.Logger
	workerCount int
}

func NewAuditConsumer(repo domain.AuditLog, log *logger.Logger, workerCount int) *AuditConsumer {
	return &AuditConsumer{
		repo:        repo,
		logger:      log,
		workerCount: workerCount,
	}
}

func (ac *AuditConsumer) Consume(ctx context.Context, event Event) error {
	// Check idempotency
	processed, err := ac.repo.IsEventProcessed(ctx, event.ID)
	if err != nil {
		ac.logger.Error(ctx, "Failed to check event processed status",
			"event_id", event.ID,
			"error", err,
		)
		return err
	}

	if processed {
		ac.logger.Debug(ctx, "Event already processed, skipping",
			"event_id", event.ID,
		)
		return nil
	}

	payload, ok := event.Payload.(TransferEvent)
	if !ok {
		ac.logger.Error(ctx, "Invalid payload type for transfer event",
			"event_id", event.ID,
		)
		return retry.Permanent(fmt.Errorf("invalid payload type %T", event.Payload))
	}

	ctx = logger.WithTransferID(ctx, payload.TransferID)

	err = ac.repo.AppendAuditEntry(ctx, domain.AuditEntry{
		EventID:    event.ID,
		TransferID: payload.TransferID,
		Action:     payload.Action,
		Status:     payload.Status,
		Reason:     payload.Reason,
		OccurredAt: event.Timestamp,
	})
	if err != nil {
		ac.logger.Error(ctx, "Failed to append audit entry",
			"event_id", event.ID,
			"error", err,
		)
		return err
	}

	err = ac.repo.MarkEventProcessed(ctx, event.ID)
	if err != nil {
		ac.logger.Error(ctx, "Failed to mark event as processed",
			"event_id", event.ID,
			"error", err,
		)
		return err
	}

	ac.logger.Debug(ctx, "Audit entry recorded",
		"event_id", event.ID,
		"action", payload.Action,
	)

	return nil
}

func (ac *AuditConsumer) GetWorkerCount() int {
	return ac.workerCount
}
