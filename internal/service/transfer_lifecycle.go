package service

import (
	"context"
	"fmt"
	"time"

	"github.com/grachmannico95/transfer-engine/internal/domain"
	"github.com/grachmannico95/transfer-engine/internal/eventbus"
)

type unitStep func(ctx context.Context, uow domain.UnitOfWork, record *domain.TransferRecord) error

// execute runs step inside one unit of work around a pending record. When
// anything fails the unit is rolled back and the record is stored as failed
// on its own, so the attempt stays visible.
func (s *transferService) execute(ctx context.Context, record *domain.TransferRecord, step unitStep) (*domain.TransferRecord, error) {
	pending := record.Clone()

	if s.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.Timeout)
		defer cancel()
	}

	err := s.runUnit(ctx, record, step)
	if err != nil {
		s.logger.Error(ctx, "Transfer execution failed, rolled back",
			"error", err,
		)
		s.persistFailed(context.WithoutCancel(ctx), pending, err)
		return nil, fmt.Errorf("%w: %w", domain.ErrTransferExecutionFailed, err)
	}

	return record, nil
}

func (s *transferService) runUnit(ctx context.Context, record *domain.TransferRecord, step unitStep) error {
	uow, err := s.store.Begin(ctx)
	if err != nil {
		return err
	}
	defer uow.Rollback(ctx)

	s.notify(ctx, record.ID)

	if err := uow.SaveTransfer(ctx, record); err != nil {
		return err
	}

	if err := step(ctx, uow, record); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// applyTransfer moves record.Amount between the record's accounts under lock,
// marks the record completed and confirms settlement. delayKind decides
// whether the compensation delay applies.
func (s *transferService) applyTransfer(ctx context.Context, uow domain.UnitOfWork, record *domain.TransferRecord, delayKind domain.TransferKind) error {
	accounts, err := uow.LockAccounts(ctx, record.SourceAccountID, record.DestinationAccountID)
	if err != nil {
		return err
	}
	source := accounts[record.SourceAccountID]
	destination := accounts[record.DestinationAccountID]

	// Balances may have moved since the first check.
	if err := s.validator.Validate(source, destination, record.Amount); err != nil {
		return err
	}

	source.Balance = source.Balance.Sub(record.Amount)
	source.UpdatedAt = s.now()
	if err := uow.SaveAccount(ctx, source); err != nil {
		return err
	}

	if !delayKind.IsInstant() {
		if err := s.compensationDelay(ctx); err != nil {
			return err
		}
	}

	destination.Balance = destination.Balance.Add(record.Amount)
	destination.UpdatedAt = s.now()
	if err := uow.SaveAccount(ctx, destination); err != nil {
		return err
	}

	if err := record.Complete(); err != nil {
		return err
	}
	if err := uow.SaveTransfer(ctx, record); err != nil {
		return err
	}

	return s.confirm(ctx, record.ID)
}

func (s *transferService) compensationDelay(ctx context.Context) error {
	if s.cfg.CompensationDelay <= 0 {
		return nil
	}

	s.logger.Debug(ctx, "Holding for compensation delay",
		"delay", s.cfg.CompensationDelay,
	)

	timer := time.NewTimer(s.cfg.CompensationDelay)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// notify registers the transfer with the authority. The answer is only logged.
func (s *transferService) notify(ctx context.Context, transferID string) {
	resp, err := s.authority.Notify(ctx, transferID)
	if err != nil {
		s.logger.Warn(ctx, "Settlement notify failed",
			"error", err,
		)
		return
	}

	s.logger.Info(ctx, "Settlement notified",
		"status", resp.Status,
		"code", resp.Code,
	)
}

func (s *transferService) confirm(ctx context.Context, transferID string) error {
	resp, err := s.authority.Confirm(ctx, transferID)
	if err != nil {
		return err
	}
	if !resp.IsSuccess() {
		return fmt.Errorf("settlement not confirmed: %s", resp.Message)
	}
	return nil
}

func (s *transferService) persistFailed(ctx context.Context, pending *domain.TransferRecord, cause error) {
	if err := pending.Fail(cause.Error()); err != nil {
		s.logger.Error(ctx, "Failed to mark transfer as failed",
			"error", err,
		)
		return
	}

	if err := s.store.SaveTransfer(ctx, pending); err != nil {
		s.logger.Error(ctx, "Failed to persist failed transfer",
			"error", err,
		)
	}
}

// registerFailure writes the failure note and announces the failure. Both
// are best-effort.
func (s *transferService) registerFailure(ctx context.Context, transferID string, cause error) {
	ctx = context.WithoutCancel(ctx)

	s.logger.Error(ctx, "Transfer failed",
		"error", cause,
	)

	err := s.store.RecordFailureNote(ctx, domain.FailureNote{
		TransferID: transferID,
		Reason:     cause.Error(),
		CreatedAt:  s.now(),
	})
	if err != nil {
		s.logger.Error(ctx, "Failed to record failure note",
			"error", err,
		)
	}

	s.publishEvent(ctx, eventbus.TransferEvent{
		TransferID: transferID,
		Action:     domain.AuditActionFailed,
		Status:     domain.TransferStatusFailed,
		Reason:     cause.Error(),
	})
}

func (s *transferService) publish(ctx context.Context, record *domain.TransferRecord, action domain.AuditAction, reason string) {
	s.publishEvent(ctx, eventbus.TransferEvent{
		TransferID: record.ID,
		Action:     action,
		Status:     record.Status,
		Reason:     reason,
	})
}

func (s *transferService) publishEvent(ctx context.Context, payload eventbus.TransferEvent) {
	if s.eventBus == nil {
		return
	}

	event := eventbus.NewTransferEvent(payload, s.now())
	if err := s.eventBus.Publish(ctx, event); err != nil {
		s.logger.Error(ctx, "Failed to publish event",
			"event_id", event.ID,
			"error", err,
		)
	}
}
