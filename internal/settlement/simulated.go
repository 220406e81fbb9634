package settlement

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/grachmannico95/transfer-engine/internal/domain"
	"github.com/shopspring/decimal"
)

const (
	CodeAuthorized = "SA-001"
	CodeRegistered = "SA-002"
	CodeConfirmed  = "SA-003"
	CodeOverLimit  = "SA-901"
)

type SimulatedConfig struct {
	AuthorizeLatency time.Duration
	NotifyLatency    time.Duration
	ConfirmLatency   time.Duration
	// MaxAuthorizedAmount rejects larger transfers when positive.
	MaxAuthorizedAmount decimal.Decimal
}

func DefaultSimulatedConfig() SimulatedConfig {
	return SimulatedConfig{
		AuthorizeLatency: 500 * time.Millisecond,
		NotifyLatency:    300 * time.Millisecond,
		ConfirmLatency:   200 * time.Millisecond,
	}
}

// SimulatedAuthority stands in for the real authority. It answers after a
// fixed latency and approves everything under the configured limit.
type SimulatedAuthority struct {
	cfg SimulatedConfig
	now func() time.Time
}

var _ Authority = (*SimulatedAuthority)(nil)

func NewSimulatedAuthority(cfg SimulatedConfig) *SimulatedAuthority {
	return &SimulatedAuthority{cfg: cfg, now: time.Now}
}

func (a *SimulatedAuthority) Authorize(ctx context.Context, req domain.AuthorizationRequest) (*domain.SettlementResponse, error) {
	if err := wait(ctx, a.cfg.AuthorizeLatency); err != nil {
		return nil, err
	}

	limit := a.cfg.MaxAuthorizedAmount
	if limit.IsPositive() && req.Amount.GreaterThan(limit) {
		return &domain.SettlementResponse{
			Status:        domain.SettlementStatusError,
			Code:          CodeOverLimit,
			Timestamp:     a.now(),
			CorrelationID: uuid.NewString(),
			Message:       fmt.Sprintf("Transfer of %s via %s exceeds the authorized limit of %s", req.Amount, req.Kind, limit),
		}, nil
	}

	return &domain.SettlementResponse{
		Status:        domain.SettlementStatusSuccess,
		Code:          CodeAuthorized,
		Timestamp:     a.now(),
		CorrelationID: uuid.NewString(),
		Message:       fmt.Sprintf("Transfer of %s via %s authorized", req.Amount, req.Kind),
	}, nil
}

func (a *SimulatedAuthority) Notify(ctx context.Context, transferID string) (*domain.SettlementResponse, error) {
	if err := wait(ctx, a.cfg.NotifyLatency); err != nil {
		return nil, err
	}

	return &domain.SettlementResponse{
		Status:        domain.SettlementStatusSuccess,
		Code:          CodeRegistered,
		Timestamp:     a.now(),
		CorrelationID: transferID,
		Message:       "Transfer registered",
	}, nil
}

func (a *SimulatedAuthority) Confirm(ctx context.Context, transferID string) (*domain.SettlementResponse, error) {
	if err := wait(ctx, a.cfg.ConfirmLatency); err != nil {
		return nil, err
	}

	return &domain.SettlementResponse{
		Status:        domain.SettlementStatusSuccess,
		Code:          CodeConfirmed,
		Timestamp:     a.now(),
		CorrelationID: transferID,
		Message:       "Settlement confirmed",
	}, nil
}

func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
