package settlement

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/grachmannico95/transfer-engine/internal/domain"
	"github.com/grachmannico95/transfer-engine/pkg/logger"
	"github.com/shopspring/decimal"
	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAuthority struct {
	calls int32
	err   error
	resp  *domain.SettlementResponse
	delay time.Duration
}

func (f *fakeAuthority) answer(ctx context.Context) (*domain.SettlementResponse, error) {
	atomic.AddInt32(&f.calls, 1)
	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

func (f *fakeAuthority) Authorize(ctx context.Context, _ domain.AuthorizationRequest) (*domain.SettlementResponse, error) {
	return f.answer(ctx)
}

func (f *fakeAuthority) Notify(ctx context.Context, _ string) (*domain.SettlementResponse, error) {
	return f.answer(ctx)
}

func (f *fakeAuthority) Confirm(ctx context.Context, _ string) (*domain.SettlementResponse, error) {
	return f.answer(ctx)
}

func TestSimulatedAuthority_Success(t *testing.T) {
	authority := NewSimulatedAuthority(SimulatedConfig{})
	ctx := context.Background()

	resp, err := authority.Authorize(ctx, domain.AuthorizationRequest{
		OriginInstitution:      "001",
		DestinationInstitution: "001",
		Amount:                 decimal.NewFromInt(100),
		Kind:                   domain.TransferKindPIX,
	})
	require.NoError(t, err)
	assert.True(t, resp.IsSuccess())
	assert.Equal(t, CodeAuthorized, resp.Code)
	assert.NotEmpty(t, resp.CorrelationID)

	resp, err = authority.Notify(ctx, "tr-1")
	require.NoError(t, err)
	assert.Equal(t, CodeRegistered, resp.Code)
	assert.Equal(t, "tr-1", resp.CorrelationID)

	resp, err = authority.Confirm(ctx, "tr-1")
	require.NoError(t, err)
	assert.Equal(t, CodeConfirmed, resp.Code)
}

func TestSimulatedAuthority_RejectsAboveLimit(t *testing.T) {
	authority := NewSimulatedAuthority(SimulatedConfig{MaxAuthorizedAmount: decimal.NewFromInt(1000)})

	resp, err := authority.Authorize(context.Background(), domain.AuthorizationRequest{
		Amount: decimal.NewFromInt(1001),
		Kind:   domain.TransferKindTED,
	})
	require.NoError(t, err)
	assert.False(t, resp.IsSuccess())
	assert.Equal(t, CodeOverLimit, resp.Code)
	assert.NotEmpty(t, resp.Message)
}

func TestSimulatedAuthority_HonoursLatencyAndCancellation(t *testing.T) {
	authority := NewSimulatedAuthority(SimulatedConfig{NotifyLatency: 30 * time.Millisecond})

	started := time.Now()
	_, err := authority.Notify(context.Background(), "tr-1")
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(started), 30*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = authority.Notify(ctx, "tr-1")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDefaultSimulatedConfig(t *testing.T) {
	cfg := DefaultSimulatedConfig()

	assert.Equal(t, 500*time.Millisecond, cfg.AuthorizeLatency)
	assert.Equal(t, 300*time.Millisecond, cfg.NotifyLatency)
	assert.Equal(t, 200*time.Millisecond, cfg.ConfirmLatency)
}

func TestClient_PassesErrorResponseThrough(t *testing.T) {
	fake := &fakeAuthority{resp: &domain.SettlementResponse{
		Status:  domain.SettlementStatusError,
		Code:    "SA-901",
		Message: "over limit",
	}}
	client := NewClient(fake, ClientConfig{ConsecutiveFailures: 1}, logger.NewNop())

	for i := 0; i < 3; i++ {
		resp, err := client.Authorize(context.Background(), domain.AuthorizationRequest{})
		require.NoError(t, err)
		assert.Equal(t, "over limit", resp.Message)
	}

	assert.Equal(t, gobreaker.StateClosed, client.State())
}

func TestClient_TransportErrorWrapsUnavailable(t *testing.T) {
	fake := &fakeAuthority{err: errors.New("connection refused")}
	client := NewClient(fake, ClientConfig{ConsecutiveFailures: 5}, logger.NewNop())

	_, err := client.Notify(context.Background(), "tr-1")
	assert.ErrorIs(t, err, domain.ErrSettlementUnavailable)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestClient_BreakerOpensAfterConsecutiveFailures(t *testing.T) {
	fake := &fakeAuthority{err: errors.New("boom")}
	client := NewClient(fake, ClientConfig{ConsecutiveFailures: 2, Timeout: time.Minute}, logger.NewNop())
	ctx := context.Background()

	_, _ = client.Confirm(ctx, "tr-1")
	_, _ = client.Confirm(ctx, "tr-2")
	assert.Equal(t, gobreaker.StateOpen, client.State())

	_, err := client.Confirm(ctx, "tr-3")
	assert.ErrorIs(t, err, domain.ErrSettlementUnavailable)
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
	assert.Equal(t, int32(2), atomic.LoadInt32(&fake.calls))
}

func TestClient_CallTimeout(t *testing.T) {
	fake := &fakeAuthority{
		delay: time.Second,
		resp:  &domain.SettlementResponse{Status: domain.SettlementStatusSuccess},
	}
	client := NewClient(fake, ClientConfig{CallTimeout: 10 * time.Millisecond}, logger.NewNop())

	_, err := client.Authorize(context.Background(), domain.AuthorizationRequest{})
	assert.ErrorIs(t, err, domain.ErrSettlementUnavailable)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestClient_NilResponseIsFailure(t *testing.T) {
	client := NewClient(&fakeAuthority{}, ClientConfig{}, logger.NewNop())

	_, err := client.Confirm(context.Background(), "tr-1")
	assert.ErrorIs(t, err, domain.ErrSettlementUnavailable)
}
