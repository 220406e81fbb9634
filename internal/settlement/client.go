package settlement

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/grachmannico95/transfer-engine/internal/domain"
	"github.com/grachmannico95/transfer-engine/pkg/logger"
	"github.com/sony/gobreaker"
)

type ClientConfig struct {
	Name        string
	CallTimeout time.Duration

	// Breaker settings
	MaxRequests         uint32
	Interval            time.Duration
	Timeout             time.Duration
	ConsecutiveFailures uint32
}

// Client guards an Authority with a per-call timeout and a circuit breaker.
// Only transport failures count against the breaker; an ERROR response is
// passed through untouched.
type Client struct {
	authority Authority
	breaker   *gobreaker.CircuitBreaker
	timeout   time.Duration
	logger    *logger.Logger
}

var _ Authority = (*Client)(nil)

func NewClient(authority Authority, cfg ClientConfig, log *logger.Logger) *Client {
	if cfg.Name == "" {
		cfg.Name = "settlement-authority"
	}
	if cfg.ConsecutiveFailures == 0 {
		cfg.ConsecutiveFailures = 5
	}

	c := &Client{
		authority: authority,
		timeout:   cfg.CallTimeout,
		logger:    log,
	}

	c.breaker = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        cfg.Name,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.ConsecutiveFailures
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			log.Warn(context.Background(), "Settlement circuit breaker state changed",
				"breaker", name,
				"from", from,
				"to", to,
			)
		},
	})

	return c
}

func (c *Client) Authorize(ctx context.Context, req domain.AuthorizationRequest) (*domain.SettlementResponse, error) {
	return c.call(ctx, "authorize", func(ctx context.Context) (*domain.SettlementResponse, error) {
		return c.authority.Authorize(ctx, req)
	})
}

func (c *Client) Notify(ctx context.Context, transferID string) (*domain.SettlementResponse, error) {
	return c.call(ctx, "notify", func(ctx context.Context) (*domain.SettlementResponse, error) {
		return c.authority.Notify(ctx, transferID)
	})
}

func (c *Client) Confirm(ctx context.Context, transferID string) (*domain.SettlementResponse, error) {
	return c.call(ctx, "confirm", func(ctx context.Context) (*domain.SettlementResponse, error) {
		return c.authority.Confirm(ctx, transferID)
	})
}

// State exposes the breaker state for health reporting.
func (c *Client) State() gobreaker.State {
	return c.breaker.State()
}

func (c *Client) call(ctx context.Context, op string, fn func(ctx context.Context) (*domain.SettlementResponse, error)) (*domain.SettlementResponse, error) {
	started := time.Now()

	result, err := c.breaker.Execute(func() (interface{}, error) {
		callCtx := ctx
		if c.timeout > 0 {
			var cancel context.CancelFunc
			callCtx, cancel = context.WithTimeout(ctx, c.timeout)
			defer cancel()
		}

		resp, err := fn(callCtx)
		if err != nil {
			return nil, err
		}
		if resp == nil {
			return nil, fmt.Errorf("empty %s response", op)
		}
		return resp, nil
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			c.logger.Warn(ctx, "Settlement call rejected by circuit breaker",
				"operation", op,
				"error", err,
			)
		} else {
			c.logger.Error(ctx, "Settlement call failed",
				"operation", op,
				"duration_ms", time.Since(started).Milliseconds(),
				"error", err,
			)
		}
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrSettlementUnavailable, op, err)
	}

	resp := result.(*domain.SettlementResponse)
	c.logger.Info(ctx, "Settlement call completed",
		"operation", op,
		"status", resp.Status,
		"code", resp.Code,
		"correlation_id", resp.CorrelationID,
		"duration_ms", time.Since(started).Milliseconds(),
	)

	return resp, nil
}
