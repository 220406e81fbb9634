package eventbus

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/grachmannico95/transfer-engine/pkg/logger"
	"github.com/grachmannico95/transfer-engine/pkg/retry"
)

var ErrBusClosed = errors.New("event bus closed")

type EventBus interface {
	Publish(ctx context.Context, event Event) error
	// Subscribe routes eventType to consumer. A consumer subscribed to
	// several types reads them from a single queue, in publish order.
	Subscribe(eventType EventType, consumer Consumer) error
	Start(ctx context.Context) error
	// Shutdown stops intake and lets workers drain what is already queued.
	Shutdown(ctx context.Context) error
	Stats() Stats
}

// Stats counts deliveries since the bus was created. One event routed to two
// consumers counts twice.
type Stats struct {
	Published int64 `json:"published"`
	Dropped   int64 `json:"dropped"`
	Processed int64 `json:"processed"`
	Failed    int64 `json:"failed"`
}

type route struct {
	consumer Consumer
	queue    chan Event
}

type eventBus struct {
	routes        map[EventType][]*route
	byConsumer    map[Consumer]*route
	mu            sync.RWMutex
	wg            sync.WaitGroup
	ctx           context.Context
	cancel        context.CancelFunc
	logger        *logger.Logger
	channelBuffer int
	maxRetries    int
	retryDelay    time.Duration
	started       bool
	closed        bool

	published atomic.Int64
	dropped   atomic.Int64
	processed atomic.Int64
	failed    atomic.Int64
}

type Config struct {
	ChannelBuffer int
	MaxRetries    int
	RetryDelay    time.Duration
}

func New(log *logger.Logger, cfg *Config) EventBus {
	if cfg == nil {
		cfg = &Config{
			ChannelBuffer: 1000,
			MaxRetries:    5,
			RetryDelay:    time.Second,
		}
	}
	if cfg.RetryDelay <= 0 {
		cfg.RetryDelay = time.Second
	}

	return &eventBus{
		routes:        make(map[EventType][]*route),
		byConsumer:    make(map[Consumer]*route),
		logger:        log,
		channelBuffer: cfg.ChannelBuffer,
		maxRetries:    cfg.MaxRetries,
		retryDelay:    cfg.RetryDelay,
	}
}

// SubscribeTransferEvents routes every transfer lifecycle event to consumer.
func SubscribeTransferEvents(bus EventBus, consumer Consumer) error {
	for _, eventType := range TransferEventTypes() {
		if err := bus.Subscribe(eventType, consumer); err != nil {
			return err
		}
	}
	return nil
}

func (eb *eventBus) Subscribe(eventType EventType, consumer Consumer) error {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	if eb.closed {
		return ErrBusClosed
	}

	r, exists := eb.byConsumer[consumer]
	if !exists {
		r = &route{consumer: consumer, queue: make(chan Event, eb.channelBuffer)}
		eb.byConsumer[consumer] = r
		if eb.started {
			eb.startWorkers(r)
		}
	}

	for _, existing := range eb.routes[eventType] {
		if existing == r {
			return nil
		}
	}
	eb.routes[eventType] = append(eb.routes[eventType], r)

	return nil
}

func (eb *eventBus) Start(ctx context.Context) error {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	if eb.closed {
		return ErrBusClosed
	}
	if eb.started {
		return nil
	}

	eb.ctx, eb.cancel = context.WithCancel(ctx)

	for _, r := range eb.byConsumer {
		eb.startWorkers(r)
	}

	eb.started = true
	eb.logger.Info(eb.ctx, "Event bus started",
		"consumers", len(eb.byConsumer),
	)

	return nil
}

// startWorkers must be called with eb.mu held.
func (eb *eventBus) startWorkers(r *route) {
	workerCount := r.consumer.GetWorkerCount()
	if workerCount < 1 {
		workerCount = 1
	}

	eb.logger.Info(eb.ctx, "Starting workers",
		"worker_count", workerCount,
	)

	for i := 0; i < workerCount; i++ {
		eb.wg.Add(1)
		go eb.worker(eb.ctx, r, i)
	}
}

func (eb *eventBus) worker(ctx context.Context, r *route, workerID int) {
	defer eb.wg.Done()

	for {
		select {
		case <-ctx.Done():
			eb.logger.Debug(ctx, "Worker aborted", "worker_id", workerID)
			return
		case event, ok := <-r.queue:
			if !ok {
				eb.logger.Debug(ctx, "Queue drained, worker stopping", "worker_id", workerID)
				return
			}

			eb.processEvent(ctx, event, r.consumer, workerID)
		}
	}
}

func (eb *eventBus) processEvent(ctx context.Context, event Event, consumer Consumer, workerID int) {
	eventCtx := ctx
	if event.ID != "" {
		eventCtx = logger.WithTraceID(ctx, event.ID)
	}
	if event.TransferID != "" {
		eventCtx = logger.WithTransferID(eventCtx, event.TransferID)
	}

	err := retry.Do(eventCtx, func() error {
		return consumer.Consume(eventCtx, event)
	}, retry.WithMaxAttempts(eb.maxRetries), retry.WithBaseDelay(eb.retryDelay))

	if err != nil {
		eb.failed.Add(1)
		eb.logger.Error(eventCtx, "Failed to process event after retries",
			"event_id", event.ID,
			"event_type", event.Type,
			"worker_id", workerID,
			"error", err,
		)
		return
	}

	eb.processed.Add(1)
	eb.logger.Debug(eventCtx, "Event processed",
		"event_id", event.ID,
		"event_type", event.Type,
		"worker_id", workerID,
	)
}

// Publish fans event out to every consumer routed for its type. A full queue
// drops the event for that consumer only; publishing never blocks a transfer.
func (eb *eventBus) Publish(ctx context.Context, event Event) error {
	eb.mu.RLock()
	defer eb.mu.RUnlock()

	if eb.closed {
		return ErrBusClosed
	}

	routes := eb.routes[event.Type]
	if len(routes) == 0 {
		eb.logger.Warn(ctx, "No consumer for event type",
			"event_type", event.Type,
			"event_id", event.ID,
		)
		return nil
	}

	if event.ID == "" {
		event.ID = uuid.New().String()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	for _, r := range routes {
		select {
		case r.queue <- event:
			eb.published.Add(1)
		case <-ctx.Done():
			return ctx.Err()
		default:
			eb.dropped.Add(1)
			eb.logger.Warn(ctx, "Consumer queue full, event dropped",
				"event_type", event.Type,
				"event_id", event.ID,
			)
		}
	}

	return nil
}

func (eb *eventBus) Shutdown(ctx context.Context) error {
	eb.mu.Lock()
	if eb.closed {
		eb.mu.Unlock()
		return nil
	}
	eb.closed = true
	for _, r := range eb.byConsumer {
		close(r.queue)
	}
	eb.mu.Unlock()

	eb.logger.Info(ctx, "Shutting down event bus, draining queues")

	done := make(chan struct{})
	go func() {
		eb.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		if eb.cancel != nil {
			eb.cancel()
		}
		eb.logger.Info(ctx, "Event bus shutdown complete",
			"processed", eb.processed.Load(),
			"failed", eb.failed.Load(),
		)
		return nil
	case <-ctx.Done():
		// Abort in-flight retries; remaining events are lost.
		if eb.cancel != nil {
			eb.cancel()
		}
		eb.logger.Warn(ctx, "Event bus shutdown timeout")
		return ctx.Err()
	}
}

func (eb *eventBus) Stats() Stats {
	return Stats{
		Published: eb.published.Load(),
		Dropped:   eb.dropped.Load(),
		Processed: eb.processed.Load(),
		Failed:    eb.failed.Load(),
	}
}
