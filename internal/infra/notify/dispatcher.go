package notify

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"loyalty-ledger/internal/pkg/errs"
	"loyalty-ledger/internal/usecase/shared"

	"golang.org/x/time/rate"
)

var (
	ErrQueueFull        = errs.New("notification queue full")
	ErrDispatcherClosed = errs.New("notification dispatcher closed")
)

const sendTimeout = 30 * time.Second

type message struct {
	kind shared.NotificationKind
	to   string
	data map[string]any
}

// AsyncDispatcher queues notifications and hands them to the wrapped
// notifier from a fixed pool of workers. Notify never blocks on delivery.
type AsyncDispatcher struct {
	next    shared.Notifier
	queue   chan message
	limiter *rate.Limiter
	workers int

	mu      sync.RWMutex
	closed  bool
	wg      sync.WaitGroup
	started sync.Once
}

func NewAsyncDispatcher(next shared.Notifier, workers, queueSize int, perSecond float64) *AsyncDispatcher {
	if workers < 1 {
		workers = 1
	}
	if queueSize < 1 {
		queueSize = 1
	}
	limit := rate.Inf
	if perSecond > 0 {
		limit = rate.Limit(perSecond)
	}
	return &AsyncDispatcher{
		next:    next,
		queue:   make(chan message, queueSize),
		limiter: rate.NewLimiter(limit, 1),
		workers: workers,
	}
}

func (d *AsyncDispatcher) Start() {
	d.started.Do(func() {
		slog.Info("notification dispatcher starting", "workers", d.workers, "queue_size", cap(d.queue))
		for i := 0; i < d.workers; i++ {
			d.wg.Add(1)
			go d.run(i)
		}
	})
}

// Notify enqueues the message. A full queue drops it and reports ErrQueueFull.
func (d *AsyncDispatcher) Notify(_ context.Context, kind shared.NotificationKind, to string, data map[string]any) error {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closed {
		return ErrDispatcherClosed
	}

	select {
	case d.queue <- message{kind: kind, to: to, data: data}:
		return nil
	default:
		slog.Warn("notification dropped, queue full",
			"kind", string(kind),
			"queue_size", cap(d.queue))
		return ErrQueueFull
	}
}

// Stop refuses new messages and waits for queued ones to be delivered, or
// for ctx to expire.
func (d *AsyncDispatcher) Stop(ctx context.Context) error {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return nil
	}
	d.closed = true
	close(d.queue)
	d.mu.Unlock()

	d.Start() // drain even if never started

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		slog.Info("notification dispatcher drained")
		return nil
	case <-ctx.Done():
		slog.Warn("notification dispatcher stopped before draining", "pending", len(d.queue))
		return ctx.Err()
	}
}

func (d *AsyncDispatcher) run(worker int) {
	defer d.wg.Done()

	for msg := range d.queue {
		if err := d.limiter.Wait(context.Background()); err != nil {
			slog.Error("notification rate limiter failed", "worker", worker, "error", err.Error())
			continue
		}

		ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
		err := d.next.Notify(ctx, msg.kind, msg.to, msg.data)
		cancel()
		if err != nil {
			slog.Error("notification delivery failed",
				"worker", worker,
				"kind", string(msg.kind),
				"error", err.Error())
		}
	}
}
