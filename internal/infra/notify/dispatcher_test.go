//go:build unit

package notify_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"loyalty-ledger/internal/infra/notify"
	"loyalty-ledger/internal/usecase/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingNotifier struct {
	mu      sync.Mutex
	got     []string
	block   chan struct{}
	failFor string
}

func (r *recordingNotifier) Notify(_ context.Context, kind shared.NotificationKind, to string, _ map[string]any) error {
	if r.block != nil {
		<-r.block
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.got = append(r.got, string(kind)+":"+to)
	if to == r.failFor {
		return errors.New("smtp down")
	}
	return nil
}

func (r *recordingNotifier) delivered() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.got...)
}

func TestAsyncDispatcher_DeliversAndDrains(t *testing.T) {
	rec := &recordingNotifier{failFor: "b@example.com"}
	d := notify.NewAsyncDispatcher(rec, 2, 8, 0)
	d.Start()

	require.NoError(t, d.Notify(context.Background(), shared.NotifyWelcome, "a@example.com", nil))
	require.NoError(t, d.Notify(context.Background(), shared.NotifyPurchase, "b@example.com", nil))
	require.NoError(t, d.Notify(context.Background(), shared.NotifyRedemption, "c@example.com", nil))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, d.Stop(ctx))

	assert.ElementsMatch(t, []string{
		"welcome:a@example.com",
		"purchase:b@example.com",
		"redemption:c@example.com",
	}, rec.delivered())
}

func TestAsyncDispatcher_FullQueueDrops(t *testing.T) {
	rec := &recordingNotifier{}
	// Not started: nothing consumes the queue.
	d := notify.NewAsyncDispatcher(rec, 1, 1, 0)

	require.NoError(t, d.Notify(context.Background(), shared.NotifyWelcome, "a@example.com", nil))
	err := d.Notify(context.Background(), shared.NotifyWelcome, "b@example.com", nil)

	assert.ErrorIs(t, err, notify.ErrQueueFull)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, d.Stop(ctx))
	assert.Equal(t, []string{"welcome:a@example.com"}, rec.delivered())
}

func TestAsyncDispatcher_RejectsAfterStop(t *testing.T) {
	d := notify.NewAsyncDispatcher(&recordingNotifier{}, 1, 4, 0)
	d.Start()
	require.NoError(t, d.Stop(context.Background()))

	err := d.Notify(context.Background(), shared.NotifyWelcome, "a@example.com", nil)

	assert.ErrorIs(t, err, notify.ErrDispatcherClosed)
	assert.NoError(t, d.Stop(context.Background()), "second stop is a no-op")
}

func TestAsyncDispatcher_StopHonoursDeadline(t *testing.T) {
	rec := &recordingNotifier{block: make(chan struct{})}
	d := notify.NewAsyncDispatcher(rec, 1, 4, 0)
	d.Start()
	require.NoError(t, d.Notify(context.Background(), shared.NotifyWelcome, "a@example.com", nil))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	err := d.Stop(ctx)

	assert.ErrorIs(t, err, context.DeadlineExceeded)
	close(rec.block)
}
