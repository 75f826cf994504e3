package event

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khoahotran/personal-site/internal/application/service"
	"github.com/khoahotran/personal-site/pkg/logger"
)

// queueReader serves queued messages, then cancels the run.
type queueReader struct {
	mu        sync.Mutex
	queue     []kafka.Message
	committed []int64
	fetches   int
	cancel    context.CancelFunc
}

func (r *queueReader) FetchMessage(ctx context.Context) (kafka.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fetches++
	if err := ctx.Err(); err != nil {
		return kafka.Message{}, err
	}
	if len(r.queue) == 0 {
		r.cancel()
		return kafka.Message{}, ctx.Err()
	}
	msg := r.queue[0]
	r.queue = r.queue[1:]
	return msg, nil
}

func (r *queueReader) CommitMessages(ctx context.Context, msgs ...kafka.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range msgs {
		r.committed = append(r.committed, m.Offset)
	}
	return nil
}

func (r *queueReader) Close() error { return nil }

func eventMessage(t *testing.T, offset int64, id string) kafka.Message {
	t.Helper()
	value, err := json.Marshal(service.SiteEvent{ID: id, EventType: service.SiteEventStateSaved, Resource: "entry"})
	require.NoError(t, err)
	return kafka.Message{Offset: offset, Value: value}
}

func newTestConsumer(reader messageReader) *SiteEventConsumer {
	return &SiteEventConsumer{reader: reader, logger: logger.NewNop(), backoff: time.Millisecond}
}

func TestSiteEventConsumer_RetriesFailedHandler(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	reader := &queueReader{queue: []kafka.Message{eventMessage(t, 1, "a"), eventMessage(t, 2, "b")}, cancel: cancel}

	calls := map[string]int{}
	err := newTestConsumer(reader).Run(ctx, func(ctx context.Context, evt service.SiteEvent) error {
		calls[evt.ID]++
		if evt.ID == "a" && calls[evt.ID] < 3 {
			return errors.New("redis down")
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, calls["a"], "handler retried until it succeeded")
	assert.Equal(t, 1, calls["b"])
	assert.Equal(t, []int64{1, 2}, reader.committed)
}

func TestSiteEventConsumer_GivesUpAfterMaxAttempts(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	reader := &queueReader{queue: []kafka.Message{eventMessage(t, 7, "a")}, cancel: cancel}

	calls := 0
	err := newTestConsumer(reader).Run(ctx, func(ctx context.Context, evt service.SiteEvent) error {
		calls++
		return errors.New("store unavailable")
	})

	require.NoError(t, err)
	assert.Equal(t, maxHandleAttempts, calls)
	assert.Equal(t, []int64{7}, reader.committed)
}

func TestSiteEventConsumer_SkipsUndecodableMessages(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	reader := &queueReader{queue: []kafka.Message{{Offset: 3, Value: []byte("{not json")}}, cancel: cancel}

	called := false
	err := newTestConsumer(reader).Run(ctx, func(ctx context.Context, evt service.SiteEvent) error {
		called = true
		return nil
	})

	require.NoError(t, err)
	assert.False(t, called)
	assert.Equal(t, []int64{3}, reader.committed)
}

func TestSiteEventConsumer_StopsOnExpiredDeadline(t *testing.T) {
	ctx, cancel := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
	defer cancel()
	reader := &queueReader{cancel: cancel}

	done := make(chan error, 1)
	go func() {
		done <- newTestConsumer(reader).Run(ctx, func(ctx context.Context, evt service.SiteEvent) error { return nil })
	}()

	select {
	case err := <-done:
		assert.NoError(t, err)
		assert.Equal(t, 1, reader.fetches)
	case <-time.After(2 * time.Second):
		t.Fatal("consumer kept polling after its deadline")
	}
}
