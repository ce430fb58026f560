package clicks

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shortlinks/internal/domain"
)

type stubGate struct {
	verdict bool
	delay   time.Duration
}

func (g *stubGate) Validate(ctx context.Context) bool {
	if g.delay > 0 {
		time.Sleep(g.delay)
	}
	return g.verdict
}

type fakeClickStore struct {
	mu     sync.Mutex
	clicks []domain.ClickEvent
	err    error
}

func (s *fakeClickStore) SaveClick(_ context.Context, click *domain.ClickEvent) (*domain.ClickEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	click.ID = int64(len(s.clicks) + 1)
	s.clicks = append(s.clicks, *click)
	return click, nil
}

func (s *fakeClickStore) saved() []domain.ClickEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.ClickEvent, len(s.clicks))
	copy(out, s.clicks)
	return out
}

type countingMetrics struct {
	mu     sync.Mutex
	counts map[string]int
}

func newCountingMetrics() *countingMetrics {
	return &countingMetrics{counts: make(map[string]int)}
}

func (m *countingMetrics) RecordBusiness(name string, value float64, labels map[string]string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counts[name]++
}

func (m *countingMetrics) count(name string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.counts[name]
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

const perClickCredit = domain.Credit(5)

func TestDispatchRecordsValidClick(t *testing.T) {
	store := &fakeClickStore{}
	rec := NewRecorder(store, &stubGate{verdict: true, delay: 10 * time.Millisecond},
		2, 10, perClickCredit, discardLogger(), newCountingMetrics())

	rec.Start(context.Background())
	defer rec.Close()

	rec.Dispatch(domain.Link{ID: 42, ShortCode: "abc1234"})

	require.Eventually(t, func() bool {
		return len(store.saved()) == 1
	}, time.Second, 10*time.Millisecond, "exactly one click should be persisted")

	click := store.saved()[0]
	assert.Equal(t, int64(42), click.LinkID)
	require.NotNil(t, click.FraudValid)
	assert.True(t, *click.FraudValid)
	assert.Equal(t, perClickCredit, click.CreditAwarded)
	assert.False(t, click.ClickedAt.IsZero())
}

func TestDispatchRecordsInvalidClickWithZeroCredit(t *testing.T) {
	store := &fakeClickStore{}
	rec := NewRecorder(store, &stubGate{verdict: false},
		1, 10, perClickCredit, discardLogger(), newCountingMetrics())

	rec.Start(context.Background())
	defer rec.Close()

	rec.Dispatch(domain.Link{ID: 7, ShortCode: "zzzzzz1"})

	require.Eventually(t, func() bool {
		return len(store.saved()) == 1
	}, time.Second, 10*time.Millisecond)

	click := store.saved()[0]
	require.NotNil(t, click.FraudValid)
	assert.False(t, *click.FraudValid)
	assert.Equal(t, domain.Credit(0), click.CreditAwarded)
}

func TestDispatchDoesNotBlockCaller(t *testing.T) {
	store := &fakeClickStore{}
	rec := NewRecorder(store, &stubGate{verdict: true, delay: 200 * time.Millisecond},
		1, 10, perClickCredit, discardLogger(), newCountingMetrics())

	rec.Start(context.Background())
	defer rec.Close()

	start := time.Now()
	rec.Dispatch(domain.Link{ID: 1, ShortCode: "abc1234"})
	assert.Less(t, time.Since(start), 50*time.Millisecond,
		"Dispatch must return without waiting for the fraud gate")
}

func TestDispatchDropsWhenQueueFull(t *testing.T) {
	store := &fakeClickStore{}
	metrics := newCountingMetrics()
	rec := NewRecorder(store, &stubGate{verdict: true},
		1, 1, perClickCredit, discardLogger(), metrics)
	// Not started: nothing consumes the queue, so the second dispatch drops.

	rec.Dispatch(domain.Link{ID: 1, ShortCode: "abc1234"})
	rec.Dispatch(domain.Link{ID: 2, ShortCode: "def5678"})

	assert.Equal(t, 1, metrics.count("clicks_dropped"))
}

func TestPersistFailureIsSwallowed(t *testing.T) {
	store := &fakeClickStore{err: errors.New("connection refused")}
	metrics := newCountingMetrics()
	rec := NewRecorder(store, &stubGate{verdict: true},
		1, 10, perClickCredit, discardLogger(), metrics)

	rec.Start(context.Background())

	rec.Dispatch(domain.Link{ID: 1, ShortCode: "abc1234"})

	require.Eventually(t, func() bool {
		return metrics.count("click_persist_failed") == 1
	}, time.Second, 10*time.Millisecond)

	rec.Close()
	assert.Empty(t, store.saved())
}

func TestCloseDrainsQueuedClicks(t *testing.T) {
	store := &fakeClickStore{}
	rec := NewRecorder(store, &stubGate{verdict: true},
		1, 10, perClickCredit, discardLogger(), newCountingMetrics())

	rec.Start(context.Background())
	for i := 0; i < 5; i++ {
		rec.Dispatch(domain.Link{ID: int64(i + 1), ShortCode: "code000"})
	}

	rec.Close()
	assert.Len(t, store.saved(), 5, "Close should drain queued clicks")
}
