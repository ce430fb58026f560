package clicks

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"shortlinks/internal/domain"
)

// ClickStore persists completed click events.
type ClickStore interface {
	SaveClick(ctx context.Context, click *domain.ClickEvent) (*domain.ClickEvent, error)
}

// FraudChecker decides whether a click is creditable.
type FraudChecker interface {
	Validate(ctx context.Context) bool
}

// BusinessRecorder counts domain events for observability.
type BusinessRecorder interface {
	RecordBusiness(name string, value float64, labels map[string]string)
}

// Recorder processes clicks off the request path. Dispatch enqueues without
// blocking; workers run the fraud gate (the dominant latency), fill in the
// verdict and credit, and persist the event as one write. The triggering
// request has already returned by then, so persistence failures are logged
// and counted but never propagated. A full queue drops the click.
type Recorder struct {
	store   ClickStore
	gate    FraudChecker
	logger  *slog.Logger
	metrics BusinessRecorder

	credit  domain.Credit
	workers int
	queue   chan domain.Link

	wg           sync.WaitGroup
	shutdownOnce sync.Once
	shutdownCh   chan struct{}
}

func NewRecorder(
	store ClickStore,
	gate FraudChecker,
	workers, queueSize int,
	credit domain.Credit,
	logger *slog.Logger,
	metrics BusinessRecorder,
) *Recorder {
	return &Recorder{
		store:      store,
		gate:       gate,
		logger:     logger,
		metrics:    metrics,
		credit:     credit,
		workers:    workers,
		queue:      make(chan domain.Link, queueSize),
		shutdownCh: make(chan struct{}),
	}
}

func (r *Recorder) Start(ctx context.Context) {
	r.wg.Add(r.workers)
	for i := 0; i < r.workers; i++ {
		go r.worker(ctx)
	}
	r.logger.Info("click recorder started",
		slog.Int("workers", r.workers),
		slog.Int("queue_size", cap(r.queue)))
}

// Close stops accepting new clicks and drains what is already queued.
func (r *Recorder) Close() {
	r.shutdownOnce.Do(func() {
		close(r.shutdownCh)
		r.wg.Wait()
	})
}

// Dispatch hands a click over for background processing and returns
// immediately. The caller receives no completion signal; the outcome is
// observable only through the store.
func (r *Recorder) Dispatch(link domain.Link) {
	select {
	case r.queue <- link:
	default:
		r.logger.Warn("click queue full, dropping click",
			slog.String("short_code", link.ShortCode))
		r.metrics.RecordBusiness("clicks_dropped", 1, map[string]string{
			"short_code": link.ShortCode,
		})
	}
}

func (r *Recorder) worker(ctx context.Context) {
	defer r.wg.Done()

	for {
		select {
		case <-r.shutdownCh:
			// Drain the queue before giving up the goroutine.
			for {
				select {
				case link := <-r.queue:
					r.process(ctx, link)
				default:
					return
				}
			}
		case link := <-r.queue:
			r.process(ctx, link)
		}
	}
}

func (r *Recorder) process(ctx context.Context, link domain.Link) {
	click := &domain.ClickEvent{
		LinkID:    link.ID,
		ClickedAt: time.Now(),
	}

	valid := r.gate.Validate(ctx)

	click.FraudValid = &valid
	if valid {
		click.CreditAwarded = r.credit
	}

	saveCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()

	if _, err := r.store.SaveClick(saveCtx, click); err != nil {
		r.logger.Error("failed to persist click event",
			slog.String("short_code", link.ShortCode),
			slog.String("error", err.Error()))
		r.metrics.RecordBusiness("click_persist_failed", 1, map[string]string{
			"short_code": link.ShortCode,
		})
		return
	}

	r.metrics.RecordBusiness("clicks_recorded", 1, map[string]string{
		"short_code":  link.ShortCode,
		"fraud_valid": boolLabel(valid),
	})
}

func boolLabel(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
