package handler

//go:generate go tool mockery

import (
	"context"

	"shortlinks/internal/domain"
)

type LinkService interface {
	CreateShortLink(ctx context.Context, targetURL string) (*domain.Link, error)
	GetByShortCode(ctx context.Context, code string) (*domain.Link, error)
	GetStats(ctx context.Context, page, size int) (*domain.StatsPage, error)
}

// ClickDispatcher hands a click over for background processing; the redirect
// response never waits on it.
type ClickDispatcher interface {
	Dispatch(link domain.Link)
}

type BusinessRecorder interface {
	RecordBusiness(name string, value float64, labels map[string]string)
}
