package service

//go:generate go tool mockery

import (
	"context"

	"shortlinks/internal/domain"
)

// Store is the durable link store. Absent rows surface as pgx.ErrNoRows;
// uniqueness violations on Save as repository.ErrConflict.
type Store interface {
	FindByTargetURL(ctx context.Context, targetURL string) (*domain.Link, error)
	FindByShortCode(ctx context.Context, code string) (*domain.Link, error)
	Save(ctx context.Context, link *domain.Link) (*domain.Link, error)
	FindAll(ctx context.Context, page, size int) ([]domain.Link, error)
	CountLinks(ctx context.Context) (int64, error)
	CountClicksByLinkID(ctx context.Context, linkID int64) (int64, error)
	SumCreditByLinkID(ctx context.Context, linkID int64) (domain.Credit, error)
	FindClicksByLinkID(ctx context.Context, linkID int64) ([]domain.ClickEvent, error)
}

type CodeGenerator interface {
	Generate() (string, error)
}

type BusinessRecorder interface {
	RecordBusiness(name string, value float64, labels map[string]string)
}
