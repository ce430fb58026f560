package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/jackc/pgx/v5"

	"shortlinks/internal/domain"
	"shortlinks/internal/repository"
	"shortlinks/internal/validation"
)

var (
	ErrLinkNotFound = errors.New("link not found")
	// ErrCodeSpaceExhausted means every generated candidate collided within
	// the retry budget. Operationally this implies the code space is
	// saturating and should page someone.
	ErrCodeSpaceExhausted = errors.New("short code space exhausted")
)

// LinkService implements idempotent link creation, short-code lookup, and
// paginated click/earnings aggregation over the durable store. It keeps no
// state of its own; every read and write round-trips through the store.
type LinkService struct {
	store       Store
	gen         CodeGenerator
	maxAttempts int
	logger      *slog.Logger
	recorder    BusinessRecorder
	nowFunc     func() time.Time
}

func NewLinkService(
	store Store,
	gen CodeGenerator,
	maxAttempts int,
	logger *slog.Logger,
	recorder BusinessRecorder,
) *LinkService {
	return &LinkService{
		store:       store,
		gen:         gen,
		maxAttempts: maxAttempts,
		logger:      logger,
		recorder:    recorder,
		nowFunc:     time.Now,
	}
}

// CreateShortLink returns the link for targetURL, creating it on first use.
// Repeat calls with the same target return the existing link unchanged.
func (s *LinkService) CreateShortLink(ctx context.Context, targetURL string) (*domain.Link, error) {
	target, err := validation.TargetURL(targetURL)
	if err != nil {
		return nil, err
	}

	existing, err := s.store.FindByTargetURL(ctx, target)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("failed to look up target url: %w", err)
	}

	for attempt := 0; attempt < s.maxAttempts; attempt++ {
		code, err := s.gen.Generate()
		if err != nil {
			return nil, fmt.Errorf("failed to generate short code: %w", err)
		}

		if _, err := s.store.FindByShortCode(ctx, code); err == nil {
			continue // collision, draw again
		} else if !errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("failed to check short code: %w", err)
		}

		link := &domain.Link{
			ShortCode: code,
			TargetURL: target,
			CreatedAt: s.nowFunc(),
		}

		saved, err := s.store.Save(ctx, link)
		if err == nil {
			s.recorder.RecordBusiness("links_created", 1, map[string]string{
				"short_code": saved.ShortCode,
			})
			return saved, nil
		}
		if errors.Is(err, repository.ErrConflict) {
			// A concurrent request may have created the same target between
			// the existence check and this write; re-read and return the
			// winner. Otherwise the conflict is a code collision: retry.
			if winner, lookupErr := s.store.FindByTargetURL(ctx, target); lookupErr == nil {
				return winner, nil
			}
			continue
		}
		return nil, fmt.Errorf("failed to save link: %w", err)
	}

	s.logger.Error("short code generation exhausted retry budget",
		slog.Int("attempts", s.maxAttempts))
	s.recorder.RecordBusiness("code_space_exhausted", 1, nil)
	return nil, ErrCodeSpaceExhausted
}

// GetByShortCode looks a link up by exact short-code match.
func (s *LinkService) GetByShortCode(ctx context.Context, code string) (*domain.Link, error) {
	link, err := s.store.FindByShortCode(ctx, code)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", ErrLinkNotFound, code)
		}
		return nil, fmt.Errorf("failed to find link: %w", err)
	}
	return link, nil
}

// GetStats returns one page of per-link click and earnings stats, with
// earnings additionally bucketed by the calendar month of each click.
func (s *LinkService) GetStats(ctx context.Context, page, size int) (*domain.StatsPage, error) {
	if err := validation.PageSpec(page, size); err != nil {
		return nil, err
	}

	total, err := s.store.CountLinks(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count links: %w", err)
	}

	links, err := s.store.FindAll(ctx, page, size)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch links page: %w", err)
	}

	stats := make([]domain.LinkStats, 0, len(links))
	for _, link := range links {
		row, err := s.linkStats(ctx, link)
		if err != nil {
			return nil, err
		}
		stats = append(stats, row)
	}

	return &domain.StatsPage{
		Content:       stats,
		Page:          page,
		Size:          size,
		TotalElements: total,
		TotalPages:    int((total + int64(size) - 1) / int64(size)),
	}, nil
}

func (s *LinkService) linkStats(ctx context.Context, link domain.Link) (domain.LinkStats, error) {
	totalClicks, err := s.store.CountClicksByLinkID(ctx, link.ID)
	if err != nil {
		return domain.LinkStats{}, fmt.Errorf("failed to count clicks for link %d: %w", link.ID, err)
	}

	totalEarnings, err := s.store.SumCreditByLinkID(ctx, link.ID)
	if err != nil {
		return domain.LinkStats{}, fmt.Errorf("failed to sum credit for link %d: %w", link.ID, err)
	}

	clicks, err := s.store.FindClicksByLinkID(ctx, link.ID)
	if err != nil {
		return domain.LinkStats{}, fmt.Errorf("failed to fetch clicks for link %d: %w", link.ID, err)
	}

	return domain.LinkStats{
		URL:              link.TargetURL,
		TotalClicks:      totalClicks,
		TotalEarnings:    totalEarnings,
		MonthlyBreakdown: monthlyBreakdown(clicks),
	}, nil
}

// monthlyBreakdown sums credit per calendar year-month, ascending. Buckets
// key on "2006-01" so lexical order is calendar order; the wire format is
// MM/yyyy.
func monthlyBreakdown(clicks []domain.ClickEvent) []domain.MonthlyBreakdown {
	buckets := make(map[string]domain.Credit)
	for _, click := range clicks {
		key := click.ClickedAt.Format("2006-01")
		buckets[key] += click.CreditAwarded
	}

	keys := make([]string, 0, len(buckets))
	for key := range buckets {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	breakdown := make([]domain.MonthlyBreakdown, 0, len(keys))
	for _, key := range keys {
		breakdown = append(breakdown, domain.MonthlyBreakdown{
			Month:    key[5:] + "/" + key[:4],
			Earnings: buckets[key],
		})
	}
	return breakdown
}
