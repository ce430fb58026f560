package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"shortlinks/internal/domain"
	"shortlinks/internal/repository"
	"shortlinks/internal/service"
	"shortlinks/internal/service/mocks"
	"shortlinks/internal/validation"
)

const maxAttempts = 10

func newService(t *testing.T) (*service.LinkService, *mocks.MockStore, *mocks.MockCodeGenerator, *mocks.MockBusinessRecorder) {
	store := mocks.NewMockStore(t)
	gen := mocks.NewMockCodeGenerator(t)
	recorder := mocks.NewMockBusinessRecorder(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := service.NewLinkService(store, gen, maxAttempts, logger, recorder)
	return svc, store, gen, recorder
}

// CreateShortLink tests

func TestCreateShortLink_NewTarget(t *testing.T) {
	svc, store, gen, recorder := newService(t)

	store.EXPECT().FindByTargetURL(mock.Anything, "https://example.com/a").Return(nil, pgx.ErrNoRows)
	gen.EXPECT().Generate().Return("abc1234", nil)
	store.EXPECT().FindByShortCode(mock.Anything, "abc1234").Return(nil, pgx.ErrNoRows)
	store.EXPECT().Save(mock.Anything, mock.MatchedBy(func(l *domain.Link) bool {
		return l.ShortCode == "abc1234" && l.TargetURL == "https://example.com/a" && !l.CreatedAt.IsZero()
	})).RunAndReturn(func(_ context.Context, l *domain.Link) (*domain.Link, error) {
		l.ID = 1
		return l, nil
	})
	recorder.EXPECT().RecordBusiness("links_created", float64(1), mock.Anything).Return()

	link, err := svc.CreateShortLink(context.Background(), "https://example.com/a")
	require.NoError(t, err)
	assert.Equal(t, int64(1), link.ID)
	assert.Equal(t, "abc1234", link.ShortCode)
	assert.Equal(t, "https://example.com/a", link.TargetURL)
}

func TestCreateShortLink_IdempotentForExistingTarget(t *testing.T) {
	svc, store, _, _ := newService(t)

	existing := &domain.Link{ID: 7, ShortCode: "abc1234", TargetURL: "https://example.com/a"}
	store.EXPECT().FindByTargetURL(mock.Anything, "https://example.com/a").Return(existing, nil)

	link, err := svc.CreateShortLink(context.Background(), "https://example.com/a")
	require.NoError(t, err)
	assert.Same(t, existing, link, "existing link must be returned unchanged, no new write")
}

func TestCreateShortLink_TrimsTargetURL(t *testing.T) {
	svc, store, _, _ := newService(t)

	existing := &domain.Link{ID: 7, ShortCode: "abc1234", TargetURL: "https://example.com/a"}
	store.EXPECT().FindByTargetURL(mock.Anything, "https://example.com/a").Return(existing, nil)

	link, err := svc.CreateShortLink(context.Background(), "  https://example.com/a \n")
	require.NoError(t, err)
	assert.Equal(t, "abc1234", link.ShortCode)
}

func TestCreateShortLink_BlankTarget(t *testing.T) {
	svc, _, _, _ := newService(t)

	for _, target := range []string{"", "   ", "\t\n"} {
		_, err := svc.CreateShortLink(context.Background(), target)
		assert.ErrorIs(t, err, validation.ErrTargetURLRequired)
	}
}

func TestCreateShortLink_RetriesOnCollision(t *testing.T) {
	svc, store, gen, recorder := newService(t)

	taken := &domain.Link{ID: 1, ShortCode: "taken00"}

	store.EXPECT().FindByTargetURL(mock.Anything, "https://example.com/b").Return(nil, pgx.ErrNoRows)
	gen.EXPECT().Generate().Return("taken00", nil).Once()
	store.EXPECT().FindByShortCode(mock.Anything, "taken00").Return(taken, nil).Once()
	gen.EXPECT().Generate().Return("fresh00", nil).Once()
	store.EXPECT().FindByShortCode(mock.Anything, "fresh00").Return(nil, pgx.ErrNoRows).Once()
	store.EXPECT().Save(mock.Anything, mock.Anything).RunAndReturn(func(_ context.Context, l *domain.Link) (*domain.Link, error) {
		l.ID = 2
		return l, nil
	})
	recorder.EXPECT().RecordBusiness("links_created", float64(1), mock.Anything).Return()

	link, err := svc.CreateShortLink(context.Background(), "https://example.com/b")
	require.NoError(t, err)
	assert.Equal(t, "fresh00", link.ShortCode)
}

func TestCreateShortLink_ExhaustsRetryBudget(t *testing.T) {
	svc, store, gen, recorder := newService(t)

	taken := &domain.Link{ID: 1, ShortCode: "taken00"}

	store.EXPECT().FindByTargetURL(mock.Anything, "https://example.com/c").Return(nil, pgx.ErrNoRows)
	gen.EXPECT().Generate().Return("taken00", nil).Times(maxAttempts)
	store.EXPECT().FindByShortCode(mock.Anything, "taken00").Return(taken, nil).Times(maxAttempts)
	recorder.EXPECT().RecordBusiness("code_space_exhausted", float64(1), mock.Anything).Return()

	_, err := svc.CreateShortLink(context.Background(), "https://example.com/c")
	assert.ErrorIs(t, err, service.ErrCodeSpaceExhausted)
}

func TestCreateShortLink_ConflictRecoversConcurrentCreate(t *testing.T) {
	svc, store, gen, _ := newService(t)

	winner := &domain.Link{ID: 9, ShortCode: "winner0", TargetURL: "https://example.com/race"}

	store.EXPECT().FindByTargetURL(mock.Anything, "https://example.com/race").Return(nil, pgx.ErrNoRows).Once()
	gen.EXPECT().Generate().Return("loser00", nil)
	store.EXPECT().FindByShortCode(mock.Anything, "loser00").Return(nil, pgx.ErrNoRows)
	store.EXPECT().Save(mock.Anything, mock.Anything).Return(nil, repository.ErrConflict)
	// Conflict re-read finds the concurrently created link.
	store.EXPECT().FindByTargetURL(mock.Anything, "https://example.com/race").Return(winner, nil).Once()

	link, err := svc.CreateShortLink(context.Background(), "https://example.com/race")
	require.NoError(t, err)
	assert.Same(t, winner, link)
}

func TestCreateShortLink_StoreError(t *testing.T) {
	svc, store, _, _ := newService(t)

	expectedErr := errors.New("connection refused")
	store.EXPECT().FindByTargetURL(mock.Anything, "https://example.com/a").Return(nil, expectedErr)

	_, err := svc.CreateShortLink(context.Background(), "https://example.com/a")
	require.Error(t, err)
	assert.ErrorIs(t, err, expectedErr)
}

// GetByShortCode tests

func TestGetByShortCode_Found(t *testing.T) {
	svc, store, _, _ := newService(t)

	link := &domain.Link{ID: 3, ShortCode: "abc1234", TargetURL: "https://example.com/a"}
	store.EXPECT().FindByShortCode(mock.Anything, "abc1234").Return(link, nil)

	got, err := svc.GetByShortCode(context.Background(), "abc1234")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/a", got.TargetURL)
}

func TestGetByShortCode_NotFound(t *testing.T) {
	svc, store, _, _ := newService(t)

	store.EXPECT().FindByShortCode(mock.Anything, "zzzzzzz").Return(nil, pgx.ErrNoRows)

	_, err := svc.GetByShortCode(context.Background(), "zzzzzzz")
	assert.ErrorIs(t, err, service.ErrLinkNotFound)
	assert.Contains(t, err.Error(), "zzzzzzz")
}

// GetStats tests

func TestGetStats_InvalidPageSpec(t *testing.T) {
	svc, _, _, _ := newService(t)

	_, err := svc.GetStats(context.Background(), 0, 0)
	assert.ErrorIs(t, err, validation.ErrPageSizeOutOfRange)

	_, err = svc.GetStats(context.Background(), 0, 101)
	assert.ErrorIs(t, err, validation.ErrPageSizeOutOfRange)

	_, err = svc.GetStats(context.Background(), -1, 10)
	assert.ErrorIs(t, err, validation.ErrNegativePageIndex)
}

func TestGetStats_EmptyStore(t *testing.T) {
	svc, store, _, _ := newService(t)

	store.EXPECT().CountLinks(mock.Anything).Return(int64(0), nil)
	store.EXPECT().FindAll(mock.Anything, 0, 10).Return(nil, nil)

	page, err := svc.GetStats(context.Background(), 0, 10)
	require.NoError(t, err)
	assert.Empty(t, page.Content)
	assert.Equal(t, int64(0), page.TotalElements)
	assert.Equal(t, 0, page.TotalPages)
}

func TestGetStats_AggregatesClicksAndEarnings(t *testing.T) {
	svc, store, _, _ := newService(t)

	link := domain.Link{ID: 1, ShortCode: "abc1234", TargetURL: "https://example.com/a"}
	valid, invalid := true, false
	jan := time.Date(2025, time.January, 15, 10, 0, 0, 0, time.UTC)
	feb := time.Date(2025, time.February, 2, 9, 30, 0, 0, time.UTC)

	store.EXPECT().CountLinks(mock.Anything).Return(int64(1), nil)
	store.EXPECT().FindAll(mock.Anything, 0, 10).Return([]domain.Link{link}, nil)
	store.EXPECT().CountClicksByLinkID(mock.Anything, int64(1)).Return(int64(3), nil)
	store.EXPECT().SumCreditByLinkID(mock.Anything, int64(1)).Return(domain.Credit(10), nil)
	store.EXPECT().FindClicksByLinkID(mock.Anything, int64(1)).Return([]domain.ClickEvent{
		{LinkID: 1, ClickedAt: feb, FraudValid: &valid, CreditAwarded: 5},
		{LinkID: 1, ClickedAt: jan, FraudValid: &valid, CreditAwarded: 5},
		{LinkID: 1, ClickedAt: jan, FraudValid: &invalid, CreditAwarded: 0},
	}, nil)

	page, err := svc.GetStats(context.Background(), 0, 10)
	require.NoError(t, err)
	require.Len(t, page.Content, 1)

	stats := page.Content[0]
	assert.Equal(t, "https://example.com/a", stats.URL)
	assert.Equal(t, int64(3), stats.TotalClicks)
	assert.Equal(t, domain.Credit(10), stats.TotalEarnings)

	require.Len(t, stats.MonthlyBreakdown, 2, "two calendar months")
	assert.Equal(t, "01/2025", stats.MonthlyBreakdown[0].Month)
	assert.Equal(t, domain.Credit(5), stats.MonthlyBreakdown[0].Earnings)
	assert.Equal(t, "02/2025", stats.MonthlyBreakdown[1].Month)
	assert.Equal(t, domain.Credit(5), stats.MonthlyBreakdown[1].Earnings)
}

func TestGetStats_LinkWithoutClicks(t *testing.T) {
	svc, store, _, _ := newService(t)

	link := domain.Link{ID: 2, ShortCode: "def5678", TargetURL: "https://example.com/b"}

	store.EXPECT().CountLinks(mock.Anything).Return(int64(1), nil)
	store.EXPECT().FindAll(mock.Anything, 0, 5).Return([]domain.Link{link}, nil)
	store.EXPECT().CountClicksByLinkID(mock.Anything, int64(2)).Return(int64(0), nil)
	store.EXPECT().SumCreditByLinkID(mock.Anything, int64(2)).Return(domain.Credit(0), nil)
	store.EXPECT().FindClicksByLinkID(mock.Anything, int64(2)).Return(nil, nil)

	page, err := svc.GetStats(context.Background(), 0, 5)
	require.NoError(t, err)
	require.Len(t, page.Content, 1)
	assert.Equal(t, int64(0), page.Content[0].TotalClicks)
	assert.Equal(t, domain.Credit(0), page.Content[0].TotalEarnings)
	assert.Empty(t, page.Content[0].MonthlyBreakdown)
}

func TestGetStats_PaginationMetadata(t *testing.T) {
	svc, store, _, _ := newService(t)

	store.EXPECT().CountLinks(mock.Anything).Return(int64(11), nil)
	store.EXPECT().FindAll(mock.Anything, 2, 5).Return(nil, nil)

	page, err := svc.GetStats(context.Background(), 2, 5)
	require.NoError(t, err)
	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 5, page.Size)
	assert.Equal(t, int64(11), page.TotalElements)
	assert.Equal(t, 3, page.TotalPages)
}
