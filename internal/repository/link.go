package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"shortlinks/internal/config"
	"shortlinks/internal/domain"
)

// ErrConflict reports a store uniqueness violation on short_code or
// target_url. The service layer decides whether it means a code collision
// or a concurrent create for the same target.
var ErrConflict = errors.New("uniqueness conflict")

const uniqueViolationCode = "23505"

const schema = `
CREATE TABLE IF NOT EXISTS links (
	id          BIGSERIAL PRIMARY KEY,
	short_code  TEXT NOT NULL,
	target_url  TEXT NOT NULL,
	created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
	CONSTRAINT links_short_code_key UNIQUE (short_code),
	CONSTRAINT links_target_url_key UNIQUE (target_url)
);

CREATE TABLE IF NOT EXISTS click_events (
	id              BIGSERIAL PRIMARY KEY,
	link_id         BIGINT NOT NULL REFERENCES links (id),
	clicked_at      TIMESTAMPTZ NOT NULL,
	fraud_valid     BOOLEAN,
	credit_awarded  BIGINT NOT NULL DEFAULT 0 CHECK (credit_awarded >= 0)
);
CREATE INDEX IF NOT EXISTS idx_click_events_link_id ON click_events (link_id);
CREATE INDEX IF NOT EXISTS idx_click_events_clicked_at ON click_events (clicked_at);

CREATE TABLE IF NOT EXISTS http_metrics (
	time         TIMESTAMPTZ NOT NULL,
	method       TEXT NOT NULL,
	path         TEXT NOT NULL,
	status_code  INT NOT NULL,
	duration_ms  DOUBLE PRECISION NOT NULL,
	client_ip    TEXT NOT NULL,
	error        TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS business_metrics (
	time         TIMESTAMPTZ NOT NULL,
	metric_name  TEXT NOT NULL,
	value        DOUBLE PRECISION NOT NULL,
	labels       JSONB
);
`

// LinkRepository is the durable store for links and click events. Credit
// columns hold hundredths as BIGINT; domain.Credit maps them exactly.
type LinkRepository struct {
	pool *pgxpool.Pool
}

func NewLinkRepository(ctx context.Context, cfg *config.DatabaseConfig) (*LinkRepository, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode,
	)

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if _, err := pool.Exec(ctx, schema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &LinkRepository{pool: pool}, nil
}

func (r *LinkRepository) Pool() *pgxpool.Pool {
	return r.pool
}

func (r *LinkRepository) Close() {
	r.pool.Close()
}

func (r *LinkRepository) FindByTargetURL(ctx context.Context, targetURL string) (*domain.Link, error) {
	return r.findLink(ctx,
		`SELECT id, short_code, target_url, created_at FROM links WHERE target_url = $1`,
		targetURL)
}

func (r *LinkRepository) FindByShortCode(ctx context.Context, code string) (*domain.Link, error) {
	return r.findLink(ctx,
		`SELECT id, short_code, target_url, created_at FROM links WHERE short_code = $1`,
		code)
}

func (r *LinkRepository) findLink(ctx context.Context, query, arg string) (*domain.Link, error) {
	var link domain.Link
	err := r.pool.QueryRow(ctx, query, arg).
		Scan(&link.ID, &link.ShortCode, &link.TargetURL, &link.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &link, nil
}

// Save inserts a new link as one atomic write and returns it with the
// store-assigned id. Uniqueness violations surface as ErrConflict.
func (r *LinkRepository) Save(ctx context.Context, link *domain.Link) (*domain.Link, error) {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO links (short_code, target_url, created_at) VALUES ($1, $2, $3) RETURNING id`,
		link.ShortCode, link.TargetURL, link.CreatedAt,
	).Scan(&link.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("insert link %q: %w", link.ShortCode, ErrConflict)
		}
		return nil, fmt.Errorf("insert link: %w", err)
	}
	return link, nil
}

// FindAll returns one zero-based page of links in stable id order.
func (r *LinkRepository) FindAll(ctx context.Context, page, size int) ([]domain.Link, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, short_code, target_url, created_at FROM links ORDER BY id LIMIT $1 OFFSET $2`,
		size, page*size)
	if err != nil {
		return nil, fmt.Errorf("select links page: %w", err)
	}
	defer rows.Close()

	var links []domain.Link
	for rows.Next() {
		var link domain.Link
		if err := rows.Scan(&link.ID, &link.ShortCode, &link.TargetURL, &link.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan link row: %w", err)
		}
		links = append(links, link)
	}
	return links, rows.Err()
}

func (r *LinkRepository) CountLinks(ctx context.Context) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM links`).Scan(&count)
	return count, err
}

func (r *LinkRepository) CountClicksByLinkID(ctx context.Context, linkID int64) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM click_events WHERE link_id = $1`, linkID).Scan(&count)
	return count, err
}

func (r *LinkRepository) SumCreditByLinkID(ctx context.Context, linkID int64) (domain.Credit, error) {
	var sum int64
	err := r.pool.QueryRow(ctx,
		`SELECT COALESCE(SUM(credit_awarded), 0) FROM click_events WHERE link_id = $1`,
		linkID).Scan(&sum)
	return domain.Credit(sum), err
}

func (r *LinkRepository) FindClicksByLinkID(ctx context.Context, linkID int64) ([]domain.ClickEvent, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, link_id, clicked_at, fraud_valid, credit_awarded
		 FROM click_events WHERE link_id = $1 ORDER BY clicked_at`,
		linkID)
	if err != nil {
		return nil, fmt.Errorf("select clicks: %w", err)
	}
	defer rows.Close()

	var clicks []domain.ClickEvent
	for rows.Next() {
		var (
			click  domain.ClickEvent
			credit int64
		)
		if err := rows.Scan(&click.ID, &click.LinkID, &click.ClickedAt, &click.FraudValid, &credit); err != nil {
			return nil, fmt.Errorf("scan click row: %w", err)
		}
		click.CreditAwarded = domain.Credit(credit)
		clicks = append(clicks, click)
	}
	return clicks, rows.Err()
}

// SaveClick persists a fully populated click event as one atomic write.
func (r *LinkRepository) SaveClick(ctx context.Context, click *domain.ClickEvent) (*domain.ClickEvent, error) {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO click_events (link_id, clicked_at, fraud_valid, credit_awarded)
		 VALUES ($1, $2, $3, $4) RETURNING id`,
		click.LinkID, click.ClickedAt, click.FraudValid, int64(click.CreditAwarded),
	).Scan(&click.ID)
	if err != nil {
		return nil, fmt.Errorf("insert click event: %w", err)
	}
	return click, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

// NotFound reports whether err means the row does not exist.
func NotFound(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
