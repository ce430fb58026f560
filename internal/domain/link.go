package domain

import "time"

// Link maps a unique short code to a unique target URL. Both columns are
// immutable once assigned; uniqueness is enforced by the store.
type Link struct {
	ID        int64
	ShortCode string
	TargetURL string
	CreatedAt time.Time
}

// ClickEvent records one click against a link. FraudValid is nil only
// transiently, before the fraud gate has responded; a persisted event always
// carries a verdict. CreditAwarded is non-zero only when FraudValid is true.
type ClickEvent struct {
	ID            int64
	LinkID        int64
	ClickedAt     time.Time
	FraudValid    *bool
	CreditAwarded Credit
}

type CreateLinkRequest struct {
	TargetURL string `json:"targetUrl"`
}

type CreateLinkResponse struct {
	ShortURL  string `json:"shortUrl"`
	TargetURL string `json:"targetUrl"`
}

// LinkStats is the per-link analytics row returned by the stats endpoint.
type LinkStats struct {
	URL              string             `json:"url"`
	TotalClicks      int64              `json:"totalClicks"`
	TotalEarnings    Credit             `json:"totalEarnings"`
	MonthlyBreakdown []MonthlyBreakdown `json:"monthlyBreakdown"`
}

// MonthlyBreakdown holds earnings for one calendar month, rendered MM/yyyy.
type MonthlyBreakdown struct {
	Month    string `json:"month"`
	Earnings Credit `json:"earnings"`
}

// StatsPage wraps one page of link stats with pagination metadata.
type StatsPage struct {
	Content       []LinkStats `json:"content"`
	Page          int         `json:"page"`
	Size          int         `json:"size"`
	TotalElements int64       `json:"totalElements"`
	TotalPages    int         `json:"totalPages"`
}
