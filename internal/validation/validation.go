package validation

import (
	"errors"
	"strings"
)

var (
	ErrTargetURLRequired  = errors.New("targetUrl is required")
	ErrPageSizeOutOfRange = errors.New("page size must be between 1 and 100")
	ErrNegativePageIndex  = errors.New("page index must not be negative")
)

const (
	MinPageSize = 1
	MaxPageSize = 100
)

// TargetURL trims the raw target and rejects blank input. Any non-blank
// value is a legal shortening target; format screening is deliberately not
// done here, the create contract accepts opaque strings.
func TargetURL(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", ErrTargetURLRequired
	}
	return trimmed, nil
}

// PageSpec checks a zero-based page index and a page size in [1, 100].
func PageSpec(page, size int) error {
	if page < 0 {
		return ErrNegativePageIndex
	}
	if size < MinPageSize || size > MaxPageSize {
		return ErrPageSizeOutOfRange
	}
	return nil
}
