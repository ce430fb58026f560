package cache

import (
	"github.com/dgraph-io/ristretto"

	"shortlinks/internal/domain"
)

// LinkCache is a read-through cache for the redirect path, keyed by short
// code. Links are immutable once created, so entries never go stale. It
// lives at the HTTP adapter; the core engine always reads the store.
type LinkCache struct {
	cache *ristretto.Cache
}

func New(maxSizePow2 int) (*LinkCache, error) {
	maxCost := max(1, int64(1)<<maxSizePow2)
	numCounters := max(1, maxCost/100) // ~100 bytes per entry estimate

	cache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: numCounters,
		MaxCost:     maxCost,
		BufferItems: 64,
		Metrics:     true,
	})
	if err != nil {
		return nil, err
	}
	return &LinkCache{cache: cache}, nil
}

func (c *LinkCache) Get(code string) (domain.Link, bool) {
	val, found := c.cache.Get(code)
	if !found {
		return domain.Link{}, false
	}
	return val.(domain.Link), true
}

func (c *LinkCache) Set(link domain.Link) {
	cost := int64(len(link.ShortCode) + len(link.TargetURL) + 24)
	c.cache.Set(link.ShortCode, link, cost)
}

// Wait blocks until buffered writes are applied. Tests only.
func (c *LinkCache) Wait() {
	c.cache.Wait()
}

func (c *LinkCache) Close() {
	c.cache.Close()
}

func (c *LinkCache) Stats() (hits, misses uint64, ratio float64) {
	metrics := c.cache.Metrics
	hits = metrics.Hits()
	misses = metrics.Misses()
	ratio = metrics.Ratio()
	return
}
