package market

import (
	"sync"
	"time"

	"github.com/niveshfolio/portfolio-backend/internal/model"
)

// DefaultCacheTTL is how long an assembled price map stays fresh. Quotes for
// a personal dashboard do not need sub-minute resolution, and a short TTL
// keeps repeated dashboard loads from hammering the upstream API.
const DefaultCacheTTL = 60 * time.Second

// priceCache is a small TTL cache for assembled price maps, keyed by the
// canonical symbol list of a request. Entries are returned as-is; callers
// must not mutate a cached map.
type priceCache struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]cachedMap
	now     func() time.Time
}

type cachedMap struct {
	prices   model.PriceMap
	storedAt time.Time
}

func newPriceCache(ttl time.Duration) *priceCache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &priceCache{
		ttl:     ttl,
		entries: make(map[string]cachedMap),
		now:     time.Now,
	}
}

// get returns the cached price map for a key if it is still within the TTL.
func (c *priceCache) get(key string) (model.PriceMap, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.now().Sub(entry.storedAt) > c.ttl {
		delete(c.entries, key)
		return nil, false
	}
	return entry.prices, true
}

// put stores a price map under a key, stamping it with the current time.
func (c *priceCache) put(key string, prices model.PriceMap) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = cachedMap{prices: prices, storedAt: c.now()}
}
