package leftovers

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/dgraph-io/ristretto"
	"github.com/korjavin/pantrychef/pkg/models"
)

const (
	cacheNumCounters = 10_000
	cacheMaxCost     = 1 << 24
	cacheBufferItems = 64

	// DefaultCacheTTL bounds how stale a cached response can get when a
	// recipe is added without the pantry changing.
	DefaultCacheTTL = 5 * time.Minute
)

// Cache holds recently computed suggestion responses so repeated
// /suggest calls against an unchanged pantry are served without a
// full engine pass.
type Cache struct {
	cache *ristretto.Cache
	ttl   time.Duration
}

// NewCache creates a suggestion response cache. A zero ttl selects the
// default.
func NewCache(ttl time.Duration) (*Cache, error) {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}

	cache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: cacheNumCounters,
		MaxCost:     cacheMaxCost,
		BufferItems: cacheBufferItems,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create suggestion cache: %w", err)
	}

	return &Cache{cache: cache, ttl: ttl}, nil
}

// Key derives the cache key for one request: the chat, the pantry's
// last-updated stamp, and the exact filters.
func (c *Cache) Key(chatID int64, pantryUpdated time.Time, filters models.SuggestionFilters) string {
	filtersJSON, err := json.Marshal(filters)
	if err != nil {
		filtersJSON = []byte("{}")
	}
	return fmt.Sprintf("suggest:%d:%d:%s", chatID, pantryUpdated.UnixNano(), filtersJSON)
}

// Get returns a cached response, or nil when the key is absent
func (c *Cache) Get(key string) *models.SuggestionsResponse {
	value, found := c.cache.Get(key)
	if !found {
		return nil
	}
	resp, ok := value.(*models.SuggestionsResponse)
	if !ok {
		return nil
	}
	return resp
}

// Set stores a response under the key for the cache TTL. Admission is
// best effort; ristretto may decline the entry.
func (c *Cache) Set(key string, resp *models.SuggestionsResponse) {
	c.cache.SetWithTTL(key, resp, 1, c.ttl)
}

// Close releases the cache's internal goroutines
func (c *Cache) Close() {
	c.cache.Close()
}
