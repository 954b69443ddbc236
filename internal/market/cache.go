package market

import (
	"context"
	"strings"
	"time"

	"github.com/meur/crafthub/internal/models"
	"github.com/patrickmn/go-cache"
)

// DefaultCacheTTL is how long fetched quotes are reused
const DefaultCacheTTL = 60 * time.Second

// Cache is a transient, time-boxed quote cache in front of a PriceSource.
// Only successful fetches are stored. Concurrent misses for the same key are
// not de-duplicated.
type Cache struct {
	source PriceSource
	store  *cache.Cache
}

// NewCache wraps source with a cache holding results for ttl
func NewCache(source PriceSource, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &Cache{
		source: source,
		store:  cache.New(ttl, 2*ttl),
	}
}

func cacheKey(region string, itemIDs, locations []string) string {
	return region + "|" + strings.Join(itemIDs, ",") + "|" + strings.Join(locations, ",")
}

// FetchPrices returns cached quotes or fetches them from the source
func (c *Cache) FetchPrices(ctx context.Context, region string, itemIDs, locations []string) ([]models.PriceQuote, error) {
	key := cacheKey(region, itemIDs, locations)
	if v, ok := c.store.Get(key); ok {
		return v.([]models.PriceQuote), nil
	}

	quotes, err := c.source.FetchPrices(ctx, region, itemIDs, locations)
	if err != nil {
		return nil, err
	}
	c.store.SetDefault(key, quotes)
	return quotes, nil
}
