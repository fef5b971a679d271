package cache

import (
	"fmt"
	"strings"

	"countrygdp/internal/domain"

	"github.com/dgraph-io/ristretto"
)

// RistrettoCountryCache keeps GetByName results keyed by lowercased name so
// that lookups stay case-insensitive.
type RistrettoCountryCache struct {
	cache *ristretto.Cache
}

func NewCountryCache(maxItems int64) (*RistrettoCountryCache, error) {
	c, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 10 * maxItems,
		MaxCost:     maxItems,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("create country cache failed: %w", err)
	}
	return &RistrettoCountryCache{cache: c}, nil
}

func (c *RistrettoCountryCache) Get(name string) (domain.Country, bool) {
	if v, ok := c.cache.Get(toKey(name)); ok {
		country, ok := v.(domain.Country)
		return country, ok
	}
	return domain.Country{}, false
}

func (c *RistrettoCountryCache) Set(country domain.Country) {
	c.cache.Set(toKey(country.Name), country, 1)
}

func (c *RistrettoCountryCache) Del(name string) {
	c.cache.Del(toKey(name))
}

// Clear drops every cached record, used after a refresh rewrites the table.
func (c *RistrettoCountryCache) Clear() {
	c.cache.Clear()
}

func (c *RistrettoCountryCache) Close() { c.cache.Close() }

func toKey(name string) string { return strings.ToLower(name) }
