package flexfolio

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// priceKey identifies one lookup: the valuator asks per symbol per model
// period, so identical (symbol, range) pairs recur across models.
type priceKey struct {
	symbol   string
	from, to Date
}

// CachedSource decorates a PriceSource with a bounded LRU cache. The cache is
// owned by whoever wires the source to the derivations; the derivations
// themselves only see the PriceSource interface. Failed lookups are not
// cached, so a transient provider error does not poison a key.
type CachedSource struct {
	src   PriceSource
	cache *lru.Cache[priceKey, *Series]
}

// NewCachedSource returns a source serving up to 'capacity' distinct
// (symbol, range) lookups from memory, evicting least-recently-used entries.
func NewCachedSource(src PriceSource, capacity int) (*CachedSource, error) {
	cache, err := lru.New[priceKey, *Series](capacity)
	if err != nil {
		return nil, err
	}
	return &CachedSource{src: src, cache: cache}, nil
}

// Prices implements PriceSource.
func (c *CachedSource) Prices(symbol string, from, to Date) (*Series, error) {
	key := priceKey{symbol: symbol, from: from, to: to}
	if prices, ok := c.cache.Get(key); ok {
		return prices, nil
	}
	prices, err := c.src.Prices(symbol, from, to)
	if err != nil {
		return nil, err
	}
	c.cache.Add(key, prices)
	return prices, nil
}

var _ PriceSource = (*CachedSource)(nil)
