// Package symbols owns the tradable-symbol universe used for the
// add-transaction type-ahead.
package symbols

import (
	"context"
	"strings"
	"sync"
)

// UniverseProvider lists every base symbol tradable against USDT.
type UniverseProvider interface {
	TradableSymbols(ctx context.Context) ([]string, error)
}

// Cache holds the universe between explicit refreshes. Reads are safe from
// any goroutine; writes only happen when the add-transaction form opens.
type Cache struct {
	provider UniverseProvider

	mu      sync.RWMutex
	symbols []string
}

func NewCache(provider UniverseProvider) *Cache {
	return &Cache{provider: provider}
}

// Refresh replaces the cached universe. On error the previous universe is
// kept so suggestions keep working from stale data.
func (c *Cache) Refresh(ctx context.Context) error {
	symbols, err := c.provider.TradableSymbols(ctx)
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.symbols = symbols
	c.mu.Unlock()
	return nil
}

// Suggest returns every cached symbol containing q, case-insensitively.
// An empty query yields no suggestions.
func (c *Cache) Suggest(q string) []string {
	if q == "" {
		return nil
	}
	q = strings.ToLower(q)

	c.mu.RLock()
	defer c.mu.RUnlock()

	var matches []string
	for _, s := range c.symbols {
		if strings.Contains(strings.ToLower(s), q) {
			matches = append(matches, s)
		}
	}
	return matches
}

// All returns a copy of the cached universe.
func (c *Cache) All() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]string, len(c.symbols))
	copy(out, c.symbols)
	return out
}
