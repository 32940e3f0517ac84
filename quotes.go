package journal

import (
	"fmt"
	"sync"
	"time"
)

// DefaultQuoteTTL is how long a fetched price stays fresh by default.
const DefaultQuoteTTL = 5 * time.Minute

// QuoteProvider supplies the current market price for a security symbol.
//
// A zero price or an error both mean "no market value right now"; reports
// treat the holding as unvalued instead of failing.
type QuoteProvider interface {
	Quote(symbol string) (Money, error)
}

// StaticQuotes is a fixed symbol to price table. It is the provider used for
// price files and for deterministic tests.
type StaticQuotes map[string]Money

func (s StaticQuotes) Quote(symbol string) (Money, error) {
	price, ok := s[symbol]
	if !ok {
		return Money{}, fmt.Errorf("no quote for %q", symbol)
	}
	return price, nil
}

// CachedQuotes memoizes another provider's answers for a fixed TTL.
// It is safe for concurrent use.
type CachedQuotes struct {
	source QuoteProvider
	ttl    time.Duration
	now    func() time.Time

	mu    sync.Mutex
	cache map[string]cachedQuote
}

type cachedQuote struct {
	price   Money
	err     error
	fetched time.Time
}

// NewCachedQuotes wraps a provider with a TTL cache. A non-positive ttl
// falls back to DefaultQuoteTTL.
func NewCachedQuotes(source QuoteProvider, ttl time.Duration) *CachedQuotes {
	if ttl <= 0 {
		ttl = DefaultQuoteTTL
	}
	return &CachedQuotes{
		source: source,
		ttl:    ttl,
		now:    time.Now,
		cache:  make(map[string]cachedQuote),
	}
}

// WithClock replaces the cache's clock. Tests use it to control expiry.
func (c *CachedQuotes) WithClock(now func() time.Time) *CachedQuotes {
	c.now = now
	return c
}

func (c *CachedQuotes) Quote(symbol string) (Money, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if entry, ok := c.cache[symbol]; ok && c.now().Sub(entry.fetched) < c.ttl {
		return entry.price, entry.err
	}

	price, err := c.source.Quote(symbol)
	c.cache[symbol] = cachedQuote{price: price, err: err, fetched: c.now()}
	return price, err
}
