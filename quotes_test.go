package journal

import (
	"strings"
	"testing"
	"time"
)

// countingQuotes records how many times each symbol was asked.
type countingQuotes struct {
	prices StaticQuotes
	calls  int
}

func (c *countingQuotes) Quote(symbol string) (Money, error) {
	c.calls++
	return c.prices.Quote(symbol)
}

func TestStaticQuotes(t *testing.T) {
	quotes := StaticQuotes{"RELIANCE": INR(2400)}

	price, err := quotes.Quote("RELIANCE")
	if err != nil {
		t.Fatalf("Quote() returned an unexpected error: %v", err)
	}
	if !price.Equal(INR(2400)) {
		t.Errorf("Quote() = %v, want 2400 INR", price)
	}

	if _, err := quotes.Quote("UNKNOWN"); err == nil {
		t.Error("Quote() expected an error for an unknown symbol, got nil")
	}
}

func TestCachedQuotes_TTL(t *testing.T) {
	source := &countingQuotes{prices: StaticQuotes{"TCS": INR(3300)}}

	now := time.Date(2025, time.June, 1, 10, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }
	cached := NewCachedQuotes(source, 5*time.Minute).WithClock(clock)

	// Within the TTL a single underlying call serves every lookup.
	for range 3 {
		price, err := cached.Quote("TCS")
		if err != nil {
			t.Fatalf("Quote() returned an unexpected error: %v", err)
		}
		if !price.Equal(INR(3300)) {
			t.Errorf("Quote() = %v, want 3300 INR", price)
		}
	}
	if source.calls != 1 {
		t.Errorf("source was called %d times within the TTL, want 1", source.calls)
	}

	// Almost expired: still cached.
	now = now.Add(5*time.Minute - time.Second)
	if _, err := cached.Quote("TCS"); err != nil {
		t.Fatalf("Quote() returned an unexpected error: %v", err)
	}
	if source.calls != 1 {
		t.Errorf("source was called %d times just before expiry, want 1", source.calls)
	}

	// Expired: the next lookup refreshes.
	now = now.Add(2 * time.Second)
	if _, err := cached.Quote("TCS"); err != nil {
		t.Fatalf("Quote() returned an unexpected error: %v", err)
	}
	if source.calls != 2 {
		t.Errorf("source was called %d times after expiry, want 2", source.calls)
	}
}

func TestCachedQuotes_CachesErrors(t *testing.T) {
	source := &countingQuotes{prices: StaticQuotes{}}
	cached := NewCachedQuotes(source, time.Minute)

	for range 3 {
		if _, err := cached.Quote("MISSING"); err == nil {
			t.Fatal("Quote() expected an error, got nil")
		}
	}
	if source.calls != 1 {
		t.Errorf("source was called %d times for a cached miss, want 1", source.calls)
	}
}

func TestDecodeQuotes_PlainDocument(t *testing.T) {
	doc := `{"RELIANCE": 2400.5, "TCS": "3300,75"}`

	quotes, err := DecodeQuotes(strings.NewReader(doc), "", "INR")
	if err != nil {
		t.Fatalf("DecodeQuotes() returned an unexpected error: %v", err)
	}

	if price, _ := quotes.Quote("RELIANCE"); !price.Equal(INR(2400.5)) {
		t.Errorf("RELIANCE = %v, want 2400.5 INR", price)
	}
	// Vendors sometimes serve numbers as comma-decimal strings.
	if price, _ := quotes.Quote("TCS"); !price.Equal(INR(3300.75)) {
		t.Errorf("TCS = %v, want 3300.75 INR", price)
	}
}

func TestDecodeQuotes_WithPath(t *testing.T) {
	doc := `{"meta": {"asof": "2025-06-01"}, "data": {"quotes": {"INFY": 1500}}}`

	quotes, err := DecodeQuotes(strings.NewReader(doc), "$.data.quotes", "INR")
	if err != nil {
		t.Fatalf("DecodeQuotes() returned an unexpected error: %v", err)
	}

	if price, _ := quotes.Quote("INFY"); !price.Equal(INR(1500)) {
		t.Errorf("INFY = %v, want 1500 INR", price)
	}
}

func TestDecodeQuotes_Errors(t *testing.T) {
	testCases := []struct {
		name string
		doc  string
		path string
	}{
		{name: "not json", doc: `not json at all`},
		{name: "not an object", doc: `[1, 2, 3]`},
		{name: "non numeric price", doc: `{"RELIANCE": true}`},
		{name: "bad path", doc: `{"a": 1}`, path: `$.missing.quotes`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := DecodeQuotes(strings.NewReader(tc.doc), tc.path, "INR"); err == nil {
				t.Error("DecodeQuotes() expected an error, got nil")
			}
		})
	}
}
