package folio

import (
	"fmt"
	"time"

	"github.com/hmckay/folio/date"
	gocache "github.com/patrickmn/go-cache"
)

// Cache lifetimes per kind of market data. Live quotes go stale in minutes,
// a closed day's history never changes, reference rates move daily.
const (
	LiveQuoteTTL  = 5 * time.Minute
	HistoricalTTL = 1 * time.Hour
	ReferenceTTL  = 24 * time.Hour
)

// Quoter provides market data. Lookups that can legitimately miss (unknown
// ticker, market closed since inception) return false rather than an error;
// transport failures inside a provider degrade to a miss so valuation keeps
// going with what it has.
type Quoter interface {
	// LivePrice returns the latest traded price for ticker.
	LivePrice(ticker string) (float64, bool)
	// HistoricalPrice returns the close on the given day, falling back to
	// the nearest earlier close within a week.
	HistoricalPrice(ticker string, on date.Date) (float64, bool)
	// ForexRate returns the from->to conversion rate, never zero.
	ForexRate(from, to string) float64
	// Series returns daily closes over the range.
	Series(ticker string, from, to date.Date) (date.History[float64], error)
}

// MemoQuoter memoizes another Quoter with per-kind expirations, so a history
// rebuild touching the same ticker hundreds of times costs one fetch.
type MemoQuoter struct {
	src   Quoter
	cache *gocache.Cache
}

// NewMemoQuoter wraps src with an in-memory TTL cache.
func NewMemoQuoter(src Quoter) *MemoQuoter {
	return &MemoQuoter{
		src:   src,
		cache: gocache.New(LiveQuoteTTL, 10*time.Minute),
	}
}

type quoteHit struct {
	price float64
	ok    bool
}

func (m *MemoQuoter) LivePrice(ticker string) (float64, bool) {
	key := "live:" + ticker
	if v, ok := m.cache.Get(key); ok {
		hit := v.(quoteHit)
		return hit.price, hit.ok
	}
	price, ok := m.src.LivePrice(ticker)
	m.cache.Set(key, quoteHit{price, ok}, LiveQuoteTTL)
	return price, ok
}

func (m *MemoQuoter) HistoricalPrice(ticker string, on date.Date) (float64, bool) {
	key := fmt.Sprintf("hist:%s:%v", ticker, on)
	if v, ok := m.cache.Get(key); ok {
		hit := v.(quoteHit)
		return hit.price, hit.ok
	}
	price, ok := m.src.HistoricalPrice(ticker, on)
	m.cache.Set(key, quoteHit{price, ok}, HistoricalTTL)
	return price, ok
}

func (m *MemoQuoter) ForexRate(from, to string) float64 {
	key := fmt.Sprintf("fx:%s:%s", from, to)
	if v, ok := m.cache.Get(key); ok {
		return v.(float64)
	}
	rate := m.src.ForexRate(from, to)
	m.cache.Set(key, rate, ReferenceTTL)
	return rate
}

func (m *MemoQuoter) Series(ticker string, from, to date.Date) (date.History[float64], error) {
	key := fmt.Sprintf("series:%s:%v:%v", ticker, from, to)
	if v, ok := m.cache.Get(key); ok {
		return v.(date.History[float64]), nil
	}
	series, err := m.src.Series(ticker, from, to)
	if err != nil {
		return series, err
	}
	m.cache.Set(key, series, HistoricalTTL)
	return series, nil
}
