package utility

import (
	"fmt"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/time/rate"
)

// DefaultRateLimitEntries bounds how many client IPs are tracked at once.
const DefaultRateLimitEntries = 4096

// IPRateLimitStore keeps one token bucket per client IP. The least recently
// seen IPs are evicted once the table is full.
type IPRateLimitStore struct {
	mu       sync.Mutex
	limiters *lru.Cache[string, *rate.Limiter]
	limit    rate.Limit
	burst    int
}

// NewIPRateLimitStore allows perMinute requests per IP per minute, with a
// burst of the same size.
func NewIPRateLimitStore(perMinute, entries int) (*IPRateLimitStore, error) {
	if perMinute <= 0 {
		return nil, fmt.Errorf("rate limit must be positive, got %d", perMinute)
	}
	if entries <= 0 {
		entries = DefaultRateLimitEntries
	}

	cache, err := lru.New[string, *rate.Limiter](entries)
	if err != nil {
		return nil, fmt.Errorf("failed to create limiter cache: %w", err)
	}

	return &IPRateLimitStore{
		limiters: cache,
		limit:    rate.Every(time.Minute / time.Duration(perMinute)),
		burst:    perMinute,
	}, nil
}

// Allow consumes one token for identifier.
func (s *IPRateLimitStore) Allow(identifier string) (bool, error) {
	s.mu.Lock()
	limiter, ok := s.limiters.Get(identifier)
	if !ok {
		limiter = rate.NewLimiter(s.limit, s.burst)
		s.limiters.Add(identifier, limiter)
	}
	s.mu.Unlock()

	return limiter.Allow(), nil
}

// Len reports how many identifiers are currently tracked.
func (s *IPRateLimitStore) Len() int {
	return s.limiters.Len()
}
