package primes

import (
	"fmt"
)

// Engine answers prime queries from a cache of every prime found so far.
// The cache lives as long as the Engine and only ever grows, so repeated
// queries get cheaper.
//
// An Engine is not safe for concurrent use. The package-level functions
// share one Engine (Globally) behind a mutex.
type Engine struct {
	cache  *cache
	policy GrowthPolicy
	logger Logger
	stats  Stats
}

// Stats counts the work done by an Engine.
type Stats struct {
	Divisions   int64 // trial divisions performed
	CacheHits   int64 // IsPrime answers taken from the cache
	CacheMisses int64 // IsPrime answers that needed trial division
	Enriched    int64 // primes cached as a by-product of factorization
}

// New returns an Engine whose cache is seeded with 2 and 3.
func New(opts ...Option) *Engine {
	cfg := makeconfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return &Engine{
		cache:  newCache(),
		policy: cfg.policy,
		logger: cfg.logger,
	}
}

// Stats returns a copy of the work counters.
func (e *Engine) Stats() Stats {
	return e.stats
}

// Len is the number of cached primes.
func (e *Engine) Len() int {
	return len(e.cache.ordered)
}

// ValidatedBelow returns the high-water mark: every integer below it has had
// its primality settled and every prime below it is cached.
func (e *Engine) ValidatedBelow() int64 {
	return e.cache.validatedBelow
}

// Largest returns the largest cached prime.
func (e *Engine) Largest() (int64, error) {
	return e.cache.largest()
}

// Known returns a copy of every cached prime in ascending order.
func (e *Engine) Known() []int64 {
	res := make([]int64, len(e.cache.ordered))
	copy(res, e.cache.ordered)
	return res
}

func (e *Engine) divides(d, n int64) bool {
	e.stats.Divisions++
	return n%d == 0
}

func (s Stats) String() string {
	res := fmt.Sprintf("Divisions:     %d\n", s.Divisions)
	res += fmt.Sprintf("Cache Hits:    %d\n", s.CacheHits)
	res += fmt.Sprintf("Cache Misses:  %d\n", s.CacheMisses)
	res += fmt.Sprintf("Enriched:      %d", s.Enriched)
	return res
}
