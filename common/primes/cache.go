package primes

import (
	"math"
	"sort"

	"github.com/pkg/errors"
)

// cache holds every prime discovered so far.
//
// All primes below validatedBelow are present, so ordered[:validatedCount()]
// is the complete list of primes under the mark. Primes proven at or above
// the mark (by a direct IsPrime query or found as factors) are kept as well;
// they sit in ordered after the complete prefix, possibly with gaps between
// them.
type cache struct {
	known          map[int64]struct{}
	ordered        []int64
	validatedBelow int64
}

func newCache() *cache {
	c := &cache{
		known:   make(map[int64]struct{}, 64),
		ordered: make([]int64, 0, 64),
	}
	// 2 is the only even prime; callers special-case parity and then only
	// look at odd candidates.
	c.add(2)
	c.add(3)
	c.validatedBelow = 4
	return c
}

func (c *cache) contains(n int64) bool {
	_, ok := c.known[n]
	return ok
}

// largest returns the largest cached prime, including primes above the mark.
func (c *cache) largest() (int64, error) {
	if len(c.ordered) == 0 {
		return 0, errors.WithStack(ErrEmptyCache)
	}
	return c.ordered[len(c.ordered)-1], nil
}

// largestValidated returns the largest prime below the mark.
func (c *cache) largestValidated() (int64, error) {
	n := c.validatedCount()
	if n == 0 {
		return 0, errors.WithStack(ErrEmptyCache)
	}
	return c.ordered[n-1], nil
}

// add caches p, which the caller has proven prime. It reports whether p was new.
func (c *cache) add(p int64) bool {
	if c.contains(p) {
		return false
	}
	c.known[p] = struct{}{}
	if n := len(c.ordered); n == 0 || c.ordered[n-1] < p {
		c.ordered = append(c.ordered, p)
		return true
	}
	i := sort.Search(len(c.ordered), func(i int) bool { return c.ordered[i] > p })
	c.ordered = append(c.ordered, 0)
	copy(c.ordered[i+1:], c.ordered[i:])
	c.ordered[i] = p
	return true
}

func (c *cache) raiseValidatedBelow(bound int64) {
	if bound > c.validatedBelow {
		c.validatedBelow = bound
	}
}

// settle records that the primality of n is now known. The mark only moves
// when n is the first odd number not yet validated.
func (c *cache) settle(n int64) {
	if n != c.frontier() {
		return
	}
	if n == math.MaxInt64 {
		c.raiseValidatedBelow(math.MaxInt64)
		return
	}
	c.raiseValidatedBelow(n + 1)
}

// frontier is the smallest odd number whose primality is not yet validated.
func (c *cache) frontier() int64 {
	if c.validatedBelow&1 == 0 && c.validatedBelow < math.MaxInt64 {
		return c.validatedBelow + 1
	}
	return c.validatedBelow
}

// validatedCount is the number of cached primes below the mark.
func (c *cache) validatedCount() int {
	return sort.Search(len(c.ordered), func(i int) bool { return c.ordered[i] >= c.validatedBelow })
}

// validated returns the complete list of primes below the mark. Later inserts
// never touch the returned elements: every new prime is at least the mark.
func (c *cache) validated() []int64 {
	n := c.validatedCount()
	return c.ordered[:n:n]
}
