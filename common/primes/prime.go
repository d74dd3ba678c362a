package primes

import (
	"github.com/eulerlab/numtheory/common"
)

// IsPrime reports whether n is prime. It never fails: numbers below 2 and
// even numbers other than 2 are rejected without any division.
//
// Cached primes are tried first. If they run out before floor(sqrt(n)), the
// search goes on with odd candidates past the validated bound; those
// candidates are never cached, since finding no divisor among them says
// nothing about their own primality. A prime n is cached before returning.
func (e *Engine) IsPrime(n int64) bool {
	if n < 2 {
		return false
	}
	if n == 2 {
		return true
	}
	if common.IsEven(n) {
		return false
	}
	c := e.cache
	if c.contains(n) {
		e.stats.CacheHits++
		c.settle(n)
		return true
	}
	if n < c.validatedBelow {
		// settled earlier and not cached, so composite
		e.stats.CacheHits++
		return false
	}
	e.stats.CacheMisses++

	root := common.ISqrt(n)
	if e.hasOddDivisor(n, root) {
		c.settle(n)
		return false
	}
	c.add(n)
	c.settle(n)
	return true
}

// hasOddDivisor reports whether odd n has a divisor in [3, root].
func (e *Engine) hasOddDivisor(n, root int64) bool {
	known := e.cache.validated()
	for _, p := range known[1:] {
		if p > root {
			return false
		}
		if e.divides(p, n) {
			return true
		}
	}
	// Every integer below the frontier is settled, so the composites between
	// the last validated prime and the frontier need no division.
	for d := e.cache.frontier(); d <= root; d += 2 {
		if e.divides(d, n) {
			return true
		}
	}
	return false
}
