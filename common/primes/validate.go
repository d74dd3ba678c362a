package primes

import (
	"fmt"
	"math/big"

	"github.com/hashicorp/go-multierror"
)

// ProbablyPrime is exact for inputs below 2⁶⁴, so it serves as an independent
// check of the cache contents.
const primeTestN = 20

// Validate checks every cache invariant and returns all violations found, or
// nil. The gap check tests every odd number below the validated bound, so
// the cost grows with the bound; it is meant for tests and debugging.
func (e *Engine) Validate() error {
	var result *multierror.Error
	c := e.cache

	if len(c.known) != len(c.ordered) {
		result = multierror.Append(result, fmt.Errorf("set holds %d primes, list holds %d", len(c.known), len(c.ordered)))
	}
	for i, p := range c.ordered {
		if !c.contains(p) {
			result = multierror.Append(result, fmt.Errorf("%d is listed but not in the set", p))
		}
		if i > 0 && c.ordered[i-1] >= p {
			result = multierror.Append(result, fmt.Errorf("list not strictly ascending at index %d (%d, %d)", i, c.ordered[i-1], p))
		}
		if !big.NewInt(p).ProbablyPrime(primeTestN) {
			result = multierror.Append(result, fmt.Errorf("%d is cached but not prime", p))
		}
	}
	if !c.contains(2) || !c.contains(3) {
		result = multierror.Append(result, fmt.Errorf("seed primes 2 and 3 missing"))
	}
	if c.validatedBelow < 4 {
		result = multierror.Append(result, fmt.Errorf("validated bound %d below the seed bound 4", c.validatedBelow))
	}
	for n := int64(5); n < c.validatedBelow; n += 2 {
		if !c.contains(n) && big.NewInt(n).ProbablyPrime(primeTestN) {
			result = multierror.Append(result, fmt.Errorf("prime %d below the validated bound %d is not cached", n, c.validatedBelow))
		}
	}
	return result.ErrorOrNil()
}
