package primes

import (
	"math"
	"sort"

	"github.com/pkg/errors"

	"github.com/eulerlab/numtheory/common"
)

// NthPrime returns the nth prime, counting 2 as the first.
func (e *Engine) NthPrime(n int) (int64, error) {
	if n <= 0 {
		return 0, errors.Wrapf(ErrInvalidArgument, "nth prime index must be positive, got %d", n)
	}
	if err := e.ensureAtLeast(n); err != nil {
		return 0, errors.Wrapf(err, "nth prime %d", n)
	}
	return e.cache.ordered[n-1], nil
}

// PrimesUpTo returns the primes less than or equal to bound, in ascending
// order. The sequence is empty for bounds below 2.
func (e *Engine) PrimesUpTo(bound int64) (*Sequence, error) {
	if bound < 2 {
		return newSequence(nil), nil
	}
	if err := e.ensureUpTo(bound); err != nil {
		return nil, errors.Wrapf(err, "primes up to %d", bound)
	}
	known := e.cache.validated()
	end := sort.Search(len(known), func(i int) bool { return known[i] > bound })
	return newSequence(known[:end:end]), nil
}

// SumOfPrimesUpTo returns the sum of the primes less than or equal to bound.
func (e *Engine) SumOfPrimesUpTo(bound int64) (int64, error) {
	seq, err := e.PrimesUpTo(bound)
	if err != nil {
		return 0, err
	}
	var sum int64
	for p, ok := seq.Next(); ok; p, ok = seq.Next() {
		var fits bool
		if sum, fits = common.AddChecked(sum, p); !fits {
			return 0, errors.Wrapf(ErrArithmeticOverflow, "sum of primes up to %d", bound)
		}
	}
	return sum, nil
}

// PrimeCount returns the number of primes less than or equal to bound.
func (e *Engine) PrimeCount(bound int64) (int, error) {
	seq, err := e.PrimesUpTo(bound)
	if err != nil {
		return 0, err
	}
	return seq.Len(), nil
}

// NextPrime returns the smallest prime strictly greater than n.
func (e *Engine) NextPrime(n int64) (int64, error) {
	if n < 2 {
		return 2, nil
	}
	candidate, ok := common.AddChecked(n, 1)
	if !ok {
		return 0, errors.Wrapf(ErrArithmeticOverflow, "no prime above %d fits in int64", n)
	}
	if candidate < e.cache.validatedBelow {
		known := e.cache.validated()
		i := sort.Search(len(known), func(i int) bool { return known[i] > n })
		if i < len(known) {
			return known[i], nil
		}
	}
	if common.IsEven(candidate) {
		candidate++
	}
	for {
		if e.IsPrime(candidate) {
			return candidate, nil
		}
		if candidate > math.MaxInt64-2 {
			return 0, errors.Wrapf(ErrArithmeticOverflow, "no prime above %d fits in int64", n)
		}
		candidate += 2
	}
}
