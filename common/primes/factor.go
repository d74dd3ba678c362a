package primes

import (
	"github.com/pkg/errors"

	"github.com/eulerlab/numtheory/common"
)

// Factors represents the prime factorization of a number
type Factors struct {
	of   int64
	all  []int64
	list []int64
	dict map[int64]int
}

func newFactors(of int64) *Factors {
	return &Factors{of: of, all: []int64{}, list: []int64{}, dict: map[int64]int{}}
}

// Factorize returns the prime factors of |n| in ascending order. Numbers
// below 2 have no factors.
//
// Trial division uses the cached primes first, then odd candidates past the
// validated bound. A candidate that divides what is left of n is prime,
// because every smaller factor has already been divided out; such primes are
// added to the cache.
func (e *Engine) Factorize(n int64) (*Factors, error) {
	abs, ok := common.Abs(n)
	if !ok {
		return nil, errors.Wrapf(ErrArithmeticOverflow, "cannot factorize %d", n)
	}
	f := newFactors(abs)
	if abs < 2 {
		return f, nil
	}

	rest, twos := common.ReduceToOdd(abs)
	for i := 0; i < twos; i++ {
		f.add(2)
	}

	known := e.cache.validated()
	for i := 1; i < len(known) && known[i] <= rest/known[i]; {
		if e.divides(known[i], rest) {
			rest /= known[i]
			f.add(known[i])
		} else {
			i++
		}
	}

	for d := e.cache.frontier(); d <= rest/d; {
		if e.divides(d, rest) {
			rest /= d
			f.add(d)
			e.enrich(d)
		} else {
			d += 2
		}
	}

	if rest > 1 {
		// no divisor up to its square root is left
		f.add(rest)
		e.enrich(rest)
	}
	return f, nil
}

// LargestPrimeFactor returns the largest prime dividing n.
func (e *Engine) LargestPrimeFactor(n int64) (int64, error) {
	f, err := e.Factorize(n)
	if err != nil {
		return 0, err
	}
	return f.Largest()
}

func (e *Engine) enrich(p int64) {
	if e.cache.add(p) {
		e.stats.Enriched++
		e.logger.Debugf("cached prime factor %d", p)
	}
	e.cache.settle(p)
}

func (f *Factors) add(factor int64) {
	f.all = append(f.all, factor)
	if _, seen := f.dict[factor]; !seen {
		f.list = append(f.list, factor)
	}
	f.dict[factor]++
}

// Of returns the absolute value of the factorized number.
func (f *Factors) Of() int64 {
	return f.of
}

// HasPowersOf returns the exponent of factor in the factorization.
func (f *Factors) HasPowersOf(factor int64) int {
	return f.dict[factor]
}

// List returns distict list of factors
func (f *Factors) List() []int64 {
	return f.list
}

// All returns all factors, repeated by multiplicity
func (f *Factors) All() []int64 {
	return f.all
}

// Powers returns dict formatted factors
func (f *Factors) Powers() map[int64]int {
	return f.dict
}

// Largest returns the largest prime factor.
func (f *Factors) Largest() (int64, error) {
	if len(f.all) == 0 {
		return 0, errors.Wrapf(ErrNoFactors, "%d has no prime factors", f.of)
	}
	return f.all[len(f.all)-1], nil
}

// Commons returns common factors of two numbers
func Commons(a, b *Factors) *Factors {
	dest := newFactors(1)
	for _, n := range a.List() {
		p := a.HasPowersOf(n)
		if bp := b.HasPowersOf(n); bp < p {
			p = bp
		}
		for i := 0; i < p; i++ {
			dest.add(n)
			dest.of *= n
		}
	}
	return dest
}
