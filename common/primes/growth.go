package primes

import (
	"math"

	"github.com/pkg/errors"

	"github.com/eulerlab/numtheory/common"
)

// GrowthPolicy maps the largest validated prime to the bound the next growth
// round scans up to. Larger jumps mean fewer rounds but more primes found that
// the query may not need. A target that does not move past the validated
// bound is raised to the next odd candidate, so every round makes progress.
type GrowthPolicy func(largest int64) int64

// Doubling targets twice the largest validated prime.
func Doubling(largest int64) int64 {
	return scaled(largest, 2)
}

// Tripling targets three times the largest validated prime.
func Tripling(largest int64) int64 {
	return scaled(largest, 3)
}

// FixedIncrement targets a constant distance above the largest validated
// prime. Increments below 2 are treated as 2.
func FixedIncrement(k int64) GrowthPolicy {
	if k < 2 {
		k = 2
	}
	return func(largest int64) int64 {
		target, ok := common.AddChecked(largest, k)
		if !ok {
			return math.MaxInt64
		}
		return target
	}
}

func scaled(largest, factor int64) int64 {
	target, ok := common.MulChecked(largest, factor)
	if !ok {
		return math.MaxInt64
	}
	return target
}

// ensureAtLeast grows the cache until it holds at least n primes below the
// validated bound.
func (e *Engine) ensureAtLeast(n int) error {
	return e.grow(math.MaxInt64, func() bool {
		return e.cache.validatedCount() >= n
	})
}

// ensureUpTo grows the cache until the primality of every integer up to
// bound is settled.
func (e *Engine) ensureUpTo(bound int64) error {
	return e.grow(bound, func() bool {
		return e.cache.validatedBelow > bound
	})
}

// grow runs policy-sized scan rounds, never past limit, until done reports
// true. Completion is always judged on the cache itself, never on the target.
func (e *Engine) grow(limit int64, done func() bool) error {
	for !done() {
		c := e.cache
		if c.validatedBelow == math.MaxInt64 {
			return errors.Wrapf(ErrArithmeticOverflow, "prime cache cannot grow past %d", c.validatedBelow)
		}
		largest, err := c.largestValidated()
		if err != nil {
			return err
		}
		target := e.policy(largest)
		if target > limit {
			target = limit
		}
		if f := c.frontier(); target < f {
			target = f
		}
		e.logger.Debugf("growing prime cache: %d primes below %d, scanning to %d",
			c.validatedCount(), c.validatedBelow, target)
		e.scanTo(target)
	}
	return nil
}

// scanTo tests successive odd candidates from the frontier through target,
// raising the validated bound past each one. At least one candidate is
// always tested.
func (e *Engine) scanTo(target int64) {
	c := e.cache
	for {
		n := c.frontier()
		e.IsPrime(n)
		if n >= target || target-n < 2 || n == math.MaxInt64 {
			return
		}
	}
}
