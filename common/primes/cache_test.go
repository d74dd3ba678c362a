package primes

import (
	"math"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache_Seed(t *testing.T) {
	c := newCache()
	assert.Equal(t, []int64{2, 3}, c.ordered)
	assert.True(t, c.contains(2))
	assert.True(t, c.contains(3))
	assert.False(t, c.contains(4))
	assert.Equal(t, int64(4), c.validatedBelow)
	assert.Equal(t, int64(5), c.frontier())
	assert.Equal(t, 2, c.validatedCount())

	largest, err := c.largest()
	assert.NoError(t, err)
	assert.Equal(t, int64(3), largest)
}

func TestCache_Empty(t *testing.T) {
	c := &cache{known: map[int64]struct{}{}}
	_, err := c.largest()
	assert.Equal(t, ErrEmptyCache, errors.Cause(err))
	_, err = c.largestValidated()
	assert.Equal(t, ErrEmptyCache, errors.Cause(err))
}

func TestCache_AddKeepsOrder(t *testing.T) {
	c := newCache()
	assert.True(t, c.add(13))
	assert.True(t, c.add(7))
	assert.True(t, c.add(11))
	assert.False(t, c.add(7))
	assert.True(t, c.add(5))
	assert.Equal(t, []int64{2, 3, 5, 7, 11, 13}, c.ordered)
	assert.Len(t, c.known, 6)
}

func TestCache_RaiseValidatedBelow(t *testing.T) {
	c := newCache()
	c.raiseValidatedBelow(10)
	assert.Equal(t, int64(10), c.validatedBelow)
	c.raiseValidatedBelow(6)
	assert.Equal(t, int64(10), c.validatedBelow)
	assert.Equal(t, int64(11), c.frontier())
}

func TestCache_Settle(t *testing.T) {
	c := newCache()
	c.settle(7)
	assert.Equal(t, int64(4), c.validatedBelow, "7 is past the frontier")
	c.settle(5)
	assert.Equal(t, int64(6), c.validatedBelow)
	c.settle(7)
	assert.Equal(t, int64(8), c.validatedBelow)

	c.validatedBelow = math.MaxInt64 - 1
	assert.Equal(t, int64(math.MaxInt64), c.frontier())
	c.settle(math.MaxInt64)
	assert.Equal(t, int64(math.MaxInt64), c.validatedBelow)
	assert.Equal(t, int64(math.MaxInt64), c.frontier())
}

func TestCache_ValidatedPrefixIsStable(t *testing.T) {
	c := newCache()
	c.add(5)
	c.add(7)
	c.validatedBelow = 8
	prefix := c.validated()
	assert.Equal(t, []int64{2, 3, 5, 7}, prefix)

	c.add(101)
	c.add(11)
	assert.Equal(t, []int64{2, 3, 5, 7}, prefix)
	assert.Equal(t, []int64{2, 3, 5, 7, 11, 101}, c.ordered)
}

func TestEngine_GrowStopsAtInt64(t *testing.T) {
	e := New()
	e.cache.validatedBelow = math.MaxInt64
	err := e.ensureAtLeast(1000)
	assert.Equal(t, ErrArithmeticOverflow, errors.Cause(err))
}

func TestEngine_ScanAdvancesMark(t *testing.T) {
	e := New()
	e.scanTo(30)
	assert.Equal(t, int64(30), e.cache.validatedBelow)
	assert.Equal(t, []int64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29}, e.cache.ordered)

	// a target behind the frontier still tests one candidate
	e.scanTo(0)
	assert.Equal(t, int64(32), e.cache.validatedBelow)
	assert.True(t, e.cache.contains(31))

	// so does one far below it, without wrapping around
	e.scanTo(math.MinInt64)
	assert.Equal(t, int64(34), e.cache.validatedBelow)
	e.scanTo(math.MinInt64 + 1)
	assert.Equal(t, int64(36), e.cache.validatedBelow)
	assert.False(t, e.cache.contains(33))
	assert.False(t, e.cache.contains(35))
}

func TestValidate_DetectsCorruption(t *testing.T) {
	e := New()
	_, err := e.NthPrime(20)
	require.NoError(t, err)
	require.NoError(t, e.Validate())

	// a composite in the cache, a prime missing below the mark and a set
	// entry with no list entry
	e.cache.add(49)
	delete(e.cache.known, 13)
	e.cache.ordered = removeValue(e.cache.ordered, 13)
	e.cache.known[1000] = struct{}{}

	err = e.Validate()
	require.Error(t, err)
	merr, ok := err.(*multierror.Error)
	require.True(t, ok)
	assert.Len(t, merr.Errors, 3)
}

func removeValue(xs []int64, v int64) []int64 {
	res := xs[:0:0]
	for _, x := range xs {
		if x != v {
			res = append(res, x)
		}
	}
	return res
}

func TestStats_String(t *testing.T) {
	s := Stats{Divisions: 10, CacheHits: 2, CacheMisses: 3, Enriched: 1}
	assert.Contains(t, s.String(), "Divisions:     10")
	assert.Contains(t, s.String(), "Enriched:      1")
}
