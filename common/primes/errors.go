package primes

import (
	"github.com/pkg/errors"
)

// Use errors.Cause(err) to compare a returned error against these.
var (
	// ErrInvalidArgument is returned for out-of-domain requests, e.g. a
	// non-positive index passed to NthPrime.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNoFactors is returned when a factor is requested from a number
	// with no prime factors (|n| < 2).
	ErrNoFactors = errors.New("no prime factors")

	// ErrArithmeticOverflow is returned when a computation would leave the
	// int64 range.
	ErrArithmeticOverflow = errors.New("arithmetic overflow")

	// ErrEmptyCache means the cache was read before it was seeded. It
	// indicates a programming error.
	ErrEmptyCache = errors.New("prime cache is empty")
)
