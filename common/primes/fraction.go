package primes

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/pkg/errors"
)

// Fraction represents fraction
type Fraction struct {
	numerator   int64
	denominator int64
	commons     []int64
	before      *Fraction
}

var fractionLikeExp = regexp.MustCompile("^(-?[0-9]+)/([0-9]+)$")

// ParseFractionString parses a string of the form "a/b" and factorizes both
// parts with e.
func (e *Engine) ParseFractionString(fractionLike string) (*Fraction, error) {
	matches := fractionLikeExp.FindStringSubmatch(fractionLike)
	if len(matches) != 3 {
		return nil, errors.Wrapf(ErrInvalidArgument, "failed to parse string `%s` to fraction", fractionLike)
	}
	num, err := strconv.ParseInt(matches[1], 10, 64)
	if err != nil {
		return nil, errors.Wrapf(err, "numerator of `%s`", fractionLike)
	}
	den, err := strconv.ParseInt(matches[2], 10, 64)
	if err != nil {
		return nil, errors.Wrapf(err, "denominator of `%s`", fractionLike)
	}
	return e.Fractionize(num, den)
}

// Fractionize builds num/den and records the prime factors both share. The
// sign is carried by the numerator, so den must be positive.
func (e *Engine) Fractionize(num, den int64) (*Fraction, error) {
	if den <= 0 {
		return nil, errors.Wrapf(ErrInvalidArgument, "denominator must be positive in %d/%d", num, den)
	}
	nf, err := e.Factorize(num)
	if err != nil {
		return nil, err
	}
	df, err := e.Factorize(den)
	if err != nil {
		return nil, err
	}
	return &Fraction{
		numerator:   num,
		denominator: den,
		commons:     Commons(nf, df).All(),
	}, nil
}

// Reduce divides out one common prime factor per step, smallest first, for
// the given number of steps. A negative count reduces fully.
func (fr *Fraction) Reduce(times int) *Fraction {
	if times == 0 || len(fr.commons) == 0 {
		return fr
	}
	c := fr.commons[0]
	next := &Fraction{
		numerator:   fr.numerator / c,
		denominator: fr.denominator / c,
		commons:     fr.commons[1:],
		before:      fr,
	}
	return next.Reduce(times - 1)
}

// Before returns the fraction this one was reduced from, or nil.
func (fr *Fraction) Before() *Fraction {
	return fr.before
}

// String ...
func (fr *Fraction) String() string {
	return fmt.Sprintf("%d/%d", fr.numerator, fr.denominator)
}
