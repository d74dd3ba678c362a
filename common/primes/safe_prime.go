package primes

import (
	"github.com/pkg/errors"

	"github.com/eulerlab/numtheory/common"
)

// SophieGermainPrime is a prime p for which 2p+1, the safe prime, is also prime.
type SophieGermainPrime struct {
	sophiePrime,
	safePrime int64
}

func (sgp *SophieGermainPrime) Prime() int64 {
	return sgp.sophiePrime
}

func (sgp *SophieGermainPrime) SafePrime() int64 {
	return sgp.safePrime
}

// Validate rechecks both primes with e.
func (sgp *SophieGermainPrime) Validate(e *Engine) bool {
	safe, err := getSafePrime(sgp.sophiePrime)
	return err == nil &&
		safe == sgp.safePrime &&
		e.IsPrime(sgp.sophiePrime) &&
		e.IsPrime(sgp.safePrime)
}

// ----- //

func (e *Engine) TrySophieGermainPrime(prime int64) (*SophieGermainPrime, error) {
	if !e.IsPrime(prime) {
		return nil, errors.Wrapf(ErrInvalidArgument, "%d is not a prime", prime)
	}
	sPrime, err := getSafePrime(prime)
	if err != nil {
		return nil, err
	}
	if !e.IsPrime(sPrime) {
		return nil, errors.Wrapf(ErrInvalidArgument, "%d is not a Sophie Germain prime", prime)
	}
	return &SophieGermainPrime{prime, sPrime}, nil
}

func getSafePrime(p int64) (int64, error) {
	i, ok := common.MulChecked(p, 2)
	if ok {
		i, ok = common.AddChecked(i, 1)
	}
	if !ok {
		return 0, errors.Wrapf(ErrArithmeticOverflow, "safe prime of %d", p)
	}
	return i, nil
}
