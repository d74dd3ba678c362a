package primes

import (
	"sync"
)

type global struct {
	mu     sync.Mutex
	engine *Engine
}

// Globally is the Engine behind the package-level functions. Every call holds
// one mutex for its whole duration, so the cache is never observed half
// updated.
var Globally = &global{engine: New()}

// Clear drops every discovered prime and restores the seed cache.
func (g *global) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.engine = New()
}

// Do runs fn with exclusive access to the shared Engine.
func (g *global) Do(fn func(e *Engine)) {
	g.mu.Lock()
	defer g.mu.Unlock()
	fn(g.engine)
}

func IsPrime(n int64) (prime bool) {
	Globally.Do(func(e *Engine) { prime = e.IsPrime(n) })
	return
}

func Factorize(n int64) (f *Factors, err error) {
	Globally.Do(func(e *Engine) { f, err = e.Factorize(n) })
	return
}

func LargestPrimeFactor(n int64) (p int64, err error) {
	Globally.Do(func(e *Engine) { p, err = e.LargestPrimeFactor(n) })
	return
}

func NthPrime(n int) (p int64, err error) {
	Globally.Do(func(e *Engine) { p, err = e.NthPrime(n) })
	return
}

// PrimesUpTo is safe to iterate while other goroutines use Globally: the
// primes it covers are never moved by later cache growth.
func PrimesUpTo(bound int64) (seq *Sequence, err error) {
	Globally.Do(func(e *Engine) { seq, err = e.PrimesUpTo(bound) })
	return
}

func SumOfPrimesUpTo(bound int64) (sum int64, err error) {
	Globally.Do(func(e *Engine) { sum, err = e.SumOfPrimesUpTo(bound) })
	return
}
