package primes

// Sequence is a finite, restartable cursor over a run of cached primes.
// Values are read from the cache as the cursor advances.
type Sequence struct {
	primes []int64
	index  int
}

func newSequence(primes []int64) *Sequence {
	return &Sequence{primes: primes}
}

// Next returns the next prime, or false once the sequence is exhausted.
func (s *Sequence) Next() (int64, bool) {
	if s.index >= len(s.primes) {
		return 0, false
	}
	p := s.primes[s.index]
	s.index++
	return p, true
}

// Reset rewinds the cursor to the first prime.
func (s *Sequence) Reset() {
	s.index = 0
}

// Len returns the total number of primes in the sequence.
func (s *Sequence) Len() int {
	return len(s.primes)
}

// List returns all primes of the sequence as a new slice, regardless of the
// cursor position.
func (s *Sequence) List() []int64 {
	res := make([]int64, len(s.primes))
	copy(res, s.primes)
	return res
}
