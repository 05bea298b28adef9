package prime

import "fmt"

// Seed is the first element of every Sequence.
const Seed uint32 = 3

// Sequence is the append-only, strictly ascending list of odd primes found
// during a session.
type Sequence struct {
	values []uint32
}

// NewSequence returns a Sequence holding only Seed.
func NewSequence() *Sequence {
	return &Sequence{values: []uint32{Seed}}
}

// Append adds p to the end of the sequence. p must be greater than the
// current last element.
func (s *Sequence) Append(p uint32) error {
	if last := s.values[len(s.values)-1]; p <= last {
		return fmt.Errorf("prime %d is not greater than last prime %d", p, last)
	}
	s.values = append(s.values, p)
	return nil
}

// Test reports whether candidate is prime against the primes found so far.
func (s *Sequence) Test(candidate uint32) bool {
	return IsPrime(candidate, s.values)
}

// Len returns the number of odd primes held.
func (s *Sequence) Len() int {
	return len(s.values)
}

// Last returns the largest prime held.
func (s *Sequence) Last() uint32 {
	return s.values[len(s.values)-1]
}

// Values returns the underlying slice. Callers must not modify it.
func (s *Sequence) Values() []uint32 {
	return s.values
}
