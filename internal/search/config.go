package search

// Config bounds a session and sets its reporting cadence. A zero value for
// any field disables it: no candidate ceiling, no goal, no report tier.
type Config struct {
	// MaxCandidate is the exclusive upper bound on candidates tested.
	MaxCandidate uint32
	// PrimeGoal stops the search once this many odd primes are held.
	PrimeGoal uint32
	// MajorInterval is the number of primes between major reports.
	MajorInterval uint32
	// MinorInterval is the number of primes between minor reports.
	MinorInterval uint32
	// HeaderInterval is the number of minor rows between table headers.
	HeaderInterval uint32
}

func (c Config) headerEnabled() bool {
	return c.MinorInterval != 0 && c.HeaderInterval != 0
}
