package search

import "time"

// Stopwatch measures time since it was started or last restarted.
type Stopwatch struct {
	now   func() time.Time
	start time.Time
}

// StartStopwatch returns a running Stopwatch reading from now.
func StartStopwatch(now func() time.Time) *Stopwatch {
	return &Stopwatch{now: now, start: now()}
}

// Restart resets the elapsed time to zero.
func (s *Stopwatch) Restart() {
	s.start = s.now()
}

// Elapsed returns the time since the last start. It never goes negative.
func (s *Stopwatch) Elapsed() time.Duration {
	d := s.now().Sub(s.start)
	if d < 0 {
		return 0
	}
	return d
}
