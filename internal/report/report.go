// Package report formats and emits the progress output of a prime search.
package report

import "time"

// StartReport describes the bounds of a session before it begins.
type StartReport struct {
	SessionID    string
	MaxCandidate uint32 // 0 when unbounded
	PrimeGoal    uint32 // 0 when unbounded
}

// MinorReport is emitted every minor interval of primes found.
type MinorReport struct {
	Nth     uint64
	Count   uint64 // primes found so far, including 2
	Prime   uint32
	Elapsed time.Duration
}

// MajorReport is emitted every major interval of primes found.
type MajorReport struct {
	Interval   uint32
	Count      uint64
	Prime      uint32
	Elapsed    time.Duration
	Throughput float64
}

// SessionReport is emitted exactly once when a session stops.
type SessionReport struct {
	Reason     string
	Count      uint64
	LastPrime  uint32
	Elapsed    time.Duration
	Throughput float64
}

// Reporter receives report events from a running session.
type Reporter interface {
	Start(StartReport)
	Header()
	Minor(MinorReport)
	Major(MajorReport)
	Session(SessionReport)
}

// Throughput returns n per second over d, or 0 when d is not positive.
func Throughput(n uint64, d time.Duration) float64 {
	if d <= 0 {
		return 0
	}
	return float64(n) / d.Seconds()
}

// Multi fans every event out to each reporter in order.
type Multi []Reporter

func (m Multi) Start(r StartReport) {
	for _, rep := range m {
		rep.Start(r)
	}
}

func (m Multi) Header() {
	for _, rep := range m {
		rep.Header()
	}
}

func (m Multi) Minor(r MinorReport) {
	for _, rep := range m {
		rep.Minor(r)
	}
}

func (m Multi) Major(r MajorReport) {
	for _, rep := range m {
		rep.Major(r)
	}
}

func (m Multi) Session(r SessionReport) {
	for _, rep := range m {
		rep.Session(r)
	}
}

// Discard is a Reporter that drops every event.
var Discard Reporter = discard{}

type discard struct{}

func (discard) Start(StartReport)     {}
func (discard) Header()               {}
func (discard) Minor(MinorReport)     {}
func (discard) Major(MajorReport)     {}
func (discard) Session(SessionReport) {}
