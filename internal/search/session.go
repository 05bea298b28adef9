// Package search drives the candidate loop: it tests odd candidates against
// the primes found so far, fires interval reports and decides when to stop.
package search

import (
	"context"
	"fmt"
	"time"

	"github.com/cristianoliveira/primesearch/internal/colors"
	"github.com/cristianoliveira/primesearch/internal/prime"
	"github.com/cristianoliveira/primesearch/internal/report"
	"github.com/google/uuid"
)

// Result summarizes a finished session.
type Result struct {
	State      State
	Count      uint64
	LastPrime  uint32
	Elapsed    time.Duration
	Throughput float64
	// Primes holds every odd prime found, ascending, starting at 3.
	Primes []uint32
}

// Report converts r into the session report event.
func (r Result) Report() report.SessionReport {
	return report.SessionReport{
		Reason:     r.State.String(),
		Count:      r.Count,
		LastPrime:  r.LastPrime,
		Elapsed:    r.Elapsed,
		Throughput: r.Throughput,
	}
}

// Session is a single run of the search. It is not safe for concurrent use
// and runs at most once.
type Session struct {
	id       string
	cfg      Config
	reporter report.Reporter
	now      func() time.Time
	cancel   <-chan struct{}

	primes *prime.Sequence
	state  State
	result Result

	sessionTimer *Stopwatch
	majorTimer   *Stopwatch
	minorTimer   *Stopwatch
	// rows counts minor rows printed since the last header.
	rows uint32
}

// Option configures a Session.
type Option func(*Session)

// WithReporter sets the destination of report events.
func WithReporter(r report.Reporter) Option {
	return func(s *Session) { s.reporter = r }
}

// WithClock replaces time.Now for every timer of the session.
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// WithCancel sets a channel polled after every discovered prime.
func WithCancel(ch <-chan struct{}) Option {
	return func(s *Session) { s.cancel = ch }
}

// WithSessionID overrides the generated session ID.
func WithSessionID(id string) Option {
	return func(s *Session) { s.id = id }
}

// NewSession returns a session ready to Run.
func NewSession(cfg Config, opts ...Option) *Session {
	s := &Session{
		cfg:      cfg,
		reporter: report.Discard,
		now:      time.Now,
		primes:   prime.NewSequence(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.id == "" {
		s.id = uuid.NewString()
	}
	return s
}

// ID returns the session ID.
func (s *Session) ID() string { return s.id }

// State returns the current state.
func (s *Session) State() State { return s.state }

// Run searches until the candidate ceiling, the goal or a cancellation, then
// emits the session report. Cancellation through ctx or the cancel channel is
// only observed right after a prime is found. Calling Run again returns the
// first result.
func (s *Session) Run(ctx context.Context) Result {
	if s.state.Stopped() {
		return s.result
	}

	s.reporter.Start(report.StartReport{
		SessionID:    s.id,
		MaxCandidate: s.cfg.MaxCandidate,
		PrimeGoal:    s.cfg.PrimeGoal,
	})
	colors.StructuredInfo("search", "session", "started", nil, s.id, map[string]interface{}{
		"max_candidate":   s.cfg.MaxCandidate,
		"prime_goal":      s.cfg.PrimeGoal,
		"major_interval":  s.cfg.MajorInterval,
		"minor_interval":  s.cfg.MinorInterval,
		"header_interval": s.cfg.HeaderInterval,
	})

	s.sessionTimer = StartStopwatch(s.now)
	s.majorTimer = StartStopwatch(s.now)
	s.minorTimer = StartStopwatch(s.now)
	if s.cfg.headerEnabled() {
		s.reporter.Header()
	}

	stop := StoppedByCandidateLimit
	for candidate := range prime.Candidates(s.cfg.MaxCandidate) {
		if !s.primes.Test(candidate) {
			continue
		}
		if err := s.primes.Append(candidate); err != nil {
			panic(fmt.Sprintf("search: %v", err))
		}
		s.evaluateReports(candidate)

		if s.goalReached() {
			stop = StoppedByGoal
			break
		}
		if s.cancelled(ctx) {
			stop = StoppedByCancellation
			break
		}
	}
	return s.finish(stop)
}

// count is the number of primes found including the implicit 2.
func (s *Session) count() uint64 {
	return uint64(s.primes.Len()) + 1
}

// evaluateReports fires at most one report for the prime just found. A major
// report takes priority over a minor one and restarts the minor timer.
func (s *Session) evaluateReports(p uint32) {
	count := s.count()
	major, minor := uint64(s.cfg.MajorInterval), uint64(s.cfg.MinorInterval)

	switch {
	case major != 0 && count%major == 0:
		elapsed := s.majorTimer.Elapsed()
		s.reporter.Major(report.MajorReport{
			Interval:   s.cfg.MajorInterval,
			Count:      count,
			Prime:      p,
			Elapsed:    elapsed,
			Throughput: report.Throughput(major, elapsed),
		})
		s.majorTimer.Restart()
		s.minorTimer.Restart()
		s.rows = s.cfg.HeaderInterval
	case minor != 0 && count%minor == 0:
		if s.cfg.headerEnabled() && s.rows >= s.cfg.HeaderInterval {
			s.reporter.Header()
			s.rows = 0
		}
		s.reporter.Minor(report.MinorReport{
			Nth:     count / minor,
			Count:   count,
			Prime:   p,
			Elapsed: s.minorTimer.Elapsed(),
		})
		s.minorTimer.Restart()
		s.rows++
	}
}

func (s *Session) goalReached() bool {
	return s.cfg.PrimeGoal != 0 && uint64(s.primes.Len()) >= uint64(s.cfg.PrimeGoal)
}

// cancelled polls ctx and the cancel channel without blocking.
func (s *Session) cancelled(ctx context.Context) bool {
	select {
	case <-ctx.Done():
		return true
	default:
	}
	if s.cancel == nil {
		return false
	}
	select {
	case <-s.cancel:
		return true
	default:
		return false
	}
}

func (s *Session) finish(stop State) Result {
	s.state = stop
	elapsed := s.sessionTimer.Elapsed()
	count := s.count()
	s.result = Result{
		State:      stop,
		Count:      count,
		LastPrime:  s.primes.Last(),
		Elapsed:    elapsed,
		Throughput: report.Throughput(count, elapsed),
		Primes:     s.primes.Values(),
	}
	s.reporter.Session(s.result.Report())
	colors.StructuredInfo("search", "session", "stopped", nil, s.id, map[string]interface{}{
		"reason":     stop.String(),
		"count":      count,
		"last_prime": s.result.LastPrime,
		"elapsed_ms": elapsed.Milliseconds(),
	})
	return s.result
}
