package report

import (
	"github.com/cristianoliveira/primesearch/internal/logging"
)

// LogReporter mirrors report events into a structured logger.
type LogReporter struct {
	logger logging.Logger
}

// NewLogReporter returns a LogReporter writing to logger.
func NewLogReporter(logger logging.Logger) *LogReporter {
	return &LogReporter{logger: logger}
}

func (l *LogReporter) Start(r StartReport) {
	l.logger = l.logger.With("session", r.SessionID)
	l.logger.Info("search started", "max_candidate", r.MaxCandidate, "prime_goal", r.PrimeGoal)
}

func (l *LogReporter) Header() {}

func (l *LogReporter) Minor(r MinorReport) {
	l.logger.Debug("minor report", "nth", r.Nth, "count", r.Count, "prime", r.Prime, "elapsed_ms", r.Elapsed.Milliseconds())
}

func (l *LogReporter) Major(r MajorReport) {
	l.logger.Info("major report",
		"interval", r.Interval,
		"count", r.Count,
		"prime", r.Prime,
		"elapsed_ms", r.Elapsed.Milliseconds(),
		"primes_per_second", r.Throughput)
}

func (l *LogReporter) Session(r SessionReport) {
	l.logger.Info("search finished",
		"reason", r.Reason,
		"count", r.Count,
		"last_prime", r.LastPrime,
		"elapsed_ms", r.Elapsed.Milliseconds(),
		"primes_per_second", r.Throughput)
}
