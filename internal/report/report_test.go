package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/cristianoliveira/primesearch/internal/logging"
	"github.com/stretchr/testify/require"
)

func TestMultiFansOutInOrder(t *testing.T) {
	var a, b bytes.Buffer
	m := Multi{NewTextReporter(&a), Discard, NewTextReporter(&b)}

	m.Start(StartReport{PrimeGoal: 1})
	m.Header()
	m.Minor(MinorReport{Nth: 1, Prime: 7})
	m.Major(MajorReport{Interval: 1000, Prime: 7919})
	m.Session(SessionReport{Count: 1000})

	require.Equal(t, a.String(), b.String())
	require.Contains(t, a.String(), "Last thousand took")
	require.Contains(t, a.String(), "Found 1000 prime numbers")
}

func TestLogReporterWritesRecords(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewWriter(&buf, logging.Config{Level: "debug", Command: "test", PID: 7})
	r := NewLogReporter(logger)

	r.Start(StartReport{SessionID: "s-1", MaxCandidate: 200000})
	r.Header()
	r.Minor(MinorReport{Nth: 1, Prime: 104729, Elapsed: 30 * time.Millisecond})
	r.Major(MajorReport{Interval: 10000, Prime: 104729, Elapsed: time.Second, Throughput: 10000})
	r.Session(SessionReport{Reason: "goal", Count: 10001, LastPrime: 104743})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)

	msgs := make([]string, 0, len(lines))
	for _, line := range lines {
		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		require.Equal(t, "s-1", entry["session"])
		msgs = append(msgs, entry["msg"].(string))
	}
	require.Equal(t, []string{"search started", "minor report", "major report", "search finished"}, msgs)
	require.Contains(t, lines[3], `"reason":"goal"`)
}
