package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cristianoliveira/primesearch/internal/report"
	"github.com/stretchr/testify/require"
)

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	return model, cmd
}

func TestReporterForwardsEvents(t *testing.T) {
	var got []tea.Msg
	r := NewReporter(func(msg tea.Msg) { got = append(got, msg) })

	r.Start(report.StartReport{PrimeGoal: 10})
	r.Header()
	r.Minor(report.MinorReport{Nth: 1})
	r.Major(report.MajorReport{Interval: 1000})
	r.Session(report.SessionReport{Count: 11})

	require.Equal(t, []tea.Msg{
		StartMsg{PrimeGoal: 10},
		MinorMsg{Nth: 1},
		MajorMsg{Interval: 1000},
		SessionMsg{Count: 11},
	}, got)
}

func TestModelFoldsReports(t *testing.T) {
	m := New(nil)
	m, _ = update(t, m, StartMsg{MaxCandidate: 200000})
	m, cmd := update(t, m, MinorMsg{Nth: 1, Count: 10000, Prime: 104729, Elapsed: 40 * time.Millisecond})

	require.NotNil(t, cmd)
	require.Equal(t, uint64(10000), m.count)
	require.Equal(t, uint32(104729), m.last)

	view := m.View()
	require.Contains(t, view, "10,000")
	require.Contains(t, view, "104,729")
	require.Contains(t, view, "40ms")
	require.Contains(t, view, "searching")
}

func TestModelKeepsRecentMajors(t *testing.T) {
	m := New(nil)
	for i := 1; i <= maxMajors+2; i++ {
		m, _ = update(t, m, MajorMsg{Interval: 1000, Count: uint64(i * 1000), Elapsed: time.Second, Throughput: 1000})
	}

	require.Len(t, m.majors, maxMajors)
	require.Equal(t, uint64(7000), m.majors[maxMajors-1].Count)
	require.Contains(t, m.View(), "Last thousand took 1.000s")
}

func TestModelPercent(t *testing.T) {
	m := New(nil)
	require.Zero(t, m.percent())
	require.False(t, m.bounded())

	m.bounds = report.StartReport{PrimeGoal: 10}
	m.count = 6
	require.InDelta(t, 0.5, m.percent(), 1e-9)

	m.bounds = report.StartReport{MaxCandidate: 1000}
	m.last = 997
	require.InDelta(t, 0.997, m.percent(), 1e-9)

	m.last = 5000
	require.Equal(t, 1.0, m.percent())
}

func TestQuitStopsSearchOnce(t *testing.T) {
	stops := 0
	m := New(func() { stops++ })

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.Nil(t, cmd)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})

	require.Equal(t, 1, stops)
	require.True(t, m.stopping)
	require.Contains(t, m.View(), "stopping")
}

func TestSessionMsgQuits(t *testing.T) {
	m := New(nil)
	m, cmd := update(t, m, SessionMsg{Reason: "goal", Count: 11, LastPrime: 31, Elapsed: time.Second, Throughput: 11})

	require.NotNil(t, cmd)
	require.Equal(t, tea.QuitMsg{}, cmd())

	final, ok := m.Final()
	require.True(t, ok)
	require.Equal(t, uint32(31), final.LastPrime)
	require.Contains(t, m.View(), "finished (goal)")

	_, cmd = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	require.Equal(t, tea.QuitMsg{}, cmd())
}

func TestFinalBeforeStop(t *testing.T) {
	_, ok := New(nil).Final()
	require.False(t, ok)
}
