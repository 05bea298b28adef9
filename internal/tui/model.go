// Package tui renders a live dashboard of a running prime search.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/cristianoliveira/primesearch/internal/numname"
	"github.com/cristianoliveira/primesearch/internal/report"
	"github.com/dustin/go-humanize"
)

// maxMajors is the number of major reports kept on screen.
const maxMajors = 5

// Model is the root bubbletea model of the dashboard.
type Model struct {
	keys     KeyMap
	spinner  spinner.Model
	progress progress.Model
	stop     func()

	bounds   report.StartReport
	count    uint64
	last     uint32
	lap      time.Duration
	majors   []report.MajorReport
	final    *report.SessionReport
	stopping bool
}

// New returns a dashboard. stop is called once when the user asks to stop.
func New(stop func()) Model {
	return Model{
		keys:     DefaultKeyMap(),
		spinner:  spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(warnStyle)),
		progress: progress.New(progress.WithDefaultGradient(), progress.WithWidth(40)),
		stop:     stop,
		count:    2,
		last:     3,
	}
}

// Init starts the spinner.
func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.progress.Width = min(max(msg.Width-4, 10), 80)
		return m, nil

	case tea.KeyMsg:
		if !key.Matches(msg, m.keys.Quit) {
			return m, nil
		}
		if m.final != nil {
			return m, tea.Quit
		}
		if !m.stopping {
			m.stopping = true
			if m.stop != nil {
				m.stop()
			}
		}
		return m, nil

	case StartMsg:
		m.bounds = report.StartReport(msg)
		return m, nil

	case MinorMsg:
		m.count = msg.Count
		m.last = msg.Prime
		m.lap = msg.Elapsed
		return m, m.progress.SetPercent(m.percent())

	case MajorMsg:
		m.count = msg.Count
		m.last = msg.Prime
		m.majors = append(m.majors, report.MajorReport(msg))
		if len(m.majors) > maxMajors {
			m.majors = m.majors[len(m.majors)-maxMajors:]
		}
		return m, m.progress.SetPercent(m.percent())

	case SessionMsg:
		final := report.SessionReport(msg)
		m.final = &final
		m.count = final.Count
		m.last = final.LastPrime
		return m, tea.Quit

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case progress.FrameMsg:
		pm, cmd := m.progress.Update(msg)
		m.progress = pm.(progress.Model)
		return m, cmd
	}
	return m, nil
}

// Final returns the session report once the search has stopped.
func (m Model) Final() (report.SessionReport, bool) {
	if m.final == nil {
		return report.SessionReport{}, false
	}
	return *m.final, true
}

// percent is the completion ratio against the goal, else the candidate
// ceiling. Unbounded searches have no progress.
func (m Model) percent() float64 {
	var p float64
	switch {
	case m.bounds.PrimeGoal != 0:
		// the goal counts odd primes only
		p = float64(m.count-1) / float64(m.bounds.PrimeGoal)
	case m.bounds.MaxCandidate != 0:
		p = float64(m.last) / float64(m.bounds.MaxCandidate)
	}
	return min(p, 1)
}

func (m Model) bounded() bool {
	return m.bounds.PrimeGoal != 0 || m.bounds.MaxCandidate != 0
}

// View renders the dashboard.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("primesearch"))
	b.WriteString(" ")
	switch {
	case m.final != nil:
		b.WriteString(doneStyle.Render("finished (" + m.final.Reason + ")"))
	case m.stopping:
		b.WriteString(warnStyle.Render("stopping at next prime..."))
	default:
		b.WriteString(m.spinner.View() + " searching")
	}
	b.WriteString("\n\n")

	row := func(label, value string) {
		b.WriteString(labelStyle.Render(label) + valueStyle.Render(value) + "\n")
	}
	row("Primes found", humanize.Comma(int64(m.count)))
	row("Last prime", humanize.Comma(int64(m.last)))
	if m.lap > 0 {
		row("Last interval", report.FormatMinorElapsed(m.lap))
	}
	if m.final != nil {
		row("Elapsed", fmt.Sprintf("%.2fs", m.final.Elapsed.Seconds()))
		row("Average speed", fmt.Sprintf("%.2f primes/s", m.final.Throughput))
	}

	if m.bounded() {
		b.WriteString("\n" + m.progress.View() + "\n")
	}

	if len(m.majors) > 0 {
		b.WriteString(sectionStyle.Render("Recent intervals") + "\n")
		for _, r := range m.majors {
			fmt.Fprintf(&b, "  Last %s took %.3fs, %.3f primes/s\n",
				numname.Name(uint64(r.Interval)), r.Elapsed.Seconds(), r.Throughput)
		}
	}

	b.WriteString("\n" + helpStyle.Render(m.keys.Quit.Help().Key+" "+m.keys.Quit.Help().Desc) + "\n")
	return b.String()
}
