package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/cristianoliveira/primesearch/internal/report"
)

// Messages carrying report events into the dashboard.
type (
	StartMsg   report.StartReport
	MinorMsg   report.MinorReport
	MajorMsg   report.MajorReport
	SessionMsg report.SessionReport
)

// Reporter forwards report events to a bubbletea program.
type Reporter struct {
	send func(tea.Msg)
}

var _ report.Reporter = (*Reporter)(nil)

// NewReporter returns a Reporter delivering through send, usually
// (*tea.Program).Send.
func NewReporter(send func(tea.Msg)) *Reporter {
	return &Reporter{send: send}
}

func (r *Reporter) Start(s report.StartReport)     { r.send(StartMsg(s)) }
func (r *Reporter) Header()                        {}
func (r *Reporter) Minor(m report.MinorReport)     { r.send(MinorMsg(m)) }
func (r *Reporter) Major(m report.MajorReport)     { r.send(MajorMsg(m)) }
func (r *Reporter) Session(s report.SessionReport) { r.send(SessionMsg(s)) }
