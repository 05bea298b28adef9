package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorAccent = lipgloss.Color("#a855f7")
	colorDimmed = lipgloss.Color("#6b7280")
	colorBright = lipgloss.Color("#f9fafb")
	colorDone   = lipgloss.Color("#16a34a")
	colorWarn   = lipgloss.Color("#d97706")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorBright).
			Background(colorAccent).
			Padding(0, 1)
	labelStyle   = lipgloss.NewStyle().Foreground(colorDimmed).Width(15)
	valueStyle   = lipgloss.NewStyle().Foreground(colorBright).Bold(true)
	doneStyle    = lipgloss.NewStyle().Foreground(colorDone)
	warnStyle    = lipgloss.NewStyle().Foreground(colorWarn)
	helpStyle    = lipgloss.NewStyle().Foreground(colorDimmed)
	sectionStyle = lipgloss.NewStyle().Foreground(colorAccent).MarginTop(1)
)
