// Package errors routes user-facing failures to the console.
package errors

import (
	"sync"
)

// ErrorHandler is the interface for error handling.
type ErrorHandler interface {
	Error(msg string)
	Warning(msg string)
	Info(msg string)
}

// ColorOutput is the console sink a CLIHandler writes to.
type ColorOutput interface {
	Error(msgs ...string)
	Warning(msgs ...string)
	Info(msgs ...string)
}

// CLIHandler handles errors by printing to stdout/stderr through a ColorOutput.
type CLIHandler struct {
	colors     ColorOutput
	mu         sync.Mutex
	inHandling bool
}

var _ ErrorHandler = (*CLIHandler)(nil)

func NewCLIHandler(colors ColorOutput) *CLIHandler {
	return &CLIHandler{colors: colors}
}

// Error prints msg. A nested call made while an error is being printed goes
// straight to the output.
func (h *CLIHandler) Error(msg string) {
	h.mu.Lock()
	if h.inHandling {
		h.mu.Unlock()
		h.colors.Error(msg)
		return
	}
	h.inHandling = true
	h.mu.Unlock()

	defer func() {
		h.mu.Lock()
		h.inHandling = false
		h.mu.Unlock()
	}()

	h.colors.Error(msg)
}

func (h *CLIHandler) Warning(msg string) {
	h.colors.Warning(msg)
}

func (h *CLIHandler) Info(msg string) {
	h.colors.Info(msg)
}

// Fatal prints err and returns the process exit code for it.
func (h *CLIHandler) Fatal(err error) int {
	if err == nil {
		return 0
	}
	h.Error(err.Error())
	return 1
}
