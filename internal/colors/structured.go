package colors

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"
	"time"
)

// StructuredLogLevel represents log level for structured logs.
type StructuredLogLevel string

const (
	LevelDebug StructuredLogLevel = "debug"
	LevelInfo  StructuredLogLevel = "info"
	LevelWarn  StructuredLogLevel = "warn"
	LevelError StructuredLogLevel = "error"
)

// StructuredLogEntry is one JSON line of structured output.
type StructuredLogEntry struct {
	Timestamp string                 `json:"timestamp"`
	Level     StructuredLogLevel     `json:"level"`
	Component string                 `json:"component"`
	Action    string                 `json:"action"`
	Status    string                 `json:"status"`
	Error     string                 `json:"error,omitempty"`
	ID        string                 `json:"id,omitempty"`
	Fields    map[string]interface{} `json:"fields,omitempty"`
}

// structuredSink serializes entries onto a writer. A nil writer means the
// process stderr at write time.
type structuredSink struct {
	mu      sync.Mutex
	w       io.Writer
	enabled atomic.Bool
}

var structured = newStructuredSink()

func newStructuredSink() *structuredSink {
	s := &structuredSink{}
	s.enabled.Store(true)
	return s
}

func (s *structuredSink) write(entry StructuredLogEntry) {
	data, err := json.Marshal(entry)
	if err != nil {
		errorFallback(fmt.Sprintf("failed to marshal structured log: %v", err))
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	w := s.w
	if w == nil {
		w = os.Stderr
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		errorFallback(fmt.Sprintf("failed to write structured log: %v", err))
	}
}

// DisableStructuredLogging silences structured output. The watch dashboard
// turns it off so JSON lines do not tear the screen.
func DisableStructuredLogging() {
	structured.enabled.Store(false)
}

// EnableStructuredLogging turns structured output back on.
func EnableStructuredLogging() {
	structured.enabled.Store(true)
}

// SetStructuredOutput redirects structured output to w. Passing nil restores
// stderr.
func SetStructuredOutput(w io.Writer) {
	structured.mu.Lock()
	defer structured.mu.Unlock()
	structured.w = w
}

// StructuredLog writes one entry when debug is on and structured output is
// enabled.
func StructuredLog(level StructuredLogLevel, component, action, status string, err error, id string, fields map[string]interface{}) {
	if !debugEnabled.Load() || !structured.enabled.Load() {
		return
	}
	entry := StructuredLogEntry{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Level:     level,
		Component: component,
		Action:    action,
		Status:    status,
		ID:        id,
		Fields:    fields,
	}
	if err != nil {
		entry.Error = err.Error()
	}
	structured.write(entry)
}

func StructuredDebug(component, action, status string, err error, id string, fields map[string]interface{}) {
	StructuredLog(LevelDebug, component, action, status, err, id, fields)
}

func StructuredInfo(component, action, status string, err error, id string, fields map[string]interface{}) {
	StructuredLog(LevelInfo, component, action, status, err, id, fields)
}

func StructuredWarn(component, action, status string, err error, id string, fields map[string]interface{}) {
	StructuredLog(LevelWarn, component, action, status, err, id, fields)
}

func StructuredError(component, action, status string, err error, id string, fields map[string]interface{}) {
	StructuredLog(LevelError, component, action, status, err, id, fields)
}
