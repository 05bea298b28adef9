// Package hooks runs user scripts at search session events.
//
// Scripts live in <hooks_dir>/<point>/ and run in name order. Only
// executable regular files are considered. Session details are passed as
// PRIMESEARCH_* environment variables.
package hooks

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cristianoliveira/primesearch/internal/colors"
	"github.com/cristianoliveira/primesearch/internal/config"
	"github.com/cristianoliveira/primesearch/internal/report"
)

// Hook points.
const (
	PointSessionStart = "session-start"
	PointMajor        = "major"
	PointSessionStop  = "session-stop"
)

// Failure modes.
const (
	FailureWarn   = "warn"
	FailureIgnore = "ignore"
)

// DefaultTimeout bounds a single script run.
const DefaultTimeout = 30 * time.Second

// Runner executes hook scripts.
type Runner struct {
	Dir         string
	FailureMode string
	Timeout     time.Duration
	// Output receives script output and failure warnings.
	Output io.Writer
}

// NewFromConfig returns a Runner reading hooks_dir, hooks_failure_mode and
// hooks_timeout from the loaded configuration.
func NewFromConfig() *Runner {
	return &Runner{
		Dir:         hooksDir(),
		FailureMode: config.Get("hooks_failure_mode", FailureWarn),
		Timeout:     time.Duration(config.GetInt("hooks_timeout", int(DefaultTimeout/time.Second))) * time.Second,
		Output:      os.Stderr,
	}
}

func hooksDir() string {
	if dir := config.Get("hooks_dir", ""); dir != "" {
		return dir
	}
	return filepath.Join(config.Get("config_dir", ""), "hooks")
}

// Scripts returns the executable scripts registered for point, sorted by name.
func (r *Runner) Scripts(point string) []string {
	dir := filepath.Join(r.Dir, point)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	var scripts []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		info, err := e.Info()
		if err != nil || !info.Mode().IsRegular() || info.Mode()&0o111 == 0 {
			continue
		}
		scripts = append(scripts, filepath.Join(dir, e.Name()))
	}
	sort.Strings(scripts)
	return scripts
}

// Run executes every script of point with env added to the process
// environment. It returns the number of scripts that failed. Failures are
// reported on Output unless the failure mode is ignore.
func (r *Runner) Run(ctx context.Context, point string, env map[string]string) int {
	scripts := r.Scripts(point)
	if len(scripts) == 0 {
		return 0
	}
	colors.StructuredDebug("hooks", point, "running", nil, "", map[string]interface{}{"scripts": len(scripts)})

	failed := 0
	for _, script := range scripts {
		if err := r.runScript(ctx, script, point, env); err != nil {
			failed++
			if r.FailureMode != FailureIgnore {
				_, _ = fmt.Fprintf(r.output(), "warning: hook %s failed: %v\n", filepath.Base(script), err)
			}
		}
	}
	return failed
}

func (r *Runner) runScript(ctx context.Context, script, point string, env map[string]string) error {
	timeout := r.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, script)
	cmd.Env = append(os.Environ(),
		"HOOK_POINT="+point,
		"HOOK_TIMESTAMP="+time.Now().Format(time.RFC3339),
	)
	for k, v := range env {
		cmd.Env = append(cmd.Env, k+"="+v)
	}
	cmd.Stdout = r.output()
	cmd.Stderr = r.output()

	start := time.Now()
	err := cmd.Run()
	if ctx.Err() == context.DeadlineExceeded {
		return fmt.Errorf("timed out after %.2fs", time.Since(start).Seconds())
	}
	return err
}

func (r *Runner) output() io.Writer {
	if r.Output == nil {
		return io.Discard
	}
	return r.Output
}

// Reporter turns session events into hook runs. Minor rows and headers do
// not trigger hooks. Major hooks run on their own goroutine, one batch at a
// time; a major that arrives while the previous batch is still running is
// skipped. Session waits for the running batch before the stop hooks.
type Reporter struct {
	runner    *Runner
	sessionID string

	majors    sync.WaitGroup
	majorBusy atomic.Bool
}

// NewReporter returns a Reporter running scripts through runner.
func NewReporter(runner *Runner) *Reporter {
	return &Reporter{runner: runner}
}

func (h *Reporter) Start(r report.StartReport) {
	h.sessionID = r.SessionID
	h.runner.Run(context.Background(), PointSessionStart, map[string]string{
		"PRIMESEARCH_SESSION_ID":    r.SessionID,
		"PRIMESEARCH_MAX_CANDIDATE": strconv.FormatUint(uint64(r.MaxCandidate), 10),
		"PRIMESEARCH_PRIME_GOAL":    strconv.FormatUint(uint64(r.PrimeGoal), 10),
	})
}

func (h *Reporter) Header() {}

func (h *Reporter) Minor(report.MinorReport) {}

func (h *Reporter) Major(r report.MajorReport) {
	if !h.majorBusy.CompareAndSwap(false, true) {
		colors.StructuredDebug("hooks", PointMajor, "skipped", nil, h.sessionID, map[string]interface{}{"count": r.Count})
		return
	}
	env := map[string]string{
		"PRIMESEARCH_SESSION_ID": h.sessionID,
		"PRIMESEARCH_COUNT":      strconv.FormatUint(r.Count, 10),
		"PRIMESEARCH_PRIME":      strconv.FormatUint(uint64(r.Prime), 10),
		"PRIMESEARCH_ELAPSED_MS": strconv.FormatInt(r.Elapsed.Milliseconds(), 10),
		"PRIMESEARCH_THROUGHPUT": strconv.FormatFloat(r.Throughput, 'f', 3, 64),
	}
	h.majors.Add(1)
	go func() {
		defer h.majors.Done()
		defer h.majorBusy.Store(false)
		h.runner.Run(context.Background(), PointMajor, env)
	}()
}

func (h *Reporter) Session(r report.SessionReport) {
	h.majors.Wait()
	h.runner.Run(context.Background(), PointSessionStop, map[string]string{
		"PRIMESEARCH_SESSION_ID": h.sessionID,
		"PRIMESEARCH_REASON":     r.Reason,
		"PRIMESEARCH_COUNT":      strconv.FormatUint(r.Count, 10),
		"PRIMESEARCH_PRIME":      strconv.FormatUint(uint64(r.LastPrime), 10),
		"PRIMESEARCH_ELAPSED_MS": strconv.FormatInt(r.Elapsed.Milliseconds(), 10),
		"PRIMESEARCH_THROUGHPUT": strconv.FormatFloat(r.Throughput, 'f', 2, 64),
	})
}
