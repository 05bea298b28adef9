package report

import (
	"fmt"
	"io"
	"time"

	"github.com/cristianoliveira/primesearch/internal/numname"
	"github.com/dustin/go-humanize"
)

// secondsThreshold is the minor elapsed time from which rows switch from
// milliseconds to seconds.
const secondsThreshold = 5000 * time.Millisecond

// TextReporter writes the line-oriented console output.
type TextReporter struct {
	w io.Writer
	// Banner controls whether Start prints the startup banner.
	Banner bool
}

// NewTextReporter returns a TextReporter writing to w with the banner enabled.
func NewTextReporter(w io.Writer) *TextReporter {
	return &TextReporter{w: w, Banner: true}
}

func (t *TextReporter) Start(r StartReport) {
	if !t.Banner {
		return
	}
	_, _ = fmt.Fprintln(t.w, "Searching for prime numbers.")
	if r.MaxCandidate != 0 {
		_, _ = fmt.Fprintf(t.w, "Will stop searching after: candidate = %s\n", humanize.Comma(int64(r.MaxCandidate)))
	}
	if r.PrimeGoal != 0 {
		_, _ = fmt.Fprintf(t.w, "Will stop searching after: count = %s\n", humanize.Comma(int64(r.PrimeGoal)))
	}
	if r.MaxCandidate == 0 && r.PrimeGoal == 0 {
		_, _ = fmt.Fprintln(t.w, "Will run indefinitely")
	}
	_, _ = fmt.Fprintln(t.w, "Press [Ctrl] + [C] to stop.")
}

func (t *TextReporter) Header() {
	_, _ = fmt.Fprintln(t.w, "-------|------------|------")
	_, _ = fmt.Fprintf(t.w, " %-5s | %-10s | %-5s\n", "Nth", "Prime", "Time")
	_, _ = fmt.Fprintln(t.w, "-------|------------|------")
}

func (t *TextReporter) Minor(r MinorReport) {
	_, _ = fmt.Fprintf(t.w, " %-5d | %-10d | %-5s\n", r.Nth, r.Prime, FormatMinorElapsed(r.Elapsed))
}

func (t *TextReporter) Major(r MajorReport) {
	name := numname.Name(uint64(r.Interval))
	_, _ = fmt.Fprintf(t.w, "Last %s took %.3fs\n", name, r.Elapsed.Seconds())
	_, _ = fmt.Fprintf(t.w, "Last %sth prime is %d\n", name, r.Prime)
	_, _ = fmt.Fprintf(t.w, "Average speed: %.3f primes/second\n", r.Throughput)
}

func (t *TextReporter) Session(r SessionReport) {
	secs := r.Elapsed.Seconds()
	_, _ = fmt.Fprintln(t.w)
	_, _ = fmt.Fprintln(t.w, "Finished searching for primes.")
	_, _ = fmt.Fprintf(t.w, "Took %.2f seconds.\n", secs)
	_, _ = fmt.Fprintf(t.w, "Found %d prime numbers in %.2f seconds.\n", r.Count, secs)
	_, _ = fmt.Fprintf(t.w, "Total average speed: %.2f primes/second\n", r.Throughput)
}

// FormatMinorElapsed renders d as whole milliseconds below five seconds and
// as seconds with two decimals otherwise.
func FormatMinorElapsed(d time.Duration) string {
	if d < secondsThreshold {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return fmt.Sprintf("%.2fs", d.Seconds())
}
