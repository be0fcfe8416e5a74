// Package telemetry provides lightweight operation timing for commands.
// Instrumentation is non-intrusive: every method is a no-op on a nil
// collector, so callers thread a possibly-nil *Collector through without
// guarding each call site.
//
//	collector := telemetry.New()
//
//	stop := collector.Start("load model")
//	// ... work ...
//	stop()
//
//	collector.Report(os.Stderr)
package telemetry

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// Collector records named operation timings in the order the operations
// stop. All methods
// are safe on a nil receiver, which is how uninstrumented runs stay free.
type Collector struct {
	mu    sync.Mutex
	spans []span
}

type span struct {
	name     string
	duration time.Duration
}

// New creates an empty collector.
func New() *Collector {
	return &Collector{}
}

// Start begins timing a named operation and returns the function that ends
// it.
func (c *Collector) Start(name string) func() {
	if c == nil {
		return func() {}
	}
	began := time.Now()
	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		c.spans = append(c.spans, span{name: name, duration: time.Since(began)})
	}
}

// Report writes the recorded timings as a two-column list.
func (c *Collector) Report(w io.Writer) {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	total := time.Duration(0)
	for _, s := range c.spans {
		total += s.duration
	}
	for _, s := range c.spans {
		_, _ = fmt.Fprintf(w, "%-24s %s\n", s.name, formatDuration(s.duration))
	}
	_, _ = fmt.Fprintf(w, "%-24s %s\n", "total", formatDuration(total))
}

// formatDuration renders a duration at millisecond resolution for anything
// above a millisecond, microseconds below.
func formatDuration(d time.Duration) string {
	if d >= time.Millisecond {
		return fmt.Sprintf("%.1fms", float64(d.Microseconds())/1000)
	}
	return fmt.Sprintf("%dµs", d.Microseconds())
}
