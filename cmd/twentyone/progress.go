package main

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// ProgressMonitor prints a row of dots as matches complete. A nil monitor
// prints nothing.
type ProgressMonitor struct {
	mu          sync.Mutex
	w           io.Writer
	total       int
	completed   int
	dotsPrinted int
	startTime   time.Time
}

// dotsTotal fits an 80-column terminal with the percentage suffix
const dotsTotal = 50

// NewProgressMonitor creates a progress monitor for total matches
func NewProgressMonitor(w io.Writer, total int) *ProgressMonitor {
	return &ProgressMonitor{
		w:         w,
		total:     max(total, 1),
		startTime: time.Now(),
	}
}

// OnMatch is called after each match completes. It is safe for concurrent
// use by simulator workers.
func (m *ProgressMonitor) OnMatch(completed int) {
	if m == nil {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	// workers report out of order
	if completed <= m.completed {
		return
	}
	m.completed = completed

	pct := min(completed*100/m.total, 100)
	targetDots := (pct * dotsTotal) / 100

	for ; m.dotsPrinted < targetDots; m.dotsPrinted++ {
		fmt.Fprint(m.w, ".")
	}
}

// Finish ends the progress line with the completion count and rate
func (m *ProgressMonitor) Finish() {
	if m == nil {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	elapsed := time.Since(m.startTime)
	rate := float64(m.completed) / max(elapsed.Seconds(), 0.001)
	fmt.Fprintf(m.w, " %d/%d matches (%.0f/sec)\n", m.completed, m.total, rate)
}
