package common

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
)

// Metrics accumulates search throughput counters. All methods are safe for
// concurrent use so the matcher can report from worker goroutines.
type Metrics struct {
	mu          sync.Mutex
	start       time.Time
	end         time.Time
	comparisons int64
	pairs       int64
	groups      int64
}

func NewMetrics() *Metrics {
	return &Metrics{}
}

func (m *Metrics) Start() {
	m.mu.Lock()
	if m.start.IsZero() {
		m.start = time.Now()
		m.end = time.Time{}
	}
	m.mu.Unlock()
}

func (m *Metrics) Stop() {
	m.mu.Lock()
	if !m.start.IsZero() && m.end.IsZero() {
		m.end = time.Now()
	}
	m.mu.Unlock()
}

// AddComparisons records catalog entries evaluated against one difference.
func (m *Metrics) AddComparisons(n int64) {
	if n <= 0 {
		return
	}
	m.mu.Lock()
	m.comparisons += n
	m.mu.Unlock()
}

func (m *Metrics) IncPair() {
	m.mu.Lock()
	m.pairs++
	m.mu.Unlock()
}

func (m *Metrics) IncGroup() {
	m.mu.Lock()
	m.groups++
	m.mu.Unlock()
}

func (m *Metrics) Snapshot() MetricsSnapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return MetricsSnapshot{
		Duration:    m.elapsedLocked(),
		Comparisons: m.comparisons,
		Pairs:       m.pairs,
		Groups:      m.groups,
	}
}

func (m *Metrics) elapsedLocked() time.Duration {
	if m.start.IsZero() {
		return 0
	}
	if !m.end.IsZero() {
		return m.end.Sub(m.start)
	}
	return time.Since(m.start)
}

type MetricsSnapshot struct {
	Duration    time.Duration
	Comparisons int64
	Pairs       int64
	Groups      int64
}

func (s MetricsSnapshot) ComparisonsPerSecond() float64 {
	if s.Duration <= 0 {
		return 0
	}
	return float64(s.Comparisons) / s.Duration.Seconds()
}

func formatProgressLine(s MetricsSnapshot) string {
	return fmt.Sprintf("Progress: %d groups, %d pairs, %d comparisons (%.0f/s)",
		s.Groups, s.Pairs, s.Comparisons, s.ComparisonsPerSecond())
}

// StartProgressPrinter periodically rewrites a progress line on w until the
// returned stop function is called.
func StartProgressPrinter(w io.Writer, m *Metrics, interval time.Duration) func() {
	if m == nil || w == nil {
		return func() {}
	}
	if interval <= 0 {
		interval = time.Second
	}
	done := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		lastLen := 0
		for {
			select {
			case <-ticker.C:
				line := formatProgressLine(m.Snapshot())
				pad := lastLen - len(line)
				if pad > 0 {
					line += strings.Repeat(" ", pad)
				}
				fmt.Fprintf(w, "\r%s", line)
				lastLen = len(line)
			case <-done:
				if lastLen > 0 {
					fmt.Fprintf(w, "\r%s\r\n", strings.Repeat(" ", lastLen))
				}
				return
			}
		}
	}()
	return func() {
		close(done)
		wg.Wait()
	}
}
