// Package buffer implements the time-windowed sample store that sits between
// a producer goroutine and a plot's render loop. One Buffer holds the samples
// of one drawn line, ordered by arrival time.
//
// The producer calls Append, the render loop calls Snapshot. Both only hold
// the mutex long enough to copy data in or out, so the producer never waits
// on rendering and the render loop never observes a torn write.
package buffer

import (
	"sync"
	"time"

	"github.com/nabeelsherazi/rtplot/src/types"
)

// Buffer is an append-only, optionally windowed sequence of samples.
// Safe for one writer and any number of snapshot readers.
type Buffer struct {
	mu     sync.Mutex
	window time.Duration // <= 0 means retain everything
	data   []types.Sample
	start  int // index of oldest retained sample within data
}

// New returns a buffer retaining the trailing window of samples. A window
// <= 0 retains all samples forever; the caller owns the memory consequence.
func New(window time.Duration) *Buffer {
	return &Buffer{window: window}
}

// Window reports the configured retention window (0 when unbounded).
func (b *Buffer) Window() time.Duration {
	if b.window < 0 {
		return 0
	}
	return b.window
}

// Append records values with the current timestamp and evicts samples that
// have slid out of the window. Amortized O(1): every sample is evicted at
// most once over its lifetime.
func (b *Buffer) Append(now time.Time, values ...float64) {
	v := make([]float64, len(values))
	copy(v, values)

	b.mu.Lock()
	b.data = append(b.data, types.Sample{At: now, Values: v})
	b.evictLocked(now)
	b.mu.Unlock()
}

// evictLocked advances start past samples older than the window. A sample
// exactly at now-window is kept. Storage is compacted once the dead prefix
// outgrows the live region, so memory stays proportional to the window.
func (b *Buffer) evictLocked(now time.Time) {
	if b.window <= 0 {
		return
	}
	cutoff := now.Add(-b.window)
	for b.start < len(b.data) && b.data[b.start].At.Before(cutoff) {
		b.data[b.start] = types.Sample{}
		b.start++
	}
	if b.start > len(b.data)/2 && b.start > 64 {
		live := len(b.data) - b.start
		copy(b.data, b.data[b.start:])
		b.data = b.data[:live]
		b.start = 0
	}
}

// Snapshot returns a copy of the currently windowed contents, safe to iterate
// without any lock. The cutoff is applied again here so a read between two
// writes never sees a sample staler than the window allows.
func (b *Buffer) Snapshot(now time.Time) []types.Sample {
	b.mu.Lock()
	b.evictLocked(now)
	out := make([]types.Sample, len(b.data)-b.start)
	copy(out, b.data[b.start:])
	b.mu.Unlock()
	return out
}

// Len reports how many samples are currently retained.
func (b *Buffer) Len() int {
	b.mu.Lock()
	n := len(b.data) - b.start
	b.mu.Unlock()
	return n
}
