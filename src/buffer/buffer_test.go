package buffer

import (
	"sync"
	"testing"
	"time"
)

func TestWindowEviction(t *testing.T) {
	b := New(10 * time.Second)
	base := time.Now()

	// Updates at t=0, t=5, t=12 with a 10s window: the t=0 sample must be
	// gone by t=12, the other two retained.
	b.Append(base, 1.0)
	b.Append(base.Add(5*time.Second), 2.0)
	b.Append(base.Add(12*time.Second), 3.0)

	snap := b.Snapshot(base.Add(12 * time.Second))
	if len(snap) != 2 {
		t.Fatalf("snapshot len = %d want 2", len(snap))
	}
	if snap[0].Values[0] != 2.0 || snap[1].Values[0] != 3.0 {
		t.Fatalf("unexpected retained values: %v %v", snap[0].Values, snap[1].Values)
	}
}

func TestBoundarySampleKept(t *testing.T) {
	b := New(10 * time.Second)
	base := time.Now()
	b.Append(base, 1.0)

	// Exactly at now-window: keep.
	snap := b.Snapshot(base.Add(10 * time.Second))
	if len(snap) != 1 {
		t.Fatalf("boundary sample evicted, snapshot len = %d", len(snap))
	}
	// One nanosecond past: drop.
	snap = b.Snapshot(base.Add(10*time.Second + time.Nanosecond))
	if len(snap) != 0 {
		t.Fatalf("expired sample retained, snapshot len = %d", len(snap))
	}
}

func TestSnapshotNeverStale(t *testing.T) {
	b := New(time.Second)
	base := time.Now()
	for i := 0; i < 100; i++ {
		b.Append(base.Add(time.Duration(i)*100*time.Millisecond), float64(i))
	}
	now := base.Add(10 * time.Second)
	cutoff := now.Add(-time.Second)
	for _, s := range b.Snapshot(now) {
		if s.At.Before(cutoff) {
			t.Fatalf("snapshot contains sample %v older than cutoff %v", s.At, cutoff)
		}
	}
}

func TestUnboundedRetainsEverything(t *testing.T) {
	b := New(0)
	base := time.Now()
	for i := 0; i < 1000; i++ {
		b.Append(base.Add(time.Duration(i)*time.Millisecond), float64(i), float64(-i))
	}
	snap := b.Snapshot(base.Add(time.Hour))
	if len(snap) != 1000 {
		t.Fatalf("unbounded buffer pruned: len = %d want 1000", len(snap))
	}
	if b.Len() != 1000 {
		t.Fatalf("Len = %d want 1000", b.Len())
	}
}

func TestSnapshotIsolation(t *testing.T) {
	b := New(0)
	b.Append(time.Now(), 1.0, 2.0)
	snap := b.Snapshot(time.Now())
	snap[0].Values[0] = 99

	again := b.Snapshot(time.Now())
	if again[0].Values[0] == 99 {
		t.Fatalf("snapshot aliases buffer storage")
	}
}

func TestAppendCopiesInput(t *testing.T) {
	b := New(0)
	vals := []float64{1, 2}
	b.Append(time.Now(), vals...)
	vals[0] = 42
	if got := b.Snapshot(time.Now())[0].Values[0]; got != 1 {
		t.Fatalf("buffer aliases caller slice: got %v", got)
	}
}

func TestCompactionPreservesOrder(t *testing.T) {
	b := New(50 * time.Millisecond)
	base := time.Now()
	// Enough churn to trigger the compaction path several times over.
	for i := 0; i < 5000; i++ {
		b.Append(base.Add(time.Duration(i)*time.Millisecond), float64(i))
	}
	snap := b.Snapshot(base.Add(5000 * time.Millisecond))
	for i := 1; i < len(snap); i++ {
		if snap[i].At.Before(snap[i-1].At) {
			t.Fatalf("order broken after compaction at %d", i)
		}
		if snap[i].Values[0] != snap[i-1].Values[0]+1 {
			t.Fatalf("value gap after compaction: %v then %v", snap[i-1].Values, snap[i].Values)
		}
	}
}

func TestConcurrentWriteAndSnapshot(t *testing.T) {
	b := New(100 * time.Millisecond)
	stop := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-stop:
				return
			default:
				b.Append(time.Now(), 1, 2, 3)
			}
		}
	}()
	go func() {
		defer wg.Done()
		for {
			select {
			case <-stop:
				return
			default:
				for _, s := range b.Snapshot(time.Now()) {
					if len(s.Values) != 3 {
						t.Errorf("torn sample: %v", s.Values)
						return
					}
				}
			}
		}
	}()
	time.Sleep(200 * time.Millisecond)
	close(stop)
	wg.Wait()
}
