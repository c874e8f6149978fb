package render

import (
	"sync"
	"testing"
	"time"
)

// threadCheckRenderer fails the test if two calls ever overlap.
type threadCheckRenderer struct {
	mu     sync.Mutex
	active bool
	calls  int
	t      *testing.T
}

func (r *threadCheckRenderer) enter() {
	r.mu.Lock()
	if r.active {
		r.t.Errorf("overlapping renderer calls through dispatch queue")
	}
	r.active = true
	r.calls++
	r.mu.Unlock()
	time.Sleep(time.Millisecond)
	r.mu.Lock()
	r.active = false
	r.mu.Unlock()
}

func (r *threadCheckRenderer) Open() error { r.enter(); return nil }
func (r *threadCheckRenderer) Render(Frame) Result {
	r.enter()
	return Result{Outcome: OK}
}
func (r *threadCheckRenderer) Close() { r.enter() }

func TestSerializeNeverOverlaps(t *testing.T) {
	inner := &threadCheckRenderer{t: t}
	// Several plots sharing one affine backend, each with its own wrapper.
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s := Serialize(inner)
			if err := s.Open(); err != nil {
				t.Errorf("Open: %v", err)
			}
			for j := 0; j < 5; j++ {
				s.Render(Frame{})
			}
			s.Close()
		}()
	}
	wg.Wait()
	inner.mu.Lock()
	defer inner.mu.Unlock()
	if inner.calls != 4*(5+2) {
		t.Fatalf("calls = %d want %d", inner.calls, 4*7)
	}
}

func TestSerializeReturnsResults(t *testing.T) {
	fr := &fakeRenderer{outcomes: []Result{{Outcome: WindowClosed}}}
	s := Serialize(fr)
	if res := s.Render(Frame{}); res.Outcome != WindowClosed {
		t.Fatalf("result not propagated through dispatch: %+v", res)
	}
}
