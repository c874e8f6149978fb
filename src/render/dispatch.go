package render

import "sync"

// Some GUI backends require every draw call to come from a single thread.
// Serialize routes all renderer calls through one process-wide dispatch
// goroutine for such backends. Only the draw call is serialized: each plot's
// buffers, windowing, and loop scheduling stay fully independent, so this is
// the one deliberate exception to per-plot isolation.

var (
	dispatchOnce sync.Once
	dispatchCh   chan func()
)

// dispatch runs fn on the dispatch goroutine and waits for it to finish.
func dispatch(fn func()) {
	dispatchOnce.Do(func() {
		dispatchCh = make(chan func())
		go func() {
			for f := range dispatchCh {
				f()
			}
		}()
	})
	done := make(chan struct{})
	dispatchCh <- func() {
		defer close(done)
		fn()
	}
	<-done
}

type serialized struct {
	r Renderer
}

// Serialize wraps r so Open, Render, and Close all execute on the shared
// dispatch goroutine. Wrap every renderer of a single-thread-affine backend;
// mixing wrapped and unwrapped renderers of such a backend is not safe.
func Serialize(r Renderer) Renderer {
	return &serialized{r: r}
}

func (s *serialized) Open() error {
	var err error
	dispatch(func() { err = s.r.Open() })
	return err
}

func (s *serialized) Render(f Frame) Result {
	var res Result
	dispatch(func() { res = s.r.Render(f) })
	return res
}

func (s *serialized) Close() {
	dispatch(func() { s.r.Close() })
}
