package render

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/nabeelsherazi/rtplot/src/logging"
)

// FailureThreshold is the number of consecutive failed frames after which
// the loop gives up and exits with a backend error.
const FailureThreshold = 30

// DefaultJoinTimeout bounds how long Quit waits for the loop goroutine
// before abandoning it.
const DefaultJoinTimeout = 5 * time.Second

// ErrAlreadyStarted is returned by Start on a loop that is or was running.
var ErrAlreadyStarted = errors.New("render loop already started")

// ErrJoinTimeout is returned by Quit when the loop goroutine failed to exit
// within the join timeout. Resources are abandoned, not leaked twice.
var ErrJoinTimeout = errors.New("render loop did not exit before join timeout")

// Snapshotter produces one consistent frame for the given instant. It is
// called on the loop goroutine and must not block on the producer.
type Snapshotter func(now time.Time) Frame

// Loop drives one Renderer at a fixed frame interval on its own goroutine.
// A Loop is single-use: Idle until Start, Running until Quit or an
// autonomous stop (window closed, repeated backend failure), then Stopped.
type Loop struct {
	renderer Renderer
	snapshot Snapshotter
	interval time.Duration

	joinTimeout time.Duration

	mu      sync.Mutex
	started bool

	quitOnce sync.Once
	quit     chan struct{}
	done     chan struct{}

	errMu sync.Mutex
	err   error
}

// NewLoop wires a loop to its renderer and snapshot source. interval is the
// target frame interval.
func NewLoop(r Renderer, snap Snapshotter, interval time.Duration) *Loop {
	if interval <= 0 {
		interval = 100 * time.Millisecond
	}
	return &Loop{
		renderer:    r,
		snapshot:    snap,
		interval:    interval,
		joinTimeout: DefaultJoinTimeout,
		quit:        make(chan struct{}),
		done:        make(chan struct{}),
	}
}

// Start opens the renderer and launches the tick goroutine. Calling Start
// twice, or after Quit, returns ErrAlreadyStarted. An Open failure leaves
// the loop stopped and is returned directly.
func (l *Loop) Start() error {
	l.mu.Lock()
	if l.started {
		l.mu.Unlock()
		return ErrAlreadyStarted
	}
	l.started = true
	l.mu.Unlock()

	if err := l.renderer.Open(); err != nil {
		l.renderer.Close()
		close(l.done)
		return fmt.Errorf("open renderer: %w", err)
	}
	go l.run()
	return nil
}

// run is the loop goroutine. Ticker cadence keeps frames on a fixed
// schedule rather than sleep-then-render, so drift does not accumulate.
func (l *Loop) run() {
	defer close(l.done)
	defer l.renderer.Close()

	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	var consecutiveFailures int
	lastFrame := time.Now()

	for {
		select {
		case <-l.quit:
			return
		case now := <-ticker.C:
			frame := l.snapshot(now)
			if dt := now.Sub(lastFrame); dt > 0 {
				frame.FPS = 1 / dt.Seconds()
			}
			lastFrame = now

			res := l.renderer.Render(frame)
			switch res.Outcome {
			case OK:
				consecutiveFailures = 0
			case WindowClosed:
				logging.Debugf("render loop: window closed, stopping")
				return
			case Failed:
				consecutiveFailures++
				logging.Warnf("render loop: frame dropped (%d consecutive): %v", consecutiveFailures, res.Err)
				if consecutiveFailures >= FailureThreshold {
					l.setErr(fmt.Errorf("renderer failed %d consecutive frames: %w", consecutiveFailures, res.Err))
					logging.Errorf("render loop: giving up: %v", l.Err())
					return
				}
			}
		}
	}
}

// Quit signals the loop to exit at its next tick boundary and blocks until
// the goroutine has fully exited, so no render call happens after Quit
// returns. Idempotent and safe from any goroutine, including concurrently
// with an in-flight producer update.
func (l *Loop) Quit() error {
	l.mu.Lock()
	started := l.started
	l.mu.Unlock()

	l.quitOnce.Do(func() { close(l.quit) })

	if !started {
		// Never ran; nothing to join.
		return nil
	}
	select {
	case <-l.done:
		return nil
	case <-time.After(l.joinTimeout):
		logging.Errorf("render loop: %v", ErrJoinTimeout)
		return ErrJoinTimeout
	}
}

// Done is closed once the loop goroutine has exited, whether through Quit,
// a closed window, or a fatal backend error.
func (l *Loop) Done() <-chan struct{} { return l.done }

// Running reports whether the loop goroutine is currently alive.
func (l *Loop) Running() bool {
	l.mu.Lock()
	started := l.started
	l.mu.Unlock()
	if !started {
		return false
	}
	select {
	case <-l.done:
		return false
	default:
		return true
	}
}

// Err returns the fatal backend error that terminated the loop, if any.
func (l *Loop) Err() error {
	l.errMu.Lock()
	defer l.errMu.Unlock()
	return l.err
}

func (l *Loop) setErr(err error) {
	l.errMu.Lock()
	l.err = err
	l.errMu.Unlock()
}
