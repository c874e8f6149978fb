// Package rtplot is the public face of the library: real-time plots that a
// producer feeds at any rate while each plot's own render loop redraws a
// sliding window of the data at a fixed frame rate. The producer never waits
// on rendering and rendering never waits on the producer.
//
// Three plot kinds exist: TimeSeries (values over time), XY (2D points), and
// Z3D (3D points). All share the same lifecycle:
//
//	ts, err := rtplot.NewTimeSeries(rtplot.Config{SecondsToShow: 10})
//	if err != nil { ... }
//	if err := ts.Start(); err != nil { ... }
//	defer ts.Quit()
//	for v := range produce() {
//	    ts.Update(v)
//	}
//
// or, scoped:
//
//	err := rtplot.With(ts, func() error {
//	    for v := range produce() {
//	        ts.Update(v)
//	    }
//	    return nil
//	})
package rtplot

import (
	"errors"
	"sync"
	"time"

	"github.com/nabeelsherazi/rtplot/src/buffer"
	"github.com/nabeelsherazi/rtplot/src/render"
	"github.com/nabeelsherazi/rtplot/src/render/fynewin"
	"github.com/nabeelsherazi/rtplot/src/statics"
	"github.com/nabeelsherazi/rtplot/src/style"
	"github.com/nabeelsherazi/rtplot/src/types"
)

// Version of the library, shown in window titles.
const Version = "0.1.0"

// DefaultRefreshRate is the render loop frequency in Hz when the config
// leaves it zero.
const DefaultRefreshRate = 10.0

// boundsMargin is the fraction of the data range padded onto auto-ranged
// axis bounds.
const boundsMargin = 0.1

// Config holds the options common to all plot kinds. The zero value is
// usable: unbounded retention, one auto-styled line inferred from the first
// update, a Fyne window renderer.
type Config struct {
	// SecondsToShow is the sliding window of trailing data to retain and
	// draw. Zero or negative retains and draws everything; the caller owns
	// the memory cost of a long unbounded run.
	SecondsToShow float64

	// LineStyle styles the first line ("b-", "r--", "ko", ...). The line
	// count is still inferred from the first update.
	LineStyle string

	// LineStyles styles each line and fixes the line count up front.
	// Mutually exclusive with LineStyle.
	LineStyles []string

	// RefreshRate is the target frame rate in Hz. Default 10.
	RefreshRate float64

	// Title labels the window. Default is derived from the plot kind.
	Title string

	// PinnedBounds disables auto-ranging and draws exactly this view.
	PinnedBounds *types.Bounds

	// Renderer overrides the drawing backend. Default is a Fyne window,
	// which requires a running Fyne app.
	Renderer render.Renderer

	// Width and Height size the default window in pixels.
	Width, Height int
}

// projector is the variant-specific part of a plot: validate and shape one
// update, and turn buffer snapshots into drawable series plus axis bounds.
type projector interface {
	kind() string
	project(now time.Time, snaps [][]types.Sample, window time.Duration) ([]types.DrawableSeries, types.Bounds)
}

// plot is the shared machinery behind TimeSeries, XY, and Z3D. One producer
// goroutine writes, the plot's render loop reads snapshots; the mutex guards
// only the small shared fields, never a render call.
type plot struct {
	cfg     Config
	proj    projector
	dims    int // scalars per line per update: 1, 2, or 3
	window  time.Duration
	statics *statics.Layer

	mu      sync.Mutex
	styles  []style.Line
	fixedN  bool // line count fixed by LineStyles
	nLines  int  // 0 until configured or inferred
	buffers []*buffer.Buffer
	started bool
	stopped bool
	loop    *render.Loop
}

func newPlot(proj projector, dims int, cfg Config) (*plot, error) {
	p := &plot{
		cfg:     cfg,
		proj:    proj,
		dims:    dims,
		statics: statics.NewLayer(),
	}
	if cfg.SecondsToShow > 0 {
		p.window = time.Duration(cfg.SecondsToShow * float64(time.Second))
	}
	switch {
	case len(cfg.LineStyles) > 0:
		if cfg.LineStyle != "" {
			return nil, configErr("LineStyle and LineStyles are mutually exclusive")
		}
		parsed, err := style.ParseAll(cfg.LineStyles)
		if err != nil {
			return nil, configWrap("line styles", err)
		}
		p.styles = parsed
		p.fixedN = true
		p.setLineCountLocked(len(parsed))
	case cfg.LineStyle != "":
		parsed, err := style.Parse(cfg.LineStyle)
		if err != nil {
			return nil, configWrap("line style", err)
		}
		p.styles = []style.Line{parsed}
	}
	return p, nil
}

// setLineCountLocked fixes the line count and creates one buffer per line.
// Callers hold p.mu (or are still inside the constructor).
func (p *plot) setLineCountLocked(n int) {
	p.nLines = n
	p.buffers = make([]*buffer.Buffer, n)
	for i := range p.buffers {
		p.buffers[i] = buffer.New(p.window)
	}
}

// write validates the row count against the established line count and
// appends one row per line, all stamped with the same timestamp. Writes
// after Quit are silently ignored so producer loops that do not poll stop
// state keep working. Writes before Start are buffered.
func (p *plot) write(rows [][]float64) error {
	if len(rows) == 0 {
		return configErr("update carried no data")
	}
	now := time.Now()

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.stopped {
		return nil
	}
	if p.nLines == 0 {
		p.setLineCountLocked(len(rows))
	} else if len(rows) != p.nLines {
		return configErr("inconsistent number of lines: expected %d but update contained %d", p.nLines, len(rows))
	}
	for _, row := range rows {
		if len(row) != p.dims {
			return configErr("each %s point needs %d coordinates, got %d", p.proj.kind(), p.dims, len(row))
		}
	}
	for i, row := range rows {
		p.buffers[i].Append(now, row...)
	}
	return nil
}

// Start spins up the render loop. A second Start, or a Start after Quit,
// fails with a LifecycleError. A renderer that cannot open its resources
// fails Start directly.
func (p *plot) Start() error {
	p.mu.Lock()
	if p.started {
		p.mu.Unlock()
		return &LifecycleError{Op: "start", Reason: "plot already started"}
	}
	if p.stopped {
		p.mu.Unlock()
		return &LifecycleError{Op: "start", Reason: "plot was stopped"}
	}
	p.started = true

	r := p.cfg.Renderer
	if r == nil {
		w, h := p.cfg.Width, p.cfg.Height
		if w <= 0 {
			w = 800
		}
		if h <= 0 {
			h = 600
		}
		r = fynewin.New(p.title(), w, h)
	}
	rate := p.cfg.RefreshRate
	if rate <= 0 {
		rate = DefaultRefreshRate
	}
	p.loop = render.NewLoop(r, p.snapshotFrame, time.Duration(float64(time.Second)/rate))
	loop := p.loop
	p.mu.Unlock()

	if err := loop.Start(); err != nil {
		p.mu.Lock()
		p.stopped = true
		p.mu.Unlock()
		return err
	}
	return nil
}

// Quit stops the render loop and releases the window, returning only after
// the loop goroutine has exited. Idempotent, safe from any goroutine, and
// converges with a user-closed window to the same terminal state. A fatal
// backend error that killed the loop earlier is reported here as well.
func (p *plot) Quit() error {
	p.mu.Lock()
	p.stopped = true
	loop := p.loop
	p.mu.Unlock()

	if loop == nil {
		return nil
	}
	return errors.Join(loop.Quit(), loop.Err())
}

// Err returns the fatal backend error that terminated the render loop, if
// any. Transient dropped frames never show up here.
func (p *plot) Err() error {
	p.mu.Lock()
	loop := p.loop
	p.mu.Unlock()
	if loop == nil {
		return nil
	}
	return loop.Err()
}

// Running reports whether the render loop is currently alive. It goes false
// on its own when the user closes the window.
func (p *plot) Running() bool {
	p.mu.Lock()
	loop := p.loop
	p.mu.Unlock()
	return loop != nil && loop.Running()
}

// AddStatic adds a fixed decoration drawn on every frame, below the live
// series and untouched by the sliding window. Shortcut bundles merge into
// params with params winning. The returned handle removes it again.
func (p *plot) AddStatic(kind statics.Kind, params statics.Params, bundles ...style.Bundle) (statics.Handle, error) {
	h, err := p.statics.Add(kind, params, bundles...)
	if err != nil {
		return statics.Handle{}, configWrap("static", err)
	}
	return h, nil
}

// RemoveStatic removes a previously added static element.
func (p *plot) RemoveStatic(h statics.Handle) { p.statics.Remove(h) }

func (p *plot) title() string {
	if p.cfg.Title != "" {
		return p.cfg.Title
	}
	return "rtplot " + Version + ": " + p.proj.kind()
}

// snapshotFrame assembles one consistent frame for the render loop. It holds
// the plot mutex only long enough to copy the buffer list; the per-buffer
// snapshots then take each buffer's own lock briefly.
func (p *plot) snapshotFrame(now time.Time) render.Frame {
	p.mu.Lock()
	bufs := make([]*buffer.Buffer, len(p.buffers))
	copy(bufs, p.buffers)
	styles := make([]style.Line, len(p.styles))
	copy(styles, p.styles)
	p.mu.Unlock()

	snaps := make([][]types.Sample, len(bufs))
	for i, b := range bufs {
		snaps[i] = b.Snapshot(now)
	}
	series, bounds := p.proj.project(now, snaps, p.window)
	if p.cfg.PinnedBounds != nil {
		bounds = *p.cfg.PinnedBounds
	}
	return render.Frame{
		Title:   p.title(),
		Series:  series,
		Statics: p.statics.Snapshot(),
		Styles:  styles,
		Bounds:  bounds,
	}
}

// Plot is the lifecycle surface every plot kind shares.
type Plot interface {
	Start() error
	Quit() error
}

// With runs fn between Start and a guaranteed Quit: the plot is stopped
// exactly once even when fn returns an error or panics.
func With(p Plot, fn func() error) (err error) {
	if err = p.Start(); err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, p.Quit())
	}()
	return fn()
}
