// Package render owns the per-plot render loop and the capability interface
// it drives. The loop wakes on a fixed interval, snapshots the plot's state,
// and hands one Frame to the Renderer. Everything pixel-shaped lives behind
// the Renderer interface; concrete backends are in subpackages.
package render

import (
	"github.com/nabeelsherazi/rtplot/src/statics"
	"github.com/nabeelsherazi/rtplot/src/style"
	"github.com/nabeelsherazi/rtplot/src/types"
)

// Outcome classifies one Render call.
type Outcome int

const (
	// OK means the frame was drawn.
	OK Outcome = iota
	// WindowClosed means the user closed the window; the loop shuts down
	// through the same path Quit takes.
	WindowClosed
	// Failed means this frame could not be drawn. The loop logs it and
	// continues; dropping a frame beats crashing the program.
	Failed
)

// Result is what a Renderer reports back for one frame.
type Result struct {
	Outcome Outcome
	Err     error
}

// Frame is one consistent snapshot handed to the renderer: projected live
// series, the static layer, resolved styles, and axis bounds. Statics draw
// below live series; that ordering is part of the contract.
type Frame struct {
	Title   string
	Series  []types.DrawableSeries
	Statics []statics.Element
	Styles  []style.Line
	Bounds  types.Bounds
	FPS     float64
}

// Renderer is the opaque drawing capability a plot renders through.
// Implementations must tolerate Close after a failed Open and double Close.
type Renderer interface {
	// Open acquires the backing resources (window, canvas). Called once,
	// before the first Render. An Open error aborts plot startup.
	Open() error
	// Render draws one frame and reports how it went.
	Render(Frame) Result
	// Close releases resources. Idempotent.
	Close()
}
