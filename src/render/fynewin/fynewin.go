// Package fynewin displays rendered frames in a live Fyne window. Drawing is
// delegated to chartimg; this backend only owns the window, pushes each image
// into a canvas, and reports when the user closes the window.
//
// Fyne requires all widget mutation to happen on its event loop, so updates
// go through fyne.Do, which is Fyne's own dispatch queue. Backends without
// such a queue should be wrapped with render.Serialize instead. The caller must have
// a Fyne app running on the main goroutine (app.New + a.Run); Open fails
// otherwise.
package fynewin

import (
	"errors"
	"image"
	"sync"
	"sync/atomic"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"

	"github.com/nabeelsherazi/rtplot/src/render"
	"github.com/nabeelsherazi/rtplot/src/render/chartimg"
)

// ErrNoApp is returned from Open when no Fyne app exists in the process.
var ErrNoApp = errors.New("no fyne app is running; create one with app.New and run it on the main goroutine")

// Window is a render.Renderer backed by one Fyne window.
type Window struct {
	title  string
	width  int
	height int

	chart *chartimg.Renderer

	win       fyne.Window
	img       *canvas.Image
	closed    atomic.Bool
	closeOnce sync.Once
}

// New returns a window renderer with the given title and pixel size.
func New(title string, width, height int) *Window {
	w := &Window{title: title, width: width, height: height}
	w.chart = chartimg.New(width, height, w.show, chartimg.WithFPSOverlay())
	return w
}

// Open creates and shows the window. Must be called before Render, which the
// render loop guarantees.
func (w *Window) Open() error {
	a := fyne.CurrentApp()
	if a == nil {
		return ErrNoApp
	}
	fyne.DoAndWait(func() {
		w.win = a.NewWindow(w.title)
		w.img = canvas.NewImageFromImage(image.NewRGBA(image.Rect(0, 0, w.width, w.height)))
		w.img.FillMode = canvas.ImageFillContain
		w.win.SetContent(w.img)
		w.win.Resize(fyne.NewSize(float32(w.width), float32(w.height)))
		w.win.SetCloseIntercept(func() {
			w.closed.Store(true)
			w.win.Close()
		})
		w.win.Show()
	})
	return nil
}

// Render draws the frame into the window. Once the user has closed the
// window, every subsequent call reports WindowClosed so the loop can shut
// itself down through the usual path.
func (w *Window) Render(f render.Frame) render.Result {
	if w.closed.Load() {
		return render.Result{Outcome: render.WindowClosed}
	}
	return w.chart.Render(f)
}

// show is the chartimg sink: hand the finished image to the canvas on the
// Fyne event loop. Fire and forget; the render loop must not wait on the UI.
func (w *Window) show(img image.Image) {
	if w.closed.Load() {
		return
	}
	fyne.Do(func() {
		w.img.Image = img
		w.img.Refresh()
	})
}

// Close hides and releases the window. Idempotent; also safe when the user
// already closed it.
func (w *Window) Close() {
	w.closeOnce.Do(func() {
		if w.win == nil {
			return
		}
		w.closed.Store(true)
		fyne.DoAndWait(func() { w.win.Close() })
	})
}
