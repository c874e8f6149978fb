// Package chartimg renders frames to raster images with go-chart. It is the
// default drawing backend: each frame becomes a chart.Chart, rendered to PNG
// and decoded back to an image.Image which is handed to a sink callback.
// Window management is somebody else's problem (see render/fynewin).
package chartimg

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"

	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/nabeelsherazi/rtplot/src/render"
	"github.com/nabeelsherazi/rtplot/src/statics"
	"github.com/nabeelsherazi/rtplot/src/style"
	"github.com/nabeelsherazi/rtplot/src/types"
)

// Sink receives each rendered frame image.
type Sink func(image.Image)

// Renderer implements render.Renderer by drawing into images.
type Renderer struct {
	width   int
	height  int
	sink    Sink
	showFPS bool
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithFPSOverlay draws the current frame rate in the corner of each frame.
func WithFPSOverlay() Option {
	return func(r *Renderer) { r.showFPS = true }
}

// New returns a renderer producing width x height images for sink. A nil
// sink is allowed; frames are then rendered and discarded, which is only
// useful in tests.
func New(width, height int, sink Sink, opts ...Option) *Renderer {
	if width <= 0 {
		width = 800
	}
	if height <= 0 {
		height = 600
	}
	r := &Renderer{width: width, height: height, sink: sink}
	for _, o := range opts {
		o(r)
	}
	return r
}

// Open implements render.Renderer. Image rendering needs no resources.
func (r *Renderer) Open() error { return nil }

// Close implements render.Renderer.
func (r *Renderer) Close() {}

// Render draws one frame and pushes it to the sink. A frame with no data yet
// yields a blank image and OK; a go-chart failure yields the blank fallback
// and Failed so the loop can count it.
func (r *Renderer) Render(f render.Frame) render.Result {
	img, err := r.RenderImage(f)
	if err != nil {
		if r.sink != nil {
			r.sink(blank(r.width, r.height))
		}
		if errors.Is(err, errNoData) {
			return render.Result{Outcome: render.OK}
		}
		return render.Result{Outcome: render.Failed, Err: err}
	}
	if r.sink != nil {
		r.sink(img)
	}
	return render.Result{Outcome: render.OK}
}

var errNoData = errors.New("no drawable data yet")

// RenderImage draws one frame to an image without touching the sink.
// Statics are emitted before live series so they sit underneath.
func (r *Renderer) RenderImage(f render.Frame) (image.Image, error) {
	bounds := f.Bounds
	if !bounds.Valid() {
		bounds = types.Bounds{XMin: -1, XMax: 1, YMin: -1, YMax: 1}
	}

	var series []chart.Series
	for _, e := range f.Statics {
		s, ok := staticSeries(e, bounds)
		if ok {
			series = append(series, s)
		}
	}
	live := 0
	for _, ds := range f.Series {
		if len(ds.X) == 0 {
			continue
		}
		series = append(series, liveSeries(ds, f.Styles))
		live++
	}
	if live == 0 && len(series) == 0 {
		return nil, errNoData
	}

	ch := chart.Chart{
		Title:  f.Title,
		Width:  r.width,
		Height: r.height,
		Background: chart.Style{
			Padding: chart.Box{Top: 14, Left: 16, Right: 12, Bottom: 28},
		},
		XAxis: chart.XAxis{
			Range: &chart.ContinuousRange{Min: bounds.XMin, Max: bounds.XMax},
			Ticks: buildTicks(bounds.XMin, bounds.XMax, 7),
		},
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: bounds.YMin, Max: bounds.YMax},
			Ticks: buildTicks(bounds.YMin, bounds.YMax, 6),
		},
		Series: series,
	}

	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("chart render: %w", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		return nil, fmt.Errorf("chart decode: %w", err)
	}
	if r.showFPS && f.FPS > 0 {
		img = drawOverlay(img, fmt.Sprintf("%.1f fps", f.FPS))
	}
	return img, nil
}

// liveSeries converts one projected series to a go-chart series, padding
// single points so go-chart's two-point minimum is met.
func liveSeries(ds types.DrawableSeries, styles []style.Line) chart.ContinuousSeries {
	st := style.Auto(ds.StyleIndex)
	if ds.StyleIndex < len(styles) {
		st = styles[ds.StyleIndex]
	}
	if ds.Marker {
		st.Marker = true
	}
	xs, ys := ds.X, ds.Y
	if len(xs) == 1 {
		xs = []float64{xs[0], xs[0] + 1e-9}
		ys = []float64{ys[0], ys[0]}
	}
	return chart.ContinuousSeries{
		Name:    ds.Name,
		XValues: xs,
		YValues: ys,
		Style:   chartStyle(st),
	}
}

// chartStyle maps a parsed line style onto go-chart's style struct. Marker
// styles render dots only, no connecting stroke.
func chartStyle(l style.Line) chart.Style {
	if l.Marker {
		return chart.Style{
			StrokeWidth: 0,
			DotWidth:    4,
			DotColor:    l.Color,
		}
	}
	return chart.Style{
		StrokeColor:     l.Color,
		StrokeWidth:     l.Width,
		StrokeDashArray: l.Dash,
	}
}

// staticSeries converts a static element into series form. Lines span the
// current bounds; circles are sampled as a polyline.
func staticSeries(e statics.Element, b types.Bounds) (chart.Series, bool) {
	st := chartStyle(e.Style)
	switch e.Kind {
	case statics.VLine:
		return chart.ContinuousSeries{
			XValues: []float64{e.X, e.X},
			YValues: []float64{b.YMin, b.YMax},
			Style:   st,
		}, true
	case statics.HLine:
		return chart.ContinuousSeries{
			XValues: []float64{b.XMin, b.XMax},
			YValues: []float64{e.Y, e.Y},
			Style:   st,
		}, true
	case statics.Rectangle:
		return chart.ContinuousSeries{
			XValues: []float64{e.X, e.X + e.Width, e.X + e.Width, e.X, e.X},
			YValues: []float64{e.Y, e.Y, e.Y + e.Height, e.Y + e.Height, e.Y},
			Style:   st,
		}, true
	case statics.Circle:
		const segments = 64
		xs := make([]float64, segments+1)
		ys := make([]float64, segments+1)
		for i := 0; i <= segments; i++ {
			a := 2 * math.Pi * float64(i) / segments
			xs[i] = e.X + e.Radius*math.Cos(a)
			ys[i] = e.Y + e.Radius*math.Sin(a)
		}
		return chart.ContinuousSeries{XValues: xs, YValues: ys, Style: st}, true
	case statics.Point:
		return chart.ContinuousSeries{
			XValues: []float64{e.X, e.X + 1e-9},
			YValues: []float64{e.Y, e.Y},
			Style:   st,
		}, true
	}
	return nil, false
}

// blank is the visible fallback when a frame cannot be drawn.
func blank(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{R: 18, G: 18, B: 18, A: 255})
		}
	}
	return img
}
