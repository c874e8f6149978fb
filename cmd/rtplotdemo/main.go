// rtplotdemo feeds synthetic data into a live plot window.
//
// Usage:
//
//	rtplotdemo -kind timeseries -window 10
//	rtplotdemo -kind xy
//	rtplotdemo -kind z3d -window 5
//
// The Fyne event loop must own the main goroutine, so the plot and its
// producer run on the side and quit the app when the plot stops (including
// when the user closes the window).
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"time"

	"fyne.io/fyne/v2/app"

	"github.com/nabeelsherazi/rtplot/src/generators"
	"github.com/nabeelsherazi/rtplot/src/logging"
	"github.com/nabeelsherazi/rtplot/src/rtplot"
	"github.com/nabeelsherazi/rtplot/src/statics"
	"github.com/nabeelsherazi/rtplot/src/style"
	"github.com/nabeelsherazi/rtplot/src/types"
)

func main() {
	kind := flag.String("kind", "timeseries", "plot kind: timeseries, xy, or z3d")
	window := flag.Float64("window", 10, "seconds of trailing data to show; 0 shows everything")
	rate := flag.Float64("rate", 30, "target frame rate in Hz")
	feedHz := flag.Float64("feed", 100, "producer update rate in Hz")
	logLevel := flag.String("loglevel", "info", "log level: debug, info, warn, error")
	flag.Parse()

	logging.SetLevel(*logLevel)

	a := app.New()
	go func() {
		defer a.Quit()
		if err := run(*kind, *window, *rate, *feedHz); err != nil {
			fmt.Fprintf(os.Stderr, "rtplotdemo: %v\n", err)
		}
	}()
	a.Run()
}

func run(kind string, window, rate, feedHz float64) error {
	cfg := rtplot.Config{
		SecondsToShow: window,
		RefreshRate:   rate,
	}
	feed := time.NewTicker(time.Duration(float64(time.Second) / feedHz))
	defer feed.Stop()

	switch kind {
	case "timeseries":
		cfg.LineStyles = []string{"r-", "b-"}
		ts, err := rtplot.NewTimeSeries(cfg)
		if err != nil {
			return err
		}
		if _, err := ts.AddStatic(statics.HLine, statics.Params{"y": 0.0}, style.BlackLine); err != nil {
			return err
		}
		sin := generators.NewSinusoid(1, 2*math.Pi)
		walk := generators.NewWalk(0, time.Now().UnixNano())
		return rtplot.With(ts, func() error {
			for ts.Running() {
				<-feed.C
				ts.Update(sin.Next(), walk.Next())
			}
			return ts.Err()
		})

	case "xy":
		cfg.LineStyle = "g-"
		xy, err := rtplot.NewXY(cfg)
		if err != nil {
			return err
		}
		if _, err := xy.AddStatic(statics.Rectangle, statics.Params{
			"x": -10.0, "y": -10.0, "width": 20.0, "height": 20.0,
		}); err != nil {
			return err
		}
		bounce := generators.NewBounce(10, 10, time.Now().UnixNano())
		return rtplot.With(xy, func() error {
			for xy.Running() {
				<-feed.C
				xy.Update(bounce.Next())
			}
			return xy.Err()
		})

	case "z3d":
		z, err := rtplot.NewZ3D(cfg)
		if err != nil {
			return err
		}
		var t float64
		return rtplot.With(z, func() error {
			for z.Running() {
				<-feed.C
				t += 0.02
				z.Update(types.Point3{
					X: math.Cos(t),
					Y: math.Sin(t),
					Z: t / 10,
				})
			}
			return z.Err()
		})
	}
	return fmt.Errorf("unknown plot kind %q", kind)
}
