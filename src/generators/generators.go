// Package generators produces synthetic data streams for demos and tests:
// random walks, bouncing 2D paths, and sinusoids.
package generators

import (
	"math"
	"math/rand"

	"github.com/nabeelsherazi/rtplot/src/types"
)

// Walk is a 1D random walk starting at initial.
type Walk struct {
	x   float64
	rnd *rand.Rand
}

// NewWalk seeds a walk at initial.
func NewWalk(initial float64, seed int64) *Walk {
	return &Walk{x: initial, rnd: rand.New(rand.NewSource(seed))}
}

// Next steps the walk up or down by a small random amount.
func (w *Walk) Next() float64 {
	if w.rnd.Float64() > 0.5 {
		w.x += 0.1 * w.rnd.Float64()
	} else {
		w.x -= 0.1 * w.rnd.Float64()
	}
	return w.x
}

// Bounce walks a point inside +/- (XBound, YBound), reflecting at the edges
// and occasionally re-rolling its velocity.
type Bounce struct {
	XBound, YBound float64
	x, y, vx, vy   float64
	rnd            *rand.Rand
}

// NewBounce starts a bouncer at the origin with random velocity.
func NewBounce(xBound, yBound float64, seed int64) *Bounce {
	rnd := rand.New(rand.NewSource(seed))
	return &Bounce{
		XBound: xBound, YBound: yBound,
		vx:  0.5 + rnd.Float64()/2,
		vy:  0.5 + rnd.Float64()/2,
		rnd: rnd,
	}
}

// Next advances one step and returns the new position.
func (b *Bounce) Next() types.Point {
	if math.Abs(b.x) >= b.XBound {
		b.vx = -b.vx
	}
	if math.Abs(b.y) >= b.YBound {
		b.vy = -b.vy
	}
	if b.rnd.Float64() > 0.9 {
		speed := 0.5 + b.rnd.Float64()/2
		if b.rnd.Float64() >= 0.5 {
			b.vx = math.Copysign(speed, b.vx)
		} else {
			b.vy = math.Copysign(speed, b.vy)
		}
	}
	b.x += b.vx
	b.y += b.vy
	return types.Point{X: b.x, Y: b.y}
}

// Sinusoid yields A*sin(omega*phi) with phi advancing a fixed step per call.
type Sinusoid struct {
	A, Omega float64
	phi      float64
}

// NewSinusoid builds a sinusoid with amplitude a and angular frequency
// omega in radians.
func NewSinusoid(a, omega float64) *Sinusoid {
	return &Sinusoid{A: a, Omega: omega}
}

// Next advances the phase and returns the sample.
func (s *Sinusoid) Next() float64 {
	s.phi += 0.01
	return s.A * math.Sin(s.Omega*s.phi)
}
