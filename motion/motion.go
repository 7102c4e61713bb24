// Package motion computes the per-frame transform parameters for the
// procedural animations placed on a sprite sheet.
//
// Each animation is one full cycle spread over a row of frames. Frame i of n
// sits at phase θ = (i / n) · 2π, and every parameter is a closed-form
// trigonometric function of θ.
package motion

import (
	"fmt"
	"math"
)

// Row identifies an animation row on the sheet. The numeric value is the row
// index on the sheet.
type Row int

const (
	// Idle is a gentle vertical bob with a slight tilt.
	Idle Row = iota
	// Walk sways sideways, bobs twice per cycle for the footfalls and leans
	// with a phase shift.
	Walk

	RowLast
)

// Rows lists the animation rows in sheet order.
var Rows = []Row{Idle, Walk}

func (r Row) String() string {
	switch r {
	case Idle:
		return "idle"
	case Walk:
		return "walk"
	default:
		return fmt.Sprintf("Row(%d)", int(r))
	}
}

// Transform describes where and how a single frame places the base image.
//
// DX and DY are pixel offsets; they may be fractional and are truncated
// toward zero when placed on the pixel grid. Rotation is in degrees, positive
// meaning counter-clockwise.
type Transform struct {
	DX, DY   float64
	Rotation float64
}

func (t Transform) String() string {
	return fmt.Sprintf("dx=%.3f dy=%.3f rot=%.3f°", t.DX, t.DY, t.Rotation)
}

// Phase returns the position of frame i within a cycle of n frames, in
// radians.
func Phase(i, n int) float64 {
	return (float64(i) / float64(n)) * 2 * math.Pi
}

// IdleAt returns the idle transform at phase theta.
func IdleAt(theta float64) Transform {
	return Transform{
		DX:       0,
		DY:       math.Sin(theta) * 4,
		Rotation: math.Sin(theta) * 1.5,
	}
}

// WalkAt returns the walk transform at phase theta.
func WalkAt(theta float64) Transform {
	return Transform{
		DX:       math.Sin(theta) * 8,
		DY:       math.Cos(theta*2) * 5,
		Rotation: math.Sin(theta+math.Pi/4) * 4,
	}
}

// Curve returns the transform for frame i of n on the passed row. Unknown
// rows produce the identity transform.
func Curve(row Row, i, n int) Transform {
	theta := Phase(i, n)
	switch row {
	case Idle:
		return IdleAt(theta)
	case Walk:
		return WalkAt(theta)
	default:
		return Transform{}
	}
}
