// Package compositor paints animation frames of a single character into a
// sprite sheet.
//
// The sheet is a grid: each row holds one animation (see motion.Rows) and
// each column one time step. Every frame of a sheet is synthesized from the
// same base image, which is scaled from the source exactly once.
package compositor

import (
	"image"
	"image/draw"

	"github.com/bradfitz/iter"
	"github.com/golang/glog"

	"badc0de.net/pkg/go-spritesheet/frame"
	"badc0de.net/pkg/go-spritesheet/motion"
)

const (
	// Frames is the number of time steps in every animation row.
	Frames = 8
	// Rows is the number of animations on a sheet.
	Rows = 2

	Width  = frame.Width * Frames
	Height = frame.Height * Rows
)

// synthesizer renders a single frame out of the base image.
type synthesizer func(base *image.RGBA, t motion.Transform) *image.RGBA

// CellOrigin returns the top left corner of the cell holding frame i of row.
func CellOrigin(row motion.Row, i int) image.Point {
	return image.Pt(i*frame.Width, int(row)*frame.Height)
}

// Build turns a decoded source image into its sprite sheet.
func Build(src image.Image) *image.RGBA {
	base := frame.Contain(src)
	glog.V(1).Infof("compositor.Build: base %dx%d", base.Bounds().Dx(), base.Bounds().Dy())
	return CompositeSheet(base)
}

// CompositeSheet lays out every animation frame of base on a new, fully
// transparent sheet. base must already fit within a frame.
func CompositeSheet(base *image.RGBA) *image.RGBA {
	return compositeSheet(base, frame.Synthesize)
}

func compositeSheet(base *image.RGBA, synth synthesizer) *image.RGBA {
	sheet := image.NewRGBA(image.Rect(0, 0, Width, Height))

	for _, row := range motion.Rows[:Rows] {
		for i := range iter.N(Frames) {
			t := motion.Curve(row, i, Frames)
			if glog.V(2) {
				glog.Infof("compositor: %v frame %d: %v", row, i, t)
			}
			fr := synth(base, t)

			at := CellOrigin(row, i)
			dst := image.Rectangle{Min: at, Max: at.Add(frame.Bounds.Size())}
			draw.Draw(sheet, dst, fr, fr.Bounds().Min, draw.Src)
		}
	}

	return sheet
}
