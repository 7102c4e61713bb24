// Package frame builds individual animation frames out of a base image.
//
// A frame is a fixed-size transparent canvas holding one rotated and
// translated copy of the base image. Rotation keeps the source bounds, so
// rotated corners are clipped; pasting clips at the canvas edges.
package frame

import (
	"image"
	"image/draw"
	"math"

	"github.com/golang/glog"
	"github.com/nfnt/resize"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/f64"

	"badc0de.net/pkg/go-spritesheet/motion"
)

const (
	Width  = 256
	Height = 256
)

// Bounds is the rectangle covered by every frame.
var Bounds = image.Rect(0, 0, Width, Height)

// ToRGBA returns img as an *image.RGBA whose bounds start at the origin.
//
// An *image.RGBA already anchored at the origin is returned as is.
func ToRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Bounds().Min == image.ZP {
		return rgba
	}
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	return rgba
}

// ContainSize returns the largest size with the aspect ratio of w x h that
// fits within maxW x maxH. Rounded dimensions follow round-half-to-even and
// never drop below one pixel.
func ContainSize(w, h, maxW, maxH int) (int, int) {
	if w <= 0 || h <= 0 {
		return 0, 0
	}
	srcRatio := float64(w) / float64(h)
	dstRatio := float64(maxW) / float64(maxH)
	outW, outH := maxW, maxH
	switch {
	case srcRatio > dstRatio:
		outH = int(math.RoundToEven(float64(h) / float64(w) * float64(maxW)))
	case srcRatio < dstRatio:
		outW = int(math.RoundToEven(float64(w) / float64(h) * float64(maxH)))
	}
	if outW < 1 {
		outW = 1
	}
	if outH < 1 {
		outH = 1
	}
	return outW, outH
}

// Contain scales img, preserving its aspect ratio, so that it fits the frame
// exactly along one axis. Smaller images are scaled up.
func Contain(img image.Image) *image.RGBA {
	src := ToRGBA(img)
	sz := src.Bounds().Size()
	w, h := ContainSize(sz.X, sz.Y, Width, Height)
	if w == 0 || h == 0 {
		return image.NewRGBA(image.Rect(0, 0, 0, 0))
	}
	if w == sz.X && h == sz.Y {
		return src
	}
	glog.V(2).Infof("frame.Contain: %dx%d -> %dx%d", sz.X, sz.Y, w, h)
	return ToRGBA(resize.Resize(uint(w), uint(h), src, resize.Bicubic))
}

// rotationAbout returns the source-to-destination affine transform rotating
// by deg degrees counter-clockwise about (cx, cy) on a y-down grid.
func rotationAbout(deg, cx, cy float64) f64.Aff3 {
	rad := deg * math.Pi / 180
	sin, cos := math.Sincos(rad)
	return f64.Aff3{
		cos, sin, cx - cos*cx - sin*cy,
		-sin, cos, cy + sin*cx - cos*cy,
	}
}

// Rotate rotates img about its center by deg degrees, counter-clockwise,
// using Catmull-Rom resampling. The result has the same bounds as img;
// anything rotated outside of them is lost and uncovered pixels are
// transparent.
func Rotate(img *image.RGBA, deg float64) *image.RGBA {
	b := img.Bounds()
	out := image.NewRGBA(b)
	if deg == 0 {
		draw.Draw(out, b, img, b.Min, draw.Src)
		return out
	}
	cx := float64(b.Min.X) + float64(b.Dx())/2
	cy := float64(b.Min.Y) + float64(b.Dy())/2
	xdraw.CatmullRom.Transform(out, rotationAbout(deg, cx, cy), img, b, xdraw.Src, nil)
	return out
}

// Synthesize renders one frame: base rotated by t.Rotation, pasted at the
// truncated offset (t.DX, t.DY) onto a transparent canvas using its own alpha
// as the mask.
func Synthesize(base *image.RGBA, t motion.Transform) *image.RGBA {
	canvas := image.NewRGBA(Bounds)
	rotated := Rotate(base, t.Rotation)

	at := image.Pt(int(t.DX), int(t.DY))
	dst := rotated.Bounds().Sub(rotated.Bounds().Min).Add(at)
	draw.Draw(canvas, dst, rotated, rotated.Bounds().Min, draw.Over)
	return canvas
}
