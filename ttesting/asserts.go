// Package ttesting contains assertion helpers shared by the package tests.
//
// Every helper runs as a named subtest, so a failing assertion shows up under
// its own name in the test output.
package ttesting

import (
	"image"
	"math"
	"testing"
)

func AssertEqualInt(t *testing.T, name string, got, want int) {
	t.Helper()
	t.Run(name, func(t *testing.T) {
		if got != want {
			t.Errorf("got %d; want %d", got, want)
		}
	})
}

// AssertNear checks that got is within delta of want.
func AssertNear(t *testing.T, name string, got, want, delta float64) {
	t.Helper()
	t.Run(name, func(t *testing.T) {
		if math.IsNaN(got) || math.Abs(got-want) > delta {
			t.Errorf("got %v; want %v±%v", got, want, delta)
		}
	})
}

func AssertEqualPoint(t *testing.T, name string, got, want image.Point) {
	t.Helper()
	t.Run(name, func(t *testing.T) {
		if got != want {
			t.Errorf("got %v; want %v", got, want)
		}
	})
}

// AssertSize checks the size of an image's bounds.
func AssertSize(t *testing.T, name string, img image.Image, wantW, wantH int) {
	t.Helper()
	t.Run(name, func(t *testing.T) {
		if img == nil {
			t.Fatalf("got nil image; want %dx%d", wantW, wantH)
		}
		if sz := img.Bounds().Size(); sz.X != wantW || sz.Y != wantH {
			t.Errorf("got %dx%d; want %dx%d", sz.X, sz.Y, wantW, wantH)
		}
	})
}

// AssertAlpha checks the 8-bit alpha of the pixel at x, y.
func AssertAlpha(t *testing.T, name string, img image.Image, x, y int, want uint8) {
	t.Helper()
	t.Run(name, func(t *testing.T) {
		_, _, _, a := img.At(x, y).RGBA()
		if got := uint8(a >> 8); got != want {
			t.Errorf("alpha at (%d,%d): got %d; want %d", x, y, got, want)
		}
	})
}
