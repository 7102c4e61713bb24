package frame

import (
	"image"
	"image/color"
	"image/draw"
	"testing"

	"badc0de.net/pkg/go-spritesheet/motion"
	"badc0de.net/pkg/go-spritesheet/ttesting"
)

func solid(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), &image.Uniform{c}, image.ZP, draw.Src)
	return img
}

var red = color.RGBA{0xff, 0, 0, 0xff}

func TestContainSize(t *testing.T) {
	tests := []struct {
		name         string
		w, h         int
		wantW, wantH int
	}{
		{"square", 100, 100, 256, 256},
		{"wide", 512, 256, 256, 128},
		{"tall", 100, 400, 64, 256},
		{"upscale", 16, 8, 256, 128},
		{"thin", 10000, 1, 256, 1},
		{"odd", 300, 200, 256, 171},
	}
	for _, tt := range tests {
		w, h := ContainSize(tt.w, tt.h, Width, Height)
		ttesting.AssertEqualInt(t, tt.name+"/w", w, tt.wantW)
		ttesting.AssertEqualInt(t, tt.name+"/h", h, tt.wantH)
	}
}

func TestContain(t *testing.T) {
	base := Contain(solid(512, 128, red))
	ttesting.AssertSize(t, "scaled", base, 256, 64)
	ttesting.AssertAlpha(t, "opaque center", base, 128, 32, 0xff)

	exact := solid(256, 256, red)
	if got := Contain(exact); got != exact {
		t.Errorf("Contain on an already fitting image should return it unchanged")
	}
}

func TestToRGBA(t *testing.T) {
	nrgba := image.NewNRGBA(image.Rect(10, 10, 20, 30))
	nrgba.SetNRGBA(10, 10, color.NRGBA{0, 0xff, 0, 0xff})

	got := ToRGBA(nrgba)
	ttesting.AssertEqualPoint(t, "origin", got.Bounds().Min, image.ZP)
	ttesting.AssertSize(t, "size", got, 10, 20)
	if c := got.RGBAAt(0, 0); c != (color.RGBA{0, 0xff, 0, 0xff}) {
		t.Errorf("got %v at origin; want opaque green", c)
	}
}

func TestRotateZeroIsIdentity(t *testing.T) {
	src := solid(40, 20, red)
	src.SetRGBA(3, 4, color.RGBA{0, 0, 0xff, 0xff})

	got := Rotate(src, 0)
	if got == src {
		t.Fatalf("Rotate should not return its input")
	}
	for i := range src.Pix {
		if got.Pix[i] != src.Pix[i] {
			t.Fatalf("pixel byte %d differs: got %d; want %d", i, got.Pix[i], src.Pix[i])
		}
	}
}

func TestRotateClipsCorners(t *testing.T) {
	src := solid(100, 100, red)
	got := Rotate(src, 45)

	ttesting.AssertSize(t, "bounds kept", got, 100, 100)
	ttesting.AssertAlpha(t, "center", got, 50, 50, 0xff)
	ttesting.AssertAlpha(t, "top left", got, 0, 0, 0)
	ttesting.AssertAlpha(t, "bottom right", got, 99, 99, 0)
}

func TestRotateCounterClockwise(t *testing.T) {
	// A block in the right half moves to the top half when turned 90°
	// counter-clockwise.
	src := image.NewRGBA(image.Rect(0, 0, 64, 64))
	draw.Draw(src, image.Rect(48, 24, 64, 40), &image.Uniform{red}, image.ZP, draw.Src)

	got := Rotate(src, 90)
	ttesting.AssertAlpha(t, "moved up", got, 32, 8, 0xff)
	ttesting.AssertAlpha(t, "right side cleared", got, 56, 32, 0)
}

func TestSynthesizeIdentity(t *testing.T) {
	base := solid(256, 128, red)
	fr := Synthesize(base, motion.Transform{})

	ttesting.AssertSize(t, "frame size", fr, Width, Height)
	ttesting.AssertAlpha(t, "inside", fr, 0, 0, 0xff)
	ttesting.AssertAlpha(t, "last row of base", fr, 255, 127, 0xff)
	ttesting.AssertAlpha(t, "below base", fr, 10, 128, 0)
}

func TestSynthesizeOffsetTruncates(t *testing.T) {
	base := solid(10, 10, red)

	fr := Synthesize(base, motion.Transform{DX: 5.9, DY: -2.7})
	// (5.9, -2.7) lands at (5, -2); the top two rows are clipped.
	ttesting.AssertAlpha(t, "left of paste", fr, 4, 0, 0)
	ttesting.AssertAlpha(t, "first column", fr, 5, 0, 0xff)
	ttesting.AssertAlpha(t, "last column", fr, 14, 7, 0xff)
	ttesting.AssertAlpha(t, "clipped rows", fr, 5, 8, 0)
}

func TestSynthesizeKeepsTransparency(t *testing.T) {
	base := image.NewRGBA(image.Rect(0, 0, 8, 8))
	base.SetRGBA(1, 1, red)
	base.SetRGBA(2, 2, color.RGBA{0x40, 0, 0, 0x40})

	fr := Synthesize(base, motion.Transform{DX: 10, DY: 10})
	if c := fr.RGBAAt(11, 11); c != red {
		t.Errorf("opaque pixel: got %v; want %v", c, red)
	}
	if c := fr.RGBAAt(12, 12); c != (color.RGBA{0x40, 0, 0, 0x40}) {
		t.Errorf("translucent pixel: got %v; want alpha preserved", c)
	}
	ttesting.AssertAlpha(t, "transparent", fr, 10, 10, 0)
}
