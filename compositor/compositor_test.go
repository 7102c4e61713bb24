package compositor

import (
	"image"
	"image/color"
	"image/draw"
	"testing"

	"badc0de.net/pkg/go-spritesheet/frame"
	"badc0de.net/pkg/go-spritesheet/motion"
	"badc0de.net/pkg/go-spritesheet/ttesting"
)

func solid(w, h int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), &image.Uniform{c}, image.ZP, draw.Src)
	return img
}

func TestSheetSize(t *testing.T) {
	for _, sz := range []image.Point{{1, 1}, {64, 300}, {1000, 250}, {256, 256}} {
		sheet := Build(solid(sz.X, sz.Y, color.White))
		ttesting.AssertSize(t, "sheet", sheet, 256*Frames, 256*Rows)
	}
	ttesting.AssertEqualInt(t, "width const", Width, 2048)
	ttesting.AssertEqualInt(t, "height const", Height, 512)
}

func TestCellOrigin(t *testing.T) {
	ttesting.AssertEqualPoint(t, "idle 0", CellOrigin(motion.Idle, 0), image.Pt(0, 0))
	ttesting.AssertEqualPoint(t, "idle 7", CellOrigin(motion.Idle, 7), image.Pt(1792, 0))
	ttesting.AssertEqualPoint(t, "walk 3", CellOrigin(motion.Walk, 3), image.Pt(768, 256))
}

func TestSharedBase(t *testing.T) {
	base := solid(10, 10, color.White)

	var seen []*image.RGBA
	var transforms []motion.Transform
	compositeSheet(base, func(b *image.RGBA, tr motion.Transform) *image.RGBA {
		seen = append(seen, b)
		transforms = append(transforms, tr)
		return image.NewRGBA(frame.Bounds)
	})

	ttesting.AssertEqualInt(t, "frames synthesized", len(seen), Rows*Frames)
	for i, b := range seen {
		if b != base {
			t.Errorf("frame %d got a different base image", i)
		}
	}
	// Row-major order: all idle frames first, then all walk frames.
	for i, tr := range transforms {
		want := motion.Curve(motion.Rows[i/Frames], i%Frames, Frames)
		if tr != want {
			t.Errorf("call %d: got %v; want %v", i, tr, want)
		}
	}
}

func TestCellsDoNotBlend(t *testing.T) {
	n := 0
	sheet := compositeSheet(solid(1, 1, color.White), func(*image.RGBA, motion.Transform) *image.RGBA {
		n++
		fr := image.NewRGBA(frame.Bounds)
		// Half transparent fill with a per-frame value; overlapping
		// cells would show up as a different color.
		c := color.RGBA{uint8(n), 0, 0, 0x80}
		draw.Draw(fr, fr.Bounds(), &image.Uniform{c}, image.ZP, draw.Src)
		return fr
	})

	for _, row := range motion.Rows {
		for i := 0; i < Frames; i++ {
			want := color.RGBA{uint8(int(row)*Frames + i + 1), 0, 0, 0x80}
			at := CellOrigin(row, i)
			for _, p := range []image.Point{at, at.Add(image.Pt(255, 255)), at.Add(image.Pt(128, 0))} {
				if got := sheet.RGBAAt(p.X, p.Y); got != want {
					t.Errorf("%v frame %d at %v: got %v; want %v", row, i, p, got, want)
				}
			}
		}
	}
}

func TestIdleFirstFrameIsBase(t *testing.T) {
	base := image.NewRGBA(image.Rect(0, 0, 256, 200))
	for y := 0; y < 200; y++ {
		for x := 0; x < 256; x++ {
			base.SetRGBA(x, y, color.RGBA{uint8(x), uint8(y), 0x10, 0xff})
		}
	}
	sheet := CompositeSheet(base)

	for y := 0; y < 200; y++ {
		for x := 0; x < 256; x++ {
			if got, want := sheet.RGBAAt(x, y), base.RGBAAt(x, y); got != want {
				t.Fatalf("pixel (%d,%d): got %v; want %v", x, y, got, want)
			}
		}
	}
	ttesting.AssertAlpha(t, "below base", sheet, 10, 230, 0)
}
