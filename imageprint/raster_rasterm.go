//go:build go1.13 && !windows
// +build go1.13,!windows

package imageprint

import (
	"fmt"
	"image"
	"io"

	"github.com/BourgeoisBear/rasterm"
	"github.com/andybons/gogif"
	"github.com/pkg/errors"
)

// PrintRasTerm draws an image with the first graphics protocol the terminal
// is detected to support: Kitty, iTerm2/WezTerm, then Sixel.
func PrintRasTerm(w io.Writer, i image.Image) error {
	var err error
	switch {
	case rasterm.IsTermKitty():
		err = rasterm.Settings{}.KittyWriteImage(w, i)
	case rasterm.IsTermItermWez():
		err = rasterm.Settings{}.ItermWriteImage(w, i)
	default:
		capable, cerr := rasterm.IsSixelCapable()
		if cerr != nil || !capable {
			return errors.New("terminal supports no known graphics protocol")
		}
		err = rasterm.Settings{}.SixelWriteImage(w, Quantize(i, 64))
	}
	if err != nil {
		return errors.Wrap(err, "rasterm")
	}
	fmt.Fprint(w, "\n")
	return nil
}

// Quantize reduces i to a palette of at most n colors using median cut.
func Quantize(i image.Image, n int) *image.Paletted {
	pal := image.NewPaletted(i.Bounds(), nil)
	q := gogif.MedianCutQuantizer{NumColor: n}
	q.Quantize(pal, i.Bounds(), i, i.Bounds().Min)
	return pal
}
