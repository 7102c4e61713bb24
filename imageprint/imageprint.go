// Package imageprint previews images on a terminal. Debug package.
//
// Block modes paint every pixel as two coloured character cells; image modes
// hand the picture to the terminal's own graphics protocol. Images are
// shrunk to fit the terminal first.
package imageprint

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	ic "image/color"
	"image/png"
	"io"
	"strings"

	"github.com/gookit/color"
	"github.com/nfnt/resize"
	"github.com/pkg/errors"
)

// Mode selects how Preview renders.
type Mode int

const (
	ModeNone Mode = iota
	Mode24bit
	Mode256
	ModeNoColor
	ModeITerm
	ModeRasTerm
)

var modeNames = map[string]Mode{
	"none":    ModeNone,
	"24bit":   Mode24bit,
	"256":     Mode256,
	"nocolor": ModeNoColor,
	"iterm":   ModeITerm,
	"rasterm": ModeRasTerm,
}

// ParseMode parses a mode name as accepted on the command line.
func ParseMode(s string) (Mode, error) {
	if m, ok := modeNames[strings.ToLower(s)]; ok {
		return m, nil
	}
	return ModeNone, errors.Errorf("unknown preview mode %q", s)
}

// Fit shrinks img so that it fits a terminal of size ts when rendered with
// mode m. Images already small enough are returned unchanged, as are images
// for terminals whose size is unknown.
func Fit(img image.Image, ts TermSize, m Mode) image.Image {
	var w, h uint
	switch m {
	case ModeITerm, ModeRasTerm:
		if ts.XPixel != 0 && ts.YPixel != 0 {
			w, h = ts.XPixel/2, ts.YPixel/2
		} else {
			w, h = ts.Cols*8, ts.Rows*16
		}
	default:
		// Two cells per pixel horizontally.
		w, h = ts.Cols/2, ts.Rows
	}
	if w == 0 || h == 0 {
		return img
	}
	return resize.Thumbnail(w, h, img, resize.Lanczos3)
}

// Preview fits img to the current terminal and prints it to w.
func Preview(w io.Writer, img image.Image, m Mode) error {
	if m == ModeNone {
		return nil
	}
	if ts, err := GetTermSize(); err == nil {
		img = Fit(img, ts, m)
	}
	switch m {
	case Mode24bit:
		Print24bit(w, img, true)
	case Mode256:
		Print256Color(w, img, true)
	case ModeNoColor:
		PrintNoColor(w, img, false)
	case ModeITerm:
		return PrintITerm(w, img, "sheet.png")
	case ModeRasTerm:
		return PrintRasTerm(w, img)
	default:
		return errors.Errorf("unsupported preview mode %d", m)
	}
	return nil
}

func shade(w io.Writer, col ic.Color, trueColor, blanks, noColor bool) {
	cR, cG, cB, cA := col.RGBA()
	if cA == 0 {
		fmt.Fprint(w, "\x1b[0m  ")
		return
	}

	cell := "  "
	if !blanks {
		switch a := ((cR + cG + cB) / 3) >> 8; {
		case a < 32:
			cell = ".."
		case a < 64:
			cell = "--"
		case a < 128:
			cell = "=="
		default:
			cell = "##"
		}
	}

	switch {
	case noColor:
		fmt.Fprint(w, cell)
	case trueColor:
		fmt.Fprintf(w, "\x1b[48;2;%d;%d;%dm%s\x1b[0m", uint8(cR>>8), uint8(cG>>8), uint8(cB>>8), cell)
	default:
		fmt.Fprint(w, color.RGB(uint8(cR>>8), uint8(cG>>8), uint8(cB>>8), true).Sprint(cell))
	}
}

func printBlocks(w io.Writer, i image.Image, trueColor, blanks, noColor bool) {
	b := i.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			shade(w, i.At(x, y), trueColor, blanks, noColor)
		}
		if !noColor {
			fmt.Fprint(w, "\x1b[0m")
		}
		fmt.Fprint(w, "\n")
	}
}

// Print256Color draws an image through gookit/color, which picks the best
// palette the terminal supports.
func Print256Color(w io.Writer, i image.Image, blanks bool) {
	printBlocks(w, i, false, blanks, false)
}

// Print24bit draws an image using 24bit color escape sequences by changing background.
func Print24bit(w io.Writer, i image.Image, blanks bool) {
	printBlocks(w, i, true, blanks, false)
}

// PrintNoColor draws an image without colour escape sequences. Transparent
// pixels still reset attributes. Only makes sense with blanks=false.
func PrintNoColor(w io.Writer, i image.Image, blanks bool) {
	printBlocks(w, i, false, blanks, true)
}

// PrintITerm draws an image using iTerm2's inline image escape sequence.
//
// https://www.iterm2.com/documentation-images.html
func PrintITerm(w io.Writer, i image.Image, fn string) error {
	b := &bytes.Buffer{}
	enc := base64.NewEncoder(base64.StdEncoding, b)
	if err := png.Encode(enc, i); err != nil {
		return errors.Wrap(err, "encoding preview")
	}
	enc.Close()
	name := base64.StdEncoding.EncodeToString([]byte(fn))
	_, err := fmt.Fprintf(w, "\n\033]1337;File=name=%s;inline=1;size=%d;width=%dpx;height=%dpx:%s\a\n",
		name, b.Len(), i.Bounds().Dx(), i.Bounds().Dy(), b.String())
	return err
}
