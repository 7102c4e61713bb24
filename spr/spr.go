package spr

import (
	"bufio"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"

	_ "image/gif"
	_ "image/jpeg"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/golang/glog"
	"github.com/pkg/errors"
)

// encoder is shared so that output bytes only depend on the pixels.
var encoder = png.Encoder{CompressionLevel: png.DefaultCompression}

// Decode decodes a single image from r, sniffing the format from content.
func Decode(r io.Reader) (image.Image, string, error) {
	img, format, err := image.Decode(bufio.NewReader(r))
	if err != nil {
		return nil, "", errors.Wrap(err, "decoding image")
	}
	return img, format, nil
}

// DecodeFile opens and decodes the image at path.
func DecodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, newError(KindIO, path, err, "opening source")
	}
	defer f.Close()

	img, format, err := Decode(f)
	if err != nil {
		return nil, &Error{Kind: KindDecode, Path: path, Err: err}
	}
	glog.V(1).Infof("spr.DecodeFile(%q): %s %dx%d", path, format, img.Bounds().Dx(), img.Bounds().Dy())
	return img, nil
}

// Encode writes img to w as PNG.
func Encode(w io.Writer, img image.Image) error {
	return errors.Wrap(encoder.Encode(w, img), "encoding png")
}

// EncodeFile writes img as PNG to path. The data is written to a temporary
// file in the same directory and renamed over path once complete, so path
// never holds a partial sheet. Existing files at path are replaced.
func EncodeFile(path string, img image.Image) (err error) {
	dir, name := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	tmp, err := os.CreateTemp(dir, "."+name+".tmp-*")
	if err != nil {
		return newError(KindIO, path, err, "creating temporary file")
	}
	defer func() {
		if err != nil {
			tmp.Close()
			if rmErr := os.Remove(tmp.Name()); rmErr != nil && !os.IsNotExist(rmErr) {
				glog.Warningf("spr.EncodeFile(%q): leaving %q behind: %v", path, tmp.Name(), rmErr)
			}
		}
	}()

	bw := bufio.NewWriter(tmp)
	if err := Encode(bw, img); err != nil {
		return &Error{Kind: KindEncode, Path: path, Err: err}
	}
	if err := bw.Flush(); err != nil {
		return newError(KindIO, path, err, "writing temporary file")
	}
	if err := tmp.Sync(); err != nil {
		return newError(KindIO, path, err, "syncing temporary file")
	}
	if err := tmp.Close(); err != nil {
		return newError(KindIO, path, err, "closing temporary file")
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return newError(KindIO, path, err, "setting permissions")
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return newError(KindIO, path, err, "renaming into place")
	}
	return nil
}
