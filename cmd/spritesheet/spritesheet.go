// Command spritesheet turns every character image in ./characters into an
// animated sprite sheet in ./characters_spritesheet.
//
// Each sheet has an idle row and a walk row of eight 256x256 frames. Reruns
// overwrite existing sheets.
package main

import (
	"flag"
	"image"
	"os"

	"badc0de.net/pkg/flagutil/v1"
	"github.com/golang/glog"

	"badc0de.net/pkg/go-spritesheet/batch"
	"badc0de.net/pkg/go-spritesheet/imageprint"
)

const (
	inputDir  = "characters"
	outputDir = "characters_spritesheet"
)

var (
	preview     = flag.Bool("preview", false, "print every generated sheet on the terminal")
	previewMode = flag.String("preview_mode", "24bit", "how to print previews: 24bit, 256, nocolor, iterm or rasterm")
)

func main() {
	flagutil.Parse()
	flag.Set("logtostderr", "true")
	defer glog.Flush()

	d := &batch.Driver{Reporter: &batch.ConsoleReporter{W: os.Stdout}}
	if *preview {
		mode, err := imageprint.ParseMode(*previewMode)
		if err != nil {
			glog.Exitf("bad -preview_mode: %v", err)
		}
		d.AfterEach = func(out string, sheet image.Image) {
			if err := imageprint.Preview(os.Stdout, sheet, mode); err != nil {
				glog.Warningf("could not preview %s: %v", out, err)
			}
		}
	}

	if _, err := d.Run(inputDir, outputDir); err != nil {
		glog.Exitf("spritesheet: %v", err)
	}
}
