package batch

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/gookit/color"
)

// ConsoleReporter writes one human readable line per event to W.
type ConsoleReporter struct {
	W io.Writer
}

func (c *ConsoleReporter) NoInputDir(dir string) {
	fmt.Fprintln(c.W, color.Red.Sprintf("❌ %s/ folder not found", dir))
}

func (c *ConsoleReporter) NoInputFiles(dir string) {
	fmt.Fprintln(c.W, color.Red.Sprintf("❌ No PNG files found in %s/", dir))
}

func (c *ConsoleReporter) Created(_, out string) {
	fmt.Fprintln(c.W, color.Green.Sprintf("✔ Created %s", out))
}

func (c *ConsoleReporter) Failed(src string, err error) {
	fmt.Fprintln(c.W, color.Yellow.Sprintf("⚠ Failed %s: %v", filepath.Base(src), err))
}

func (c *ConsoleReporter) Done(s Summary) {
	fmt.Fprintf(c.W, "%d created, %d failed\n", len(s.Created), len(s.Failures))
}
