// Package batch turns every source image in a directory into a sprite sheet.
//
// Files are processed one after another. A file that cannot be read,
// decoded or written is reported and skipped; the remaining files are still
// processed. A missing input directory and an input directory without any
// matching files end the run early, and are reported as such rather than
// returned as errors.
package batch

import (
	"fmt"
	"image"
	"path/filepath"

	"github.com/golang/glog"
	"github.com/pkg/errors"

	"badc0de.net/pkg/go-spritesheet/compositor"
	"badc0de.net/pkg/go-spritesheet/paths"
	"badc0de.net/pkg/go-spritesheet/spr"
)

// Status tells how a run ended.
type Status int

const (
	// StatusDone means every input file was attempted.
	StatusDone Status = iota
	// StatusNoInputDir means the input directory does not exist.
	StatusNoInputDir
	// StatusNoInputFiles means the input directory has no matching files.
	StatusNoInputFiles
)

func (s Status) String() string {
	switch s {
	case StatusDone:
		return "done"
	case StatusNoInputDir:
		return "no input directory"
	case StatusNoInputFiles:
		return "no input files"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Failure records a source file that did not produce a sheet.
type Failure struct {
	Source string
	Err    error
}

// Summary is the outcome of a run.
type Summary struct {
	Status   Status
	Created  []string
	Failures []Failure
}

// build turns a decoded source into its sheet.
var build = compositor.Build

// Reporter is told about every terminal condition and every file outcome.
type Reporter interface {
	NoInputDir(dir string)
	NoInputFiles(dir string)
	Created(src, out string)
	Failed(src string, err error)
	Done(s Summary)
}

// Driver runs batches. The zero value is usable and reports nothing.
type Driver struct {
	Reporter Reporter

	// AfterEach, if set, is called with every sheet after it was written.
	AfterEach func(out string, sheet image.Image)
}

// Run processes inDir into outDir with a Driver reporting to r.
func Run(inDir, outDir string, r Reporter) (Summary, error) {
	d := &Driver{Reporter: r}
	return d.Run(inDir, outDir)
}

// Run processes every source in inDir, writing sheets into outDir, which is
// created if needed. The returned error is only non-nil when the run could
// not proceed for a reason other than the two terminal conditions.
func (d *Driver) Run(inDir, outDir string) (Summary, error) {
	rep := d.Reporter
	if rep == nil {
		rep = nopReporter{}
	}

	sources, err := paths.Inputs(inDir)
	if errors.Cause(err) == paths.ErrNoInputDir {
		glog.Warningf("batch.Run: %v", err)
		rep.NoInputDir(inDir)
		return Summary{Status: StatusNoInputDir}, nil
	}
	if err != nil {
		return Summary{}, errors.Wrap(err, "listing inputs")
	}

	if err := paths.EnsureDir(outDir); err != nil {
		return Summary{}, errors.Wrap(err, "preparing output directory")
	}
	if len(sources) == 0 {
		glog.Warningf("batch.Run: no %s files in %q", paths.Pattern, inDir)
		rep.NoInputFiles(inDir)
		return Summary{Status: StatusNoInputFiles}, nil
	}

	var s Summary
	for _, src := range sources {
		out := paths.Output(outDir, src)
		sheet, err := d.process(src, out)
		if err != nil {
			glog.Errorf("batch.Run: %s: %v", src, err)
			s.Failures = append(s.Failures, Failure{Source: src, Err: err})
			rep.Failed(src, err)
			continue
		}
		glog.Infof("batch.Run: %s -> %s", src, out)
		s.Created = append(s.Created, out)
		rep.Created(src, out)
		if d.AfterEach != nil {
			d.AfterEach(out, sheet)
		}
	}

	s.Status = StatusDone
	rep.Done(s)
	return s, nil
}

// process builds and writes the sheet for a single source.
func (d *Driver) process(src, out string) (sheet image.Image, err error) {
	defer func() {
		if r := recover(); r != nil {
			sheet = nil
			err = errors.Errorf("building sheet for %s: %v", filepath.Base(src), r)
		}
	}()

	img, err := spr.DecodeFile(src)
	if err != nil {
		return nil, err
	}
	rgba := build(img)
	if err := spr.EncodeFile(out, rgba); err != nil {
		return nil, err
	}
	return rgba, nil
}

type nopReporter struct{}

func (nopReporter) NoInputDir(string) {}
func (nopReporter) NoInputFiles(string) {}
func (nopReporter) Created(string, string) {}
func (nopReporter) Failed(string, error) {}
func (nopReporter) Done(Summary) {}
