// Package paths locates source images and names the sprite sheets written
// for them.
package paths

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/golang/glog"
	"github.com/pkg/errors"
)

const (
	// Pattern selects source images by file name only; content is not
	// inspected.
	Pattern = "*.png"
	// Suffix replaces the extension of a source to form its sheet's name.
	Suffix = "_walk_spritesheet.png"
)

// ErrNoInputDir is returned by Inputs when the input directory is absent.
var ErrNoInputDir = errors.New("input directory not found")

// Inputs returns the regular files in dir whose names match Pattern, in
// lexical order. Subdirectories are not searched, and dir itself is taken
// literally rather than as a pattern. ErrNoInputDir is returned when dir
// does not exist; a dir that is not a directory holds no inputs.
func Inputs(dir string) ([]string, error) {
	st, err := os.Stat(dir)
	if os.IsNotExist(err) {
		return nil, errors.Wrapf(ErrNoInputDir, "paths.Inputs(%q)", dir)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "paths.Inputs(%q)", dir)
	}
	if !st.IsDir() {
		glog.Warningf("paths.Inputs(%q): not a directory", dir)
		return nil, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "paths.Inputs(%q)", dir)
	}
	var files []string
	for _, e := range entries {
		if ok, _ := filepath.Match(Pattern, e.Name()); !ok {
			continue
		}
		path := filepath.Join(dir, e.Name())
		// Stat rather than e.Type() so that symlinks to files count.
		if st, err := os.Stat(path); err != nil || !st.Mode().IsRegular() {
			glog.V(1).Infof("paths.Inputs(%q): skipping %q", dir, path)
			continue
		}
		files = append(files, path)
	}
	sort.Strings(files)
	glog.Infof("paths.Inputs(%q)=%d files", dir, len(files))
	return files, nil
}

// Stem returns the base name of path without its extension.
func Stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Output returns where the sheet for src is written inside outDir.
func Output(outDir, src string) string {
	return filepath.Join(outDir, Stem(src)+Suffix)
}

// EnsureDir creates dir, and any missing parents, if it does not exist.
func EnsureDir(dir string) error {
	return errors.Wrapf(os.MkdirAll(dir, 0755), "paths.EnsureDir(%q)", dir)
}
