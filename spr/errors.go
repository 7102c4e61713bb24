package spr

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind classifies what went wrong while reading or writing a file.
type Kind int

const (
	// KindIO covers opening, creating, writing, syncing and renaming files.
	KindIO Kind = iota
	// KindDecode means the file was read but is not a decodable image.
	KindDecode
	// KindEncode means the sheet could not be encoded as PNG.
	KindEncode
)

func (k Kind) String() string {
	switch k {
	case KindIO:
		return "io"
	case KindDecode:
		return "decode"
	case KindEncode:
		return "encode"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Error is the error type returned by DecodeFile and EncodeFile.
type Error struct {
	Kind Kind
	Path string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Kind, e.Path, e.Err)
}

// Cause returns the underlying error, for github.com/pkg/errors.Cause.
func (e *Error) Cause() error { return e.Err }

func (e *Error) Unwrap() error { return e.Err }

func newError(kind Kind, path string, err error, msg string) error {
	return &Error{Kind: kind, Path: path, Err: errors.Wrap(err, msg)}
}

// KindOf reports the Kind of the first *Error in err's chain. The second
// return value is false if there is none.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}
