package filesystem

import (
	"github.com/pkg/errors"
)

var (
	// ErrReadingDirectory is matched by any failure to open or list a
	// directory. The underlying cause (not found, permission denied, not a
	// directory) is still reachable through errors.Is.
	ErrReadingDirectory = errors.New("couldn't read directory")
	// ErrNameConversion is returned when an entry name isn't valid UTF-8.
	ErrNameConversion = errors.New("couldn't convert entry name")
	// ErrTimestamp is returned when a modification time predates the epoch.
	ErrTimestamp = errors.New("modification time is before the unix epoch")
	// ErrIsDirectory is returned when a file operation targets a directory.
	ErrIsDirectory = errors.New("path is a directory")
)

// ReadError wraps a failure to list a directory.
type ReadError struct {
	Dir string
	Err error
}

func (e *ReadError) Error() string {
	return ErrReadingDirectory.Error() + " " + e.Dir + ": " + e.Err.Error()
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

func (e *ReadError) Is(target error) bool {
	return target == ErrReadingDirectory
}
