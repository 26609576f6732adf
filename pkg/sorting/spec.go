// Package sorting parses sort specifications of the form "<key>.<direction>"
// and orders directory listings accordingly.
package sorting

import (
	"runtime"
	"strings"

	"github.com/pkg/errors"
)

// ErrInvalidSpec is returned when a sort specification can't be parsed.
var ErrInvalidSpec = errors.New("invalid sort specification")

type Key string

const (
	KeyDefault  Key = "default"
	KeyName     Key = "name"
	KeySize     Key = "size"
	KeyModified Key = "modified"
)

type Direction string

const (
	Ascending  Direction = "ascending"
	Descending Direction = "descending"
)

// Platform tags the default order. It's carried through so the UI can round
// trip it, but both platforms currently sort the same way.
type Platform string

const (
	PlatformUnix    Platform = "unix"
	PlatformWindows Platform = "windows"
)

// Spec is a parsed sort specification. Direction is set for every key except
// KeyDefault, which carries a Platform instead.
type Spec struct {
	Key       Key
	Direction Direction
	Platform  Platform
}

// Default returns the platform default spec.
func Default() Spec {
	if runtime.GOOS == "windows" {
		return Spec{Key: KeyDefault, Platform: PlatformWindows}
	}
	return Spec{Key: KeyDefault, Platform: PlatformUnix}
}

func Name(d Direction) Spec     { return Spec{Key: KeyName, Direction: d} }
func Size(d Direction) Spec     { return Spec{Key: KeySize, Direction: d} }
func Modified(d Direction) Spec { return Spec{Key: KeyModified, Direction: d} }

// String renders the spec back into its query form.
func (s Spec) String() string {
	if s.Key == KeyDefault {
		return string(s.Key) + "." + string(s.Platform)
	}
	return string(s.Key) + "." + string(s.Direction)
}

// IsDefault reports whether the spec is the platform default order.
func (s Spec) IsDefault() bool {
	return s.Key == KeyDefault
}

// Parse parses a "<key>.<direction>" specification. Keys and directions are
// matched exactly, so "Name.Ascending" or "name.ascending.x" are rejected.
func Parse(s string) (Spec, error) {
	parts := strings.Split(s, ".")
	if len(parts) != 2 {
		return Spec{}, errors.Wrapf(ErrInvalidSpec, "%q", s)
	}

	key, value := Key(parts[0]), parts[1]
	switch key {
	case KeyDefault:
		switch p := Platform(value); p {
		case PlatformUnix, PlatformWindows:
			return Spec{Key: key, Platform: p}, nil
		}
	case KeyName, KeySize, KeyModified:
		switch d := Direction(value); d {
		case Ascending, Descending:
			return Spec{Key: key, Direction: d}, nil
		}
	}

	return Spec{}, errors.Wrapf(ErrInvalidSpec, "%q", s)
}

// FromQuery parses the value of a sort query parameter. An absent (empty)
// value yields the platform default, anything else must parse.
func FromQuery(s string) (Spec, error) {
	if s == "" {
		return Default(), nil
	}
	return Parse(s)
}

// Toggle returns the spec a column header should link to: the opposite
// direction when the column is already active, ascending otherwise.
func (s Spec) Toggle(key Key) Spec {
	if s.Key == key && s.Direction == Ascending {
		return Spec{Key: key, Direction: Descending}
	}
	return Spec{Key: key, Direction: Ascending}
}
