package gosemver

import (
	"errors"
	"fmt"
)

// Sentinel errors for parsing and construction failures.
var (
	// ErrEmptyVersion indicates the input string was absent or empty.
	ErrEmptyVersion = errors.New("empty version string")

	// ErrSyntax indicates the input does not match the SemVer 2.0.0 grammar.
	ErrSyntax = errors.New("does not match semantic version grammar")

	// ErrNegativeComponent indicates a negative major, minor, or patch value.
	ErrNegativeComponent = errors.New("negative version component")

	// ErrBadIdentifier indicates a prerelease or build identifier that fails
	// the identifier grammar.
	ErrBadIdentifier = errors.New("invalid identifier")
)

// FormatError is returned by Parse when the input is absent or does not
// match the full SemVer grammar. The empty-input case wraps ErrEmptyVersion
// so callers can tell "no input" apart from "malformed input".
type FormatError struct {
	Input string
	Err   error
}

func (e *FormatError) Error() string {
	if errors.Is(e.Err, ErrEmptyVersion) {
		return "invalid version: " + e.Err.Error()
	}
	return fmt.Sprintf("invalid version %q: %v", e.Input, e.Err)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}
