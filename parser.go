package gosemver

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/albertocavalcante/go-semver/internal/ident"
)

// versionPattern matches a full SemVer 2.0.0 string. The match is anchored:
// the entire input must conform to the grammar.
//
// Capture groups:
//
//	1  major version
//	2  minor version
//	3  patch version
//	4  prerelease identifier list (absent when empty)
//	5  build identifier list (absent when empty)
//
// The prerelease and build captures do not include their leading '-' and '+'
// delimiters. Identifier validity is embedded in the grammar, so a matching
// string is always a valid version.
var versionPattern = regexp.MustCompile(
	`^(` + ident.NumericRx + `)` +
		`\.(` + ident.NumericRx + `)` +
		`\.(` + ident.NumericRx + `)` +
		`(?:-(` + ident.ListRx + `))?` +
		`(?:\+(` + ident.ListRx + `))?$`,
)

// Parse parses a version string per the Semantic Version 2.0.0 grammar.
//
// Parsing is strict: any input that does not match the full grammar fails
// with a *FormatError. An empty input wraps ErrEmptyVersion, a malformed one
// wraps ErrSyntax.
func Parse(s string) (Version, error) {
	if s == "" {
		return Version{}, &FormatError{Err: ErrEmptyVersion}
	}

	m := versionPattern.FindStringSubmatch(s)
	if m == nil {
		return Version{}, &FormatError{Input: s, Err: ErrSyntax}
	}

	major, err := strconv.Atoi(m[1])
	if err != nil {
		return Version{}, &FormatError{Input: s, Err: fmt.Errorf("major version: %w", err)}
	}
	minor, err := strconv.Atoi(m[2])
	if err != nil {
		return Version{}, &FormatError{Input: s, Err: fmt.Errorf("minor version: %w", err)}
	}
	patch, err := strconv.Atoi(m[3])
	if err != nil {
		return Version{}, &FormatError{Input: s, Err: fmt.Errorf("patch version: %w", err)}
	}

	var prerelease, build []string
	if m[4] != "" {
		prerelease = strings.Split(m[4], ".")
	}
	if m[5] != "" {
		build = strings.Split(m[5], ".")
	}

	return makeVersion(major, minor, patch, prerelease, build), nil
}

// MustParse parses a version string or panics. Use only for constants/tests.
func MustParse(s string) Version {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}
