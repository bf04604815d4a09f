// Package ident provides validation and comparison of the dot-separated
// identifiers used in semantic version prerelease and build components.
//
// This package consolidates identifier logic shared by the version parser,
// the Version constructor, and the precedence comparator.
package ident

import (
	"cmp"
	"math/big"
	"regexp"
	"strings"
)

// Regex fragments for the identifier grammar. Exported so the version parser
// can compose its anchored full-string pattern from the same source.
const (
	// NumericRx matches a non-negative decimal with no leading zeros.
	NumericRx = `0|[1-9][0-9]*`
	// PartRx matches a single identifier: numeric-form, or an
	// alphanumeric/hyphen string that is not purely numeric.
	PartRx = `(?:` + NumericRx + `)|(?:[0-9]*[A-Za-z-][0-9A-Za-z]*)`
	// ListRx matches one or more identifiers joined by dots.
	ListRx = `(?:` + PartRx + `)(?:\.(?:` + PartRx + `))*`
)

var (
	numericPattern = regexp.MustCompile(`^(?:` + NumericRx + `)$`)
	partPattern    = regexp.MustCompile(`^(?:` + PartRx + `)$`)
)

// Valid reports whether s is a valid prerelease or build identifier.
func Valid(s string) bool {
	return partPattern.MatchString(s)
}

// IsNumeric reports whether s is a purely numeric identifier.
func IsNumeric(s string) bool {
	return numericPattern.MatchString(s)
}

// Compare orders two valid identifiers per SemVer precedence rules:
// numeric identifiers compare as integers, non-numeric identifiers compare
// byte-wise, and a numeric identifier always precedes a non-numeric one.
func Compare(a, b string) int {
	aNum, bNum := IsNumeric(a), IsNumeric(b)
	switch {
	case aNum && bNum:
		// Numeric identifiers are unbounded, so compare with big.Int
		// rather than machine integers.
		ai, _ := new(big.Int).SetString(a, 10)
		bi, _ := new(big.Int).SetString(b, 10)
		return ai.Cmp(bi)
	case aNum:
		return -1
	case bNum:
		return 1
	default:
		return strings.Compare(a, b)
	}
}

// CompareList compares two identifier sequences pairwise, stopping at the
// first differing position. A strict prefix precedes its extension.
func CompareList(a, b []string) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if c := Compare(a[i], b[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a), len(b))
}
