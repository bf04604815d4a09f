// Package gosemver implements parsing, comparison, and incremental
// construction of Semantic Version 2.0.0 identifiers
// (https://semver.org/spec/v2.0.0.html).
//
// # Overview
//
// The package provides three main components:
//
//   - Parser: Parse turns a version string into an immutable Version value,
//     validating the full SemVer grammar
//   - Version: an immutable value exposing the five version fields, the
//     canonical string form, and total-order precedence comparison
//   - Builder: a mutable helper for setting, appending, and bumping fields
//     before producing a Version
//
// # Quick Start
//
//	v, err := gosemver.Parse("1.4.0-rc.2+linux.amd64")
//	if err != nil {
//	    // *gosemver.FormatError: input did not match the grammar
//	}
//	fmt.Println(v.Major(), v.PrereleaseString()) // 1 rc.2
//
//	next, err := gosemver.NewBuilderFrom(v).BumpMinor().ClearPrerelease().Build()
//
// # Precedence
//
// Compare implements SemVer precedence: numeric fields in order, then
// prerelease identifiers with numeric/alphanumeric tie-breaking. Build
// metadata never affects precedence or equality, so versions differing only
// in build metadata compare as equal.
//
// # Version Discovery
//
// The library performs no version discovery of its own. Hosts adapt their
// packaging metadata to the Source interface and resolve through FromSource;
// the manifest subpackage does this for Bazel MODULE files.
//
// # Thread Safety
//
// Version values are immutable and safe for concurrent use. Builders are
// not; confine each Builder to one goroutine or synchronize externally.
package gosemver

import "slices"

// SpecVersion is the version of the SemVer specification this package
// implements.
var SpecVersion = MustParse("2.0.0")

// Compare orders a against b per SemVer precedence.
// Returns -1 if a < b, 0 if equal, 1 if a > b.
func Compare(a, b Version) int {
	return a.Compare(b)
}

// Sort sorts versions in ascending precedence order, in place.
func Sort(versions []Version) {
	slices.SortFunc(versions, Compare)
}

// Max returns the higher-precedence of two versions. When the versions are
// equal, a is returned.
func Max(a, b Version) Version {
	if Compare(a, b) >= 0 {
		return a
	}
	return b
}
