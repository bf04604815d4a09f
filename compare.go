package gosemver

import (
	"cmp"

	"github.com/albertocavalcante/go-semver/internal/ident"
)

// Compare orders v against other per SemVer 2.0.0 precedence.
// Returns -1 if v < other, 0 if equal, 1 if v > other.
//
// Precedence is decided by major, minor, and patch in order, then by
// prerelease identifiers: a prerelease precedes the corresponding release,
// identifiers compare pairwise (numeric before non-numeric, numerics as
// integers, non-numerics byte-wise), and a strict prefix precedes its
// extension. Build metadata never participates.
func (v Version) Compare(other Version) int {
	if c := cmp.Compare(v.major, other.major); c != 0 {
		return c
	}
	if c := cmp.Compare(v.minor, other.minor); c != 0 {
		return c
	}
	if c := cmp.Compare(v.patch, other.patch); c != 0 {
		return c
	}

	// A prerelease precedes the corresponding release.
	if (len(v.prerelease) == 0) != (len(other.prerelease) == 0) {
		if len(v.prerelease) == 0 {
			return 1
		}
		return -1
	}

	return ident.CompareList(v.prerelease, other.prerelease)
}
