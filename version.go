package gosemver

import (
	"fmt"
	"hash/fnv"
	"slices"
	"strings"

	"github.com/albertocavalcante/go-semver/internal/ident"
)

// Version represents an immutable Semantic Version 2.0.0 value.
//
// Versions are created by Parse, New, or Builder.Build and never mutated
// afterward, so they are safe to share across goroutines. The zero value is
// "0.0.0".
type Version struct {
	major      int
	minor      int
	patch      int
	prerelease []string
	build      []string

	// raw is the canonical string, computed at construction. Reformatting is
	// a pure function of the other fields, so the zero Version simply falls
	// back to formatting on demand.
	raw string
}

// New creates a Version from its five fields. Major, minor, and patch must
// be non-negative and every identifier must match the identifier grammar;
// violations are reported wrapping ErrNegativeComponent or ErrBadIdentifier.
//
// The identifier slices are copied; callers keep ownership of their
// arguments.
func New(major, minor, patch int, prerelease, build []string) (Version, error) {
	if major < 0 {
		return Version{}, fmt.Errorf("major %d: %w", major, ErrNegativeComponent)
	}
	if minor < 0 {
		return Version{}, fmt.Errorf("minor %d: %w", minor, ErrNegativeComponent)
	}
	if patch < 0 {
		return Version{}, fmt.Errorf("patch %d: %w", patch, ErrNegativeComponent)
	}
	for _, id := range prerelease {
		if !ident.Valid(id) {
			return Version{}, fmt.Errorf("prerelease %q: %w", id, ErrBadIdentifier)
		}
	}
	for _, id := range build {
		if !ident.Valid(id) {
			return Version{}, fmt.Errorf("build %q: %w", id, ErrBadIdentifier)
		}
	}
	return makeVersion(major, minor, patch, slices.Clone(prerelease), slices.Clone(build)), nil
}

// MustNew creates a Version or panics. Use only for constants/tests.
func MustNew(major, minor, patch int, prerelease, build []string) Version {
	v, err := New(major, minor, patch, prerelease, build)
	if err != nil {
		panic(err)
	}
	return v
}

// makeVersion assumes its arguments are validated and that the slices are
// owned by the new value.
func makeVersion(major, minor, patch int, prerelease, build []string) Version {
	v := Version{
		major:      major,
		minor:      minor,
		patch:      patch,
		prerelease: prerelease,
		build:      build,
	}
	v.raw = v.format()
	return v
}

// Major returns the major version number.
func (v Version) Major() int {
	return v.major
}

// Minor returns the minor version number.
func (v Version) Minor() int {
	return v.minor
}

// Patch returns the patch version number.
func (v Version) Patch() int {
	return v.patch
}

// Prerelease returns the ordered prerelease identifiers. The returned slice
// is a copy; mutating it does not affect the Version.
func (v Version) Prerelease() []string {
	return slices.Clone(v.prerelease)
}

// Build returns the ordered build metadata identifiers. The returned slice
// is a copy; mutating it does not affect the Version.
func (v Version) Build() []string {
	return slices.Clone(v.build)
}

// PrereleaseString returns the dot-joined prerelease identifiers without the
// leading '-'. Empty when there is no prerelease.
func (v Version) PrereleaseString() string {
	return strings.Join(v.prerelease, ".")
}

// BuildString returns the dot-joined build identifiers without the leading
// '+'. Empty when there is no build metadata.
func (v Version) BuildString() string {
	return strings.Join(v.build, ".")
}

// HasPrerelease reports whether this is a pre-release version.
func (v Version) HasPrerelease() bool {
	return len(v.prerelease) > 0
}

// HasBuild reports whether this version carries build metadata.
func (v Version) HasBuild() bool {
	return len(v.build) > 0
}

// IsStable reports whether this version denotes a stable public API:
// a major version above zero and no prerelease identifiers.
func (v Version) IsStable() bool {
	return v.major > 0 && len(v.prerelease) == 0
}

// String returns the canonical version string:
// "major.minor.patch[-prerelease][+build]".
func (v Version) String() string {
	if v.raw != "" {
		return v.raw
	}
	return v.format()
}

func (v Version) format() string {
	s := v.precedenceString()
	if len(v.build) > 0 {
		s += "+" + strings.Join(v.build, ".")
	}
	return s
}

// precedenceString is the canonical form without build metadata: exactly the
// fields that participate in Compare.
func (v Version) precedenceString() string {
	s := fmt.Sprintf("%d.%d.%d", v.major, v.minor, v.patch)
	if len(v.prerelease) > 0 {
		s += "-" + strings.Join(v.prerelease, ".")
	}
	return s
}

// Hash returns a hash of this version that is stable across processes and
// equal for any two versions that Compare as equal. Build metadata is
// excluded, matching Compare.
func (v Version) Hash() uint64 {
	h := fnv.New64a()
	h.Write([]byte(v.precedenceString()))
	return h.Sum64()
}

// Equal reports whether v and other have equal precedence. Build metadata is
// ignored: "1.0.0+linux" equals "1.0.0+darwin".
func (v Version) Equal(other Version) bool {
	return v.Compare(other) == 0
}

// Less reports whether v has lower precedence than other.
func (v Version) Less(other Version) bool {
	return v.Compare(other) < 0
}

// Versions is a sortable slice of Version.
type Versions []Version

func (vs Versions) Len() int           { return len(vs) }
func (vs Versions) Swap(i, j int)      { vs[i], vs[j] = vs[j], vs[i] }
func (vs Versions) Less(i, j int) bool { return vs[i].Less(vs[j]) }
