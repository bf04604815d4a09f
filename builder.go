package gosemver

import (
	"slices"
	"strings"
)

// Builder incrementally assembles Versions. Setters and bump operations
// mutate the Builder in place and return it for chaining; Build produces an
// immutable Version snapshot without consuming the Builder, so it may be
// called repeatedly.
//
// Setters and appends do not validate their arguments. Out-of-range numbers
// and malformed identifiers surface as errors from Build. Builders are not
// safe for concurrent mutation.
type Builder struct {
	major      int
	minor      int
	patch      int
	prerelease []string
	build      []string
}

// NewBuilder creates a Builder with zeroed versions and no prerelease or
// build identifiers.
func NewBuilder() *Builder {
	return &Builder{}
}

// NewBuilderFrom creates a Builder seeded with the fields of v.
func NewBuilderFrom(v Version) *Builder {
	return &Builder{
		major:      v.major,
		minor:      v.minor,
		patch:      v.patch,
		prerelease: slices.Clone(v.prerelease),
		build:      slices.Clone(v.build),
	}
}

// Clone returns an independent copy of b. The copy owns its own identifier
// storage; later mutations of either Builder do not affect the other.
func (b *Builder) Clone() *Builder {
	return &Builder{
		major:      b.major,
		minor:      b.minor,
		patch:      b.patch,
		prerelease: slices.Clone(b.prerelease),
		build:      slices.Clone(b.build),
	}
}

// Major sets the major version verbatim.
func (b *Builder) Major(major int) *Builder {
	b.major = major
	return b
}

// Minor sets the minor version verbatim.
func (b *Builder) Minor(minor int) *Builder {
	b.minor = minor
	return b
}

// Patch sets the patch version verbatim.
func (b *Builder) Patch(patch int) *Builder {
	b.patch = patch
	return b
}

// BumpMajor increments the major version and resets minor and patch to zero.
// Prerelease and build identifiers are left untouched; clear them explicitly
// if a release bump should drop prerelease status.
func (b *Builder) BumpMajor() *Builder {
	b.major++
	b.minor = 0
	b.patch = 0
	return b
}

// BumpMinor increments the minor version and resets patch to zero.
// Prerelease and build identifiers are left untouched.
func (b *Builder) BumpMinor() *Builder {
	b.minor++
	b.patch = 0
	return b
}

// BumpPatch increments the patch version. Prerelease and build identifiers
// are left untouched.
func (b *Builder) BumpPatch() *Builder {
	b.patch++
	return b
}

// AddPrerelease splits s on '.' and appends the resulting identifiers to the
// prerelease sequence, so AddPrerelease("alpha.1") appends two identifiers.
func (b *Builder) AddPrerelease(s string) *Builder {
	b.prerelease = append(b.prerelease, strings.Split(s, ".")...)
	return b
}

// AddPrereleases appends identifiers to the prerelease sequence verbatim,
// in order.
func (b *Builder) AddPrereleases(ids ...string) *Builder {
	b.prerelease = append(b.prerelease, ids...)
	return b
}

// AddBuild splits s on '.' and appends the resulting identifiers to the
// build metadata sequence.
func (b *Builder) AddBuild(s string) *Builder {
	b.build = append(b.build, strings.Split(s, ".")...)
	return b
}

// AddBuilds appends identifiers to the build metadata sequence verbatim,
// in order.
func (b *Builder) AddBuilds(ids ...string) *Builder {
	b.build = append(b.build, ids...)
	return b
}

// ClearPrerelease removes all prerelease identifiers.
func (b *Builder) ClearPrerelease() *Builder {
	b.prerelease = nil
	return b
}

// ClearBuild removes all build metadata identifiers.
func (b *Builder) ClearBuild() *Builder {
	b.build = nil
	return b
}

// Build constructs a Version from the Builder's current state. All deferred
// validation happens here; see New for the reported errors.
func (b *Builder) Build() (Version, error) {
	return New(b.major, b.minor, b.patch, b.prerelease, b.build)
}
