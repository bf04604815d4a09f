package gosemver

// Source yields the version strings a host packaging system declares for
// some unit of code. Version discovery itself is host-specific; the core
// library only consumes whatever strings the host supplies. See the manifest
// subpackage for a Bazel MODULE file adapter.
type Source interface {
	// DeclaredVersion returns an explicitly declared version string, such as
	// a version annotation or an override pin, and whether one is present.
	DeclaredVersion() (string, bool)

	// SpecificationVersion returns a manifest-style fallback version string
	// and whether one is present.
	SpecificationVersion() (string, bool)
}

// FromSource resolves a Version from src.
//
// A declared version is authoritative: it is parsed strictly and a malformed
// declaration is returned as an error. When no version is declared, the
// specification fallback is tried leniently: an absent or malformed fallback
// yields (Version{}, false, nil), meaning "no version", rather than an error.
//
// Absorbing a malformed fallback can mask misconfiguration, but fallback
// strings routinely carry values that were never semantic versions, so the
// lenient boundary is deliberate. Callers that want strictness can fetch the
// fallback string themselves and use Parse.
func FromSource(src Source) (Version, bool, error) {
	if s, ok := src.DeclaredVersion(); ok {
		v, err := Parse(s)
		if err != nil {
			return Version{}, false, err
		}
		return v, true, nil
	}
	s, ok := src.SpecificationVersion()
	if !ok {
		return Version{}, false, nil
	}
	v, err := Parse(s)
	if err != nil {
		return Version{}, false, nil
	}
	return v, true, nil
}
