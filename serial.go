package gosemver

import "hash/fnv"

// SerialID derives a stable serialization identifier for a named type from
// the version of the package that declares it. The result is constant across
// processes, and equal for any two versions that Compare as equal combined
// with the same qualified name.
func SerialID(v Version, qualifiedName string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(qualifiedName))
	return v.Hash() * h.Sum64()
}
