// Package manifest adapts Bazel MODULE file manifests into version sources
// for the gosemver lookup API.
//
// The core library never reads host metadata itself; this package is the
// host-side adapter. It extracts the module's own declared version, the
// version attribute of each bazel_dep, and single_version_override pins,
// and exposes them as gosemver.Source values so callers can resolve them
// through gosemver.FromSource.
package manifest

import (
	"fmt"
	"os"

	"github.com/bazelbuild/buildtools/build"

	gosemver "github.com/albertocavalcante/go-semver"
)

// File is a parsed manifest.
type File struct {
	// Name is the module's declared name, if any.
	Name string

	// Version is the module's declared version string, verbatim. It is not
	// validated here; resolve it through Module and gosemver.FromSource.
	Version string

	// Deps maps dependency names to their declared version strings.
	Deps map[string]string

	// Overrides maps module names to single_version_override pins.
	Overrides map[string]string
}

// Load reads and parses a manifest file from disk.
func Load(path string, opts ...Option) (*File, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	return parse(path, data, cfg)
}

// Parse parses manifest content.
func Parse(content []byte, opts ...Option) (*File, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}
	return parse("MODULE.bazel", content, cfg)
}

func parse(filename string, content []byte, cfg *config) (*File, error) {
	f, err := build.ParseModule(filename, content)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", filename, err)
	}

	mf := &File{
		Deps:      make(map[string]string),
		Overrides: make(map[string]string),
	}

	for _, stmt := range f.Stmt {
		call, ok := stmt.(*build.CallExpr)
		if !ok {
			continue
		}
		fn, ok := call.X.(*build.Ident)
		if !ok {
			continue
		}

		switch fn.Name {
		case "module":
			mf.Name = stringAttr(call, "name")
			mf.Version = stringAttr(call, "version")

		case "bazel_dep":
			if name := stringAttr(call, "name"); name != "" {
				mf.Deps[name] = stringAttr(call, "version")
			}

		case "single_version_override":
			name := stringAttr(call, "module_name")
			if v := stringAttr(call, "version"); name != "" && v != "" {
				mf.Overrides[name] = v
			}
		}
	}

	cfg.logger.Debug("parsed manifest",
		"file", filename,
		"module", mf.Name,
		"deps", len(mf.Deps),
		"overrides", len(mf.Overrides))

	return mf, nil
}

// stringAttr extracts a named string attribute from a call expression.
// Returns empty string if the attribute is absent or not a string literal.
func stringAttr(call *build.CallExpr, name string) string {
	for _, arg := range call.List {
		assign, ok := arg.(*build.AssignExpr)
		if !ok {
			continue
		}
		lhs, ok := assign.LHS.(*build.Ident)
		if !ok || lhs.Name != name {
			continue
		}
		if str, ok := assign.RHS.(*build.StringExpr); ok {
			return str.Value
		}
	}
	return ""
}

// Module returns a version source for the module's own declared version.
// The declaration is authoritative, so a malformed version surfaces as an
// error from gosemver.FromSource.
func (f *File) Module() gosemver.Source {
	return moduleSource{f}
}

// Dep returns a version source for the named dependency. An explicit
// single_version_override pin is the declared tier; the bazel_dep version
// attribute is the lenient fallback tier, since dep version attributes
// routinely carry non-semver values.
func (f *File) Dep(name string) gosemver.Source {
	return depSource{f: f, name: name}
}

type moduleSource struct {
	f *File
}

func (s moduleSource) DeclaredVersion() (string, bool) {
	return s.f.Version, s.f.Version != ""
}

func (s moduleSource) SpecificationVersion() (string, bool) {
	return "", false
}

type depSource struct {
	f    *File
	name string
}

func (s depSource) DeclaredVersion() (string, bool) {
	v, ok := s.f.Overrides[s.name]
	return v, ok
}

func (s depSource) SpecificationVersion() (string, bool) {
	v, ok := s.f.Deps[s.name]
	return v, ok && v != ""
}
