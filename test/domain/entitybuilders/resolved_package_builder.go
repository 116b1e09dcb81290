//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"path/filepath"

	testkit "github.com/rios0rios0/testkit/pkg/test"

	"github.com/rios0rios0/cargo-review-deps/internal/domain/entities"
)

const (
	defaultPackageName    = "test-crate"
	defaultPackageVersion = "1.0.0"
	defaultRegistryRoot   = "/registry/src"
	cratesIOSource        = "registry+https://github.com/rust-lang/crates.io-index"
)

// ResolvedPackageBuilder helps create test packages with a fluent interface.
// By default it builds a crates.io package whose sources live under /registry/src/<name>-<version>.
type ResolvedPackageBuilder struct {
	*testkit.BaseBuilder
	name         string
	version      string
	source       string
	manifestPath string
	origin       entities.Origin
}

// NewResolvedPackageBuilder creates a new package builder with sensible defaults.
func NewResolvedPackageBuilder() *ResolvedPackageBuilder {
	return &ResolvedPackageBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		name:        defaultPackageName,
		version:     defaultPackageVersion,
		source:      cratesIOSource,
		origin:      entities.OriginRegistry,
	}
}

// WithName sets the package name.
func (b *ResolvedPackageBuilder) WithName(name string) *ResolvedPackageBuilder {
	b.name = name
	return b
}

// WithVersion sets the package version.
func (b *ResolvedPackageBuilder) WithVersion(version string) *ResolvedPackageBuilder {
	b.version = version
	return b
}

// WithManifestPath sets the package's Cargo.toml location.
func (b *ResolvedPackageBuilder) WithManifestPath(path string) *ResolvedPackageBuilder {
	b.manifestPath = path
	return b
}

// WithSourceDir places the package's Cargo.toml inside dir.
func (b *ResolvedPackageBuilder) WithSourceDir(dir string) *ResolvedPackageBuilder {
	b.manifestPath = filepath.Join(dir, "Cargo.toml")
	return b
}

// AsWorkspaceMember turns the package into a local workspace member.
func (b *ResolvedPackageBuilder) AsWorkspaceMember() *ResolvedPackageBuilder {
	b.source = ""
	b.origin = entities.OriginWorkspace
	return b
}

// AsGit turns the package into a git dependency.
func (b *ResolvedPackageBuilder) AsGit(url string) *ResolvedPackageBuilder {
	b.source = "git+" + url
	b.origin = entities.OriginGit
	return b
}

// Build creates the package (satisfies testkit.Builder interface).
func (b *ResolvedPackageBuilder) Build() interface{} {
	return b.BuildPackage()
}

// BuildPackage creates the package with a concrete return type.
func (b *ResolvedPackageBuilder) BuildPackage() entities.ResolvedPackage {
	manifestPath := b.manifestPath
	if manifestPath == "" {
		manifestPath = filepath.Join(defaultRegistryRoot, b.name+"-"+b.version, "Cargo.toml")
	}
	return entities.ResolvedPackage{
		ID:           b.name + " " + b.version + " (" + b.source + ")",
		Name:         b.name,
		Version:      b.version,
		Source:       b.source,
		ManifestPath: manifestPath,
		Origin:       b.origin,
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *ResolvedPackageBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.name = defaultPackageName
	b.version = defaultPackageVersion
	b.source = cratesIOSource
	b.manifestPath = ""
	b.origin = entities.OriginRegistry
	return b
}

// Clone creates a deep copy of the ResolvedPackageBuilder.
func (b *ResolvedPackageBuilder) Clone() testkit.Builder {
	return &ResolvedPackageBuilder{
		BaseBuilder:  b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		name:         b.name,
		version:      b.version,
		source:       b.source,
		manifestPath: b.manifestPath,
		origin:       b.origin,
	}
}
