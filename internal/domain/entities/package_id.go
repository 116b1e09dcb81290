package entities

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// PackageID is an unambiguous reference to one crate version, encoded as "name:x.y.z".
// Git dependencies and alternative registries are not represented.
type PackageID struct {
	name    string
	version *semver.Version
}

// ParsePackageID parses "name:x.y.z". Only the first colon separates the name from the version,
// and the version must be a strict semantic version.
func ParsePackageID(text string) (PackageID, error) {
	name, rawVersion, found := strings.Cut(text, ":")
	if !found || name == "" {
		return PackageID{}, invalidSpecification(text)
	}

	version, err := semver.StrictNewVersion(rawVersion)
	if err != nil {
		return PackageID{}, invalidSpecification(text)
	}

	return PackageID{name: name, version: version}, nil
}

// NewPackageID builds an identifier from the name and version of a resolved package.
func NewPackageID(name, version string) (PackageID, error) {
	return ParsePackageID(name + ":" + version)
}

func invalidSpecification(text string) error {
	return fmt.Errorf("%w: %q; expected \"name:x.y.z\"", ErrInvalidSpecification, text)
}

// Name returns the crate name.
func (it PackageID) Name() string { return it.name }

// Version returns the canonical version text.
func (it PackageID) Version() string {
	if it.version == nil {
		return ""
	}
	return it.version.String()
}

// IsZero reports whether the identifier was never parsed.
func (it PackageID) IsZero() bool { return it.name == "" && it.version == nil }

func (it PackageID) String() string {
	return it.name + ":" + it.Version()
}

// Compare orders identifiers by name, then by semantic version. Build metadata, which semver
// precedence ignores, breaks the remaining ties so that equal identifiers have equal String().
func (it PackageID) Compare(other PackageID) int {
	if c := strings.Compare(it.name, other.name); c != 0 {
		return c
	}
	switch {
	case it.version == nil && other.version == nil:
		return 0
	case it.version == nil:
		return -1
	case other.version == nil:
		return 1
	}
	if c := it.version.Compare(other.version); c != 0 {
		return c
	}
	return strings.Compare(it.version.Metadata(), other.version.Metadata())
}

// Less reports whether it sorts before other.
func (it PackageID) Less(other PackageID) bool { return it.Compare(other) < 0 }

// Equal reports whether both identifiers name the same crate version.
func (it PackageID) Equal(other PackageID) bool { return it.Compare(other) == 0 }

// Matches reports whether a resolved package is exactly this crate version.
func (it PackageID) Matches(pkg ResolvedPackage) bool {
	return pkg.Name == it.name && pkg.Version == it.Version()
}
