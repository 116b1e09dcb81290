package entities

import (
	"path/filepath"
	"sort"
	"strings"
)

// LockfileName is the name of the lock file cargo writes at the workspace root.
const LockfileName = "Cargo.lock"

// Origin tells where a resolved package comes from.
type Origin int

const (
	// OriginPath is a local path dependency outside the workspace.
	OriginPath Origin = iota
	// OriginWorkspace is a member of the current workspace.
	OriginWorkspace
	// OriginRegistry is a package published on crates.io.
	OriginRegistry
	// OriginAlternateRegistry is a package from any other registry.
	OriginAlternateRegistry
	// OriginGit is a git dependency.
	OriginGit
)

func (o Origin) String() string {
	switch o {
	case OriginWorkspace:
		return "workspace"
	case OriginRegistry:
		return "registry"
	case OriginAlternateRegistry:
		return "alternate-registry"
	case OriginGit:
		return "git"
	default:
		return "path"
	}
}

const (
	cratesIOGitIndex    = "registry+https://github.com/rust-lang/crates.io-index"
	cratesIOSparseIndex = "sparse+https://index.crates.io/"
)

// ClassifySource maps a cargo source string to an Origin. Workspace membership is decided by
// the caller, since the source alone does not carry it.
func ClassifySource(source string) Origin {
	switch {
	case source == "":
		return OriginPath
	case source == cratesIOGitIndex, source == cratesIOSparseIndex:
		return OriginRegistry
	case strings.HasPrefix(source, "registry+"), strings.HasPrefix(source, "sparse+"):
		return OriginAlternateRegistry
	case strings.HasPrefix(source, "git+"):
		return OriginGit
	default:
		return OriginPath
	}
}

// ResolvedPackage is one entry of a dependency graph snapshot.
type ResolvedPackage struct {
	ID           string // opaque cargo package id
	Name         string
	Version      string
	Source       string // cargo source string, empty for local packages
	ManifestPath string // path to the package's Cargo.toml
	Origin       Origin
}

// Reviewable reports whether the package comes from crates.io and can be audited.
func (p ResolvedPackage) Reviewable() bool { return p.Origin == OriginRegistry }

// SourceDir returns the directory holding the package's extracted source tree.
func (p ResolvedPackage) SourceDir() string { return filepath.Dir(p.ManifestPath) }

// Key returns the "name:version" encoding used for destination directory names.
func (p ResolvedPackage) Key() string { return p.Name + ":" + p.Version }

// MetadataQuery selects which manifest `cargo metadata` runs against.
type MetadataQuery struct {
	Dir          string // working directory; empty means the current one
	ManifestPath string // explicit manifest; empty means the ambient project
}

// Snapshot is the result of one metadata query.
type Snapshot struct {
	WorkspaceRoot string
	Packages      []ResolvedPackage
}

// LockfilePath returns the location of the workspace lock file.
func (s *Snapshot) LockfilePath() string {
	return filepath.Join(s.WorkspaceRoot, LockfileName)
}

// Find returns the package matching id exactly.
func (s *Snapshot) Find(id PackageID) (ResolvedPackage, bool) {
	for _, pkg := range s.Packages {
		if id.Matches(pkg) {
			return pkg, true
		}
	}
	return ResolvedPackage{}, false
}

// Partition splits the packages into reviewable ones and the rest, each sorted by name and version.
func (s *Snapshot) Partition() ([]ResolvedPackage, []ResolvedPackage) {
	var reviewable, skipped []ResolvedPackage
	for _, pkg := range s.Packages {
		if pkg.Reviewable() {
			reviewable = append(reviewable, pkg)
		} else {
			skipped = append(skipped, pkg)
		}
	}
	sortPackages(reviewable)
	sortPackages(skipped)
	return reviewable, skipped
}

// Reviewable returns a snapshot containing only the crates.io packages.
func (s *Snapshot) Reviewable() *Snapshot {
	reviewable, _ := s.Partition()
	return &Snapshot{WorkspaceRoot: s.WorkspaceRoot, Packages: reviewable}
}

func sortPackages(pkgs []ResolvedPackage) {
	sort.SliceStable(pkgs, func(i, j int) bool {
		if pkgs[i].Name != pkgs[j].Name {
			return pkgs[i].Name < pkgs[j].Name
		}
		return compareVersions(pkgs[i].Version, pkgs[j].Version) < 0
	})
}
