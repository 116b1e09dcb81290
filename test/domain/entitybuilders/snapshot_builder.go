//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	testkit "github.com/rios0rios0/testkit/pkg/test"

	"github.com/rios0rios0/cargo-review-deps/internal/domain/entities"
)

const defaultWorkspaceRoot = "/workspace"

// SnapshotBuilder helps create metadata snapshots with a fluent interface.
type SnapshotBuilder struct {
	*testkit.BaseBuilder
	workspaceRoot string
	packages      []entities.ResolvedPackage
}

// NewSnapshotBuilder creates a new snapshot builder with an empty package list.
func NewSnapshotBuilder() *SnapshotBuilder {
	return &SnapshotBuilder{
		BaseBuilder:   testkit.NewBaseBuilder(),
		workspaceRoot: defaultWorkspaceRoot,
	}
}

// WithWorkspaceRoot sets the workspace root.
func (b *SnapshotBuilder) WithWorkspaceRoot(root string) *SnapshotBuilder {
	b.workspaceRoot = root
	return b
}

// WithPackage appends a package.
func (b *SnapshotBuilder) WithPackage(pkg entities.ResolvedPackage) *SnapshotBuilder {
	b.packages = append(b.packages, pkg)
	return b
}

// WithRegistryPackage appends a default crates.io package with the given name and version.
func (b *SnapshotBuilder) WithRegistryPackage(name, version string) *SnapshotBuilder {
	return b.WithPackage(NewResolvedPackageBuilder().WithName(name).WithVersion(version).BuildPackage())
}

// Build creates the snapshot (satisfies testkit.Builder interface).
func (b *SnapshotBuilder) Build() interface{} {
	return b.BuildSnapshot()
}

// BuildSnapshot creates the snapshot with a concrete return type.
func (b *SnapshotBuilder) BuildSnapshot() *entities.Snapshot {
	packages := make([]entities.ResolvedPackage, len(b.packages))
	copy(packages, b.packages)
	return &entities.Snapshot{
		WorkspaceRoot: b.workspaceRoot,
		Packages:      packages,
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *SnapshotBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.workspaceRoot = defaultWorkspaceRoot
	b.packages = nil
	return b
}

// Clone creates a deep copy of the SnapshotBuilder.
func (b *SnapshotBuilder) Clone() testkit.Builder {
	packages := make([]entities.ResolvedPackage, len(b.packages))
	copy(packages, b.packages)
	return &SnapshotBuilder{
		BaseBuilder:   b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		workspaceRoot: b.workspaceRoot,
		packages:      packages,
	}
}
