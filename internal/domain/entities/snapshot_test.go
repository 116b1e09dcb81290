//go:build unit

package entities_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/cargo-review-deps/internal/domain/entities"
	builders "github.com/rios0rios0/cargo-review-deps/test/domain/entitybuilders"
)

func TestClassifySource(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		source string
		want   entities.Origin
	}{
		{name: "no source", source: "", want: entities.OriginPath},
		{name: "crates.io git index", source: "registry+https://github.com/rust-lang/crates.io-index", want: entities.OriginRegistry},
		{name: "crates.io sparse index", source: "sparse+https://index.crates.io/", want: entities.OriginRegistry},
		{name: "private registry", source: "registry+https://example.com/index", want: entities.OriginAlternateRegistry},
		{name: "private sparse registry", source: "sparse+https://example.com/index/", want: entities.OriginAlternateRegistry},
		{name: "git", source: "git+https://github.com/rust-random/rand?rev=abc#abc", want: entities.OriginGit},
		{name: "unknown scheme", source: "path+file:///tmp/x", want: entities.OriginPath},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// when
			got := entities.ClassifySource(tt.source)

			// then
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSnapshot(t *testing.T) {
	t.Parallel()

	t.Run("should locate the lock file at the workspace root", func(t *testing.T) {
		t.Parallel()

		// given
		snapshot := builders.NewSnapshotBuilder().WithWorkspaceRoot("/work/project").BuildSnapshot()

		// when
		path := snapshot.LockfilePath()

		// then
		assert.Equal(t, filepath.Join("/work/project", "Cargo.lock"), path)
	})

	t.Run("should find a package by exact id", func(t *testing.T) {
		t.Parallel()

		// given
		snapshot := builders.NewSnapshotBuilder().
			WithRegistryPackage("rand", "0.6.0").
			WithRegistryPackage("rand", "0.6.1").
			BuildSnapshot()
		id, err := entities.ParsePackageID("rand:0.6.1")
		require.NoError(t, err)

		// when
		pkg, found := snapshot.Find(id)

		// then
		require.True(t, found)
		assert.Equal(t, "0.6.1", pkg.Version)
		assert.Equal(t, filepath.Join("/registry/src", "rand-0.6.1"), pkg.SourceDir())
	})

	t.Run("should not find a missing package", func(t *testing.T) {
		t.Parallel()

		// given
		snapshot := builders.NewSnapshotBuilder().WithRegistryPackage("rand", "0.6.0").BuildSnapshot()
		id, err := entities.ParsePackageID("rand:0.6.1")
		require.NoError(t, err)

		// when
		_, found := snapshot.Find(id)

		// then
		assert.False(t, found)
	})

	t.Run("should partition reviewable packages from the rest in sorted order", func(t *testing.T) {
		t.Parallel()

		// given
		snapshot := builders.NewSnapshotBuilder().
			WithRegistryPackage("rand", "0.10.0").
			WithPackage(builders.NewResolvedPackageBuilder().WithName("my-app").AsWorkspaceMember().BuildPackage()).
			WithRegistryPackage("libc", "0.2.0").
			WithRegistryPackage("rand", "0.9.0").
			WithPackage(builders.NewResolvedPackageBuilder().WithName("forked").AsGit("https://example.com/f").BuildPackage()).
			BuildSnapshot()

		// when
		reviewable, skipped := snapshot.Partition()

		// then
		keys := make([]string, 0, len(reviewable))
		for _, pkg := range reviewable {
			keys = append(keys, pkg.Key())
		}
		assert.Equal(t, []string{"libc:0.2.0", "rand:0.9.0", "rand:0.10.0"}, keys)
		require.Len(t, skipped, 2)
		assert.Equal(t, "forked", skipped[0].Name)
		assert.Equal(t, "my-app", skipped[1].Name)
		assert.Len(t, snapshot.Reviewable().Packages, 3)
	})
}

func TestOriginString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "path", entities.OriginPath.String())
	assert.Equal(t, "workspace", entities.OriginWorkspace.String())
	assert.Equal(t, "registry", entities.OriginRegistry.String())
	assert.Equal(t, "alternate-registry", entities.OriginAlternateRegistry.String())
	assert.Equal(t, "git", entities.OriginGit.String())
}
