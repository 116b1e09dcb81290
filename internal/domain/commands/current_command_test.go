//go:build unit

package commands_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/cargo-review-deps/internal/domain/commands"
	"github.com/rios0rios0/cargo-review-deps/internal/domain/entities"
	builders "github.com/rios0rios0/cargo-review-deps/test/domain/entitybuilders"
	doubles "github.com/rios0rios0/cargo-review-deps/test/infrastructure/repositorydoubles"
)

func TestCurrentCommandExecute(t *testing.T) {
	t.Parallel()

	t.Run("should copy every crates.io package and skip the workspace member", func(t *testing.T) {
		t.Parallel()

		// given
		packageManager := &doubles.SpyPackageManagerRepository{
			Snapshots: []*entities.Snapshot{
				builders.NewSnapshotBuilder().
					WithPackage(builders.NewResolvedPackageBuilder().
						WithName("test-pkg").WithVersion("0.0.0").AsWorkspaceMember().BuildPackage()).
					WithRegistryPackage("thread_local", "0.3.6").
					WithRegistryPackage("lazy_static", "1.4.0").
					BuildSnapshot(),
			},
		}
		fileSystem := &doubles.SpyFileSystemRepository{}
		dest := filepath.Join(t.TempDir(), "dest")
		cmd := commands.NewCurrentCommand(packageManager, fileSystem)

		// when
		err := cmd.Execute(context.Background(), commands.CurrentOptions{
			Destination:  dest,
			ManifestPath: "/work/Cargo.toml",
		})

		// then
		require.NoError(t, err)
		assert.DirExists(t, dest)
		assert.Equal(t, []string{
			filepath.Join(dest, "lazy_static:1.4.0"),
			filepath.Join(dest, "thread_local:0.3.6"),
		}, fileSystem.Destinations())
		assert.Equal(t, filepath.Join("/registry/src", "lazy_static-1.4.0"), fileSystem.Copies[0].Src)
		assert.Equal(t, []entities.MetadataQuery{{ManifestPath: "/work/Cargo.toml"}}, packageManager.MetadataQueries)
	})

	t.Run("should fail before copying when metadata fails", func(t *testing.T) {
		t.Parallel()

		// given
		packageManager := &doubles.SpyPackageManagerRepository{MetadataErr: entities.ErrResolutionFailed}
		fileSystem := &doubles.SpyFileSystemRepository{}
		cmd := commands.NewCurrentCommand(packageManager, fileSystem)

		// when
		err := cmd.Execute(context.Background(), commands.CurrentOptions{Destination: t.TempDir()})

		// then
		require.ErrorIs(t, err, entities.ErrResolutionFailed)
		assert.Empty(t, fileSystem.Copies)
	})

	t.Run("should propagate copy failures", func(t *testing.T) {
		t.Parallel()

		// given
		packageManager := &doubles.SpyPackageManagerRepository{
			Snapshots: []*entities.Snapshot{
				builders.NewSnapshotBuilder().WithRegistryPackage("rand", "0.6.1").BuildSnapshot(),
			},
		}
		fileSystem := &doubles.SpyFileSystemRepository{
			CopyErr: entities.NewIOError("copy", "/dest/rand:0.6.1", assert.AnError),
		}
		cmd := commands.NewCurrentCommand(packageManager, fileSystem)

		// when
		err := cmd.Execute(context.Background(), commands.CurrentOptions{Destination: t.TempDir()})

		// then
		assert.ErrorIs(t, err, entities.ErrIO)
	})
}
