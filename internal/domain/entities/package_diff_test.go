//go:build unit

package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/cargo-review-deps/internal/domain/entities"
	builders "github.com/rios0rios0/cargo-review-deps/test/domain/entitybuilders"
)

func TestDiffSnapshots(t *testing.T) {
	t.Parallel()

	t.Run("should return nothing for identical snapshots", func(t *testing.T) {
		t.Parallel()

		// given
		snapshot := builders.NewSnapshotBuilder().
			WithRegistryPackage("rand", "0.6.0").
			WithRegistryPackage("libc", "0.2.0").
			BuildSnapshot()

		// when
		diffs := entities.DiffSnapshots(snapshot, snapshot)

		// then
		assert.Empty(t, diffs)
	})

	t.Run("should report an upgrade with both source directories", func(t *testing.T) {
		t.Parallel()

		// given
		before := builders.NewSnapshotBuilder().WithRegistryPackage("rand", "0.6.0").BuildSnapshot()
		after := builders.NewSnapshotBuilder().WithRegistryPackage("rand", "0.6.1").BuildSnapshot()

		// when
		diffs := entities.DiffSnapshots(before, after)

		// then
		require.Len(t, diffs, 1)
		assert.Equal(t, entities.PackageDiff{
			Name:          "rand",
			Label:         "rand",
			BeforeVersion: "0.6.0",
			AfterVersion:  "0.6.1",
			Before:        "/registry/src/rand-0.6.0",
			After:         "/registry/src/rand-0.6.1",
		}, diffs[0])
		assert.Equal(t, entities.ChangeUpgraded, diffs[0].Kind())
	})

	t.Run("should report additions and removals sorted by name", func(t *testing.T) {
		t.Parallel()

		// given
		before := builders.NewSnapshotBuilder().
			WithRegistryPackage("zeroize", "1.0.0").
			WithRegistryPackage("libc", "0.2.0").
			BuildSnapshot()
		after := builders.NewSnapshotBuilder().
			WithRegistryPackage("libc", "0.2.0").
			WithRegistryPackage("cfg-if", "1.0.0").
			BuildSnapshot()

		// when
		diffs := entities.DiffSnapshots(before, after)

		// then
		require.Len(t, diffs, 2)
		assert.Equal(t, "cfg-if", diffs[0].Name)
		assert.Empty(t, diffs[0].Before)
		assert.Equal(t, entities.ChangeAdded, diffs[0].Kind())
		assert.Equal(t, "zeroize", diffs[1].Name)
		assert.Empty(t, diffs[1].After)
		assert.Equal(t, entities.ChangeRemoved, diffs[1].Kind())
	})

	t.Run("should detect a downgrade using semantic ordering", func(t *testing.T) {
		t.Parallel()

		// given
		before := builders.NewSnapshotBuilder().WithRegistryPackage("rand", "0.10.0").BuildSnapshot()
		after := builders.NewSnapshotBuilder().WithRegistryPackage("rand", "0.9.0").BuildSnapshot()

		// when
		diffs := entities.DiffSnapshots(before, after)

		// then
		require.Len(t, diffs, 1)
		assert.Equal(t, entities.ChangeDowngraded, diffs[0].Kind())
	})

	t.Run("should pair multiple versions of one crate and label them by version", func(t *testing.T) {
		t.Parallel()

		// given
		before := builders.NewSnapshotBuilder().
			WithRegistryPackage("rand", "0.5.0").
			WithRegistryPackage("rand", "0.6.0").
			WithRegistryPackage("rand", "0.7.0").
			BuildSnapshot()
		after := builders.NewSnapshotBuilder().
			WithRegistryPackage("rand", "0.5.1").
			WithRegistryPackage("rand", "0.6.0").
			WithRegistryPackage("rand", "0.7.3").
			WithRegistryPackage("rand", "0.8.0").
			BuildSnapshot()

		// when
		diffs := entities.DiffSnapshots(before, after)

		// then
		require.Len(t, diffs, 3)
		assert.Equal(t, "rand:0.5.0", diffs[0].Label)
		assert.Equal(t, "0.5.1", diffs[0].AfterVersion)
		assert.Equal(t, "rand:0.7.0", diffs[1].Label)
		assert.Equal(t, "0.7.3", diffs[1].AfterVersion)
		assert.Equal(t, "rand:0.8.0", diffs[2].Label)
		assert.Empty(t, diffs[2].BeforeVersion)
		assert.Equal(t, entities.ChangeAdded, diffs[2].Kind())
	})

	t.Run("should tolerate nil snapshots", func(t *testing.T) {
		t.Parallel()

		// given
		after := builders.NewSnapshotBuilder().WithRegistryPackage("rand", "0.6.0").BuildSnapshot()

		// when
		diffs := entities.DiffSnapshots(nil, after)

		// then
		require.Len(t, diffs, 1)
		assert.Equal(t, entities.ChangeAdded, diffs[0].Kind())
	})
}

func TestUpdateReportLockfileChanged(t *testing.T) {
	t.Parallel()

	// given
	unchanged := entities.UpdateReport{LockfileBefore: []byte("a"), LockfileAfter: []byte("a")}
	changed := entities.UpdateReport{LockfileBefore: []byte("a"), LockfileAfter: []byte("b")}

	// when / then
	assert.False(t, unchanged.LockfileChanged())
	assert.True(t, changed.LockfileChanged())
}
