//go:build unit

package report_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/rios0rios0/cargo-review-deps/internal/domain/entities"
	"github.com/rios0rios0/cargo-review-deps/internal/infrastructure/repositories/report"
)

const (
	lockBefore = "[[package]]\nname = \"rand\"\nversion = \"0.6.0\"\n"
	lockAfter  = "[[package]]\nname = \"rand\"\nversion = \"0.6.1\"\n"
)

func sampleReport() entities.UpdateReport {
	return entities.UpdateReport{
		Args: []string{"-p", "rand"},
		Changes: []entities.PackageDiff{
			{
				Name: "cfg-if", Label: "cfg-if",
				AfterVersion: "1.0.0", After: "/registry/src/cfg-if-1.0.0",
			},
			{
				Name: "rand", Label: "rand",
				BeforeVersion: "0.6.0", Before: "/registry/src/rand-0.6.0",
				AfterVersion: "0.6.1", After: "/registry/src/rand-0.6.1",
			},
		},
		LockfileBefore: []byte(lockBefore),
		LockfileAfter:  []byte(lockAfter),
	}
}

func TestBuildChangesDocument(t *testing.T) {
	t.Parallel()

	// when
	doc := report.BuildChangesDocument(sampleReport())

	// then
	assert.Equal(t, []string{"-p", "rand"}, doc.UpdateArgs)
	require.Len(t, doc.Changes, 2)
	assert.Equal(t, report.ChangeRecord{
		Name: "cfg-if", Kind: "added", After: "1.0.0", AfterDir: "after/cfg-if",
	}, doc.Changes[0])
	assert.Equal(t, report.ChangeRecord{
		Name: "rand", Kind: "upgraded", Before: "0.6.0", After: "0.6.1",
		BeforeDir: "before/rand", AfterDir: "after/rand",
	}, doc.Changes[1])
}

func TestReportRepositoryWriteUpdateReport(t *testing.T) {
	t.Parallel()

	t.Run("should write the summary and the lock file diff", func(t *testing.T) {
		t.Parallel()

		// given
		dest := t.TempDir()
		repo := report.NewReportRepository()

		// when
		err := repo.WriteUpdateReport(dest, sampleReport())

		// then
		require.NoError(t, err)

		data, err := os.ReadFile(filepath.Join(dest, report.ChangesFileName))
		require.NoError(t, err)
		var doc report.ChangesDocument
		require.NoError(t, yaml.Unmarshal(data, &doc))
		assert.Equal(t, report.BuildChangesDocument(sampleReport()), doc)

		patch, err := os.ReadFile(filepath.Join(dest, report.LockfileDiffFileName))
		require.NoError(t, err)
		assert.Contains(t, string(patch), "--- a/Cargo.lock")
		assert.Contains(t, string(patch), "+++ b/Cargo.lock")
		assert.Contains(t, string(patch), "-version = \"0.6.0\"")
		assert.Contains(t, string(patch), "+version = \"0.6.1\"")
	})

	t.Run("should skip the lock file diff when nothing changed", func(t *testing.T) {
		t.Parallel()

		// given
		dest := t.TempDir()
		unchanged := entities.UpdateReport{LockfileBefore: []byte(lockBefore), LockfileAfter: []byte(lockBefore)}
		repo := report.NewReportRepository()

		// when
		err := repo.WriteUpdateReport(dest, unchanged)

		// then
		require.NoError(t, err)
		assert.FileExists(t, filepath.Join(dest, report.ChangesFileName))
		assert.NoFileExists(t, filepath.Join(dest, report.LockfileDiffFileName))
	})

	t.Run("should fail with an IO error when the destination is missing", func(t *testing.T) {
		t.Parallel()

		// given
		repo := report.NewReportRepository()

		// when
		err := repo.WriteUpdateReport(filepath.Join(t.TempDir(), "missing"), sampleReport())

		// then
		assert.ErrorIs(t, err, entities.ErrIO)
	})
}
