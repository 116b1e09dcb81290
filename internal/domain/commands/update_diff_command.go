package commands

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/cargo-review-deps/internal/domain/entities"
	"github.com/rios0rios0/cargo-review-deps/internal/domain/repositories"
	"github.com/rios0rios0/cargo-review-deps/internal/lockfile"
)

// UpdateDiff is the interface for the update-diff command.
type UpdateDiff interface {
	Execute(ctx context.Context, opts UpdateDiffOptions) error
}

// UpdateDiffOptions holds runtime options for a guarded update.
type UpdateDiffOptions struct {
	Destination  string
	Args         []string // forwarded to `cargo update`
	ProjectDir   string
	ManifestPath string
	KeepLockfile bool // keep the updated lock file instead of restoring it
}

// UpdateDiffCommand runs `cargo update` under a lock file guard and dumps the sources of every
// package the update would change.
type UpdateDiffCommand struct {
	packageManager repositories.PackageManagerRepository
	fileSystem     repositories.FileSystemRepository
	reports        repositories.ReportRepository
}

// NewUpdateDiffCommand creates a new UpdateDiffCommand.
func NewUpdateDiffCommand(
	packageManager repositories.PackageManagerRepository,
	fileSystem repositories.FileSystemRepository,
	reports repositories.ReportRepository,
) *UpdateDiffCommand {
	return &UpdateDiffCommand{
		packageManager: packageManager,
		fileSystem:     fileSystem,
		reports:        reports,
	}
}

// Execute runs the update and leaves the lock file exactly as it found it, whatever happens,
// unless KeepLockfile asks to keep the new resolution after a successful run.
func (it *UpdateDiffCommand) Execute(ctx context.Context, opts UpdateDiffOptions) error {
	query := entities.MetadataQuery{Dir: opts.ProjectDir, ManifestPath: opts.ManifestPath}

	before, err := it.packageManager.Metadata(ctx, query)
	if err != nil {
		return err
	}

	guard, err := lockfile.Acquire(before.LockfilePath())
	if err != nil {
		return err
	}
	defer guard.Release()

	if err = it.packageManager.Update(ctx, before.WorkspaceRoot, opts.Args); err != nil {
		return errors.Join(err, guard.Restore())
	}

	after, err := it.packageManager.Metadata(ctx, query)
	if err != nil {
		return errors.Join(err, guard.Restore())
	}

	updated, err := os.ReadFile(guard.Path())
	if err != nil {
		return errors.Join(entities.NewIOError("read updated lock file", guard.Path(), err), guard.Restore())
	}

	changes := entities.DiffSnapshots(before.Reviewable(), after.Reviewable())
	logger.Infof("%d packages changed", len(changes))

	if err = it.dump(opts.Destination, changes); err != nil {
		return errors.Join(err, guard.Restore())
	}

	if err = it.reports.WriteUpdateReport(opts.Destination, entities.UpdateReport{
		Args:           opts.Args,
		Changes:        changes,
		LockfileBefore: guard.Original(),
		LockfileAfter:  updated,
	}); err != nil {
		return errors.Join(err, guard.Restore())
	}

	if opts.KeepLockfile {
		logger.Infof("Keeping the updated %s", guard.Path())
		return guard.Keep()
	}
	return guard.Restore()
}

// dump copies both sides of every change under <destination>/before and <destination>/after.
// Entries copied before a failure are left in place.
func (it *UpdateDiffCommand) dump(destination string, changes []entities.PackageDiff) error {
	if err := os.MkdirAll(destination, destinationMode); err != nil {
		return entities.NewIOError("create destination", destination, err)
	}

	for _, change := range changes {
		for _, side := range []struct {
			dir, src string
		}{
			{entities.BeforeDirName, change.Before},
			{entities.AfterDirName, change.After},
		} {
			if side.src == "" {
				continue
			}
			dst := filepath.Join(destination, side.dir, change.Label)
			if err := os.MkdirAll(dst, destinationMode); err != nil {
				return entities.NewIOError("create directory", dst, err)
			}
			if err := it.fileSystem.CopyTree(side.src, dst); err != nil {
				return err
			}
		}
		logger.Infof("%s %s: %s -> %s", change.Kind(), change.Name, orNone(change.BeforeVersion), orNone(change.AfterVersion))
	}
	return nil
}

func orNone(version string) string {
	if version == "" {
		return "none"
	}
	return version
}
