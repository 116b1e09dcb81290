package commands

import (
	"context"
	"os"
	"path/filepath"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/cargo-review-deps/internal/domain/entities"
	"github.com/rios0rios0/cargo-review-deps/internal/domain/repositories"
)

// Current is the interface for the current command.
type Current interface {
	Execute(ctx context.Context, opts CurrentOptions) error
}

// CurrentOptions holds runtime options for snapshotting a project's dependencies.
type CurrentOptions struct {
	Destination  string
	ProjectDir   string // empty means the working directory
	ManifestPath string // empty means cargo's own manifest discovery
}

// CurrentCommand copies the sources of every crates.io dependency of a project.
type CurrentCommand struct {
	packageManager repositories.PackageManagerRepository
	fileSystem     repositories.FileSystemRepository
}

// NewCurrentCommand creates a new CurrentCommand.
func NewCurrentCommand(
	packageManager repositories.PackageManagerRepository,
	fileSystem repositories.FileSystemRepository,
) *CurrentCommand {
	return &CurrentCommand{
		packageManager: packageManager,
		fileSystem:     fileSystem,
	}
}

// Execute copies each reviewable package to <destination>/<name>:<version>.
func (it *CurrentCommand) Execute(ctx context.Context, opts CurrentOptions) error {
	snapshot, err := it.packageManager.Metadata(ctx, entities.MetadataQuery{
		Dir:          opts.ProjectDir,
		ManifestPath: opts.ManifestPath,
	})
	if err != nil {
		return err
	}

	if err = os.MkdirAll(opts.Destination, destinationMode); err != nil {
		return entities.NewIOError("create destination", opts.Destination, err)
	}

	reviewable, skipped := snapshot.Partition()
	for _, pkg := range skipped {
		logger.Warnf("Skipping package `%s`: not a crates.io dependency (%s)", pkg.Name, pkg.Origin)
	}

	for _, pkg := range reviewable {
		dst := filepath.Join(opts.Destination, pkg.Key())
		if err = it.fileSystem.CopyTree(pkg.SourceDir(), dst); err != nil {
			return err
		}
		logger.Debugf("Copied %s to %s", pkg.Key(), dst)
	}

	logger.Infof("Copied %d packages to %s", len(reviewable), opts.Destination)
	return nil
}
