package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/cargo-review-deps/internal/domain/entities"
	"github.com/rios0rios0/cargo-review-deps/internal/domain/repositories"
)

const destinationMode = 0o755

// Diff is the interface for the diff command.
type Diff interface {
	Execute(ctx context.Context, opts DiffOptions) error
}

// DiffOptions holds runtime options for comparing two crate versions.
type DiffOptions struct {
	First       entities.PackageID
	Second      entities.PackageID
	Destination string // when set, sources are copied here instead of being diffed
}

// DiffCommand fetches two crate versions and either diffs them or copies them side by side.
type DiffCommand struct {
	sources    repositories.SourceRepository
	diffTool   repositories.DiffToolRepository
	fileSystem repositories.FileSystemRepository
}

// NewDiffCommand creates a new DiffCommand.
func NewDiffCommand(
	sources repositories.SourceRepository,
	diffTool repositories.DiffToolRepository,
	fileSystem repositories.FileSystemRepository,
) *DiffCommand {
	return &DiffCommand{
		sources:    sources,
		diffTool:   diffTool,
		fileSystem: fileSystem,
	}
}

// Execute runs the comparison.
func (it *DiffCommand) Execute(ctx context.Context, opts DiffOptions) error {
	firstDir, err := it.sources.Fetch(ctx, opts.First)
	if err != nil {
		return err
	}
	secondDir, err := it.sources.Fetch(ctx, opts.Second)
	if err != nil {
		return err
	}

	if opts.Destination != "" {
		return it.copyPair(opts, firstDir, secondDir)
	}

	if diffErr := it.diffTool.Diff(ctx, firstDir, secondDir); diffErr != nil {
		if !it.diffTool.Available(ctx) {
			return fmt.Errorf(
				"%w.\nTry using --destination flag to run a custom diff tool or to compare sources manually",
				entities.ErrMissingDiffTool,
			)
		}
		return diffErr
	}
	return nil
}

func (it *DiffCommand) copyPair(opts DiffOptions, firstDir, secondDir string) error {
	if err := os.MkdirAll(opts.Destination, destinationMode); err != nil {
		return entities.NewIOError("create destination", opts.Destination, err)
	}

	for _, pair := range []struct {
		id  entities.PackageID
		src string
	}{
		{opts.First, firstDir},
		{opts.Second, secondDir},
	} {
		dst := filepath.Join(opts.Destination, pair.id.String())
		if err := it.fileSystem.CopyTree(pair.src, dst); err != nil {
			return err
		}
		logger.Infof("Copied %s to %s", pair.id, dst)
	}
	return nil
}
