package difftool

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/cargo-review-deps/internal/domain/entities"
	"github.com/rios0rios0/cargo-review-deps/internal/domain/repositories"
)

// exitDifferencesFound is how diff(1) reports that the inputs differ.
const exitDifferencesFound = 1

// DiffToolRepository implements repositories.DiffToolRepository on top of diff(1).
type DiffToolRepository struct {
	binary string
	args   []string
	stdout io.Writer
	stderr io.Writer
}

// NewDiffToolRepository creates a diff tool streaming to the process' own output.
func NewDiffToolRepository(settings *entities.Settings) repositories.DiffToolRepository {
	return NewDiffToolRepositoryWithOutput(settings.DiffBinary, settings.DiffArgs, os.Stdout, os.Stderr)
}

// NewDiffToolRepositoryWithOutput creates a diff tool streaming to the given writers.
func NewDiffToolRepositoryWithOutput(
	binary string,
	args []string,
	stdout, stderr io.Writer,
) *DiffToolRepository {
	return &DiffToolRepository{binary: binary, args: args, stdout: stdout, stderr: stderr}
}

// Diff runs the tool on both trees. An exit status of 1 only means the trees differ.
func (it *DiffToolRepository) Diff(ctx context.Context, first, second string) error {
	args := append(append([]string{}, it.args...), first, second)
	cmd := exec.CommandContext(ctx, it.binary, args...) //nolint:gosec // binary comes from settings
	cmd.Stdout = it.stdout
	cmd.Stderr = it.stderr

	logger.Debugf("Comparing %s with %s", first, second)
	err := cmd.Run()
	if err == nil {
		return nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if exitErr.ExitCode() == exitDifferencesFound {
			return nil
		}
		return fmt.Errorf("%w: %s exited with status %d", entities.ErrDiffFailed, it.binary, exitErr.ExitCode())
	}
	return fmt.Errorf("failed to launch %s: %w", it.binary, err)
}

// Available probes the tool with `--version`.
func (it *DiffToolRepository) Available(ctx context.Context) bool {
	cmd := exec.CommandContext(ctx, it.binary, "--version") //nolint:gosec // binary comes from settings
	cmd.Stdout = io.Discard
	cmd.Stderr = io.Discard
	return cmd.Run() == nil
}
