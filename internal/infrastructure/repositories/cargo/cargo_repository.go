package cargo

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	logger "github.com/sirupsen/logrus"
	"go.trai.ch/zerr"

	"github.com/rios0rios0/cargo-review-deps/internal/domain/entities"
	"github.com/rios0rios0/cargo-review-deps/internal/domain/repositories"
)

// metadataFormatVersion is the `cargo metadata` output schema this package understands.
const metadataFormatVersion = "1"

// CargoRepository implements repositories.PackageManagerRepository by shelling out to cargo.
type CargoRepository struct {
	binary string
	stdout io.Writer
	stderr io.Writer
}

// NewCargoRepository creates a cargo-backed package manager using the configured binary.
func NewCargoRepository(settings *entities.Settings) repositories.PackageManagerRepository {
	return NewCargoRepositoryWithOutput(settings.CargoBinary, os.Stdout, os.Stderr)
}

// NewCargoRepositoryWithOutput creates a cargo-backed package manager streaming `cargo update`
// to the given writers.
func NewCargoRepositoryWithOutput(binary string, stdout, stderr io.Writer) *CargoRepository {
	return &CargoRepository{binary: binary, stdout: stdout, stderr: stderr}
}

// Metadata runs `cargo metadata` and normalizes its output into a snapshot.
func (it *CargoRepository) Metadata(
	ctx context.Context,
	query entities.MetadataQuery,
) (*entities.Snapshot, error) {
	args := []string{"metadata", "--format-version", metadataFormatVersion}
	if query.ManifestPath != "" {
		args = append(args, "--manifest-path", query.ManifestPath)
	}

	cmd := exec.CommandContext(ctx, it.binary, args...) //nolint:gosec // binary comes from settings
	cmd.Dir = query.Dir
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	logger.Debugf("Running %s %s", it.binary, strings.Join(args, " "))
	output, err := cmd.Output()
	if err != nil {
		diagnostic := strings.TrimSpace(stderr.String())
		if diagnostic == "" {
			diagnostic = "no diagnostic output"
		}
		return nil, fmt.Errorf("%w: %w", entities.ErrResolutionFailed, zerr.Wrap(err, diagnostic))
	}

	snapshot, err := ParseMetadata(output)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", entities.ErrResolutionFailed, err)
	}
	return snapshot, nil
}

// Update runs `cargo update` in dir with the user's extra arguments; its progress goes
// straight to the terminal.
func (it *CargoRepository) Update(ctx context.Context, dir string, args []string) error {
	cmdArgs := append([]string{"update"}, args...)
	cmd := exec.CommandContext(ctx, it.binary, cmdArgs...) //nolint:gosec // user provided arguments
	cmd.Dir = dir
	cmd.Stdout = it.stdout
	cmd.Stderr = it.stderr

	logger.Infof("Running %s %s", it.binary, strings.Join(cmdArgs, " "))
	if err := cmd.Run(); err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		return fmt.Errorf("%w: %w", entities.ErrUpdateFailed,
			zerr.With(zerr.Wrap(err, "cargo update"), "exit_code", exitCode))
	}
	return nil
}

type metadataOutput struct {
	Packages         []metadataPackage `json:"packages"`
	WorkspaceMembers []string          `json:"workspace_members"`
	WorkspaceRoot    string            `json:"workspace_root"`
}

type metadataPackage struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Version      string  `json:"version"`
	Source       *string `json:"source"`
	ManifestPath string  `json:"manifest_path"`
}

// ParseMetadata decodes `cargo metadata --format-version 1` output.
func ParseMetadata(data []byte) (*entities.Snapshot, error) {
	var out metadataOutput
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, zerr.Wrap(err, "malformed cargo metadata output")
	}
	if out.WorkspaceRoot == "" {
		return nil, zerr.New("malformed cargo metadata output: missing workspace_root")
	}

	members := make(map[string]struct{}, len(out.WorkspaceMembers))
	for _, id := range out.WorkspaceMembers {
		members[id] = struct{}{}
	}

	snapshot := &entities.Snapshot{
		WorkspaceRoot: out.WorkspaceRoot,
		Packages:      make([]entities.ResolvedPackage, 0, len(out.Packages)),
	}
	for _, pkg := range out.Packages {
		if pkg.Name == "" || pkg.Version == "" || pkg.ManifestPath == "" {
			return nil, zerr.With(
				zerr.New("malformed cargo metadata output: incomplete package entry"), "id", pkg.ID)
		}

		source := ""
		if pkg.Source != nil {
			source = *pkg.Source
		}
		origin := entities.ClassifySource(source)
		if _, ok := members[pkg.ID]; ok {
			origin = entities.OriginWorkspace
		}

		snapshot.Packages = append(snapshot.Packages, entities.ResolvedPackage{
			ID:           pkg.ID,
			Name:         pkg.Name,
			Version:      pkg.Version,
			Source:       source,
			ManifestPath: pkg.ManifestPath,
			Origin:       origin,
		})
	}
	return snapshot, nil
}
