package cargo

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	lru "github.com/hashicorp/golang-lru/v2"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/cargo-review-deps/internal/domain/entities"
	"github.com/rios0rios0/cargo-review-deps/internal/domain/repositories"
)

const (
	fetchCacheSize = 128
	fetchDirPrefix = "cargo-review-deps-fetches-*"
	manifestMode   = 0o644
)

// CargoSourceRepository implements repositories.SourceRepository by letting cargo itself resolve
// and download the requested version: it writes a single-dependency manifest into a scratch
// directory, queries its metadata, and reads back where the package was extracted.
type CargoSourceRepository struct {
	packageManager repositories.PackageManagerRepository
	resolved       *lru.Cache[string, string]
}

// NewCargoSourceRepository creates a fetcher on top of the given package manager.
func NewCargoSourceRepository(
	packageManager repositories.PackageManagerRepository,
) (*CargoSourceRepository, error) {
	cache, err := lru.New[string, string](fetchCacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create fetch cache: %w", err)
	}
	return &CargoSourceRepository{packageManager: packageManager, resolved: cache}, nil
}

// Fetch returns the directory holding the extracted sources of id.
func (it *CargoSourceRepository) Fetch(ctx context.Context, id entities.PackageID) (string, error) {
	if dir, ok := it.resolved.Get(id.String()); ok {
		logger.Debugf("Reusing resolved sources of %s at %s", id, dir)
		return dir, nil
	}

	scratch, err := os.MkdirTemp("", fetchDirPrefix)
	if err != nil {
		return "", entities.NewIOError("create scratch directory", os.TempDir(), err)
	}
	defer os.RemoveAll(scratch)

	manifest, err := RenderFetchManifest(id)
	if err != nil {
		return "", err
	}
	manifestPath := filepath.Join(scratch, manifestFileName)
	if err = os.WriteFile(manifestPath, manifest, manifestMode); err != nil {
		return "", entities.NewIOError("write fetch manifest", manifestPath, err)
	}

	logger.Infof("Fetching %s", id)
	snapshot, err := it.packageManager.Metadata(ctx, entities.MetadataQuery{
		Dir:          scratch,
		ManifestPath: manifestPath,
	})
	if err != nil {
		return "", err
	}

	pkg, found := snapshot.Find(id)
	if !found {
		return "", fmt.Errorf("%w %s", entities.ErrPackageNotFound, id)
	}

	dir := pkg.SourceDir()
	it.resolved.Add(id.String(), dir)
	logger.Debugf("Resolved %s to %s", id, dir)
	return dir, nil
}
