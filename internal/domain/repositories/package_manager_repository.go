package repositories

import (
	"context"

	"github.com/rios0rios0/cargo-review-deps/internal/domain/entities"
)

// PackageManagerRepository abstracts the package manager's resolution and update commands.
type PackageManagerRepository interface {
	// Metadata resolves the full transitive dependency graph of the selected manifest.
	Metadata(ctx context.Context, query entities.MetadataQuery) (*entities.Snapshot, error)

	// Update re-resolves dependencies in dir, rewriting the lock file in place. Output is
	// streamed to the user.
	Update(ctx context.Context, dir string, args []string) error
}
