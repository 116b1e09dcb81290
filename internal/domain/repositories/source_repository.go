package repositories

import (
	"context"

	"github.com/rios0rios0/cargo-review-deps/internal/domain/entities"
)

// SourceRepository resolves the on-disk source tree of one exact package version.
type SourceRepository interface {
	Fetch(ctx context.Context, id entities.PackageID) (string, error)
}
