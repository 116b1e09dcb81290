//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/cargo-review-deps/internal/domain/entities"
	"github.com/rios0rios0/cargo-review-deps/internal/domain/repositories"
)

// SpyPackageManagerRepository implements repositories.PackageManagerRepository as a configurable spy.
// Metadata answers from Snapshots in call order and repeats the last one once exhausted.
type SpyPackageManagerRepository struct {
	// --- Metadata ---
	Snapshots       []*entities.Snapshot
	MetadataErr     error
	MetadataQueries []entities.MetadataQuery

	// --- Update ---
	UpdateErr   error
	UpdateCalls []UpdateCall
	// OnUpdate runs before Update returns, e.g. to mutate the lock file like cargo would
	OnUpdate func(dir string, args []string)
}

// UpdateCall records a single invocation of Update.
type UpdateCall struct {
	Dir  string
	Args []string
}

var _ repositories.PackageManagerRepository = (*SpyPackageManagerRepository)(nil)

func (s *SpyPackageManagerRepository) Metadata(
	_ context.Context, query entities.MetadataQuery,
) (*entities.Snapshot, error) {
	s.MetadataQueries = append(s.MetadataQueries, query)
	if s.MetadataErr != nil {
		return nil, s.MetadataErr
	}
	if len(s.Snapshots) == 0 {
		return &entities.Snapshot{}, nil
	}
	index := len(s.MetadataQueries) - 1
	if index >= len(s.Snapshots) {
		index = len(s.Snapshots) - 1
	}
	return s.Snapshots[index], nil
}

func (s *SpyPackageManagerRepository) Update(_ context.Context, dir string, args []string) error {
	s.UpdateCalls = append(s.UpdateCalls, UpdateCall{Dir: dir, Args: args})
	if s.OnUpdate != nil {
		s.OnUpdate(dir, args)
	}
	return s.UpdateErr
}
