//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"fmt"

	"github.com/rios0rios0/cargo-review-deps/internal/domain/entities"
	"github.com/rios0rios0/cargo-review-deps/internal/domain/repositories"
)

// StubSourceRepository implements repositories.SourceRepository with a fixed id -> directory table.
type StubSourceRepository struct {
	Dirs       map[string]string // "name:version" -> source directory
	FetchErr   error
	FetchedIDs []entities.PackageID
}

var _ repositories.SourceRepository = (*StubSourceRepository)(nil)

func (s *StubSourceRepository) Fetch(_ context.Context, id entities.PackageID) (string, error) {
	s.FetchedIDs = append(s.FetchedIDs, id)
	if s.FetchErr != nil {
		return "", s.FetchErr
	}
	if dir, ok := s.Dirs[id.String()]; ok {
		return dir, nil
	}
	return "", fmt.Errorf("%w %s", entities.ErrPackageNotFound, id)
}
