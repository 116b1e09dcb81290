//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/cargo-review-deps/internal/domain/repositories"
)

// SpyFileSystemRepository implements repositories.FileSystemRepository and records every copy.
type SpyFileSystemRepository struct {
	CopyErr error
	Copies  []CopyCall
}

// CopyCall records a single invocation of CopyTree.
type CopyCall struct {
	Src string
	Dst string
}

var _ repositories.FileSystemRepository = (*SpyFileSystemRepository)(nil)

func (s *SpyFileSystemRepository) CopyTree(src, dst string) error {
	s.Copies = append(s.Copies, CopyCall{Src: src, Dst: dst})
	return s.CopyErr
}

// Destinations returns the destination of every recorded copy, in call order.
func (s *SpyFileSystemRepository) Destinations() []string {
	dsts := make([]string, 0, len(s.Copies))
	for _, c := range s.Copies {
		dsts = append(dsts, c.Dst)
	}
	return dsts
}
