//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/cargo-review-deps/internal/domain/entities"
	"github.com/rios0rios0/cargo-review-deps/internal/domain/repositories"
)

// SpyReportRepository implements repositories.ReportRepository and keeps the last report.
type SpyReportRepository struct {
	WriteErr   error
	WriteCount int
	LastDest   string
	LastReport entities.UpdateReport
}

var _ repositories.ReportRepository = (*SpyReportRepository)(nil)

func (s *SpyReportRepository) WriteUpdateReport(dest string, report entities.UpdateReport) error {
	s.WriteCount++
	s.LastDest = dest
	s.LastReport = report
	return s.WriteErr
}
