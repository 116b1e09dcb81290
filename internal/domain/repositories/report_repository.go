package repositories

import "github.com/rios0rios0/cargo-review-deps/internal/domain/entities"

// ReportRepository persists the summary of an update-diff run into its destination.
type ReportRepository interface {
	WriteUpdateReport(dest string, report entities.UpdateReport) error
}
