package report

import (
	"os"
	"path/filepath"

	difflib "github.com/pmezard/go-difflib/difflib"
	logger "github.com/sirupsen/logrus"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"

	"github.com/rios0rios0/cargo-review-deps/internal/domain/entities"
	"github.com/rios0rios0/cargo-review-deps/internal/domain/repositories"
)

const (
	// ChangesFileName is the summary written at the root of an update-diff destination.
	ChangesFileName = "changes.yaml"
	// LockfileDiffFileName holds the unified diff of the lock file across the update.
	LockfileDiffFileName = entities.LockfileName + ".diff"

	reportFileMode = 0o644
	diffContext    = 3
)

// ChangesDocument is the serialized form of changes.yaml.
type ChangesDocument struct {
	UpdateArgs []string       `yaml:"update_args,omitempty"`
	Changes    []ChangeRecord `yaml:"changes"`
}

// ChangeRecord is one changed package in changes.yaml.
type ChangeRecord struct {
	Name      string `yaml:"name"`
	Kind      string `yaml:"kind"`
	Before    string `yaml:"before,omitempty"`
	After     string `yaml:"after,omitempty"`
	BeforeDir string `yaml:"before_dir,omitempty"`
	AfterDir  string `yaml:"after_dir,omitempty"`
}

// ReportRepository implements repositories.ReportRepository with a YAML summary and a unified
// lock file diff.
type ReportRepository struct{}

// NewReportRepository creates a report writer.
func NewReportRepository() repositories.ReportRepository {
	return &ReportRepository{}
}

// WriteUpdateReport writes changes.yaml and, when the lock file changed, Cargo.lock.diff into dest.
func (it *ReportRepository) WriteUpdateReport(dest string, report entities.UpdateReport) error {
	doc := BuildChangesDocument(report)
	data, err := yaml.Marshal(doc)
	if err != nil {
		return zerr.Wrap(err, "failed to encode update report")
	}

	changesPath := filepath.Join(dest, ChangesFileName)
	if err = os.WriteFile(changesPath, data, reportFileMode); err != nil {
		return entities.NewIOError("write update report", changesPath, err)
	}
	logger.Infof("Wrote %s (%d changed packages)", changesPath, len(doc.Changes))

	if !report.LockfileChanged() {
		return nil
	}

	patch, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(report.LockfileBefore)),
		B:        difflib.SplitLines(string(report.LockfileAfter)),
		FromFile: "a/" + entities.LockfileName,
		ToFile:   "b/" + entities.LockfileName,
		Context:  diffContext,
	})
	if err != nil {
		return zerr.Wrap(err, "failed to diff lock file")
	}

	diffPath := filepath.Join(dest, LockfileDiffFileName)
	if err = os.WriteFile(diffPath, []byte(patch), reportFileMode); err != nil {
		return entities.NewIOError("write lock file diff", diffPath, err)
	}
	return nil
}

// BuildChangesDocument flattens the report into its serialized shape. Directories are
// recorded relative to the destination root.
func BuildChangesDocument(report entities.UpdateReport) ChangesDocument {
	doc := ChangesDocument{
		UpdateArgs: report.Args,
		Changes:    make([]ChangeRecord, 0, len(report.Changes)),
	}
	for _, change := range report.Changes {
		record := ChangeRecord{
			Name:   change.Name,
			Kind:   string(change.Kind()),
			Before: change.BeforeVersion,
			After:  change.AfterVersion,
		}
		if change.Before != "" {
			record.BeforeDir = entities.BeforeDirName + "/" + change.Label
		}
		if change.After != "" {
			record.AfterDir = entities.AfterDirName + "/" + change.Label
		}
		doc.Changes = append(doc.Changes, record)
	}
	return doc
}
