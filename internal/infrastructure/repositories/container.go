package repositories

import (
	"go.uber.org/dig"

	domainRepos "github.com/rios0rios0/cargo-review-deps/internal/domain/repositories"
	"github.com/rios0rios0/cargo-review-deps/internal/infrastructure/repositories/cargo"
	"github.com/rios0rios0/cargo-review-deps/internal/infrastructure/repositories/difftool"
	"github.com/rios0rios0/cargo-review-deps/internal/infrastructure/repositories/filesystem"
	"github.com/rios0rios0/cargo-review-deps/internal/infrastructure/repositories/report"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	if err := container.Provide(cargo.NewCargoRepository); err != nil {
		return err
	}
	if err := container.Provide(cargo.NewCargoSourceRepository); err != nil {
		return err
	}
	if err := container.Provide(difftool.NewDiffToolRepository); err != nil {
		return err
	}
	if err := container.Provide(filesystem.NewFileSystemRepository); err != nil {
		return err
	}
	if err := container.Provide(report.NewReportRepository); err != nil {
		return err
	}

	// Bind interfaces to implementations
	if err := container.Provide(func(impl *cargo.CargoSourceRepository) domainRepos.SourceRepository {
		return impl
	}); err != nil {
		return err
	}

	return nil
}
