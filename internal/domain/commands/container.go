package commands

import (
	"go.uber.org/dig"
)

// RegisterProviders registers all command providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register command constructors
	if err := container.Provide(NewDiffCommand); err != nil {
		return err
	}
	if err := container.Provide(NewCurrentCommand); err != nil {
		return err
	}
	if err := container.Provide(NewUpdateDiffCommand); err != nil {
		return err
	}

	// Bind interfaces to implementations
	if err := container.Provide(func(impl *DiffCommand) Diff {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *CurrentCommand) Current {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *UpdateDiffCommand) UpdateDiff {
		return impl
	}); err != nil {
		return err
	}

	return nil
}
