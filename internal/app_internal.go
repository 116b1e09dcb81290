package internal

import "github.com/rios0rios0/cargo-review-deps/internal/domain/entities"

// AppInternal holds every subcommand controller of the application.
type AppInternal struct {
	controllers []entities.Controller
}

// NewAppInternal creates a new AppInternal.
func NewAppInternal(controllers *[]entities.Controller) *AppInternal {
	return &AppInternal{controllers: *controllers}
}

// GetControllers returns the registered controllers in registration order.
func (it *AppInternal) GetControllers() []entities.Controller {
	return it.controllers
}
