package controllers

import (
	"github.com/spf13/cobra"

	"github.com/rios0rios0/cargo-review-deps/internal/domain/commands"
	"github.com/rios0rios0/cargo-review-deps/internal/domain/entities"
)

// CurrentController handles the "current" subcommand.
type CurrentController struct {
	command commands.Current
}

// NewCurrentController creates a new CurrentController.
func NewCurrentController(command commands.Current) *CurrentController {
	return &CurrentController{command: command}
}

// GetBind returns the Cobra command metadata for the current controller.
func (it *CurrentController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "current",
		Short: "Copy the sources of every current dependency",
		Long: `Resolve the dependencies of the current project and copy the source of each
crates.io package to <destination>/<name>:<version>.

Path, git and workspace packages are skipped with a warning.`,
		Args: cobra.NoArgs,
	}
}

// AddFlags adds the current-specific flags to the given Cobra command.
func (it *CurrentController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringP(destinationFlag, "d", "", "Directory to copy the sources to")
	_ = cmd.MarkFlagRequired(destinationFlag)
}

// Execute copies the current dependency sources.
func (it *CurrentController) Execute(cmd *cobra.Command, _ []string) error {
	destination, _ := cmd.Flags().GetString(destinationFlag)
	return it.command.Execute(cmd.Context(), commands.CurrentOptions{
		Destination:  destination,
		ManifestPath: manifestPath(cmd),
	})
}
