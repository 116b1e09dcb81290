package controllers

import (
	"github.com/spf13/cobra"

	"github.com/rios0rios0/cargo-review-deps/internal/domain/commands"
	"github.com/rios0rios0/cargo-review-deps/internal/domain/entities"
)

// DiffController handles the "diff" subcommand.
type DiffController struct {
	command commands.Diff
}

// NewDiffController creates a new DiffController.
func NewDiffController(command commands.Diff) *DiffController {
	return &DiffController{command: command}
}

// GetBind returns the Cobra command metadata for the diff controller.
func (it *DiffController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "diff <name:x.y.z> <name:x.y.z>",
		Short: "Show the source difference between two crate versions",
		Long: `Fetch the sources of two crate versions from crates.io and compare them.

By default the trees are compared with "diff -r" and the result is written to stdout.
With --destination the sources are copied side by side instead, so any other tool
can be used to inspect them.`,
		Args: cobra.ExactArgs(2), //nolint:mnd // two package ids
	}
}

// AddFlags adds the diff-specific flags to the given Cobra command.
func (it *DiffController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringP(destinationFlag, "d", "",
		"Copy both source trees to this directory instead of diffing them")
}

// Execute parses both package ids and runs the comparison.
func (it *DiffController) Execute(cmd *cobra.Command, args []string) error {
	first, err := entities.ParsePackageID(args[0])
	if err != nil {
		return err
	}
	second, err := entities.ParsePackageID(args[1])
	if err != nil {
		return err
	}

	destination, _ := cmd.Flags().GetString(destinationFlag)
	return it.command.Execute(cmd.Context(), commands.DiffOptions{
		First:       first,
		Second:      second,
		Destination: destination,
	})
}
