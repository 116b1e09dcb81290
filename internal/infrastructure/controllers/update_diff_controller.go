package controllers

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/cargo-review-deps/internal/domain/commands"
	"github.com/rios0rios0/cargo-review-deps/internal/domain/entities"
)

// UpdateDiffController handles the "update-diff" subcommand.
type UpdateDiffController struct {
	command commands.UpdateDiff
}

// NewUpdateDiffController creates a new UpdateDiffController.
func NewUpdateDiffController(command commands.UpdateDiff) *UpdateDiffController {
	return &UpdateDiffController{command: command}
}

// GetBind returns the Cobra command metadata for the update-diff controller.
func (it *UpdateDiffController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "update-diff -d <destination> [-- <cargo update args>]",
		Short: "Copy the sources of every package cargo update would change",
		Long: `Run "cargo update" and copy the old and new sources of every changed package to
<destination>/before and <destination>/after. A changes.yaml summary and a
Cargo.lock.diff are written next to them.

Cargo.lock is restored afterwards, even when the update fails, unless
--keep-lockfile is given. Arguments after "--" are passed to cargo update.`,
		Args: updateArgs,
	}
}

// AddFlags adds the update-diff-specific flags to the given Cobra command.
func (it *UpdateDiffController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringP(destinationFlag, "d", "", "Directory to copy the sources to")
	cmd.Flags().Bool(keepLockfileFlag, false, "Keep the updated Cargo.lock instead of restoring it")
	_ = cmd.MarkFlagRequired(destinationFlag)
}

// Execute runs the guarded update.
func (it *UpdateDiffController) Execute(cmd *cobra.Command, args []string) error {
	destination, _ := cmd.Flags().GetString(destinationFlag)
	keep, _ := cmd.Flags().GetBool(keepLockfileFlag)

	var forwarded []string
	if dash := cmd.ArgsLenAtDash(); dash >= 0 {
		forwarded = args[dash:]
	}

	return it.command.Execute(cmd.Context(), commands.UpdateDiffOptions{
		Destination:  destination,
		Args:         forwarded,
		ManifestPath: manifestPath(cmd),
		KeepLockfile: keep,
	})
}

// updateArgs only accepts positional arguments after "--".
func updateArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 0 && cmd.ArgsLenAtDash() != 0 {
		return fmt.Errorf("unexpected argument %q; pass cargo update arguments after \"--\"", args[0])
	}
	return nil
}
