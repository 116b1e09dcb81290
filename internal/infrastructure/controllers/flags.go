package controllers

import "github.com/spf13/cobra"

const (
	destinationFlag  = "destination"
	manifestPathFlag = "manifest-path"
	keepLockfileFlag = "keep-lockfile"
)

// manifestPath reads the global --manifest-path flag inherited from the root command.
func manifestPath(cmd *cobra.Command) string {
	path, _ := cmd.Flags().GetString(manifestPathFlag)
	return path
}
