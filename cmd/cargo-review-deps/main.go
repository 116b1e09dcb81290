package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/cargo-review-deps/internal"
)

// cargoSubcommand is the first argument cargo passes when invoked as `cargo review-deps`.
const cargoSubcommand = "review-deps"

func buildRootCommand() *cobra.Command {
	//nolint:exhaustruct // Minimal Command initialization with required fields only
	cmd := &cobra.Command{
		Use:   "cargo-review-deps",
		Short: "Review the sources of Rust dependencies before trusting an update",
		Long: `A cargo subcommand to inspect the actual source code of third-party crates.

Usage modes:
  cargo review-deps diff rand:0.6.0 rand:0.6.1   Compare two published versions
  cargo review-deps current -d deps              Copy every current dependency
  cargo review-deps update-diff -d review        Preview what cargo update changes`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(command *cobra.Command, _ []string) {
			if verbose, _ := command.Flags().GetBool("verbose"); verbose {
				logger.SetLevel(logger.DebugLevel)
			}
		},
	}

	// Global persistent flags
	cmd.PersistentFlags().String("manifest-path", "",
		"Path to Cargo.toml (default: cargo's own manifest discovery)")
	cmd.PersistentFlags().BoolP("verbose", "v", false,
		"Enable verbose output")

	return cmd
}

func addSubcommands(rootCmd *cobra.Command, appContext *internal.AppInternal) {
	for _, controller := range appContext.GetControllers() {
		bind := controller.GetBind()
		ctrl := controller // capture for closure
		//nolint:exhaustruct // Minimal Command initialization with required fields only
		subCmd := &cobra.Command{
			Use:   bind.Use,
			Short: bind.Short,
			Long:  bind.Long,
			Args:  bind.Args,
			RunE: func(command *cobra.Command, arguments []string) error {
				return ctrl.Execute(command, arguments)
			},
		}
		ctrl.AddFlags(subCmd)

		rootCmd.AddCommand(subCmd)
	}
}

// cargoArgs drops the subcommand name cargo inserts when running `cargo review-deps`.
func cargoArgs(args []string) []string {
	if len(args) > 0 && args[0] == cargoSubcommand {
		return args[1:]
	}
	return args
}

func main() {
	//nolint:exhaustruct // Minimal TextFormatter initialization with required fields only
	logger.SetFormatter(&logger.TextFormatter{
		ForceColors:   true,
		FullTimestamp: true,
	})
	if os.Getenv("DEBUG") == "true" {
		logger.SetLevel(logger.DebugLevel)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	cobraRoot := buildRootCommand()
	addSubcommands(cobraRoot, injectAppContext())
	cobraRoot.SetArgs(cargoArgs(os.Args[1:]))

	err := cobraRoot.ExecuteContext(ctx)
	stop()
	if err != nil {
		logger.Fatalf("error: %s", err)
	}
}
