package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "mommy [--quiet|-q] <command> [args...]",
	Short: "Mommy's here to support you~",
	Long: `Runs the given command and responds to its exit status with a
little encouragement. Install as a cargo subcommand (cargo-mommy) or use
directly from the shell. All behavior is tuned through environment
variables; see the readme for the full list.`,
	Args: cobra.ArbitraryArgs,
	// The wrapped command owns its own flags, so nothing gets parsed here.
	DisableFlagParsing: true,
	SilenceUsage:       true,
	SilenceErrors:      true,
	RunE:               runMommy,
}

// Execute runs the root command and exits non-zero when it errors out.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
