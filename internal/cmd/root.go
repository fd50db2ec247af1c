package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/reugn/filecheck/internal/checker"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "filecheck [path]",
	Short: "A CLI tool for checking that a path names a readable file",
	Long: `filecheck echoes the supplied path and verifies that it names an
existing, readable, regular file. It exits with status 0 when the check
passes and 1 otherwise, so it can gate shell pipelines and test harnesses.

If the path is omitted it is treated as an empty string, which fails the
check.`,
	Args:          cobra.MaximumNArgs(1),
	RunE:          runCheck,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// SetVersion sets the version string for the CLI.
func SetVersion(version string) {
	rootCmd.Version = version
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		// The checker has already reported its failure on stdout;
		// anything else is an invocation error worth surfacing.
		if !errors.Is(err, checker.ErrPathNotFound) {
			printError("%v", err)
		}
		os.Exit(1)
	}
}

func runCheck(cmd *cobra.Command, args []string) error {
	path := ""
	if len(args) > 0 {
		path = args[0]
	}

	return checker.New(cmd.OutOrStdout()).Check(path)
}

// printError prints a formatted error message to stderr.
func printError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "✗ Error: "+format+"\n", args...)
}
