package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	appVersion = "dev"
	appCommit  = "unknown"
	appDate    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "bigwrite N",
	Short: "Reliably write a large random buffer to a sink",
	Long: `bigwrite generates a buffer of N random printable bytes (newline
terminated) and writes it to stdout to completion, looping over partial
transfers and retrying calls interrupted by signals.

It exists to exercise pipes and terminal plumbing with very large single
writes. The generator seed is printed to stderr so any run can be
reproduced with --seed; a trailing SUCCESS marker confirms the sink still
accepts small writes after the large one.`,
	Args: cobra.ExactArgs(1),
	RunE: runWrite,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("bigwrite %s\n", appVersion)
		fmt.Printf("  commit: %s\n", appCommit)
		fmt.Printf("  built:  %s\n", appDate)
	},
}

// SetVersion sets version information from build-time ldflags
func SetVersion(version, commit, date string) {
	appVersion = version
	appCommit = commit
	appDate = date
}

// GetVersion returns the current application version
func GetVersion() string {
	return appVersion
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// ExecuteContext runs the root command with a cancellable context
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
