// Package main is the entry point for the blackboard CLI.
//
// The blackboard can be used either as a library (SDK) or exercised from
// this standalone binary, which drives the public API from YAML scenarios
// or an interactive prompt.
//
// Usage:
//
//	blackboard run -c scenario.yaml      # Apply a scripted scenario
//	blackboard validate -c scenario.yaml # Validate a scenario file
//	blackboard demo                      # Interactive walkthrough
//	blackboard version                   # Show version info
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information - set by GoReleaser at build time via ldflags.
// Example: go build -ldflags "-X main.version=1.0.0"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// rootCmd is the base command when called without subcommands.
// It just displays help - actual functionality is in subcommands.
var rootCmd = &cobra.Command{
	Use:   "blackboard",
	Short: "A typed key/value blackboard",
	Long: `Blackboard is a process-wide, type-heterogeneous key/value store
with change notification.

Values are stored per type: the key "score" can hold an int and a float
at the same time, written and wiped independently. Callbacks registered
against a key fire on every write.

Quick start:
  1. Create a scenario file (scenario.yaml)
  2. Run: blackboard run -c scenario.yaml

Example scenario:
  steps:
    - op: write
      key: score
      type: int
      value: 10
    - op: read
      key: score
      type: int`,
	// No Run/RunE means this just shows help when called without subcommands
}

// Execute runs the root command.
// This is the main entry point called from main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		// Cobra already prints the error, just exit with code 1
		os.Exit(1)
	}
}

func main() {
	Execute()
}

// versionCmd prints version information.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print the version, commit hash, and build date of this blackboard binary.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("blackboard %s\n", version)
		fmt.Printf("  commit: %s\n", commit)
		fmt.Printf("  built:  %s\n", date)
	},
}

func init() {
	// Register subcommands with root
	rootCmd.AddCommand(versionCmd)
}
