package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jpalmerr/blackboard/config"
)

// validateCmd validates a scenario file without applying it.
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a scenario file",
	Long: `Validate a blackboard scenario file without applying it.

This command parses the YAML and validates every step: known operations,
known type tags, required keys, and write values matching their declared
type. It's useful for CI/CD pipelines or pre-run checks.

Exit codes:
  0 - Scenario is valid
  1 - Scenario is invalid (error details printed to stderr)

Example:
  blackboard validate -c scenario.yaml
  blackboard validate --config /etc/blackboard/scenario.yaml`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringP("config", "c", "", "path to scenario file (required)")
	_ = validateCmd.MarkFlagRequired("config")
}

func runValidate(cmd *cobra.Command, args []string) error {
	configFile, _ := cmd.Flags().GetString("config")
	sc, err := config.Load(configFile)
	if err != nil {
		return fmt.Errorf("invalid scenario: %w", err)
	}

	// count the step mix for the summary
	writes, reads, subs := 0, 0, 0
	for _, st := range sc.Steps {
		switch st.Op {
		case config.OpWrite:
			writes++
		case config.OpRead:
			reads++
		case config.OpSubscribe:
			subs++
		}
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Scenario is valid!\n")
	fmt.Fprintf(out, "  Name:       %s\n", sc.Name)
	fmt.Fprintf(out, "  Steps:      %d\n", len(sc.Steps))
	fmt.Fprintf(out, "  Writes:     %d\n", writes)
	fmt.Fprintf(out, "  Reads:      %d\n", reads)
	fmt.Fprintf(out, "  Subscribes: %d\n", subs)

	return nil
}
