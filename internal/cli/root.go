// plancheck - Plan Validation & Metabolic Calculation Engine
// Source: https://github.com/fitai/plancheck

// Package cli provides the Cobra-based plancheck command line: a local
// harness around the validation engine for checking profile files before
// handing calorie/macro targets to plan generation. It performs no network
// or database I/O.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "plancheck",
	Short: "plan safety validation and metabolic targets",
	Long: `plancheck evaluates a fitness profile against the plan safety rule set
and computes the calorie and macro targets plan generation consumes.

A profile file bundles personal info, diet preferences, body analysis and
workout preferences (JSON or YAML). Fields can be overridden with
PLANCHECK_-prefixed environment variables.`,
	Example: `  # Validate a profile and print the verdict
  plancheck validate profile.json

  # Machine-readable output for pipelines
  plancheck validate profile.yaml --json

  # Override a field without editing the file
  PLANCHECK_BODY_ANALYSIS__STRESS_LEVEL=high plancheck validate profile.json`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and returns the process exit code. A
// blocked plan exits 1 with its findings already rendered; genuine errors
// are printed to stderr.
func Execute() int {
	err := rootCmd.Execute()
	if err == nil {
		return ExitSuccess
	}
	if ee, ok := err.(*exitError); ok {
		if ee.err != nil {
			fmt.Fprintln(os.Stderr, "Error:", ee.err)
		}
		return ee.code
	}
	fmt.Fprintln(os.Stderr, "Error:", err)
	return ExitInvalidProfile
}
