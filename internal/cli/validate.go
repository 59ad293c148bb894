package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fitai/plancheck/internal/engine"
	"github.com/fitai/plancheck/internal/profile"
)

var validateJSON bool

var validateCmd = &cobra.Command{
	Use:   "validate <profile-file>",
	Short: "Validate a profile and compute its calorie/macro targets",
	Long: `Validate loads a profile file (JSON or YAML), enforces the input
contract, runs the safety rule set and prints the verdict: blocking
findings, advisory warnings and the calculated metrics.

Exit code 0 means the plan can proceed, 1 means it was blocked, 2 means
the profile itself was invalid.`,
	Example: `  plancheck validate profile.json
  plancheck validate profile.yaml --json`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().BoolVar(&validateJSON, "json", false, "Emit the full results as JSON")
	rootCmd.AddCommand(validateCmd)
}

// runValidate executes the validate command.
func runValidate(cmd *cobra.Command, args []string) error {
	pr, err := profile.Load(args[0])
	if err != nil {
		return newExitError(ExitInvalidProfile, err)
	}

	results := engine.ValidatePlan(&pr.Personal, &pr.Diet, &pr.Body, &pr.Workout)

	out := cmd.OutOrStdout()
	if validateJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(results); err != nil {
			return newExitError(ExitInvalidProfile, fmt.Errorf("encoding results: %w", err))
		}
	} else {
		fmt.Fprint(out, renderResults(&results))
	}

	if !results.CanProceed {
		return newExitError(ExitBlocked, nil)
	}
	return nil
}
