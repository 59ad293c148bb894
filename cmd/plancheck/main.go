// plancheck - Plan Validation & Metabolic Calculation Engine
// Source: https://github.com/fitai/plancheck

package main

import (
	"os"

	"github.com/fitai/plancheck/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
