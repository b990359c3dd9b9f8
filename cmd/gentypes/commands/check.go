package commands

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/teranos/gentypes/display"
	"github.com/teranos/gentypes/errors"
	"github.com/teranos/gentypes/typegen"
)

// CheckCmd verifies generated output is up to date
var CheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Check that generated interfaces are up to date",
	Long: `Generate into a temporary location and compare with the configured output.

Exits non-zero when any file would change, is missing, or is stale. Nothing
is written to the output location and the run is not recorded.

Examples:
  gentypes check          # Human-readable report
  gentypes check --json   # Machine-readable result for CI`,
	RunE: runCheck,
}

func init() {
	CheckCmd.Flags().Bool("json", false, "Output the result as JSON")
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	result, err := typegen.Check(newGenerator(cmd.Context(), cfg), optionsFromConfig(cfg))
	if err != nil {
		return err
	}

	if display.ShouldOutputJSON(cmd) {
		if err := display.OutputJSON(result); err != nil {
			return err
		}
	} else {
		printCheckResult(result)
	}

	return staleError(result)
}

func printCheckResult(result *typegen.CheckResult) {
	if result.UpToDate {
		pterm.Success.Println("Generated types are up to date")
		return
	}
	pterm.Warning.Printfln("%d file(s) out of date:", len(result.Differences))
	for _, diff := range result.Differences {
		fmt.Printf("  %s\n", diff)
	}
}

// staleError turns an out-of-date result into the command's failure
func staleError(result *typegen.CheckResult) error {
	if result.UpToDate {
		return nil
	}
	return errors.WithHint(
		errors.Newf("generated types are stale (%d file(s) differ)", len(result.Differences)),
		"run 'gentypes generate' and commit the output")
}
