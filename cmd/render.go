package cmd

import (
	"fmt"

	"github.com/winsweep/winsweep/internal/clean"
	"github.com/winsweep/winsweep/internal/ui"
)

// printReports renders the end-of-run summary: one line per category, step
// results, and every contained failure with its reason.
func printReports(reports []clean.Report) {
	fmt.Println()
	for _, rep := range reports {
		removed, skipped, failed := rep.Counts()

		line := fmt.Sprintf("%-24s %d removed, %d skipped", rep.Category.Label, removed, skipped)
		if failed > 0 {
			line += ", " + ui.Error.Render(fmt.Sprintf("%d failed", failed))
		}
		fmt.Println(ui.Success.Render("✓") + " " + line)

		for _, step := range rep.Steps {
			label := step.Step.Command()
			switch step.Status {
			case clean.StepSucceeded:
				fmt.Printf("    %s %s\n", ui.Success.Render("ok"), label)
			case clean.StepFailed:
				fmt.Printf("    %s %s\n", ui.Error.Render("failed"), label)
			default:
				fmt.Printf("    %s %s (%s)\n", ui.Muted.Render("-"), label, step.Status)
			}
		}

		for _, failure := range rep.Failures() {
			fmt.Println("    " + ui.Warn.Render("! "+failure))
		}
	}
}
