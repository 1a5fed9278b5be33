package app

import (
	"fmt"

	"github.com/vk/siteforge/internal/pipeline"
)

// writeReport prints the human-readable run summary to the app's output
// writer. Log records carry the same information for machines; this is the
// part a person reads.
func (a *App) writeReport(result *pipeline.Result) {
	report := result.Report

	status := "ready"
	if !report.Ready() {
		status = "NOT ready"
	}
	fmt.Fprintf(a.outW, "\nProject %s (%s): %s\n", report.ProjectName, report.Framework, status)
	fmt.Fprintf(a.outW, "  artifacts: %d\n", result.Artifacts.Len())
	fmt.Fprintf(a.outW, "  defects found: %d, fixes applied: %d, iterations: %d\n",
		report.DefectsFound, report.FixesApplied, report.Iterations)

	for _, fix := range report.Fixes {
		fmt.Fprintf(a.outW, "  fixed: %s at %s via %s (%s)\n",
			fix.Defect.Kind, fix.Defect.Artifact, fix.Strategy, fix.Confidence)
	}
	for _, defect := range report.ResidualDefects {
		fmt.Fprintf(a.outW, "  residual: %s\n", defect)
	}
}
