// Package pipeline runs a feature selection through generation, validation
// and repair until the artifact set reaches a fixed point.
//
// The loop is bounded. Each iteration rebuilds the reference graph from
// declared references, validates, and repairs what it can. A clean pass
// ends the loop; hitting the iteration bound with defects still present
// marks the run as diverged.
package pipeline

import (
	"context"
	"fmt"

	"github.com/vk/siteforge/internal/artifact"
	"github.com/vk/siteforge/internal/content"
	"github.com/vk/siteforge/internal/ctxlog"
	"github.com/vk/siteforge/internal/generate"
	"github.com/vk/siteforge/internal/manifest"
	"github.com/vk/siteforge/internal/refgraph"
	"github.com/vk/siteforge/internal/repair"
	"github.com/vk/siteforge/internal/request"
	"github.com/vk/siteforge/internal/validate"
)

// DefaultMaxIterations bounds the repair loop. Every shipped strategy
// strictly shrinks the defect set, so hitting this bound indicates a
// strategy bug rather than a hard input.
const DefaultMaxIterations = 5

// Options tunes one pipeline run.
type Options struct {
	// MaxIterations overrides DefaultMaxIterations when positive.
	MaxIterations int
}

// Report summarizes what one run found and fixed.
type Report struct {
	ProjectName     string
	Framework       string
	Iterations      int
	DefectsFound    int
	FixesApplied    int
	Fixes           []repair.FixRecord
	ResidualDefects []validate.Defect
}

// Ready reports whether the artifact set ended fully consistent.
func (r *Report) Ready() bool {
	return len(r.ResidualDefects) == 0
}

// Result is the outcome of one pipeline run.
type Result struct {
	Artifacts *artifact.Set
	Report    *Report
}

// Run executes the full pipeline for one selection. The returned error
// covers invalid input and generation failure only: defects that survive
// repair are reported in Result.Report, not as an error, so the caller
// decides whether a non-ready project is fatal.
func Run(ctx context.Context, sel *request.FeatureSelection, provider content.Provider, opts Options) (*Result, error) {
	logger := ctxlog.FromContext(ctx)

	if err := sel.Validate(); err != nil {
		return nil, fmt.Errorf("invalid selection: %w", err)
	}

	maxIterations := opts.MaxIterations
	if maxIterations <= 0 {
		maxIterations = DefaultMaxIterations
	}

	man := manifest.Resolve(ctx, sel)
	logger.Info("Manifest resolved.",
		"project", sel.ProjectName,
		"pages", len(man.Pages),
		"components", len(man.Components),
		"styles", len(man.Styles))

	guard := content.NewGuard(provider, content.DefaultTimeout)
	set, err := generate.New(sel, guard).Generate(ctx, man)
	if err != nil {
		return nil, fmt.Errorf("generating artifacts: %w", err)
	}
	logger.Info("Artifacts generated.", "count", set.Len())

	return &Result{Artifacts: set, Report: converge(ctx, sel, set, maxIterations)}, nil
}

// converge drives the validate/repair loop over an already generated set
// until it is consistent, no strategy can act, or the iteration bound runs
// out. Exceeding the bound with defects still present appends a
// repair-diverged marker to the residuals.
func converge(ctx context.Context, sel *request.FeatureSelection, set *artifact.Set, maxIterations int) *Report {
	logger := ctxlog.FromContext(ctx)

	report := &Report{
		ProjectName: sel.ProjectName,
		Framework:   sel.Framework,
	}
	checker := validate.New(sel)
	engine := repair.New(sel)

	exhausted := true
	for i := 0; i < maxIterations; i++ {
		report.Iterations = i + 1

		edges := refgraph.Build(ctx, set)
		defects := checker.Check(set, edges)
		if i == 0 {
			report.DefectsFound = len(defects)
		}
		if len(defects) == 0 {
			repair.SortRecords(report.Fixes)
			logger.Info("Artifact set is consistent.",
				"iterations", report.Iterations, "fixes", report.FixesApplied)
			return report
		}
		logger.Info("Validation found defects.", "iteration", report.Iterations, "count", len(defects))

		fixes, residual := engine.Repair(ctx, set, defects)
		report.Fixes = append(report.Fixes, fixes...)
		report.FixesApplied += len(fixes)
		report.ResidualDefects = residual

		if len(fixes) == 0 {
			// Nothing left that any strategy can act on; looping further
			// cannot change the outcome.
			exhausted = false
			break
		}
	}

	if exhausted {
		// The bound ran out mid-loop; one more validation pass decides
		// whether the last round of fixes actually converged.
		defects := checker.Check(set, refgraph.Build(ctx, set))
		if len(defects) == 0 {
			report.ResidualDefects = nil
			repair.SortRecords(report.Fixes)
			logger.Info("Artifact set is consistent.",
				"iterations", report.Iterations, "fixes", report.FixesApplied)
			return report
		}
		report.ResidualDefects = append(defects, validate.Defect{
			Kind:   validate.RepairDiverged,
			Detail: fmt.Sprintf("no consistent state after %d iterations", report.Iterations),
		})
	}
	repair.SortRecords(report.Fixes)
	logger.Warn("Run ended with residual defects.",
		"iterations", report.Iterations, "residual", len(report.ResidualDefects))
	return report
}
