package app

import (
	"context"
	"fmt"
	"os"

	"github.com/go-git/go-billy/v5/osfs"

	"github.com/vk/siteforge/internal/ctxlog"
	"github.com/vk/siteforge/internal/deliver"
	"github.com/vk/siteforge/internal/pipeline"
)

// Run executes the main application logic: load the request, run the
// generation pipeline, write the project when an output directory is
// configured, and print the report. A run that ends with residual defects
// is an error even when artifacts were written.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	selection, err := a.loader.Load(ctx, a.config.RequestPath)
	if err != nil {
		return fmt.Errorf("failed to load request: %w", err)
	}
	a.logger.Info("Request loaded.",
		"project", selection.ProjectName,
		"framework", selection.Framework,
		"features", selection.SelectedFeatures)

	result, err := pipeline.Run(ctx, selection, a.provider, pipeline.Options{
		MaxIterations: a.config.MaxIterations,
	})
	if err != nil {
		return fmt.Errorf("pipeline failed: %w", err)
	}

	if a.config.OutputDir != "" {
		if err := os.MkdirAll(a.config.OutputDir, 0o755); err != nil {
			return fmt.Errorf("creating output directory %s: %w", a.config.OutputDir, err)
		}
		assembler := deliver.NewAssembler(osfs.New(a.config.OutputDir))
		if err := assembler.Write(ctx, result.Artifacts); err != nil {
			return fmt.Errorf("writing project to %s: %w", a.config.OutputDir, err)
		}
		a.logger.Info("Project written.", "output_dir", a.config.OutputDir)
	}

	a.writeReport(result)

	if !result.Report.Ready() {
		return fmt.Errorf("project is not ready: %d residual defects remain", len(result.Report.ResidualDefects))
	}
	a.logger.Debug("App.Run method finished.")
	return nil
}
