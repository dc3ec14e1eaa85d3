package app

import (
	"context"
	"fmt"

	"github.com/vk/evalgridgo/internal/executor"
)

// Run executes the main application logic: load the grid, evaluate it, and
// report failures. The returned error is non-nil when loading fails or any
// node failed.
func (a *App) Run(ctx context.Context) error {
	ctx = a.context(ctx)
	a.logger.Debug("App.Run method started.")

	model, err := a.loader.Load(ctx, a.config.GridPath)
	if err != nil {
		return fmt.Errorf("failed to load grid: %w", err)
	}
	a.logger.Debug("Grid model loaded.", "nodes", len(model.Nodes))

	if len(model.Nodes) == 0 {
		a.logger.Warn("No nodes found in grid, evaluation not required.")
		return nil
	}

	exec, err := executor.New(a.registry, model, executor.Options{
		Workers:   a.config.WorkerCount,
		KeepGoing: a.config.KeepGoing,
	})
	if err != nil {
		return fmt.Errorf("failed to build dependency graph: %w", err)
	}

	a.logger.Info("Starting concurrent evaluation.", "nodes", len(model.Nodes), "workers", a.config.WorkerCount)
	res, runErr := exec.Run(ctx)
	a.logger.Info("Evaluation finished.",
		"evaluated", len(res.Values), "failed", len(res.Failures), "skipped", len(res.Skipped))

	if res.Failed() {
		a.reportFailures(res)
	}
	return runErr
}
