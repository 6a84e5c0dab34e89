package app

import (
	"context"
	"fmt"

	"github.com/vk/pairmaxgo/internal/ctxlog"
	"github.com/vk/pairmaxgo/internal/pairing"
)

// Run executes the main application logic: solve the pairing problem for the
// effective target and render the outcome.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.", "target", a.target)

	solution, err := pairing.Solve(a.target)
	if err != nil {
		return fmt.Errorf("failed to solve pairing problem: %w", err)
	}
	a.logger.Debug("Pairing problem solved.", "score", solution.Score, "evaluations", solution.Evaluations)

	a.report(ctx, solution)

	a.logger.Debug("App.Run method finished.")
	return nil
}
