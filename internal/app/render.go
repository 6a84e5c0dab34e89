package app

import (
	"context"
	"fmt"

	"github.com/vk/pairmaxgo/internal/ctxlog"
	"github.com/vk/pairmaxgo/internal/pairing"
)

// report writes the human-readable outcome of a solved problem: a summary
// line with the best score and the work it took, then the winning
// combination with its derived metrics inline.
func (a *App) report(ctx context.Context, solution pairing.Solution) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Rendering solution.")

	fmt.Fprintf(a.outW, "Best result: %d (evaluated %d pairings)\n\n", solution.Score, solution.Evaluations)
	fmt.Fprintf(a.outW, "%d and %d -> %d (difference: %d, product: %d -> result: %d)\n",
		solution.A, solution.B, solution.A+solution.B,
		solution.Difference, solution.Product, solution.Score)
}
