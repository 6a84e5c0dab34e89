package pairing

import (
	"errors"
	"fmt"
)

// ErrNegativeTarget is returned by Solve for targets below zero. Two
// non-negative integers cannot sum to a negative number.
var ErrNegativeTarget = errors.New("target must be non-negative")

// Result is the outcome of solving the pairing problem for one target: the
// winning pair in canonical (A <= B) orientation plus its derived metrics.
type Result struct {
	A          int
	B          int
	Product    int
	Difference int
	Score      int
}

// Solution is a Result plus how many candidate splits were evaluated to
// find it.
type Solution struct {
	Result
	Evaluations int
}

// Solve finds the pair summing to target with the maximum score.
//
// It scans a = 0..target/2; pairing a with target-a already covers the
// mirrored half of the range, so only half needs evaluating. The strict
// comparison keeps the first maximum found, which makes the smallest
// maximizing A the canonical answer when several splits tie.
func Solve(target int) (Solution, error) {
	if target < 0 {
		return Solution{}, fmt.Errorf("%w: got %d", ErrNegativeTarget, target)
	}

	best := Pair{First: 0, Second: target}
	evaluations := 0
	for a := 0; a <= target/2; a++ {
		evaluations++
		candidate := Pair{First: a, Second: target - a}
		if candidate.Score() > best.Score() {
			best = candidate
		}
	}

	return Solution{
		Result: Result{
			A:          best.First,
			B:          best.Second,
			Product:    best.Product(),
			Difference: best.Difference(),
			Score:      best.Score(),
		},
		Evaluations: evaluations,
	}, nil
}
