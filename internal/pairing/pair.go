package pairing

// DefaultTarget is the classic form of the problem: two numbers that add to 8.
const DefaultTarget = 8

// Pair is a candidate split of a target sum into two non-negative integers.
// All metrics are derived from the two numbers, never stored.
type Pair struct {
	First  int
	Second int
}

// Sum returns the target the pair was built for.
func (p Pair) Sum() int { return p.First + p.Second }

// Product returns First * Second.
func (p Pair) Product() int { return p.First * p.Second }

// Difference returns |First - Second|.
func (p Pair) Difference() int {
	if p.First > p.Second {
		return p.First - p.Second
	}
	return p.Second - p.First
}

// Score is the quantity being maximized: product times absolute difference.
// Mirrored pairs score identically.
func (p Pair) Score() int { return p.Product() * p.Difference() }
