package pairing

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPair_DerivedMetrics(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name                           string
		pair                           Pair
		sum, product, difference, score int
	}{
		{name: "classic winner", pair: Pair{First: 2, Second: 6}, sum: 8, product: 12, difference: 4, score: 48},
		{name: "balanced split scores zero", pair: Pair{First: 4, Second: 4}, sum: 8, product: 16, difference: 0, score: 0},
		{name: "zero pair", pair: Pair{First: 0, Second: 0}, sum: 0, product: 0, difference: 0, score: 0},
		{name: "reversed orientation", pair: Pair{First: 6, Second: 2}, sum: 8, product: 12, difference: 4, score: 48},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tc.sum, tc.pair.Sum())
			require.Equal(t, tc.product, tc.pair.Product())
			require.Equal(t, tc.difference, tc.pair.Difference())
			require.Equal(t, tc.score, tc.pair.Score())
		})
	}
}

func TestPair_MirroredPairsScoreEqually(t *testing.T) {
	t.Parallel()

	for target := 0; target <= 100; target++ {
		for a := 0; a <= target; a++ {
			pair := Pair{First: a, Second: target - a}
			mirror := Pair{First: target - a, Second: a}
			require.Equal(t, pair.Score(), mirror.Score(), "target %d, a %d", target, a)
		}
	}
}
