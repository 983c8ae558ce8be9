package skyblock

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestCatacombsLevel(t *testing.T) {
	testCases := []struct {
		exp      float64
		expected CatacombsLevelInfo
	}{
		{
			// below the first threshold: the fast path
			exp: 25,
			expected: CatacombsLevelInfo{
				ExpFromNewLevel:      25,
				ExpNeededForNewLevel: 50,
				PercentToNewLevel:    50,
				CurrentExp:           25,
				CurrentLevel:         0,
			},
		},
		{
			// exactly at the first threshold boundary
			exp: 51,
			expected: CatacombsLevelInfo{
				ExpFromNewLevel:      0,
				ExpNeededForNewLevel: 75,
				PercentToNewLevel:    0,
				CurrentExp:           51,
				CurrentLevel:         1,
			},
		},
		{
			// mid-table
			exp: 1000,
			expected: CatacombsLevelInfo{
				ExpFromNewLevel:      44,
				ExpNeededForNewLevel: 470,
				PercentToNewLevel:    0.09,
				CurrentExp:           1000,
				CurrentLevel:         6,
			},
		},
		{
			// one full increment past the table's last entry
			exp: 569809640 + 200_000_000 + 1_000_000,
			expected: CatacombsLevelInfo{
				ExpFromNewLevel:      1_000_000,
				ExpNeededForNewLevel: 200_000_000,
				PercentToNewLevel:    0.5,
				CurrentExp:           569809640 + 200_000_000 + 1_000_000,
				CurrentLevel:         51,
			},
		},
		{
			// many increments out
			exp: 569809640 + 5*200_000_000,
			expected: CatacombsLevelInfo{
				ExpFromNewLevel:      0,
				ExpNeededForNewLevel: 200_000_000,
				PercentToNewLevel:    0,
				CurrentExp:           569809640 + 5*200_000_000,
				CurrentLevel:         55,
			},
		},
	}

	for _, test := range testCases {
		got := CatacombsLevel(test.exp)
		diff := cmp.Diff(test.expected, got)
		if diff != "" {
			t.Fatalf("exp %.0f:\n%s", test.exp, diff)
		}
	}
}

func TestCatacombsLevelMonotonic(t *testing.T) {
	prev := 0
	for _, exp := range []float64{0, 100, 10_000, 1e6, 1e8, 6e8, 1e9, 5e9} {
		level := CatacombsLevel(exp).CurrentLevel
		require.GreaterOrEqual(t, level, prev, "exp %.0f", exp)
		prev = level
	}
}
