package skyblock

import "math"

// cumulative experience required to finish each catacombs level, level
// 1 through 50. The displayed thresholds are exceeded by one point, so
// comparisons below add 1, mirroring the stats the game shows.
var catacombsExp = []float64{
	50, 125, 235, 395, 625, 955, 1425, 2095, 3045, 4385,
	6275, 8940, 12700, 17960, 25340, 35640, 50040, 70040, 97640, 135640,
	188140, 259640, 356640, 488640, 668640, 911640, 1239640, 1684640, 2284640, 3084640,
	4149640, 5559640, 7459640, 9959640, 13259640, 17559640, 23159640, 30359640, 39559640, 51559640,
	66559640, 85559640, 109559640, 139559640, 177559640, 225559640, 285559640, 360559640, 453559640, 569809640,
}

// past level 50 every fixed increment grants one more level
const catacombsExpPerExtraLevel = 200_000_000

// CatacombsLevelInfo describes progress within the catacombs skill.
// PercentToNewLevel keeps the source-compatible mixed scale: a 0..100
// value on the sub-51 and past-50 paths, a 0..1 fraction on the table
// path.
type CatacombsLevelInfo struct {
	ExpFromNewLevel      float64
	ExpNeededForNewLevel float64
	PercentToNewLevel    float64
	CurrentExp           float64
	CurrentLevel         int
}

// CatacombsLevel determines the current level and progress for a
// cumulative experience amount. Within the table the thresholds above
// decide the level; beyond the last entry every extra 200M grants one
// level, open-ended. The two paths intentionally keep their original
// constants and rounding, which differ slightly at the boundary.
func CatacombsLevel(exp float64) CatacombsLevelInfo {
	if exp < catacombsExp[0]+1 {
		return CatacombsLevelInfo{
			ExpFromNewLevel:      exp,
			ExpNeededForNewLevel: 50,
			PercentToNewLevel:    exp * 2,
			CurrentExp:           exp,
			CurrentLevel:         0,
		}
	}

	for i := 1; i < len(catacombsExp); i++ {
		if catacombsExp[i]+1 > exp {
			needed := (catacombsExp[i] + 1) - (catacombsExp[i-1] + 1)
			fromNew := exp - (catacombsExp[i-1] + 1)
			return CatacombsLevelInfo{
				ExpFromNewLevel:      round1(fromNew),
				ExpNeededForNewLevel: needed,
				PercentToNewLevel:    round2(fromNew / needed),
				CurrentExp:           round1(exp),
				CurrentLevel:         i,
			}
		}
	}

	level := 50
	total := exp
	exp -= catacombsExp[len(catacombsExp)-1]
	for exp-catacombsExpPerExtraLevel >= 0 {
		exp -= catacombsExpPerExtraLevel
		level++
	}
	return CatacombsLevelInfo{
		ExpFromNewLevel:      exp,
		ExpNeededForNewLevel: catacombsExpPerExtraLevel,
		PercentToNewLevel:    round2(exp / catacombsExpPerExtraLevel * 100),
		CurrentExp:           total,
		CurrentLevel:         level,
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
