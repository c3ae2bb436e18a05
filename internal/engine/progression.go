package engine

// Levels run 1..MaxLevel. The XP cost to advance from level L to L+1 is a
// fixed arithmetic progression: 88 + 3*(L-1).
const (
	MaxLevel      = 50
	baseLevelCost = 88
	levelCostStep = 3
)

// levelCost returns the XP needed to go from level l to l+1.
func levelCost(l int) int {
	return baseLevelCost + levelCostStep*(l-1)
}

// CumulativeXP returns the total XP threshold for being at the given level.
// CumulativeXP(1) == 0.
func CumulativeXP(level int) int {
	if level <= 1 {
		return 0
	}
	if level > MaxLevel {
		level = MaxLevel
	}
	total := 0
	for l := 1; l < level; l++ {
		total += levelCost(l)
	}
	return total
}

// LevelForXP returns the greatest level L such that xp >= CumulativeXP(L),
// clamped to [1, MaxLevel].
func LevelForXP(xp int) int {
	if xp <= 0 {
		return 1
	}
	level := 1
	for level < MaxLevel && xp >= CumulativeXP(level+1) {
		level++
	}
	return level
}

// XPForNext returns the cost of the next level, or 0 at the cap.
func XPForNext(level int) int {
	if level >= MaxLevel {
		return 0
	}
	return levelCost(level)
}

// XPInCurrentLevel returns the XP accumulated above the current level's
// threshold.
func XPInCurrentLevel(xp int) int {
	return xp - CumulativeXP(LevelForXP(xp))
}

// ProgressInLevel returns the fraction of the way to the next level, in
// [0, 1]. At the cap it reports 1.
func ProgressInLevel(xp int) float64 {
	level := LevelForXP(xp)
	if level >= MaxLevel {
		return 1
	}
	return float64(xp-CumulativeXP(level)) / float64(levelCost(level))
}
