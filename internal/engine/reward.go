package engine

import (
	"math"

	"github.com/nardogod/diaryquest/internal/catalog"
)

// ComputeReward maps (folder type, importance) to the raw reward tuple:
// the folder's base tuple with every field scaled by the importance factor
// and rounded to the nearest integer independently.
func ComputeReward(folder catalog.FolderType, importance catalog.Importance) catalog.Reward {
	base := catalog.BaseReward(folder)
	f := importance.Factor()
	return catalog.Reward{
		Coins:  roundScaled(base.Coins, f),
		XP:     roundScaled(base.XP, f),
		Health: roundScaled(base.Health, f),
		Stress: roundScaled(base.Stress, f),
	}
}

// AggregateBonuses combines independent bonus sources into one modifier set.
// Percentages from different sources stack additively on the base amount;
// flat additions sum.
func AggregateBonuses(sources ...catalog.Bonus) catalog.Bonus {
	var out catalog.Bonus
	for _, b := range sources {
		out.XPPercent += b.XPPercent
		out.CoinsPercent += b.CoinsPercent
		out.StressReducePercent += b.StressReducePercent
		out.HealthExtra += b.HealthExtra
	}
	return out
}

// ApplyBonuses applies the aggregated modifier set to a raw reward.
// stress_reduce_percent only softens stress gained; stress relief is left
// as computed.
func ApplyBonuses(base catalog.Reward, b catalog.Bonus) catalog.Reward {
	out := catalog.Reward{
		Coins:  roundScaled(base.Coins, 1+b.CoinsPercent/100),
		XP:     roundScaled(base.XP, 1+b.XPPercent/100),
		Health: base.Health + b.HealthExtra,
		Stress: base.Stress,
	}
	if base.Stress > 0 && b.StressReducePercent > 0 {
		out.Stress = roundScaled(base.Stress, 1-b.StressReducePercent/100)
	}
	return out
}

// equippedBonuses collects the modifier sources that apply to every credited
// completion: the equipped cover and the equipped guardian item. Room bonuses
// apply only to cooldown actions and are handled there.
func equippedBonuses(coverID string, guardianID *string) catalog.Bonus {
	var sources []catalog.Bonus
	if cover, ok := catalog.CoverByID(coverID); ok {
		sources = append(sources, cover.Bonus)
	}
	if guardianID != nil {
		if g, ok := catalog.GuardianByID(*guardianID); ok {
			sources = append(sources, g.Bonus)
		}
	}
	return AggregateBonuses(sources...)
}

func roundScaled(v int, factor float64) int {
	return int(math.Round(float64(v) * factor))
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
