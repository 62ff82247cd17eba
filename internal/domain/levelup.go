package domain

// JackpotChance is the small fixed probability that an ordinary level-up is
// upgraded to a jackpot celebration.
const JackpotChance = 0.03

// ClassifyLevelUp decides how a level transition should be celebrated.
// Every 10th level is a jackpot, every 5th a milestone; anything else has a
// small random chance of a jackpot. The roll func supplies a value in
// [0, 1); passing nil disables the random upgrade. The classification is a
// presentation decision and is never persisted, so it does not need to be
// reproducible.
func ClassifyLevelUp(oldLevel, newLevel int, roll func() float64) LevelUpTier {
	if newLevel <= oldLevel {
		return TierNormal
	}
	if newLevel%10 == 0 {
		return TierJackpot
	}
	if newLevel%5 == 0 {
		return TierMilestone
	}
	if roll != nil && roll() < JackpotChance {
		return TierJackpot
	}
	return TierNormal
}
