package domain

import "time"

// XPPerLevel is the width of one level on the canonical curve. The curve is
// linear and uncapped: level = totalXP / XPPerLevel.
const XPPerLevel = 1000

// PlayerProgress is the lifetime XP record. TotalXP is monotonically
// non-decreasing; TodayXP resets to zero at every daily rollover.
type PlayerProgress struct {
	TotalXP        int
	TodayXP        int
	LastDailyReset time.Time
}

func (p PlayerProgress) Level() int {
	if p.TotalXP <= 0 {
		return 0
	}
	return p.TotalXP / XPPerLevel
}

func (p PlayerProgress) XPIntoCurrentLevel() int {
	if p.TotalXP <= 0 {
		return 0
	}
	return p.TotalXP % XPPerLevel
}

func (p PlayerProgress) XPToNextLevel() int {
	return XPPerLevel - p.XPIntoCurrentLevel()
}

// GrantXP credits xp to both the lifetime and daily totals.
// Non-positive grants are ignored.
func (p *PlayerProgress) GrantXP(xp int) {
	if xp <= 0 {
		return
	}
	p.TotalXP += xp
	p.TodayXP += xp
}
