// Package rotation builds the active quest instance sets for a period.
// Selection is driven by a PRNG seeded solely from the period key, so
// regenerating for the same day or week reproduces the same definition set
// even after a process restart with nothing stored.
package rotation

import (
	"sort"
	"time"

	"github.com/Statusnone420/weeklyquest/internal/catalog"
	"github.com/Statusnone420/weeklyquest/internal/domain"
	"github.com/Statusnone420/weeklyquest/internal/period"
	"github.com/google/uuid"
)

const (
	// dailyCorePicks is how many non-anchor daily core quests join the set.
	dailyCorePicks = 2
	// dailyBonusPicks is how many bonus quests join the daily set.
	dailyBonusPicks = 1
	// weeklyExtraPicks is how many pool quests join the required weekly set.
	weeklyExtraPicks = 2
)

type Generator struct {
	catalog *catalog.Catalog
}

func NewGenerator(c *catalog.Catalog) *Generator {
	return &Generator{catalog: c}
}

// Daily builds the quest set for one day. anchor is the day's creation
// timestamp (local midnight) copied onto every instance. A suppressed
// category in settings is excluded from core and habit selection; the three
// fixed anchors are always generated. Required ids missing from the catalog
// are skipped without error.
func (g *Generator) Daily(day period.DayKey, anchor time.Time, settings domain.Settings) []domain.QuestInstance {
	var out []domain.QuestInstance

	anchorSet := make(map[string]bool, len(catalog.DailyAnchorIDs))
	for _, id := range catalog.DailyAnchorIDs {
		anchorSet[id] = true
		def, ok := g.catalog.Get(id)
		if !ok {
			continue
		}
		out = append(out, newInstance(def, anchor, true))
	}

	r := newRNG(day.Seed())

	// Shuffle-and-pick additional core quests from the non-anchor pool.
	pool := g.dailyCorePool(anchorSet, settings)
	r.shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
	for i := 0; i < dailyCorePicks && i < len(pool); i++ {
		def := pool[i]
		out = append(out, newInstance(def, anchor, def.CountsForDailyChestDefault))
	}

	// One habit per category, easiest tier first. Selection here is not
	// randomized: the habit ladder is meant to feel stable day to day.
	for _, cat := range domain.HabitCategoryOrder {
		if cat == settings.SuppressedCategory {
			continue
		}
		if def, ok := g.habitFor(cat); ok {
			out = append(out, newInstance(def, anchor, def.CountsForDailyChestDefault))
		}
	}

	// One bonus quest keeps a stretch goal on the board.
	bonuses := g.bonusPool(settings)
	r.shuffle(len(bonuses), func(i, j int) { bonuses[i], bonuses[j] = bonuses[j], bonuses[i] })
	for i := 0; i < dailyBonusPicks && i < len(bonuses); i++ {
		def := bonuses[i]
		out = append(out, newInstance(def, anchor, def.CountsForDailyChestDefault))
	}

	// Guarantee a minimum chest-contributing set: the 4th instance is always
	// chest-eligible. Documented behavior, keep as is.
	if len(out) >= 4 {
		out[3].CountsForDailyChest = true
	}

	return out
}

// Weekly builds the quest set for one week: the four required quests plus a
// deterministic pick of extras from the weekly pool.
func (g *Generator) Weekly(week period.WeekKey, anchor time.Time) []domain.QuestInstance {
	var out []domain.QuestInstance

	included := make(map[string]bool, len(catalog.WeeklyRequiredIDs))
	for _, id := range catalog.WeeklyRequiredIDs {
		included[id] = true
		def, ok := g.catalog.Get(id)
		if !ok {
			continue
		}
		out = append(out, newInstance(def, anchor, false))
	}

	var pool []domain.QuestDefinition
	for _, def := range g.catalog.ByType(domain.TypeWeekly) {
		if !included[def.ID] {
			pool = append(pool, def)
		}
	}

	r := newRNG(week.Seed())
	r.shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
	for i := 0; i < weeklyExtraPicks && i < len(pool); i++ {
		out = append(out, newInstance(pool[i], anchor, false))
	}

	return out
}

func (g *Generator) dailyCorePool(exclude map[string]bool, settings domain.Settings) []domain.QuestDefinition {
	var pool []domain.QuestDefinition
	for _, def := range g.catalog.ByType(domain.TypeDailyCore) {
		if exclude[def.ID] {
			continue
		}
		if def.Category == settings.SuppressedCategory {
			continue
		}
		pool = append(pool, def)
	}
	return pool
}

func (g *Generator) bonusPool(settings domain.Settings) []domain.QuestDefinition {
	var pool []domain.QuestDefinition
	for _, def := range g.catalog.ByType(domain.TypeBonus) {
		if def.Category == settings.SuppressedCategory {
			continue
		}
		pool = append(pool, def)
	}
	return pool
}

// habitFor returns the first habit definition for cat, preferring the lowest
// difficulty and falling back to catalog order on ties.
func (g *Generator) habitFor(cat domain.QuestCategory) (domain.QuestDefinition, bool) {
	var candidates []domain.QuestDefinition
	for _, def := range g.catalog.ByType(domain.TypeDailyHabit) {
		if def.Category == cat {
			candidates = append(candidates, def)
		}
	}
	if len(candidates) == 0 {
		return domain.QuestDefinition{}, false
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Difficulty.Rank() < candidates[j].Difficulty.Rank()
	})
	return candidates[0], true
}

func newInstance(def domain.QuestDefinition, anchor time.Time, chest bool) domain.QuestInstance {
	return domain.QuestInstance{
		ID:                  uuid.New().String(),
		DefinitionID:        def.ID,
		CreatedAt:           anchor,
		Status:              domain.StatusPending,
		Progress:            0,
		Target:              def.Target,
		CountsForDailyChest: chest,
		XPGranted:           false,
	}
}
