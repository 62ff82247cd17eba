// Package catalog holds the static quest definition table and the reward
// schedule. The table is constructed once at process start; referencing a
// missing or duplicate id is a programmer error, not a runtime condition.
package catalog

import (
	"fmt"

	"github.com/Statusnone420/weeklyquest/internal/domain"
)

// DailyChestBonusXP is the flat reward granted once per day when every
// chest-eligible daily quest is completed. It sits outside the difficulty
// table on purpose.
const DailyChestBonusXP = 75

// XPFor maps a difficulty tier to its fixed reward.
func XPFor(d domain.Difficulty) int {
	switch d {
	case domain.DifficultyTiny:
		return 10
	case domain.DifficultySmall:
		return 20
	case domain.DifficultyMedium:
		return 35
	case domain.DifficultyBig:
		return 60
	default:
		return 0
	}
}

// RewardXP returns the XP granted when an instance of def completes.
// An explicit override on the definition wins over the difficulty table.
func RewardXP(def domain.QuestDefinition) int {
	if def.XPOverride > 0 {
		return def.XPOverride
	}
	return XPFor(def.Difficulty)
}

// Catalog is an immutable lookup table of quest definitions.
type Catalog struct {
	defs []domain.QuestDefinition
	byID map[string]domain.QuestDefinition
}

// New builds a catalog from defs. Duplicate ids and non-positive targets are
// startup invariant violations and panic.
func New(defs []domain.QuestDefinition) *Catalog {
	c := &Catalog{
		defs: make([]domain.QuestDefinition, len(defs)),
		byID: make(map[string]domain.QuestDefinition, len(defs)),
	}
	copy(c.defs, defs)
	for _, d := range c.defs {
		if d.Target <= 0 {
			panic(fmt.Sprintf("catalog: definition %q has non-positive target %d", d.ID, d.Target))
		}
		if _, dup := c.byID[d.ID]; dup {
			panic(fmt.Sprintf("catalog: duplicate definition id %q", d.ID))
		}
		c.byID[d.ID] = d
	}
	return c
}

// Default returns the catalog built from the canonical definition table.
func Default() *Catalog {
	return New(definitions)
}

// Get looks up a definition by id.
func (c *Catalog) Get(id string) (domain.QuestDefinition, bool) {
	d, ok := c.byID[id]
	return d, ok
}

// All returns the definitions in catalog order. Callers must not mutate the
// returned slice.
func (c *Catalog) All() []domain.QuestDefinition {
	return c.defs
}

// ByType returns the definitions of the given type in catalog order.
func (c *Catalog) ByType(t domain.QuestType) []domain.QuestDefinition {
	var out []domain.QuestDefinition
	for _, d := range c.defs {
		if d.Type == t {
			out = append(out, d)
		}
	}
	return out
}

// Len reports the number of definitions.
func (c *Catalog) Len() int {
	return len(c.defs)
}
