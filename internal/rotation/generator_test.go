package rotation

import (
	"sort"
	"testing"
	"time"

	"github.com/Statusnone420/weeklyquest/internal/catalog"
	"github.com/Statusnone420/weeklyquest/internal/domain"
	"github.com/Statusnone420/weeklyquest/internal/period"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDay = period.DayKey{Year: 2025, Month: time.March, Day: 15}
var testWeek = period.WeekKey{Year: 2025, Week: 11}
var testAnchor = time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)

func definitionIDs(qs []domain.QuestInstance) []string {
	ids := make([]string, 0, len(qs))
	for _, q := range qs {
		ids = append(ids, q.DefinitionID)
	}
	sort.Strings(ids)
	return ids
}

func TestDaily_Deterministic(t *testing.T) {
	g := NewGenerator(catalog.Default())

	a := g.Daily(testDay, testAnchor, domain.Settings{})
	b := g.Daily(testDay, testAnchor, domain.Settings{})
	assert.Equal(t, definitionIDs(a), definitionIDs(b),
		"same day key must reproduce the same definition multiset")
}

func TestDaily_DifferentDaysVary(t *testing.T) {
	g := NewGenerator(catalog.Default())

	seen := make(map[string]bool)
	for d := 1; d <= 14; d++ {
		day := period.DayKey{Year: 2025, Month: time.March, Day: d}
		ids := definitionIDs(g.Daily(day, testAnchor, domain.Settings{}))
		seen[joinIDs(ids)] = true
	}
	assert.Greater(t, len(seen), 1, "two weeks of rotations should not all be identical")
}

func joinIDs(ids []string) string {
	out := ""
	for _, id := range ids {
		out += id + "|"
	}
	return out
}

func TestDaily_AnchorsAlwaysPresentAndChestEligible(t *testing.T) {
	g := NewGenerator(catalog.Default())
	qs := g.Daily(testDay, testAnchor, domain.Settings{})

	byDef := make(map[string]domain.QuestInstance)
	for _, q := range qs {
		byDef[q.DefinitionID] = q
	}
	for _, id := range catalog.DailyAnchorIDs {
		q, ok := byDef[id]
		require.True(t, ok, "anchor %s missing from daily set", id)
		assert.True(t, q.CountsForDailyChest, "anchor %s must count for chest", id)
	}
}

func TestDaily_FourthInstanceForcedChestEligible(t *testing.T) {
	g := NewGenerator(catalog.Default())
	qs := g.Daily(testDay, testAnchor, domain.Settings{})

	require.GreaterOrEqual(t, len(qs), 4)
	assert.True(t, qs[3].CountsForDailyChest, "4th instance is always chest-eligible")
}

func TestDaily_FreshInstanceState(t *testing.T) {
	g := NewGenerator(catalog.Default())
	for _, q := range g.Daily(testDay, testAnchor, domain.Settings{}) {
		assert.Equal(t, domain.StatusPending, q.Status)
		assert.Equal(t, 0, q.Progress)
		assert.False(t, q.XPGranted)
		assert.Equal(t, testAnchor, q.CreatedAt)
		assert.NotEmpty(t, q.ID)
		assert.Positive(t, q.Target)
	}
}

func TestDaily_UniqueInstanceIDs(t *testing.T) {
	g := NewGenerator(catalog.Default())
	qs := g.Daily(testDay, testAnchor, domain.Settings{})
	seen := make(map[string]bool)
	for _, q := range qs {
		assert.False(t, seen[q.ID])
		seen[q.ID] = true
	}
}

func TestDaily_SuppressedCategoryExcluded(t *testing.T) {
	g := NewGenerator(catalog.Default())
	qs := g.Daily(testDay, testAnchor, domain.Settings{SuppressedCategory: domain.CategoryChores})

	c := catalog.Default()
	for _, q := range qs {
		def, ok := c.Get(q.DefinitionID)
		require.True(t, ok)
		assert.NotEqual(t, domain.CategoryChores, def.Category,
			"suppressed category leaked via %s", q.DefinitionID)
	}
}

func TestDaily_SuppressionDoesNotRemoveAnchors(t *testing.T) {
	g := NewGenerator(catalog.Default())
	// Anchors live in focus/hydration/hp_core; suppressing hydration still
	// keeps the hydration anchor, which is a fixed always-present quest.
	qs := g.Daily(testDay, testAnchor, domain.Settings{SuppressedCategory: domain.CategoryHydration})

	found := false
	for _, q := range qs {
		if q.DefinitionID == catalog.IDHydrateFirstLog {
			found = true
		}
	}
	assert.True(t, found, "anchors are exempt from category suppression")
}

func TestDaily_OneHabitPerCategory(t *testing.T) {
	g := NewGenerator(catalog.Default())
	c := catalog.Default()
	qs := g.Daily(testDay, testAnchor, domain.Settings{})

	habitCats := make(map[domain.QuestCategory]int)
	for _, q := range qs {
		def, _ := c.Get(q.DefinitionID)
		if def.Type == domain.TypeDailyHabit {
			habitCats[def.Category]++
		}
	}
	for _, cat := range domain.HabitCategoryOrder {
		assert.Equal(t, 1, habitCats[cat], "category %s", cat)
	}
}

func TestDaily_HabitPrefersLowestDifficulty(t *testing.T) {
	g := NewGenerator(catalog.Default())
	c := catalog.Default()
	qs := g.Daily(testDay, testAnchor, domain.Settings{})

	for _, q := range qs {
		def, _ := c.Get(q.DefinitionID)
		if def.Type != domain.TypeDailyHabit {
			continue
		}
		for _, other := range c.ByType(domain.TypeDailyHabit) {
			if other.Category == def.Category {
				assert.LessOrEqual(t, def.Difficulty.Rank(), other.Difficulty.Rank(),
					"picked habit %s is not the easiest in its category", def.ID)
			}
		}
	}
}

func TestDaily_MissingRequiredIDSkippedSilently(t *testing.T) {
	// A catalog without one anchor id still generates the rest.
	var defs []domain.QuestDefinition
	for _, d := range catalog.Default().All() {
		if d.ID == catalog.IDHydrateFirstLog {
			continue
		}
		defs = append(defs, d)
	}
	g := NewGenerator(catalog.New(defs))

	qs := g.Daily(testDay, testAnchor, domain.Settings{})
	assert.NotEmpty(t, qs)
	for _, q := range qs {
		assert.NotEqual(t, catalog.IDHydrateFirstLog, q.DefinitionID)
	}
}

func TestWeekly_Deterministic(t *testing.T) {
	g := NewGenerator(catalog.Default())

	a := g.Weekly(testWeek, testAnchor)
	b := g.Weekly(testWeek, testAnchor)
	assert.Equal(t, definitionIDs(a), definitionIDs(b))
}

func TestWeekly_RequiredPlusTwoExtras(t *testing.T) {
	g := NewGenerator(catalog.Default())
	qs := g.Weekly(testWeek, testAnchor)

	require.Len(t, qs, len(catalog.WeeklyRequiredIDs)+2)

	byDef := make(map[string]bool)
	for _, q := range qs {
		assert.False(t, byDef[q.DefinitionID], "duplicate weekly definition %s", q.DefinitionID)
		byDef[q.DefinitionID] = true
	}
	for _, id := range catalog.WeeklyRequiredIDs {
		assert.True(t, byDef[id], "required weekly %s missing", id)
	}
}

func TestWeekly_ExtrasAreWeeklyType(t *testing.T) {
	g := NewGenerator(catalog.Default())
	c := catalog.Default()
	for _, q := range g.Weekly(testWeek, testAnchor) {
		def, ok := c.Get(q.DefinitionID)
		require.True(t, ok)
		assert.Equal(t, domain.TypeWeekly, def.Type)
	}
}

func TestRNG_SameSeedSameSequence(t *testing.T) {
	a := newRNG(42)
	b := newRNG(42)
	for i := 0; i < 100; i++ {
		assert.Equal(t, a.next(), b.next())
	}
}

func TestRNG_ZeroSeedDoesNotStick(t *testing.T) {
	r := newRNG(0)
	assert.NotZero(t, r.next())
}
