package domain

type QuestType string

const (
	TypeDailyCore  QuestType = "daily_core"
	TypeDailyHabit QuestType = "daily_habit"
	TypeBonus      QuestType = "bonus"
	TypeWeekly     QuestType = "weekly"
)

type QuestCategory string

const (
	CategoryFocus     QuestCategory = "focus"
	CategoryHydration QuestCategory = "hydration"
	CategoryHPCore    QuestCategory = "hp_core"
	CategoryChores    QuestCategory = "chores_work"
	CategoryMeta      QuestCategory = "meta"
)

// HabitCategoryOrder is the canonical order used when one habit quest is
// picked per category during daily rotation.
var HabitCategoryOrder = []QuestCategory{
	CategoryFocus,
	CategoryHydration,
	CategoryHPCore,
	CategoryChores,
	CategoryMeta,
}

type Difficulty string

const (
	DifficultyTiny   Difficulty = "tiny"
	DifficultySmall  Difficulty = "small"
	DifficultyMedium Difficulty = "medium"
	DifficultyBig    Difficulty = "big"
)

// Rank orders difficulties from easiest to hardest. Unknown values sort last.
func (d Difficulty) Rank() int {
	switch d {
	case DifficultyTiny:
		return 0
	case DifficultySmall:
		return 1
	case DifficultyMedium:
		return 2
	case DifficultyBig:
		return 3
	default:
		return 4
	}
}

type QuestStatus string

const (
	StatusPending    QuestStatus = "pending"
	StatusInProgress QuestStatus = "in_progress"
	StatusCompleted  QuestStatus = "completed"
	StatusFailed     QuestStatus = "failed"
)

type EventKind string

const (
	EventFocusSessionStarted   EventKind = "focus_session_started"
	EventFocusSessionCompleted EventKind = "focus_session_completed"
	EventHydrationLogged       EventKind = "hydration_logged"
	EventCheckInCompleted      EventKind = "check_in_completed"
	EventQuestsTabOpened       EventKind = "quests_tab_opened"
	EventStatsTabOpened        EventKind = "stats_tab_opened"
	EventDailyCoreCompleted    EventKind = "daily_core_completed"
)

type LevelUpTier string

const (
	TierNormal    LevelUpTier = "normal"
	TierMilestone LevelUpTier = "milestone"
	TierJackpot   LevelUpTier = "jackpot"
)
