package catalog

import "github.com/Statusnone420/weeklyquest/internal/domain"

// Quest definition ids. Keep these stable: persisted instances, unique-per-day
// markers, and the event routing table all reference them.
const (
	// Daily anchors, always present and chest-eligible.
	IDFocusFirstSession = "focus_first_session"
	IDHydrateFirstLog   = "hydrate_first_log"
	IDCheckinMorning    = "checkin_morning"

	// Daily core pool.
	IDFocusThreeSessions = "focus_three_sessions"
	IDFocusDeep25        = "focus_deep_25"
	IDFocusDeep50        = "focus_deep_50"
	IDHydrateFourLogs    = "hydrate_four_logs"
	IDHydrate64oz        = "hydrate_64oz"
	IDChoresOneTask      = "chores_one_task"
	IDChoresThreeTasks   = "chores_three_tasks"
	IDHPStretchBreak     = "hp_stretch_break"
	IDHPEveningReview    = "hp_evening_review"
	IDMetaOpenQuests     = "meta_open_quests"

	// Daily habits, one per category.
	IDHabitFocusShowup    = "habit_focus_showup"
	IDHabitFocusDouble    = "habit_focus_double"
	IDHabitHydrateLog     = "habit_hydrate_log"
	IDHabitHydrateSteady  = "habit_hydrate_steady"
	IDHabitCheckin        = "habit_checkin"
	IDHabitTidyReset      = "habit_tidy_reset"
	IDHabitReflect        = "habit_reflect"

	// Bonus pool, one picked per day.
	IDBonusFullCore       = "bonus_full_core"
	IDBonusEarlyBird      = "bonus_early_bird"
	IDBonusFocusMarathon  = "bonus_focus_marathon"
	IDBonusHydrateSurplus = "bonus_hydrate_surplus"

	// Weekly required, one per major category.
	IDWeeklyFocusSessions = "weekly_focus_sessions"
	IDWeeklyHydrateDays   = "weekly_hydrate_days"
	IDWeeklyCheckins      = "weekly_checkins"
	IDWeeklyChores        = "weekly_chores"

	// Weekly pool.
	IDWeeklyDeepHours     = "weekly_deep_hours"
	IDWeeklyMetaReview    = "weekly_meta_review"
	IDWeeklyEarlyCheckins = "weekly_early_checkins"
	IDWeeklyHydrateLogs   = "weekly_hydrate_logs"
	IDWeeklyTidyStreak    = "weekly_tidy_streak"
)

// DailyAnchorIDs are generated first every day and are always chest-eligible.
var DailyAnchorIDs = []string{
	IDFocusFirstSession,
	IDHydrateFirstLog,
	IDCheckinMorning,
}

// WeeklyRequiredIDs are generated first every week, one per major category.
var WeeklyRequiredIDs = []string{
	IDWeeklyFocusSessions,
	IDWeeklyHydrateDays,
	IDWeeklyCheckins,
	IDWeeklyChores,
}

var definitions = []domain.QuestDefinition{
	// Anchors.
	{ID: IDFocusFirstSession, Type: domain.TypeDailyCore, Category: domain.CategoryFocus, Difficulty: domain.DifficultySmall,
		Title: "Clock In", Subtitle: "Start your first focus session", Target: 1, CountsForDailyChestDefault: true},
	{ID: IDHydrateFirstLog, Type: domain.TypeDailyCore, Category: domain.CategoryHydration, Difficulty: domain.DifficultyTiny,
		Title: "First Sip", Subtitle: "Log your first water of the day", Target: 1, CountsForDailyChestDefault: true},
	{ID: IDCheckinMorning, Type: domain.TypeDailyCore, Category: domain.CategoryHPCore, Difficulty: domain.DifficultySmall,
		Title: "Morning Check-In", Subtitle: "Complete your daily check-in", Target: 1, CountsForDailyChestDefault: true},

	// Daily core pool.
	{ID: IDFocusThreeSessions, Type: domain.TypeDailyCore, Category: domain.CategoryFocus, Difficulty: domain.DifficultyMedium,
		Title: "Triple Shift", Subtitle: "Finish three focus sessions", Target: 3},
	{ID: IDFocusDeep25, Type: domain.TypeDailyCore, Category: domain.CategoryFocus, Difficulty: domain.DifficultySmall,
		Title: "Deep Dive", Subtitle: "Finish a 25-minute session", Target: 1},
	{ID: IDFocusDeep50, Type: domain.TypeDailyCore, Category: domain.CategoryFocus, Difficulty: domain.DifficultyMedium,
		Title: "Marathon Block", Subtitle: "Finish a 50-minute session", Target: 1},
	{ID: IDHydrateFourLogs, Type: domain.TypeDailyCore, Category: domain.CategoryHydration, Difficulty: domain.DifficultySmall,
		Title: "Steady Stream", Subtitle: "Log water four times", Target: 4},
	{ID: IDHydrate64oz, Type: domain.TypeDailyCore, Category: domain.CategoryHydration, Difficulty: domain.DifficultyMedium,
		Title: "Tide Turner", Subtitle: "Hit 64oz of water today", Target: 1},
	{ID: IDChoresOneTask, Type: domain.TypeDailyCore, Category: domain.CategoryChores, Difficulty: domain.DifficultySmall,
		Title: "One Small Win", Subtitle: "Knock out a chore or work task", Target: 1},
	{ID: IDChoresThreeTasks, Type: domain.TypeDailyCore, Category: domain.CategoryChores, Difficulty: domain.DifficultyMedium,
		Title: "Clear the Deck", Subtitle: "Knock out three chores or tasks", Target: 3},
	{ID: IDHPStretchBreak, Type: domain.TypeDailyCore, Category: domain.CategoryHPCore, Difficulty: domain.DifficultyTiny,
		Title: "Stretch Break", Subtitle: "Step away and stretch", Target: 1},
	{ID: IDHPEveningReview, Type: domain.TypeDailyCore, Category: domain.CategoryHPCore, Difficulty: domain.DifficultySmall,
		Title: "Wind Down", Subtitle: "Review your stats after the evening cutoff", Target: 1},
	{ID: IDMetaOpenQuests, Type: domain.TypeDailyCore, Category: domain.CategoryMeta, Difficulty: domain.DifficultyTiny,
		Title: "Check the Board", Subtitle: "Open your quest board", Target: 1},

	// Daily habits.
	{ID: IDHabitFocusShowup, Type: domain.TypeDailyHabit, Category: domain.CategoryFocus, Difficulty: domain.DifficultyTiny,
		Title: "Show Up", Subtitle: "Start any focus session", Target: 1},
	{ID: IDHabitFocusDouble, Type: domain.TypeDailyHabit, Category: domain.CategoryFocus, Difficulty: domain.DifficultySmall,
		Title: "Back to Back", Subtitle: "Finish two focus sessions", Target: 2},
	{ID: IDHabitHydrateLog, Type: domain.TypeDailyHabit, Category: domain.CategoryHydration, Difficulty: domain.DifficultyTiny,
		Title: "Keep It Flowing", Subtitle: "Log water at least once", Target: 1},
	{ID: IDHabitHydrateSteady, Type: domain.TypeDailyHabit, Category: domain.CategoryHydration, Difficulty: domain.DifficultySmall,
		Title: "Three Rounds", Subtitle: "Log water three times", Target: 3},
	{ID: IDHabitCheckin, Type: domain.TypeDailyHabit, Category: domain.CategoryHPCore, Difficulty: domain.DifficultyTiny,
		Title: "Touch Base", Subtitle: "Do your daily check-in", Target: 1},
	{ID: IDHabitTidyReset, Type: domain.TypeDailyHabit, Category: domain.CategoryChores, Difficulty: domain.DifficultyTiny,
		Title: "Tidy Reset", Subtitle: "Reset one small space", Target: 1},
	{ID: IDHabitReflect, Type: domain.TypeDailyHabit, Category: domain.CategoryMeta, Difficulty: domain.DifficultyTiny,
		Title: "Look Back", Subtitle: "Open your stats for the day", Target: 1},

	// Bonus pool.
	{ID: IDBonusFullCore, Type: domain.TypeBonus, Category: domain.CategoryMeta, Difficulty: domain.DifficultyBig,
		Title: "Clean Sweep", Subtitle: "Complete every daily core quest", Target: 1},
	{ID: IDBonusEarlyBird, Type: domain.TypeBonus, Category: domain.CategoryHPCore, Difficulty: domain.DifficultySmall,
		Title: "Early Bird", Subtitle: "Check in before the evening cutoff", Target: 1},
	{ID: IDBonusFocusMarathon, Type: domain.TypeBonus, Category: domain.CategoryFocus, Difficulty: domain.DifficultyBig,
		Title: "Focus Marathon", Subtitle: "Finish five focus sessions", Target: 5},
	{ID: IDBonusHydrateSurplus, Type: domain.TypeBonus, Category: domain.CategoryHydration, Difficulty: domain.DifficultySmall,
		Title: "Overflow", Subtitle: "Log water six times", Target: 6},

	// Weekly required. Explicit rewards: the canonical weekly completions
	// pay a flat 100 rather than the big-tier 60.
	{ID: IDWeeklyFocusSessions, Type: domain.TypeWeekly, Category: domain.CategoryFocus, Difficulty: domain.DifficultyBig,
		Title: "Ten Strong", Subtitle: "Finish ten focus sessions this week", Target: 10, XPOverride: 100},
	{ID: IDWeeklyHydrateDays, Type: domain.TypeWeekly, Category: domain.CategoryHydration, Difficulty: domain.DifficultyBig,
		Title: "High Water Mark", Subtitle: "Hit 64oz on five different days", Target: 5, XPOverride: 100},
	{ID: IDWeeklyCheckins, Type: domain.TypeWeekly, Category: domain.CategoryHPCore, Difficulty: domain.DifficultyBig,
		Title: "Five Alive", Subtitle: "Check in on five different days", Target: 5, XPOverride: 100},
	{ID: IDWeeklyChores, Type: domain.TypeWeekly, Category: domain.CategoryChores, Difficulty: domain.DifficultyBig,
		Title: "Keep House", Subtitle: "Clear eight chores or tasks this week", Target: 8, XPOverride: 100},

	// Weekly pool.
	{ID: IDWeeklyDeepHours, Type: domain.TypeWeekly, Category: domain.CategoryFocus, Difficulty: domain.DifficultyMedium,
		Title: "Long Haul", Subtitle: "Finish five 50-minute sessions", Target: 5},
	{ID: IDWeeklyMetaReview, Type: domain.TypeWeekly, Category: domain.CategoryMeta, Difficulty: domain.DifficultySmall,
		Title: "Weekly Review", Subtitle: "Review your stats on two days", Target: 2},
	{ID: IDWeeklyEarlyCheckins, Type: domain.TypeWeekly, Category: domain.CategoryHPCore, Difficulty: domain.DifficultyMedium,
		Title: "Dawn Patrol", Subtitle: "Check in early on three days", Target: 3},
	{ID: IDWeeklyHydrateLogs, Type: domain.TypeWeekly, Category: domain.CategoryHydration, Difficulty: domain.DifficultyMedium,
		Title: "Deep Reservoir", Subtitle: "Log water twenty times this week", Target: 20},
	{ID: IDWeeklyTidyStreak, Type: domain.TypeWeekly, Category: domain.CategoryChores, Difficulty: domain.DifficultyMedium,
		Title: "Tidy Streak", Subtitle: "Do a tidy reset on four days", Target: 4},
}
