package engine

import (
	"github.com/Statusnone420/weeklyquest/internal/catalog"
	"github.com/Statusnone420/weeklyquest/internal/domain"
)

// route binds an event kind to one quest definition it may advance.
// increment is always 1 in the current rule set; the field exists so the
// table stays the single place to change if that ever moves.
type route struct {
	definitionID string
	weekly       bool
	uniquePerDay bool
	increment    int
	when         func(domain.EventPayload) bool
}

func minMinutes(n int) func(domain.EventPayload) bool {
	return func(p domain.EventPayload) bool { return p.Minutes >= n }
}

func minOunces(n int) func(domain.EventPayload) bool {
	return func(p domain.EventPayload) bool { return p.TotalOunces >= n }
}

func afterCutoff(p domain.EventPayload) bool  { return p.AfterEveningCutoff }
func beforeCutoff(p domain.EventPayload) bool { return !p.AfterEveningCutoff }

// eventRoutes is the static event → definition table. Quests absent from it
// (chores, stretch breaks) have no natural progress signal and complete only
// through the manual path.
var eventRoutes = map[domain.EventKind][]route{
	domain.EventFocusSessionStarted: {
		{definitionID: catalog.IDFocusFirstSession, increment: 1},
		{definitionID: catalog.IDHabitFocusShowup, increment: 1},
	},
	domain.EventFocusSessionCompleted: {
		{definitionID: catalog.IDFocusThreeSessions, increment: 1},
		{definitionID: catalog.IDHabitFocusDouble, increment: 1},
		{definitionID: catalog.IDBonusFocusMarathon, increment: 1},
		{definitionID: catalog.IDFocusDeep25, increment: 1, when: minMinutes(25)},
		{definitionID: catalog.IDFocusDeep50, increment: 1, when: minMinutes(50)},
		{definitionID: catalog.IDWeeklyFocusSessions, weekly: true, increment: 1},
		{definitionID: catalog.IDWeeklyDeepHours, weekly: true, increment: 1, when: minMinutes(50)},
	},
	domain.EventHydrationLogged: {
		{definitionID: catalog.IDHydrateFirstLog, increment: 1},
		{definitionID: catalog.IDHabitHydrateLog, increment: 1},
		{definitionID: catalog.IDHabitHydrateSteady, increment: 1},
		{definitionID: catalog.IDHydrateFourLogs, increment: 1},
		{definitionID: catalog.IDBonusHydrateSurplus, increment: 1},
		{definitionID: catalog.IDHydrate64oz, increment: 1, when: minOunces(64)},
		{definitionID: catalog.IDWeeklyHydrateLogs, weekly: true, increment: 1},
		{definitionID: catalog.IDWeeklyHydrateDays, weekly: true, increment: 1, uniquePerDay: true, when: minOunces(64)},
	},
	domain.EventCheckInCompleted: {
		{definitionID: catalog.IDCheckinMorning, increment: 1},
		{definitionID: catalog.IDHabitCheckin, increment: 1},
		{definitionID: catalog.IDBonusEarlyBird, increment: 1, when: beforeCutoff},
		{definitionID: catalog.IDWeeklyCheckins, weekly: true, increment: 1, uniquePerDay: true},
		{definitionID: catalog.IDWeeklyEarlyCheckins, weekly: true, increment: 1, uniquePerDay: true, when: beforeCutoff},
	},
	domain.EventQuestsTabOpened: {
		{definitionID: catalog.IDMetaOpenQuests, increment: 1},
	},
	domain.EventStatsTabOpened: {
		{definitionID: catalog.IDHabitReflect, increment: 1},
		{definitionID: catalog.IDHPEveningReview, increment: 1, when: afterCutoff},
		{definitionID: catalog.IDWeeklyMetaReview, weekly: true, increment: 1, uniquePerDay: true},
	},
	domain.EventDailyCoreCompleted: {
		{definitionID: catalog.IDBonusFullCore, increment: 1},
	},
}

func routesFor(kind domain.EventKind) []route {
	return eventRoutes[kind]
}
