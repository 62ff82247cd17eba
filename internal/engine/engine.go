// Package engine holds the progress ledger: the single stateful core that
// applies gameplay events to the active quest sets, grants XP exactly once
// per completion, and rolls state across day and week boundaries.
//
// The ledger is single-writer: all calls arrive from one logical execution
// context, so there is no locking. Every operation is a guarded
// no-op when its preconditions fail; nothing here raises on bad input.
package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Statusnone420/weeklyquest/internal/catalog"
	"github.com/Statusnone420/weeklyquest/internal/db"
	"github.com/Statusnone420/weeklyquest/internal/domain"
	"github.com/Statusnone420/weeklyquest/internal/period"
	"github.com/Statusnone420/weeklyquest/internal/rotation"
	"github.com/Statusnone420/weeklyquest/internal/store"
)

// ErrPersist marks a durability failure after a successful in-memory
// mutation. The in-memory state remains authoritative for the rest of the
// process lifetime; callers should treat this as a warning, not a failure.
var ErrPersist = errors.New("engine state not persisted")

// Clock supplies "now". Injectable for deterministic tests.
type Clock func() time.Time

// Listener observes state snapshots. Listeners run synchronously before the
// mutating call returns.
type Listener func(domain.Snapshot)

type Engine struct {
	catalog  *catalog.Catalog
	gen      *rotation.Generator
	store    *store.StateStore
	uow      db.UnitOfWork
	clock    Clock
	settings domain.Settings

	day  period.DayKey
	week period.WeekKey

	daily  []domain.QuestInstance
	weekly []domain.QuestInstance
	player domain.PlayerProgress
	chest  store.ChestState
	reroll bool

	listeners []Listener
}

// New loads (or generates) the current period's state and returns a ready
// engine. Stored state that fails to decode is replaced with a freshly
// generated set; only underlying read errors are returned.
func New(ctx context.Context, cat *catalog.Catalog, st *store.StateStore, uow db.UnitOfWork, clock Clock, settings domain.Settings) (*Engine, error) {
	e := &Engine{
		catalog:  cat,
		gen:      rotation.NewGenerator(cat),
		store:    st,
		uow:      uow,
		clock:    clock,
		settings: settings,
	}

	now := clock()
	player, ok, err := st.Player(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading player progress: %w", err)
	}
	if !ok {
		player = domain.PlayerProgress{LastDailyReset: period.StartOfDay(now)}
	}
	// A restart that crosses midnight still owes the daily XP reset; the
	// stored reset marker records the last boundary actually applied.
	if period.DayOf(now) != period.DayOf(player.LastDailyReset) {
		player.TodayXP = 0
		player.LastDailyReset = period.StartOfDay(now)
	}
	e.player = player

	if err := e.loadDay(ctx, now); err != nil {
		return nil, err
	}
	if err := e.loadWeek(ctx, now); err != nil {
		return nil, err
	}
	return e, nil
}

// Subscribe registers a listener for post-mutation snapshots.
func (e *Engine) Subscribe(l Listener) {
	e.listeners = append(e.listeners, l)
}

// Snapshot returns a read-only copy of the current state.
func (e *Engine) Snapshot() domain.Snapshot {
	daily := make([]domain.QuestInstance, len(e.daily))
	copy(daily, e.daily)
	weekly := make([]domain.QuestInstance, len(e.weekly))
	copy(weekly, e.weekly)
	return domain.Snapshot{
		Daily:           daily,
		Weekly:          weekly,
		Player:          e.player,
		DailyChestReady: e.chest.Ready(),
		RerollUsedToday: e.reroll,
	}
}

// Definition resolves a definition id through the catalog.
func (e *Engine) Definition(id string) (domain.QuestDefinition, bool) {
	return e.catalog.Get(id)
}

// ApplyRolloverIfNeeded compares now against the stored period keys and
// resets daily/weekly state on a boundary crossing. Calling it twice within
// the same period is a no-op.
func (e *Engine) ApplyRolloverIfNeeded(ctx context.Context, now time.Time) error {
	changed, err := e.rollover(ctx, now)
	if err != nil {
		return err
	}
	if !changed {
		return nil
	}
	werr := e.persist(ctx, nil)
	e.notify()
	return werr
}

// Report applies one gameplay event: every routed, not-yet-completed
// instance advances by the event's increment, newly completed instances are
// credited exactly once, and chest completion is re-evaluated. Unknown or
// inactive targets are skipped silently.
func (e *Engine) Report(ctx context.Context, kind domain.EventKind, payload domain.EventPayload) error {
	rolled, err := e.rollover(ctx, e.clock())
	if err != nil {
		return err
	}

	applied := false
	var seen []string
	for _, r := range routesFor(kind) {
		if r.when != nil && !r.when(payload) {
			continue
		}
		set := e.daily
		if r.weekly {
			set = e.weekly
		}
		idx := activeIndexByDefinition(set, r.definitionID)
		if idx < 0 {
			continue
		}
		if r.uniquePerDay {
			done, serr := e.store.SeenToday(ctx, e.day, r.definitionID)
			if serr != nil {
				return fmt.Errorf("reading unique-per-day marker: %w", serr)
			}
			if done {
				continue
			}
			seen = append(seen, r.definitionID)
		}
		q := &set[idx]
		if q.Advance(r.increment) {
			e.grantCompletionXP(q)
		}
		applied = true
	}

	if !applied && !rolled {
		return nil
	}
	if applied {
		e.evaluateChest()
	}
	werr := e.persist(ctx, seen)
	e.notify()
	return werr
}

// MarkCompleted completes an instance through the manual path, with the same
// credit-once semantics as event-driven completion. No-ops on unknown ids
// and already completed instances.
func (e *Engine) MarkCompleted(ctx context.Context, instanceID string) error {
	rolled, err := e.rollover(ctx, e.clock())
	if err != nil {
		return err
	}

	q := e.findInstance(instanceID)
	if q == nil || q.Completed() {
		return e.finishIfRolled(ctx, rolled)
	}
	q.ForceComplete()
	e.grantCompletionXP(q)
	e.evaluateChest()

	werr := e.persist(ctx, nil)
	e.notify()
	return werr
}

// Reroll swaps one not-yet-completed daily instance for a different
// definition of the same type, difficulty, and category, resetting progress
// while preserving chest eligibility and the creation date. At most one
// reroll succeeds per day; every other case is a silent no-op.
func (e *Engine) Reroll(ctx context.Context, instanceID string) error {
	rolled, err := e.rollover(ctx, e.clock())
	if err != nil {
		return err
	}

	if e.reroll {
		return e.finishIfRolled(ctx, rolled)
	}
	idx := indexByID(e.daily, instanceID)
	if idx < 0 || e.daily[idx].Completed() {
		return e.finishIfRolled(ctx, rolled)
	}
	q := &e.daily[idx]
	def, ok := e.catalog.Get(q.DefinitionID)
	if !ok {
		return e.finishIfRolled(ctx, rolled)
	}
	alt, ok := e.rerollCandidate(def)
	if !ok {
		return e.finishIfRolled(ctx, rolled)
	}

	q.DefinitionID = alt.ID
	q.Target = alt.Target
	q.Progress = 0
	q.Status = domain.StatusPending
	q.XPGranted = false
	e.reroll = true

	werr := e.persist(ctx, nil)
	e.notify()
	return werr
}

// ClaimChest consumes the chest-ready flag. The chest XP was already granted
// when the chest became ready, so claiming pays nothing extra.
func (e *Engine) ClaimChest(ctx context.Context) error {
	rolled, err := e.rollover(ctx, e.clock())
	if err != nil {
		return err
	}

	if !e.chest.Ready() {
		return e.finishIfRolled(ctx, rolled)
	}
	e.chest.Claimed = true

	werr := e.persist(ctx, nil)
	e.notify()
	return werr
}

// rollover lazily resets state when a period boundary has passed. It reports
// whether anything changed; persistence is the caller's responsibility.
func (e *Engine) rollover(ctx context.Context, now time.Time) (bool, error) {
	changed := false
	if period.DayOf(now) != e.day {
		e.player.TodayXP = 0
		e.player.LastDailyReset = period.StartOfDay(now)
		if err := e.loadDay(ctx, now); err != nil {
			return false, err
		}
		changed = true
	}
	if period.WeekOf(now) != e.week {
		if err := e.loadWeek(ctx, now); err != nil {
			return false, err
		}
		changed = true
	}
	return changed, nil
}

// loadDay points the engine at now's day: stored instances and flags when
// present, a freshly generated set otherwise.
func (e *Engine) loadDay(ctx context.Context, now time.Time) error {
	day := period.DayOf(now)
	e.day = day

	daily, ok, err := e.store.DailyQuests(ctx, day)
	if err != nil {
		return fmt.Errorf("loading daily quests: %w", err)
	}
	if !ok {
		daily = e.gen.Daily(day, period.StartOfDay(now), e.settings)
	}
	e.daily = daily

	e.reroll, err = e.store.RerollUsed(ctx, day)
	if err != nil {
		return fmt.Errorf("loading reroll flag: %w", err)
	}
	e.chest, err = e.store.Chest(ctx, day)
	if err != nil {
		return fmt.Errorf("loading chest state: %w", err)
	}
	return nil
}

func (e *Engine) loadWeek(ctx context.Context, now time.Time) error {
	week := period.WeekOf(now)
	e.week = week

	weekly, ok, err := e.store.WeeklyQuests(ctx, week)
	if err != nil {
		return fmt.Errorf("loading weekly quests: %w", err)
	}
	if !ok {
		weekly = e.gen.Weekly(week, period.StartOfWeek(now))
	}
	e.weekly = weekly
	return nil
}

// grantCompletionXP credits the definition's reward exactly once.
func (e *Engine) grantCompletionXP(q *domain.QuestInstance) {
	if q.XPGranted {
		return
	}
	def, ok := e.catalog.Get(q.DefinitionID)
	if !ok {
		return
	}
	e.player.GrantXP(catalog.RewardXP(def))
	q.XPGranted = true
}

// evaluateChest flips the chest to granted, paying the flat bonus, when
// every chest-eligible daily instance is completed. The grant guard never
// resets within a day, so the bonus pays at most once per day.
func (e *Engine) evaluateChest() {
	if e.chest.Granted {
		return
	}
	eligible := 0
	for _, q := range e.daily {
		if !q.CountsForDailyChest {
			continue
		}
		eligible++
		if !q.Completed() {
			return
		}
	}
	if eligible == 0 {
		return
	}
	e.chest.Granted = true
	e.player.GrantXP(catalog.DailyChestBonusXP)
}

// rerollCandidate picks the first catalog definition sharing type,
// difficulty, and category with def that is not def itself and is not
// already active in the daily set.
func (e *Engine) rerollCandidate(def domain.QuestDefinition) (domain.QuestDefinition, bool) {
	active := make(map[string]bool, len(e.daily))
	for _, q := range e.daily {
		active[q.DefinitionID] = true
	}
	for _, cand := range e.catalog.All() {
		if cand.ID == def.ID || active[cand.ID] {
			continue
		}
		if cand.Type == def.Type && cand.Difficulty == def.Difficulty && cand.Category == def.Category {
			return cand, true
		}
	}
	return domain.QuestDefinition{}, false
}

// finishIfRolled persists and notifies when a guard-failed operation still
// crossed a period boundary during its rollover check.
func (e *Engine) finishIfRolled(ctx context.Context, rolled bool) error {
	if !rolled {
		return nil
	}
	werr := e.persist(ctx, nil)
	e.notify()
	return werr
}

// persist writes the full ledger in one transaction. Failure is reported as
// an ErrPersist warning; the in-memory state stays authoritative.
func (e *Engine) persist(ctx context.Context, seenDefinitionIDs []string) error {
	err := e.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		st := store.NewStateStore(store.NewSQLiteKV(tx))
		if err := st.SaveDailyQuests(ctx, e.day, e.daily); err != nil {
			return err
		}
		if err := st.SaveWeeklyQuests(ctx, e.week, e.weekly); err != nil {
			return err
		}
		if err := st.SavePlayer(ctx, e.player); err != nil {
			return err
		}
		if err := st.SetRerollUsed(ctx, e.day, e.reroll); err != nil {
			return err
		}
		if err := st.SaveChest(ctx, e.day, e.chest); err != nil {
			return err
		}
		for _, id := range seenDefinitionIDs {
			if err := st.MarkSeen(ctx, e.day, id); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPersist, err)
	}
	return nil
}

func (e *Engine) notify() {
	if len(e.listeners) == 0 {
		return
	}
	snap := e.Snapshot()
	for _, l := range e.listeners {
		l(snap)
	}
}

func (e *Engine) findInstance(id string) *domain.QuestInstance {
	if idx := indexByID(e.daily, id); idx >= 0 {
		return &e.daily[idx]
	}
	if idx := indexByID(e.weekly, id); idx >= 0 {
		return &e.weekly[idx]
	}
	return nil
}

func indexByID(set []domain.QuestInstance, id string) int {
	for i := range set {
		if set[i].ID == id {
			return i
		}
	}
	return -1
}

// activeIndexByDefinition finds the first not-yet-completed instance of a
// definition, if any.
func activeIndexByDefinition(set []domain.QuestInstance, definitionID string) int {
	for i := range set {
		if set[i].DefinitionID == definitionID && !set[i].Completed() {
			return i
		}
	}
	return -1
}
