package store

import (
	"context"
	"encoding/json"

	"github.com/Statusnone420/weeklyquest/internal/domain"
	"github.com/Statusnone420/weeklyquest/internal/period"
)

// Key layout. Period-scoped keys embed the period identifier so stale
// periods simply stop being read; nothing ever has to be swept.
const (
	playerKey    = "player"
	dailyPrefix  = "daily/"
	weeklyPrefix = "weekly/"
	rerollPrefix = "reroll/"
	chestPrefix  = "chest/"
	seenPrefix   = "seen/"
)

// ChestState tracks the daily chest: Granted flips when the bonus XP is
// paid out, Claimed when the user consumes the ready flag. Granted never
// resets within a day, which is what makes the 75 XP a once-per-day grant.
type ChestState struct {
	Granted bool
	Claimed bool
}

// Ready reports whether the chest is sitting unclaimed.
func (c ChestState) Ready() bool {
	return c.Granted && !c.Claimed
}

// StateStore round-trips the engine's records through a KV. A malformed
// stored value is reported as absent, never as an error: the engine responds
// by regenerating fresh state for the current period.
type StateStore struct {
	kv KV
}

func NewStateStore(kv KV) *StateStore {
	return &StateStore{kv: kv}
}

func (s *StateStore) DailyQuests(ctx context.Context, day period.DayKey) ([]domain.QuestInstance, bool, error) {
	return s.loadQuests(ctx, dailyPrefix+day.String())
}

func (s *StateStore) SaveDailyQuests(ctx context.Context, day period.DayKey, qs []domain.QuestInstance) error {
	return s.saveJSON(ctx, dailyPrefix+day.String(), toInstanceRecords(qs))
}

func (s *StateStore) WeeklyQuests(ctx context.Context, week period.WeekKey) ([]domain.QuestInstance, bool, error) {
	return s.loadQuests(ctx, weeklyPrefix+week.String())
}

func (s *StateStore) SaveWeeklyQuests(ctx context.Context, week period.WeekKey, qs []domain.QuestInstance) error {
	return s.saveJSON(ctx, weeklyPrefix+week.String(), toInstanceRecords(qs))
}

func (s *StateStore) Player(ctx context.Context) (domain.PlayerProgress, bool, error) {
	raw, ok, err := s.kv.Get(ctx, playerKey)
	if err != nil || !ok {
		return domain.PlayerProgress{}, false, err
	}
	var rec playerRecord
	if json.Unmarshal(raw, &rec) != nil {
		return domain.PlayerProgress{}, false, nil
	}
	return domain.PlayerProgress{
		TotalXP:        rec.TotalXP,
		TodayXP:        rec.TodayXP,
		LastDailyReset: rec.LastDailyReset,
	}, true, nil
}

func (s *StateStore) SavePlayer(ctx context.Context, p domain.PlayerProgress) error {
	return s.saveJSON(ctx, playerKey, playerRecord{
		TotalXP:        p.TotalXP,
		TodayXP:        p.TodayXP,
		LastDailyReset: p.LastDailyReset,
	})
}

func (s *StateStore) RerollUsed(ctx context.Context, day period.DayKey) (bool, error) {
	return s.loadBool(ctx, rerollPrefix+day.String())
}

func (s *StateStore) SetRerollUsed(ctx context.Context, day period.DayKey, used bool) error {
	return s.saveJSON(ctx, rerollPrefix+day.String(), used)
}

func (s *StateStore) Chest(ctx context.Context, day period.DayKey) (ChestState, error) {
	raw, ok, err := s.kv.Get(ctx, chestPrefix+day.String())
	if err != nil || !ok {
		return ChestState{}, err
	}
	var rec chestRecord
	if json.Unmarshal(raw, &rec) != nil {
		return ChestState{}, nil
	}
	return ChestState{Granted: rec.Granted, Claimed: rec.Claimed}, nil
}

func (s *StateStore) SaveChest(ctx context.Context, day period.DayKey, c ChestState) error {
	return s.saveJSON(ctx, chestPrefix+day.String(), chestRecord{Granted: c.Granted, Claimed: c.Claimed})
}

// SeenToday reports whether the unique-per-day marker for a definition is
// already set. Markers are keyed by definition id, not instance id, so they
// survive a mid-day reroll on purpose.
func (s *StateStore) SeenToday(ctx context.Context, day period.DayKey, definitionID string) (bool, error) {
	return s.loadBool(ctx, seenPrefix+day.String()+"/"+definitionID)
}

func (s *StateStore) MarkSeen(ctx context.Context, day period.DayKey, definitionID string) error {
	return s.saveJSON(ctx, seenPrefix+day.String()+"/"+definitionID, true)
}

func (s *StateStore) loadQuests(ctx context.Context, key string) ([]domain.QuestInstance, bool, error) {
	raw, ok, err := s.kv.Get(ctx, key)
	if err != nil || !ok {
		return nil, false, err
	}
	var recs []questInstanceRecord
	if json.Unmarshal(raw, &recs) != nil {
		return nil, false, nil
	}
	return fromInstanceRecords(recs), true, nil
}

func (s *StateStore) loadBool(ctx context.Context, key string) (bool, error) {
	raw, ok, err := s.kv.Get(ctx, key)
	if err != nil || !ok {
		return false, err
	}
	var v bool
	if json.Unmarshal(raw, &v) != nil {
		return false, nil
	}
	return v, nil
}

func (s *StateStore) saveJSON(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, key, raw)
}
