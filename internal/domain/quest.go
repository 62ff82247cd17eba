package domain

import "time"

// QuestDefinition is a static catalog entry describing a repeatable task.
// Definitions are constructed once at startup and never mutated.
type QuestDefinition struct {
	ID         string
	Type       QuestType
	Category   QuestCategory
	Difficulty Difficulty
	Title      string
	Subtitle   string
	Target     int

	// XPOverride, when positive, replaces the difficulty-table reward.
	XPOverride int

	// CountsForDailyChestDefault seeds QuestInstance.CountsForDailyChest
	// at generation time; rotation may override it.
	CountsForDailyChestDefault bool
}

// QuestInstance is one period's concrete occurrence of a definition.
// Instances are created at period start and replaced wholesale at rollover.
type QuestInstance struct {
	ID                  string
	DefinitionID        string
	CreatedAt           time.Time
	Status              QuestStatus
	Progress            int
	Target              int
	CountsForDailyChest bool

	// XPGranted transitions false->true exactly once, at the moment Status
	// transitions to completed.
	XPGranted bool
}

func (q *QuestInstance) Completed() bool {
	return q.Status == StatusCompleted
}

// Advance increments progress by n and clamps status. It reports whether the
// instance transitioned to completed during this call. Advancing an already
// completed instance is a no-op.
func (q *QuestInstance) Advance(n int) bool {
	if q.Completed() || n <= 0 {
		return false
	}
	q.Progress += n
	if q.Progress >= q.Target {
		q.Progress = q.Target
		q.Status = StatusCompleted
		return true
	}
	q.Status = StatusInProgress
	return false
}

// ForceComplete jumps progress to the target and marks the instance
// completed. Reports whether a transition happened.
func (q *QuestInstance) ForceComplete() bool {
	if q.Completed() {
		return false
	}
	q.Progress = q.Target
	q.Status = StatusCompleted
	return true
}

// Settings holds engine-level toggles supplied by the embedding app.
type Settings struct {
	// SuppressedCategory, when non-empty, is excluded from daily rotation.
	SuppressedCategory QuestCategory
}

// Snapshot is the read-only view handed to observers after every mutation.
type Snapshot struct {
	Daily           []QuestInstance
	Weekly          []QuestInstance
	Player          PlayerProgress
	DailyChestReady bool
	RerollUsedToday bool
}
