package testutil

import (
	"time"

	"github.com/Statusnone420/weeklyquest/internal/domain"
	"github.com/google/uuid"
)

// Quest instance options
type InstanceOption func(*domain.QuestInstance)

func WithProgress(n int) InstanceOption {
	return func(q *domain.QuestInstance) {
		q.Progress = n
		if n > 0 {
			q.Status = domain.StatusInProgress
		}
	}
}

func WithStatus(s domain.QuestStatus) InstanceOption {
	return func(q *domain.QuestInstance) {
		q.Status = s
	}
}

func WithTarget(n int) InstanceOption {
	return func(q *domain.QuestInstance) {
		q.Target = n
	}
}

func WithChestEligible(eligible bool) InstanceOption {
	return func(q *domain.QuestInstance) {
		q.CountsForDailyChest = eligible
	}
}

func WithXPGranted() InstanceOption {
	return func(q *domain.QuestInstance) {
		q.XPGranted = true
	}
}

// NewTestInstance builds a pending quest instance for definitionID with
// target 1, created at a fixed anchor date.
func NewTestInstance(definitionID string, opts ...InstanceOption) domain.QuestInstance {
	q := domain.QuestInstance{
		ID:           uuid.New().String(),
		DefinitionID: definitionID,
		CreatedAt:    time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC),
		Status:       domain.StatusPending,
		Target:       1,
	}
	for _, opt := range opts {
		opt(&q)
	}
	return q
}

// FixedClock returns a clock function pinned to t.
func FixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// SteppingClock returns a clock plus a function to move it forward.
func SteppingClock(start time.Time) (clock func() time.Time, advance func(d time.Duration)) {
	now := start
	clock = func() time.Time { return now }
	advance = func(d time.Duration) { now = now.Add(d) }
	return clock, advance
}
