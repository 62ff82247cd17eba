package cli

import (
	"context"
	"time"

	"github.com/Statusnone420/weeklyquest/internal/domain"
)

// QuestService is the engine surface the CLI drives. The progress ledger
// satisfies it directly; tests substitute fakes.
type QuestService interface {
	Snapshot() domain.Snapshot
	Definition(id string) (domain.QuestDefinition, bool)
	ApplyRolloverIfNeeded(ctx context.Context, now time.Time) error
	Report(ctx context.Context, kind domain.EventKind, payload domain.EventPayload) error
	MarkCompleted(ctx context.Context, instanceID string) error
	Reroll(ctx context.Context, instanceID string) error
	ClaimChest(ctx context.Context) error
}
