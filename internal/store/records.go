package store

import (
	"time"

	"github.com/Statusnone420/weeklyquest/internal/domain"
)

// Persisted record shapes. These are deliberately decoupled from the domain
// structs so the stored encoding can evolve without touching domain types.
// Every field of the domain records must round-trip exactly.

type questInstanceRecord struct {
	ID                  string    `json:"id"`
	DefinitionID        string    `json:"definitionId"`
	CreatedAt           time.Time `json:"createdAt"`
	Status              string    `json:"status"`
	Progress            int       `json:"progress"`
	Target              int       `json:"target"`
	CountsForDailyChest bool      `json:"countsForDailyChest"`
	XPGranted           bool      `json:"xpGranted"`
}

type playerRecord struct {
	TotalXP        int       `json:"totalXP"`
	TodayXP        int       `json:"todayXP"`
	LastDailyReset time.Time `json:"lastDailyReset"`
}

type chestRecord struct {
	Granted bool `json:"granted"`
	Claimed bool `json:"claimed"`
}

func toInstanceRecords(qs []domain.QuestInstance) []questInstanceRecord {
	out := make([]questInstanceRecord, len(qs))
	for i, q := range qs {
		out[i] = questInstanceRecord{
			ID:                  q.ID,
			DefinitionID:        q.DefinitionID,
			CreatedAt:           q.CreatedAt,
			Status:              string(q.Status),
			Progress:            q.Progress,
			Target:              q.Target,
			CountsForDailyChest: q.CountsForDailyChest,
			XPGranted:           q.XPGranted,
		}
	}
	return out
}

func fromInstanceRecords(recs []questInstanceRecord) []domain.QuestInstance {
	out := make([]domain.QuestInstance, len(recs))
	for i, r := range recs {
		out[i] = domain.QuestInstance{
			ID:                  r.ID,
			DefinitionID:        r.DefinitionID,
			CreatedAt:           r.CreatedAt,
			Status:              domain.QuestStatus(r.Status),
			Progress:            r.Progress,
			Target:              r.Target,
			CountsForDailyChest: r.CountsForDailyChest,
			XPGranted:           r.XPGranted,
		}
	}
	return out
}
