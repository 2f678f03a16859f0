package session

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abhisek/citizenprep/internal/recommend"
	"github.com/abhisek/citizenprep/internal/store"
)

// StoreRecorder persists plans as store plan events.
type StoreRecorder struct {
	Repo store.EventRepo
}

func (r StoreRecorder) RecordPlan(ctx context.Context, plan *Plan, profile recommend.Profile) error {
	weights, err := json.Marshal(plan.Weights)
	if err != nil {
		return fmt.Errorf("encode weights: %w", err)
	}

	return r.Repo.AppendPlanEvent(ctx, store.PlanEventData{
		PlanID:        plan.ID.String(),
		ScenarioID:    string(plan.ScenarioID),
		ModeID:        string(plan.ModeID),
		DifficultyID:  string(plan.DifficultyID),
		EstimatedMins: plan.EstimatedMins,
		Weights:       string(weights),
		Accuracy:      profile.Accuracy,
		Sessions:      profile.Sessions,
		SystemPrompt:  plan.SystemPrompt,
		Timestamp:     plan.CreatedAt,
	})
}
