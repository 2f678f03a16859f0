package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

func (r *eventRepo) AppendPlanEvent(ctx context.Context, data PlanEventData) error {
	ts := data.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}
	row := PlanEvent{
		Timestamp:     ts.UTC().UnixNano(),
		PlanID:        data.PlanID,
		ScenarioID:    data.ScenarioID,
		ModeID:        data.ModeID,
		DifficultyID:  data.DifficultyID,
		EstimatedMins: data.EstimatedMins,
		Weights:       data.Weights,
		Accuracy:      data.Accuracy,
		Sessions:      data.Sessions,
		SystemPrompt:  data.SystemPrompt,
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		seq, err := nextSequence(tx)
		if err != nil {
			return err
		}
		row.Sequence = seq
		return tx.Create(&row).Error
	})
	if err != nil {
		return fmt.Errorf("save plan event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryPlanEvents(ctx context.Context, opts QueryOpts) ([]PlanEventRecord, error) {
	var rows []PlanEvent
	if err := applyQueryOpts(r.db.WithContext(ctx), opts).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("query plan events: %w", err)
	}

	out := make([]PlanEventRecord, len(rows))
	for i, row := range rows {
		out[i] = row.record()
	}
	return out, nil
}

func (r *eventRepo) GetPlanEvent(ctx context.Context, planID string) (*PlanEventRecord, error) {
	var row PlanEvent
	err := r.db.WithContext(ctx).
		Where("plan_id = ?", planID).
		Order("sequence DESC").
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get plan event: %w", err)
	}
	rec := row.record()
	return &rec, nil
}
