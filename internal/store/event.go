package store

import (
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// seedSequence creates the counter row once.
func seedSequence(db *gorm.DB) error {
	err := db.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&globalSequence{ID: 1, NextVal: 1}).Error
	if err != nil {
		return fmt.Errorf("seed sequence: %w", err)
	}
	return nil
}

// nextSequence claims the next global sequence number. Call it inside the
// transaction that inserts the event so a failed insert does not burn it.
func nextSequence(tx *gorm.DB) (int64, error) {
	res := tx.Model(&globalSequence{}).Where("id = ?", 1).
		Update("next_val", gorm.Expr("next_val + 1"))
	if res.Error != nil {
		return 0, fmt.Errorf("next sequence: %w", res.Error)
	}
	if res.RowsAffected != 1 {
		return 0, fmt.Errorf("next sequence: counter row missing")
	}

	var row globalSequence
	if err := tx.Take(&row, 1).Error; err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}
	return row.NextVal - 1, nil
}

// eventRepo implements EventRepo with gorm.
type eventRepo struct {
	db *gorm.DB
}

// applyQueryOpts narrows q by opts, newest first.
func applyQueryOpts(q *gorm.DB, opts QueryOpts) *gorm.DB {
	if opts.After > 0 {
		q = q.Where("sequence > ?", opts.After)
	}
	if opts.Before > 0 {
		q = q.Where("sequence < ?", opts.Before)
	}
	if !opts.From.IsZero() {
		q = q.Where("timestamp >= ?", opts.From.UnixNano())
	}
	if !opts.To.IsZero() {
		q = q.Where("timestamp <= ?", opts.To.UnixNano())
	}
	if opts.PlanID != "" {
		q = q.Where("plan_id = ?", opts.PlanID)
	}
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}
	return q.Order("sequence DESC")
}
