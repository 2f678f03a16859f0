package store

import "time"

// Timestamps are UTC unix nanoseconds; Sequence is the global order shared
// by every event table.

// PlanEvent is the gorm model behind plan_events.
type PlanEvent struct {
	ID            int    `gorm:"primaryKey;autoIncrement"`
	Sequence      int64  `gorm:"uniqueIndex;not null"`
	Timestamp     int64  `gorm:"index;not null"`
	PlanID        string `gorm:"index;not null"`
	ScenarioID    string `gorm:"not null"`
	ModeID        string `gorm:"not null"`
	DifficultyID  string `gorm:"not null"`
	EstimatedMins int    `gorm:"not null"`
	Weights       string `gorm:"not null"`
	Accuracy      float64
	Sessions      int
	SystemPrompt  string `gorm:"not null"`
}

func (PlanEvent) TableName() string { return "plan_events" }

func (e PlanEvent) record() PlanEventRecord {
	return PlanEventRecord{
		ID:       e.ID,
		Sequence: e.Sequence,
		PlanEventData: PlanEventData{
			PlanID:        e.PlanID,
			ScenarioID:    e.ScenarioID,
			ModeID:        e.ModeID,
			DifficultyID:  e.DifficultyID,
			EstimatedMins: e.EstimatedMins,
			Weights:       e.Weights,
			Accuracy:      e.Accuracy,
			Sessions:      e.Sessions,
			SystemPrompt:  e.SystemPrompt,
			Timestamp:     time.Unix(0, e.Timestamp).UTC(),
		},
	}
}

// LLMRequestEvent is the gorm model behind llm_request_events.
type LLMRequestEvent struct {
	ID           int    `gorm:"primaryKey;autoIncrement"`
	Sequence     int64  `gorm:"uniqueIndex;not null"`
	Timestamp    int64  `gorm:"not null"`
	Provider     string `gorm:"not null"`
	Model        string `gorm:"not null"`
	Purpose      string `gorm:"index;not null"`
	PlanID       string `gorm:"index;not null;default:''"`
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool `gorm:"not null"`
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

func (LLMRequestEvent) TableName() string { return "llm_request_events" }

func (e LLMRequestEvent) record() LLMRequestEventRecord {
	return LLMRequestEventRecord{
		ID:        e.ID,
		Sequence:  e.Sequence,
		Timestamp: time.Unix(0, e.Timestamp).UTC(),
		LLMRequestEventData: LLMRequestEventData{
			Provider:     e.Provider,
			Model:        e.Model,
			Purpose:      e.Purpose,
			PlanID:       e.PlanID,
			InputTokens:  e.InputTokens,
			OutputTokens: e.OutputTokens,
			LatencyMs:    e.LatencyMs,
			Success:      e.Success,
			ErrorMessage: e.ErrorMessage,
			RequestBody:  e.RequestBody,
			ResponseBody: e.ResponseBody,
		},
	}
}

// globalSequence is a single-row counter table.
type globalSequence struct {
	ID      int   `gorm:"primaryKey"`
	NextVal int64 `gorm:"not null;default:1"`
}

func (globalSequence) TableName() string { return "global_sequence" }
