package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
	PlanID string    // events tied to this plan
}

// PlanEventData captures a session plan handed to the interview engine.
type PlanEventData struct {
	PlanID        string
	ScenarioID    string
	ModeID        string
	DifficultyID  string
	EstimatedMins int
	// Weights is the JSON-encoded scoring weight vector.
	Weights      string
	Accuracy     float64
	Sessions     int
	SystemPrompt string
	Timestamp    time.Time
}

// PlanEventRecord is a stored plan event.
type PlanEventRecord struct {
	ID       int
	Sequence int64
	PlanEventData
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider string
	Model    string
	Purpose  string
	// PlanID ties the request to the session plan it served, if any.
	PlanID       string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequestEventRecord is a stored LLM request event.
type LLMRequestEventRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// LLMUsageStats aggregates token usage for one purpose.
type LLMUsageStats struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	Failures     int
	AvgLatencyMs int64
}

// LLMModelUsage aggregates token usage for one model.
type LLMModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendPlanEvent records a produced session plan.
	AppendPlanEvent(ctx context.Context, data PlanEventData) error

	// QueryPlanEvents returns plan events, newest first.
	QueryPlanEvents(ctx context.Context, opts QueryOpts) ([]PlanEventRecord, error)

	// GetPlanEvent returns the plan event for a plan ID, or nil if absent.
	GetPlanEvent(ctx context.Context, planID string) (*PlanEventRecord, error)

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns LLM events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEventRecord, error)

	// GetLLMEvent returns a single LLM event by ID, or nil if absent.
	GetLLMEvent(ctx context.Context, id int) (*LLMRequestEventRecord, error)

	// LLMUsageByPurpose aggregates token usage grouped by purpose.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStats, error)

	// LLMUsageByModel aggregates token usage grouped by model.
	LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error)
}
