package session

import (
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/citizenprep/internal/catalog"
	"github.com/abhisek/citizenprep/internal/custom"
	"github.com/abhisek/citizenprep/internal/prompt"
	"github.com/abhisek/citizenprep/internal/recommend"
	"github.com/abhisek/citizenprep/internal/scenario"
)

// Plan is everything the interview engine needs to run one session.
// It is never modified after Build returns it.
type Plan struct {
	ID           uuid.UUID
	ScenarioID   scenario.ID
	ModeID       catalog.ModeID
	DifficultyID catalog.DifficultyID

	// AdjustedFrom is the tier that was asked for when the mode did not
	// support it. Empty when no adjustment happened.
	AdjustedFrom catalog.DifficultyID

	// Phases is the ordered phase list the prompt walks. Custom mode derives
	// it from the custom settings.
	Phases []catalog.PhaseID

	SystemPrompt  string
	Weights       prompt.Weights
	EstimatedMins int
	CreatedAt     time.Time
}

// Request describes a session-start request. Nil overrides fall back to
// the recommendation for Profile.
type Request struct {
	Profile recommend.Profile

	Mode       *catalog.ModeID
	Difficulty *catalog.DifficultyID
	Scenario   *scenario.ID

	// Custom is required for the custom mode and rejected for any other.
	// Supplying it without a Mode selects the custom mode.
	Custom *custom.Settings
}
