package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/citizenprep/internal/catalog"
	"github.com/abhisek/citizenprep/internal/custom"
	"github.com/abhisek/citizenprep/internal/prompt"
	"github.com/abhisek/citizenprep/internal/recommend"
	"github.com/abhisek/citizenprep/internal/scenario"
)

var (
	// ErrCustomSettingsRequired is returned when the custom mode is chosen
	// without settings.
	ErrCustomSettingsRequired = errors.New("custom mode requires custom settings")

	// ErrCustomSettingsUnexpected is returned when settings are supplied for
	// a mode other than custom.
	ErrCustomSettingsUnexpected = errors.New("custom settings are only valid for the custom mode")
)

// Recorder receives every plan Build produces.
type Recorder interface {
	RecordPlan(ctx context.Context, plan *Plan, profile recommend.Profile) error
}

// Planner turns a Request into a Plan.
type Planner struct {
	recorder Recorder
	log      *zap.Logger
	now      func() time.Time
	newID    func() uuid.UUID
}

// Option configures a Planner.
type Option func(*Planner)

// WithRecorder hands every built plan to r. Recording failures are logged
// and do not fail Build.
func WithRecorder(r Recorder) Option {
	return func(p *Planner) { p.recorder = r }
}

// WithLogger sets the planner's logger.
func WithLogger(l *zap.Logger) Option {
	return func(p *Planner) {
		if l != nil {
			p.log = l
		}
	}
}

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option {
	return func(p *Planner) { p.now = now }
}

// WithIDGenerator overrides uuid.New.
func WithIDGenerator(f func() uuid.UUID) Option {
	return func(p *Planner) { p.newID = f }
}

// NewPlanner creates a Planner.
func NewPlanner(opts ...Option) *Planner {
	p := &Planner{
		log:   zap.NewNop(),
		now:   time.Now,
		newID: uuid.New,
	}
	for _, o := range opts {
		o(p)
	}
	return p
}

// Build resolves scenario, mode and difficulty for req and synthesizes the
// system prompt, scoring weights and duration estimate.
func (p *Planner) Build(ctx context.Context, req Request) (*Plan, error) {
	rec := recommend.Recommend(req.Profile)

	scenarioID := rec.Scenario
	if req.Scenario != nil {
		scenarioID = *req.Scenario
	}
	sc, err := scenario.Get(scenarioID)
	if err != nil {
		return nil, err
	}

	modeID := rec.Mode
	switch {
	case req.Mode != nil:
		modeID = *req.Mode
	case req.Custom != nil:
		modeID = catalog.ModeCustom
	}
	mode, err := catalog.GetMode(modeID)
	if err != nil {
		return nil, err
	}

	var settings *custom.Settings
	if mode.ID == catalog.ModeCustom {
		if req.Custom == nil {
			return nil, ErrCustomSettingsRequired
		}
		if err := custom.Validate(*req.Custom).Err(); err != nil {
			return nil, err
		}
		settings = req.Custom
	} else if req.Custom != nil {
		return nil, fmt.Errorf("mode %q: %w", mode.ID, ErrCustomSettingsUnexpected)
	}

	diffID := rec.Difficulty
	switch {
	case req.Difficulty != nil:
		diffID = *req.Difficulty
	case settings != nil && settings.Difficulty != "":
		diffID = settings.Difficulty
	}
	if _, err := catalog.GetDifficulty(diffID); err != nil {
		return nil, err
	}

	var adjustedFrom catalog.DifficultyID
	if resolved := ReconcileDifficulty(mode, diffID); resolved != diffID {
		p.log.Info("difficulty not supported by mode, adjusted",
			zap.String("mode", string(mode.ID)),
			zap.String("requested", string(diffID)),
			zap.String("resolved", string(resolved)))
		adjustedFrom, diffID = diffID, resolved
	}
	diff := catalog.MustDifficulty(diffID)

	weights, err := prompt.ScoreWeights(mode.ID)
	if err != nil {
		return nil, err
	}

	mins := prompt.EstimatedDuration(mode, diff)
	if settings != nil && settings.TimeLimitMins != nil {
		mins = *settings.TimeLimitMins
	}

	plan := &Plan{
		ID:            p.newID(),
		ScenarioID:    sc.ID,
		ModeID:        mode.ID,
		DifficultyID:  diff.ID,
		AdjustedFrom:  adjustedFrom,
		Phases:        prompt.Phases(mode, settings),
		SystemPrompt:  prompt.BuildSystemPrompt(mode, diff, settings) + "\n\n" + prompt.ScenarioSection(sc),
		Weights:       weights,
		EstimatedMins: mins,
		CreatedAt:     p.now(),
	}

	p.log.Debug("session plan built",
		zap.Stringer("plan_id", plan.ID),
		zap.String("scenario", string(plan.ScenarioID)),
		zap.String("mode", string(plan.ModeID)),
		zap.String("difficulty", string(plan.DifficultyID)),
		zap.String("rule", string(rec.Rule)))

	if p.recorder != nil {
		if err := p.recorder.RecordPlan(ctx, plan, req.Profile); err != nil {
			p.log.Warn("record session plan", zap.Stringer("plan_id", plan.ID), zap.Error(err))
		}
	}

	return plan, nil
}

// ReconcileDifficulty returns d when mode supports it. Otherwise it returns
// the lowest supported tier above d, or failing that the highest supported
// tier below it.
func ReconcileDifficulty(mode catalog.ModeConfig, d catalog.DifficultyID) catalog.DifficultyID {
	if mode.Supports(d) {
		return d
	}

	var above, below catalog.DifficultyID
	for _, s := range mode.SupportedDifficulties {
		switch c := s.Compare(d); {
		case c > 0 && (above == "" || s.Compare(above) < 0):
			above = s
		case c < 0 && (below == "" || s.Compare(below) > 0):
			below = s
		}
	}
	if above != "" {
		return above
	}
	return below
}
