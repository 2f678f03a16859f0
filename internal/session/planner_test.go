package session

import (
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/abhisek/citizenprep/internal/catalog"
	"github.com/abhisek/citizenprep/internal/custom"
	"github.com/abhisek/citizenprep/internal/prompt"
	"github.com/abhisek/citizenprep/internal/recommend"
	"github.com/abhisek/citizenprep/internal/scenario"
	"github.com/abhisek/citizenprep/internal/store"
)

var (
	fixedTime = time.Date(2026, 5, 4, 10, 0, 0, 0, time.UTC)
	fixedID   = uuid.MustParse("8f1c2d3e-4b5a-4c6d-8e7f-9a0b1c2d3e4f")
)

func ptr[T any](v T) *T { return &v }

// fakeRecorder captures recorded plans.
type fakeRecorder struct {
	plans    []*Plan
	profiles []recommend.Profile
	err      error
}

func (f *fakeRecorder) RecordPlan(_ context.Context, plan *Plan, profile recommend.Profile) error {
	f.plans = append(f.plans, plan)
	f.profiles = append(f.profiles, profile)
	return f.err
}

func newTestPlanner(opts ...Option) *Planner {
	base := []Option{
		WithClock(func() time.Time { return fixedTime }),
		WithIDGenerator(func() uuid.UUID { return fixedID }),
		WithLogger(zap.NewNop()),
	}
	return NewPlanner(append(base, opts...)...)
}

func validSettings() *custom.Settings {
	return &custom.Settings{
		Categories:    []custom.Category{custom.CategoryAmericanHistory, custom.CategoryGeography},
		QuestionCount: 12,
		FocusAreas:    []string{"the Constitution"},
	}
}

func TestBuild_NewLearnerDefaults(t *testing.T) {
	p := newTestPlanner()

	plan, err := p.Build(context.Background(), Request{})
	require.NoError(t, err)

	assert.Equal(t, fixedID, plan.ID)
	assert.Equal(t, fixedTime, plan.CreatedAt)
	assert.Equal(t, scenario.FirstTimeStandard, plan.ScenarioID)
	assert.Equal(t, catalog.ModeConfidence, plan.ModeID)
	assert.Equal(t, catalog.DifficultyBeginner, plan.DifficultyID)
	assert.Empty(t, plan.AdjustedFrom)
	assert.Equal(t, prompt.Weights{Civics: 80, English: 20}, plan.Weights)
	assert.Equal(t, 13, plan.EstimatedMins)
}

func TestBuild_PromptCarriesScenarioSection(t *testing.T) {
	p := newTestPlanner()
	age, years := 70, 25

	plan, err := p.Build(context.Background(), Request{
		Profile: recommend.Profile{Age: &age, YearsInCountry: &years},
	})
	require.NoError(t, err)
	require.Equal(t, scenario.Senior65Plus, plan.ScenarioID)

	mode := catalog.MustMode(plan.ModeID)
	diff := catalog.MustDifficulty(plan.DifficultyID)
	base := prompt.BuildSystemPrompt(mode, diff, nil)

	assert.True(t, strings.HasPrefix(plan.SystemPrompt, base), "system prompt should start with the synthesized prompt")
	assert.Contains(t, plan.SystemPrompt, "Applicant scenario: Senior Applicant (65/20)")
}

func TestBuild_StressAtBeginnerTier(t *testing.T) {
	p := newTestPlanner()

	// Strong accuracy but few sessions: stress mode at beginner tier.
	for _, sessions := range []int{3, 4} {
		plan, err := p.Build(context.Background(), Request{
			Profile: recommend.Profile{Accuracy: 85, Sessions: sessions},
		})
		require.NoError(t, err)

		assert.Equal(t, catalog.ModeStress, plan.ModeID)
		assert.Equal(t, catalog.DifficultyBeginner, plan.DifficultyID)
		assert.Empty(t, plan.AdjustedFrom)
	}
}

func TestBuild_KeepsRecommendedTier(t *testing.T) {
	p := newTestPlanner()

	for _, sessions := range []int{0, 2, 3, 4, 5, 10} {
		for _, accuracy := range []float64{0, 55, 65, 75, 85, 95, 100} {
			plan, err := p.Build(context.Background(), Request{
				Profile: recommend.Profile{Accuracy: accuracy, Sessions: sessions},
			})
			require.NoError(t, err)
			assert.Equal(t, recommend.Mode(accuracy, sessions), plan.ModeID)
			assert.Equal(t, recommend.Difficulty(accuracy, sessions), plan.DifficultyID,
				"accuracy=%v sessions=%d", accuracy, sessions)
		}
	}
}

func TestBuild_ExpertStress(t *testing.T) {
	p := newTestPlanner()

	plan, err := p.Build(context.Background(), Request{
		Profile: recommend.Profile{Accuracy: 95, Sessions: 10},
	})
	require.NoError(t, err)

	assert.Equal(t, catalog.ModeStress, plan.ModeID)
	assert.Equal(t, catalog.DifficultyExpert, plan.DifficultyID)
	assert.Empty(t, plan.AdjustedFrom)
	assert.Equal(t, 11, plan.EstimatedMins)
	assert.Equal(t, 100, plan.Weights.Sum())
}

func TestBuild_ExplicitOverrides(t *testing.T) {
	p := newTestPlanner()

	plan, err := p.Build(context.Background(), Request{
		Profile:    recommend.Profile{Accuracy: 10, Sessions: 1},
		Mode:       ptr(catalog.ModeFull),
		Difficulty: ptr(catalog.DifficultyAdvanced),
		Scenario:   ptr(scenario.MilitaryService),
	})
	require.NoError(t, err)

	assert.Equal(t, catalog.ModeFull, plan.ModeID)
	assert.Equal(t, catalog.DifficultyAdvanced, plan.DifficultyID)
	assert.Equal(t, scenario.MilitaryService, plan.ScenarioID)
	assert.Equal(t, prompt.Weights{Civics: 40, English: 20, N400: 20, Reading: 10, Writing: 10}, plan.Weights)
}

func TestBuild_ExplicitDifficultyAboveModeRange(t *testing.T) {
	p := newTestPlanner()

	plan, err := p.Build(context.Background(), Request{
		Mode:       ptr(catalog.ModeConfidence),
		Difficulty: ptr(catalog.DifficultyExpert),
	})
	require.NoError(t, err)

	assert.Equal(t, catalog.DifficultyIntermediate, plan.DifficultyID)
	assert.Equal(t, catalog.DifficultyExpert, plan.AdjustedFrom)
}

func TestBuild_CustomSettingsSelectCustomMode(t *testing.T) {
	p := newTestPlanner()
	settings := validSettings()
	settings.Difficulty = catalog.DifficultyAdvanced
	settings.TimeLimitMins = ptr(25)

	plan, err := p.Build(context.Background(), Request{Custom: settings})
	require.NoError(t, err)

	assert.Equal(t, catalog.ModeCustom, plan.ModeID)
	assert.Equal(t, catalog.DifficultyAdvanced, plan.DifficultyID)
	assert.Equal(t, 25, plan.EstimatedMins)
	assert.Equal(t, prompt.Weights{Civics: 50, English: 25, N400: 25}, plan.Weights)
	assert.Contains(t, plan.SystemPrompt, "focused on: the Constitution")
	assert.Contains(t, plan.SystemPrompt, "Ask 12 civics questions.")
}

func TestBuild_CustomExplicitDifficultyWins(t *testing.T) {
	p := newTestPlanner()
	settings := validSettings()
	settings.Difficulty = catalog.DifficultyAdvanced

	plan, err := p.Build(context.Background(), Request{
		Mode:       ptr(catalog.ModeCustom),
		Difficulty: ptr(catalog.DifficultyIntermediate),
		Custom:     settings,
	})
	require.NoError(t, err)
	assert.Equal(t, catalog.DifficultyIntermediate, plan.DifficultyID)
}

func TestBuild_CustomPhaseFlags(t *testing.T) {
	p := newTestPlanner()

	plan, err := p.Build(context.Background(), Request{Custom: validSettings()})
	require.NoError(t, err)
	assert.Equal(t, []catalog.PhaseID{catalog.PhaseOath, catalog.PhaseCivics, catalog.PhaseClosing}, plan.Phases)
	assert.NotContains(t, plan.SystemPrompt, "N-400 Review")
	assert.NotContains(t, plan.SystemPrompt, "for the reading test.")
	assert.NotContains(t, plan.SystemPrompt, "for the writing test.")

	settings := validSettings()
	settings.IncludeReading = true
	settings.IncludeWriting = true
	plan, err = p.Build(context.Background(), Request{Custom: settings})
	require.NoError(t, err)
	assert.Equal(t, []catalog.PhaseID{
		catalog.PhaseOath, catalog.PhaseCivics, catalog.PhaseReading, catalog.PhaseWriting, catalog.PhaseClosing,
	}, plan.Phases)
	assert.Contains(t, plan.SystemPrompt, "Present up to 3 sentences for the reading test.")
	assert.Contains(t, plan.SystemPrompt, "Dictate up to 3 sentences for the writing test.")
	assert.NotContains(t, plan.SystemPrompt, "N-400 Review")
}

func TestBuild_FixedModeKeepsModePhases(t *testing.T) {
	p := newTestPlanner()
	plan, err := p.Build(context.Background(), Request{Mode: ptr(catalog.ModeFull)})
	require.NoError(t, err)
	assert.Equal(t, catalog.MustMode(catalog.ModeFull).Phases, plan.Phases)
}

func TestBuild_CustomErrors(t *testing.T) {
	p := newTestPlanner()
	ctx := context.Background()

	_, err := p.Build(ctx, Request{Mode: ptr(catalog.ModeCustom)})
	assert.ErrorIs(t, err, ErrCustomSettingsRequired)

	_, err = p.Build(ctx, Request{Mode: ptr(catalog.ModeFull), Custom: validSettings()})
	assert.ErrorIs(t, err, ErrCustomSettingsUnexpected)

	rec := &fakeRecorder{}
	p = newTestPlanner(WithRecorder(rec))
	_, err = p.Build(ctx, Request{Custom: &custom.Settings{QuestionCount: 0}})
	var verr *custom.ValidationError
	require.True(t, errors.As(err, &verr), "expected *custom.ValidationError, got %T", err)
	assert.Len(t, verr.Problems, 2)
	assert.Empty(t, rec.plans, "invalid settings must not produce a plan")
}

func TestBuild_UnknownIDs(t *testing.T) {
	p := newTestPlanner()
	ctx := context.Background()

	_, err := p.Build(ctx, Request{Scenario: ptr(scenario.ID("astronaut"))})
	assert.ErrorIs(t, err, scenario.ErrNotFound)

	_, err = p.Build(ctx, Request{Mode: ptr(catalog.ModeID("marathon"))})
	assert.ErrorIs(t, err, catalog.ErrNotFound)

	_, err = p.Build(ctx, Request{Difficulty: ptr(catalog.DifficultyID("legendary"))})
	assert.ErrorIs(t, err, catalog.ErrNotFound)
}

func TestBuild_Recorder(t *testing.T) {
	rec := &fakeRecorder{}
	p := newTestPlanner(WithRecorder(rec))
	profile := recommend.Profile{Accuracy: 72, Sessions: 6}

	plan, err := p.Build(context.Background(), Request{Profile: profile})
	require.NoError(t, err)

	require.Len(t, rec.plans, 1)
	assert.Same(t, plan, rec.plans[0])
	assert.Equal(t, profile, rec.profiles[0])
}

func TestBuild_RecorderFailureDoesNotFailPlan(t *testing.T) {
	rec := &fakeRecorder{err: errors.New("disk full")}
	p := newTestPlanner(WithRecorder(rec))

	plan, err := p.Build(context.Background(), Request{})
	require.NoError(t, err)
	assert.NotNil(t, plan)
	assert.Len(t, rec.plans, 1)
}

func TestBuild_Deterministic(t *testing.T) {
	p := newTestPlanner()
	req := Request{Profile: recommend.Profile{Accuracy: 77, Sessions: 8, HasTravel: true}}

	a, err := p.Build(context.Background(), req)
	require.NoError(t, err)
	b, err := p.Build(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestStoreRecorder(t *testing.T) {
	s, err := store.Open(filepath.Join(t.TempDir(), "plans.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	repo := s.EventRepo()

	p := newTestPlanner(WithRecorder(StoreRecorder{Repo: repo}))
	plan, err := p.Build(context.Background(), Request{
		Profile: recommend.Profile{Accuracy: 72.5, Sessions: 6},
	})
	require.NoError(t, err)

	got, err := repo.GetPlanEvent(context.Background(), fixedID.String())
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, string(plan.ModeID), got.ModeID)
	assert.Equal(t, string(plan.DifficultyID), got.DifficultyID)
	assert.Equal(t, string(plan.ScenarioID), got.ScenarioID)
	assert.Equal(t, plan.SystemPrompt, got.SystemPrompt)
	assert.Equal(t, 72.5, got.Accuracy)
	assert.True(t, got.Timestamp.Equal(fixedTime))

	var w prompt.Weights
	require.NoError(t, json.Unmarshal([]byte(got.Weights), &w))
	assert.Equal(t, plan.Weights, w)
}

func TestReconcileDifficulty(t *testing.T) {
	tests := []struct {
		mode catalog.ModeID
		in   catalog.DifficultyID
		want catalog.DifficultyID
	}{
		{catalog.ModeFull, catalog.DifficultyBeginner, catalog.DifficultyBeginner},
		{catalog.ModeStress, catalog.DifficultyBeginner, catalog.DifficultyBeginner},
		{catalog.ModeStress, catalog.DifficultyExpert, catalog.DifficultyExpert},
		{catalog.ModeConfidence, catalog.DifficultyAdvanced, catalog.DifficultyIntermediate},
		{catalog.ModeConfidence, catalog.DifficultyExpert, catalog.DifficultyIntermediate},
	}
	for _, tt := range tests {
		t.Run(string(tt.mode)+"/"+string(tt.in), func(t *testing.T) {
			got := ReconcileDifficulty(catalog.MustMode(tt.mode), tt.in)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReconcileDifficulty_AlwaysSupported(t *testing.T) {
	for _, m := range catalog.ListModes() {
		for _, d := range catalog.ListDifficulties() {
			got := ReconcileDifficulty(m, d.ID)
			assert.True(t, m.Supports(got), "%s/%s reconciled to unsupported %s", m.ID, d.ID, got)
		}
	}
}
