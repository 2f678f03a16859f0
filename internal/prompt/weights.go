package prompt

import (
	"fmt"
	"math"

	"github.com/abhisek/citizenprep/internal/catalog"
)

// Weights is the share of the final score given to each evaluation axis.
// The five weights always sum to 100.
type Weights struct {
	Civics  int `json:"civics"`
	English int `json:"english"`
	N400    int `json:"n400"`
	Reading int `json:"reading"`
	Writing int `json:"writing"`
}

// Sum returns the total of all five weights.
func (w Weights) Sum() int {
	return w.Civics + w.English + w.N400 + w.Reading + w.Writing
}

var weightTable = map[catalog.ModeID]Weights{
	catalog.ModeQuick:      {Civics: 100},
	catalog.ModeFull:       {Civics: 40, English: 20, N400: 20, Reading: 10, Writing: 10},
	catalog.ModeStress:     {Civics: 60, English: 20, N400: 20},
	catalog.ModeConfidence: {Civics: 80, English: 20},
	catalog.ModeCustom:     {Civics: 50, English: 25, N400: 25},
}

func init() {
	for _, m := range catalog.ListModes() {
		w, ok := weightTable[m.ID]
		if !ok {
			panic(fmt.Sprintf("prompt: no score weights for mode %q", m.ID))
		}
		if w.Sum() != 100 {
			panic(fmt.Sprintf("prompt: score weights for mode %q sum to %d, want 100", m.ID, w.Sum()))
		}
	}
}

// ScoreWeights returns the scoring weights for a mode.
func ScoreWeights(id catalog.ModeID) (Weights, error) {
	w, ok := weightTable[id]
	if !ok {
		return Weights{}, fmt.Errorf("score weights for mode %q: %w", id, catalog.ErrNotFound)
	}
	return w, nil
}

// paceMultiplier scales a mode's base duration.
func paceMultiplier(p catalog.Pace) float64 {
	switch p {
	case catalog.PaceSlow:
		return 1.3
	case catalog.PaceRapid:
		return 0.7
	default:
		return 1.0
	}
}

// EstimatedDuration returns the expected session length in whole minutes.
func EstimatedDuration(mode catalog.ModeConfig, diff catalog.DifficultyConfig) int {
	return int(math.Round(float64(mode.BaseDurationMins) * paceMultiplier(diff.Pace)))
}
