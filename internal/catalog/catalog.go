package catalog

import (
	"errors"
	"fmt"
	"slices"
)

// ErrNotFound is returned when an id is not part of the static registry.
var ErrNotFound = errors.New("not found")

// registry holds the static catalog with precomputed indices.
type registry struct {
	phases       []Phase
	modes        []ModeConfig
	difficulties []DifficultyConfig

	phaseByID      map[PhaseID]int
	modeByID       map[ModeID]int
	difficultyByID map[DifficultyID]int
}

// reg is the package-level registry, set by init().
var reg *registry

func init() {
	if err := validateCatalog(phases, modes, difficulties); err != nil {
		panic(err)
	}
	reg = buildRegistry(phases, modes, difficulties)
}

func buildRegistry(ps []Phase, ms []ModeConfig, ds []DifficultyConfig) *registry {
	r := &registry{
		phases:         ps,
		modes:          ms,
		difficulties:   ds,
		phaseByID:      make(map[PhaseID]int, len(ps)),
		modeByID:       make(map[ModeID]int, len(ms)),
		difficultyByID: make(map[DifficultyID]int, len(ds)),
	}
	for i, p := range ps {
		r.phaseByID[p.ID] = i
	}
	for i, m := range ms {
		r.modeByID[m.ID] = i
	}
	for i, d := range ds {
		r.difficultyByID[d.ID] = i
	}
	return r
}

// GetPhase returns a registered phase by ID.
func GetPhase(id PhaseID) (Phase, error) {
	i, ok := reg.phaseByID[id]
	if !ok {
		return Phase{}, fmt.Errorf("phase %q: %w", id, ErrNotFound)
	}
	return reg.phases[i], nil
}

// GetMode returns a mode by ID.
func GetMode(id ModeID) (ModeConfig, error) {
	i, ok := reg.modeByID[id]
	if !ok {
		return ModeConfig{}, fmt.Errorf("mode %q: %w", id, ErrNotFound)
	}
	return cloneMode(reg.modes[i]), nil
}

// GetDifficulty returns a difficulty tier by ID.
func GetDifficulty(id DifficultyID) (DifficultyConfig, error) {
	i, ok := reg.difficultyByID[id]
	if !ok {
		return DifficultyConfig{}, fmt.Errorf("difficulty %q: %w", id, ErrNotFound)
	}
	return reg.difficulties[i], nil
}

// MustMode is like GetMode but panics on an unknown id. Only use it for
// ids known at compile time.
func MustMode(id ModeID) ModeConfig {
	m, err := GetMode(id)
	if err != nil {
		panic(err)
	}
	return m
}

// MustDifficulty is like GetDifficulty but panics on an unknown id.
func MustDifficulty(id DifficultyID) DifficultyConfig {
	d, err := GetDifficulty(id)
	if err != nil {
		panic(err)
	}
	return d
}

// ListPhases returns all phases in declaration order.
func ListPhases() []Phase {
	return slices.Clone(reg.phases)
}

// ListModes returns all modes in declaration order.
func ListModes() []ModeConfig {
	out := make([]ModeConfig, len(reg.modes))
	for i, m := range reg.modes {
		out[i] = cloneMode(m)
	}
	return out
}

// ListDifficulties returns all tiers from easiest to hardest.
func ListDifficulties() []DifficultyConfig {
	return slices.Clone(reg.difficulties)
}

// ParseModeID converts user text to a ModeID.
func ParseModeID(s string) (ModeID, error) {
	id := ModeID(s)
	if _, ok := reg.modeByID[id]; !ok {
		return "", fmt.Errorf("mode %q: %w", s, ErrNotFound)
	}
	return id, nil
}

// ParseDifficultyID converts user text to a DifficultyID.
func ParseDifficultyID(s string) (DifficultyID, error) {
	id := DifficultyID(s)
	if _, ok := reg.difficultyByID[id]; !ok {
		return "", fmt.Errorf("difficulty %q: %w", s, ErrNotFound)
	}
	return id, nil
}

func cloneMode(m ModeConfig) ModeConfig {
	m.Phases = slices.Clone(m.Phases)
	m.SupportedDifficulties = slices.Clone(m.SupportedDifficulties)
	return m
}
