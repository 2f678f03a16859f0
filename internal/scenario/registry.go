package scenario

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
)

// ErrNotFound is returned for a scenario id outside the registry.
var ErrNotFound = errors.New("scenario not found")

// Source is the entropy used by Random. *rand.Rand satisfies it.
type Source interface {
	IntN(n int) int
}

// byID indexes scenarios; built by init().
var byID map[ID]int

func init() {
	if err := validateScenarios(scenarios); err != nil {
		panic(err)
	}
	byID = make(map[ID]int, len(scenarios))
	for i, s := range scenarios {
		byID[s.ID] = i
	}
}

// Get returns a scenario by ID.
func Get(id ID) (Scenario, error) {
	i, ok := byID[id]
	if !ok {
		return Scenario{}, fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	return clone(scenarios[i]), nil
}

// List returns all scenarios in declaration order.
func List() []Scenario {
	out := make([]Scenario, len(scenarios))
	for i, s := range scenarios {
		out[i] = clone(s)
	}
	return out
}

// IDs returns every scenario ID in declaration order.
func IDs() []ID {
	ids := make([]ID, len(scenarios))
	for i, s := range scenarios {
		ids[i] = s.ID
	}
	return ids
}

// Parse converts user text to a scenario ID.
func Parse(s string) (ID, error) {
	id := ID(s)
	if _, ok := byID[id]; !ok {
		return "", fmt.Errorf("%w: %q", ErrNotFound, s)
	}
	return id, nil
}

// Random picks a scenario uniformly. A nil src uses the global generator.
func Random(src Source) Scenario {
	var i int
	if src == nil {
		i = rand.IntN(len(scenarios))
	} else {
		i = src.IntN(len(scenarios))
	}
	return clone(scenarios[i])
}

func clone(s Scenario) Scenario {
	s.Applicant.Challenges = slices.Clone(s.Applicant.Challenges)
	s.Applicant.Strengths = slices.Clone(s.Applicant.Strengths)
	s.N400Focus = slices.Clone(s.N400Focus)
	s.CoachingFocus = slices.Clone(s.CoachingFocus)
	s.SpecialConsiderations = slices.Clone(s.SpecialConsiderations)
	if s.Civics != nil {
		c := *s.Civics
		c.PreferredCategories = slices.Clone(c.PreferredCategories)
		c.AvoidTopics = slices.Clone(c.AvoidTopics)
		s.Civics = &c
	}
	return s
}
