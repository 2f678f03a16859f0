package catalog

import (
	"fmt"
	"strings"
)

// Validate checks the registered catalog for structural issues.
func Validate() error {
	return validateCatalog(reg.phases, reg.modes, reg.difficulties)
}

// validateCatalog performs all structural checks on the given catalog.
// Returns a combined error describing all problems found, or nil if valid.
func validateCatalog(ps []Phase, ms []ModeConfig, ds []DifficultyConfig) error {
	var errs []string

	phaseSet := make(map[PhaseID]bool, len(ps))
	for _, p := range ps {
		if phaseSet[p.ID] {
			errs = append(errs, fmt.Sprintf("duplicate phase ID: %q", p.ID))
		}
		phaseSet[p.ID] = true
		if p.Name == "" || p.Description == "" {
			errs = append(errs, fmt.Sprintf("phase %q must have a name and description", p.ID))
		}
	}

	// Tiers must be declared in strictly increasing challenge order.
	diffSet := make(map[DifficultyID]bool, len(ds))
	prevRank := -1
	for _, d := range ds {
		if diffSet[d.ID] {
			errs = append(errs, fmt.Sprintf("duplicate difficulty ID: %q", d.ID))
		}
		diffSet[d.ID] = true
		rank := d.ID.Rank()
		if rank < 0 {
			errs = append(errs, fmt.Sprintf("difficulty %q has no rank", d.ID))
		} else if rank <= prevRank {
			errs = append(errs, fmt.Sprintf("difficulty %q is out of order", d.ID))
		}
		prevRank = rank
		if d.HintsPerSession < 0 {
			errs = append(errs, fmt.Sprintf("difficulty %q: HintsPerSession must be >= 0, got %d", d.ID, d.HintsPerSession))
		}
	}

	modeSet := make(map[ModeID]bool, len(ms))
	for _, m := range ms {
		if modeSet[m.ID] {
			errs = append(errs, fmt.Sprintf("duplicate mode ID: %q", m.ID))
		}
		modeSet[m.ID] = true

		prefix := fmt.Sprintf("mode %q", m.ID)
		if len(m.Phases) == 0 {
			errs = append(errs, prefix+": phase list is empty")
		}
		seen := make(map[PhaseID]bool, len(m.Phases))
		for _, p := range m.Phases {
			if !phaseSet[p] {
				errs = append(errs, fmt.Sprintf("%s references nonexistent phase %q", prefix, p))
			}
			if seen[p] {
				errs = append(errs, fmt.Sprintf("%s lists phase %q twice", prefix, p))
			}
			seen[p] = true
		}

		counts := []struct {
			name string
			n    int
		}{
			{"CivicsQuestions", m.CivicsQuestions},
			{"N400Questions", m.N400Questions},
			{"ReadingSentences", m.ReadingSentences},
			{"WritingSentences", m.WritingSentences},
			{"TimePerQuestion", m.TimePerQuestion},
		}
		for _, c := range counts {
			if c.n < 0 {
				errs = append(errs, fmt.Sprintf("%s: %s must be >= 0, got %d", prefix, c.name, c.n))
			}
		}

		if len(m.SupportedDifficulties) == 0 {
			errs = append(errs, prefix+": no supported difficulties")
		}
		for _, d := range m.SupportedDifficulties {
			if !diffSet[d] {
				errs = append(errs, fmt.Sprintf("%s references nonexistent difficulty %q", prefix, d))
			}
		}
		if m.BaseDurationMins <= 0 {
			errs = append(errs, fmt.Sprintf("%s: BaseDurationMins must be > 0, got %d", prefix, m.BaseDurationMins))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("catalog validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
