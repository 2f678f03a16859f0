package scenario

import (
	"fmt"
	"strings"

	"github.com/abhisek/citizenprep/internal/catalog"
)

// Validate checks the registered scenarios.
func Validate() error {
	return validateScenarios(scenarios)
}

func validateScenarios(list []Scenario) error {
	var errs []string

	if len(list) == 0 {
		errs = append(errs, "no scenarios registered")
	}

	seen := make(map[ID]bool, len(list))
	for _, s := range list {
		if seen[s.ID] {
			errs = append(errs, fmt.Sprintf("duplicate scenario ID: %q", s.ID))
		}
		seen[s.ID] = true

		prefix := fmt.Sprintf("scenario %q", s.ID)
		if _, err := catalog.GetDifficulty(s.RecommendedDifficulty); err != nil {
			errs = append(errs, fmt.Sprintf("%s: recommended difficulty: %v", prefix, err))
		}
		if strings.TrimSpace(s.PromptFragment) == "" {
			errs = append(errs, prefix+": prompt fragment is empty")
		}
		if len(s.N400Focus) == 0 {
			errs = append(errs, prefix+": no N-400 focus questions")
		}
		if s.EstimatedMins <= 0 {
			errs = append(errs, fmt.Sprintf("%s: EstimatedMins must be > 0, got %d", prefix, s.EstimatedMins))
		}
		ranges := []struct {
			name string
			r    Range
		}{
			{"age", s.Applicant.AgeRange},
			{"years", s.Applicant.YearsRange},
		}
		for _, rg := range ranges {
			if rg.r.Min < 0 || (rg.r.Max != 0 && rg.r.Max < rg.r.Min) {
				errs = append(errs, fmt.Sprintf("%s: invalid %s range %d-%d", prefix, rg.name, rg.r.Min, rg.r.Max))
			}
		}
		if s.Civics != nil && s.Civics.MaxDifficulty != "" {
			if _, err := catalog.GetDifficulty(s.Civics.MaxDifficulty); err != nil {
				errs = append(errs, fmt.Sprintf("%s: civics max difficulty: %v", prefix, err))
			}
		}
		if s.Civics != nil {
			for _, c := range s.Civics.PreferredCategories {
				if !c.Known() {
					errs = append(errs, fmt.Sprintf("%s: unknown civics category %q", prefix, c))
				}
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("scenario validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
