package custom

import (
	"fmt"
	"strings"

	"github.com/abhisek/citizenprep/internal/catalog"
)

// Result is the outcome of validating Settings.
type Result struct {
	Valid  bool
	Errors []string
}

// Err returns a *ValidationError when the result is invalid, or nil.
func (r Result) Err() error {
	if r.Valid {
		return nil
	}
	return &ValidationError{Problems: r.Errors}
}

// ValidationError carries every rule the settings violated.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid custom settings: %s", strings.Join(e.Problems, "; "))
}

// Validate checks settings against every rule and reports all violations.
// It never panics.
func Validate(s Settings) Result {
	errs := []string{}

	if s.QuestionCount < MinQuestionCount {
		errs = append(errs, fmt.Sprintf("question count must be at least %d", MinQuestionCount))
	}
	if s.QuestionCount > MaxQuestionCount {
		errs = append(errs, fmt.Sprintf("question count must be at most %d", MaxQuestionCount))
	}
	if len(s.Categories) == 0 {
		errs = append(errs, "at least one category must be selected")
	}
	if s.TimeLimitMins != nil && *s.TimeLimitMins < MinTimeLimitMins {
		errs = append(errs, fmt.Sprintf("time limit must be at least %d minute", MinTimeLimitMins))
	}

	for _, c := range s.Categories {
		if !c.Known() {
			errs = append(errs, fmt.Sprintf("unknown category %q", c))
		}
	}
	if s.Difficulty != "" {
		if _, err := catalog.GetDifficulty(s.Difficulty); err != nil {
			errs = append(errs, fmt.Sprintf("unknown difficulty %q", s.Difficulty))
		}
	}

	return Result{Valid: len(errs) == 0, Errors: errs}
}
