package scenario

import (
	"github.com/abhisek/citizenprep/internal/catalog"
	"github.com/abhisek/citizenprep/internal/custom"
)

// ID identifies an applicant scenario.
type ID string

const (
	FirstTimeStandard ID = "first_time_standard"
	Senior65Plus      ID = "senior_65plus"
	ComplexTravel     ID = "complex_travel"
	MilitaryService   ID = "military_service"
	EmploymentGaps    ID = "employment_gaps"
	RecentArrival     ID = "recent_arrival"
	LongResidence     ID = "long_residence"
	LanguageLearner   ID = "language_learner"
)

// Range is an inclusive integer range. Max of 0 means open-ended.
type Range struct {
	Min int
	Max int
}

// Contains reports whether n falls inside the range.
func (r Range) Contains(n int) bool {
	if n < r.Min {
		return false
	}
	return r.Max == 0 || n <= r.Max
}

// ApplicantProfile summarizes the persona an applicant plays.
type ApplicantProfile struct {
	AgeRange   Range
	YearsRange Range
	Background string
	Challenges []string
	Strengths  []string
}

// CivicsPreferences narrows which civics questions the officer draws from.
type CivicsPreferences struct {
	PreferredCategories []custom.Category
	AvoidTopics         []string
	MaxDifficulty       catalog.DifficultyID
}

// Scenario is an applicant persona with its interview focus.
type Scenario struct {
	ID          ID
	Name        string
	Description string
	Applicant   ApplicantProfile

	// PromptFragment is appended to the officer's system prompt.
	PromptFragment string

	N400Focus []string

	// Civics is nil when the scenario draws from the full question bank.
	Civics *CivicsPreferences

	CoachingFocus         []string
	RecommendedDifficulty catalog.DifficultyID
	SpecialConsiderations []string
	EstimatedMins         int

	Icon  string
	Color string
}
