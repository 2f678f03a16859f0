package custom

import "github.com/abhisek/citizenprep/internal/catalog"

// Category is a civics question category.
type Category string

const (
	CategoryAmericanGovernment Category = "american_government"
	CategoryAmericanHistory    Category = "american_history"
	CategoryIntegratedCivics   Category = "integrated_civics"
	CategoryGeography          Category = "geography"
	CategorySymbolsAndHolidays Category = "symbols_and_holidays"
	CategoryRightsAndDuties    Category = "rights_and_responsibilities"
)

// AllCategories returns all categories in display order.
func AllCategories() []Category {
	return []Category{
		CategoryAmericanGovernment,
		CategoryAmericanHistory,
		CategoryIntegratedCivics,
		CategoryGeography,
		CategorySymbolsAndHolidays,
		CategoryRightsAndDuties,
	}
}

// Known reports whether c is a registered category.
func (c Category) Known() bool {
	for _, k := range AllCategories() {
		if c == k {
			return true
		}
	}
	return false
}

// Bounds on user-supplied settings.
const (
	MinQuestionCount = 1
	MaxQuestionCount = 50
	MinTimeLimitMins = 1
)

// Settings are the user's overrides for a custom-mode session.
type Settings struct {
	Categories    []Category
	QuestionCount int

	// Difficulty is optional; the empty value keeps the recommended tier.
	Difficulty catalog.DifficultyID

	IncludeN400    bool
	IncludeReading bool
	IncludeWriting bool

	// TimeLimitMins is nil when the session is untimed.
	TimeLimitMins *int

	FocusAreas []string
}
