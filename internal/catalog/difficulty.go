package catalog

// DifficultyID identifies a difficulty tier. Tiers are totally ordered
// from beginner to expert.
type DifficultyID string

const (
	DifficultyBeginner     DifficultyID = "beginner"
	DifficultyIntermediate DifficultyID = "intermediate"
	DifficultyAdvanced     DifficultyID = "advanced"
	DifficultyExpert       DifficultyID = "expert"
)

// Rank returns the tier's position in the challenge order, or -1 for an
// unknown tier.
func (d DifficultyID) Rank() int {
	switch d {
	case DifficultyBeginner:
		return 0
	case DifficultyIntermediate:
		return 1
	case DifficultyAdvanced:
		return 2
	case DifficultyExpert:
		return 3
	default:
		return -1
	}
}

// Compare returns -1, 0 or +1 depending on whether d is easier than,
// equal to, or harder than other.
func (d DifficultyID) Compare(other DifficultyID) int {
	a, b := d.Rank(), other.Rank()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Complexity classifies how involved the officer's questions are.
type Complexity string

const (
	ComplexitySimple   Complexity = "simple"
	ComplexityStandard Complexity = "standard"
	ComplexityComplex  Complexity = "complex"
)

// Pace classifies the officer's speaking pace.
type Pace string

const (
	PaceSlow    Pace = "slow"
	PaceNormal  Pace = "normal"
	PaceNatural Pace = "natural"
	PaceRapid   Pace = "rapid"
)

// Level is a low/moderate/high scale used for encouragement and stress.
type Level string

const (
	LevelLow      Level = "low"
	LevelModerate Level = "moderate"
	LevelHigh     Level = "high"
)

// FeedbackDetail classifies how much explanation follows each answer.
type FeedbackDetail string

const (
	FeedbackDetailed FeedbackDetail = "detailed"
	FeedbackStandard FeedbackDetail = "standard"
	FeedbackMinimal  FeedbackDetail = "minimal"
)

// DifficultyConfig describes how a tier modulates the interview.
type DifficultyConfig struct {
	ID               DifficultyID
	Name             string
	Description      string
	Complexity       Complexity
	Pace             Pace
	AllowRephrasing  bool
	HintsPerSession  int
	Encouragement    Level
	Stress           Level
	TimePressure     bool
	StrictEvaluation bool
	Feedback         FeedbackDetail
}

var difficulties = []DifficultyConfig{
	{
		ID:               DifficultyBeginner,
		Name:             "Beginner",
		Description:      "Simple questions at a slow pace with plenty of support.",
		Complexity:       ComplexitySimple,
		Pace:             PaceSlow,
		AllowRephrasing:  true,
		HintsPerSession:  5,
		Encouragement:    LevelHigh,
		Stress:           LevelLow,
		TimePressure:     false,
		StrictEvaluation: false,
		Feedback:         FeedbackDetailed,
	},
	{
		ID:               DifficultyIntermediate,
		Name:             "Intermediate",
		Description:      "Standard questions at a normal pace with some support.",
		Complexity:       ComplexityStandard,
		Pace:             PaceNormal,
		AllowRephrasing:  true,
		HintsPerSession:  3,
		Encouragement:    LevelModerate,
		Stress:           LevelLow,
		TimePressure:     false,
		StrictEvaluation: false,
		Feedback:         FeedbackDetailed,
	},
	{
		ID:               DifficultyAdvanced,
		Name:             "Advanced",
		Description:      "Realistic interview conditions with strict grading.",
		Complexity:       ComplexityStandard,
		Pace:             PaceNatural,
		AllowRephrasing:  false,
		HintsPerSession:  1,
		Encouragement:    LevelModerate,
		Stress:           LevelModerate,
		TimePressure:     true,
		StrictEvaluation: true,
		Feedback:         FeedbackStandard,
	},
	{
		ID:               DifficultyExpert,
		Name:             "Expert",
		Description:      "Complex follow-ups at a rapid pace, no hints, minimal feedback.",
		Complexity:       ComplexityComplex,
		Pace:             PaceRapid,
		AllowRephrasing:  false,
		HintsPerSession:  0,
		Encouragement:    LevelLow,
		Stress:           LevelHigh,
		TimePressure:     true,
		StrictEvaluation: true,
		Feedback:         FeedbackMinimal,
	},
}
