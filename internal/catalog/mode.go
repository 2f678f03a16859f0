package catalog

import "slices"

// ModeID identifies a practice mode.
type ModeID string

const (
	ModeQuick      ModeID = "quick"
	ModeFull       ModeID = "full"
	ModeStress     ModeID = "stress"
	ModeConfidence ModeID = "confidence"
	ModeCustom     ModeID = "custom"
)

// ModeConfig is the structural template of a practice session.
type ModeConfig struct {
	ID          ModeID
	Name        string
	Description string
	Icon        string

	// Phases is the ordered list of interview phases.
	Phases []PhaseID

	CivicsQuestions  int
	N400Questions    int
	ReadingSentences int
	WritingSentences int

	AllowPause        bool
	AllowHints        bool
	ShowRealTimeScore bool

	// TimePerQuestion is the per-question budget in seconds (0 = unlimited).
	TimePerQuestion int

	SupportedDifficulties []DifficultyID

	// BaseDurationMins is the expected length at a normal pace.
	BaseDurationMins int
}

// Supports reports whether the mode can be run at the given tier.
func (m ModeConfig) Supports(d DifficultyID) bool {
	return slices.Contains(m.SupportedDifficulties, d)
}

// HasPhase reports whether the mode includes the given phase.
func (m ModeConfig) HasPhase(p PhaseID) bool {
	return slices.Contains(m.Phases, p)
}

var allDifficulties = []DifficultyID{
	DifficultyBeginner,
	DifficultyIntermediate,
	DifficultyAdvanced,
	DifficultyExpert,
}

var modes = []ModeConfig{
	{
		ID:                    ModeQuick,
		Name:                  "Quick Civics Drill",
		Description:           "Ten civics questions with instant feedback.",
		Icon:                  "⚡",
		Phases:                []PhaseID{PhaseCivics},
		CivicsQuestions:       10,
		AllowPause:            true,
		AllowHints:            true,
		ShowRealTimeScore:     true,
		SupportedDifficulties: allDifficulties,
		BaseDurationMins:      5,
	},
	{
		ID:          ModeFull,
		Name:        "Full Interview Simulation",
		Description: "Every phase of a real naturalization interview, start to finish.",
		Icon:        "🏛️",
		Phases: []PhaseID{
			PhaseOath, PhaseN400, PhaseCivics, PhaseReading, PhaseWriting, PhaseClosing,
		},
		CivicsQuestions:       10,
		N400Questions:         8,
		ReadingSentences:      3,
		WritingSentences:      3,
		SupportedDifficulties: allDifficulties,
		BaseDurationMins:      20,
	},
	{
		ID:          ModeStress,
		Name:        "Stress Test",
		Description: "A brisk, formal interview with timed answers and follow-ups.",
		Icon:        "🔥",
		Phases: []PhaseID{
			PhaseOath, PhaseN400, PhaseCivics, PhaseClosing,
		},
		CivicsQuestions:       10,
		N400Questions:         10,
		TimePerQuestion:       30,
		SupportedDifficulties: allDifficulties,
		BaseDurationMins:      15,
	},
	{
		ID:          ModeConfidence,
		Name:        "Confidence Builder",
		Description: "A gentle, encouraging session to build familiarity.",
		Icon:        "🌱",
		Phases: []PhaseID{
			PhaseOath, PhaseCivics, PhaseClosing,
		},
		CivicsQuestions:       5,
		AllowPause:            true,
		AllowHints:            true,
		ShowRealTimeScore:     true,
		SupportedDifficulties: []DifficultyID{DifficultyBeginner, DifficultyIntermediate},
		BaseDurationMins:      10,
	},
	{
		ID:          ModeCustom,
		Name:        "Custom Practice",
		Description: "Choose your own categories, question count and difficulty.",
		Icon:        "🛠️",
		Phases: []PhaseID{
			PhaseOath, PhaseCivics, PhaseN400, PhaseClosing,
		},
		CivicsQuestions:       10,
		N400Questions:         5,
		AllowPause:            true,
		AllowHints:            true,
		ShowRealTimeScore:     true,
		SupportedDifficulties: allDifficulties,
		BaseDurationMins:      15,
	},
}
