package catalog

// PhaseID identifies a segment of an interview session.
type PhaseID string

const (
	PhaseOath    PhaseID = "oath"
	PhaseCivics  PhaseID = "civics"
	PhaseN400    PhaseID = "n400"
	PhaseReading PhaseID = "reading"
	PhaseWriting PhaseID = "writing"
	PhaseClosing PhaseID = "closing"
)

// Phase is a registered interview phase.
type Phase struct {
	ID          PhaseID
	Name        string
	Description string
}

var phases = []Phase{
	{
		ID:          PhaseOath,
		Name:        "Oath & Identity Check",
		Description: "Place the applicant under oath and verify their identity documents and appointment notice.",
	},
	{
		ID:          PhaseCivics,
		Name:        "Civics Test",
		Description: "Ask civics questions about U.S. history and government; six correct answers out of ten pass.",
	},
	{
		ID:          PhaseN400,
		Name:        "N-400 Review",
		Description: "Review the applicant's N-400 application answers, confirming personal history, travel, and eligibility.",
	},
	{
		ID:          PhaseReading,
		Name:        "Reading Test",
		Description: "Have the applicant read one of three sentences aloud; one correct reading passes.",
	},
	{
		ID:          PhaseWriting,
		Name:        "Writing Test",
		Description: "Dictate one of three sentences for the applicant to write; one correct sentence passes.",
	},
	{
		ID:          PhaseClosing,
		Name:        "Closing",
		Description: "Explain the outcome of the interview and the next steps toward the oath ceremony.",
	},
}
