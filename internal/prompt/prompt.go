package prompt

import (
	"fmt"
	"slices"
	"strings"

	"github.com/abhisek/citizenprep/internal/catalog"
	"github.com/abhisek/citizenprep/internal/custom"
	"github.com/abhisek/citizenprep/internal/scenario"
)

const roleFraming = `You are a U.S. Citizenship and Immigration Services (USCIS) officer conducting a practice naturalization interview. Stay in character as a professional, courteous officer for the whole session.`

const defaultFocus = "various topics"

// standardSentences is how many sentences an officer may present in the
// reading or writing test.
const standardSentences = 3

var modeInstructions = map[catalog.ModeID]string{
	catalog.ModeQuick:      "This is a quick civics drill. Ask civics questions one at a time and give brief feedback after each answer.",
	catalog.ModeFull:       "This is a full interview simulation. Conduct every phase of a realistic naturalization interview in order, exactly as an officer would.",
	catalog.ModeStress:     "This is a stress test. Keep a brisk, formal pace, ask follow-up questions, and do not reassure the applicant between questions.",
	catalog.ModeConfidence: "This is a confidence-building session. Be warm and supportive, celebrate correct answers, and gently guide the applicant when they struggle.",
}

const closingGuidance = `Guidelines:
- Ask one question at a time and wait for the applicant's response.
- Keep your responses short and conversational, as in a real interview.
- Do not reveal the answer to a question before the applicant has tried to answer it.
- At the end of the session, summarize the applicant's performance and suggest what to review next.`

// BuildSystemPrompt composes the officer's system prompt. settings is only
// consulted for the custom mode and may be nil.
func BuildSystemPrompt(mode catalog.ModeConfig, diff catalog.DifficultyConfig, settings *custom.Settings) string {
	var b strings.Builder

	b.WriteString(roleFraming)
	b.WriteString("\n\n")
	b.WriteString(modeInstruction(mode.ID, settings))
	b.WriteString("\n")

	b.WriteString(fmt.Sprintf("\nDifficulty: %s (speaking pace: %s, encouragement: %s)\n", diff.Name, diff.Pace, diff.Encouragement))
	if diff.AllowRephrasing {
		b.WriteString("- You may rephrase a question if the applicant does not understand it.\n")
	}
	if diff.Encouragement == catalog.LevelHigh {
		b.WriteString("- Offer frequent positive reinforcement, even for partially correct answers.\n")
	}
	if diff.HintsPerSession > 0 && mode.AllowHints {
		b.WriteString(fmt.Sprintf("- The applicant may ask for up to %d hints this session.\n", diff.HintsPerSession))
	}
	if diff.TimePressure {
		b.WriteString("- Keep the interview moving; do not wait long for answers.\n")
	}
	if diff.StrictEvaluation {
		b.WriteString("- Evaluate answers strictly: only accept complete, accurate answers.\n")
		b.WriteString("- Point out grammar and pronunciation errors in your feedback.\n")
	} else {
		b.WriteString("- Be lenient with minor grammar mistakes as long as the meaning is clear.\n")
		b.WriteString("- Accept answers that are correct in substance even if the wording differs.\n")
	}

	b.WriteString("\nInterview phases:\n")
	for i, id := range Phases(mode, settings) {
		name, desc := string(id), ""
		if p, err := catalog.GetPhase(id); err == nil {
			name, desc = p.Name, p.Description
		}
		b.WriteString(fmt.Sprintf("%d. %s: %s\n", i+1, name, desc))
	}

	n := questionCounts(mode, settings)
	if n != (counts{}) {
		b.WriteString("\n")
	}
	if n.civics > 0 {
		b.WriteString(fmt.Sprintf("Ask %d civics questions.\n", n.civics))
	}
	if n.n400 > 0 {
		b.WriteString(fmt.Sprintf("Ask %d questions about the applicant's N-400 application.\n", n.n400))
	}
	if n.reading > 0 {
		b.WriteString(fmt.Sprintf("Present up to %d sentences for the reading test.\n", n.reading))
	}
	if n.writing > 0 {
		b.WriteString(fmt.Sprintf("Dictate up to %d sentences for the writing test.\n", n.writing))
	}
	if settings != nil && mode.ID == catalog.ModeCustom {
		if len(settings.Categories) > 0 {
			b.WriteString(fmt.Sprintf("Draw civics questions only from these categories: %s.\n", joinCategories(settings.Categories)))
		}
		if settings.TimeLimitMins != nil {
			b.WriteString(fmt.Sprintf("The session has a time limit of %d minutes.\n", *settings.TimeLimitMins))
		}
	}

	b.WriteString("\n")
	b.WriteString(closingGuidance)

	return b.String()
}

func modeInstruction(id catalog.ModeID, settings *custom.Settings) string {
	if id == catalog.ModeCustom {
		focus := defaultFocus
		if settings != nil && len(settings.FocusAreas) > 0 {
			focus = strings.Join(settings.FocusAreas, ", ")
		}
		return fmt.Sprintf("This is a custom practice session focused on: %s.", focus)
	}
	return modeInstructions[id]
}

// Phases returns the phases a session covers, in order. For the custom
// mode the settings add the reading and writing tests before the closing
// and drop the N-400 review unless it is included.
func Phases(mode catalog.ModeConfig, settings *custom.Settings) []catalog.PhaseID {
	if settings == nil || mode.ID != catalog.ModeCustom {
		return slices.Clone(mode.Phases)
	}

	var out []catalog.PhaseID
	for _, id := range mode.Phases {
		if id == catalog.PhaseClosing {
			continue
		}
		if id == catalog.PhaseN400 && !settings.IncludeN400 {
			continue
		}
		out = append(out, id)
	}
	if settings.IncludeN400 && !slices.Contains(out, catalog.PhaseN400) {
		out = append(out, catalog.PhaseN400)
	}
	if settings.IncludeReading && !slices.Contains(out, catalog.PhaseReading) {
		out = append(out, catalog.PhaseReading)
	}
	if settings.IncludeWriting && !slices.Contains(out, catalog.PhaseWriting) {
		out = append(out, catalog.PhaseWriting)
	}
	if slices.Contains(mode.Phases, catalog.PhaseClosing) {
		out = append(out, catalog.PhaseClosing)
	}
	return out
}

type counts struct {
	civics, n400, reading, writing int
}

// questionCounts returns the per-phase counts, applying custom settings
// when present.
func questionCounts(mode catalog.ModeConfig, settings *custom.Settings) counts {
	n := counts{
		civics:  mode.CivicsQuestions,
		n400:    mode.N400Questions,
		reading: mode.ReadingSentences,
		writing: mode.WritingSentences,
	}
	if settings == nil || mode.ID != catalog.ModeCustom {
		return n
	}
	n.civics = settings.QuestionCount
	if !settings.IncludeN400 {
		n.n400 = 0
	}
	if settings.IncludeReading {
		n.reading = standardSentences
	}
	if settings.IncludeWriting {
		n.writing = standardSentences
	}
	return n
}

func joinCategories(cs []custom.Category) string {
	names := make([]string, len(cs))
	for i, c := range cs {
		names[i] = strings.ReplaceAll(string(c), "_", " ")
	}
	return strings.Join(names, ", ")
}

// ScenarioSection renders the applicant persona appended after the system
// prompt.
func ScenarioSection(s scenario.Scenario) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Applicant scenario: %s\n", s.Name))
	b.WriteString(s.PromptFragment)
	b.WriteString("\n")

	if len(s.N400Focus) > 0 {
		b.WriteString("\nFocus your N-400 questions on:\n")
		for _, q := range s.N400Focus {
			b.WriteString(fmt.Sprintf("- %s\n", q))
		}
	}

	if s.Civics != nil {
		if len(s.Civics.PreferredCategories) > 0 {
			b.WriteString(fmt.Sprintf("\nPrefer civics questions about: %s.\n", joinCategories(s.Civics.PreferredCategories)))
		}
		if len(s.Civics.AvoidTopics) > 0 {
			b.WriteString(fmt.Sprintf("Avoid: %s.\n", strings.Join(s.Civics.AvoidTopics, ", ")))
		}
	}

	if len(s.SpecialConsiderations) > 0 {
		b.WriteString("\nSpecial considerations:\n")
		for _, c := range s.SpecialConsiderations {
			b.WriteString(fmt.Sprintf("- %s\n", c))
		}
	}

	return b.String()
}
