package interview

import (
	"github.com/abhisek/citizenprep/internal/catalog"
	"github.com/abhisek/citizenprep/internal/llm"
)

var openingSchema = &llm.Schema{
	Name:        PurposeOpening,
	Description: "The officer's greeting and first interview question",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"greeting": map[string]any{
				"type":        "string",
				"description": "A short, professional greeting to the applicant",
			},
			"first_question": map[string]any{
				"type":        "string",
				"description": "The first question of the opening phase",
			},
			"phase": map[string]any{
				"type":        "string",
				"description": "The interview phase the first question belongs to",
				"enum":        phaseEnum(),
			},
		},
		"required":             []any{"greeting", "first_question", "phase"},
		"additionalProperties": false,
	},
}

func phaseEnum() []any {
	phases := catalog.ListPhases()
	out := make([]any, len(phases))
	for i, p := range phases {
		out[i] = string(p.ID)
	}
	return out
}
