package interview

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/abhisek/citizenprep/internal/llm"
)

// PurposeCompress labels transcript compression requests.
const PurposeCompress = "transcript-compress"

// CompressorConfig holds transcript compression settings.
type CompressorConfig struct {
	// MaxTurns is the live transcript length that triggers compression.
	// Zero disables compression.
	MaxTurns int `mapstructure:"max_turns"`
	// KeepTurns is how many recent turns survive verbatim.
	KeepTurns   int     `mapstructure:"keep_turns"`
	MaxTokens   int     `mapstructure:"max_tokens"`
	Temperature float64 `mapstructure:"temperature"`
}

// DefaultCompressorConfig returns sensible defaults for compression.
func DefaultCompressorConfig() CompressorConfig {
	return CompressorConfig{
		MaxTurns:    24,
		KeepTurns:   8,
		MaxTokens:   384,
		Temperature: 0.3,
	}
}

// History is a running transcript whose older turns have been folded into
// Summary.
type History struct {
	Summary string
	Turns   []Turn
}

// Add appends a turn.
func (h *History) Add(s Speaker, text string) {
	h.Turns = append(h.Turns, Turn{Speaker: s, Text: text})
}

// Compressor folds older interview turns into a short summary so long
// sessions stay within the provider's context window.
type Compressor struct {
	provider llm.Provider
	cfg      CompressorConfig
}

// NewCompressor creates a transcript compressor.
func NewCompressor(provider llm.Provider, cfg CompressorConfig) *Compressor {
	return &Compressor{provider: provider, cfg: cfg}
}

var compressionSchema = &llm.Schema{
	Name:        PurposeCompress,
	Description: "Compressed summary of the earlier part of a naturalization interview",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"summary": map[string]any{
				"type":        "string",
				"description": "3-5 sentence factual summary of the turns so far",
			},
		},
		"required":             []any{"summary"},
		"additionalProperties": false,
	},
}

const compressionSystemPrompt = `You are keeping notes for a USCIS officer during a naturalization interview. Summarize what has happened so far so the officer can continue without the full transcript.`

type compressionOutput struct {
	Summary string `json:"summary"`
}

// Compact compresses h when it has grown past MaxTurns. It reports whether
// h was changed. On error h is left untouched.
func (c *Compressor) Compact(ctx context.Context, h *History) (bool, error) {
	if c.cfg.MaxTurns <= 0 || len(h.Turns) <= c.cfg.MaxTurns {
		return false, nil
	}
	keep := min(max(c.cfg.KeepTurns, 1), len(h.Turns))
	cut := len(h.Turns) - keep
	if cut == 0 {
		return false, nil
	}

	ctx = llm.WithPurpose(ctx, PurposeCompress)
	resp, err := c.provider.Generate(ctx, llm.Request{
		System: compressionSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildCompressionUserMessage(h.Summary, h.Turns[:cut])},
		},
		Schema:      compressionSchema,
		MaxTokens:   c.cfg.MaxTokens,
		Temperature: c.cfg.Temperature,
	})
	if err != nil {
		return false, fmt.Errorf("transcript compression: %w", err)
	}

	var out compressionOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return false, fmt.Errorf("parse compression response: %w", err)
	}

	h.Summary = out.Summary
	h.Turns = slices.Clone(h.Turns[cut:])
	return true, nil
}

func buildCompressionUserMessage(summary string, turns []Turn) string {
	var b strings.Builder

	if summary != "" {
		b.WriteString("Earlier summary:\n")
		b.WriteString(summary)
		b.WriteString("\n\n")
	}

	b.WriteString("Transcript:\n")
	for _, t := range turns {
		fmt.Fprintf(&b, "%s: %s\n", strings.ToUpper(string(t.Speaker)), t.Text)
	}

	b.WriteString(`
Instructions:
Summarize the interview so far in 3-5 sentences. Record:
- Which phases and questions have been covered
- Answers the applicant gave that the officer may need to refer back to
- Any question the applicant had trouble with

Keep it factual. Do not grade the applicant.`)

	return b.String()
}

// withSummary extends the system prompt with the compressed history.
func withSummary(system, summary string) string {
	if summary == "" {
		return system
	}
	return system + "\n\n## Earlier in this interview\n" + summary
}
