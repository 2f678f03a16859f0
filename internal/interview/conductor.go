// Package interview hands a session plan to an LLM acting as the USCIS
// officer. It produces the opening turn and continues individual turns;
// the conversation loop itself belongs to the caller.
package interview

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/citizenprep/internal/catalog"
	"github.com/abhisek/citizenprep/internal/llm"
	"github.com/abhisek/citizenprep/internal/session"
)

// Purpose labels recorded with each LLM request.
const (
	PurposeOpening = "officer-opening"
	PurposeReply   = "officer-reply"
)

const (
	openingMaxTokens = 512
	replyMaxTokens   = 768
	temperature      = 0.7
)

// kickoff is the applicant's implicit first message. Some providers
// require the conversation to start with a user turn.
const kickoff = "Hello, I am here for my naturalization interview."

var (
	// ErrEmptyTranscript is returned by Reply when there is nothing to answer.
	ErrEmptyTranscript = errors.New("transcript is empty")

	// ErrOfficerTurn is returned by Reply when the last turn is already the
	// officer's.
	ErrOfficerTurn = errors.New("last turn belongs to the officer")
)

// Speaker identifies who said a Turn.
type Speaker string

const (
	Officer   Speaker = "officer"
	Applicant Speaker = "applicant"
)

// Turn is one utterance in the interview transcript.
type Turn struct {
	Speaker Speaker
	Text    string
}

// Opening is the officer's first turn.
type Opening struct {
	Greeting      string          `json:"greeting"`
	FirstQuestion string          `json:"first_question"`
	Phase         catalog.PhaseID `json:"phase"`
}

// Conductor drives the officer side of an interview.
type Conductor struct {
	provider   llm.Provider
	compressor *Compressor
	log        *zap.Logger
	timeout    time.Duration
}

// NewConductor creates a Conductor. timeout bounds each LLM call including
// retries; zero means no extra bound.
func NewConductor(provider llm.Provider, timeout time.Duration, log *zap.Logger) *Conductor {
	if log == nil {
		log = zap.NewNop()
	}
	return &Conductor{provider: provider, timeout: timeout, log: log}
}

// WithCompressor makes Continue compact long histories before replying.
func (c *Conductor) WithCompressor(comp *Compressor) *Conductor {
	c.compressor = comp
	return c
}

// Open asks the officer for a greeting and the first question of the plan's
// first phase.
func (c *Conductor) Open(ctx context.Context, plan *session.Plan) (*Opening, error) {
	mode, err := catalog.GetMode(plan.ModeID)
	if err != nil {
		return nil, err
	}

	ctx, cancel := c.withTimeout(llm.WithPurpose(withPlan(ctx, plan), PurposeOpening))
	defer cancel()

	resp, err := c.provider.Generate(ctx, llm.Request{
		System:      plan.SystemPrompt,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: kickoff}},
		Schema:      openingSchema,
		MaxTokens:   openingMaxTokens,
		Temperature: temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("generate opening: %w", err)
	}

	var op Opening
	if err := json.Unmarshal(resp.Content, &op); err != nil {
		return nil, &llm.ErrInvalidResponse{Content: resp.Content, Err: err}
	}
	phases := plan.Phases
	if len(phases) == 0 {
		phases = mode.Phases
	}
	if !slices.Contains(phases, op.Phase) {
		return nil, &llm.ErrInvalidResponse{
			Content: resp.Content,
			Err:     fmt.Errorf("phase %q is not part of mode %q", op.Phase, mode.ID),
		}
	}

	c.log.Debug("interview opened",
		zap.Stringer("plan_id", plan.ID),
		zap.String("phase", string(op.Phase)),
		zap.Int("output_tokens", resp.Usage.OutputTokens))

	return &op, nil
}

// Reply returns the officer's next utterance given the transcript so far.
// The transcript starts with the officer's opening and must end with an
// applicant turn.
func (c *Conductor) Reply(ctx context.Context, plan *session.Plan, transcript []Turn) (string, error) {
	return c.reply(withPlan(ctx, plan), plan.SystemPrompt, transcript)
}

// Continue is Reply over a History. It compacts the history first when a
// compressor is set, then appends the officer's reply to it. A failed
// compaction is logged and the full history is used.
func (c *Conductor) Continue(ctx context.Context, plan *session.Plan, h *History) (string, error) {
	ctx = withPlan(ctx, plan)
	if c.compressor != nil {
		compacted, err := c.compressor.Compact(ctx, h)
		if err != nil {
			c.log.Warn("transcript compression failed", zap.Error(err))
		} else if compacted {
			c.log.Debug("transcript compacted",
				zap.Stringer("plan_id", plan.ID),
				zap.Int("kept_turns", len(h.Turns)))
		}
	}

	text, err := c.reply(ctx, withSummary(plan.SystemPrompt, h.Summary), h.Turns)
	if err != nil {
		return "", err
	}
	h.Add(Officer, text)
	return text, nil
}

func (c *Conductor) reply(ctx context.Context, system string, transcript []Turn) (string, error) {
	if len(transcript) == 0 {
		return "", ErrEmptyTranscript
	}
	if transcript[len(transcript)-1].Speaker != Applicant {
		return "", ErrOfficerTurn
	}

	ctx, cancel := c.withTimeout(llm.WithPurpose(ctx, PurposeReply))
	defer cancel()

	resp, err := c.provider.Generate(ctx, llm.Request{
		System:      system,
		Messages:    buildMessages(transcript),
		MaxTokens:   replyMaxTokens,
		Temperature: temperature,
	})
	if err != nil {
		return "", fmt.Errorf("generate reply: %w", err)
	}
	return resp.Text(), nil
}

// buildMessages maps the transcript onto alternating chat roles, merging
// consecutive turns by the same speaker.
func buildMessages(transcript []Turn) []llm.Message {
	msgs := []llm.Message{{Role: llm.RoleUser, Content: kickoff}}
	for _, t := range transcript {
		role := llm.RoleUser
		if t.Speaker == Officer {
			role = llm.RoleAssistant
		}
		last := &msgs[len(msgs)-1]
		if last.Role == role {
			last.Content += "\n\n" + t.Text
			continue
		}
		msgs = append(msgs, llm.Message{Role: role, Content: t.Text})
	}
	return msgs
}

func withPlan(ctx context.Context, plan *session.Plan) context.Context {
	return llm.WithPlanID(ctx, plan.ID.String())
}

func (c *Conductor) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, c.timeout)
}
