package interview

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/citizenprep/internal/catalog"
	"github.com/abhisek/citizenprep/internal/llm"
	"github.com/abhisek/citizenprep/internal/session"
)

func testPlan(t *testing.T, mode catalog.ModeID) *session.Plan {
	t.Helper()
	plan, err := session.NewPlanner().Build(context.Background(), session.Request{Mode: &mode})
	require.NoError(t, err)
	return plan
}

func TestOpen(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"greeting":"Good morning, please have a seat.","first_question":"Do you promise to tell the truth?","phase":"oath"}`),
	})
	c := NewConductor(mock, time.Second, nil)
	plan := testPlan(t, catalog.ModeFull)

	op, err := c.Open(context.Background(), plan)
	require.NoError(t, err)

	assert.Equal(t, "Good morning, please have a seat.", op.Greeting)
	assert.Equal(t, "Do you promise to tell the truth?", op.FirstQuestion)
	assert.Equal(t, catalog.PhaseOath, op.Phase)

	require.Equal(t, 1, mock.CallCount())
	req := mock.Calls[0]
	assert.Equal(t, plan.SystemPrompt, req.System)
	require.NotNil(t, req.Schema)
	assert.Equal(t, "officer-opening", req.Schema.Name)
	require.Len(t, req.Messages, 1)
	assert.Equal(t, llm.RoleUser, req.Messages[0].Role)
	assert.Equal(t, []string{PurposeOpening}, mock.Purposes)
	assert.Equal(t, []string{plan.ID.String()}, mock.PlanIDs)
}

func TestOpen_PhaseOutsideMode(t *testing.T) {
	// Quick drill only has the civics phase.
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"greeting":"Hi.","first_question":"Read this sentence.","phase":"reading"}`),
	})
	c := NewConductor(mock, 0, nil)

	_, err := c.Open(context.Background(), testPlan(t, catalog.ModeQuick))
	var inv *llm.ErrInvalidResponse
	require.True(t, errors.As(err, &inv), "expected ErrInvalidResponse, got %T", err)
	assert.Contains(t, inv.Error(), "reading")
}

func TestOpen_MalformedContent(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`"just text"`)})
	c := NewConductor(mock, 0, nil)

	_, err := c.Open(context.Background(), testPlan(t, catalog.ModeFull))
	var inv *llm.ErrInvalidResponse
	assert.True(t, errors.As(err, &inv))
}

func TestOpen_ProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrRateLimit{}})
	c := NewConductor(mock, 0, nil)

	_, err := c.Open(context.Background(), testPlan(t, catalog.ModeFull))
	var rl *llm.ErrRateLimit
	assert.True(t, errors.As(err, &rl))
}

func TestOpeningSchemaListsEveryPhase(t *testing.T) {
	props := openingSchema.Definition["properties"].(map[string]any)
	enum := props["phase"].(map[string]any)["enum"].([]any)
	require.Len(t, enum, len(catalog.ListPhases()))
	for i, p := range catalog.ListPhases() {
		assert.Equal(t, string(p.ID), enum[i])
	}
}

func TestReply(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockText("Thank you. What is the supreme law of the land?"))
	c := NewConductor(mock, 0, nil)
	plan := testPlan(t, catalog.ModeFull)

	transcript := []Turn{
		{Speaker: Officer, Text: "Good morning. Do you promise to tell the truth?"},
		{Speaker: Applicant, Text: "Yes, I do."},
	}
	got, err := c.Reply(context.Background(), plan, transcript)
	require.NoError(t, err)
	assert.Equal(t, "Thank you. What is the supreme law of the land?", got)

	req := mock.Calls[0]
	assert.Nil(t, req.Schema)
	require.Len(t, req.Messages, 3)
	assert.Equal(t, llm.RoleUser, req.Messages[0].Role)
	assert.Equal(t, llm.RoleAssistant, req.Messages[1].Role)
	assert.Equal(t, llm.RoleUser, req.Messages[2].Role)
	assert.Equal(t, "Yes, I do.", req.Messages[2].Content)
	assert.Equal(t, []string{PurposeReply}, mock.Purposes)
	assert.Equal(t, []string{plan.ID.String()}, mock.PlanIDs)
}

func TestReply_RejectsBadTranscripts(t *testing.T) {
	c := NewConductor(llm.NewMockProvider(), 0, nil)
	plan := testPlan(t, catalog.ModeQuick)

	_, err := c.Reply(context.Background(), plan, nil)
	assert.ErrorIs(t, err, ErrEmptyTranscript)

	_, err = c.Reply(context.Background(), plan, []Turn{{Speaker: Officer, Text: "Hello."}})
	assert.ErrorIs(t, err, ErrOfficerTurn)
}

func TestBuildMessages_MergesConsecutiveTurns(t *testing.T) {
	msgs := buildMessages([]Turn{
		{Speaker: Applicant, Text: "Sorry, I am late."},
		{Speaker: Officer, Text: "No problem."},
		{Speaker: Officer, Text: "Please raise your right hand."},
		{Speaker: Applicant, Text: "Okay."},
	})

	require.Len(t, msgs, 3)
	assert.True(t, strings.HasSuffix(msgs[0].Content, "Sorry, I am late."))
	assert.Equal(t, llm.RoleAssistant, msgs[1].Role)
	assert.Equal(t, "No problem.\n\nPlease raise your right hand.", msgs[1].Content)
	assert.Equal(t, "Okay.", msgs[2].Content)
}
