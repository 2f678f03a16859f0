package llm

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/abhisek/citizenprep/internal/store"
)

func TestNewProvider_Mock(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "mock"

	p, err := NewProvider(context.Background(), cfg, nil, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, "mock", p.ModelID())
	_, ok := p.(*RetryProvider)
	assert.True(t, ok, "expected retry decorator on the outside")
}

func TestNewProvider_OpenRouter(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "openrouter"
	cfg.OpenRouter.APIKey = "sk-or-test"

	p, err := NewProvider(context.Background(), cfg, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "google/gemini-2.0-flash-exp", p.ModelID())
}

func TestNewProvider_RejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "anthropic"

	_, err := NewProvider(context.Background(), cfg, nil, nil)
	assert.Error(t, err)
}

func TestLoggingProvider_RecordsEvents(t *testing.T) {
	s, err := store.Open(filepath.Join(t.TempDir(), "llm.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	repo := s.EventRepo()

	mock := NewMockProvider(
		MockResponse{Content: textContent("Welcome."), Usage: Usage{InputTokens: 30, OutputTokens: 4}},
	)
	p := WithLogging(mock, "mock", repo, zap.NewNop())

	ctx := WithPlanID(WithPurpose(context.Background(), "officer-reply"), "plan-42")
	_, err = p.Generate(ctx, Request{System: "sys", Messages: []Message{{Role: RoleUser, Content: "hi"}}})
	require.NoError(t, err)

	// Empty queue: the failure is recorded too.
	_, err = p.Generate(ctx, Request{})
	require.Error(t, err)

	events, err := repo.QueryLLMEvents(context.Background(), store.QueryOpts{})
	require.NoError(t, err)
	require.Len(t, events, 2)

	failed, ok := events[0], events[1]
	assert.False(t, failed.Success)
	assert.NotEmpty(t, failed.ErrorMessage)

	assert.True(t, ok.Success)
	assert.Equal(t, "officer-reply", ok.Purpose)
	assert.Equal(t, "plan-42", ok.PlanID)
	assert.Equal(t, "mock", ok.Provider)
	assert.Equal(t, 30, ok.InputTokens)
	assert.Contains(t, ok.RequestBody, "[system]\nsys")
	assert.Contains(t, ok.RequestBody, "[user]\nhi")
}

func TestLoggingProvider_RecordsCancelledRequest(t *testing.T) {
	s, err := store.Open(filepath.Join(t.TempDir(), "llm.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	repo := s.EventRepo()

	mock := NewMockProvider(MockResponse{Err: context.DeadlineExceeded})
	p := WithLogging(mock, "mock", repo, zap.NewNop())

	ctx, cancel := context.WithCancel(WithPlanID(context.Background(), "plan-9"))
	cancel()
	_, err = p.Generate(ctx, Request{})
	require.ErrorIs(t, err, context.DeadlineExceeded)

	events, err := repo.QueryLLMEvents(context.Background(), store.QueryOpts{PlanID: "plan-9"})
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.False(t, events[0].Success)
	assert.Contains(t, events[0].ErrorMessage, "deadline exceeded")
}
