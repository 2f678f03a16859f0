package llm

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockProvider_FIFO(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"phase":"oath"}`), Usage: Usage{InputTokens: 12, OutputTokens: 4, TotalTokens: 16}},
		MockText("Please have a seat."),
	)

	first, err := mock.Generate(context.Background(), Request{System: "officer"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"phase":"oath"}`, string(first.Content))
	assert.Equal(t, 16, first.Usage.TotalTokens)
	assert.Equal(t, StopEnd, first.StopReason)
	assert.Equal(t, "mock", first.Model)

	second, err := mock.Generate(context.Background(), Request{})
	require.NoError(t, err)
	assert.Equal(t, "Please have a seat.", second.Text())

	assert.Equal(t, 2, mock.CallCount())
	assert.Equal(t, "officer", mock.Calls[0].System)

	_, err = mock.Generate(context.Background(), Request{})
	assert.ErrorAs(t, err, new(*ErrProviderUnavailable), "drained queue")
}

func TestMockProvider_AddResponseAndErrors(t *testing.T) {
	mock := NewMockProvider()
	assert.Equal(t, "mock", mock.ModelID())

	mock.AddResponse(MockResponse{Err: &ErrRateLimit{}})
	_, err := mock.Generate(context.Background(), Request{})
	assert.ErrorAs(t, err, new(*ErrRateLimit))
}

func TestMockProvider_RecordsLabels(t *testing.T) {
	mock := NewMockProvider(MockText("one"), MockText("two"))

	_, _ = mock.Generate(context.Background(), Request{})
	ctx := WithPlanID(WithPurpose(context.Background(), "officer-reply"), "plan-7")
	_, _ = mock.Generate(ctx, Request{})

	assert.Equal(t, []string{"unknown", "officer-reply"}, mock.Purposes)
	assert.Equal(t, []string{"", "plan-7"}, mock.PlanIDs)
}

func TestMockProvider_ValidatesSchema(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"greeting":"Hello."}`)},
		MockResponse{Content: json.RawMessage(`{"greeting":"Hello.","first_question":"Name?","phase":"oath"}`)},
	)

	_, err := mock.Generate(context.Background(), Request{Schema: openingTestSchema()})
	assert.ErrorAs(t, err, new(*ErrInvalidResponse))

	_, err = mock.Generate(context.Background(), Request{Schema: openingTestSchema()})
	assert.NoError(t, err)
}

func TestPurposeContext(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, "unknown", PurposeFrom(ctx))
	assert.Empty(t, PlanIDFrom(ctx))

	ctx = WithPurpose(ctx, "officer-opening")
	assert.Equal(t, "officer-opening", PurposeFrom(ctx))
	assert.Equal(t, "p-1", PlanIDFrom(WithPlanID(ctx, "p-1")))
}

func TestConfig_Validate(t *testing.T) {
	retry := RetryConfig{MaxAttempts: 2}
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"anthropic without key", Config{Provider: "anthropic", Retry: retry}, true},
		{"anthropic with key", Config{Provider: "anthropic", Anthropic: AnthropicConfig{APIKey: "sk-ant"}, Retry: retry}, false},
		{"openai without key", Config{Provider: "openai", Retry: retry}, true},
		{"gemini with key", Config{Provider: "gemini", Gemini: GeminiConfig{APIKey: "g-key"}, Retry: retry}, false},
		{"openrouter with key", Config{Provider: "openrouter", OpenRouter: OpenRouterConfig{APIKey: "sk-or"}, Retry: retry}, false},
		{"mock needs no key", Config{Provider: "mock", Retry: retry}, false},
		{"zero retry attempts", Config{Provider: "mock"}, true},
		{"no provider", Config{Retry: retry}, true},
		{"unknown provider", Config{Provider: "cohere", Retry: retry}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestResponseText(t *testing.T) {
	tests := []struct {
		name    string
		content json.RawMessage
		want    string
	}{
		{"json string", textContent("Please state your name."), "Please state your name."},
		{"object", json.RawMessage(`{"phase":"oath"}`), `{"phase":"oath"}`},
		{"escaped", textContent(`He said "yes"`), `He said "yes"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, (&Response{Content: tt.content}).Text())
		})
	}
}

func TestFinishResponse(t *testing.T) {
	usage := Usage{InputTokens: 3, OutputTokens: 2, TotalTokens: 5}

	resp, err := finishResponse(Request{}, "  Thank you.\n", usage, "m", StopEnd)
	require.NoError(t, err)
	assert.Equal(t, "Thank you.", resp.Text())
	assert.Equal(t, usage, resp.Usage)

	// Plain text cut short is still usable.
	resp, err = finishResponse(Request{}, "Thank you for", usage, "m", StopMaxTokens)
	require.NoError(t, err)
	assert.Equal(t, StopMaxTokens, resp.StopReason)

	req := Request{Schema: openingTestSchema()}
	_, err = finishResponse(req, `{"greeting":`, usage, "m", StopMaxTokens)
	var maxTok *ErrMaxTokensExceeded
	require.ErrorAs(t, err, &maxTok)
	assert.Equal(t, `{"greeting":`, string(maxTok.Content))

	_, err = finishResponse(req, `{"greeting":"Hi"}`, usage, "m", StopEnd)
	assert.ErrorAs(t, err, new(*ErrInvalidResponse))
}

func TestStripCodeFence(t *testing.T) {
	assert.Equal(t, `{"a":1}`, stripCodeFence("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripCodeFence("```\n{\"a\":1}```"))
	assert.Equal(t, `{"a":1}`, stripCodeFence(` {"a":1} `))
}

func TestConfig_Discover(t *testing.T) {
	for _, k := range []string{"GEMINI_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY", "OPENROUTER_API_KEY"} {
		t.Setenv(k, "")
	}

	cfg := DefaultConfig()
	assert.False(t, cfg.Discover(), "no keys in the environment")

	t.Setenv("OPENAI_API_KEY", "sk-openai")
	t.Setenv("ANTHROPIC_API_KEY", "sk-ant")
	cfg = DefaultConfig()
	require.True(t, cfg.Discover())
	assert.Equal(t, "openai", cfg.Provider)
	assert.Equal(t, "sk-openai", cfg.OpenAI.APIKey)

	explicit := Config{Provider: "mock"}
	assert.True(t, explicit.Discover())
	assert.Equal(t, "mock", explicit.Provider)
}
