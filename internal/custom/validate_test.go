package custom

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(n int) *int { return &n }

func TestValidate_ValidSettings(t *testing.T) {
	res := Validate(Settings{
		QuestionCount: 10,
		Categories:    []Category{CategoryAmericanHistory},
	})
	assert.True(t, res.Valid)
	assert.Empty(t, res.Errors)
	assert.NotNil(t, res.Errors, "errors should be an empty list, not nil")
	assert.NoError(t, res.Err())
}

func TestValidate_ZeroQuestionCount(t *testing.T) {
	res := Validate(Settings{QuestionCount: 0, Categories: []Category{CategoryGeography}})
	require.False(t, res.Valid)
	require.Len(t, res.Errors, 1)
	assert.Contains(t, res.Errors[0], "at least 1")
}

func TestValidate_Bounds(t *testing.T) {
	tests := []struct {
		name      string
		settings  Settings
		wantValid bool
		wantMsg   string
	}{
		{"minimum", Settings{QuestionCount: 1, Categories: []Category{CategoryGeography}}, true, ""},
		{"maximum", Settings{QuestionCount: 50, Categories: []Category{CategoryGeography}}, true, ""},
		{"above maximum", Settings{QuestionCount: 51, Categories: []Category{CategoryGeography}}, false, "at most 50"},
		{"negative", Settings{QuestionCount: -3, Categories: []Category{CategoryGeography}}, false, "at least 1"},
		{"no categories", Settings{QuestionCount: 5}, false, "category"},
		{"zero time limit", Settings{QuestionCount: 5, Categories: []Category{CategoryGeography}, TimeLimitMins: intPtr(0)}, false, "time limit"},
		{"one minute limit", Settings{QuestionCount: 5, Categories: []Category{CategoryGeography}, TimeLimitMins: intPtr(1)}, true, ""},
		{"unknown category", Settings{QuestionCount: 5, Categories: []Category{"astronomy"}}, false, "astronomy"},
		{"unknown difficulty", Settings{QuestionCount: 5, Categories: []Category{CategoryGeography}, Difficulty: "heroic"}, false, "heroic"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Validate(tt.settings)
			assert.Equal(t, tt.wantValid, res.Valid)
			if tt.wantMsg != "" {
				assert.Contains(t, strings.Join(res.Errors, "\n"), tt.wantMsg)
			}
		})
	}
}

func TestValidate_ReportsAllViolations(t *testing.T) {
	res := Validate(Settings{QuestionCount: 0, TimeLimitMins: intPtr(0)})
	require.False(t, res.Valid)
	assert.Len(t, res.Errors, 3)

	var verr *ValidationError
	require.True(t, errors.As(res.Err(), &verr))
	assert.Equal(t, res.Errors, verr.Problems)
}
