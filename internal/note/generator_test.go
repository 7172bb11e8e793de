package note

import (
	"context"
	"errors"
	"testing"

	"github.com/foundrylabs/daybrief/internal/config"

	"github.com/stretchr/testify/assert"
)

const validNoteJSON = `{
	"executiveSummary": {
		"theme": "Close the pilot",
		"criticalPath": "Get the security questionnaire back to Initech",
		"keyMetrics": {"mrr": "$12,400"}
	},
	"schedule": [
		{"time": "9:00 AM", "activity": "Security questionnaire", "type": "deep_work", "priority": "high", "energyLevel": "high"}
	],
	"decisions": {"highStakes": [], "lowStakes": []},
	"strategicGuidance": {
		"coachingPrompt": "What is the one thing only you can do today?",
		"recommendations": [],
		"recommendedResources": []
	},
	"problems": [],
	"wins": ["Pilot kickoff confirmed"]
}`

func testInput() NoteInput {
	return NoteInput{
		FounderName: "Jordan",
		Company:     "Acme",
		Date:        "Monday, March 10, 2025",
	}
}

func TestGenerateDailyNote(t *testing.T) {
	mock := &MockLLM{Response: validNoteJSON}
	gen := NewLLMGenerator(mock, config.DefaultPrompts())

	n, err := gen.GenerateDailyNote(context.Background(), testInput())
	assert.NoError(t, err)
	assert.Equal(t, "Close the pilot", n.ExecutiveSummary.Theme)
	assert.Len(t, n.Schedule, 1)
	assert.Equal(t, []string{"Pilot kickoff confirmed"}, n.Wins)

	assert.Equal(t, config.DefaultPrompts().DailyNote.System, mock.LastReq.System)
	assert.True(t, mock.LastReq.JSONOnly)
	assert.Equal(t, float32(0.7), mock.LastReq.Temperature)
	assert.Equal(t, 3000, mock.LastReq.MaxTokens)
	assert.Contains(t, mock.LastReq.Prompt, "Jordan")
	assert.Contains(t, mock.LastReq.Prompt, "Monday, March 10, 2025")
}

func TestGenerateDailyNoteFencedResponse(t *testing.T) {
	mock := &MockLLM{Response: "Here is your note:\n```json\n" + validNoteJSON + "\n```\nLet me know if you need changes."}
	gen := NewLLMGenerator(mock, config.DefaultPrompts())

	n, err := gen.GenerateDailyNote(context.Background(), testInput())
	assert.NoError(t, err)
	assert.Equal(t, "Close the pilot", n.ExecutiveSummary.Theme)
}

func TestGenerateDailyNoteProviderError(t *testing.T) {
	mock := &MockLLM{Err: errors.New("rate limited")}
	gen := NewLLMGenerator(mock, config.DefaultPrompts())

	_, err := gen.GenerateDailyNote(context.Background(), testInput())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "daily note generation failed")
}

func TestGenerateDailyNoteRejectsSparsePayloads(t *testing.T) {
	tests := []struct {
		name     string
		response string
	}{
		{
			name:     "no JSON at all",
			response: "I cannot help with that.",
		},
		{
			name:     "empty theme",
			response: `{"executiveSummary":{"theme":"","criticalPath":"x"},"strategicGuidance":{"coachingPrompt":"y"}}`,
		},
		{
			name:     "missing coaching prompt",
			response: `{"executiveSummary":{"theme":"x","criticalPath":"y"},"strategicGuidance":{"coachingPrompt":"  "}}`,
		},
		{
			name:     "schedule block without activity",
			response: `{"executiveSummary":{"theme":"x","criticalPath":"y"},"schedule":[{"time":"9:00 AM","activity":""}],"strategicGuidance":{"coachingPrompt":"z"}}`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			gen := NewLLMGenerator(&MockLLM{Response: tc.response}, config.DefaultPrompts())
			_, err := gen.GenerateDailyNote(context.Background(), testInput())
			assert.Error(t, err)
		})
	}
}

func TestGenerateDailyNoteValidationError(t *testing.T) {
	response := `{"executiveSummary":{"theme":"x","criticalPath":""},"strategicGuidance":{"coachingPrompt":"y"}}`
	gen := NewLLMGenerator(&MockLLM{Response: response}, config.DefaultPrompts())

	_, err := gen.GenerateDailyNote(context.Background(), testInput())
	assert.ErrorIs(t, err, ErrInvalidNote)
}

func TestGenerateInsight(t *testing.T) {
	mock := &MockLLM{Response: "  Focus your outbound on the two segments already converting.  "}
	gen := NewLLMGenerator(mock, config.DefaultPrompts())

	insight, err := gen.GenerateInsight(context.Background(), "MRR flat for 3 weeks")
	assert.NoError(t, err)
	assert.Equal(t, "Focus your outbound on the two segments already converting.", insight)

	assert.False(t, mock.LastReq.JSONOnly)
	assert.Equal(t, float32(0.8), mock.LastReq.Temperature)
	assert.Equal(t, 200, mock.LastReq.MaxTokens)
	assert.Contains(t, mock.LastReq.Prompt, "MRR flat for 3 weeks")
}

func TestGenerateInsightEmptyResponse(t *testing.T) {
	gen := NewLLMGenerator(&MockLLM{Response: "   "}, config.DefaultPrompts())

	insight, err := gen.GenerateInsight(context.Background(), "anything")
	assert.NoError(t, err)
	assert.Equal(t, "No insight generated.", insight)
}
