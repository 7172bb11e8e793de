package note

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/foundrylabs/daybrief/internal/common"
	"github.com/foundrylabs/daybrief/internal/config"
	dom "github.com/foundrylabs/daybrief/internal/domain"
	"github.com/foundrylabs/daybrief/internal/llm"
)

// StructuredNote is the fixed shape a generation must return. Leaf content is
// opaque model output; this layer only guarantees the envelope.
type StructuredNote struct {
	ExecutiveSummary  dom.ExecutiveSummary  `json:"executiveSummary"`
	Schedule          []dom.ScheduleBlock   `json:"schedule"`
	Decisions         dom.DecisionQueue     `json:"decisions"`
	StrategicGuidance dom.StrategicGuidance `json:"strategicGuidance"`
	Problems          []json.RawMessage     `json:"problems"`
	Wins              []string              `json:"wins"`
}

// Generator is the text-generation boundary the orchestrator depends on.
// Implementations make exactly one upstream call per invocation; a failed
// call is surfaced, never retried.
type Generator interface {
	GenerateDailyNote(ctx context.Context, in NoteInput) (*StructuredNote, error)
	GenerateInsight(ctx context.Context, founderContext string) (string, error)
}

// LLMGenerator backs Generator with a provider client and TOML-tuned prompts.
type LLMGenerator struct {
	llm     llm.Client
	prompts config.Prompts
}

func NewLLMGenerator(client llm.Client, prompts config.Prompts) *LLMGenerator {
	return &LLMGenerator{llm: client, prompts: prompts}
}

func (g *LLMGenerator) GenerateDailyNote(ctx context.Context, in NoteInput) (*StructuredNote, error) {
	raw, err := g.llm.Generate(ctx, llm.Request{
		System:      g.prompts.DailyNote.System,
		Prompt:      BuildDailyNotePrompt(in),
		Temperature: 0.7,
		MaxTokens:   3000,
		JSONOnly:    true,
	})
	if err != nil {
		return nil, fmt.Errorf("daily note generation failed: %w", err)
	}

	parsed, err := common.ParseJSON[StructuredNote](raw)
	if err != nil {
		return nil, fmt.Errorf("daily note generation failed: %w", err)
	}
	if err := validateNote(&parsed); err != nil {
		return nil, err
	}
	return &parsed, nil
}

func (g *LLMGenerator) GenerateInsight(ctx context.Context, founderContext string) (string, error) {
	raw, err := g.llm.Generate(ctx, llm.Request{
		System:      g.prompts.Insight.System,
		Prompt:      fmt.Sprintf(g.prompts.Insight.User, founderContext),
		Temperature: 0.8,
		MaxTokens:   200,
	})
	if err != nil {
		return "", fmt.Errorf("insight generation failed: %w", err)
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "No insight generated.", nil
	}
	return raw, nil
}

// validateNote rejects envelopes the storage layer should never see:
// an empty summary or coaching prompt means the model ignored the schema.
func validateNote(n *StructuredNote) error {
	if strings.TrimSpace(n.ExecutiveSummary.Theme) == "" {
		return fmt.Errorf("%w: executiveSummary.theme is empty", ErrInvalidNote)
	}
	if strings.TrimSpace(n.ExecutiveSummary.CriticalPath) == "" {
		return fmt.Errorf("%w: executiveSummary.criticalPath is empty", ErrInvalidNote)
	}
	if strings.TrimSpace(n.StrategicGuidance.CoachingPrompt) == "" {
		return fmt.Errorf("%w: strategicGuidance.coachingPrompt is empty", ErrInvalidNote)
	}
	for i, blk := range n.Schedule {
		if strings.TrimSpace(blk.Time) == "" || strings.TrimSpace(blk.Activity) == "" {
			return fmt.Errorf("%w: schedule[%d] is missing time or activity", ErrInvalidNote, i)
		}
	}
	return nil
}
