package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Prompts holds the LLM prompt templates. They live in a TOML file so the
// coaching persona can be tuned without a rebuild; the data sections of each
// prompt are assembled in code.
type Prompts struct {
	DailyNote DailyNotePrompts `toml:"daily_note"`
	Insight   InsightPrompts   `toml:"insight"`
}

type DailyNotePrompts struct {
	System string `toml:"system"`
}

// InsightPrompts drive one-off strategic insights. User is a template with a
// single %s placeholder for the founder's context.
type InsightPrompts struct {
	System string `toml:"system"`
	User   string `toml:"user"`
}

// LoadPrompts reads prompt templates from path. A missing file falls back to
// the built-in defaults; a present but unparsable file is an error. Empty
// fields are filled from the defaults so partial overrides work.
func LoadPrompts(path string) (Prompts, error) {
	defaults := DefaultPrompts()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return defaults, nil
		}
		return Prompts{}, fmt.Errorf("read prompts file %q: %w", path, err)
	}

	var p Prompts
	if err := toml.Unmarshal(data, &p); err != nil {
		return Prompts{}, fmt.Errorf("parse prompts TOML: %w", err)
	}

	if p.DailyNote.System == "" {
		p.DailyNote.System = defaults.DailyNote.System
	}
	if p.Insight.System == "" {
		p.Insight.System = defaults.Insight.System
	}
	if p.Insight.User == "" {
		p.Insight.User = defaults.Insight.User
	}
	return p, nil
}

// DefaultPrompts returns the built-in prompt templates.
func DefaultPrompts() Prompts {
	return Prompts{
		DailyNote: DailyNotePrompts{
			System: `You are an expert executive coach and AI assistant for startup founders. Your role is to:
1. Organize their day with clarity and structure
2. Surface strategic insights from their data
3. Ask thought-provoking coaching questions
4. Help prioritize decisions
5. Detect patterns in their behavior

Generate a comprehensive daily founder's note that is:
- Actionable and specific (no generic advice)
- Strategic (connects daily actions to long-term goals)
- Insightful (surfaces patterns and opportunities)
- Concise (respects the founder's time)
- Supportive (acts as a mentor, not just a tool)

Return your response as valid JSON matching the requested schema.`,
		},
		Insight: InsightPrompts{
			System: "You are a strategic advisor for startup founders. Generate insightful, thought-provoking coaching questions or recommendations based on their situation.",
			User:   "Based on this context: %s\n\nGenerate one strategic insight or coaching question that helps the founder think more deeply about their business.",
		},
	}
}
