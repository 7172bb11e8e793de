package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadPromptsMissingFileUsesDefaults(t *testing.T) {
	p, err := LoadPrompts(filepath.Join(t.TempDir(), "nope.toml"))
	assert.NoError(t, err)
	assert.Equal(t, DefaultPrompts(), p)
}

func TestLoadPromptsPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prompts.toml")
	content := `
[daily_note]
system = "You are a terse operator. Reply in JSON."
`
	assert.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	p, err := LoadPrompts(path)
	assert.NoError(t, err)
	assert.Equal(t, "You are a terse operator. Reply in JSON.", p.DailyNote.System)

	// Sections the file omits fall back to the built-ins.
	assert.Equal(t, DefaultPrompts().Insight.System, p.Insight.System)
	assert.Equal(t, DefaultPrompts().Insight.User, p.Insight.User)
}

func TestLoadPromptsBadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prompts.toml")
	assert.NoError(t, os.WriteFile(path, []byte("[daily_note\nsystem="), 0o644))

	_, err := LoadPrompts(path)
	assert.Error(t, err)
}

func TestDefaultInsightUserTemplate(t *testing.T) {
	assert.Contains(t, DefaultPrompts().Insight.User, "%s")
}
