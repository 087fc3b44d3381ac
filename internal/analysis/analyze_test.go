package analysis

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/outreach-agent/internal/llm"
	"github.com/jonathan/outreach-agent/internal/scrape"
)

type fakeLLM struct {
	response string
	err      error
	prompts  []string
	opts     []*llm.Options
}

func (f *fakeLLM) Generate(_ context.Context, prompt string, _ llm.ModelTier, opts *llm.Options) (string, error) {
	f.prompts = append(f.prompts, prompt)
	f.opts = append(f.opts, opts)
	return f.response, f.err
}

func (f *fakeLLM) GetModel(llm.ModelTier) string { return "fake" }
func (f *fakeLLM) Close() error                  { return nil }

func TestAnalyze_EmbedsFields(t *testing.T) {
	client := &fakeLLM{response: "**Company Overview:**\nAcme builds robots."}
	fields := scrape.PageFields{
		Title:       "Acme - Robots",
		Description: "Robotics company",
		About:       "Founded in a garage",
		Products:    "Acme Arm",
		MainContent: "Factories worldwide",
	}

	result := Analyze(context.Background(), client, "Acme", fields)
	assert.Equal(t, "**Company Overview:**\nAcme builds robots.", result)

	require.Len(t, client.prompts, 1)
	prompt := client.prompts[0]
	assert.Contains(t, prompt, "Acme - Robots")
	assert.Contains(t, prompt, "Founded in a garage")
	assert.Contains(t, prompt, "Acme Arm")
	assert.Contains(t, prompt, "**Company Overview:**")
	assert.Contains(t, prompt, "**Recent Developments:**")
}

func TestAnalyze_AllEmptyFields(t *testing.T) {
	client := &fakeLLM{response: "analysis"}

	// All-empty input must not panic and still produces a prompt
	result := Analyze(context.Background(), client, "Acme", scrape.PageFields{})
	assert.Equal(t, "analysis", result)
}

func TestAnalyze_ModelFailureReturnsSentinelText(t *testing.T) {
	client := &fakeLLM{err: errors.New("quota exceeded")}

	result := Analyze(context.Background(), client, "Acme", scrape.PageFields{})
	assert.Contains(t, result, "Error occurred during analysis")
	assert.Contains(t, result, "quota exceeded")
}

func TestAnalyze_UsesDraftingOptions(t *testing.T) {
	client := &fakeLLM{response: "ok"}
	Analyze(context.Background(), client, "Acme", scrape.PageFields{})

	require.Len(t, client.opts, 1)
	require.NotNil(t, client.opts[0])
	assert.InDelta(t, 0.7, client.opts[0].Temperature, 0.001)
	assert.Equal(t, int32(1024), client.opts[0].MaxTokens)
}
