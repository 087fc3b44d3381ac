// Package compose drafts the outreach email with the hosted model.
package compose

import (
	"context"
	"fmt"
	"os"

	"github.com/jonathan/outreach-agent/internal/llm"
	"github.com/jonathan/outreach-agent/internal/prompts"
)

// Input carries everything the email prompt is filled with.
type Input struct {
	ResumeText    string
	CompanyInfo   string
	JobText       string
	EmailTemplate string
}

// Composer drafts emails. A custom prompt template file can override the
// built-in prompt; it uses the same {{.Key}} placeholders.
type Composer struct {
	client         llm.Client
	promptOverride string
}

// NewComposer creates a Composer using the built-in prompt template.
func NewComposer(client llm.Client) *Composer {
	return &Composer{client: client}
}

// NewComposerWithPromptFile creates a Composer whose prompt template is read
// from an external file.
func NewComposerWithPromptFile(client llm.Client, path string) (*Composer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read prompt template %s: %w", path, err)
	}
	return &Composer{client: client, promptOverride: string(data)}, nil
}

// Compose fills the prompt template and asks the model for the raw email
// text. The raw text still carries the SUBJECT: marker and possible model
// scaffolding; postprocess.Parse cleans it up. On model failure the result
// is empty and the error is returned for the caller to surface; the session
// is expected to continue.
func (c *Composer) Compose(ctx context.Context, input Input) (string, error) {
	template := c.promptOverride
	if template == "" {
		template = prompts.MustGet("email.json", "compose-email")
	}

	prompt := prompts.Format(template, map[string]string{
		"ResumeText":    input.ResumeText,
		"CompanyInfo":   input.CompanyInfo,
		"JobText":       input.JobText,
		"EmailTemplate": input.EmailTemplate,
	})

	system := prompts.MustGet("email.json", "compose-system")
	response, err := c.client.Generate(ctx, prompt, llm.TierStandard, llm.DraftingOptions(system))
	if err != nil {
		return "", fmt.Errorf("email generation failed: %w", err)
	}

	return response, nil
}
