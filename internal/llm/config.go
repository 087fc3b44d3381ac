// Package llm provides centralized LLM configuration and client abstractions.
package llm

// ModelTier represents the complexity/capability level of a model
type ModelTier string

const (
	// TierLite is for simple tasks: extraction, classification
	TierLite ModelTier = "lite"
	// TierStandard is for moderate generation: analysis, drafting
	TierStandard ModelTier = "standard"
)

// Provider represents an LLM provider
type Provider string

// Provider constants define supported LLM providers
const (
	// ProviderGemini is the Google Gemini provider
	ProviderGemini Provider = "gemini"
)

// Config holds the model configuration for the application
type Config struct {
	Provider Provider
	Models   map[ModelTier]string
}

// DefaultConfig returns the default configuration (currently Gemini)
func DefaultConfig() *Config {
	return &Config{
		Provider: ProviderGemini,
		Models: map[ModelTier]string{
			TierLite:     "gemini-2.5-flash-lite",
			TierStandard: "gemini-2.5-flash",
		},
	}
}

// GetModel returns the model name for a given tier
func (c *Config) GetModel(tier ModelTier) string {
	if model, ok := c.Models[tier]; ok {
		return model
	}
	if model, ok := c.Models[TierStandard]; ok {
		return model
	}
	return ""
}

// Options control a single generation request. Different pipeline stages use
// different sampling: founder extraction wants near-deterministic output while
// analysis and email drafting want fluent prose.
type Options struct {
	// System is an optional system instruction prepended to the conversation.
	System string
	// Temperature is the sampling temperature (0.0-1.0).
	Temperature float32
	// MaxTokens caps the generated output length.
	MaxTokens int32
}

// ExtractionOptions returns options biased toward deterministic extraction.
func ExtractionOptions(system string) *Options {
	return &Options{System: system, Temperature: 0.3, MaxTokens: 256}
}

// DraftingOptions returns options biased toward fluent, varied prose.
func DraftingOptions(system string) *Options {
	return &Options{System: system, Temperature: 0.7, MaxTokens: 1024}
}
