package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "gemini-2.5-flash-lite", cfg.GetModel(TierLite))
	assert.Equal(t, "gemini-2.5-flash", cfg.GetModel(TierStandard))
}

func TestGetModel_UnknownTierFallsBack(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, cfg.GetModel(TierStandard), cfg.GetModel(ModelTier("bogus")))
}

func TestExtractionOptions(t *testing.T) {
	opts := ExtractionOptions("be terse")
	assert.Equal(t, "be terse", opts.System)
	assert.InDelta(t, 0.3, float64(opts.Temperature), 0.001)
	assert.Equal(t, int32(256), opts.MaxTokens)
}

func TestDraftingOptions(t *testing.T) {
	opts := DraftingOptions("write well")
	assert.Equal(t, "write well", opts.System)
	assert.InDelta(t, 0.7, float64(opts.Temperature), 0.001)
	assert.Equal(t, int32(1024), opts.MaxTokens)
}
