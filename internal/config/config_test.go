package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	content := `{
		"api_key": "test-key",
		"search_cx": "engine-id",
		"gmail_token_path": "/tmp/token.json",
		"listen_addr": ":9000",
		"verbose": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "test-key", cfg.APIKey)
	assert.Equal(t, "engine-id", cfg.SearchCX)
	assert.Equal(t, "/tmp/token.json", cfg.GmailTokenPath)
	assert.Equal(t, ":9000", cfg.ListenAddr)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(`{ invalid json }`), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestFromEnv(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "env-key")
	t.Setenv("GOOGLE_SEARCH_CX", "env-cx")

	cfg := &Config{APIKey: "explicit"}
	cfg.FromEnv()

	// Explicit value wins; empty fields come from the environment.
	assert.Equal(t, "explicit", cfg.APIKey)
	assert.Equal(t, "env-cx", cfg.SearchCX)
}

func TestValidate_MissingResume(t *testing.T) {
	cfg := &Config{Resume: "/nonexistent/resume.pdf"}
	err := cfg.Validate()
	assert.ErrorContains(t, err, "resume file not found")
}

func TestValidate_ExistingPaths(t *testing.T) {
	dir := t.TempDir()
	resume := filepath.Join(dir, "resume.pdf")
	require.NoError(t, os.WriteFile(resume, []byte("%PDF"), 0644))

	cfg := &Config{Resume: resume}
	assert.NoError(t, cfg.Validate())
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{APIKey: "mine", ListenAddr: ""}
	merged := cfg.MergeWithDefaults(Config{APIKey: "default", ListenAddr: ":8080", SearchCX: "cx"})

	assert.Equal(t, "mine", merged.APIKey)
	assert.Equal(t, ":8080", merged.ListenAddr)
	assert.Equal(t, "cx", merged.SearchCX)
}
