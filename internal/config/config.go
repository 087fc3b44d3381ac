// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config is the CLI configuration, loadable from a JSON file. All fields are
// optional; missing values fall back to environment variables or CLI flags.
type Config struct {
	// Credentials
	APIKey            string `json:"api_key,omitempty"`             // Gemini API key
	SearchAPIKey      string `json:"search_api_key,omitempty"`      // Google Custom Search API key
	SearchCX          string `json:"search_cx,omitempty"`           // Custom Search engine ID
	GmailClientID     string `json:"gmail_client_id,omitempty"`     // OAuth client ID for sending
	GmailClientSecret string `json:"gmail_client_secret,omitempty"` // OAuth client secret
	GmailTokenPath    string `json:"gmail_token_path,omitempty"`    // Where the OAuth token is persisted

	// Paths
	Resume     string `json:"resume,omitempty"`      // Path to resume PDF
	Template   string `json:"template,omitempty"`    // Path to email template (.txt or .docx)
	PromptFile string `json:"prompt_file,omitempty"` // Custom email prompt template

	// Behavior
	ListenAddr string `json:"listen_addr,omitempty"` // Address for the web UI server
	UseBrowser bool   `json:"use_browser,omitempty"` // Use headless browser for SPA sites
	Verbose    bool   `json:"verbose,omitempty"`     // Print detailed debug information
}

// LoadConfig loads configuration from a JSON file.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// FromEnv fills empty credential fields from the environment. Values already
// present in the config win.
func (c *Config) FromEnv() {
	fill := func(field *string, key string) {
		if *field == "" {
			*field = os.Getenv(key)
		}
	}
	fill(&c.APIKey, "GEMINI_API_KEY")
	fill(&c.SearchAPIKey, "GOOGLE_SEARCH_API_KEY")
	fill(&c.SearchCX, "GOOGLE_SEARCH_CX")
	fill(&c.GmailClientID, "GMAIL_CLIENT_ID")
	fill(&c.GmailClientSecret, "GMAIL_CLIENT_SECRET")
	fill(&c.GmailTokenPath, "GMAIL_TOKEN_PATH")
}

// Validate checks that the configuration has valid values. Required fields
// are enforced later by the commands that need them.
func (c *Config) Validate() error {
	if c.Resume != "" {
		if _, err := os.Stat(c.Resume); os.IsNotExist(err) {
			return fmt.Errorf("config error: resume file not found: %s", c.Resume)
		}
	}
	if c.Template != "" {
		if _, err := os.Stat(c.Template); os.IsNotExist(err) {
			return fmt.Errorf("config error: template file not found: %s", c.Template)
		}
	}
	if c.PromptFile != "" {
		if _, err := os.Stat(c.PromptFile); os.IsNotExist(err) {
			return fmt.Errorf("config error: prompt file not found: %s", c.PromptFile)
		}
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty string fields filled from
// defaults. Used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.SearchAPIKey == "" {
		result.SearchAPIKey = defaults.SearchAPIKey
	}
	if result.SearchCX == "" {
		result.SearchCX = defaults.SearchCX
	}
	if result.GmailClientID == "" {
		result.GmailClientID = defaults.GmailClientID
	}
	if result.GmailClientSecret == "" {
		result.GmailClientSecret = defaults.GmailClientSecret
	}
	if result.GmailTokenPath == "" {
		result.GmailTokenPath = defaults.GmailTokenPath
	}
	if result.Resume == "" {
		result.Resume = defaults.Resume
	}
	if result.Template == "" {
		result.Template = defaults.Template
	}
	if result.PromptFile == "" {
		result.PromptFile = defaults.PromptFile
	}
	if result.ListenAddr == "" {
		result.ListenAddr = defaults.ListenAddr
	}

	// Bool fields: cannot distinguish unset from false, so CLI flags always win.

	return result
}
