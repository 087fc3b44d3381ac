package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jonathan/outreach-agent/internal/analysis"
	"github.com/jonathan/outreach-agent/internal/compose"
	"github.com/jonathan/outreach-agent/internal/config"
	"github.com/jonathan/outreach-agent/internal/discovery"
	"github.com/jonathan/outreach-agent/internal/founders"
	"github.com/jonathan/outreach-agent/internal/llm"
	"github.com/jonathan/outreach-agent/internal/mailer"
	"github.com/jonathan/outreach-agent/internal/scrape"
	"github.com/jonathan/outreach-agent/internal/search"
	"github.com/jonathan/outreach-agent/internal/server"
)

// defaultTokenPath is where the Gmail OAuth token lives unless overridden.
const defaultTokenPath = "gmail_token.json"

// loadConfig merges the optional config file with the environment.
func loadConfig(path string) (*config.Config, error) {
	cfg := &config.Config{}
	if path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	cfg.FromEnv()
	if cfg.GmailTokenPath == "" {
		cfg.GmailTokenPath = defaultTokenPath
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// buildClient creates the model client, requiring an API key.
func buildClient(ctx context.Context, cfg *config.Config) (llm.Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API key required: set GEMINI_API_KEY or api_key in the config file")
	}
	return llm.NewClient(ctx, llm.DefaultConfig(), cfg.APIKey)
}

// buildResearch wires the research pipeline. The primary searcher is the
// Custom Search API when configured, otherwise the DuckDuckGo HTML endpoint.
func buildResearch(ctx context.Context, cfg *config.Config, client llm.Client) (*discovery.Resolver, *scrape.Summarizer, *founders.Finder, error) {
	var primary search.Searcher
	if cfg.SearchAPIKey != "" && cfg.SearchCX != "" {
		cs, err := search.NewCustomSearch(ctx, cfg.SearchAPIKey, cfg.SearchCX)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("failed to create custom search client: %w", err)
		}
		primary = cs
	} else {
		primary = search.NewDuckDuckGo()
	}

	google := search.NewGoogleScrape()
	ddg := search.NewDuckDuckGo()

	resolver := discovery.NewResolver(primary, google, cfg.Verbose)
	summarizer := &scrape.Summarizer{UseBrowser: cfg.UseBrowser, Verbose: cfg.Verbose}
	finder := founders.NewFinder(client, google, ddg, cfg.Verbose)

	return resolver, summarizer, finder, nil
}

// buildComposer creates the email composer, honoring a prompt override file.
func buildComposer(cfg *config.Config, client llm.Client) (*compose.Composer, error) {
	if cfg.PromptFile != "" {
		return compose.NewComposerWithPromptFile(client, cfg.PromptFile)
	}
	return compose.NewComposer(client), nil
}

// buildSender creates the Gmail sender when OAuth credentials are configured.
func buildSender(cfg *config.Config) *mailer.Sender {
	if cfg.GmailClientID == "" || cfg.GmailClientSecret == "" {
		return nil
	}
	return mailer.NewSender(cfg.GmailClientID, cfg.GmailClientSecret, cfg.GmailTokenPath, cfg.Verbose)
}

// buildDeps assembles the full server dependency set.
func buildDeps(ctx context.Context, cfg *config.Config, client llm.Client) (server.Deps, error) {
	resolver, summarizer, finder, err := buildResearch(ctx, cfg, client)
	if err != nil {
		return server.Deps{}, err
	}
	composer, err := buildComposer(cfg, client)
	if err != nil {
		return server.Deps{}, err
	}

	deps := server.Deps{
		Resolver:   resolver,
		Summarizer: summarizer,
		Finder:     finder,
		Analyzer:   analysis.NewAnalyzer(client),
		Composer:   composer,
	}
	if sender := buildSender(cfg); sender != nil {
		deps.Sender = sender
	}
	return deps, nil
}

// readFileFlag reads an optional text-file flag, returning "" when unset.
func readFileFlag(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(data), nil
}
