package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/outreach-agent/internal/analysis"
	"github.com/jonathan/outreach-agent/internal/observability"
	"github.com/jonathan/outreach-agent/internal/scrape"
)

var (
	researchCompany    string
	researchConfigPath string
	researchOut        string
	researchUseBrowser bool
	researchVerbose    bool
)

// researchResult is the JSON shape written by the research command.
type researchResult struct {
	CompanyName string            `json:"company_name"`
	WebsiteURL  string            `json:"website_url,omitempty"`
	PageFields  scrape.PageFields `json:"page_fields"`
	Analysis    string            `json:"analysis"`
	Founders    []string          `json:"founders"`
}

var researchCmd = &cobra.Command{
	Use:   "research",
	Short: "Research a company",
	Long:  "Finds the company website, extracts its key page content, produces a narrative analysis, and identifies founders. Writes the result as JSON.",
	RunE:  runResearch,
}

func init() {
	researchCmd.Flags().StringVarP(&researchCompany, "company", "c", "", "Company name (required)")
	researchCmd.Flags().StringVar(&researchConfigPath, "config", "", "Path to JSON config file")
	researchCmd.Flags().StringVarP(&researchOut, "out", "o", "", "Output file (default: stdout)")
	researchCmd.Flags().BoolVar(&researchUseBrowser, "use-browser", false, "Use a headless browser for script-rendered sites")
	researchCmd.Flags().BoolVar(&researchVerbose, "verbose", false, "Print detailed debug information")

	if err := researchCmd.MarkFlagRequired("company"); err != nil {
		panic(fmt.Sprintf("failed to mark company flag as required: %v", err))
	}

	rootCmd.AddCommand(researchCmd)
}

func runResearch(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig(researchConfigPath)
	if err != nil {
		return err
	}
	if researchUseBrowser {
		cfg.UseBrowser = true
	}
	if researchVerbose {
		cfg.Verbose = true
	}

	ctx := context.Background()
	client, err := buildClient(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	resolver, summarizer, finder, err := buildResearch(ctx, cfg, client)
	if err != nil {
		return err
	}

	result := researchResult{CompanyName: researchCompany, Founders: []string{}}

	websiteURL, err := resolver.Resolve(ctx, researchCompany)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: no website found for %s\n", researchCompany)
	} else {
		result.WebsiteURL = websiteURL
		result.PageFields = summarizer.ExtractFields(ctx, websiteURL)
	}

	result.Analysis = analysis.Analyze(ctx, client, researchCompany, result.PageFields)
	if names := finder.Find(ctx, researchCompany); names != nil {
		result.Founders = names
	}

	if cfg.Verbose {
		observability.NewPrinter(os.Stderr).PrintResearch(researchCompany, result.WebsiteURL, result.PageFields, result.Founders)
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal research result: %w", err)
	}

	if researchOut == "" {
		fmt.Println(string(out))
		return nil
	}
	if err := os.WriteFile(researchOut, out, 0644); err != nil {
		return fmt.Errorf("failed to write result file %s: %w", researchOut, err)
	}
	fmt.Printf("Research result written to %s\n", researchOut)
	return nil
}
