package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/outreach-agent/internal/compose"
	"github.com/jonathan/outreach-agent/internal/ingestion"
	"github.com/jonathan/outreach-agent/internal/observability"
	"github.com/jonathan/outreach-agent/internal/postprocess"
)

var (
	composeResume     string
	composeCompany    string
	composeInfoFile   string
	composeJobFile    string
	composeTemplate   string
	composeConfigPath string
	composeOut        string
	composeVerbose    bool
)

var composeCmd = &cobra.Command{
	Use:   "compose",
	Short: "Draft an outreach email",
	Long:  "Drafts a personalized cold outreach email from a resume PDF and company information, then cleans it into a subject and body.",
	RunE:  runCompose,
}

func init() {
	composeCmd.Flags().StringVarP(&composeResume, "resume", "r", "", "Path to resume PDF (required)")
	composeCmd.Flags().StringVarP(&composeCompany, "company", "c", "", "Company name, used for the fallback subject")
	composeCmd.Flags().StringVar(&composeInfoFile, "info", "", "Text file with company information (required)")
	composeCmd.Flags().StringVar(&composeJobFile, "job", "", "Text file with the job description")
	composeCmd.Flags().StringVar(&composeTemplate, "template", "", "Email template file (.txt or .docx)")
	composeCmd.Flags().StringVar(&composeConfigPath, "config", "", "Path to JSON config file")
	composeCmd.Flags().StringVarP(&composeOut, "out", "o", "", "Output file (default: stdout)")
	composeCmd.Flags().BoolVar(&composeVerbose, "verbose", false, "Print detailed debug information")

	if err := composeCmd.MarkFlagRequired("resume"); err != nil {
		panic(fmt.Sprintf("failed to mark resume flag as required: %v", err))
	}
	if err := composeCmd.MarkFlagRequired("info"); err != nil {
		panic(fmt.Sprintf("failed to mark info flag as required: %v", err))
	}

	rootCmd.AddCommand(composeCmd)
}

func runCompose(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig(composeConfigPath)
	if err != nil {
		return err
	}
	if composeVerbose {
		cfg.Verbose = true
	}

	resumeText, err := ingestion.ResumeText(composeResume)
	if err != nil {
		return err
	}

	companyInfo, err := readFileFlag(composeInfoFile)
	if err != nil {
		return err
	}
	jobText, err := readFileFlag(composeJobFile)
	if err != nil {
		return err
	}

	templateText := ""
	if composeTemplate != "" {
		templateText, err = ingestion.TemplateText(composeTemplate)
		if err != nil {
			return err
		}
	}

	ctx := context.Background()
	client, err := buildClient(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	composer, err := buildComposer(cfg, client)
	if err != nil {
		return err
	}

	raw, err := composer.Compose(ctx, compose.Input{
		ResumeText:    resumeText,
		CompanyInfo:   companyInfo,
		JobText:       jobText,
		EmailTemplate: templateText,
	})
	if err != nil {
		return err
	}

	email := postprocess.Parse(raw, composeCompany)
	if cfg.Verbose {
		observability.NewPrinter(os.Stderr).PrintEmail(email.Subject, email.Body)
	}
	output := fmt.Sprintf("Subject: %s\n\n%s\n", email.Subject, email.Body)

	if composeOut == "" {
		fmt.Print(output)
		return nil
	}
	if err := os.WriteFile(composeOut, []byte(output), 0644); err != nil {
		return fmt.Errorf("failed to write email file %s: %w", composeOut, err)
	}
	fmt.Printf("Email written to %s\n", composeOut)
	return nil
}
