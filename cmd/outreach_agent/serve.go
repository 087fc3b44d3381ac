package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/outreach-agent/internal/server"
)

var (
	serveAddr       string
	serveConfigPath string
	serveUseBrowser bool
	serveVerbose    bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web form server",
	Long:  `Start an HTTP server that exposes the browser form and the session endpoints for researching, drafting and sending outreach emails.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "Address to listen on")
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to JSON config file")
	serveCmd.Flags().BoolVar(&serveUseBrowser, "use-browser", false, "Use a headless browser for script-rendered sites")
	serveCmd.Flags().BoolVar(&serveVerbose, "verbose", false, "Print detailed debug information")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig(serveConfigPath)
	if err != nil {
		return err
	}
	if serveUseBrowser {
		cfg.UseBrowser = true
	}
	if serveVerbose {
		cfg.Verbose = true
	}
	if serveAddr != "" {
		cfg.ListenAddr = serveAddr
	}

	ctx := context.Background()
	client, err := buildClient(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	deps, err := buildDeps(ctx, cfg, client)
	if err != nil {
		return fmt.Errorf("failed to build dependencies: %w", err)
	}

	srv := server.New(server.Config{Addr: cfg.ListenAddr, Verbose: cfg.Verbose}, deps)
	return srv.Start()
}
