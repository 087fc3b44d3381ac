package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var authorizeConfigPath string

var authorizeCmd = &cobra.Command{
	Use:   "authorize",
	Short: "Authorize Gmail sending",
	Long:  "Runs the installed-app OAuth flow: prints a consent URL, reads the authorization code, and persists the resulting token for the send command and the web server.",
	RunE:  runAuthorize,
}

func init() {
	authorizeCmd.Flags().StringVar(&authorizeConfigPath, "config", "", "Path to JSON config file")
	rootCmd.AddCommand(authorizeCmd)
}

func runAuthorize(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig(authorizeConfigPath)
	if err != nil {
		return err
	}

	sender := buildSender(cfg)
	if sender == nil {
		return fmt.Errorf("gmail credentials required: set GMAIL_CLIENT_ID and GMAIL_CLIENT_SECRET")
	}

	fmt.Println("Open this URL in your browser and approve access:")
	fmt.Println()
	fmt.Println("  " + sender.AuthURL())
	fmt.Println()
	fmt.Print("Paste the authorization code here: ")

	reader := bufio.NewReader(os.Stdin)
	code, err := reader.ReadString('\n')
	if err != nil {
		return fmt.Errorf("failed to read authorization code: %w", err)
	}
	code = strings.TrimSpace(code)
	if code == "" {
		return fmt.Errorf("authorization code is empty")
	}

	if err := sender.Exchange(context.Background(), code); err != nil {
		return err
	}

	fmt.Printf("Authorization complete. Token saved to %s\n", cfg.GmailTokenPath)
	return nil
}
