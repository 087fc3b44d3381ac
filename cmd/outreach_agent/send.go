package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var (
	sendTo         string
	sendSubject    string
	sendBodyFile   string
	sendConfigPath string
	sendVerbose    bool
)

var sendCmd = &cobra.Command{
	Use:   "send",
	Short: "Send a drafted email via Gmail",
	Long:  "Sends an email through the authorized Gmail account. The body file may start with a \"Subject: ...\" line, which is used unless --subject is given.",
	RunE:  runSend,
}

func init() {
	sendCmd.Flags().StringVar(&sendTo, "to", "", "Recipient email address (required)")
	sendCmd.Flags().StringVar(&sendSubject, "subject", "", "Email subject (overrides a Subject: line in the body file)")
	sendCmd.Flags().StringVar(&sendBodyFile, "body", "", "Text file with the email body (required)")
	sendCmd.Flags().StringVar(&sendConfigPath, "config", "", "Path to JSON config file")
	sendCmd.Flags().BoolVar(&sendVerbose, "verbose", false, "Print detailed debug information")

	if err := sendCmd.MarkFlagRequired("to"); err != nil {
		panic(fmt.Sprintf("failed to mark to flag as required: %v", err))
	}
	if err := sendCmd.MarkFlagRequired("body"); err != nil {
		panic(fmt.Sprintf("failed to mark body flag as required: %v", err))
	}

	rootCmd.AddCommand(sendCmd)
}

func runSend(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig(sendConfigPath)
	if err != nil {
		return err
	}
	if sendVerbose {
		cfg.Verbose = true
	}

	sender := buildSender(cfg)
	if sender == nil {
		return fmt.Errorf("gmail credentials required: set GMAIL_CLIENT_ID and GMAIL_CLIENT_SECRET")
	}
	if !sender.Authorized() {
		return fmt.Errorf("gmail sending is not authorized: run the authorize command first")
	}

	content, err := readFileFlag(sendBodyFile)
	if err != nil {
		return err
	}

	subject, body := splitSubjectHeader(content)
	if sendSubject != "" {
		subject = sendSubject
	}
	if subject == "" {
		return fmt.Errorf("no subject: pass --subject or start the body file with a Subject: line")
	}
	if strings.TrimSpace(body) == "" {
		return fmt.Errorf("email body is empty")
	}

	id, err := sender.Send(context.Background(), sendTo, subject, strings.TrimSpace(body))
	if err != nil {
		return err
	}

	fmt.Printf("Sent message %s to %s\n", id, sendTo)
	return nil
}

// splitSubjectHeader peels off a leading "Subject: ..." line when present.
func splitSubjectHeader(content string) (string, string) {
	trimmed := strings.TrimSpace(content)
	if !strings.HasPrefix(trimmed, "Subject:") {
		return "", trimmed
	}
	line, rest, _ := strings.Cut(trimmed, "\n")
	return strings.TrimSpace(strings.TrimPrefix(line, "Subject:")), strings.TrimSpace(rest)
}
