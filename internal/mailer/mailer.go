// Package mailer sends the finished outreach email through the Gmail API
// using an installed-app OAuth flow. The token lives in a local JSON file and
// is rewritten whenever a refresh produces a new access token.
package mailer

import (
	"context"
	"fmt"
	"log"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	gmail "google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"
)

// Sender sends mail as the authorized Gmail account.
type Sender struct {
	config    *oauth2.Config
	tokenPath string
	verbose   bool
}

// NewSender builds a Sender for an installed-app OAuth client. tokenPath is
// where the authorized token is persisted between runs.
func NewSender(clientID, clientSecret, tokenPath string, verbose bool) *Sender {
	return &Sender{
		config: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			Endpoint:     google.Endpoint,
			RedirectURL:  "urn:ietf:wg:oauth:2.0:oob",
			Scopes:       []string{gmail.GmailSendScope},
		},
		tokenPath: tokenPath,
		verbose:   verbose,
	}
}

// AuthURL returns the URL the user visits to grant send access.
func (s *Sender) AuthURL() string {
	return s.config.AuthCodeURL("state-token", oauth2.AccessTypeOffline)
}

// Exchange trades an authorization code for a token and persists it.
func (s *Sender) Exchange(ctx context.Context, code string) error {
	token, err := s.config.Exchange(ctx, code)
	if err != nil {
		return fmt.Errorf("authorization code exchange failed: %w", err)
	}
	return SaveToken(s.tokenPath, token)
}

// Authorized reports whether a persisted token exists.
func (s *Sender) Authorized() bool {
	_, err := LoadToken(s.tokenPath)
	return err == nil
}

// Send builds a multipart/alternative message and sends it as the authorized
// account. It returns the Gmail message ID. A refreshed token is written back
// to the token file before returning.
func (s *Sender) Send(ctx context.Context, to, subject, body string) (string, error) {
	token, err := LoadToken(s.tokenPath)
	if err != nil {
		return "", fmt.Errorf("gmail is not authorized: %w", err)
	}

	source := s.config.TokenSource(ctx, token)
	client := oauth2.NewClient(ctx, source)

	srv, err := gmail.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return "", fmt.Errorf("failed to create gmail service: %w", err)
	}

	if s.verbose {
		log.Printf("[VERBOSE] Sending email to %s with subject %q", to, subject)
	}

	msg := &gmail.Message{Raw: BuildMessage(to, subject, body)}
	sent, err := srv.Users.Messages.Send("me", msg).Do()
	if err != nil {
		return "", fmt.Errorf("failed to send email: %w", err)
	}

	// Persist a refreshed token so the next run skips the refresh round trip.
	if fresh, err := source.Token(); err == nil && fresh.AccessToken != token.AccessToken {
		if err := SaveToken(s.tokenPath, fresh); err != nil {
			log.Printf("Warning: failed to persist refreshed token: %v", err)
		}
	}

	return sent.Id, nil
}
