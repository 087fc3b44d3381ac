package server

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/jonathan/outreach-agent/internal/compose"
	"github.com/jonathan/outreach-agent/internal/ingestion"
	"github.com/jonathan/outreach-agent/internal/postprocess"
	"github.com/jonathan/outreach-agent/internal/scrape"
	"github.com/jonathan/outreach-agent/internal/session"
)

const maxUploadBytes = 32 << 20

// sessionResponse is the envelope for session-returning endpoints. Warnings
// carry degraded-but-not-fatal research outcomes.
type sessionResponse struct {
	Session  *session.Session `json:"session"`
	Warnings []string         `json:"warnings,omitempty"`
}

// handleCreateSession starts a session from a multipart form: company_name,
// a resume (PDF upload or resume_text field), an optional template upload
// and optional job_text.
func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		s.errorResponse(w, &ErrValidation{Field: "form", Message: "invalid multipart form"})
		return
	}

	resumeText := strings.TrimSpace(r.FormValue("resume_text"))
	if resumeText == "" {
		text, err := s.extractUpload(r, "resume", ingestion.ResumeText)
		if err != nil {
			s.errorResponse(w, err)
			return
		}
		resumeText = text
	}
	if resumeText == "" {
		s.errorResponse(w, &ErrValidation{Field: "resume", Message: "a resume PDF or resume_text is required"})
		return
	}

	templateText := ""
	if _, _, err := r.FormFile("template"); err == nil {
		text, err := s.extractUpload(r, "template", ingestion.TemplateText)
		if err != nil {
			s.errorResponse(w, err)
			return
		}
		templateText = text
	}

	sess := s.store.Create(strings.TrimSpace(r.FormValue("company_name")))
	sess, err := s.store.Update(sess.ID, func(sess *session.Session) {
		sess.ResumeText = resumeText
		sess.EmailTemplate = templateText
		sess.JobText = strings.TrimSpace(r.FormValue("job_text"))
	})
	if err != nil {
		s.errorResponse(w, err)
		return
	}

	s.jsonResponse(w, http.StatusCreated, sessionResponse{Session: sess})
}

// extractUpload copies the named upload to a temp file preserving its
// extension and runs extract on it.
func (s *Server) extractUpload(r *http.Request, field string, extract func(string) (string, error)) (string, error) {
	file, header, err := r.FormFile(field)
	if err != nil {
		return "", &ErrValidation{Field: field, Message: "file upload is missing"}
	}
	defer func() { _ = file.Close() }()

	tmp, err := os.CreateTemp("", "outreach-*"+filepath.Ext(header.Filename))
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := io.Copy(tmp, file); err != nil {
		_ = tmp.Close()
		return "", fmt.Errorf("failed to store upload: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("failed to store upload: %w", err)
	}

	text, err := extract(tmp.Name())
	if err != nil {
		return "", &ErrValidation{Field: field, Message: err.Error()}
	}
	return text, nil
}

// handleResearch runs the automated pipeline: resolve website, extract page
// fields, analyze, find founders. Failures downstream of input validation
// degrade to warnings instead of aborting the session.
func (s *Server) handleResearch(w http.ResponseWriter, r *http.Request) {
	sess, err := s.store.Get(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, &ErrSessionNotFound{ID: r.PathValue("id")})
		return
	}
	if sess.CompanyName == "" {
		s.errorResponse(w, &ErrValidation{Field: "company_name", Message: "research requires a company name"})
		return
	}

	ctx := r.Context()
	var warnings []string

	websiteURL, err := s.deps.Resolver.Resolve(ctx, sess.CompanyName)
	if err != nil {
		warnings = append(warnings, fmt.Sprintf("no website found for %s", sess.CompanyName))
	}

	var pageFields scrape.PageFields
	if websiteURL != "" {
		pageFields = s.deps.Summarizer.ExtractFields(ctx, websiteURL)
		if pageFields.Empty() {
			warnings = append(warnings, "website content could not be extracted")
		}
	}

	analysisText := s.deps.Analyzer.Analyze(ctx, sess.CompanyName, pageFields)
	founderNames := s.deps.Finder.Find(ctx, sess.CompanyName)
	if len(founderNames) == 0 {
		warnings = append(warnings, "no founders identified")
	}

	sess, err = s.store.Update(sess.ID, func(sess *session.Session) {
		sess.Mode = session.ModeResearch
		sess.WebsiteURL = websiteURL
		sess.PageFields = pageFields
		sess.Analysis = analysisText
		sess.Founders = founderNames
	})
	if err != nil {
		s.errorResponse(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, sessionResponse{Session: sess, Warnings: warnings})
}

// ManualRequest supplies company information directly instead of researching.
type ManualRequest struct {
	CompanyName string `json:"company_name"`
	JobText     string `json:"job_text" validate:"required"`
}

// handleManual switches the session to manual mode: the pasted job
// description doubles as the company information for drafting.
func (s *Server) handleManual(w http.ResponseWriter, r *http.Request) {
	sess, err := s.store.Get(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, &ErrSessionNotFound{ID: r.PathValue("id")})
		return
	}

	var req ManualRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, &ErrValidation{Field: "body", Message: "invalid JSON body"})
		return
	}
	if err := s.validateStruct(req); err != nil {
		s.errorResponse(w, err)
		return
	}

	sess, err = s.store.Update(sess.ID, func(sess *session.Session) {
		sess.Mode = session.ModeManual
		if req.CompanyName != "" {
			sess.CompanyName = req.CompanyName
		}
		sess.JobText = req.JobText
		sess.Analysis = req.JobText
	})
	if err != nil {
		s.errorResponse(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, sessionResponse{Session: sess})
}

// ComposeRequest optionally overrides the stored job text or template for
// this draft.
type ComposeRequest struct {
	JobText       string `json:"job_text"`
	EmailTemplate string `json:"email_template"`
}

// handleCompose drafts the email from the session state and parses it into
// subject and body.
func (s *Server) handleCompose(w http.ResponseWriter, r *http.Request) {
	sess, err := s.store.Get(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, &ErrSessionNotFound{ID: r.PathValue("id")})
		return
	}

	var req ComposeRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			s.errorResponse(w, &ErrValidation{Field: "body", Message: "invalid JSON body"})
			return
		}
	}

	if sess.Analysis == "" {
		s.errorResponse(w, &ErrValidation{Field: "session", Message: "run research or manual before composing"})
		return
	}

	input := compose.Input{
		ResumeText:    sess.ResumeText,
		CompanyInfo:   sess.Analysis,
		JobText:       sess.JobText,
		EmailTemplate: sess.EmailTemplate,
	}
	if req.JobText != "" {
		input.JobText = req.JobText
	}
	if req.EmailTemplate != "" {
		input.EmailTemplate = req.EmailTemplate
	}

	raw, err := s.deps.Composer.Compose(r.Context(), input)
	if err != nil {
		s.errorResponse(w, err)
		return
	}

	parsed := postprocess.Parse(raw, sess.CompanyName)

	sess, err = s.store.Update(sess.ID, func(sess *session.Session) {
		if req.JobText != "" {
			sess.JobText = req.JobText
		}
		if req.EmailTemplate != "" {
			sess.EmailTemplate = req.EmailTemplate
		}
		sess.RawEmail = raw
		sess.Email = parsed
	})
	if err != nil {
		s.errorResponse(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, sessionResponse{Session: sess})
}

// SendRequest addresses the email. Subject and body default to the parsed
// draft but can be edited before sending.
type SendRequest struct {
	To      string `json:"to" validate:"required,email"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// handleSend validates the recipient before any network activity, then sends
// via the configured sender.
func (s *Server) handleSend(w http.ResponseWriter, r *http.Request) {
	sess, err := s.store.Get(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, &ErrSessionNotFound{ID: r.PathValue("id")})
		return
	}

	var req SendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, &ErrValidation{Field: "body", Message: "invalid JSON body"})
		return
	}
	if err := s.validateStruct(req); err != nil {
		s.errorResponse(w, err)
		return
	}

	if s.deps.Sender == nil || !s.deps.Sender.Authorized() {
		s.errorResponse(w, &ErrNotAuthorized{})
		return
	}

	subject := req.Subject
	if subject == "" {
		subject = sess.Email.Subject
	}
	body := req.Body
	if body == "" {
		body = sess.Email.Body
	}
	if body == "" {
		s.errorResponse(w, &ErrValidation{Field: "body", Message: "nothing to send: compose an email first"})
		return
	}

	id, err := s.deps.Sender.Send(r.Context(), req.To, subject, body)
	if err != nil {
		s.errorResponse(w, err)
		return
	}

	if s.verbose {
		log.Printf("[VERBOSE] Sent message %s for session %s", id, sess.ID)
	}

	sess, err = s.store.Update(sess.ID, func(sess *session.Session) {
		sess.Recipient = req.To
		sess.Email.Subject = subject
		sess.Email.Body = body
		sess.SentID = id
	})
	if err != nil {
		s.errorResponse(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, sessionResponse{Session: sess})
}

// handleExport downloads the drafted email as plain text.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	sess, err := s.store.Get(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, &ErrSessionNotFound{ID: r.PathValue("id")})
		return
	}
	if sess.Email.Body == "" {
		s.errorResponse(w, &ErrValidation{Field: "session", Message: "nothing to export: compose an email first"})
		return
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Subject: %s\n", sess.Email.Subject)
	if sess.Recipient != "" {
		fmt.Fprintf(&b, "To: %s\n", sess.Recipient)
	}
	b.WriteString("\n")
	b.WriteString(sess.Email.Body)
	b.WriteString("\n")

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="outreach_email.txt"`)
	_, _ = w.Write([]byte(b.String()))
}
