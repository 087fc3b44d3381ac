package server

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/outreach-agent/internal/compose"
	"github.com/jonathan/outreach-agent/internal/scrape"
	"github.com/jonathan/outreach-agent/internal/session"
)

//go:embed index.html
var indexHTML []byte

// Resolver finds a company's official website.
type Resolver interface {
	Resolve(ctx context.Context, companyName string) (string, error)
}

// Summarizer extracts the fixed page fields from a company website.
type Summarizer interface {
	ExtractFields(ctx context.Context, urlStr string) scrape.PageFields
}

// FounderFinder discovers founder names for a company.
type FounderFinder interface {
	Find(ctx context.Context, companyName string) []string
}

// Analyzer produces the narrative company analysis.
type Analyzer interface {
	Analyze(ctx context.Context, companyName string, fields scrape.PageFields) string
}

// Composer drafts the raw outreach email.
type Composer interface {
	Compose(ctx context.Context, input compose.Input) (string, error)
}

// Sender sends the finished email and returns a message ID.
type Sender interface {
	Send(ctx context.Context, to, subject, body string) (string, error)
	Authorized() bool
}

// Deps are the pipeline stages the server orchestrates.
type Deps struct {
	Resolver   Resolver
	Summarizer Summarizer
	Finder     FounderFinder
	Analyzer   Analyzer
	Composer   Composer
	Sender     Sender
}

// Config holds server configuration.
type Config struct {
	Addr    string
	Verbose bool
}

// Server is the HTTP server for the web form workflow.
type Server struct {
	httpServer *http.Server
	store      *session.Store
	deps       Deps
	validator  *validator.Validate
	verbose    bool
}

// New creates a server instance. Deps must be fully populated except Sender,
// which may be nil when sending is not configured.
func New(cfg Config, deps Deps) *Server {
	s := &Server{
		store:     session.NewStore(),
		deps:      deps,
		validator: validator.New(),
		verbose:   cfg.Verbose,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("POST /sessions", s.handleCreateSession)
	mux.HandleFunc("POST /sessions/{id}/research", s.handleResearch)
	mux.HandleFunc("POST /sessions/{id}/manual", s.handleManual)
	mux.HandleFunc("POST /sessions/{id}/compose", s.handleCompose)
	mux.HandleFunc("POST /sessions/{id}/send", s.handleSend)
	mux.HandleFunc("GET /sessions/{id}/export", s.handleExport)

	s.httpServer = &http.Server{
		Addr:         cfg.Addr,
		Handler:      s.withLogging(mux),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 300 * time.Second, // research and drafting are slow
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Handler exposes the routed handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start begins listening and blocks until an interrupt, then shuts down
// gracefully.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	log.Println("Server stopped")
	return nil
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(indexHTML)
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, err error) {
	s.jsonResponse(w, HTTPStatus(err), map[string]string{"error": err.Error()})
}

// validateStruct turns a validator failure into an ErrValidation on the
// first offending field.
func (s *Server) validateStruct(req any) error {
	err := s.validator.Struct(req)
	if err == nil {
		return nil
	}
	if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
		return &ErrValidation{Field: errs[0].Field(), Message: "failed " + errs[0].Tag() + " validation"}
	}
	return &ErrValidation{Field: "request", Message: err.Error()}
}
