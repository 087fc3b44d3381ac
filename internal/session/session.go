// Package session holds in-memory workflow state. Each session tracks one
// company from research through drafting to sending; nothing is persisted
// across restarts.
package session

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/outreach-agent/internal/postprocess"
	"github.com/jonathan/outreach-agent/internal/scrape"
)

// Mode records how the company information was produced.
type Mode string

const (
	// ModeResearch means the analysis came from the automated pipeline.
	ModeResearch Mode = "research"
	// ModeManual means the user supplied the company description directly.
	ModeManual Mode = "manual"
)

// Session is the state of one outreach workflow.
type Session struct {
	ID          string            `json:"id"`
	CompanyName string            `json:"company_name"`
	WebsiteURL  string            `json:"website_url,omitempty"`
	PageFields  scrape.PageFields `json:"page_fields,omitempty"`
	Analysis    string            `json:"analysis,omitempty"`
	Founders    []string          `json:"founders,omitempty"`
	Mode        Mode              `json:"mode"`

	JobText       string `json:"job_text,omitempty"`
	ResumeText    string `json:"resume_text,omitempty"`
	EmailTemplate string `json:"email_template,omitempty"`

	RawEmail  string            `json:"raw_email,omitempty"`
	Email     postprocess.Email `json:"email"`
	Recipient string            `json:"recipient,omitempty"`
	SentID    string            `json:"sent_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Store is a mutex-guarded in-memory session map.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{sessions: make(map[string]*Session)}
}

// Create registers a new session for a company and returns a copy.
func (s *Store) Create(companyName string) *Session {
	now := time.Now().UTC()
	sess := &Session{
		ID:          uuid.NewString(),
		CompanyName: companyName,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()

	copied := *sess
	return &copied
}

// Get returns a copy of the session with the given ID.
func (s *Store) Get(id string) (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, fmt.Errorf("session %s not found", id)
	}
	copied := *sess
	return &copied, nil
}

// Update applies fn to the stored session under the lock and returns a copy
// of the result.
func (s *Store) Update(id string, fn func(*Session)) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, fmt.Errorf("session %s not found", id)
	}
	fn(sess)
	sess.UpdatedAt = time.Now().UTC()

	copied := *sess
	return &copied, nil
}

// Delete removes a session. Deleting an unknown ID is a no-op.
func (s *Store) Delete(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}

// Len reports the number of live sessions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
