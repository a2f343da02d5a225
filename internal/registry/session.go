package registry

import (
	"fmt"
	"time"

	"prism/pkg/logging"
)

// SessionRecord tracks a user session and the commands executed within it.
// Sessions are created active and stay in the registry after they end.
type SessionRecord struct {
	// SessionID is the generated unique registry key.
	SessionID string
	// UserID identifies the session owner; empty for anonymous sessions.
	UserID string
	// CommandsExecuted lists command names in execution order.
	CommandsExecuted []string
	// Active is true until EndSession is called.
	Active bool
	// StartedAt is when the session was created.
	StartedAt time.Time
	// LastActivity is updated on every session mutation.
	LastActivity time.Time
}

// clone returns a copy safe to hand to callers.
func (r *SessionRecord) clone() SessionRecord {
	out := *r
	out.CommandsExecuted = append([]string(nil), r.CommandsExecuted...)
	return out
}

// CreateSession starts a new session and returns a copy of its record.
// Session IDs combine the creation timestamp with a per-service counter, so
// creation always succeeds and IDs are collision-free by construction.
func (s *Service) CreateSession(userID string) *SessionRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	s.sessionCounter++
	id := fmt.Sprintf("session-%d-%d", now.Unix(), s.sessionCounter)

	record := &SessionRecord{
		SessionID:    id,
		UserID:       userID,
		Active:       true,
		StartedAt:    now,
		LastActivity: now,
	}
	s.sessions[id] = record

	logging.Debug("Registry", "Created session %s (user: %s)", id, userID)
	out := record.clone()
	return &out
}

// GetSession returns a copy of the named session record.
func (s *Service) GetSession(sessionID string) (*SessionRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, exists := s.sessions[sessionID]
	if !exists {
		return nil, &NotFoundError{Kind: "session", Name: sessionID}
	}
	out := record.clone()
	return &out, nil
}

// AddSessionCommand appends a command name to the session's execution history
// and refreshes its last-activity timestamp.
func (s *Service) AddSessionCommand(sessionID string, command string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, exists := s.sessions[sessionID]
	if !exists {
		return &NotFoundError{Kind: "session", Name: sessionID}
	}
	record.CommandsExecuted = append(record.CommandsExecuted, command)
	record.LastActivity = time.Now()
	return nil
}

// EndSession marks a session inactive. The record stays in the registry.
func (s *Service) EndSession(sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, exists := s.sessions[sessionID]
	if !exists {
		return &NotFoundError{Kind: "session", Name: sessionID}
	}
	record.Active = false
	record.LastActivity = time.Now()

	logging.Debug("Registry", "Ended session %s (%d commands executed)", sessionID, len(record.CommandsExecuted))
	return nil
}
