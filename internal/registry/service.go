// Package registry provides in-memory bookkeeping for commands, sessions,
// plugins and handlers.
//
// A Service instance owns four independently-keyed maps with consistent
// duplicate-key rejection: registering an already-used name fails and leaves
// the existing entry untouched. Records live for the lifetime of the owning
// Service; nothing is persisted and nothing is evicted.
//
// The Service is constructed explicitly and passed to its consumers. There is
// no package-level singleton, so ownership of the maps is visible at every
// call site. All operations are protected by an internal mutex; concurrent
// readers are cheap, writers are serialized.
package registry

import (
	"sync"
)

// Service owns the four entity registries. The zero value is not usable;
// construct instances with New.
type Service struct {
	mu sync.RWMutex

	commands map[string]*CommandRecord
	sessions map[string]*SessionRecord
	plugins  map[string]*PluginRecord
	handlers map[string]HandlerFunc

	// sessionCounter disambiguates session IDs created within the same second.
	sessionCounter uint64
}

// New creates an empty Service.
func New() *Service {
	return &Service{
		commands: make(map[string]*CommandRecord),
		sessions: make(map[string]*SessionRecord),
		plugins:  make(map[string]*PluginRecord),
		handlers: make(map[string]HandlerFunc),
	}
}

// Commands returns a defensive copy of the command registry. Mutating the
// returned map or records does not affect the Service.
func (s *Service) Commands() map[string]CommandRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]CommandRecord, len(s.commands))
	for name, record := range s.commands {
		out[name] = record.clone()
	}
	return out
}

// Sessions returns a defensive copy of the session registry.
func (s *Service) Sessions() map[string]SessionRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]SessionRecord, len(s.sessions))
	for id, record := range s.sessions {
		out[id] = record.clone()
	}
	return out
}

// Plugins returns a defensive copy of the plugin registry.
func (s *Service) Plugins() map[string]PluginRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]PluginRecord, len(s.plugins))
	for name, record := range s.plugins {
		out[name] = *record
	}
	return out
}

// Handlers returns a copy of the handler registry. The callables themselves
// are shared; the map is not.
func (s *Service) Handlers() map[string]HandlerFunc {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]HandlerFunc, len(s.handlers))
	for name, h := range s.handlers {
		out[name] = h
	}
	return out
}
