package registry

import (
	"fmt"
	"time"

	"prism/pkg/logging"
)

// CommandType categorizes a registered command.
type CommandType string

const (
	CommandTypeSystem     CommandType = "system"
	CommandTypePipeline   CommandType = "pipeline"
	CommandTypePlugin     CommandType = "plugin"
	CommandTypeData       CommandType = "data"
	CommandTypeConfig     CommandType = "config"
	CommandTypeAuth       CommandType = "auth"
	CommandTypeMonitoring CommandType = "monitoring"
)

// CommandStatus represents the lifecycle state of a command. Transitions are
// caller-driven; the registry enforces no state machine.
type CommandStatus string

const (
	StatusPending   CommandStatus = "pending"
	StatusRunning   CommandStatus = "running"
	StatusCompleted CommandStatus = "completed"
	StatusFailed    CommandStatus = "failed"
	StatusCancelled CommandStatus = "cancelled"
)

// validStatuses is the closed set of accepted command statuses.
var validStatuses = map[CommandStatus]bool{
	StatusPending:   true,
	StatusRunning:   true,
	StatusCompleted: true,
	StatusFailed:    true,
	StatusCancelled: true,
}

// CommandRecord tracks a registered command. Records are never destroyed
// automatically; they live for the owning Service's lifetime.
type CommandRecord struct {
	// Name is the unique registry key.
	Name string
	// CommandLine is the command line the record describes.
	CommandLine string
	// Type categorizes the command.
	Type CommandType
	// Status is the caller-maintained lifecycle state.
	Status CommandStatus
	// CreatedAt is when the record was registered.
	CreatedAt time.Time
	// Metadata carries caller-supplied key/value annotations.
	Metadata map[string]interface{}
}

// clone returns a copy safe to hand to callers.
func (r *CommandRecord) clone() CommandRecord {
	out := *r
	if r.Metadata != nil {
		out.Metadata = make(map[string]interface{}, len(r.Metadata))
		for k, v := range r.Metadata {
			out.Metadata[k] = v
		}
	}
	return out
}

// CommandOption customizes a command record at creation time.
type CommandOption func(*CommandRecord)

// WithCommandType sets the command's type. The default is CommandTypeSystem.
func WithCommandType(t CommandType) CommandOption {
	return func(r *CommandRecord) {
		r.Type = t
	}
}

// WithCommandMetadata attaches a metadata entry to the command record.
func WithCommandMetadata(key string, value interface{}) CommandOption {
	return func(r *CommandRecord) {
		if r.Metadata == nil {
			r.Metadata = make(map[string]interface{})
		}
		r.Metadata[key] = value
	}
}

// CreateCommand registers a new command under a unique name. The record
// starts in StatusPending. Registering a name that already exists fails with
// a DuplicateRegistrationError and leaves the existing record untouched.
//
// The returned record is a copy; mutate command state through
// UpdateCommandStatus instead.
func (s *Service) CreateCommand(name string, commandLine string, opts ...CommandOption) (*CommandRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.commands[name]; exists {
		return nil, &DuplicateRegistrationError{Kind: "command", Name: name}
	}

	record := &CommandRecord{
		Name:        name,
		CommandLine: commandLine,
		Type:        CommandTypeSystem,
		Status:      StatusPending,
		CreatedAt:   time.Now(),
	}
	for _, opt := range opts {
		opt(record)
	}
	s.commands[name] = record

	logging.Debug("Registry", "Registered command %s (type: %s)", name, record.Type)
	out := record.clone()
	return &out, nil
}

// GetCommand returns a copy of the named command record.
func (s *Service) GetCommand(name string) (*CommandRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, exists := s.commands[name]
	if !exists {
		return nil, &NotFoundError{Kind: "command", Name: name}
	}
	out := record.clone()
	return &out, nil
}

// UpdateCommandStatus sets the status of a registered command. Any transition
// between valid statuses is accepted; sequencing is the caller's concern.
func (s *Service) UpdateCommandStatus(name string, status CommandStatus) error {
	if !validStatuses[status] {
		return fmt.Errorf("invalid command status %q", status)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	record, exists := s.commands[name]
	if !exists {
		return &NotFoundError{Kind: "command", Name: name}
	}
	record.Status = status

	logging.Debug("Registry", "Command %s status changed to %s", name, status)
	return nil
}
