package registry

import (
	"fmt"

	"github.com/google/uuid"

	"prism/pkg/logging"
)

// HandlerFunc is a named callable registered with the Service. Arguments are
// positional; the handler reports failure through its error return.
type HandlerFunc func(args ...interface{}) (interface{}, error)

// RegisterHandler registers a callable under a unique name. A duplicate name
// fails with a DuplicateRegistrationError and leaves the existing handler in
// place.
func (s *Service) RegisterHandler(name string, handler HandlerFunc) error {
	if handler == nil {
		return fmt.Errorf("handler for %q cannot be nil", name)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.handlers[name]; exists {
		return &DuplicateRegistrationError{Kind: "handler", Name: name}
	}
	s.handlers[name] = handler

	logging.Debug("Registry", "Registered handler %s", name)
	return nil
}

// ExecuteHandler invokes the named handler with the given arguments. An
// unregistered name fails with a NotFoundError. A handler that returns an
// error or panics surfaces as a HandlerExecutionError carrying the underlying
// message; the panic never reaches the caller.
func (s *Service) ExecuteHandler(name string, args ...interface{}) (result interface{}, err error) {
	s.mu.RLock()
	handler, exists := s.handlers[name]
	s.mu.RUnlock()

	if !exists {
		return nil, &NotFoundError{Kind: "handler", Name: name}
	}

	executionID := uuid.New().String()
	logging.Debug("Registry", "Executing handler %s (execution: %s)", name, executionID)

	defer func() {
		if r := recover(); r != nil {
			logging.Warn("Registry", "Handler %s panicked (execution: %s): %v", name, executionID, r)
			result = nil
			err = &HandlerExecutionError{Name: name, Reason: fmt.Errorf("%v", r)}
		}
	}()

	result, err = handler(args...)
	if err != nil {
		return nil, &HandlerExecutionError{Name: name, Reason: err}
	}
	return result, nil
}
