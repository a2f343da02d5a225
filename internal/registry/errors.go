package registry

import (
	"errors"
	"fmt"
)

// DuplicateRegistrationError indicates a create/register call with a key that
// is already in use. The existing entry is left untouched.
type DuplicateRegistrationError struct {
	// Kind categorizes the registry ("command", "plugin", "handler").
	Kind string
	// Name is the key that was already registered.
	Name string
}

// Error implements the error interface.
func (e *DuplicateRegistrationError) Error() string {
	return fmt.Sprintf("%s %q already registered", e.Kind, e.Name)
}

// Is allows errors.Is() to work with wrapped errors.
func (e *DuplicateRegistrationError) Is(target error) bool {
	_, ok := target.(*DuplicateRegistrationError)
	return ok
}

// IsDuplicateRegistration checks if an error is a DuplicateRegistrationError
// using error unwrapping.
func IsDuplicateRegistration(err error) bool {
	var dupErr *DuplicateRegistrationError
	return errors.As(err, &dupErr)
}

// NotFoundError indicates a lookup for a key that is not registered.
type NotFoundError struct {
	// Kind categorizes the registry ("command", "session", "plugin", "handler").
	Kind string
	// Name is the key that was not found.
	Name string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.Name)
}

// Is allows errors.Is() to work with wrapped errors.
func (e *NotFoundError) Is(target error) bool {
	_, ok := target.(*NotFoundError)
	return ok
}

// IsNotFound checks if an error is a NotFoundError using error unwrapping.
func IsNotFound(err error) bool {
	var nfErr *NotFoundError
	return errors.As(err, &nfErr)
}

// HandlerExecutionError indicates a registered handler returned an error or
// panicked. The handler's own message is carried verbatim; the panic (if any)
// never propagates past ExecuteHandler.
type HandlerExecutionError struct {
	// Name is the handler that failed.
	Name string
	// Reason is the underlying failure.
	Reason error
}

// Error implements the error interface.
func (e *HandlerExecutionError) Error() string {
	return fmt.Sprintf("handler %q execution failed: %v", e.Name, e.Reason)
}

// Unwrap returns the underlying error.
func (e *HandlerExecutionError) Unwrap() error {
	return e.Reason
}

// Is allows errors.Is() to work with wrapped errors.
func (e *HandlerExecutionError) Is(target error) bool {
	_, ok := target.(*HandlerExecutionError)
	return ok
}

// IsHandlerExecution checks if an error is a HandlerExecutionError using
// error unwrapping.
func IsHandlerExecution(err error) bool {
	var execErr *HandlerExecutionError
	return errors.As(err, &execErr)
}
