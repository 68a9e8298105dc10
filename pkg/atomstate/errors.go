package atomstate

import "fmt"

// ListenerError describes one listener failure during notification dispatch.
// It is the concrete type delivered to an atom's ErrorHandler.
type ListenerError struct {
	// Atom is the name of the atom whose notification failed.
	Atom string

	// ListenerID identifies the failing registration.
	ListenerID uint64

	// Err is the error returned by the listener, or the wrapped panic value
	// if the listener panicked.
	Err error
}

// Error implements the error interface.
func (e *ListenerError) Error() string {
	return fmt.Sprintf("atom %s: listener %d failed: %v", e.Atom, e.ListenerID, e.Err)
}

// Unwrap returns the underlying listener error.
func (e *ListenerError) Unwrap() error {
	return e.Err
}
