// internal/store/errors.go
package store

import "errors"

// Error taxonomy shared by the store and the services built on it. Wrap
// with fmt.Errorf("...: %w") and test with errors.Is.
var (
	// ErrRead means a document is missing or is not valid JSON.
	ErrRead = errors.New("document read failed")
	// ErrWrite means the document could not be persisted.
	ErrWrite = errors.New("document write failed")
	// ErrNotFound means the referenced entity, or the whole document, does not exist.
	ErrNotFound = errors.New("not found")
	// ErrValidation means required input was missing or blank.
	ErrValidation = errors.New("validation failed")
	// ErrAuthUnavailable means the credential document could not be read.
	ErrAuthUnavailable = errors.New("credential store unavailable")
)
