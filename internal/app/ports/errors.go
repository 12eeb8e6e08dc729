package ports

import "errors"

var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict")
	// ErrNotReady signals a transient condition (collaborator still
	// loading); callers retry with backoff at the boundary.
	ErrNotReady = errors.New("not ready")
)
