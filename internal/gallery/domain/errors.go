package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotConfigured is returned by every data operation when the
	// required database/storage settings were absent at startup.
	ErrNotConfigured = errors.New("storage backend is not configured")

	// ErrNotFound means the requested project row does not exist.
	ErrNotFound = errors.New("project not found")

	// ErrSchemaMissing means an expected table or bucket is absent on the
	// remote side (database schema never applied, bucket never created).
	ErrSchemaMissing = errors.New("required table or bucket does not exist")

	// ErrPermission means the remote side rejected our credentials.
	ErrPermission = errors.New("credentials rejected by storage backend")
)

// CleanupFailedError is returned when a multi-step create failed and the
// compensating delete failed too, leaving an orphaned project row and
// possibly orphaned stored objects behind. Cause is the failure that
// aborted the create; CleanupErr is why the compensation did not land.
type CleanupFailedError struct {
	ProjectID  string
	Cause      error
	CleanupErr error
}

func (e *CleanupFailedError) Error() string {
	return fmt.Sprintf("create failed and cleanup of project %s failed: %v (cleanup: %v)",
		e.ProjectID, e.Cause, e.CleanupErr)
}

func (e *CleanupFailedError) Unwrap() error { return e.Cause }
