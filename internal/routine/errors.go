package routine

import "errors"

// Domain-specific errors for the routine package.
var (
	ErrMissingOwner = errors.New("owner id is required")
	ErrTaskNotFound = errors.New("task not found")
)
