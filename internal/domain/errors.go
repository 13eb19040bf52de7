package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	ErrMsgNilItem = "item is nil"
)

// Common domain errors.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// ErrNilItem is returned when an update or ceiling lookup is asked to
	// work on a missing item. The caller must supply a valid item.
	ErrNilItem = errors.New(ErrMsgNilItem)
)
