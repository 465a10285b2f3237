package model

import (
	"errors"
	"fmt"
)

// Common errors used across the application
var (
	// Player errors
	ErrPlayerNotFound = errors.New("player not found")

	// Enemy errors
	ErrEnemyNotFound = errors.New("enemy not found")

	// Bulk-delete guard
	ErrConfirmationRequired = errors.New("delete all requires confirmation")
)

// ValidationError reports a field that violates its declared constraint.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
