package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Context errors
	ErrMsgValidation = "invalid situational context"

	// Rule catalog errors
	ErrMsgInvalidRules  = "invalid reward rules"
	ErrMsgTableNotFound = "reward table not found"
	ErrMsgUnknownTier   = "unknown quality tier"
	ErrMsgUnknownFlag   = "unknown context flag"
	ErrMsgUnknownGate   = "unknown gating predicate"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrValidation    = errors.New(ErrMsgValidation)
	ErrInvalidRules  = errors.New(ErrMsgInvalidRules)
	ErrTableNotFound = errors.New(ErrMsgTableNotFound)
	ErrUnknownTier   = errors.New(ErrMsgUnknownTier)
	ErrUnknownFlag   = errors.New(ErrMsgUnknownFlag)
	ErrUnknownGate   = errors.New(ErrMsgUnknownGate)
)

// ValidationError is returned when a situational context is built without its
// mandatory fields. It matches ErrValidation with errors.Is.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: missing %s", ErrMsgValidation, strings.Join(e.Missing, ", "))
}

// Is reports whether target is ErrValidation.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
