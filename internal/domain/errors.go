package domain

import (
	"errors"
	"fmt"
)

var (
	// Lookup errors. Callers treat these as soft failures: the operation did
	// nothing.
	ErrProjectNotFound      = errors.New("project not found")
	ErrMilestoneNotFound    = errors.New("milestone not found")
	ErrApplicationNotFound  = errors.New("application not found")
	ErrCandidateNotFound    = errors.New("candidate not found")
	ErrOrganizationNotFound = errors.New("organization not found")
	ErrNotificationNotFound = errors.New("notification not found")

	// Transition errors.
	ErrMilestoneNotInProgress = errors.New("milestone is not in progress")
	ErrMilestoneNotSubmitted  = errors.New("milestone has not been submitted")
	ErrEscrowAlreadyLocked    = errors.New("project already has locked escrow")

	// Validation errors.
	ErrFeedbackTooShort = errors.New("feedback comment too short")
	ErrInvalidAmount    = errors.New("invalid amount")
)

// IsNotFound reports whether err is one of the lookup errors.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrProjectNotFound) ||
		errors.Is(err, ErrMilestoneNotFound) ||
		errors.Is(err, ErrApplicationNotFound) ||
		errors.Is(err, ErrCandidateNotFound) ||
		errors.Is(err, ErrOrganizationNotFound) ||
		errors.Is(err, ErrNotificationNotFound)
}

// ValidationError is a rejected user action. It is returned before any state
// is touched.
type ValidationError struct {
	Field  string
	Reason string
	Err    error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// IsValidation reports whether err is a *ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
