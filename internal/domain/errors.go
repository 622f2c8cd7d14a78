package domain

import (
	"errors"
	"fmt"
	"time"
)

// Sentinel errors shared across services and repositories.
var (
	// ErrNotFound indicates the requested record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrAlreadyPending indicates a submit on an article that is already
	// pending review. It is a distinct error, not a silent success.
	ErrAlreadyPending = errors.New("article is already pending review")

	// ErrConcurrencyConflict indicates the optimistic status precondition
	// failed: another actor transitioned the record first. Callers should
	// refetch before deciding whether to retry.
	ErrConcurrencyConflict = errors.New("article was modified by another actor")

	// ErrStepUpRequired indicates a privileged action was attempted without
	// a valid step-up verification window.
	ErrStepUpRequired = errors.New("step-up verification required")

	// ErrInvalidCredentials indicates a failed login.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrAccountDisabled indicates the profile is deactivated.
	ErrAccountDisabled = errors.New("account is deactivated")

	// ErrChallengeExpired indicates the step-up code timed out; a new code
	// must be requested. Expiry does not consume an attempt.
	ErrChallengeExpired = errors.New("verification code expired, request a new one")

	// ErrCodeMismatch indicates a wrong step-up code; one attempt consumed.
	ErrCodeMismatch = errors.New("verification code is incorrect")
)

// ValidationError reports a failed input precondition. No mutation is
// attempted when one is returned.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// PermissionError reports a denied action, naming the precondition that
// failed so the refusal is never a generic failure.
type PermissionError struct {
	Role   Role
	Action Action
	Reason string
}

func (e *PermissionError) Error() string {
	return fmt.Sprintf("permission denied: %s cannot %s: %s", e.Role, e.Action, e.Reason)
}

// TransitionError reports a workflow transition not present in the
// transition table for the article's current status. It carries both states
// so the client can resynchronize.
type TransitionError struct {
	ArticleID string
	From      Status
	Trigger   Trigger
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("invalid transition: cannot %s article %s in status %q", e.Trigger, e.ArticleID, e.From)
}

// CollaboratorError reports a failed or timed-out call to the content store
// or identity provider.
type CollaboratorError struct {
	Op  string
	Err error
}

func (e *CollaboratorError) Error() string {
	return fmt.Sprintf("%s: collaborator unavailable: %v", e.Op, e.Err)
}

func (e *CollaboratorError) Unwrap() error { return e.Err }

// StepUpLockedOutError reports an exhausted challenge attempt budget. The
// lockout expires after RetryAfter.
type StepUpLockedOutError struct {
	RetryAfter time.Duration
}

func (e *StepUpLockedOutError) Error() string {
	return fmt.Sprintf("too many failed verification attempts, locked for %s", e.RetryAfter.Round(time.Second))
}
