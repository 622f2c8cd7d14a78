package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"news-publisher/internal/domain"
)

// writeError maps a domain error onto an HTTP response. Every refusal names
// the precondition that failed; the mapping is the single place status codes
// are decided.
func writeError(c *gin.Context, err error) {
	var (
		valErr    *domain.ValidationError
		permErr   *domain.PermissionError
		transErr  *domain.TransitionError
		lockedErr *domain.StepUpLockedOutError
		collabErr *domain.CollaboratorError
	)

	switch {
	case errors.As(err, &valErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": valErr.Reason, "field": valErr.Field})

	case errors.As(err, &permErr):
		c.JSON(http.StatusForbidden, gin.H{"error": permErr.Error()})

	case errors.Is(err, domain.ErrAccountDisabled):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})

	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})

	case errors.Is(err, domain.ErrAlreadyPending):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})

	case errors.Is(err, domain.ErrConcurrencyConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})

	case errors.As(err, &transErr):
		c.JSON(http.StatusConflict, gin.H{
			"error":  transErr.Error(),
			"status": string(transErr.From),
		})

	case errors.Is(err, domain.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})

	case errors.Is(err, domain.ErrStepUpRequired),
		errors.Is(err, domain.ErrChallengeExpired),
		errors.Is(err, domain.ErrCodeMismatch):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})

	case errors.As(err, &lockedErr):
		c.JSON(http.StatusLocked, gin.H{
			"error":               lockedErr.Error(),
			"retry_after_seconds": int(lockedErr.RetryAfter.Seconds()),
		})

	case errors.As(err, &collabErr):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "a backing service is unavailable"})

	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
