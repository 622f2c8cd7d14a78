package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"news-publisher/internal/domain"
	"news-publisher/internal/service"
)

// StepUp returns middleware that blocks privileged endpoints until the actor
// holds a valid step-up verification window. Actors without step-up enabled
// pass straight through. Must run after Auth.
func StepUp(stepUp service.StepUpServiceInterface) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := GetActor(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}

		verified, err := stepUp.Verified(c.Request.Context(), actor)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "verification state unavailable"})
			return
		}
		if !verified {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":            domain.ErrStepUpRequired.Error(),
				"step_up_required": true,
			})
			return
		}
		c.Next()
	}
}
