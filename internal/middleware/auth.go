package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"news-publisher/internal/auth"
	"news-publisher/internal/domain"
	"news-publisher/internal/repository"
)

const (
	// ActorKey is the gin context key holding the authenticated actor.
	ActorKey = "actor"

	bearerPrefix = "Bearer "
)

// Auth returns middleware that requires a valid session token. The profile
// is loaded on every request so role changes and deactivation take effect
// immediately, not at token expiry.
func Auth(tokens *auth.TokenManager, profiles repository.ProfileRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, err := resolveActor(c, tokens, profiles)
		if err != nil {
			status := http.StatusUnauthorized
			if errors.Is(err, domain.ErrAccountDisabled) {
				status = http.StatusForbidden
			}
			c.AbortWithStatusJSON(status, gin.H{"error": err.Error()})
			return
		}
		c.Set(ActorKey, *actor)
		c.Next()
	}
}

// OptionalAuth resolves the actor when a token is present but lets
// anonymous requests through. Endpoints behind it personalize visibility,
// they do not require identity.
func OptionalAuth(tokens *auth.TokenManager, profiles repository.ProfileRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") != "" {
			if actor, err := resolveActor(c, tokens, profiles); err == nil {
				c.Set(ActorKey, *actor)
			}
		}
		c.Next()
	}
}

func resolveActor(c *gin.Context, tokens *auth.TokenManager, profiles repository.ProfileRepository) (*domain.Actor, error) {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, bearerPrefix) {
		return nil, auth.ErrTokenInvalid
	}

	claims, err := tokens.Parse(strings.TrimPrefix(header, bearerPrefix))
	if err != nil {
		return nil, err
	}

	profile, err := profiles.GetByID(c.Request.Context(), claims.Subject)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, auth.ErrTokenInvalid
		}
		return nil, err
	}
	if !profile.Active {
		return nil, domain.ErrAccountDisabled
	}

	actor := domain.ActorFromProfile(profile)
	return &actor, nil
}

// GetActor retrieves the authenticated actor from the gin context. The
// second return is false on anonymous requests.
func GetActor(c *gin.Context) (domain.Actor, bool) {
	value, exists := c.Get(ActorKey)
	if !exists {
		return domain.Actor{}, false
	}
	actor, ok := value.(domain.Actor)
	return actor, ok
}
