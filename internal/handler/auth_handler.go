package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"news-publisher/internal/domain"
	"news-publisher/internal/service"
)

// AuthHandler handles registration and login.
type AuthHandler struct {
	authService service.AuthServiceInterface
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService service.AuthServiceInterface) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// ProfileResponse represents a profile in the API response.
type ProfileResponse struct {
	ID         string  `json:"id"`
	Email      string  `json:"email"`
	FullName   string  `json:"full_name"`
	Role       string  `json:"role"`
	Bio        *string `json:"bio,omitempty"`
	AvatarURL  *string `json:"avatar_url,omitempty"`
	Active     bool    `json:"is_active"`
	MFAEnabled bool    `json:"mfa_enabled"`
	CreatedAt  string  `json:"created_at"`
}

func toProfileResponse(p *domain.Profile) ProfileResponse {
	return ProfileResponse{
		ID:         p.ID,
		Email:      p.Email,
		FullName:   p.FullName,
		Role:       string(p.Role),
		Bio:        p.Bio,
		AvatarURL:  p.AvatarURL,
		Active:     p.Active,
		MFAEnabled: p.MFAEnabled,
		CreatedAt:  p.CreatedAt.Format(TimeFormat),
	}
}

// AuthResponse represents a successful registration or login.
type AuthResponse struct {
	Token     string          `json:"token"`
	ExpiresAt string          `json:"expires_at"`
	Profile   ProfileResponse `json:"profile"`
}

func toAuthResponse(result *service.AuthResult) AuthResponse {
	return AuthResponse{
		Token:     result.Token,
		ExpiresAt: result.ExpiresAt.Format(TimeFormat),
		Profile:   toProfileResponse(result.Profile),
	}
}

// Register handles POST /api/v1/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req service.RegisterInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.authService.Register(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toAuthResponse(result))
}

// LoginRequest carries login credentials.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login handles POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toAuthResponse(result))
}
