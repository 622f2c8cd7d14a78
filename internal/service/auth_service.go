package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"news-publisher/internal/auth"
	"news-publisher/internal/domain"
	"news-publisher/internal/logger"
	"news-publisher/internal/repository"
	"news-publisher/internal/validator"
)

// RegisterInput carries a self-service registration request.
type RegisterInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}

// AuthResult is returned on successful registration or login.
type AuthResult struct {
	Token     string          `json:"token"`
	ExpiresAt time.Time       `json:"expires_at"`
	Profile   *domain.Profile `json:"profile"`
}

// AuthService implements registration and login.
type AuthService struct {
	profiles  repository.ProfileRepository
	tokens    *auth.TokenManager
	validator *validator.Validator
}

// NewAuthService creates a new AuthService.
func NewAuthService(profiles repository.ProfileRepository, tokens *auth.TokenManager, v *validator.Validator) *AuthService {
	return &AuthService{profiles: profiles, tokens: tokens, validator: v}
}

// Register creates a profile and issues a session token. Self-service
// signup is limited to the reader and writer roles; editor and admin are
// granted only through an admin role change.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	if input.Role == "" {
		input.Role = string(domain.RoleReader)
	}
	if err := s.validator.ValidateRegistration(input.Email, input.FullName, input.Role); err != nil {
		return nil, err
	}

	role := domain.Role(input.Role)
	if role == domain.RoleEditor || role == domain.RoleAdmin {
		return nil, domain.NewValidationError("role", "role_not_self_assignable")
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, domain.NewValidationError("password", err.Error())
	}

	profile := &domain.Profile{
		ID:           uuid.New().String(),
		Email:        input.Email,
		FullName:     input.FullName,
		Role:         role,
		Active:       true,
		PasswordHash: hash,
	}
	if err := s.profiles.Create(ctx, profile); err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			return nil, domain.NewValidationError("email", "email_already_registered")
		}
		return nil, err
	}

	logger.InfoContext(ctx, "profile registered",
		slog.String("profile_id", profile.ID),
		slog.String("role", string(profile.Role)))
	return s.issue(profile)
}

// Login verifies credentials and issues a session token. The same error is
// returned for an unknown email as for a wrong password.
func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	profile, err := s.profiles.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}
	if !auth.CheckPassword(profile.PasswordHash, password) {
		return nil, domain.ErrInvalidCredentials
	}
	if !profile.Active {
		return nil, domain.ErrAccountDisabled
	}
	return s.issue(profile)
}

func (s *AuthService) issue(profile *domain.Profile) (*AuthResult, error) {
	token, expiresAt, err := s.tokens.Issue(profile.ID, profile.Role)
	if err != nil {
		return nil, err
	}
	return &AuthResult{Token: token, ExpiresAt: expiresAt, Profile: profile}, nil
}
