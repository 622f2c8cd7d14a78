package service

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"news-publisher/internal/domain"
	"news-publisher/internal/logger"
	"news-publisher/internal/repository"
	"news-publisher/internal/workflow"
)

// UpdateProfileInput carries a self-service profile edit. Nil fields are
// left unchanged.
type UpdateProfileInput struct {
	FullName  *string `json:"full_name"`
	Bio       *string `json:"bio"`
	AvatarURL *string `json:"avatar_url"`
}

// ProfileService implements profile reads and the audited admin operations.
type ProfileService struct {
	profiles repository.ProfileRepository
}

// NewProfileService creates a new ProfileService.
func NewProfileService(profiles repository.ProfileRepository) *ProfileService {
	return &ProfileService{profiles: profiles}
}

// Get fetches a single profile.
func (s *ProfileService) Get(ctx context.Context, id string) (*domain.Profile, error) {
	return s.profiles.GetByID(ctx, id)
}

// UpdateOwn edits the actor's own profile details.
func (s *ProfileService) UpdateOwn(ctx context.Context, actor domain.Actor, input UpdateProfileInput) (*domain.Profile, error) {
	profile, err := s.profiles.GetByID(ctx, actor.ID)
	if err != nil {
		return nil, err
	}

	if input.FullName != nil {
		if *input.FullName == "" {
			return nil, domain.NewValidationError("full_name", "full_name_required")
		}
		profile.FullName = *input.FullName
	}
	if input.Bio != nil {
		profile.Bio = input.Bio
	}
	if input.AvatarURL != nil {
		profile.AvatarURL = input.AvatarURL
	}

	if err := s.profiles.UpdateDetails(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// List pages through all profiles. Admin only.
func (s *ProfileService) List(ctx context.Context, actor domain.Actor, limit, offset int) ([]domain.Profile, error) {
	if err := workflow.Allow(actor.Role, domain.ActionChangeRole, workflow.Target{}); err != nil {
		return nil, err
	}
	return s.profiles.List(ctx, limit, offset)
}

// ChangeRole assigns a new role to a profile and records the change. Admin
// only; an admin cannot change their own role.
func (s *ProfileService) ChangeRole(ctx context.Context, actor domain.Actor, profileID string, role domain.Role) (*domain.Profile, error) {
	if err := workflow.Allow(actor.Role, domain.ActionChangeRole, workflow.Target{}); err != nil {
		return nil, err
	}
	if !role.Valid() {
		return nil, domain.NewValidationError("role", "unknown_role")
	}
	if profileID == actor.ID {
		return nil, domain.NewValidationError("profile_id", "cannot_change_own_role")
	}

	profile, err := s.profiles.GetByID(ctx, profileID)
	if err != nil {
		return nil, err
	}
	if profile.Role == role {
		return profile, nil
	}

	event := &domain.ProfileEvent{
		ID:        uuid.New().String(),
		ProfileID: profileID,
		ActorID:   actor.ID,
		Action:    domain.ProfileEventRoleChanged,
		OldValue:  string(profile.Role),
		NewValue:  string(role),
	}
	if err := s.profiles.UpdateRole(ctx, profileID, role, event); err != nil {
		return nil, err
	}
	profile.Role = role

	logger.InfoContext(ctx, "role changed",
		slog.String("profile_id", profileID),
		slog.String("actor_id", actor.ID),
		slog.String("old_role", event.OldValue),
		slog.String("new_role", event.NewValue))
	return profile, nil
}

// SetActive activates or deactivates a profile and records the change.
// Admin only; an admin cannot deactivate themselves.
func (s *ProfileService) SetActive(ctx context.Context, actor domain.Actor, profileID string, active bool) (*domain.Profile, error) {
	if err := workflow.Allow(actor.Role, domain.ActionDeactivate, workflow.Target{}); err != nil {
		return nil, err
	}
	if profileID == actor.ID && !active {
		return nil, domain.NewValidationError("profile_id", "cannot_deactivate_self")
	}

	profile, err := s.profiles.GetByID(ctx, profileID)
	if err != nil {
		return nil, err
	}
	if profile.Active == active {
		return profile, nil
	}

	action := domain.ProfileEventDeactivated
	if active {
		action = domain.ProfileEventActivated
	}
	event := &domain.ProfileEvent{
		ID:        uuid.New().String(),
		ProfileID: profileID,
		ActorID:   actor.ID,
		Action:    action,
	}
	if err := s.profiles.SetActive(ctx, profileID, active, event); err != nil {
		return nil, err
	}
	profile.Active = active

	logger.InfoContext(ctx, "profile active flag changed",
		slog.String("profile_id", profileID),
		slog.String("actor_id", actor.ID),
		slog.Bool("active", active))
	return profile, nil
}

// Events returns the admin audit trail for a profile. Admin only.
func (s *ProfileService) Events(ctx context.Context, actor domain.Actor, profileID string) ([]domain.ProfileEvent, error) {
	if err := workflow.Allow(actor.Role, domain.ActionChangeRole, workflow.Target{}); err != nil {
		return nil, err
	}
	return s.profiles.ListEvents(ctx, profileID)
}
