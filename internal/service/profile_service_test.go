package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"news-publisher/internal/domain"
	"news-publisher/internal/mocks"
	"news-publisher/internal/service"
)

var admin = domain.Actor{ID: "admin-1", Name: "Ada Admin", Email: "ada@example.com", Role: domain.RoleAdmin}

func TestProfileService_ChangeRole(t *testing.T) {
	ctx := context.Background()

	t.Run("promotes a writer and records the change", func(t *testing.T) {
		profiles := mocks.NewMockProfileRepository(t)
		target := &domain.Profile{ID: "writer-1", Role: domain.RoleWriter, Active: true}

		profiles.EXPECT().GetByID(mock.Anything, "writer-1").Return(target, nil).Once()
		profiles.EXPECT().UpdateRole(mock.Anything, "writer-1", domain.RoleEditor, mock.Anything).
			RunAndReturn(func(_ context.Context, _ string, _ domain.Role, event *domain.ProfileEvent) error {
				assert.Equal(t, domain.ProfileEventRoleChanged, event.Action)
				assert.Equal(t, "writer", event.OldValue)
				assert.Equal(t, "editor", event.NewValue)
				assert.Equal(t, admin.ID, event.ActorID)
				return nil
			}).Once()

		got, err := service.NewProfileService(profiles).ChangeRole(ctx, admin, "writer-1", domain.RoleEditor)
		require.NoError(t, err)
		assert.Equal(t, domain.RoleEditor, got.Role)
	})

	t.Run("only admins", func(t *testing.T) {
		profiles := mocks.NewMockProfileRepository(t)

		_, err := service.NewProfileService(profiles).ChangeRole(ctx, editor, "writer-1", domain.RoleEditor)

		var permErr *domain.PermissionError
		require.ErrorAs(t, err, &permErr)
		profiles.AssertNotCalled(t, "UpdateRole")
	})

	t.Run("admins cannot change their own role", func(t *testing.T) {
		profiles := mocks.NewMockProfileRepository(t)

		_, err := service.NewProfileService(profiles).ChangeRole(ctx, admin, admin.ID, domain.RoleReader)

		var valErr *domain.ValidationError
		assert.ErrorAs(t, err, &valErr)
	})

	t.Run("same role is a no-op", func(t *testing.T) {
		profiles := mocks.NewMockProfileRepository(t)
		target := &domain.Profile{ID: "writer-1", Role: domain.RoleWriter, Active: true}
		profiles.EXPECT().GetByID(mock.Anything, "writer-1").Return(target, nil).Once()

		_, err := service.NewProfileService(profiles).ChangeRole(ctx, admin, "writer-1", domain.RoleWriter)
		require.NoError(t, err)
		profiles.AssertNotCalled(t, "UpdateRole")
	})
}

func TestProfileService_SetActive(t *testing.T) {
	ctx := context.Background()

	t.Run("deactivates and records the audit action", func(t *testing.T) {
		profiles := mocks.NewMockProfileRepository(t)
		target := &domain.Profile{ID: "writer-1", Role: domain.RoleWriter, Active: true}

		profiles.EXPECT().GetByID(mock.Anything, "writer-1").Return(target, nil).Once()
		profiles.EXPECT().SetActive(mock.Anything, "writer-1", false, mock.Anything).
			RunAndReturn(func(_ context.Context, _ string, _ bool, event *domain.ProfileEvent) error {
				assert.Equal(t, domain.ProfileEventDeactivated, event.Action)
				return nil
			}).Once()

		got, err := service.NewProfileService(profiles).SetActive(ctx, admin, "writer-1", false)
		require.NoError(t, err)
		assert.False(t, got.Active)
	})

	t.Run("admins cannot deactivate themselves", func(t *testing.T) {
		profiles := mocks.NewMockProfileRepository(t)

		_, err := service.NewProfileService(profiles).SetActive(ctx, admin, admin.ID, false)

		var valErr *domain.ValidationError
		assert.ErrorAs(t, err, &valErr)
	})

	t.Run("reactivation records the matching action", func(t *testing.T) {
		profiles := mocks.NewMockProfileRepository(t)
		target := &domain.Profile{ID: "writer-1", Role: domain.RoleWriter, Active: false}

		profiles.EXPECT().GetByID(mock.Anything, "writer-1").Return(target, nil).Once()
		profiles.EXPECT().SetActive(mock.Anything, "writer-1", true, mock.Anything).
			RunAndReturn(func(_ context.Context, _ string, _ bool, event *domain.ProfileEvent) error {
				assert.Equal(t, domain.ProfileEventActivated, event.Action)
				return nil
			}).Once()

		got, err := service.NewProfileService(profiles).SetActive(ctx, admin, "writer-1", true)
		require.NoError(t, err)
		assert.True(t, got.Active)
	})
}

func TestProfileService_UpdateOwn(t *testing.T) {
	ctx := context.Background()

	t.Run("edits bio and name", func(t *testing.T) {
		profiles := mocks.NewMockProfileRepository(t)
		target := &domain.Profile{ID: writer.ID, FullName: "Mai Writer", Role: domain.RoleWriter, Active: true}

		profiles.EXPECT().GetByID(mock.Anything, writer.ID).Return(target, nil).Once()
		profiles.EXPECT().UpdateDetails(mock.Anything, mock.Anything).Return(nil).Once()

		name := "Mai T. Writer"
		bio := "Energy desk."
		got, err := service.NewProfileService(profiles).UpdateOwn(ctx, writer, service.UpdateProfileInput{
			FullName: &name,
			Bio:      &bio,
		})
		require.NoError(t, err)
		assert.Equal(t, name, got.FullName)
		require.NotNil(t, got.Bio)
		assert.Equal(t, bio, *got.Bio)
	})

	t.Run("name cannot be emptied", func(t *testing.T) {
		profiles := mocks.NewMockProfileRepository(t)
		target := &domain.Profile{ID: writer.ID, FullName: "Mai Writer", Role: domain.RoleWriter}
		profiles.EXPECT().GetByID(mock.Anything, writer.ID).Return(target, nil).Once()

		empty := ""
		_, err := service.NewProfileService(profiles).UpdateOwn(ctx, writer, service.UpdateProfileInput{FullName: &empty})

		var valErr *domain.ValidationError
		require.ErrorAs(t, err, &valErr)
		profiles.AssertNotCalled(t, "UpdateDetails")
	})
}

func TestProfileService_ListAndEvents(t *testing.T) {
	ctx := context.Background()

	t.Run("list is admin only", func(t *testing.T) {
		profiles := mocks.NewMockProfileRepository(t)

		_, err := service.NewProfileService(profiles).List(ctx, editor, 10, 0)

		var permErr *domain.PermissionError
		assert.ErrorAs(t, err, &permErr)
	})

	t.Run("events returns the audit trail", func(t *testing.T) {
		profiles := mocks.NewMockProfileRepository(t)
		profiles.EXPECT().ListEvents(mock.Anything, "writer-1").Return([]domain.ProfileEvent{
			{Action: domain.ProfileEventRoleChanged},
		}, nil).Once()

		got, err := service.NewProfileService(profiles).Events(ctx, admin, "writer-1")
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})
}
