package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"news-publisher/internal/domain"
	"news-publisher/internal/handler"
	"news-publisher/internal/mocks"
	"news-publisher/internal/service"
)

var testAdmin = domain.Actor{ID: "admin-1", Name: "Ada Admin", Role: domain.RoleAdmin}

func profileRouter(svc *mocks.MockProfileServiceInterface, actor domain.Actor) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := handler.NewProfileHandler(svc)
	router := gin.New()
	me := router.Group("/api/v1/profiles", asActor(actor))
	me.GET("/me", h.Me)
	me.PUT("/me", h.UpdateMe)
	admin := router.Group("/api/v1/admin/profiles", asActor(actor))
	admin.GET("", h.ListProfiles)
	admin.PUT("/:id/role", h.ChangeRole)
	admin.PUT("/:id/active", h.SetActive)
	admin.GET("/:id/events", h.ListProfileEvents)
	return router
}

func putJSON(t *testing.T, router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(http.MethodPut, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func getPath(router *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestProfileHandler_Me(t *testing.T) {
	t.Run("returns own profile", func(t *testing.T) {
		svc := mocks.NewMockProfileServiceInterface(t)
		svc.EXPECT().Get(mock.Anything, testWriter.ID).
			Return(&domain.Profile{ID: testWriter.ID, Email: "mai@example.com", Role: domain.RoleWriter, Active: true}, nil).Once()

		w := getPath(profileRouter(svc, testWriter), "/api/v1/profiles/me")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"email":"mai@example.com"`)
	})

	t.Run("update forwards the partial input", func(t *testing.T) {
		svc := mocks.NewMockProfileServiceInterface(t)
		name := "Mai T. Writer"
		bio := "Energy desk"
		svc.EXPECT().UpdateOwn(mock.Anything, testWriter, service.UpdateProfileInput{FullName: &name, Bio: &bio}).
			Return(&domain.Profile{ID: testWriter.ID, FullName: name, Role: domain.RoleWriter, Active: true}, nil).Once()

		w := putJSON(t, profileRouter(svc, testWriter), "/api/v1/profiles/me",
			map[string]string{"full_name": name, "bio": bio})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"full_name":"Mai T. Writer"`)
	})
}

func TestProfileHandler_ChangeRole(t *testing.T) {
	profileID := uuid.New().String()

	t.Run("promotes a writer", func(t *testing.T) {
		svc := mocks.NewMockProfileServiceInterface(t)
		svc.EXPECT().ChangeRole(mock.Anything, testAdmin, profileID, domain.RoleEditor).
			Return(&domain.Profile{ID: profileID, Role: domain.RoleEditor, Active: true}, nil).Once()

		w := putJSON(t, profileRouter(svc, testAdmin), "/api/v1/admin/profiles/"+profileID+"/role",
			map[string]string{"role": "editor"})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"role":"editor"`)
	})

	t.Run("non-admin maps to 403", func(t *testing.T) {
		svc := mocks.NewMockProfileServiceInterface(t)
		svc.EXPECT().ChangeRole(mock.Anything, testEditor, profileID, domain.RoleEditor).
			Return(nil, &domain.PermissionError{Role: domain.RoleEditor, Action: domain.ActionChangeRole}).Once()

		w := putJSON(t, profileRouter(svc, testEditor), "/api/v1/admin/profiles/"+profileID+"/role",
			map[string]string{"role": "editor"})

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("missing role maps to 400", func(t *testing.T) {
		svc := mocks.NewMockProfileServiceInterface(t)

		w := putJSON(t, profileRouter(svc, testAdmin), "/api/v1/admin/profiles/"+profileID+"/role",
			map[string]string{})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestProfileHandler_SetActive(t *testing.T) {
	profileID := uuid.New().String()

	t.Run("deactivates a profile", func(t *testing.T) {
		svc := mocks.NewMockProfileServiceInterface(t)
		svc.EXPECT().SetActive(mock.Anything, testAdmin, profileID, false).
			Return(&domain.Profile{ID: profileID, Role: domain.RoleWriter, Active: false}, nil).Once()

		w := putJSON(t, profileRouter(svc, testAdmin), "/api/v1/admin/profiles/"+profileID+"/active",
			map[string]bool{"active": false})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"is_active":false`)
	})

	t.Run("active flag is required so false is not conflated with absent", func(t *testing.T) {
		svc := mocks.NewMockProfileServiceInterface(t)

		w := putJSON(t, profileRouter(svc, testAdmin), "/api/v1/admin/profiles/"+profileID+"/active",
			map[string]string{})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestProfileHandler_AdminLists(t *testing.T) {
	t.Run("ListProfiles forwards pagination", func(t *testing.T) {
		svc := mocks.NewMockProfileServiceInterface(t)
		svc.EXPECT().List(mock.Anything, testAdmin, 10, 20).
			Return([]domain.Profile{{ID: "p1", Role: domain.RoleReader, Active: true}}, nil).Once()

		w := getPath(profileRouter(svc, testAdmin), "/api/v1/admin/profiles?limit=10&offset=20")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"id":"p1"`)
	})

	t.Run("ListProfileEvents returns the audit trail", func(t *testing.T) {
		profileID := uuid.New().String()
		svc := mocks.NewMockProfileServiceInterface(t)
		svc.EXPECT().Events(mock.Anything, testAdmin, profileID).
			Return([]domain.ProfileEvent{{
				ID:        "e1",
				ProfileID: profileID,
				ActorID:   testAdmin.ID,
				Action:    domain.ProfileEventRoleChanged,
				OldValue:  "writer",
				NewValue:  "editor",
			}}, nil).Once()

		w := getPath(profileRouter(svc, testAdmin), "/api/v1/admin/profiles/"+profileID+"/events")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"action":"role_changed"`)
		assert.Contains(t, w.Body.String(), `"old_value":"writer"`)
	})
}
