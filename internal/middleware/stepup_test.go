package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"news-publisher/internal/domain"
	"news-publisher/internal/middleware"
	"news-publisher/internal/mocks"
)

func stepUpRouter(stepUp *mocks.MockStepUpServiceInterface, actor *domain.Actor) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/approve",
		func(c *gin.Context) {
			if actor != nil {
				c.Set(middleware.ActorKey, *actor)
			}
			c.Next()
		},
		middleware.StepUp(stepUp),
		func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": true}) },
	)
	return router
}

func TestStepUp_Verified(t *testing.T) {
	stepUp := mocks.NewMockStepUpServiceInterface(t)
	actor := domain.Actor{ID: "editor-1", Role: domain.RoleEditor, MFAEnabled: true}
	stepUp.EXPECT().Verified(mock.Anything, actor).Return(true, nil).Once()

	w := httptest.NewRecorder()
	stepUpRouter(stepUp, &actor).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/approve", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestStepUp_Unverified(t *testing.T) {
	stepUp := mocks.NewMockStepUpServiceInterface(t)
	actor := domain.Actor{ID: "editor-1", Role: domain.RoleEditor, MFAEnabled: true}
	stepUp.EXPECT().Verified(mock.Anything, actor).Return(false, nil).Once()

	w := httptest.NewRecorder()
	stepUpRouter(stepUp, &actor).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/approve", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "step_up_required")
}

func TestStepUp_NoActor(t *testing.T) {
	stepUp := mocks.NewMockStepUpServiceInterface(t)

	w := httptest.NewRecorder()
	stepUpRouter(stepUp, nil).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/approve", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestStepUp_StateUnavailable(t *testing.T) {
	stepUp := mocks.NewMockStepUpServiceInterface(t)
	actor := domain.Actor{ID: "editor-1", Role: domain.RoleEditor, MFAEnabled: true}
	stepUp.EXPECT().Verified(mock.Anything, actor).Return(false, errors.New("store down")).Once()

	w := httptest.NewRecorder()
	stepUpRouter(stepUp, &actor).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/approve", nil))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
