package handler_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"news-publisher/internal/domain"
	"news-publisher/internal/handler"
	"news-publisher/internal/mocks"
)

var mfaEditor = domain.Actor{ID: "editor-1", Name: "Ed Editor", Role: domain.RoleEditor, MFAEnabled: true}

func stepUpHandlerRouter(svc *mocks.MockStepUpServiceInterface, actor domain.Actor) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := handler.NewStepUpHandler(svc)
	router := gin.New()
	group := router.Group("/api/v1/auth/step-up", asActor(actor))
	group.POST("/challenge", h.Challenge)
	group.POST("/verify", h.Verify)
	return router
}

func TestStepUpHandler_Challenge(t *testing.T) {
	t.Run("sends a code", func(t *testing.T) {
		svc := mocks.NewMockStepUpServiceInterface(t)
		svc.EXPECT().Required(mfaEditor).Return(true).Once()
		svc.EXPECT().Challenge(mock.Anything, mfaEditor).Return(nil).Once()

		w := postJSON(t, stepUpHandlerRouter(svc, mfaEditor), "/api/v1/auth/step-up/challenge", nil)
		assert.Equal(t, http.StatusAccepted, w.Code)
	})

	t.Run("not required for plain accounts", func(t *testing.T) {
		svc := mocks.NewMockStepUpServiceInterface(t)
		plain := domain.Actor{ID: "writer-1", Role: domain.RoleWriter}
		svc.EXPECT().Required(plain).Return(false).Once()

		w := postJSON(t, stepUpHandlerRouter(svc, plain), "/api/v1/auth/step-up/challenge", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"step_up_required":false`)
	})

	t.Run("delivery failure maps to 503", func(t *testing.T) {
		svc := mocks.NewMockStepUpServiceInterface(t)
		svc.EXPECT().Required(mfaEditor).Return(true).Once()
		svc.EXPECT().Challenge(mock.Anything, mfaEditor).
			Return(&domain.CollaboratorError{Op: "send step-up code", Err: assert.AnError}).Once()

		w := postJSON(t, stepUpHandlerRouter(svc, mfaEditor), "/api/v1/auth/step-up/challenge", nil)
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}

func TestStepUpHandler_Verify(t *testing.T) {
	t.Run("verified", func(t *testing.T) {
		svc := mocks.NewMockStepUpServiceInterface(t)
		svc.EXPECT().Verify(mock.Anything, mfaEditor, "123456").Return(nil).Once()

		w := postJSON(t, stepUpHandlerRouter(svc, mfaEditor), "/api/v1/auth/step-up/verify",
			handler.VerifyRequest{Code: "123456"})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"verified":true`)
	})

	t.Run("wrong code maps to 401", func(t *testing.T) {
		svc := mocks.NewMockStepUpServiceInterface(t)
		svc.EXPECT().Verify(mock.Anything, mfaEditor, "000000").Return(domain.ErrCodeMismatch).Once()

		w := postJSON(t, stepUpHandlerRouter(svc, mfaEditor), "/api/v1/auth/step-up/verify",
			handler.VerifyRequest{Code: "000000"})

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("lockout maps to 423 with retry hint", func(t *testing.T) {
		svc := mocks.NewMockStepUpServiceInterface(t)
		svc.EXPECT().Verify(mock.Anything, mfaEditor, "000000").
			Return(&domain.StepUpLockedOutError{RetryAfter: 5 * time.Minute}).Once()

		w := postJSON(t, stepUpHandlerRouter(svc, mfaEditor), "/api/v1/auth/step-up/verify",
			handler.VerifyRequest{Code: "000000"})

		assert.Equal(t, http.StatusLocked, w.Code)
		assert.Contains(t, w.Body.String(), `"retry_after_seconds":300`)
	})

	t.Run("expired challenge maps to 401", func(t *testing.T) {
		svc := mocks.NewMockStepUpServiceInterface(t)
		svc.EXPECT().Verify(mock.Anything, mfaEditor, "123456").Return(domain.ErrChallengeExpired).Once()

		w := postJSON(t, stepUpHandlerRouter(svc, mfaEditor), "/api/v1/auth/step-up/verify",
			handler.VerifyRequest{Code: "123456"})

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
