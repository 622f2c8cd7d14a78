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
	"news-publisher/internal/middleware"
	"news-publisher/internal/mocks"
)

var (
	testWriter = domain.Actor{ID: "writer-1", Name: "Mai Writer", Role: domain.RoleWriter}
	testEditor = domain.Actor{ID: "editor-1", Name: "Ed Editor", Role: domain.RoleEditor}
)

// asActor injects an authenticated actor the way the auth middleware would.
func asActor(actor domain.Actor) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ActorKey, actor)
		c.Next()
	}
}

func workflowRouter(svc *mocks.MockWorkflowServiceInterface, actor domain.Actor) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := handler.NewWorkflowHandler(svc)
	router := gin.New()
	group := router.Group("/api/v1/articles", asActor(actor))
	group.POST("/:id/submit", h.SubmitArticle)
	group.POST("/:id/resubmit", h.ResubmitArticle)
	group.POST("/:id/approve", h.ApproveArticle)
	group.POST("/:id/reject", h.RejectArticle)
	group.POST("/:id/publish", h.PublishArticle)
	group.POST("/:id/archive", h.ArchiveArticle)
	return router
}

func postJSON(t *testing.T, router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestWorkflowHandler_Submit(t *testing.T) {
	articleID := uuid.New().String()

	t.Run("returns the pending article", func(t *testing.T) {
		svc := mocks.NewMockWorkflowServiceInterface(t)
		svc.EXPECT().Submit(mock.Anything, testWriter, articleID).
			Return(&domain.Article{ID: articleID, Status: domain.StatusPending}, nil).Once()

		w := postJSON(t, workflowRouter(svc, testWriter), "/api/v1/articles/"+articleID+"/submit", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"pending"`)
	})

	t.Run("already pending maps to 409", func(t *testing.T) {
		svc := mocks.NewMockWorkflowServiceInterface(t)
		svc.EXPECT().Submit(mock.Anything, testWriter, articleID).
			Return(nil, domain.ErrAlreadyPending).Once()

		w := postJSON(t, workflowRouter(svc, testWriter), "/api/v1/articles/"+articleID+"/submit", nil)
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("invalid uuid maps to 400", func(t *testing.T) {
		svc := mocks.NewMockWorkflowServiceInterface(t)
		w := postJSON(t, workflowRouter(svc, testWriter), "/api/v1/articles/not-a-uuid/submit", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestWorkflowHandler_Approve(t *testing.T) {
	articleID := uuid.New().String()

	t.Run("permission denied maps to 403", func(t *testing.T) {
		svc := mocks.NewMockWorkflowServiceInterface(t)
		svc.EXPECT().Approve(mock.Anything, testWriter, articleID).
			Return(nil, &domain.PermissionError{
				Role:   domain.RoleWriter,
				Action: domain.ActionApprove,
				Reason: "only editors and admins can review articles",
			}).Once()

		w := postJSON(t, workflowRouter(svc, testWriter), "/api/v1/articles/"+articleID+"/approve", nil)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), "only editors and admins")
	})

	t.Run("invalid transition maps to 409 with the current status", func(t *testing.T) {
		svc := mocks.NewMockWorkflowServiceInterface(t)
		svc.EXPECT().Approve(mock.Anything, testEditor, articleID).
			Return(nil, &domain.TransitionError{
				ArticleID: articleID,
				From:      domain.StatusApproved,
				Trigger:   domain.TriggerApprove,
			}).Once()

		w := postJSON(t, workflowRouter(svc, testEditor), "/api/v1/articles/"+articleID+"/approve", nil)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"approved"`)
	})

	t.Run("concurrency conflict maps to 409", func(t *testing.T) {
		svc := mocks.NewMockWorkflowServiceInterface(t)
		svc.EXPECT().Approve(mock.Anything, testEditor, articleID).
			Return(nil, domain.ErrConcurrencyConflict).Once()

		w := postJSON(t, workflowRouter(svc, testEditor), "/api/v1/articles/"+articleID+"/approve", nil)
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("missing article maps to 404", func(t *testing.T) {
		svc := mocks.NewMockWorkflowServiceInterface(t)
		svc.EXPECT().Approve(mock.Anything, testEditor, articleID).
			Return(nil, domain.ErrNotFound).Once()

		w := postJSON(t, workflowRouter(svc, testEditor), "/api/v1/articles/"+articleID+"/approve", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestWorkflowHandler_Reject(t *testing.T) {
	articleID := uuid.New().String()

	t.Run("passes the reason through", func(t *testing.T) {
		svc := mocks.NewMockWorkflowServiceInterface(t)
		reason := "Cần dẫn nguồn rõ ràng"
		svc.EXPECT().Reject(mock.Anything, testEditor, articleID, reason).
			Return(&domain.Article{ID: articleID, Status: domain.StatusRejected, RejectionReason: &reason}, nil).Once()

		w := postJSON(t, workflowRouter(svc, testEditor), "/api/v1/articles/"+articleID+"/reject",
			handler.RejectArticleRequest{Reason: reason})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"rejected"`)
	})

	t.Run("empty reason maps to 400", func(t *testing.T) {
		svc := mocks.NewMockWorkflowServiceInterface(t)
		svc.EXPECT().Reject(mock.Anything, testEditor, articleID, "").
			Return(nil, domain.NewValidationError("reason", "rejection_reason_required")).Once()

		w := postJSON(t, workflowRouter(svc, testEditor), "/api/v1/articles/"+articleID+"/reject",
			handler.RejectArticleRequest{Reason: ""})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "rejection_reason_required")
	})
}

func TestWorkflowHandler_PublishArchive(t *testing.T) {
	articleID := uuid.New().String()

	svc := mocks.NewMockWorkflowServiceInterface(t)
	svc.EXPECT().Publish(mock.Anything, testEditor, articleID).
		Return(&domain.Article{ID: articleID, Status: domain.StatusPublished}, nil).Once()
	svc.EXPECT().Archive(mock.Anything, testEditor, articleID).
		Return(&domain.Article{ID: articleID, Status: domain.StatusArchived}, nil).Once()

	router := workflowRouter(svc, testEditor)

	w := postJSON(t, router, "/api/v1/articles/"+articleID+"/publish", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = postJSON(t, router, "/api/v1/articles/"+articleID+"/archive", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
