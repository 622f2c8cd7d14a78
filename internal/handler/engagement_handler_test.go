package handler_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"news-publisher/internal/domain"
	"news-publisher/internal/handler"
	"news-publisher/internal/mocks"
)

var testReader = domain.Actor{ID: "reader-1", Name: "Rin Reader", Role: domain.RoleReader}

func engagementRouter(svc *mocks.MockEngagementServiceInterface, actor *domain.Actor) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := handler.NewEngagementHandler(svc)
	router := gin.New()
	group := router.Group("/api/v1/articles")
	if actor != nil {
		group.Use(asActor(*actor))
	}
	group.GET("/:id/comments", h.ListComments)
	group.POST("/:id/comments", h.AddComment)
	group.POST("/:id/like", h.Like)
	group.DELETE("/:id/like", h.Unlike)
	group.GET("/:id/likes", h.LikeSummary)
	return router
}

func TestEngagementHandler_Comments(t *testing.T) {
	articleID := uuid.New().String()

	t.Run("lists comments without authentication", func(t *testing.T) {
		svc := mocks.NewMockEngagementServiceInterface(t)
		svc.EXPECT().Comments(mock.Anything, articleID).
			Return([]domain.Comment{{ID: "c1", ArticleID: articleID, UserName: "Rin Reader", Body: "Great piece."}}, nil).Once()

		w := getPath(engagementRouter(svc, nil), "/api/v1/articles/"+articleID+"/comments")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"body":"Great piece."`)
	})

	t.Run("adds a comment as the actor", func(t *testing.T) {
		svc := mocks.NewMockEngagementServiceInterface(t)
		svc.EXPECT().AddComment(mock.Anything, testReader, articleID, "Any sources?").
			Return(&domain.Comment{ID: "c2", ArticleID: articleID, UserID: testReader.ID, UserName: testReader.Name, Body: "Any sources?"}, nil).Once()

		w := postJSON(t, engagementRouter(svc, &testReader), "/api/v1/articles/"+articleID+"/comments",
			map[string]string{"body": "Any sources?"})

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"user_name":"Rin Reader"`)
	})

	t.Run("empty body maps to 400", func(t *testing.T) {
		svc := mocks.NewMockEngagementServiceInterface(t)

		w := postJSON(t, engagementRouter(svc, &testReader), "/api/v1/articles/"+articleID+"/comments",
			map[string]string{})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unpublished article maps to 404", func(t *testing.T) {
		svc := mocks.NewMockEngagementServiceInterface(t)
		svc.EXPECT().AddComment(mock.Anything, testReader, articleID, "First!").
			Return(nil, domain.ErrNotFound).Once()

		w := postJSON(t, engagementRouter(svc, &testReader), "/api/v1/articles/"+articleID+"/comments",
			map[string]string{"body": "First!"})

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestEngagementHandler_Likes(t *testing.T) {
	articleID := uuid.New().String()

	t.Run("like and unlike return no content", func(t *testing.T) {
		svc := mocks.NewMockEngagementServiceInterface(t)
		svc.EXPECT().Like(mock.Anything, testReader, articleID).Return(nil).Once()
		svc.EXPECT().Unlike(mock.Anything, testReader, articleID).Return(nil).Once()

		router := engagementRouter(svc, &testReader)

		w := postJSON(t, router, "/api/v1/articles/"+articleID+"/like", nil)
		assert.Equal(t, http.StatusNoContent, w.Code)

		req := httptest.NewRequest(http.MethodDelete, "/api/v1/articles/"+articleID+"/like", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("summary includes liked flag only for authenticated callers", func(t *testing.T) {
		svc := mocks.NewMockEngagementServiceInterface(t)
		svc.EXPECT().LikeCount(mock.Anything, articleID).Return(int64(7), nil).Once()
		svc.EXPECT().HasLiked(mock.Anything, testReader, articleID).Return(true, nil).Once()

		w := getPath(engagementRouter(svc, &testReader), "/api/v1/articles/"+articleID+"/likes")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"count":7`)
		assert.Contains(t, w.Body.String(), `"liked":true`)
	})

	t.Run("anonymous summary has no liked flag", func(t *testing.T) {
		svc := mocks.NewMockEngagementServiceInterface(t)
		svc.EXPECT().LikeCount(mock.Anything, articleID).Return(int64(7), nil).Once()

		w := getPath(engagementRouter(svc, nil), "/api/v1/articles/"+articleID+"/likes")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.NotContains(t, w.Body.String(), "liked")
	})

	t.Run("like on a draft maps to 404", func(t *testing.T) {
		svc := mocks.NewMockEngagementServiceInterface(t)
		svc.EXPECT().Like(mock.Anything, testReader, articleID).Return(domain.ErrNotFound).Once()

		w := postJSON(t, engagementRouter(svc, &testReader), "/api/v1/articles/"+articleID+"/like", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
