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
	"news-publisher/internal/service"
)

func articleRouter(svc *mocks.MockArticleServiceInterface, actor *domain.Actor) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := handler.NewArticleHandler(svc)
	router := gin.New()

	group := router.Group("/api/v1/articles")
	if actor != nil {
		group.Use(asActor(*actor))
	}
	group.GET("", h.ListArticles)
	group.GET("/mine", h.ListMyArticles)
	group.GET("/pending", h.ListPendingArticles)
	group.GET("/:id", h.GetArticle)
	group.POST("", h.CreateArticle)
	group.PUT("/:id", h.UpdateArticle)
	group.DELETE("/:id", h.DeleteArticle)
	group.GET("/:id/events", h.ListArticleEvents)
	return router
}

func TestArticleHandler_Create(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		svc := mocks.NewMockArticleServiceInterface(t)
		svc.EXPECT().Create(mock.Anything, testWriter, mock.AnythingOfType("service.CreateArticleInput")).
			Return(&domain.Article{ID: uuid.New().String(), Title: "Wind power", Status: domain.StatusDraft}, nil).Once()

		w := postJSON(t, articleRouter(svc, &testWriter), "/api/v1/articles",
			service.CreateArticleInput{Title: "Wind power"})

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"draft"`)
	})

	t.Run("reader is refused", func(t *testing.T) {
		svc := mocks.NewMockArticleServiceInterface(t)
		reader := domain.Actor{ID: "reader-1", Role: domain.RoleReader}
		svc.EXPECT().Create(mock.Anything, reader, mock.Anything).
			Return(nil, &domain.PermissionError{Role: domain.RoleReader, Action: domain.ActionCreate, Reason: "only writers, editors and admins can create articles"}).Once()

		w := postJSON(t, articleRouter(svc, &reader), "/api/v1/articles",
			service.CreateArticleInput{Title: "Hot take"})

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestArticleHandler_Get(t *testing.T) {
	articleID := uuid.New().String()

	t.Run("anonymous read of a published article", func(t *testing.T) {
		svc := mocks.NewMockArticleServiceInterface(t)
		svc.EXPECT().Get(mock.Anything, (*domain.Actor)(nil), articleID, true).
			Return(&domain.Article{ID: articleID, Status: domain.StatusPublished, ViewCount: 42}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/v1/articles/"+articleID, nil)
		w := httptest.NewRecorder()
		articleRouter(svc, nil).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"view_count":42`)
	})

	t.Run("hidden article maps to 404", func(t *testing.T) {
		svc := mocks.NewMockArticleServiceInterface(t)
		svc.EXPECT().Get(mock.Anything, (*domain.Actor)(nil), articleID, true).
			Return(nil, domain.ErrNotFound).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/v1/articles/"+articleID, nil)
		w := httptest.NewRecorder()
		articleRouter(svc, nil).ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestArticleHandler_Lists(t *testing.T) {
	t.Run("published feed forwards filters", func(t *testing.T) {
		svc := mocks.NewMockArticleServiceInterface(t)
		svc.EXPECT().ListPublished(mock.Anything, domain.ArticleFilter{
			Category: "energy",
			Tag:      "solar",
			Limit:    5,
			Offset:   10,
		}).Return([]domain.Article{{Status: domain.StatusPublished}}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/v1/articles?category=energy&tag=solar&limit=5&offset=10", nil)
		w := httptest.NewRecorder()
		articleRouter(svc, nil).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("mine with status filter", func(t *testing.T) {
		svc := mocks.NewMockArticleServiceInterface(t)
		rejected := domain.StatusRejected
		svc.EXPECT().ListMine(mock.Anything, testWriter, &rejected).
			Return([]domain.Article{{Status: domain.StatusRejected}}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/v1/articles/mine?status=rejected", nil)
		w := httptest.NewRecorder()
		articleRouter(svc, &testWriter).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("pending queue denied for writers", func(t *testing.T) {
		svc := mocks.NewMockArticleServiceInterface(t)
		svc.EXPECT().ListPending(mock.Anything, testWriter).
			Return(nil, &domain.PermissionError{Role: domain.RoleWriter, Action: domain.ActionApprove, Reason: "only editors and admins can review articles"}).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/v1/articles/pending", nil)
		w := httptest.NewRecorder()
		articleRouter(svc, &testWriter).ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestArticleHandler_Delete(t *testing.T) {
	articleID := uuid.New().String()

	svc := mocks.NewMockArticleServiceInterface(t)
	svc.EXPECT().Delete(mock.Anything, testWriter, articleID).Return(nil).Once()

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/articles/"+articleID, nil)
	w := httptest.NewRecorder()
	articleRouter(svc, &testWriter).ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestArticleHandler_Events(t *testing.T) {
	articleID := uuid.New().String()

	svc := mocks.NewMockArticleServiceInterface(t)
	reason := "needs sources"
	svc.EXPECT().Events(mock.Anything, testWriter, articleID).Return([]domain.ReviewEvent{
		{ID: uuid.New().String(), Action: domain.ReviewActionSubmitted, FromStatus: domain.StatusDraft, ToStatus: domain.StatusPending},
		{ID: uuid.New().String(), Action: domain.ReviewActionRejected, FromStatus: domain.StatusPending, ToStatus: domain.StatusRejected, Reason: &reason},
	}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/articles/"+articleID+"/events", nil)
	w := httptest.NewRecorder()
	articleRouter(svc, &testWriter).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"action":"rejected"`)
	assert.Contains(t, w.Body.String(), "needs sources")
}
