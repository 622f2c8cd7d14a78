package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"news-publisher/internal/domain"
	"news-publisher/internal/middleware"
	"news-publisher/internal/service"
)

// ArticleHandler handles article content HTTP requests.
type ArticleHandler struct {
	articleService service.ArticleServiceInterface
}

// NewArticleHandler creates a new ArticleHandler.
func NewArticleHandler(articleService service.ArticleServiceInterface) *ArticleHandler {
	return &ArticleHandler{articleService: articleService}
}

// ArticleResponse represents an article in the API response.
type ArticleResponse struct {
	ID               string   `json:"id"`
	Title            string   `json:"title"`
	Content          string   `json:"content"`
	Excerpt          string   `json:"excerpt"`
	Category         string   `json:"category"`
	Tags             []string `json:"tags,omitempty"`
	FeaturedImageURL *string  `json:"featured_image_url,omitempty"`
	ImageCaption     *string  `json:"image_caption,omitempty"`
	SEOTitle         *string  `json:"seo_title,omitempty"`
	SEODescription   *string  `json:"seo_description,omitempty"`
	WordCount        int      `json:"word_count"`
	AuthorID         string   `json:"author_id"`
	AuthorName       string   `json:"author_name"`
	Status           string   `json:"status"`
	SubmittedAt      *string  `json:"submitted_at,omitempty"`
	ReviewedAt       *string  `json:"reviewed_at,omitempty"`
	ReviewedBy       *string  `json:"reviewed_by,omitempty"`
	RejectionReason  *string  `json:"rejection_reason,omitempty"`
	PublishedAt      *string  `json:"published_at,omitempty"`
	ViewCount        int64    `json:"view_count"`
	CreatedAt        string   `json:"created_at"`
	UpdatedAt        string   `json:"updated_at"`
}

func toArticleResponse(a *domain.Article) ArticleResponse {
	resp := ArticleResponse{
		ID:               a.ID,
		Title:            a.Title,
		Content:          a.Content,
		Excerpt:          a.Excerpt,
		Category:         a.Category,
		Tags:             a.Tags,
		FeaturedImageURL: a.FeaturedImageURL,
		ImageCaption:     a.ImageCaption,
		SEOTitle:         a.SEOTitle,
		SEODescription:   a.SEODescription,
		WordCount:        a.WordCount,
		AuthorID:         a.AuthorID,
		AuthorName:       a.AuthorName,
		Status:           string(a.Status),
		ReviewedBy:       a.ReviewedBy,
		RejectionReason:  a.RejectionReason,
		ViewCount:        a.ViewCount,
		CreatedAt:        a.CreatedAt.Format(TimeFormat),
		UpdatedAt:        a.UpdatedAt.Format(TimeFormat),
	}
	if a.SubmittedAt != nil {
		s := a.SubmittedAt.Format(TimeFormat)
		resp.SubmittedAt = &s
	}
	if a.ReviewedAt != nil {
		s := a.ReviewedAt.Format(TimeFormat)
		resp.ReviewedAt = &s
	}
	if a.PublishedAt != nil {
		s := a.PublishedAt.Format(TimeFormat)
		resp.PublishedAt = &s
	}
	return resp
}

func toArticleListResponse(articles []domain.Article) []ArticleResponse {
	out := make([]ArticleResponse, 0, len(articles))
	for i := range articles {
		out = append(out, toArticleResponse(&articles[i]))
	}
	return out
}

// articleID validates the :id path parameter.
func articleID(c *gin.Context) (string, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be a valid UUID"})
		return "", false
	}
	return id, true
}

// CreateArticle handles POST /api/v1/articles
func (h *ArticleHandler) CreateArticle(c *gin.Context) {
	actor, _ := middleware.GetActor(c)

	var req service.CreateArticleInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	article, err := h.articleService.Create(c.Request.Context(), actor, req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toArticleResponse(article))
}

// GetArticle handles GET /api/v1/articles/:id
func (h *ArticleHandler) GetArticle(c *gin.Context) {
	id, ok := articleID(c)
	if !ok {
		return
	}

	var actor *domain.Actor
	if a, ok := middleware.GetActor(c); ok {
		actor = &a
	}

	article, err := h.articleService.Get(c.Request.Context(), actor, id, true)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toArticleResponse(article))
}

// UpdateArticle handles PUT /api/v1/articles/:id
func (h *ArticleHandler) UpdateArticle(c *gin.Context) {
	actor, _ := middleware.GetActor(c)
	id, ok := articleID(c)
	if !ok {
		return
	}

	var req service.UpdateArticleInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	article, err := h.articleService.Update(c.Request.Context(), actor, id, req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toArticleResponse(article))
}

// DeleteArticle handles DELETE /api/v1/articles/:id
func (h *ArticleHandler) DeleteArticle(c *gin.Context) {
	actor, _ := middleware.GetActor(c)
	id, ok := articleID(c)
	if !ok {
		return
	}

	if err := h.articleService.Delete(c.Request.Context(), actor, id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListArticles handles GET /api/v1/articles - the public published feed.
func (h *ArticleHandler) ListArticles(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	filter := domain.ArticleFilter{
		Category: c.Query("category"),
		Tag:      c.Query("tag"),
		Search:   c.Query("search"),
		Limit:    limit,
		Offset:   offset,
	}

	articles, err := h.articleService.ListPublished(c.Request.Context(), filter)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"articles": toArticleListResponse(articles)})
}

// ListMyArticles handles GET /api/v1/articles/mine
func (h *ArticleHandler) ListMyArticles(c *gin.Context) {
	actor, _ := middleware.GetActor(c)

	var status *domain.Status
	if raw := c.Query("status"); raw != "" {
		s := domain.Status(raw)
		status = &s
	}

	articles, err := h.articleService.ListMine(c.Request.Context(), actor, status)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"articles": toArticleListResponse(articles)})
}

// ListPendingArticles handles GET /api/v1/articles/pending - the review
// queue, oldest submission first.
func (h *ArticleHandler) ListPendingArticles(c *gin.Context) {
	actor, _ := middleware.GetActor(c)

	articles, err := h.articleService.ListPending(c.Request.Context(), actor)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"articles": toArticleListResponse(articles)})
}

// ReviewEventResponse represents one audit record in the API response.
type ReviewEventResponse struct {
	ID         string  `json:"id"`
	ArticleID  string  `json:"article_id"`
	ActorID    string  `json:"actor_id"`
	Action     string  `json:"action"`
	FromStatus string  `json:"from_status"`
	ToStatus   string  `json:"to_status"`
	Reason     *string `json:"reason,omitempty"`
	CreatedAt  string  `json:"created_at"`
}

// ListArticleEvents handles GET /api/v1/articles/:id/events
func (h *ArticleHandler) ListArticleEvents(c *gin.Context) {
	actor, _ := middleware.GetActor(c)
	id, ok := articleID(c)
	if !ok {
		return
	}

	events, err := h.articleService.Events(c.Request.Context(), actor, id)
	if err != nil {
		writeError(c, err)
		return
	}

	out := make([]ReviewEventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, ReviewEventResponse{
			ID:         e.ID,
			ArticleID:  e.ArticleID,
			ActorID:    e.ActorID,
			Action:     string(e.Action),
			FromStatus: string(e.FromStatus),
			ToStatus:   string(e.ToStatus),
			Reason:     e.Reason,
			CreatedAt:  e.CreatedAt.Format(TimeFormat),
		})
	}
	c.JSON(http.StatusOK, gin.H{"events": out})
}
