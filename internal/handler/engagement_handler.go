package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"news-publisher/internal/domain"
	"news-publisher/internal/middleware"
	"news-publisher/internal/service"
)

// EngagementHandler handles comments and likes on published articles.
type EngagementHandler struct {
	engagementService service.EngagementServiceInterface
}

// NewEngagementHandler creates a new EngagementHandler.
func NewEngagementHandler(engagementService service.EngagementServiceInterface) *EngagementHandler {
	return &EngagementHandler{engagementService: engagementService}
}

// CommentResponse represents a comment in the API response.
type CommentResponse struct {
	ID        string `json:"id"`
	ArticleID string `json:"article_id"`
	UserID    string `json:"user_id"`
	UserName  string `json:"user_name"`
	Body      string `json:"body"`
	CreatedAt string `json:"created_at"`
}

func toCommentResponse(comment *domain.Comment) CommentResponse {
	return CommentResponse{
		ID:        comment.ID,
		ArticleID: comment.ArticleID,
		UserID:    comment.UserID,
		UserName:  comment.UserName,
		Body:      comment.Body,
		CreatedAt: comment.CreatedAt.Format(TimeFormat),
	}
}

// ListComments handles GET /api/v1/articles/:id/comments
func (h *EngagementHandler) ListComments(c *gin.Context) {
	id, ok := articleID(c)
	if !ok {
		return
	}

	comments, err := h.engagementService.Comments(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	out := make([]CommentResponse, 0, len(comments))
	for i := range comments {
		out = append(out, toCommentResponse(&comments[i]))
	}
	c.JSON(http.StatusOK, gin.H{"comments": out})
}

// AddCommentRequest carries a new comment body.
type AddCommentRequest struct {
	Body string `json:"body" binding:"required"`
}

// AddComment handles POST /api/v1/articles/:id/comments
func (h *EngagementHandler) AddComment(c *gin.Context) {
	actor, _ := middleware.GetActor(c)
	id, ok := articleID(c)
	if !ok {
		return
	}

	var req AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment, err := h.engagementService.AddComment(c.Request.Context(), actor, id, req.Body)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toCommentResponse(comment))
}

// Like handles POST /api/v1/articles/:id/like
func (h *EngagementHandler) Like(c *gin.Context) {
	actor, _ := middleware.GetActor(c)
	id, ok := articleID(c)
	if !ok {
		return
	}

	if err := h.engagementService.Like(c.Request.Context(), actor, id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Unlike handles DELETE /api/v1/articles/:id/like
func (h *EngagementHandler) Unlike(c *gin.Context) {
	actor, _ := middleware.GetActor(c)
	id, ok := articleID(c)
	if !ok {
		return
	}

	if err := h.engagementService.Unlike(c.Request.Context(), actor, id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// LikeSummary handles GET /api/v1/articles/:id/likes
func (h *EngagementHandler) LikeSummary(c *gin.Context) {
	id, ok := articleID(c)
	if !ok {
		return
	}

	count, err := h.engagementService.LikeCount(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	resp := gin.H{"count": count}
	if actor, ok := middleware.GetActor(c); ok {
		liked, err := h.engagementService.HasLiked(c.Request.Context(), actor, id)
		if err != nil {
			writeError(c, err)
			return
		}
		resp["liked"] = liked
	}
	c.JSON(http.StatusOK, resp)
}
