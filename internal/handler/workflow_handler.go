package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"news-publisher/internal/domain"
	"news-publisher/internal/middleware"
	"news-publisher/internal/service"
)

// WorkflowHandler exposes the article status transitions.
type WorkflowHandler struct {
	workflowService service.WorkflowServiceInterface
}

// NewWorkflowHandler creates a new WorkflowHandler.
func NewWorkflowHandler(workflowService service.WorkflowServiceInterface) *WorkflowHandler {
	return &WorkflowHandler{workflowService: workflowService}
}

func (h *WorkflowHandler) run(c *gin.Context, fn func(ctx context.Context, actor domain.Actor, id string) (*domain.Article, error)) {
	actor, _ := middleware.GetActor(c)
	id, ok := articleID(c)
	if !ok {
		return
	}

	article, err := fn(c.Request.Context(), actor, id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toArticleResponse(article))
}

// SubmitArticle handles POST /api/v1/articles/:id/submit
func (h *WorkflowHandler) SubmitArticle(c *gin.Context) {
	h.run(c, h.workflowService.Submit)
}

// ResubmitArticle handles POST /api/v1/articles/:id/resubmit
func (h *WorkflowHandler) ResubmitArticle(c *gin.Context) {
	h.run(c, h.workflowService.Resubmit)
}

// ApproveArticle handles POST /api/v1/articles/:id/approve
func (h *WorkflowHandler) ApproveArticle(c *gin.Context) {
	h.run(c, h.workflowService.Approve)
}

// RejectArticleRequest carries the mandatory rejection reason.
type RejectArticleRequest struct {
	Reason string `json:"reason"`
}

// RejectArticle handles POST /api/v1/articles/:id/reject
func (h *WorkflowHandler) RejectArticle(c *gin.Context) {
	actor, _ := middleware.GetActor(c)
	id, ok := articleID(c)
	if !ok {
		return
	}

	var req RejectArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	article, err := h.workflowService.Reject(c.Request.Context(), actor, id, req.Reason)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toArticleResponse(article))
}

// PublishArticle handles POST /api/v1/articles/:id/publish
func (h *WorkflowHandler) PublishArticle(c *gin.Context) {
	h.run(c, h.workflowService.Publish)
}

// ArchiveArticle handles POST /api/v1/articles/:id/archive
func (h *WorkflowHandler) ArchiveArticle(c *gin.Context) {
	h.run(c, h.workflowService.Archive)
}
