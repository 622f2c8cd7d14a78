package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"news-publisher/internal/middleware"
	"news-publisher/internal/service"
)

// StepUpHandler exposes the step-up verification endpoints.
type StepUpHandler struct {
	stepUpService service.StepUpServiceInterface
}

// NewStepUpHandler creates a new StepUpHandler.
func NewStepUpHandler(stepUpService service.StepUpServiceInterface) *StepUpHandler {
	return &StepUpHandler{stepUpService: stepUpService}
}

// Challenge handles POST /api/v1/auth/step-up/challenge
func (h *StepUpHandler) Challenge(c *gin.Context) {
	actor, _ := middleware.GetActor(c)

	if !h.stepUpService.Required(actor) {
		c.JSON(http.StatusOK, gin.H{"step_up_required": false})
		return
	}

	if err := h.stepUpService.Challenge(c.Request.Context(), actor); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"message": "verification code sent"})
}

// VerifyRequest carries the one-time code.
type VerifyRequest struct {
	Code string `json:"code" binding:"required"`
}

// Verify handles POST /api/v1/auth/step-up/verify
func (h *StepUpHandler) Verify(c *gin.Context) {
	actor, _ := middleware.GetActor(c)

	var req VerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.stepUpService.Verify(c.Request.Context(), actor, req.Code); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"verified": true})
}

// Status handles GET /api/v1/auth/step-up
func (h *StepUpHandler) Status(c *gin.Context) {
	actor, _ := middleware.GetActor(c)

	verified, err := h.stepUpService.Verified(c.Request.Context(), actor)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"step_up_required": h.stepUpService.Required(actor),
		"verified":         verified,
	})
}
