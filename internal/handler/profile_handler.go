package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"news-publisher/internal/domain"
	"news-publisher/internal/middleware"
	"news-publisher/internal/service"
)

// ProfileHandler handles profile reads and admin management.
type ProfileHandler struct {
	profileService service.ProfileServiceInterface
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(profileService service.ProfileServiceInterface) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// Me handles GET /api/v1/profiles/me
func (h *ProfileHandler) Me(c *gin.Context) {
	actor, _ := middleware.GetActor(c)

	profile, err := h.profileService.Get(c.Request.Context(), actor.ID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toProfileResponse(profile))
}

// UpdateMe handles PUT /api/v1/profiles/me
func (h *ProfileHandler) UpdateMe(c *gin.Context) {
	actor, _ := middleware.GetActor(c)

	var req service.UpdateProfileInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, err := h.profileService.UpdateOwn(c.Request.Context(), actor, req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toProfileResponse(profile))
}

// ListProfiles handles GET /api/v1/admin/profiles
func (h *ProfileHandler) ListProfiles(c *gin.Context) {
	actor, _ := middleware.GetActor(c)
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	profiles, err := h.profileService.List(c.Request.Context(), actor, limit, offset)
	if err != nil {
		writeError(c, err)
		return
	}

	out := make([]ProfileResponse, 0, len(profiles))
	for i := range profiles {
		out = append(out, toProfileResponse(&profiles[i]))
	}
	c.JSON(http.StatusOK, gin.H{"profiles": out})
}

// ChangeRoleRequest carries the new role.
type ChangeRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

// ChangeRole handles PUT /api/v1/admin/profiles/:id/role
func (h *ProfileHandler) ChangeRole(c *gin.Context) {
	actor, _ := middleware.GetActor(c)

	var req ChangeRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, err := h.profileService.ChangeRole(c.Request.Context(), actor, c.Param("id"), domain.Role(req.Role))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toProfileResponse(profile))
}

// SetActiveRequest carries the new active flag.
type SetActiveRequest struct {
	Active *bool `json:"active" binding:"required"`
}

// SetActive handles PUT /api/v1/admin/profiles/:id/active
func (h *ProfileHandler) SetActive(c *gin.Context) {
	actor, _ := middleware.GetActor(c)

	var req SetActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, err := h.profileService.SetActive(c.Request.Context(), actor, c.Param("id"), *req.Active)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toProfileResponse(profile))
}

// ProfileEventResponse represents one admin audit record.
type ProfileEventResponse struct {
	ID        string `json:"id"`
	ProfileID string `json:"profile_id"`
	ActorID   string `json:"actor_id"`
	Action    string `json:"action"`
	OldValue  string `json:"old_value,omitempty"`
	NewValue  string `json:"new_value,omitempty"`
	CreatedAt string `json:"created_at"`
}

// ListProfileEvents handles GET /api/v1/admin/profiles/:id/events
func (h *ProfileHandler) ListProfileEvents(c *gin.Context) {
	actor, _ := middleware.GetActor(c)

	events, err := h.profileService.Events(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	out := make([]ProfileEventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, ProfileEventResponse{
			ID:        e.ID,
			ProfileID: e.ProfileID,
			ActorID:   e.ActorID,
			Action:    string(e.Action),
			OldValue:  e.OldValue,
			NewValue:  e.NewValue,
			CreatedAt: e.CreatedAt.Format(TimeFormat),
		})
	}
	c.JSON(http.StatusOK, gin.H{"events": out})
}
