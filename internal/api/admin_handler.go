package api

import (
	"errors"
	"net/http"

	"crossbox/gym-api/internal/service"

	"github.com/gin-gonic/gin"
)

// AdminHandler serves the admin dashboard. Every route sits behind the admin role.
type AdminHandler struct {
	adminService service.AdminService
}

func NewAdminHandler(adminService service.AdminService) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

type PhotoUploadRequest struct {
	ContentType string `json:"contentType" binding:"required"`
}

// DashboardStats godoc
// @Summary Member, trainer, class and booking counters
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Router /admin/dashboard-stats [get]
func (h *AdminHandler) DashboardStats(c *gin.Context) {
	stats, err := h.adminService.DashboardStats(c.Request.Context())
	if err != nil {
		abortWithAppError(c, err, "Error fetching dashboard statistics")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "stats": stats})
}

func (h *AdminHandler) ListMembers(c *gin.Context) {
	members, err := h.adminService.ListMembers(c.Request.Context())
	if err != nil {
		abortWithAppError(c, err, "Error fetching members")
		return
	}
	respondList(c, members)
}

func (h *AdminHandler) ListTrainers(c *gin.Context) {
	trainers, err := h.adminService.ListTrainers(c.Request.Context())
	if err != nil {
		abortWithAppError(c, err, "Error fetching trainers")
		return
	}
	respondList(c, trainers)
}

func (h *AdminHandler) ListClasses(c *gin.Context) {
	classes, err := h.adminService.ListClasses(c.Request.Context())
	if err != nil {
		abortWithAppError(c, err, "Error fetching classes")
		return
	}
	respondList(c, classes)
}

func (h *AdminHandler) RecentActivity(c *gin.Context) {
	items, err := h.adminService.RecentActivity(c.Request.Context())
	if err != nil {
		abortWithAppError(c, err, "Error fetching recent activity")
		return
	}
	respondList(c, items)
}

// ToggleUser godoc
// @Summary Enable or disable a member account
// @Tags Admin
// @Security BearerAuth
// @Param id path string true "User ID"
// @Router /admin/toggle-user/{id} [put]
func (h *AdminHandler) ToggleUser(c *gin.Context) {
	active, err := h.adminService.ToggleUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithAppError(c, err, "Error updating user status")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "User " + statusWord(active) + " successfully", "isActive": active})
}

func (h *AdminHandler) ToggleTrainer(c *gin.Context) {
	active, err := h.adminService.ToggleTrainer(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithAppError(c, err, "Error updating trainer status")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Trainer " + statusWord(active) + " successfully", "isActive": active})
}

// TrainerPhotoUploadURL godoc
// @Summary Presigned upload URL for a trainer photo
// @Tags Admin
// @Security BearerAuth
// @Accept json
// @Param id path string true "Trainer ID"
// @Param body body PhotoUploadRequest true "Image content type"
// @Router /admin/trainers/{id}/photo-upload-url [post]
func (h *AdminHandler) TrainerPhotoUploadURL(c *gin.Context) {
	var req PhotoUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	upload, err := h.adminService.TrainerPhotoUploadURL(c.Request.Context(), c.Param("id"), req.ContentType)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnsupportedPhotoType):
			abortWithError(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrStorageUnavailable):
			abortWithError(c, http.StatusServiceUnavailable, err.Error())
		default:
			abortWithAppError(c, err, "Could not prepare photo upload")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": upload})
}

func respondList[T any](c *gin.Context, items []T) {
	if items == nil {
		items = []T{}
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(items), "data": items})
}

func statusWord(active bool) string {
	if active {
		return "enabled"
	}
	return "disabled"
}
