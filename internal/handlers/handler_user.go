package handlers

import (
	"log/slog"
	"net/http"

	"github.com/craftscrm/crm_backend/internal/core/domain"
	portssvc "github.com/craftscrm/crm_backend/internal/core/ports/services"
	"github.com/craftscrm/crm_backend/internal/dto"
	"github.com/craftscrm/crm_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// UserHandler serves the authenticated user's own profile.
type UserHandler struct {
	userService portssvc.UserSvcFacade
	systemLog   portssvc.SystemLogSvcFacade
}

// registerUserRoutes wires the self-service profile endpoints.
func registerUserRoutes(rg *gin.RouterGroup, userService portssvc.UserSvcFacade, systemLog portssvc.SystemLogSvcFacade) {
	h := &UserHandler{userService: userService, systemLog: systemLog}

	users := rg.Group("/users")
	users.GET("/me", h.Me)
	users.PUT("/me", h.UpdateMe)
	users.DELETE("/me", h.DeactivateMe)
}

// Me godoc
// @Summary Get the caller's profile
// @Tags users
// @Produce json
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /users/me [get]
func (h *UserHandler) Me(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	user, err := h.userService.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		readFailure(c, err, "Failed to load profile")
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// UpdateMe godoc
// @Summary Update the caller's profile
// @Tags users
// @Accept json
// @Produce json
// @Param profile body dto.UpdateUserRequest true "Profile fields"
// @Success 200 {object} dto.UserResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /users/me [put]
func (h *UserHandler) UpdateMe(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for profile update", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	user, err := h.userService.UpdateUserProfile(c.Request.Context(), userID, req)
	if err != nil {
		readFailure(c, err, "Failed to update profile")
		return
	}

	h.systemLog.Append(c.Request.Context(), "User profile updated", domain.LogCodeChanged, userID)
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// DeactivateMe godoc
// @Summary Deactivate the caller's account
// @Description Soft deletes the account; outstanding tokens stop resolving.
// @Tags users
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /users/me [delete]
func (h *UserHandler) DeactivateMe(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	if err := h.userService.DeactivateUser(c.Request.Context(), userID, userID); err != nil {
		readFailure(c, err, "Failed to deactivate account")
		return
	}

	h.systemLog.Append(c.Request.Context(), "User deactivated", domain.LogCodeChanged, userID)
	c.JSON(http.StatusOK, gin.H{"status": "account deactivated"})
}
