package handler

import (
	"errors"
	"net/http"

	"github.com/PullStackDeveloper/ntd-calculator-user/internal/api/dto"
	"github.com/PullStackDeveloper/ntd-calculator-user/internal/core/domain"
	"github.com/PullStackDeveloper/ntd-calculator-user/internal/core/service"
	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userService *service.UserService
}

func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// GetUser handles GET /v1/user/:username
func (h *UserHandler) GetUser(c *gin.Context) {
	username := c.Param("username")

	user, err := h.userService.FindByUsername(c.Request.Context(), username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:   "Internal Server Error",
			Message: err.Error(),
			Code:    http.StatusInternalServerError,
		})
		return
	}

	// Absent is not an error here; the lookup contract is "user or nothing".
	if user == nil {
		c.JSON(http.StatusOK, nil)
		return
	}

	c.JSON(http.StatusOK, toUserResponse(user))
}

// UpdateStatus handles PATCH /v1/user/:username/status
func (h *UserHandler) UpdateStatus(c *gin.Context) {
	username := c.Param("username")

	var req dto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Bad Request",
			Message: "Status must be either \"active\" or \"inactive\"",
			Code:    http.StatusBadRequest,
		})
		return
	}

	user, err := h.userService.UpdateStatus(c.Request.Context(), username, domain.Status(req.Status))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{
				Error:   "Not Found",
				Message: "User not found",
				Code:    http.StatusNotFound,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:   "Internal Server Error",
			Message: err.Error(),
			Code:    http.StatusInternalServerError,
		})
		return
	}

	c.JSON(http.StatusOK, toUserResponse(user))
}

func toUserResponse(user *domain.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Status:    string(user.Status),
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}
