package handler

import (
	"log"
	"net/http"

	"onboarding-backend/internal/apps/user/models"
	"onboarding-backend/internal/apps/user/service"
	"onboarding-backend/internal/common/apperrors"

	"github.com/gin-gonic/gin"
)

// UserHandler handles HTTP requests for user profile operations
type UserHandler struct {
	service service.UserService
}

// NewUserHandler creates a new instance of UserHandler
func NewUserHandler(service service.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// SaveLocation handles POST /save-location
func (h *UserHandler) SaveLocation(c *gin.Context) {
	var req models.SaveLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	user, err := h.service.SaveLocation(req)
	if err != nil {
		respondError(c, err, "Failed to save location details")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "user": user})
}

// SavePersonalDetails handles POST /save-personal-details
func (h *UserHandler) SavePersonalDetails(c *gin.Context) {
	var req models.SavePersonalDetailsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	user, err := h.service.SavePersonalDetails(req)
	if err != nil {
		respondError(c, err, "Failed to save personal details")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "user": user})
}

// GetUserByPhone handles GET /users/by-phone
func (h *UserHandler) GetUserByPhone(c *gin.Context) {
	phone := c.Query("phone")
	if phone == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "phone is required"})
		return
	}

	user, err := h.service.GetUserByPhone(phone)
	if err != nil {
		respondError(c, err, "Failed to fetch user")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "user": user})
}

// respondError maps a service error to its status code, keeping the root
// cause of operational failures out of the response body
func respondError(c *gin.Context, err error, fallback string) {
	status := apperrors.StatusCode(err)
	if status == http.StatusInternalServerError {
		log.Printf("[User Handler] %s %s: %v", c.Request.Method, c.FullPath(), err)
	}
	c.JSON(status, gin.H{"success": false, "error": apperrors.ClientMessage(err, fallback)})
}
