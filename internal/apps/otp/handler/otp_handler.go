package handler

import (
	"log"
	"net/http"

	"onboarding-backend/internal/apps/otp/models"
	"onboarding-backend/internal/apps/otp/service"
	"onboarding-backend/internal/common/apperrors"

	"github.com/gin-gonic/gin"
)

// OTPHandler handles HTTP endpoints for OTP issuance and verification
type OTPHandler struct {
	service service.OTPService
}

// NewOTPHandler creates a new instance of OTPHandler
func NewOTPHandler(service service.OTPService) *OTPHandler {
	return &OTPHandler{service: service}
}

// SendOTP handles POST /send-otp
func (h *OTPHandler) SendOTP(c *gin.Context) {
	var req models.SendOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	resp, err := h.service.SendOTP(req)
	if err != nil {
		respondError(c, err, "Failed to send OTP")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"otp":          resp.Otp,
		"sessionToken": resp.SessionToken,
	})
}

// VerifyOTP handles POST /verify-otp
func (h *OTPHandler) VerifyOTP(c *gin.Context) {
	var req models.VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	user, err := h.service.VerifyOTP(req)
	if err != nil {
		respondError(c, err, "Error verifying OTP")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "user": user})
}

// respondError maps a service error to its status code, keeping the root
// cause of operational failures out of the response body
func respondError(c *gin.Context, err error, fallback string) {
	status := apperrors.StatusCode(err)
	if status == http.StatusInternalServerError {
		log.Printf("[OTP Handler] %s %s: %v", c.Request.Method, c.FullPath(), err)
	}
	c.JSON(status, gin.H{"success": false, "error": apperrors.ClientMessage(err, fallback)})
}
