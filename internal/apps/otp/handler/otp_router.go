package handler

import (
	"github.com/gin-gonic/gin"
)

// RegisterOTPRoutes registers all OTP routes
func RegisterOTPRoutes(router *gin.RouterGroup, otpHandler *OTPHandler) {
	router.POST("/send-otp", otpHandler.SendOTP)
	router.POST("/verify-otp", otpHandler.VerifyOTP)
}
