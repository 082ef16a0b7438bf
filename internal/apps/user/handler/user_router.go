package handler

import (
	"github.com/gin-gonic/gin"
)

// RegisterUserRoutes registers all user profile routes
func RegisterUserRoutes(router *gin.RouterGroup, userHandler *UserHandler) {
	router.POST("/save-location", userHandler.SaveLocation)
	router.POST("/save-personal-details", userHandler.SavePersonalDetails)
	router.GET("/users/by-phone", userHandler.GetUserByPhone)
}
