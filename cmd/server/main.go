package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	otphandler "onboarding-backend/internal/apps/otp/handler"
	otprepository "onboarding-backend/internal/apps/otp/repository"
	otpservice "onboarding-backend/internal/apps/otp/service"
	userhandler "onboarding-backend/internal/apps/user/handler"
	userrepository "onboarding-backend/internal/apps/user/repository"
	userservice "onboarding-backend/internal/apps/user/service"
	"onboarding-backend/internal/common/database"
	"onboarding-backend/internal/common/middleware"
	"onboarding-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	env := utils.GetEnv("GO_ENV", "dev")

	// Database configuration
	dbConfig := database.Config{
		Host:     utils.GetEnv("DB_HOST", "localhost"),
		Port:     utils.GetEnv("DB_PORT", "5432"),
		User:     utils.GetEnv("DB_USER", "postgres"),
		Password: utils.GetEnv("DB_PASSWORD", "postgres"),
		DBName:   utils.GetEnv("DB_NAME", "onboarding"),
		SSLMode:  utils.GetEnv("DB_SSL_MODE", "disable"),
	}

	// Connect to database
	db, err := database.NewConnection(dbConfig)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// SMS provider selection: Twilio when configured, no-op otherwise
	twilioSID := utils.GetEnv("TWILIO_ACCOUNT_SID", "")
	twilioToken := utils.GetEnv("TWILIO_AUTH_TOKEN", "")
	fromNumber := utils.GetEnv("TWILIO_FROM_NUMBER", "+19093655548")

	var smsProvider otpservice.SMSProvider
	if twilioSID != "" && twilioToken != "" {
		smsProvider = otpservice.NewTwilioProvider(twilioSID, twilioToken)
	} else {
		if env == "prod" {
			log.Fatal("Twilio credentials not configured")
		}
		log.Println("Twilio credentials not configured, SMS sending disabled")
		smsProvider = otpservice.NewNoOpProvider()
	}

	// Initialize dependencies
	userRepo := userrepository.NewUserRepository(db)
	userService := userservice.NewUserService(userRepo)
	userHandler := userhandler.NewUserHandler(userService)

	otpRepo := otprepository.NewOTPRepository(db)
	otpService := otpservice.NewOTPService(otpRepo, userRepo, smsProvider, fromNumber)
	otpHandler := otphandler.NewOTPHandler(otpService)

	// Background redelivery of OTPs whose synchronous dispatch failed
	dispatcher := otpservice.NewDispatcher(otpRepo, smsProvider, fromNumber, 30*time.Second)
	dispatcher.Start()

	// Setup Gin router
	ginMode := utils.GetEnv("GIN_MODE", "release")
	gin.SetMode(ginMode)

	router := gin.Default()

	// Setup CORS middleware
	router.Use(middleware.SetupCORS(env))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Server is running",
		})
	})

	// Onboarding flow routes
	root := router.Group("")
	{
		otphandler.RegisterOTPRoutes(root, otpHandler)
		userhandler.RegisterUserRoutes(root, userHandler)
	}

	// Start server
	port := utils.GetEnv("PORT", "8080")
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on port %s", port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Shut down the dispatcher and drain in-flight requests on SIGINT/SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	log.Println("Shutting down")
	dispatcher.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown: %v", err)
	}
}
