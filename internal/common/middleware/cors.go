package middleware

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// SetupCORS configures CORS for the onboarding endpoints. The API surface is
// POST forms plus two GETs, so only those methods are allowed, and no auth
// headers are accepted.
func SetupCORS(env string) gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOrigins:  getAllowedOrigins(env),
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	})
}

func getAllowedOrigins(env string) []string {
	if originsEnv := os.Getenv("ONBOARDING_CORS_ORIGINS"); originsEnv != "" {
		return parseOrigins(originsEnv)
	}

	if env == "prod" {
		log.Fatal("ONBOARDING_CORS_ORIGINS must be set in production")
	}

	return []string{"*"}
}

func parseOrigins(origins string) []string {
	parts := strings.Split(origins, ",")
	var result []string

	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}
