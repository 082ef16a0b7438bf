package utils

import "os"

// GetEnv retrieves an environment variable or returns the default value
func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
