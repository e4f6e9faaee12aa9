package types

import (
	"os"
	"strings"
)

const (
	RoleAdmin       = "admin"
	RoleContributor = "contributor"

	StatusActive    = "active"
	StatusInactive  = "inactive"
	StatusCompleted = "completed"

	// RoleClaimHeader carries the caller's claimed role when the service runs
	// with the header guard.
	RoleClaimHeader = "User-Role"
)

var (
	// Default allowed origins for development
	defaultOrigins = []string{
		"http://localhost:3000",
		"http://localhost:5173",
	}

	AllowedOrigins = initAllowedOrigins()
)

func initAllowedOrigins() []string {
	origins := make([]string, len(defaultOrigins))
	copy(origins, defaultOrigins)

	if clientURL := os.Getenv("CLIENT_URL"); clientURL != "" {
		origins = append(origins, clientURL)
	}

	if allowedOrigins := os.Getenv("ALLOWED_ORIGINS"); allowedOrigins != "" {
		envOrigins := strings.Split(allowedOrigins, ",")
		for _, origin := range envOrigins {
			trimmed := strings.TrimSpace(origin)
			if trimmed != "" {
				origins = append(origins, trimmed)
			}
		}
	}

	return origins
}
