// Package config reads service configuration from the environment.
package config

import (
	"fmt"
	"os"
)

const (
	AuthModeHeader = "header"
	AuthModeToken  = "token"
)

type Config struct {
	Port          string
	MongoURI      string
	MongoDatabase string

	// AuthMode selects the access guard: "header" trusts the User-Role
	// header as presented, "token" verifies a signed bearer token.
	AuthMode  string
	JWTSecret string

	// S3 avatar storage is optional; all four fields must be set together.
	S3AccessKey string
	S3SecretKey string
	S3Region    string
	S3Bucket    string
}

func Load() (*Config, error) {
	cfg := &Config{
		Port:          getEnv("PORT", "3000"),
		MongoURI:      getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase: getEnv("MONGO_DATABASE", "crewdeck"),
		AuthMode:      getEnv("AUTH_MODE", AuthModeHeader),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		S3AccessKey:   os.Getenv("AWS_ACCESS_KEY"),
		S3SecretKey:   os.Getenv("AWS_SECRET_KEY"),
		S3Region:      os.Getenv("AWS_REGION"),
		S3Bucket:      os.Getenv("AWS_BUCKET"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.AuthMode != AuthModeHeader && c.AuthMode != AuthModeToken {
		return fmt.Errorf("AUTH_MODE must be %q or %q, got %q", AuthModeHeader, AuthModeToken, c.AuthMode)
	}

	if c.AuthMode == AuthModeToken && c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required when AUTH_MODE is %q", AuthModeToken)
	}

	s3Fields := []string{c.S3AccessKey, c.S3SecretKey, c.S3Region, c.S3Bucket}
	set := 0
	for _, f := range s3Fields {
		if f != "" {
			set++
		}
	}
	if set != 0 && set != len(s3Fields) {
		return fmt.Errorf("AWS_ACCESS_KEY, AWS_SECRET_KEY, AWS_REGION and AWS_BUCKET must be set together")
	}

	return nil
}

// S3Enabled reports whether avatar storage is configured.
func (c *Config) S3Enabled() bool {
	return c.S3Bucket != ""
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
