package config

import (
	"os"
	"strings"
)

// AppConfig is the main application configuration struct that composes
// domain-specific configuration from separate files.
//
// Configuration is loaded from environment variables using the
// github.com/caarlos0/env library. See individual domain config
// files for details on available environment variables:
//   - api.go: Identity service API configuration
//   - auth.go: Third-party authentication configuration
//   - capture.go: Camera frame source configuration
//   - notify.go: Notification channel configuration
//   - observability.go: Logging configuration
type AppConfig struct {
	// IsDev controls development mode behavior (static frame source,
	// insecure token decode). Set DEV=true for development mode.
	IsDev bool `env:"DEV" envDefault:"false"`

	// API is the remote identity service configuration.
	API APIConfig

	// Auth is the third-party authentication configuration.
	Auth AuthConfig

	// Capture is the camera frame source configuration.
	Capture CaptureConfig

	// Notify is the server notification channel configuration.
	Notify NotifyConfig

	// Cache is the local profile cache configuration.
	Cache ProfileCacheConfig

	// Observability configuration.
	Observability ObservabilityConfig
}

// Sanitize applies guardrails to configuration values loaded from env.
// This should be called after loading configuration from environment variables.
func (c *AppConfig) Sanitize() {
	c.detectDevMode()

	c.API.Sanitize()
	c.Auth.Sanitize(c.IsDev)
	c.Capture.Sanitize()
	c.Notify.Sanitize()
	c.Cache.Sanitize()
	c.Observability.Sanitize()
}

// detectDevMode checks APP_ENV as a fallback for the DEV flag.
func (c *AppConfig) detectDevMode() {
	if !c.IsDev {
		appEnv := strings.ToLower(os.Getenv("APP_ENV"))
		c.IsDev = appEnv == "development" || appEnv == "dev"
	}
}
