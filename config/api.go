package config

import (
	"strings"
	"time"
)

// APIConfig contains the remote identity service configuration.
type APIConfig struct {
	// BaseURL is the root of the identity service, e.g. "http://localhost:8000".
	BaseURL string `env:"API_BASE_URL" envDefault:"http://localhost:8000"`

	// Timeout bounds each request round trip.
	Timeout time.Duration `env:"API_TIMEOUT" envDefault:"15s"`
}

// Sanitize applies guardrails to API configuration values.
func (c *APIConfig) Sanitize() {
	c.BaseURL = strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	if c.Timeout <= 0 {
		c.Timeout = 15 * time.Second
	}
}
