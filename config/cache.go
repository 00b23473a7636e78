package config

import "strings"

// ProfileCacheConfig contains the local third-party profile cache
// configuration.
type ProfileCacheConfig struct {
	// Enabled controls whether third-party profiles are persisted locally.
	Enabled bool `env:"PROFILE_CACHE_ENABLED" envDefault:"true"`

	// Path is the sqlite database file location.
	Path string `env:"PROFILE_CACHE_PATH" envDefault:"facegate-profiles.db"`
}

// Sanitize applies guardrails to profile cache configuration values.
func (c *ProfileCacheConfig) Sanitize() {
	c.Path = strings.TrimSpace(c.Path)
	if c.Path == "" {
		c.Enabled = false
	}
}
