package config

import "strings"

// NotifyConfig contains the server notification channel configuration.
type NotifyConfig struct {
	// Enabled controls whether the websocket channel is opened at all.
	Enabled bool `env:"NOTIFY_ENABLED" envDefault:"true"`

	// URL is the ws:// or wss:// notification endpoint.
	URL string `env:"NOTIFY_WS_URL" envDefault:"ws://localhost:8000/ws"`

	// Origin overrides the handshake origin. Defaults to the http(s) form
	// of URL when empty.
	Origin string `env:"NOTIFY_ORIGIN"`
}

// Sanitize applies guardrails to notification configuration values.
func (c *NotifyConfig) Sanitize() {
	c.URL = strings.TrimSpace(c.URL)
	c.Origin = strings.TrimSpace(c.Origin)
	if c.URL == "" {
		c.Enabled = false
	}
}
