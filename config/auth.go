package config

// GoogleConfig contains the Google OAuth/OIDC client configuration used for
// third-party logins.
type GoogleConfig struct {
	ClientID     string `env:"CLIENT_ID"`
	ClientSecret string `env:"CLIENT_SECRET"`
	RedirectURL  string `env:"REDIRECT_URL"  envDefault:"http://localhost:8080/auth/callback"`
	Issuer       string `env:"ISSUER"        envDefault:"https://accounts.google.com"`
}

// AuthConfig groups all third-party authentication configuration.
type AuthConfig struct {
	// Google client configuration.
	Google GoogleConfig `envPrefix:"GOOGLE_"`

	// InsecureSkipVerify disables identity token signature verification,
	// decoding claims as-is. Only honored in development mode.
	InsecureSkipVerify bool `env:"AUTH_INSECURE_DECODE" envDefault:"false"`
}

// Sanitize applies guardrails to auth configuration values. Unverified token
// decode never survives outside development mode.
func (c *AuthConfig) Sanitize(isDev bool) {
	if !isDev {
		c.InsecureSkipVerify = false
	}
}

// Enabled reports whether third-party login is configured at all.
func (c *AuthConfig) Enabled() bool {
	return c.Google.ClientID != "" || c.InsecureSkipVerify
}
