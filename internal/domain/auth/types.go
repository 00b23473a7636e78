package auth

// Package auth contains domain-level types for authentication and sessions.
// It is pure and free of framework/adapter concerns.

import (
	"strings"
	"time"
)

// Role represents an application's authorization role.
// Keep string form for easy persistence and comparison.
// Valid values are defined as constants below.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleEmployee Role = "employee"
	RoleGuest    Role = "guest"
)

// NormalizeRole canonicalizes a role string to its lowercase form.
// Role strings arrive from two sources with inconsistent casing (the static
// lookup table and server payloads), so every ingress path must pass through
// here before the value is stored or compared.
func NormalizeRole(s string) Role {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(RoleAdmin):
		return RoleAdmin
	case string(RoleEmployee):
		return RoleEmployee
	default:
		return RoleGuest
	}
}

// IsAdmin returns true if the role grants administrative visibility.
func (r Role) IsAdmin() bool { return r == RoleAdmin }

// AuthMethod identifies which credential mode established a session.
type AuthMethod string

const (
	MethodPassword   AuthMethod = "password"
	MethodBiometric  AuthMethod = "biometric"
	MethodThirdParty AuthMethod = "thirdparty"
)

// Profile carries optional fields asserted by a third-party identity provider.
type Profile struct {
	Email      string `json:"email,omitempty"`
	PictureURL string `json:"picture_url,omitempty"`
}

// Session is the single authoritative record of who is currently logged in
// and by what method. At most one exists process-wide at any time.
type Session struct {
	ID            string     `json:"id"`
	Username      string     `json:"username"`
	Role          Role       `json:"role"`
	Method        AuthMethod `json:"method"`
	Profile       Profile    `json:"profile"`
	EstablishedAt time.Time  `json:"established_at"`
}

// IsGuest returns true if the session role is guest.
func (s Session) IsGuest() bool { return s.Role == RoleGuest }

// Identity represents a principal asserted by a third-party identity token.
// Adapters map provider-specific claims into this shape.
type Identity struct {
	Subject    string // stable provider identifier (sub)
	Username   string // display name claim
	Email      string
	PictureURL string
	ExpiresAt  time.Time // absolute expiry from the token
}

// Frame is one still image captured from the camera device. It exists only
// for the duration of a single verification round trip and is never persisted.
type Frame struct {
	Data       []byte
	CapturedAt time.Time
}

// RegistrationDraft holds the pending inputs of the registration form.
type RegistrationDraft struct {
	Username string
	Password string
	Role     Role
}
