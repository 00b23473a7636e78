package ports

// Package ports defines interfaces (hexagonal ports) for the session agent.
// Implementations live in internal/adapters; orchestration in internal/service.

import (
	"context"

	domainauth "github.com/Pulkitsaraswat52/facegate/internal/domain/auth"
)

// FrameSource produces still-image frames on demand from a live device.
// Capture returns ErrNoFrame (from the implementing adapter) when the device
// has not produced a frame yet; that is not an error condition for callers.
type FrameSource interface {
	Capture(ctx context.Context) (domainauth.Frame, error)
}

// VerifyResult is the normalized outcome of one face verification round trip.
// Matched=false with a nil error is the expected steady state while scanning.
type VerifyResult struct {
	Matched  bool
	Username string
	Role     string // raw server casing; callers normalize
}

// LoginResult is the normalized outcome of a credential or registration call.
type LoginResult struct {
	Username string
	Role     string // raw server casing; callers normalize
}

// ProfileResult carries the server's view of an existing session, used only
// for restore-on-start. Authenticated=false means no session cookie was
// honored; it is not an error.
type ProfileResult struct {
	Authenticated bool
	Username      string
	Role          string // raw server casing; callers normalize
}

// RegisterInput groups parameters for a remote registration call.
type RegisterInput struct {
	Username string
	Password string
	RoleName string // lowercased before transmission
	Frame    domainauth.Frame
}

// IdentityAPI is the request/response boundary to the remote identity service.
// All calls carry the cookie-based session credentials of the agent.
type IdentityAPI interface {
	// VerifyFace submits one frame. A non-match is reported via
	// VerifyResult.Matched, not via error.
	VerifyFace(ctx context.Context, frame domainauth.Frame) (VerifyResult, error)

	// Login performs a one-shot username/password login.
	Login(ctx context.Context, username, password string) (LoginResult, error)

	// Register enrolls a new user with a captured frame. A duplicate username
	// is reported as a ConflictError.
	Register(ctx context.Context, in RegisterInput) (LoginResult, error)

	// Profile fetches the current server-side session, if any.
	Profile(ctx context.Context) (ProfileResult, error)

	// Logout invalidates the server-side session.
	Logout(ctx context.Context) error
}

// Entry is one opaque string-valued record scoped by username.
type Entry struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Data     string `json:"data"`
}

// FaceRecord is one registered biometric record, display only.
type FaceRecord struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	ImageLink string `json:"image_link"`
}

// EntriesAPI is the CRUD boundary for username-scoped records and the
// read-only registered-faces listing.
type EntriesAPI interface {
	ListEntries(ctx context.Context) ([]Entry, error)
	AddEntry(ctx context.Context, data string) (Entry, error)
	UpdateEntry(ctx context.Context, id int64, data string) (Entry, error)
	DeleteEntry(ctx context.Context, id int64) error
	ListFaces(ctx context.Context) ([]FaceRecord, error)
}

// TokenVerifier validates a third-party identity token and extracts its
// claims. A malformed or unverifiable token is reported as a DecodeError.
type TokenVerifier interface {
	Verify(ctx context.Context, rawToken string) (domainauth.Identity, error)
}

// RoleMapper resolves the application role for a username when the server
// response does not assert one.
type RoleMapper interface {
	Map(username string) domainauth.Role
}

// ProfileCache persists third-party profiles locally for display continuity
// across restarts. It never participates in session establishment.
type ProfileCache interface {
	Save(ctx context.Context, identity domainauth.Identity) error
}
