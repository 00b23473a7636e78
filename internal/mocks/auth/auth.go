package auth

// Package auth contains simple hand-written test doubles for the auth ports.
// These are lightweight and suitable for unit tests without codegen.

import (
	"context"
	"sync"
	"time"

	domainauth "github.com/Pulkitsaraswat52/facegate/internal/domain/auth"
	"github.com/Pulkitsaraswat52/facegate/internal/ports"
)

// Ensure compile-time conformance to ports.
var (
	_ ports.IdentityAPI   = (*MockIdentityAPI)(nil)
	_ ports.TokenVerifier = (*MockTokenVerifier)(nil)
	_ ports.FrameSource   = (*MockFrameSource)(nil)
	_ ports.ProfileCache  = (*MemoryProfileCache)(nil)
)

// MockIdentityAPI simulates the remote identity service with deterministic
// defaults. Each method prefers its Func override when set.
type MockIdentityAPI struct {
	VerifyFaceFunc func(ctx context.Context, frame domainauth.Frame) (ports.VerifyResult, error)
	LoginFunc      func(ctx context.Context, username, password string) (ports.LoginResult, error)
	RegisterFunc   func(ctx context.Context, in ports.RegisterInput) (ports.LoginResult, error)
	ProfileFunc    func(ctx context.Context) (ports.ProfileResult, error)
	LogoutFunc     func(ctx context.Context) error

	// DefaultMatch is returned by VerifyFace when no override is set.
	DefaultMatch ports.VerifyResult
}

// NewMockIdentityAPI creates a MockIdentityAPI whose default verification
// reports a non-match, the steady state while scanning.
func NewMockIdentityAPI() *MockIdentityAPI {
	return &MockIdentityAPI{}
}

func (m *MockIdentityAPI) VerifyFace(ctx context.Context, frame domainauth.Frame) (ports.VerifyResult, error) {
	if m.VerifyFaceFunc != nil {
		return m.VerifyFaceFunc(ctx, frame)
	}
	return m.DefaultMatch, nil
}

func (m *MockIdentityAPI) Login(ctx context.Context, username, password string) (ports.LoginResult, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, username, password)
	}
	return ports.LoginResult{Username: username}, nil
}

func (m *MockIdentityAPI) Register(ctx context.Context, in ports.RegisterInput) (ports.LoginResult, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, in)
	}
	return ports.LoginResult{Username: in.Username, Role: in.RoleName}, nil
}

func (m *MockIdentityAPI) Profile(ctx context.Context) (ports.ProfileResult, error) {
	if m.ProfileFunc != nil {
		return m.ProfileFunc(ctx)
	}
	return ports.ProfileResult{}, nil
}

func (m *MockIdentityAPI) Logout(ctx context.Context) error {
	if m.LogoutFunc != nil {
		return m.LogoutFunc(ctx)
	}
	return nil
}

// MockTokenVerifier decodes every token into a fixed identity unless
// VerifyFunc is set.
type MockTokenVerifier struct {
	VerifyFunc      func(ctx context.Context, rawToken string) (domainauth.Identity, error)
	DefaultIdentity domainauth.Identity
}

// NewMockTokenVerifier creates a verifier with a plausible default identity.
func NewMockTokenVerifier() *MockTokenVerifier {
	return &MockTokenVerifier{
		DefaultIdentity: domainauth.Identity{
			Subject:   "mock-sub-1",
			Username:  "Mock User",
			Email:     "mock.user@example.com",
			ExpiresAt: time.Now().Add(time.Hour),
		},
	}
}

func (m *MockTokenVerifier) Verify(ctx context.Context, rawToken string) (domainauth.Identity, error) {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(ctx, rawToken)
	}
	return m.DefaultIdentity, nil
}

// MockFrameSource serves a fixed frame, or CaptureFunc when set.
type MockFrameSource struct {
	CaptureFunc func(ctx context.Context) (domainauth.Frame, error)
	Frame       domainauth.Frame
}

func (m *MockFrameSource) Capture(ctx context.Context) (domainauth.Frame, error) {
	if m.CaptureFunc != nil {
		return m.CaptureFunc(ctx)
	}
	return m.Frame, nil
}

// MemoryProfileCache is an in-memory ProfileCache for tests.
type MemoryProfileCache struct {
	mu       sync.Mutex
	profiles map[string]domainauth.Identity
}

// NewMemoryProfileCache creates an empty cache.
func NewMemoryProfileCache() *MemoryProfileCache {
	return &MemoryProfileCache{profiles: make(map[string]domainauth.Identity)}
}

func (m *MemoryProfileCache) Save(_ context.Context, identity domainauth.Identity) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.profiles[identity.Subject] = identity
	return nil
}

// Saved returns the cached identity for a subject and whether it exists.
func (m *MemoryProfileCache) Saved(subject string) (domainauth.Identity, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	identity, ok := m.profiles[subject]
	return identity, ok
}
