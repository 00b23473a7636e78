package session

// Package session holds the process-wide session cell. The cell has an
// explicit writer set (the controller and logout); every other component
// reads immutable snapshots. The cell is also the canonicalization boundary
// for role strings, which arrive with inconsistent casing.

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	domainauth "github.com/Pulkitsaraswat52/facegate/internal/domain/auth"
	"github.com/Pulkitsaraswat52/facegate/internal/ports"
)

// Snapshot is an immutable view of the cell taken at one point in time.
type Snapshot struct {
	Authenticated bool
	Session       domainauth.Session
	Loading       bool
}

// IsAdmin reports whether the snapshot carries an admin session. The role
// was canonicalized on write, so plain equality suffices here.
func (s Snapshot) IsAdmin() bool {
	return s.Authenticated && s.Session.Role.IsAdmin()
}

// CanAccess is the role gate predicate for protected views. While the
// restore call is pending the gate must neither admit nor reject; callers
// check Snapshot.Loading and defer.
func CanAccess(s Snapshot) bool {
	return s.Authenticated
}

// Store is the single mutable session cell.
type Store struct {
	mu      sync.RWMutex
	current *domainauth.Session
	loading bool
}

// NewStore creates an empty, non-loading cell.
func NewStore() *Store {
	return &Store{}
}

// Snapshot returns an immutable view of the current state.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := Snapshot{Loading: s.loading}
	if s.current != nil {
		snap.Authenticated = true
		snap.Session = *s.current
	}
	return snap
}

// Establish atomically replaces any prior session with the given one. The
// role is canonicalized here so all downstream comparisons are exact. A
// missing ID is assigned.
func (s *Store) Establish(sess domainauth.Session) domainauth.Session {
	sess.Role = domainauth.NormalizeRole(string(sess.Role))
	if sess.ID == "" {
		sess.ID = uuid.New().String()
	}
	if sess.EstablishedAt.IsZero() {
		sess.EstablishedAt = time.Now()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = &sess
	return sess
}

// Clear removes the current session. Idempotent: clearing an empty cell is a
// safe no-op.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
}

// Loading reports whether the one-shot restore call is still pending.
func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

func (s *Store) setLoading(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = v
}

// RestoreOptions groups dependencies for Restore.
type RestoreOptions struct {
	API    ports.IdentityAPI
	Roles  ports.RoleMapper // optional fallback when the server omits a role
	Logger *slog.Logger
}

// Restore attempts exactly one recovery of a previously-issued server
// session. Any failure, including "not authenticated", leaves the cell
// Unauthenticated and never propagates a fault to the caller. The loading
// flag is cleared exactly once, covering both outcomes.
func (s *Store) Restore(ctx context.Context, opts RestoreOptions) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	s.setLoading(true)
	defer s.setLoading(false)

	profile, err := opts.API.Profile(ctx)
	if err != nil {
		logger.DebugContext(ctx, "session restore failed", "error", err)
		s.Clear()
		return
	}
	if !profile.Authenticated || profile.Username == "" {
		s.Clear()
		return
	}

	role := domainauth.NormalizeRole(profile.Role)
	if profile.Role == "" && opts.Roles != nil {
		role = opts.Roles.Map(profile.Username)
	}

	// The server does not report which credential mode issued the cookie;
	// only cookie-backed modes can restore, so record it as password.
	restored := s.Establish(domainauth.Session{
		Username: profile.Username,
		Role:     role,
		Method:   domainauth.MethodPassword,
	})
	logger.InfoContext(ctx, "session restored", "username", restored.Username, "role", restored.Role)
}
