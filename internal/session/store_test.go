package session

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/Pulkitsaraswat52/facegate/internal/domain/auth"
	"github.com/Pulkitsaraswat52/facegate/internal/ports"
)

// stubAPI implements ports.IdentityAPI with configurable profile behavior.
type stubAPI struct {
	profileFunc func(context.Context) (ports.ProfileResult, error)

	// records the loading flag observed while the profile call was in flight
	observedLoading *bool
	store           *Store
}

func (s *stubAPI) VerifyFace(context.Context, domainauth.Frame) (ports.VerifyResult, error) {
	return ports.VerifyResult{}, nil
}

func (s *stubAPI) Login(context.Context, string, string) (ports.LoginResult, error) {
	return ports.LoginResult{}, nil
}

func (s *stubAPI) Register(context.Context, ports.RegisterInput) (ports.LoginResult, error) {
	return ports.LoginResult{}, nil
}

func (s *stubAPI) Profile(ctx context.Context) (ports.ProfileResult, error) {
	if s.observedLoading != nil && s.store != nil {
		*s.observedLoading = s.store.Loading()
	}
	if s.profileFunc != nil {
		return s.profileFunc(ctx)
	}
	return ports.ProfileResult{}, nil
}

func (s *stubAPI) Logout(context.Context) error { return nil }

func TestStore_EstablishReplacesPriorSession(t *testing.T) {
	store := NewStore()

	first := store.Establish(domainauth.Session{Username: "pulkit", Role: domainauth.RoleEmployee, Method: domainauth.MethodBiometric})
	second := store.Establish(domainauth.Session{Username: "ankit", Role: domainauth.RoleAdmin, Method: domainauth.MethodPassword})

	snap := store.Snapshot()
	require.True(t, snap.Authenticated)
	assert.Equal(t, "ankit", snap.Session.Username)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, second.ID, snap.Session.ID)
}

func TestStore_EstablishNormalizesRole(t *testing.T) {
	store := NewStore()

	for _, raw := range []string{"Admin", "ADMIN", "admin"} {
		store.Establish(domainauth.Session{Username: "u", Role: domainauth.Role(raw)})
		snap := store.Snapshot()
		assert.Equal(t, domainauth.RoleAdmin, snap.Session.Role, raw)
		assert.True(t, snap.IsAdmin(), raw)
	}
}

func TestStore_ClearIsIdempotent(t *testing.T) {
	store := NewStore()

	store.Clear()
	store.Establish(domainauth.Session{Username: "u", Role: domainauth.RoleEmployee})
	store.Clear()
	store.Clear()

	snap := store.Snapshot()
	assert.False(t, snap.Authenticated)
	assert.False(t, CanAccess(snap))
}

func TestCanAccess(t *testing.T) {
	store := NewStore()
	assert.False(t, CanAccess(store.Snapshot()))

	store.Establish(domainauth.Session{Username: "u", Role: domainauth.RoleGuest})
	assert.True(t, CanAccess(store.Snapshot()))
}

func TestStore_Restore_Success(t *testing.T) {
	store := NewStore()
	api := &stubAPI{
		profileFunc: func(context.Context) (ports.ProfileResult, error) {
			return ports.ProfileResult{Authenticated: true, Username: "deepak", Role: "Employee"}, nil
		},
	}

	store.Restore(context.Background(), RestoreOptions{API: api})

	snap := store.Snapshot()
	require.True(t, snap.Authenticated)
	assert.Equal(t, "deepak", snap.Session.Username)
	assert.Equal(t, domainauth.RoleEmployee, snap.Session.Role)
	assert.False(t, snap.Loading)
}

func TestStore_Restore_Unauthenticated(t *testing.T) {
	store := NewStore()
	var loadingDuringCall bool
	api := &stubAPI{store: store, observedLoading: &loadingDuringCall}
	api.profileFunc = func(context.Context) (ports.ProfileResult, error) {
		return ports.ProfileResult{Authenticated: false}, nil
	}

	store.Restore(context.Background(), RestoreOptions{API: api})

	snap := store.Snapshot()
	assert.False(t, snap.Authenticated)
	assert.False(t, CanAccess(snap))
	// loading transitioned false -> true (while pending) -> false
	assert.True(t, loadingDuringCall)
	assert.False(t, store.Loading())
}

func TestStore_Restore_TransportFailureNeverPropagates(t *testing.T) {
	store := NewStore()
	api := &stubAPI{
		profileFunc: func(context.Context) (ports.ProfileResult, error) {
			return ports.ProfileResult{}, &domainauth.TransportError{Op: "get profile", Err: errors.New("boom")}
		},
	}

	store.Restore(context.Background(), RestoreOptions{API: api})

	snap := store.Snapshot()
	assert.False(t, snap.Authenticated)
	assert.False(t, store.Loading())
}

func TestStore_Restore_RoleMapperFallback(t *testing.T) {
	store := NewStore()
	api := &stubAPI{
		profileFunc: func(context.Context) (ports.ProfileResult, error) {
			return ports.ProfileResult{Authenticated: true, Username: "Pulkit", Role: ""}, nil
		},
	}

	store.Restore(context.Background(), RestoreOptions{
		API:   api,
		Roles: roleMapperFunc(func(string) domainauth.Role { return domainauth.RoleEmployee }),
	})

	snap := store.Snapshot()
	require.True(t, snap.Authenticated)
	assert.Equal(t, domainauth.RoleEmployee, snap.Session.Role)
}

type roleMapperFunc func(username string) domainauth.Role

func (f roleMapperFunc) Map(username string) domainauth.Role { return f(username) }
