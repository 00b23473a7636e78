package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/Pulkitsaraswat52/facegate/internal/domain/auth"
	"github.com/Pulkitsaraswat52/facegate/internal/ports"
)

func TestMockIdentityAPIDefaults(t *testing.T) {
	api := NewMockIdentityAPI()
	ctx := context.Background()

	result, err := api.VerifyFace(ctx, domainauth.Frame{Data: []byte("jpeg")})
	require.NoError(t, err)
	assert.False(t, result.Matched)

	login, err := api.Login(ctx, "ankit", "secret")
	require.NoError(t, err)
	assert.Equal(t, "ankit", login.Username)

	profile, err := api.Profile(ctx)
	require.NoError(t, err)
	assert.False(t, profile.Authenticated)

	assert.NoError(t, api.Logout(ctx))
}

func TestMockIdentityAPIOverrides(t *testing.T) {
	api := NewMockIdentityAPI()
	api.VerifyFaceFunc = func(context.Context, domainauth.Frame) (ports.VerifyResult, error) {
		return ports.VerifyResult{Matched: true, Username: "ankit", Role: "employee"}, nil
	}

	result, err := api.VerifyFace(context.Background(), domainauth.Frame{})
	require.NoError(t, err)
	assert.True(t, result.Matched)
	assert.Equal(t, "ankit", result.Username)
}

func TestMockTokenVerifierDefaultIdentity(t *testing.T) {
	verifier := NewMockTokenVerifier()

	identity, err := verifier.Verify(context.Background(), "any-token")
	require.NoError(t, err)
	assert.Equal(t, "mock-sub-1", identity.Subject)
	assert.NotEmpty(t, identity.Email)
}

func TestMemoryProfileCache(t *testing.T) {
	cache := NewMemoryProfileCache()

	require.NoError(t, cache.Save(context.Background(), domainauth.Identity{Subject: "sub-1", Username: "ankit"}))

	identity, ok := cache.Saved("sub-1")
	require.True(t, ok)
	assert.Equal(t, "ankit", identity.Username)

	_, ok = cache.Saved("absent")
	assert.False(t, ok)
}
