package profilecache

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/Pulkitsaraswat52/facegate/internal/domain/auth"
)

func openTestCache(t *testing.T) *Cache {
	t.Helper()

	cache, err := Open(context.Background(), filepath.Join(t.TempDir(), "profiles.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = cache.Close() })
	return cache
}

func TestOpenRequiresPath(t *testing.T) {
	_, err := Open(context.Background(), "")
	assert.Error(t, err)
}

func TestSaveAndLoad(t *testing.T) {
	cache := openTestCache(t)
	ctx := context.Background()

	identity := domainauth.Identity{
		Subject:    "sub-1",
		Username:   "ankit",
		Email:      "ankit@example.com",
		PictureURL: "https://example.com/a.png",
	}
	require.NoError(t, cache.Save(ctx, identity))

	got, err := cache.Load(ctx, "sub-1")
	require.NoError(t, err)
	assert.Equal(t, identity, got)
}

func TestSaveUpserts(t *testing.T) {
	cache := openTestCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Save(ctx, domainauth.Identity{Subject: "sub-1", Username: "ankit"}))
	require.NoError(t, cache.Save(ctx, domainauth.Identity{Subject: "sub-1", Username: "deepak"}))

	got, err := cache.Load(ctx, "sub-1")
	require.NoError(t, err)
	assert.Equal(t, "deepak", got.Username)
}

func TestSaveRequiresSubject(t *testing.T) {
	cache := openTestCache(t)

	err := cache.Save(context.Background(), domainauth.Identity{Username: "ankit"})
	assert.Error(t, err)
}

func TestLoadMissing(t *testing.T) {
	cache := openTestCache(t)

	_, err := cache.Load(context.Background(), "absent")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLatest(t *testing.T) {
	cache := openTestCache(t)
	ctx := context.Background()

	_, err := cache.Latest(ctx)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, cache.Save(ctx, domainauth.Identity{Subject: "sub-1", Username: "ankit"}))

	got, err := cache.Latest(ctx)
	require.NoError(t, err)
	assert.Equal(t, "sub-1", got.Subject)
}

func TestDelete(t *testing.T) {
	cache := openTestCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Save(ctx, domainauth.Identity{Subject: "sub-1", Username: "ankit"}))
	require.NoError(t, cache.Delete(ctx, "sub-1"))

	_, err := cache.Load(ctx, "sub-1")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.NoError(t, cache.Delete(ctx, "sub-1"))
	assert.NoError(t, cache.Delete(ctx, ""))
}
