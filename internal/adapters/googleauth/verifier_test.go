package googleauth

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/Pulkitsaraswat52/facegate/internal/domain/auth"
)

// signToken builds a syntactically valid JWT for the unverified decode path.
// The signature is irrelevant there.
func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-key"))
	require.NoError(t, err)
	return token
}

func insecureVerifier(t *testing.T) *Verifier {
	t.Helper()
	v, err := NewVerifier(context.Background(), Config{InsecureSkipVerify: true})
	require.NoError(t, err)
	return v
}

func TestNewVerifier_RequiresClientIDWhenVerifying(t *testing.T) {
	_, err := NewVerifier(context.Background(), Config{})
	require.Error(t, err)
}

func TestVerify_EmptyTokenIsDecodeError(t *testing.T) {
	v := insecureVerifier(t)

	_, err := v.Verify(context.Background(), "")

	var decodeErr *domainauth.DecodeError
	require.ErrorAs(t, err, &decodeErr)
}

func TestVerify_InsecureDecodeMapsClaims(t *testing.T) {
	v := insecureVerifier(t)
	exp := time.Now().Add(time.Hour).Unix()
	raw := signToken(t, jwt.MapClaims{
		"sub":     "google-sub-123",
		"name":    "Pulkit Saraswat",
		"email":   "pulkit@example.com",
		"picture": "https://lh3.example.com/photo.jpg",
		"exp":     exp,
	})

	identity, err := v.Verify(context.Background(), raw)

	require.NoError(t, err)
	assert.Equal(t, "google-sub-123", identity.Subject)
	assert.Equal(t, "Pulkit Saraswat", identity.Username)
	assert.Equal(t, "pulkit@example.com", identity.Email)
	assert.Equal(t, "https://lh3.example.com/photo.jpg", identity.PictureURL)
	assert.Equal(t, exp, identity.ExpiresAt.Unix())
}

func TestVerify_UsernameFallsBackToEmail(t *testing.T) {
	v := insecureVerifier(t)
	raw := signToken(t, jwt.MapClaims{
		"sub":   "google-sub-456",
		"email": "noname@example.com",
	})

	identity, err := v.Verify(context.Background(), raw)

	require.NoError(t, err)
	assert.Equal(t, "noname@example.com", identity.Username)
}

func TestVerify_GarbageTokenIsDecodeError(t *testing.T) {
	v := insecureVerifier(t)

	_, err := v.Verify(context.Background(), "not-a-jwt")

	var decodeErr *domainauth.DecodeError
	require.ErrorAs(t, err, &decodeErr)
}

func TestVerify_TokenWithoutIdentityClaimsIsDecodeError(t *testing.T) {
	v := insecureVerifier(t)
	raw := signToken(t, jwt.MapClaims{"aud": "someone"})

	_, err := v.Verify(context.Background(), raw)

	var decodeErr *domainauth.DecodeError
	require.ErrorAs(t, err, &decodeErr)
}

func TestFlow_ExchangeRequiresCode(t *testing.T) {
	f := &Flow{}

	_, err := f.Exchange(context.Background(), "")
	require.Error(t, err)
}

func TestRandomString(t *testing.T) {
	a, err := randomString(32)
	require.NoError(t, err)
	b, err := randomString(32)
	require.NoError(t, err)

	assert.Len(t, a, 32)
	assert.NotEqual(t, a, b)
}
