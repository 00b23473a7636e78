package googleauth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"

	gooidc "github.com/coreos/go-oidc/v3/oidc"
	"golang.org/x/oauth2"
)

// Flow drives a headless OAuth2 authorization-code login against the Google
// issuer. It exists for deployments without the embedded identity widget:
// the operator opens the returned URL, signs in, and pastes the code back.
// The resulting raw ID token is handed to the controller's third-party login
// exactly as a widget callback would be.
type Flow struct {
	config *oauth2.Config
}

// FlowConfig holds configuration for the authorization-code flow.
type FlowConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
	Issuer       string       // defaults to GoogleIssuer
	HTTPClient   *http.Client // optional
}

// NewFlow constructs a Flow, performing one issuer discovery fetch for the
// authorization and token endpoints.
func NewFlow(ctx context.Context, cfg FlowConfig) (*Flow, error) {
	if cfg.ClientID == "" {
		return nil, errors.New("client ID is required")
	}
	if cfg.RedirectURL == "" {
		return nil, errors.New("redirect URL is required")
	}

	issuer := cfg.Issuer
	if issuer == "" {
		issuer = GoogleIssuer
	}
	if cfg.HTTPClient != nil {
		ctx = gooidc.ClientContext(ctx, cfg.HTTPClient)
	}

	provider, err := gooidc.NewProvider(ctx, issuer)
	if err != nil {
		return nil, fmt.Errorf("oidc discovery: %w", err)
	}

	return &Flow{
		config: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Scopes:       []string{gooidc.ScopeOpenID, "profile", "email"},
			Endpoint:     provider.Endpoint(),
		},
	}, nil
}

// Begin returns the provider auth URL and the opaque state the callback must
// echo back.
func (f *Flow) Begin() (authURL, state string, err error) {
	state, err = randomString(32)
	if err != nil {
		return "", "", fmt.Errorf("generate state: %w", err)
	}

	authURL = f.config.AuthCodeURL(state,
		oauth2.SetAuthURLParam("prompt", "select_account"),
	)
	return authURL, state, nil
}

// Exchange redeems the authorization code and returns the raw ID token.
func (f *Flow) Exchange(ctx context.Context, code string) (string, error) {
	if code == "" {
		return "", errors.New("authorization code is required")
	}

	token, err := f.config.Exchange(ctx, code)
	if err != nil {
		return "", fmt.Errorf("exchange code for token: %w", err)
	}

	rawID, ok := token.Extra("id_token").(string)
	if !ok || rawID == "" {
		return "", errors.New("missing id_token in token response")
	}
	return rawID, nil
}

// randomString generates a cryptographically secure URL-safe random string
// of exact length.
func randomString(length int) (string, error) {
	if length <= 0 {
		return "", nil
	}
	nBytes := (length*3 + 3) / 4
	b := make([]byte, nBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	s := base64.RawURLEncoding.EncodeToString(b)
	for len(s) < length {
		extra := make([]byte, 1)
		if _, err := rand.Read(extra); err != nil {
			return "", err
		}
		s += base64.RawURLEncoding.EncodeToString(extra)
	}
	return s[:length], nil
}
