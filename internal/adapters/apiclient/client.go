package apiclient

// Package apiclient implements the IdentityAPI and EntriesAPI ports against
// the remote face-recognition service. All calls ride on a shared cookie jar
// so the server-issued session credential accompanies every request; there is
// no bearer-token scheme.

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	jmespath "github.com/jmespath-community/go-jmespath"
	"golang.org/x/net/publicsuffix"

	domainauth "github.com/Pulkitsaraswat52/facegate/internal/domain/auth"
	"github.com/Pulkitsaraswat52/facegate/internal/ports"
)

// frameFileName is the filename the service expects for uploaded frames.
const frameFileName = "face.jpg"

// profileRoleExpr extracts the role from a /me/ response. The service has
// returned both a flat string ("role": "admin") and a nested object
// ("role": {"name": "admin"}) across versions; the expression tolerates both.
const profileRoleExpr = "role.name || role"

// Config holds configuration for the API client.
type Config struct {
	BaseURL    string
	Timeout    time.Duration // default 15s when zero
	HTTPClient *http.Client  // optional; a cookie jar is installed if absent
}

// Client is a stateless request/response wrapper around the identity
// service. It holds no session state beyond the transport cookie jar.
type Client struct {
	baseURL *url.URL
	client  *http.Client
}

// Compile-time conformance to the ports.
var (
	_ ports.IdentityAPI = (*Client)(nil)
	_ ports.EntriesAPI  = (*Client)(nil)
)

// New creates an API client for the given base URL.
func New(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New("base URL is required")
	}
	base, err := url.Parse(strings.TrimSuffix(cfg.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse base URL: %w", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("base URL %q must be absolute", cfg.BaseURL)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	hc := cfg.HTTPClient
	if hc == nil {
		jar, jarErr := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
		if jarErr != nil {
			return nil, fmt.Errorf("create cookie jar: %w", jarErr)
		}
		hc = &http.Client{Timeout: timeout, Jar: jar}
	}

	// Validate the role expression up front; evaluation happens per call.
	if _, err = jmespath.Compile(profileRoleExpr); err != nil {
		return nil, fmt.Errorf("compile role expression: %w", err)
	}

	return &Client{
		baseURL: base,
		client:  hc,
	}, nil
}

// authResponse is the common shape of login-style responses.
type authResponse struct {
	Success  bool   `json:"success"`
	Username string `json:"username"`
	Role     string `json:"role"`
	Detail   string `json:"detail"`
}

// VerifyFace submits one frame to POST /face-login/. An unmatched face is an
// expected outcome, reported via VerifyResult.Matched with a nil error.
func (c *Client) VerifyFace(ctx context.Context, frame domainauth.Frame) (ports.VerifyResult, error) {
	body, contentType, err := frameForm(frame, nil)
	if err != nil {
		return ports.VerifyResult{}, fmt.Errorf("encode frame: %w", err)
	}

	var resp authResponse
	status, err := c.post(ctx, "/face-login/", contentType, body, &resp)
	if err != nil {
		return ports.VerifyResult{}, &domainauth.TransportError{Op: "face login", Err: err}
	}
	if status < 200 || status >= 300 {
		return ports.VerifyResult{}, &domainauth.TransportError{
			Op:  "face login",
			Err: fmt.Errorf("unexpected status %d", status),
		}
	}
	if !resp.Success {
		return ports.VerifyResult{Matched: false}, nil
	}
	return ports.VerifyResult{Matched: true, Username: resp.Username, Role: resp.Role}, nil
}

// Login performs a one-shot credential login via POST /login/.
func (c *Client) Login(ctx context.Context, username, password string) (ports.LoginResult, error) {
	payload, err := json.Marshal(map[string]string{
		"username": username,
		"password": password,
	})
	if err != nil {
		return ports.LoginResult{}, fmt.Errorf("encode credentials: %w", err)
	}

	var resp authResponse
	status, err := c.post(ctx, "/login/", "application/json", bytes.NewReader(payload), &resp)
	if err != nil {
		return ports.LoginResult{}, &domainauth.TransportError{Op: "login", Err: err}
	}
	if status < 200 || status >= 300 || !resp.Success {
		detail := resp.Detail
		if detail == "" {
			detail = "invalid credentials"
		}
		return ports.LoginResult{}, &domainauth.TransportError{Op: "login", Err: errors.New(detail)}
	}
	return ports.LoginResult{Username: resp.Username, Role: resp.Role}, nil
}

// Register enrolls a new user via POST /register/ with a multipart form of
// username, password, file and role_name (lowercased). A duplicate username
// surfaces as a ConflictError carrying the server-provided detail.
func (c *Client) Register(ctx context.Context, in ports.RegisterInput) (ports.LoginResult, error) {
	body, contentType, err := frameForm(in.Frame, map[string]string{
		"username":  in.Username,
		"password":  in.Password,
		"role_name": strings.ToLower(in.RoleName),
	})
	if err != nil {
		return ports.LoginResult{}, fmt.Errorf("encode registration form: %w", err)
	}

	var resp authResponse
	status, err := c.post(ctx, "/register/", contentType, body, &resp)
	if err != nil {
		return ports.LoginResult{}, &domainauth.TransportError{Op: "register", Err: err}
	}
	if status >= 400 && status < 500 {
		detail := resp.Detail
		if detail == "" {
			detail = "registration failed"
		}
		return ports.LoginResult{}, &domainauth.ConflictError{Detail: detail}
	}
	if status < 200 || status >= 300 || !resp.Success {
		return ports.LoginResult{}, &domainauth.TransportError{
			Op:  "register",
			Err: fmt.Errorf("unexpected status %d", status),
		}
	}
	return ports.LoginResult{Username: resp.Username, Role: resp.Role}, nil
}

// Profile fetches GET /me/, used only for session restore. An
// unauthenticated response is not an error.
func (c *Client) Profile(ctx context.Context) (ports.ProfileResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint("/me/"), nil)
	if err != nil {
		return ports.ProfileResult{}, fmt.Errorf("create profile request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return ports.ProfileResult{}, &domainauth.TransportError{Op: "get profile", Err: err}
	}
	defer closeBody(resp)

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return ports.ProfileResult{Authenticated: false}, nil
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return ports.ProfileResult{}, &domainauth.TransportError{
			Op:  "get profile",
			Err: fmt.Errorf("unexpected status %d", resp.StatusCode),
		}
	}

	var raw map[string]any
	if decodeErr := json.NewDecoder(resp.Body).Decode(&raw); decodeErr != nil {
		return ports.ProfileResult{}, &domainauth.TransportError{Op: "get profile", Err: decodeErr}
	}

	username, _ := raw["username"].(string)
	if username == "" {
		return ports.ProfileResult{Authenticated: false}, nil
	}

	return ports.ProfileResult{Authenticated: true, Username: username, Role: extractRole(raw)}, nil
}

// extractRole evaluates the role expression over the raw profile payload,
// tolerating both role shapes historically returned by the service.
func extractRole(raw map[string]any) string {
	v, err := jmespath.Search(profileRoleExpr, raw)
	if err != nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// Logout invalidates the server-side session via POST /logout/.
func (c *Client) Logout(ctx context.Context) error {
	status, err := c.post(ctx, "/logout/", "application/json", strings.NewReader("{}"), nil)
	if err != nil {
		return &domainauth.TransportError{Op: "logout", Err: err}
	}
	if status < 200 || status >= 300 {
		return &domainauth.TransportError{Op: "logout", Err: fmt.Errorf("unexpected status %d", status)}
	}
	return nil
}

// post issues a POST and decodes a JSON body into out when out is non-nil.
// The HTTP status is returned alongside so callers can classify 4xx bodies.
func (c *Client) post(ctx context.Context, path, contentType string, body io.Reader, out any) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(path), body)
	if err != nil {
		return 0, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := c.client.Do(req)
	if err != nil {
		return 0, err
	}
	defer closeBody(resp)

	if out != nil {
		// Decode regardless of status: error bodies carry {"detail": ...}.
		if decodeErr := json.NewDecoder(resp.Body).Decode(out); decodeErr != nil && !errors.Is(decodeErr, io.EOF) {
			if resp.StatusCode >= 200 && resp.StatusCode < 300 {
				return resp.StatusCode, fmt.Errorf("decode response: %w", decodeErr)
			}
		}
	}
	return resp.StatusCode, nil
}

func (c *Client) endpoint(path string) string {
	return c.baseURL.String() + path
}

// frameForm builds a multipart body with the frame under the "file" field
// plus any extra string fields.
func frameForm(frame domainauth.Frame, fields map[string]string) (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			return nil, "", fmt.Errorf("write field %s: %w", k, err)
		}
	}

	fw, err := w.CreateFormFile("file", frameFileName)
	if err != nil {
		return nil, "", fmt.Errorf("create file part: %w", err)
	}
	if _, err = fw.Write(frame.Data); err != nil {
		return nil, "", fmt.Errorf("write frame: %w", err)
	}
	if err = w.Close(); err != nil {
		return nil, "", fmt.Errorf("finalize form: %w", err)
	}
	return &buf, w.FormDataContentType(), nil
}

func closeBody(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}
