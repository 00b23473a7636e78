package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	domainauth "github.com/Pulkitsaraswat52/facegate/internal/domain/auth"
	"github.com/Pulkitsaraswat52/facegate/internal/observability/notice"
	"github.com/Pulkitsaraswat52/facegate/internal/ports"
	"github.com/Pulkitsaraswat52/facegate/internal/session"
)

// State identifies where the controller currently sits in its lifecycle.
type State string

const (
	StateIdle          State = "idle"
	StateCameraArmed   State = "camera_armed"
	StateVerifying     State = "verifying"
	StateRegistering   State = "registering"
	StateThirdParty    State = "third_party"
	StateAuthenticated State = "authenticated"
)

// DashboardPath is the navigation target announced after any successful
// authentication.
const DashboardPath = "/dashboard"

const defaultTickInterval = 3 * time.Second

var errNotRegistering = errors.New("registration has not been started")

// ControllerOptions groups dependencies for Controller.
type ControllerOptions struct {
	API      ports.IdentityAPI
	Frames   ports.FrameSource
	Tokens   ports.TokenVerifier
	Roles    ports.RoleMapper
	Sessions *session.Store
	Cache    ports.ProfileCache // optional
	Notices  notice.Sink        // optional
	Logger   *slog.Logger
	Interval time.Duration
	// Navigate is invoked with the destination path after a session is
	// established. Optional.
	Navigate func(path string)
}

// Controller drives the continuous biometric verification loop and the
// side entrances into it (registration, credential login, third-party
// tokens). It is the only writer of the session cell besides Logout.
//
// At most one verification is in flight at any time; a tick that fires
// while one is pending is dropped, not queued. Once a session is
// established the loop suspends permanently until Logout re-arms it.
type Controller struct {
	api      ports.IdentityAPI
	frames   ports.FrameSource
	tokens   ports.TokenVerifier
	roles    ports.RoleMapper
	sessions *session.Store
	cache    ports.ProfileCache
	notices  notice.Sink
	logger   *slog.Logger
	interval time.Duration
	navigate func(path string)

	mu          sync.Mutex
	camera      bool
	verifying   bool
	registering bool
	thirdParty  bool
	generation  uint64
	draft       domainauth.RegistrationDraft
}

// NewController validates the options and returns an idle controller.
func NewController(opts ControllerOptions) (*Controller, error) {
	if opts.API == nil {
		return nil, errors.New("identity API is required")
	}
	if opts.Frames == nil {
		return nil, errors.New("frame source is required")
	}
	if opts.Sessions == nil {
		return nil, errors.New("session store is required")
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Notices == nil {
		opts.Notices = notice.Discard
	}
	if opts.Interval <= 0 {
		opts.Interval = defaultTickInterval
	}

	return &Controller{
		api:      opts.API,
		frames:   opts.Frames,
		tokens:   opts.Tokens,
		roles:    opts.Roles,
		sessions: opts.Sessions,
		cache:    opts.Cache,
		notices:  opts.Notices,
		logger:   opts.Logger,
		interval: opts.Interval,
		navigate: opts.Navigate,
	}, nil
}

// State reports the current lifecycle position.
func (c *Controller) State() State {
	if c.sessions.Snapshot().Authenticated {
		return StateAuthenticated
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	switch {
	case c.registering:
		return StateRegistering
	case c.thirdParty:
		return StateThirdParty
	case c.verifying:
		return StateVerifying
	case c.camera:
		return StateCameraArmed
	default:
		return StateIdle
	}
}

// Arm enables the polling loop. It is a no-op while a session exists or a
// side flow is active.
func (c *Controller) Arm() {
	if c.sessions.Snapshot().Authenticated {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.registering || c.thirdParty {
		return
	}
	c.camera = true
}

// Tick performs at most one verification round trip. A tick that finds the
// camera disabled, a verification already pending, or no frame available is
// a silent no-op. Errors are absorbed; the next tick retries independently.
func (c *Controller) Tick(ctx context.Context) {
	c.mu.Lock()
	if !c.camera || c.verifying || c.registering || c.thirdParty {
		c.mu.Unlock()
		return
	}
	gen := c.generation
	c.mu.Unlock()

	// Capture failure means the device has not produced a frame; it must
	// never count as a rejection or toggle the in-flight guard.
	frame, err := c.frames.Capture(ctx)
	if err != nil {
		return
	}

	c.mu.Lock()
	if c.generation != gen || !c.camera || c.verifying {
		c.mu.Unlock()
		return
	}
	c.verifying = true
	c.mu.Unlock()

	result, err := c.api.VerifyFace(ctx, frame)

	c.mu.Lock()
	c.verifying = false
	stale := c.generation != gen
	c.mu.Unlock()

	if stale {
		return
	}
	if err != nil {
		c.logger.DebugContext(ctx, "face verification failed", "error", err)
		return
	}
	if !result.Matched {
		return
	}

	c.establish(ctx, establishInput{
		Username: result.Username,
		Role:     domainauth.NormalizeRole(result.Role),
		Method:   domainauth.MethodBiometric,
	})
}

// Run drives Tick at the configured cadence until ctx is cancelled.
func (c *Controller) Run(ctx context.Context) error {
	c.logger.InfoContext(ctx, "starting verification loop", "interval", c.interval)
	c.Arm()

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			c.logger.InfoContext(ctx, "verification loop stopping", "reason", ctx.Err())
			if errors.Is(ctx.Err(), context.Canceled) {
				return nil
			}
			return ctx.Err()
		case <-ticker.C:
			c.Tick(ctx)
		}
	}
}

// BeginRegistration enters the enrollment flow, pausing the polling loop.
func (c *Controller) BeginRegistration() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.registering = true
	c.camera = false
	c.generation++
}

// CancelRegistration leaves the enrollment flow and resumes polling if no
// session exists.
func (c *Controller) CancelRegistration() {
	authenticated := c.sessions.Snapshot().Authenticated

	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.registering {
		return
	}
	c.registering = false
	c.draft = domainauth.RegistrationDraft{}
	c.camera = !authenticated
	c.generation++
}

// Draft returns the pending enrollment draft, retained across a rejected
// attempt so the user can retry without retyping.
func (c *Controller) Draft() domainauth.RegistrationDraft {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.draft
}

// Register enrolls a new user with a freshly captured frame. Field
// validation happens before any capture or network call. A server conflict
// (duplicate username) is surfaced and the draft retained; success
// establishes a session and permanently suspends the loop.
func (c *Controller) Register(ctx context.Context, draft domainauth.RegistrationDraft) error {
	c.mu.Lock()
	if !c.registering {
		c.mu.Unlock()
		return errNotRegistering
	}
	c.draft = draft
	c.mu.Unlock()

	if strings.TrimSpace(draft.Username) == "" {
		return &domainauth.ValidationError{Field: "username"}
	}
	if draft.Password == "" {
		return &domainauth.ValidationError{Field: "password"}
	}

	frame, err := c.frames.Capture(ctx)
	if err != nil {
		return fmt.Errorf("capture enrollment frame: %w", err)
	}

	result, err := c.api.Register(ctx, ports.RegisterInput{
		Username: draft.Username,
		Password: draft.Password,
		RoleName: string(draft.Role),
		Frame:    frame,
	})
	if err != nil {
		var conflict *domainauth.ConflictError
		if errors.As(err, &conflict) {
			c.notices.Send(ctx, notice.Notice{
				Level:      notice.LevelError,
				Message:    conflict.Detail,
				OccurredAt: time.Now(),
			})
		}
		return err
	}

	c.mu.Lock()
	c.registering = false
	c.draft = domainauth.RegistrationDraft{}
	c.mu.Unlock()

	role := domainauth.NormalizeRole(result.Role)
	if result.Role == "" {
		role = domainauth.NormalizeRole(string(draft.Role))
	}
	username := result.Username
	if username == "" {
		username = draft.Username
	}

	c.establish(ctx, establishInput{
		Username: username,
		Role:     role,
		Method:   domainauth.MethodBiometric,
	})
	return nil
}

// PasswordLogin performs a one-shot credential login.
func (c *Controller) PasswordLogin(ctx context.Context, username, password string) error {
	if strings.TrimSpace(username) == "" {
		return &domainauth.ValidationError{Field: "username"}
	}
	if password == "" {
		return &domainauth.ValidationError{Field: "password"}
	}

	result, err := c.api.Login(ctx, username, password)
	if err != nil {
		return err
	}

	role := domainauth.NormalizeRole(result.Role)
	if result.Role == "" && c.roles != nil {
		role = c.roles.Map(result.Username)
	}

	c.establish(ctx, establishInput{
		Username: result.Username,
		Role:     role,
		Method:   domainauth.MethodPassword,
	})
	return nil
}

// ThirdPartyLogin authenticates with a third-party identity token. A token
// that cannot be decoded re-arms the camera unless a session already exists,
// in which case the loop stays suspended.
func (c *Controller) ThirdPartyLogin(ctx context.Context, rawToken string) error {
	if c.tokens == nil {
		return errors.New("third-party login is not configured")
	}

	c.mu.Lock()
	c.thirdParty = true
	c.camera = false
	c.generation++
	c.mu.Unlock()

	identity, err := c.tokens.Verify(ctx, rawToken)
	if err != nil {
		authenticated := c.sessions.Snapshot().Authenticated

		c.mu.Lock()
		c.thirdParty = false
		c.camera = !authenticated
		c.generation++
		c.mu.Unlock()

		c.notices.Send(ctx, notice.Notice{
			Level:      notice.LevelError,
			Message:    "Could not read identity token",
			OccurredAt: time.Now(),
		})
		return err
	}

	role := domainauth.RoleGuest
	if c.roles != nil {
		role = c.roles.Map(identity.Username)
	}

	if c.cache != nil {
		if err := c.cache.Save(ctx, identity); err != nil {
			c.logger.WarnContext(ctx, "persist third-party profile failed", "error", err)
		}
	}

	c.mu.Lock()
	c.thirdParty = false
	c.mu.Unlock()

	c.establish(ctx, establishInput{
		Username: identity.Username,
		Role:     role,
		Method:   domainauth.MethodThirdParty,
		Profile: domainauth.Profile{
			Email:      identity.Email,
			PictureURL: identity.PictureURL,
		},
	})
	return nil
}

// Logout invalidates the server-side session on a best-effort basis, clears
// the cell, and re-arms the polling loop. Idempotent.
func (c *Controller) Logout(ctx context.Context) error {
	if err := c.api.Logout(ctx); err != nil {
		c.logger.WarnContext(ctx, "remote logout failed", "error", err)
	}

	c.sessions.Clear()

	c.mu.Lock()
	c.camera = true
	c.registering = false
	c.thirdParty = false
	c.draft = domainauth.RegistrationDraft{}
	c.generation++
	c.mu.Unlock()

	c.notices.Send(ctx, notice.Notice{
		Level:      notice.LevelInfo,
		Message:    "Logged out",
		OccurredAt: time.Now(),
	})
	return nil
}

type establishInput struct {
	Username string
	Role     domainauth.Role
	Method   domainauth.AuthMethod
	Profile  domainauth.Profile
}

func (c *Controller) establish(ctx context.Context, in establishInput) {
	established := c.sessions.Establish(domainauth.Session{
		Username: in.Username,
		Role:     in.Role,
		Method:   in.Method,
		Profile:  in.Profile,
	})

	c.mu.Lock()
	c.camera = false
	c.generation++
	c.mu.Unlock()

	c.logger.InfoContext(ctx, "session established",
		"username", established.Username,
		"role", established.Role,
		"method", established.Method)
	c.notices.Send(ctx, notice.Notice{
		Level:      notice.LevelSuccess,
		Message:    fmt.Sprintf("Logged in as %s", established.Username),
		OccurredAt: time.Now(),
	})

	if c.navigate != nil {
		c.navigate(DashboardPath)
	}
}
