package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/Pulkitsaraswat52/facegate/config"
	"github.com/Pulkitsaraswat52/facegate/internal/adapters/apiclient"
	"github.com/Pulkitsaraswat52/facegate/internal/adapters/authroles"
	"github.com/Pulkitsaraswat52/facegate/internal/adapters/capture"
	"github.com/Pulkitsaraswat52/facegate/internal/adapters/googleauth"
	"github.com/Pulkitsaraswat52/facegate/internal/adapters/profilecache"
	"github.com/Pulkitsaraswat52/facegate/internal/notifychannel"
	"github.com/Pulkitsaraswat52/facegate/internal/observability/notice"
	"github.com/Pulkitsaraswat52/facegate/internal/ports"
	"github.com/Pulkitsaraswat52/facegate/internal/service"
	"github.com/Pulkitsaraswat52/facegate/internal/session"
)

// Agent holds the wired application services and their shared state.
type Agent struct {
	Sessions   *session.Store
	Controller *service.Controller
	Entries    *service.EntryService
	Roles      ports.RoleMapper
	API        *apiclient.Client
	Notices    notice.Sink

	channel *notifychannel.Channel
	logger  *slog.Logger
	closers []io.Closer
}

// BuildAgent constructs all adapters and services from configuration.
func BuildAgent(ctx context.Context, cfg *config.AppConfig, logger *slog.Logger) (*Agent, error) {
	if cfg == nil {
		return nil, errors.New("app config is required")
	}
	if logger == nil {
		logger = slog.Default()
	}

	agent := &Agent{logger: logger}

	api, err := apiclient.New(apiclient.Config{
		BaseURL: cfg.API.BaseURL,
		Timeout: cfg.API.Timeout,
	})
	if err != nil {
		return nil, fmt.Errorf("build api client: %w", err)
	}
	agent.API = api

	frames, err := buildFrameSource(agent, cfg.Capture, logger)
	if err != nil {
		return nil, err
	}

	var tokens ports.TokenVerifier
	if cfg.Auth.Enabled() {
		verifier, err := googleauth.NewVerifier(ctx, googleauth.Config{
			ClientID:           cfg.Auth.Google.ClientID,
			Issuer:             cfg.Auth.Google.Issuer,
			InsecureSkipVerify: cfg.Auth.InsecureSkipVerify,
		})
		if err != nil {
			agent.close()
			return nil, fmt.Errorf("build token verifier: %w", err)
		}
		tokens = verifier
	}

	var cache ports.ProfileCache
	if cfg.Cache.Enabled {
		pc, err := profilecache.Open(ctx, cfg.Cache.Path)
		if err != nil {
			agent.close()
			return nil, fmt.Errorf("open profile cache: %w", err)
		}
		agent.closers = append(agent.closers, pc)
		cache = pc
	}

	roles := authroles.StaticRoleMapper{Users: authroles.DefaultUsers()}
	sessions := session.NewStore()
	notices := notice.NewLogSink(logger)

	controller, err := service.NewController(service.ControllerOptions{
		API:      api,
		Frames:   frames,
		Tokens:   tokens,
		Roles:    roles,
		Sessions: sessions,
		Cache:    cache,
		Notices:  notices,
		Logger:   logger,
		Interval: cfg.Capture.Interval,
		Navigate: func(path string) {
			logger.Info("navigating", "path", path)
		},
	})
	if err != nil {
		agent.close()
		return nil, fmt.Errorf("build controller: %w", err)
	}

	entries, err := service.NewEntryService(service.EntryServiceOptions{
		API:      api,
		Sessions: sessions,
	})
	if err != nil {
		agent.close()
		return nil, fmt.Errorf("build entry service: %w", err)
	}

	if cfg.Notify.Enabled {
		channel, err := notifychannel.New(notifychannel.Config{
			URL:    cfg.Notify.URL,
			Origin: cfg.Notify.Origin,
			Sink:   notices,
			Logger: logger,
		})
		if err != nil {
			agent.close()
			return nil, fmt.Errorf("build notification channel: %w", err)
		}
		agent.channel = channel
	}

	agent.Sessions = sessions
	agent.Controller = controller
	agent.Entries = entries
	agent.Roles = roles
	agent.Notices = notices
	return agent, nil
}

// buildFrameSource selects the configured frame source.
func buildFrameSource(agent *Agent, cfg config.CaptureConfig, logger *slog.Logger) (ports.FrameSource, error) {
	switch cfg.Mode {
	case config.CaptureModeStatic:
		source := capture.NewStaticSource(nil)
		if cfg.StaticFrame != "" {
			frame, err := os.ReadFile(cfg.StaticFrame)
			if err != nil {
				return nil, fmt.Errorf("read static frame: %w", err)
			}
			source.SetFrame(frame)
		}
		return source, nil
	default:
		source, err := capture.NewSpoolSource(capture.SpoolConfig{
			Dir:    cfg.SpoolDir,
			Logger: logger,
		})
		if err != nil {
			return nil, fmt.Errorf("build spool source: %w", err)
		}
		agent.closers = append(agent.closers, source)
		return source, nil
	}
}

// Run restores any prior server session, then drives the verification loop
// and the notification channel until a shutdown signal arrives.
func (a *Agent) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	defer a.close()

	a.Sessions.Restore(ctx, session.RestoreOptions{
		API:    a.API,
		Roles:  a.Roles,
		Logger: a.logger,
	})

	group, ctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		return a.Controller.Run(ctx)
	})
	if a.channel != nil {
		group.Go(func() error {
			// A failed or dropped channel never brings the agent down.
			if err := a.channel.Run(ctx); err != nil {
				a.logger.Warn("notification channel failed", "error", err)
			}
			return nil
		})
	}

	return group.Wait()
}

func (a *Agent) close() {
	for _, closer := range a.closers {
		if err := closer.Close(); err != nil {
			a.logger.Warn("close failed", "error", err)
		}
	}
	a.closers = nil
}
