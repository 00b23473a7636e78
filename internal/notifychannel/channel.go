package notifychannel

// Package notifychannel maintains the server notification channel. It
// connects once, greets the server, announces the connection, and forwards
// every text frame to the notice sink verbatim. A dropped connection is
// reported and left closed; there is no reconnect.

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"time"

	"golang.org/x/net/websocket"

	"github.com/Pulkitsaraswat52/facegate/internal/observability/notice"
)

// Config carries the channel dependencies.
type Config struct {
	// URL is the ws:// or wss:// endpoint.
	URL string
	// Origin is sent in the handshake. Defaults to the http(s) form of URL.
	Origin string
	Sink   notice.Sink
	Logger *slog.Logger
}

// Channel is a single-shot websocket listener.
type Channel struct {
	url    string
	origin string
	sink   notice.Sink
	logger *slog.Logger
}

// New validates the config and returns an unconnected channel.
func New(cfg Config) (*Channel, error) {
	parsed, err := url.Parse(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parse channel url: %w", err)
	}
	if parsed.Scheme != "ws" && parsed.Scheme != "wss" {
		return nil, fmt.Errorf("channel url scheme must be ws or wss, got %q", parsed.Scheme)
	}
	if cfg.Sink == nil {
		return nil, errors.New("notice sink is required")
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.Origin == "" {
		cfg.Origin = httpOrigin(parsed)
	}

	return &Channel{
		url:    cfg.URL,
		origin: cfg.Origin,
		sink:   cfg.Sink,
		logger: cfg.Logger,
	}, nil
}

// Greeting is written to the socket right after the handshake so the
// server can tell a live client from a half-open connection.
const Greeting = "Hello from the facegate client"

// Run connects and forwards frames until the server closes the connection
// or ctx is cancelled. It returns nil on a clean server close and on
// cancellation; only the initial dial reports an error.
func (c *Channel) Run(ctx context.Context) error {
	conn, err := websocket.Dial(c.url, "", c.origin)
	if err != nil {
		return fmt.Errorf("dial notification channel: %w", err)
	}
	defer conn.Close()

	if err := websocket.Message.Send(conn, Greeting); err != nil {
		return fmt.Errorf("send channel greeting: %w", err)
	}

	c.sink.Send(ctx, notice.Notice{
		Level:      notice.LevelSuccess,
		Message:    "Connected to server notifications",
		OccurredAt: time.Now(),
	})
	c.logger.Info("notification channel connected", "url", c.url)

	done := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
			conn.Close()
		case <-done:
		}
	}()
	defer close(done)

	for {
		var message string
		if err := websocket.Message.Receive(conn, &message); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			if !errors.Is(err, io.EOF) {
				c.logger.Warn("notification channel read failed", "error", err)
			}
			c.sink.Send(ctx, notice.Notice{
				Level:      notice.LevelWarning,
				Message:    "Server notifications disconnected",
				OccurredAt: time.Now(),
			})
			return nil
		}

		c.sink.Send(ctx, notice.Notice{
			Level:      notice.LevelInfo,
			Message:    message,
			OccurredAt: time.Now(),
		})
	}
}

func httpOrigin(u *url.URL) string {
	scheme := "http"
	if u.Scheme == "wss" {
		scheme = "https"
	}
	return scheme + "://" + u.Host
}
