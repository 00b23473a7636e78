package capture

// Package capture provides frame-source adapters for the session agent. The
// production source watches a spool directory that a camera daemon writes
// JPEG frames into; the agent never talks to the video device directly.

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	domainauth "github.com/Pulkitsaraswat52/facegate/internal/domain/auth"
	"github.com/Pulkitsaraswat52/facegate/internal/ports"
)

// ErrNoFrame is returned by Capture when no fresh frame is available, e.g.
// the camera daemon has not produced one since the last capture. Callers
// treat this as "device not ready", not as a failure.
var ErrNoFrame = errors.New("no frame available")

// Compile-time conformance to the port.
var _ ports.FrameSource = (*SpoolSource)(nil)

// SpoolConfig holds configuration for the spool-directory frame source.
type SpoolConfig struct {
	// Dir is the directory the camera daemon drops frames into.
	Dir string

	// Logger is optional; defaults to slog.Default.
	Logger *slog.Logger
}

// SpoolSource watches a directory for JPEG frames and hands the newest
// unconsumed one to the controller on capture. Each frame is consumed at
// most once so a stalled camera reads as "not ready" rather than replaying
// the same image forever.
type SpoolSource struct {
	watcher *fsnotify.Watcher
	logger  *slog.Logger

	mu       sync.Mutex
	latest   *domainauth.Frame
	consumed bool
}

// NewSpoolSource creates a frame source watching cfg.Dir. The caller must
// Close it to release the watcher.
func NewSpoolSource(cfg SpoolConfig) (*SpoolSource, error) {
	if cfg.Dir == "" {
		return nil, errors.New("spool directory is required")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err = watcher.Add(cfg.Dir); err != nil {
		_ = watcher.Close()
		return nil, err
	}

	s := &SpoolSource{
		watcher: watcher,
		logger:  logger,
	}
	go s.watch()
	return s, nil
}

// Capture returns the newest frame written since the previous capture, or
// ErrNoFrame when none has arrived.
func (s *SpoolSource) Capture(ctx context.Context) (domainauth.Frame, error) {
	if err := ctx.Err(); err != nil {
		return domainauth.Frame{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.latest == nil || s.consumed {
		return domainauth.Frame{}, ErrNoFrame
	}
	s.consumed = true
	return *s.latest, nil
}

// Close stops the directory watcher.
func (s *SpoolSource) Close() error {
	return s.watcher.Close()
}

func (s *SpoolSource) watch() {
	for {
		select {
		case event, ok := <-s.watcher.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
				continue
			}
			if !isFrameFile(event.Name) {
				continue
			}
			s.ingest(event.Name)

		case err, ok := <-s.watcher.Errors:
			if !ok {
				return
			}
			s.logger.Warn("frame watcher error", "error", err)
		}
	}
}

// ingest reads one frame file and makes it the latest capture candidate.
// Unreadable or empty files are skipped; the daemon may still be writing.
func (s *SpoolSource) ingest(path string) {
	data, err := os.ReadFile(path)
	if err != nil || len(data) == 0 {
		return
	}

	frame := domainauth.Frame{Data: data, CapturedAt: time.Now()}

	s.mu.Lock()
	s.latest = &frame
	s.consumed = false
	s.mu.Unlock()
}

func isFrameFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg", ".png":
		return true
	default:
		return false
	}
}
