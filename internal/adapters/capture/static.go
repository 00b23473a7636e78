package capture

import (
	"context"
	"sync"
	"time"

	domainauth "github.com/Pulkitsaraswat52/facegate/internal/domain/auth"
	"github.com/Pulkitsaraswat52/facegate/internal/ports"
)

var _ ports.FrameSource = (*StaticSource)(nil)

// StaticSource serves a fixed frame on every capture. Used in development
// and tests when no camera daemon is present.
type StaticSource struct {
	mu    sync.Mutex
	frame []byte
	err   error
}

// NewStaticSource creates a source returning the given bytes forever. A nil
// or empty frame makes every capture report ErrNoFrame.
func NewStaticSource(frame []byte) *StaticSource {
	return &StaticSource{frame: frame}
}

// SetFrame replaces the served frame.
func (s *StaticSource) SetFrame(frame []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.frame = frame
}

// SetError makes every subsequent capture fail with err.
func (s *StaticSource) SetError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}

func (s *StaticSource) Capture(ctx context.Context) (domainauth.Frame, error) {
	if err := ctx.Err(); err != nil {
		return domainauth.Frame{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.err != nil {
		return domainauth.Frame{}, s.err
	}
	if len(s.frame) == 0 {
		return domainauth.Frame{}, ErrNoFrame
	}
	return domainauth.Frame{Data: s.frame, CapturedAt: time.Now()}, nil
}
