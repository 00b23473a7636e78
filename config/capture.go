package config

import (
	"fmt"
	"strings"
	"time"
)

// CaptureMode represents the frame source backing the verification loop.
type CaptureMode string

const (
	// CaptureModeSpool watches a directory a camera daemon writes frames into.
	CaptureModeSpool CaptureMode = "spool"
	// CaptureModeStatic serves a fixed frame (for development only).
	CaptureModeStatic CaptureMode = "static"
)

// UnmarshalText implements encoding.TextUnmarshaler for CaptureMode.
func (m *CaptureMode) UnmarshalText(text []byte) error {
	v := strings.ToLower(string(text))
	switch v {
	case "spool", "static":
		*m = CaptureMode(v)
		return nil
	default:
		return fmt.Errorf("invalid CaptureMode: %q (valid options: spool, static)", v)
	}
}

// CaptureConfig contains camera frame source configuration.
type CaptureConfig struct {
	// Mode determines which frame source backs the loop.
	Mode CaptureMode `env:"CAPTURE_MODE" envDefault:"spool"`

	// SpoolDir is the directory watched for frames in spool mode.
	SpoolDir string `env:"CAPTURE_SPOOL_DIR" envDefault:"/var/spool/facegate"`

	// StaticFrame is a path to a fixed frame served in static mode.
	StaticFrame string `env:"CAPTURE_STATIC_FRAME"`

	// Interval is the verification loop cadence.
	Interval time.Duration `env:"CAPTURE_INTERVAL" envDefault:"3s"`
}

// Sanitize applies guardrails to capture configuration values.
func (c *CaptureConfig) Sanitize() {
	c.SpoolDir = strings.TrimSpace(c.SpoolDir)
	// Sub-second polling hammers the verification endpoint for no gain.
	if c.Interval < time.Second {
		c.Interval = 3 * time.Second
	}
}
