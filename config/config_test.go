package config

import (
	"testing"
	"time"

	env "github.com/caarlos0/env/v11"
)

func loadConfig(t *testing.T) *AppConfig {
	t.Helper()

	cfg := &AppConfig{}
	if err := env.Parse(cfg); err != nil {
		t.Fatalf("parse config: %v", err)
	}
	cfg.Sanitize()
	return cfg
}

func TestDefaults(t *testing.T) {
	cfg := loadConfig(t)

	if cfg.IsDev {
		t.Error("expected dev mode off by default")
	}
	if cfg.API.BaseURL != "http://localhost:8000" {
		t.Errorf("unexpected API base URL: %q", cfg.API.BaseURL)
	}
	if cfg.API.Timeout != 15*time.Second {
		t.Errorf("unexpected API timeout: %v", cfg.API.Timeout)
	}
	if cfg.Capture.Mode != CaptureModeSpool {
		t.Errorf("unexpected capture mode: %q", cfg.Capture.Mode)
	}
	if cfg.Capture.Interval != 3*time.Second {
		t.Errorf("unexpected capture interval: %v", cfg.Capture.Interval)
	}
	if !cfg.Notify.Enabled {
		t.Error("expected notifications enabled by default")
	}
	if cfg.Observability.LogLevel != "info" || cfg.Observability.LogFormat != "json" {
		t.Errorf("unexpected logging defaults: %q %q", cfg.Observability.LogLevel, cfg.Observability.LogFormat)
	}
}

func TestDetectDevModeFromAppEnv(t *testing.T) {
	t.Setenv("APP_ENV", "development")

	cfg := loadConfig(t)
	if !cfg.IsDev {
		t.Error("expected APP_ENV=development to enable dev mode")
	}
}

func TestCaptureModeUnmarshal(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    CaptureMode
		expectError bool
	}{
		{name: "spool", input: "spool", expected: CaptureModeSpool},
		{name: "static", input: "static", expected: CaptureModeStatic},
		{name: "uppercase", input: "SPOOL", expected: CaptureModeSpool},
		{name: "invalid", input: "webcam", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var mode CaptureMode
			err := mode.UnmarshalText([]byte(tt.input))
			if tt.expectError {
				if err == nil {
					t.Fatalf("expected error for %q", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if mode != tt.expected {
				t.Errorf("got %q, want %q", mode, tt.expected)
			}
		})
	}
}

func TestCaptureIntervalClamped(t *testing.T) {
	t.Setenv("CAPTURE_INTERVAL", "100ms")

	cfg := loadConfig(t)
	if cfg.Capture.Interval != 3*time.Second {
		t.Errorf("expected sub-second interval reset to 3s, got %v", cfg.Capture.Interval)
	}
}

func TestAPIBaseURLTrailingSlashTrimmed(t *testing.T) {
	t.Setenv("API_BASE_URL", "http://backend:8000/")

	cfg := loadConfig(t)
	if cfg.API.BaseURL != "http://backend:8000" {
		t.Errorf("unexpected base URL: %q", cfg.API.BaseURL)
	}
}

func TestInsecureDecodeRequiresDevMode(t *testing.T) {
	t.Setenv("AUTH_INSECURE_DECODE", "true")

	cfg := loadConfig(t)
	if cfg.Auth.InsecureSkipVerify {
		t.Error("expected insecure decode forced off outside dev mode")
	}

	t.Setenv("DEV", "true")
	cfg = loadConfig(t)
	if !cfg.Auth.InsecureSkipVerify {
		t.Error("expected insecure decode honored in dev mode")
	}
}

func TestEmptyNotifyURLDisablesChannel(t *testing.T) {
	t.Setenv("NOTIFY_WS_URL", "  ")

	cfg := loadConfig(t)
	if cfg.Notify.Enabled {
		t.Error("expected empty URL to disable notifications")
	}
}

func TestEmptyCachePathDisablesCache(t *testing.T) {
	t.Setenv("PROFILE_CACHE_PATH", "")

	cfg := loadConfig(t)
	if cfg.Cache.Enabled {
		t.Error("expected empty path to disable profile cache")
	}
}

func TestLogConfigNormalized(t *testing.T) {
	t.Setenv("LOG_LEVEL", "TRACE")
	t.Setenv("LOG_FORMAT", "xml")

	cfg := loadConfig(t)
	if cfg.Observability.LogLevel != "info" {
		t.Errorf("expected unknown level reset to info, got %q", cfg.Observability.LogLevel)
	}
	if cfg.Observability.LogFormat != "json" {
		t.Errorf("expected unknown format reset to json, got %q", cfg.Observability.LogFormat)
	}
}
