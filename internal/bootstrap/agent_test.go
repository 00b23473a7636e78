package bootstrap

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pulkitsaraswat52/facegate/config"
)

func staticConfig(t *testing.T) *config.AppConfig {
	t.Helper()

	cfg := &config.AppConfig{
		IsDev: true,
		API: config.APIConfig{
			BaseURL: "http://localhost:8000",
			Timeout: time.Second,
		},
		Capture: config.CaptureConfig{
			Mode:     config.CaptureModeStatic,
			Interval: 3 * time.Second,
		},
		Cache: config.ProfileCacheConfig{
			Enabled: true,
			Path:    t.TempDir() + "/profiles.db",
		},
	}
	cfg.Sanitize()
	return cfg
}

func TestBuildAgentRequiresConfig(t *testing.T) {
	_, err := BuildAgent(context.Background(), nil, nil)
	assert.Error(t, err)
}

func TestBuildAgentStaticMode(t *testing.T) {
	agent, err := BuildAgent(context.Background(), staticConfig(t), nil)
	require.NoError(t, err)
	defer agent.close()

	assert.NotNil(t, agent.Controller)
	assert.NotNil(t, agent.Entries)
	assert.NotNil(t, agent.Sessions)
	assert.Nil(t, agent.channel)
	assert.False(t, agent.Sessions.Snapshot().Authenticated)
}

func TestBuildAgentRejectsBadNotifyURL(t *testing.T) {
	cfg := staticConfig(t)
	cfg.Notify = config.NotifyConfig{Enabled: true, URL: "http://not-a-ws"}

	_, err := BuildAgent(context.Background(), cfg, nil)
	assert.Error(t, err)
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8000", cfg.API.BaseURL)
	assert.Equal(t, config.CaptureModeSpool, cfg.Capture.Mode)
}
