package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "portfolio.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	t.Setenv("PORT", "")
	cfg, err := Load(filepath.Join(t.TempDir(), "none.yml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, ":8080", cfg.Addr())
}

func TestLoadFile(t *testing.T) {
	t.Setenv("PORT", "")
	path := writeFile(t, `
port: "9090"
mode: debug
log:
  level: debug
  human: true
relay:
  provider: smtp
  smtp:
    host: mail.example.com
    user: me
session:
  ttl: 5m
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "debug", cfg.Mode)
	assert.True(t, cfg.Log.Human)
	assert.Equal(t, "smtp", cfg.Relay.Provider)
	assert.Equal(t, "mail.example.com", cfg.Relay.SMTP.Host)
	assert.Equal(t, 5*time.Minute, cfg.Session.TTL)
	assert.Equal(t, time.Minute, cfg.Session.Sweep)
	assert.Equal(t, 10000, cfg.Session.MaxPages)
	assert.Equal(t, "service_6s8k59i", cfg.Relay.ServiceID)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("PORTFOLIO_RELAY__SERVICE_ID", "service_env")
	t.Setenv("PORTFOLIO_LOG__LEVEL", "warn")
	t.Setenv("PORTFOLIO_ASSETS_DIR", "/srv/assets")
	t.Setenv("PORTFOLIO_SESSION__MAX_PAGES", "250")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 250, cfg.Session.MaxPages)
	assert.Equal(t, "service_env", cfg.Relay.ServiceID)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "/srv/assets", cfg.AssetsDir)
}

func TestPortEnvWins(t *testing.T) {
	t.Setenv("PORTFOLIO_PORT", "7000")
	t.Setenv("PORT", "3000")
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "3000", cfg.Port)
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"unknown provider", func(c *Config) { c.Relay.Provider = "carrier-pigeon" }},
		{"emailjs without service", func(c *Config) { c.Relay.ServiceID = "" }},
		{"bad level", func(c *Config) { c.Log.Level = "loud" }},
		{"bad port", func(c *Config) { c.Port = "http" }},
		{"zero ttl", func(c *Config) { c.Session.TTL = 0 }},
		{"zero page cap", func(c *Config) { c.Session.MaxPages = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			require.Error(t, cfg.Validate())
		})
	}
}

func TestSMTPDoesNotNeedEmailJSIds(t *testing.T) {
	cfg := Default()
	cfg.Relay = Relay{Provider: "smtp"}
	require.NoError(t, cfg.Validate())
}
