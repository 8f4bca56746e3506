package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/contact"
	"github.com/Zachkp/portfolio/internal/content"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func TestVersionCommandOutputsBuildInfo(t *testing.T) {
	originalVersion, originalCommit, originalDate := version, commit, date
	t.Cleanup(func() {
		version, commit, date = originalVersion, originalCommit, originalDate
	})
	version, commit, date = "1.2.3", "abcdef1", "2025-10-03"

	out, err := execute(t, "version")
	require.NoError(t, err)
	require.Contains(t, out, "1.2.3")
	require.Contains(t, out, "abcdef1")
	require.Contains(t, out, "2025-10-03")
}

func TestContentInitThenCheck(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.yml")
	missing := filepath.Join(t.TempDir(), "none.yml")

	out, err := execute(t, "--config", missing, "content", "init", path)
	require.NoError(t, err)
	assert.Contains(t, out, "wrote "+path)

	loaded, err := content.Load(path)
	require.NoError(t, err)
	def := content.Default()
	assert.Equal(t, def.Profile.Name, loaded.Profile.Name)
	assert.Len(t, loaded.Projects, len(def.Projects))

	_, err = execute(t, "--config", missing, "content", "init", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	_, err = execute(t, "--config", missing, "content", "init", "--force", path)
	require.NoError(t, err)

	out, err = execute(t, "--config", missing, "content", "check", path)
	require.NoError(t, err)
	assert.Contains(t, out, "ok")
}

func TestContentCheckRejectsInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.yml")
	require.NoError(t, os.WriteFile(path, []byte("profile:\n  name: \"\"\n"), 0644))

	_, err := execute(t, "--config", filepath.Join(t.TempDir(), "none.yml"), "content", "check", path)
	require.Error(t, err)
}

func TestRenderWritesFreshPage(t *testing.T) {
	out := filepath.Join(t.TempDir(), "index.html")

	_, err := execute(t, "--config", filepath.Join(t.TempDir(), "none.yml"), "render", "-o", out)
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	html := string(data)
	assert.Contains(t, html, "data-page=")
	for _, id := range []string{"hero", "about", "skills", "projects", "experience", "contact"} {
		assert.Contains(t, html, `id="`+id+`"`)
	}
	assert.Equal(t, 6, strings.Count(html, "animate-float"))
}

func TestNewRelayHonoursProvider(t *testing.T) {
	cfg := config.Default()

	relay, creds := newRelay(cfg.Relay)
	require.IsType(t, &contact.EmailJSRelay{}, relay)
	assert.Equal(t, "service_6s8k59i", creds.ServiceID)

	cfg.Relay.Provider = "smtp"
	relay, _ = newRelay(cfg.Relay)
	assert.IsType(t, &contact.SMTPRelay{}, relay)
}

func TestServeStopsWithContext(t *testing.T) {
	cfg := config.Default()
	cfg.Port = "0"
	cfg.Mode = "test"
	cfg.AssetsDir = t.TempDir()

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	require.NoError(t, serve(ctx, cfg, zerolog.Nop()))
}
