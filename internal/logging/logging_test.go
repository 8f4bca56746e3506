package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoggerWritesJSON(t *testing.T) {
	buf := &bytes.Buffer{}
	log, closer, err := New(Options{Level: "info", Writer: buf})
	require.NoError(t, err)
	defer closer.Close()

	log.Info().Str("page", "abc").Msg("page mounted")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "page mounted", entry["message"])
	require.Equal(t, "abc", entry["page"])
	require.Equal(t, "info", entry["level"])
}

func TestLoggerRespectsLevel(t *testing.T) {
	buf := &bytes.Buffer{}
	log, _, err := New(Options{Level: "warn", Writer: buf})
	require.NoError(t, err)

	log.Info().Msg("hidden")
	require.Zero(t, buf.Len())
}

func TestLoggerRejectsUnknownLevel(t *testing.T) {
	_, _, err := New(Options{Level: "loud"})
	require.Error(t, err)
}

func TestLoggerWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portfolio.log")
	buf := &bytes.Buffer{}
	log, closer, err := New(Options{Writer: buf, File: path})
	require.NoError(t, err)

	log.Info().Msg("to both")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "to both")
	require.Contains(t, buf.String(), "to both")
}
