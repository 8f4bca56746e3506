// Package logging builds the zerolog logger shared by the server.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options describes logger configuration supplied at creation time.
type Options struct {
	Level string
	Human bool
	// File, when set, receives a rotated copy of every entry.
	File   string
	Writer io.Writer
}

// New creates the logger and returns a closer for the rotated file, if any.
func New(opts Options) (zerolog.Logger, io.Closer, error) {
	writer := opts.Writer
	if writer == nil {
		writer = os.Stdout
	}

	level := zerolog.InfoLevel
	if opts.Level != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			return zerolog.Nop(), nil, err
		}
		level = parsed
	}

	var out io.Writer = writer
	if opts.Human {
		console := zerolog.NewConsoleWriter()
		console.Out = writer
		console.TimeFormat = time.RFC3339
		out = console
	}

	var closer io.Closer = nopCloser{}
	if opts.File != "" {
		rotated := &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    10, // MB
			MaxBackups: 5,
			MaxAge:     30, // days
			Compress:   true,
		}
		out = zerolog.MultiLevelWriter(rotated, out)
		closer = rotated
	}

	return zerolog.New(out).Level(level).With().Timestamp().Logger(), closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
