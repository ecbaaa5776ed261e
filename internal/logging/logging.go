// Package logging builds the slog loggers used by the awfy command.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	slogmulti "github.com/samber/slog-multi"
)

type Config struct {
	// Level is one of debug, info, warn or error. Empty means info.
	Level string

	// File, when set, receives every record as JSON in addition to Output.
	File string

	// Output receives text records. Defaults to os.Stderr.
	Output io.Writer
}

// Logger is a slog.Logger whose level can change at runtime.
// Close releases the log file, if any.
type Logger struct {
	*slog.Logger

	level *slog.LevelVar
	file  *os.File
}

func New(cfg Config) (*Logger, error) {
	level := new(slog.LevelVar)
	if err := SetLevel(level, cfg.Level); err != nil {
		return nil, err
	}

	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}

	handlers := []slog.Handler{
		slog.NewTextHandler(out, &slog.HandlerOptions{Level: level}),
	}

	var file *os.File
	if cfg.File != "" {
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		file = f
		handlers = append(handlers, slog.NewJSONHandler(f, &slog.HandlerOptions{Level: level}))
	}

	return &Logger{
		Logger: slog.New(slogmulti.Fanout(handlers...)),
		level:  level,
		file:   file,
	}, nil
}

// SetLevel parses name into v.
func SetLevel(v *slog.LevelVar, name string) error {
	if name == "" {
		v.Set(slog.LevelInfo)
		return nil
	}

	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.ToUpper(name))); err != nil {
		return fmt.Errorf("invalid log level %q", name)
	}
	v.Set(l)
	return nil
}

func (l *Logger) Level() slog.Level {
	return l.level.Level()
}

func (l *Logger) SetLevel(name string) error {
	return SetLevel(l.level, name)
}

func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}
