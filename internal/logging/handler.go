package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

// BuildDevelopment selects the human-readable text handler.
const BuildDevelopment = "development"

// Options controls how New builds the underlying slog handler.
type Options struct {
	// Build is the build mode; "development" gives text output, anything
	// else gives JSON.
	Build string
	Level slog.Level
	// File, when set, receives a copy of every record and is rotated by size.
	File string
	// Attrs are attached to every record (service name, build, ...).
	Attrs []slog.Attr
}

// New builds a Logger writing to stdout and, optionally, a rotated file.
func New(opts Options) Logger {
	var w io.Writer = os.Stdout
	if opts.File != "" {
		w = io.MultiWriter(os.Stdout, &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
		})
	}
	return NewSlogLogger(slog.New(NewHandler(w, opts.Build, opts.Level, opts.Attrs...)))
}

// NewHandler returns a text handler in development and a JSON handler
// otherwise. Source locations are shortened to file:line.
func NewHandler(w io.Writer, build string, level slog.Level, attrs ...slog.Attr) slog.Handler {
	replace := func(groups []string, attr slog.Attr) slog.Attr {
		if attr.Key == slog.SourceKey {
			if source, ok := attr.Value.Any().(*slog.Source); ok {
				short := fmt.Sprintf("%s:%d", filepath.Base(source.File), source.Line)
				return slog.Attr{Key: slog.SourceKey, Value: slog.StringValue(short)}
			}
		}
		return attr
	}

	ho := &slog.HandlerOptions{
		Level:       level,
		AddSource:   true,
		ReplaceAttr: replace,
	}

	var handler slog.Handler
	if build == BuildDevelopment {
		handler = slog.NewTextHandler(w, ho)
	} else {
		handler = slog.NewJSONHandler(w, ho)
	}
	return handler.WithAttrs(attrs)
}
