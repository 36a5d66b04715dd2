// Package logging builds the slog loggers used by the deeplink command and
// examples.
//
// Four output formats are supported:
//   - console: colored, human-readable lines (the default)
//   - dev: multi-line records with sorted keys, for debugging templates
//   - json: one JSON object per record
//   - text: logfmt-style key=value pairs
//
// Every format formats errors as groups and renders deeplink values, values
// sets and URLs compactly.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"os"
	"strings"
	"time"

	"braces.dev/errtrace"
	"github.com/golang-cz/devslog"
	"github.com/mattn/go-isatty"
	"github.com/phsym/console-slog"
	slogformatter "github.com/samber/slog-formatter"

	"github.com/fasthttp/deeplink"
)

// Level is a log level.
type Level = slog.Level

// Log levels.
const (
	LevelDebug = slog.LevelDebug
	LevelInfo  = slog.LevelInfo
	LevelWarn  = slog.LevelWarn
	LevelError = slog.LevelError
)

// Format is a log output format.
type Format string

// Output formats.
const (
	FormatConsole Format = "console"
	FormatDev     Format = "dev"
	FormatJSON    Format = "json"
	FormatText    Format = "text"
)

// Error is a constant error.
type Error string

func (e Error) Error() string { return string(e) }

const (
	ErrUnknownLevel  Error = "unknown log level"
	ErrUnknownFormat Error = "unknown log format"
)

// Config holds logging configuration.
type Config struct {
	// Level is the minimum level written.
	Level Level

	// Format is the output format. Defaults to FormatConsole.
	Format Format

	// Output is where records are written. Defaults to os.Stderr.
	Output io.Writer

	// AddSource adds the source file and line to records.
	AddSource bool
}

// DefaultConfig returns the configuration used when none is given.
func DefaultConfig() Config {
	return Config{
		Level:  LevelInfo,
		Format: FormatConsole,
		Output: os.Stderr,
	}
}

var newHandler = slogformatter.NewFormatterHandler(
	slogformatter.ErrorFormatter("error"),
	slogformatter.FormatByType(func(v deeplink.Value) slog.Value {
		return slog.GroupValue(
			slog.String("kind", v.Kind().String()),
			slog.Any("value", v.Interface()),
		)
	}),
	slogformatter.FormatByType(func(v deeplink.Values) slog.Value {
		attrs := make([]slog.Attr, 0, 3)

		if len(v.Path) > 0 {
			attrs = append(attrs, slog.Attr{Key: "path", Value: valueMap(v.Path)})
		}
		if len(v.Query) > 0 {
			attrs = append(attrs, slog.Attr{Key: "query", Value: valueMap(v.Query)})
		}
		if v.Fragment != "" {
			attrs = append(attrs, slog.String("fragment", v.Fragment))
		}

		return slog.GroupValue(attrs...)
	}),
	slogformatter.FormatByType(func(u *url.URL) slog.Value {
		if u == nil {
			return slog.StringValue("<nil>")
		}

		return slog.StringValue(u.String())
	}),
)

func valueMap(m map[string]deeplink.Value) slog.Value {
	attrs := make([]slog.Attr, 0, len(m))
	for k, v := range m {
		attrs = append(attrs, slog.String(k, v.String()))
	}

	return slog.GroupValue(attrs...)
}

// New returns a logger writing records of cfg.Level and above to cfg.Output
// in cfg.Format. Unknown formats fall back to FormatConsole.
func New(cfg Config) *slog.Logger {
	if cfg.Output == nil {
		cfg.Output = os.Stderr
	}

	var handler slog.Handler

	switch cfg.Format {
	case FormatDev:
		handler = devslog.NewHandler(cfg.Output, &devslog.Options{
			HandlerOptions: &slog.HandlerOptions{
				AddSource: cfg.AddSource,
				Level:     cfg.Level,
			},
			SortKeys:   true,
			TimeFormat: time.RFC3339Nano,
		})

	case FormatJSON:
		handler = slog.NewJSONHandler(cfg.Output, &slog.HandlerOptions{
			AddSource: cfg.AddSource,
			Level:     cfg.Level,
		})

	case FormatText:
		handler = slog.NewTextHandler(cfg.Output, &slog.HandlerOptions{
			AddSource: cfg.AddSource,
			Level:     cfg.Level,
		})

	default:
		handler = console.NewHandler(cfg.Output, &console.HandlerOptions{
			AddSource:  cfg.AddSource,
			Level:      cfg.Level,
			TimeFormat: time.RFC3339Nano,
			NoColor:    !isTerminal(cfg.Output),
		})
	}

	return slog.New(newHandler(handler))
}

type noopHandler struct{}

func (noopHandler) Enabled(context.Context, slog.Level) bool { return false }

func (noopHandler) Handle(context.Context, slog.Record) error { return nil }

func (h noopHandler) WithAttrs([]slog.Attr) slog.Handler { return h }

func (h noopHandler) WithGroup(string) slog.Handler { return h }

// Nop returns a logger that discards every record.
func Nop() *slog.Logger {
	return slog.New(noopHandler{})
}

// ParseLevel parses a level name, ignoring case. The empty string is
// LevelInfo.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return LevelDebug, nil
	case "info", "":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	}

	return LevelInfo, errtrace.Wrap(fmt.Errorf("%w %q", ErrUnknownLevel, s))
}

// ParseFormat parses a format name, ignoring case. The empty string is
// FormatConsole.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case "":
		return FormatConsole, nil
	case FormatConsole, FormatDev, FormatJSON, FormatText:
		return f, nil
	}

	return FormatConsole, errtrace.Wrap(fmt.Errorf("%w %q", ErrUnknownFormat, s))
}

// isTerminal reports whether w is a terminal that can render colors.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
