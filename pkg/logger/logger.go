package logger

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/fatih/color"
)

type Options struct {
	Level   slog.Leveler
	NoColor bool
}

var DefaultOptions = &Options{
	Level: slog.LevelWarn,
}

var levelColors = map[slog.Level]*color.Color{
	slog.LevelDebug: color.New(color.FgHiBlack),
	slog.LevelInfo:  color.New(color.FgCyan),
	slog.LevelWarn:  color.New(color.FgYellow),
	slog.LevelError: color.New(color.FgRed, color.Bold),
}

// NewHandler returns a text handler writing to w with colored level names.
func NewHandler(w io.Writer, opts *Options) slog.Handler {
	if opts == nil {
		opts = DefaultOptions
	}

	return slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: opts.Level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) > 0 || a.Key != slog.LevelKey {
				return a
			}
			level, ok := a.Value.Any().(slog.Level)
			if !ok || opts.NoColor || color.NoColor {
				return a
			}
			if c, ok := levelColors[level]; ok {
				a.Value = slog.StringValue(c.Sprint(level.String()))
			}
			return a
		},
	})
}

// ParseLevel accepts slog level names in any case, e.g. "debug" or "WARN".
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, fmt.Errorf("parsing log level %q: %w", s, err)
	}
	return level, nil
}

func Err(err error) slog.Attr {
	return slog.Any("error", err)
}
