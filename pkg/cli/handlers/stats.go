package handlers

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/dskvich/story-generator/pkg/codec"
	"github.com/dskvich/story-generator/pkg/logger"
	"github.com/dskvich/story-generator/pkg/stats"
)

type statsPromptScanner interface {
	Each(ctx context.Context, sink codec.Sink) error
}

// Stats folds every stored prompt into a report and prints it in format.
func Stats(promptScanner statsPromptScanner, out io.Writer, format stats.Format) HandlerFunc {
	return func(ctx context.Context, _ []string) error {
		s := stats.New(stats.WithSkipHook(func(line int, err error) {
			slog.DebugContext(ctx, "Skipping malformed store line", "line", line, logger.Err(err))
		}))

		if err := promptScanner.Each(ctx, s); err != nil {
			return fmt.Errorf("reading prompts: %w", err)
		}

		if s.Skipped > 0 {
			slog.InfoContext(ctx, "Malformed store lines skipped", "skipped", s.Skipped, "counted", s.Count)
		}

		return stats.WriteReport(out, s, format)
	}
}
