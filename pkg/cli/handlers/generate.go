package handlers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/dskvich/story-generator/pkg/codec"
	"github.com/dskvich/story-generator/pkg/domain"
	"github.com/dskvich/story-generator/pkg/render"
)

type generatePromptSaver interface {
	Save(ctx context.Context, prompt *domain.Prompt) error
}

// Generate decodes and validates a prompt, prints its story and stores it.
func Generate(promptSaver generatePromptSaver, out io.Writer) HandlerFunc {
	return func(ctx context.Context, args []string) error {
		if len(args) != 1 {
			return errors.New("generate expects exactly one DATA argument")
		}

		prompt, err := codec.DecodePrompt([]byte(args[0]))
		if err != nil {
			return fmt.Errorf("decoding prompt: %w", err)
		}

		if err := prompt.Validate(); err != nil {
			return fmt.Errorf("validating prompt: %w", err)
		}

		if _, err := fmt.Fprintln(out, render.Story(prompt)); err != nil {
			return fmt.Errorf("printing story: %w", err)
		}

		if err := promptSaver.Save(ctx, prompt); err != nil {
			return fmt.Errorf("saving prompt: %w", err)
		}

		slog.InfoContext(ctx, "Prompt saved", "prompt", prompt)

		return nil
	}
}
