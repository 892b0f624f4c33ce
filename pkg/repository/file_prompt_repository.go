package repository

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/dskvich/story-generator/pkg/codec"
	"github.com/dskvich/story-generator/pkg/domain"
)

const storeFilePerm = 0o644

type filePromptRepository struct {
	path string
}

func NewFilePromptRepository(path string) *filePromptRepository {
	return &filePromptRepository{path: path}
}

func (r *filePromptRepository) Path() string {
	return r.path
}

// Save appends p to the store as a single line, creating the store if needed.
func (r *filePromptRepository) Save(ctx context.Context, prompt *domain.Prompt) error {
	line, err := codec.EncodePrompt(prompt)
	if err != nil {
		return fmt.Errorf("saving prompt: %w", err)
	}

	f, err := os.OpenFile(r.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, storeFilePerm)
	if err != nil {
		return fmt.Errorf("%w: opening %s: %w", domain.ErrStorage, r.path, err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return fmt.Errorf("%w: inspecting %s: %w", domain.ErrStorage, r.path, err)
	}

	if err := appendLine(f, info.Size(), line); err != nil {
		f.Close()
		return fmt.Errorf("%w: writing %s: %w", domain.ErrStorage, r.path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: closing %s: %w", domain.ErrStorage, r.path, err)
	}

	slog.DebugContext(ctx, "Prompt appended", "path", r.path, "bytes", len(line))

	return nil
}

// Each streams every stored line into sink. A store that cannot be opened is
// an error; lines that cannot be decoded are passed to sink.Skip.
func (r *filePromptRepository) Each(ctx context.Context, sink codec.Sink) error {
	f, err := os.Open(r.path)
	if err != nil {
		return fmt.Errorf("%w: reading %s: %w", domain.ErrStorage, r.path, err)
	}
	defer f.Close()

	slog.DebugContext(ctx, "Reading prompt store", "path", r.path)

	if err := codec.ReadPrompts(f, sink); err != nil {
		return fmt.Errorf("%w: reading %s: %w", domain.ErrStorage, r.path, err)
	}
	return nil
}

func (r *filePromptRepository) Close() error {
	return nil
}

type truncateWriter interface {
	io.Writer
	Truncate(size int64) error
}

// appendLine writes line in one call. If the write is cut short, the file is
// truncated back to size so that no partial record is left behind.
func appendLine(w truncateWriter, size int64, line []byte) error {
	n, err := w.Write(line)
	if err == nil && n < len(line) {
		err = io.ErrShortWrite
	}
	if err == nil {
		return nil
	}

	if n > 0 {
		if truncErr := w.Truncate(size); truncErr != nil {
			return fmt.Errorf("%w (removing partial line: %w)", err, truncErr)
		}
	}
	return err
}
