// Package codec implements the line format of the prompt store: one JSON
// object per line, terminated by '\n'.
package codec

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/dskvich/story-generator/pkg/domain"
)

// Sink receives the outcome of every line read from a store.
type Sink interface {
	Add(p *domain.Prompt)
	Skip(line int, err error)
}

func DecodePrompt(data []byte) (*domain.Prompt, error) {
	if err := checkShape(data); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrMalformedPrompt, err)
	}

	var p domain.Prompt
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrMalformedPrompt, err)
	}
	return &p, nil
}

// EncodePrompt returns p as a single line, including the trailing newline.
func EncodePrompt(p *domain.Prompt) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(p); err != nil {
		return nil, fmt.Errorf("encoding prompt: %w", err)
	}
	return buf.Bytes(), nil
}

// ReadPrompts decodes r line by line. Lines that do not decode are handed to
// sink.Skip and reading continues; only errors from r itself are returned.
func ReadPrompts(r io.Reader, sink Sink) error {
	br := bufio.NewReader(r)

	for lineNo := 1; ; lineNo++ {
		line, err := br.ReadBytes('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("reading line %d: %w", lineNo, err)
		}
		if errors.Is(err, io.EOF) && len(line) == 0 {
			return nil
		}

		line = bytes.TrimRight(line, "\r\n")
		if p, decodeErr := DecodePrompt(line); decodeErr != nil {
			sink.Skip(lineNo, decodeErr)
		} else {
			sink.Add(p)
		}

		if errors.Is(err, io.EOF) {
			return nil
		}
	}
}
