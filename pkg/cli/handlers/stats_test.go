package handlers

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dskvich/story-generator/pkg/codec"
	"github.com/dskvich/story-generator/pkg/domain"
	"github.com/dskvich/story-generator/pkg/stats"
)

type fakePromptScanner struct {
	prompts []*domain.Prompt
	skipped []int
	err     error
}

func (f *fakePromptScanner) Each(_ context.Context, sink codec.Sink) error {
	if f.err != nil {
		return f.err
	}
	for _, p := range f.prompts {
		sink.Add(p)
	}
	for _, line := range f.skipped {
		sink.Skip(line, domain.ErrMalformedPrompt)
	}
	return nil
}

func TestStats(t *testing.T) {
	scanner := &fakePromptScanner{
		prompts: []*domain.Prompt{
			{Number: 3, UnitOfMeasure: "mile", Place: "work", Adjective: "shiny", Noun: "coin"},
			{Number: 8, UnitOfMeasure: "km", Place: "work", Adjective: "shiny", Noun: "shell"},
		},
		skipped: []int{2},
	}
	var out bytes.Buffer

	require.NoError(t, Stats(scanner, &out, stats.FormatText)(context.Background(), nil))

	assert.Equal(t, "Min number: 3\n"+
		"Max number: 8\n"+
		"Most common unit_of_measure: mile. Occurrences: 1\n"+
		"Most common place: work. Occurrences: 2\n"+
		"Most common adjective: shiny. Occurrences: 2\n"+
		"Most common noun: coin. Occurrences: 1\n", out.String())
}

func TestStats_EmptyStore(t *testing.T) {
	var out bytes.Buffer

	require.NoError(t, Stats(&fakePromptScanner{}, &out, stats.FormatText)(context.Background(), nil))
	assert.Equal(t, "Min number: none\nMax number: none\n", out.String())
}

func TestStats_ReadFailure(t *testing.T) {
	err := Stats(&fakePromptScanner{err: domain.ErrStorage}, &bytes.Buffer{}, stats.FormatText)(context.Background(), nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrStorage))
}
