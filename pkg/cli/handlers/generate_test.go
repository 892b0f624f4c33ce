package handlers

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dskvich/story-generator/pkg/domain"
)

type fakePromptSaver struct {
	saved []*domain.Prompt
	err   error
}

func (f *fakePromptSaver) Save(_ context.Context, prompt *domain.Prompt) error {
	if f.err != nil {
		return f.err
	}
	f.saved = append(f.saved, prompt)
	return nil
}

func TestGenerate(t *testing.T) {
	saver := &fakePromptSaver{}
	var out bytes.Buffer

	err := Generate(saver, &out)(context.Background(), []string{
		`{"number": 3, "unit_of_measure": "mile", "place": "work", "adjective": "shiny", "noun": "coin"}`,
	})
	require.NoError(t, err)

	assert.Equal(t, "One day Anna was walking her 3 mile commute to work and found a shiny coin on the ground.\n", out.String())
	require.Len(t, saver.saved, 1)
	assert.Equal(t, "coin", saver.saved[0].Noun)
}

func TestGenerate_MalformedInput(t *testing.T) {
	saver := &fakePromptSaver{}
	var out bytes.Buffer

	err := Generate(saver, &out)(context.Background(), []string{`{"number": 3}`})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrMalformedPrompt))
	assert.Contains(t, err.Error(), "decoding prompt")
	assert.Empty(t, out.String())
	assert.Empty(t, saver.saved)
}

func TestGenerate_InvalidFields(t *testing.T) {
	saver := &fakePromptSaver{}
	var out bytes.Buffer

	err := Generate(saver, &out)(context.Background(), []string{
		`{"number": 3, "unit_of_measure": "", "place": "work", "adjective": "", "noun": "coin"}`,
	})
	require.Error(t, err)

	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, []domain.Field{domain.FieldUnitOfMeasure, domain.FieldAdjective}, verr.Fields())
	assert.Empty(t, out.String())
	assert.Empty(t, saver.saved)
}

func TestGenerate_SaveFailure(t *testing.T) {
	saver := &fakePromptSaver{err: domain.ErrStorage}
	var out bytes.Buffer

	err := Generate(saver, &out)(context.Background(), []string{
		`{"number": 3, "unit_of_measure": "mile", "place": "work", "adjective": "shiny", "noun": "coin"}`,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrStorage))
	assert.Contains(t, err.Error(), "saving prompt")
}

func TestGenerate_WrongArgCount(t *testing.T) {
	err := Generate(&fakePromptSaver{}, &bytes.Buffer{})(context.Background(), nil)
	assert.Error(t, err)
}
