package domain

import (
	"fmt"
	"unicode/utf8"

	"github.com/hashicorp/go-multierror"
)

const (
	MinTextLength = 1
	MaxTextLength = 50
)

type Prompt struct {
	ID            int64   `json:"-" bun:",pk,autoincrement"`
	Number        float64 `json:"number" bun:"number"`
	UnitOfMeasure string  `json:"unit_of_measure" bun:"unit_of_measure"`
	Place         string  `json:"place" bun:"place"`
	Adjective     string  `json:"adjective" bun:"adjective"`
	Noun          string  `json:"noun" bun:"noun"`
}

// Field names one of the text fields of a Prompt, spelled as in the store.
type Field string

const (
	FieldUnitOfMeasure Field = "unit_of_measure"
	FieldPlace         Field = "place"
	FieldAdjective     Field = "adjective"
	FieldNoun          Field = "noun"
)

// TextFields lists the text fields in declaration order.
var TextFields = []Field{FieldUnitOfMeasure, FieldPlace, FieldAdjective, FieldNoun}

func (p *Prompt) Text(f Field) string {
	switch f {
	case FieldUnitOfMeasure:
		return p.UnitOfMeasure
	case FieldPlace:
		return p.Place
	case FieldAdjective:
		return p.Adjective
	case FieldNoun:
		return p.Noun
	default:
		return ""
	}
}

// Validate checks the length of every text field and reports all of the
// violations at once. Length is counted in runes.
func (p *Prompt) Validate() error {
	var result *multierror.Error

	for _, f := range TextFields {
		n := utf8.RuneCountInString(p.Text(f))
		if n < MinTextLength || n > MaxTextLength {
			result = multierror.Append(result, &FieldError{
				Field:  f,
				Length: n,
				Min:    MinTextLength,
				Max:    MaxTextLength,
			})
		}
	}

	if result == nil {
		return nil
	}
	return &ValidationError{Errors: result}
}

type FieldError struct {
	Field  Field
	Length int
	Min    int
	Max    int
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: length %d is outside [%d, %d]", e.Field, e.Length, e.Min, e.Max)
}

type ValidationError struct {
	Errors *multierror.Error
}

func (e *ValidationError) Error() string {
	return e.Errors.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Errors.ErrorOrNil()
}

// Fields returns the fields that failed validation, in declaration order.
func (e *ValidationError) Fields() []Field {
	fields := make([]Field, 0, len(e.Errors.Errors))
	for _, err := range e.Errors.Errors {
		if fe, ok := err.(*FieldError); ok {
			fields = append(fields, fe.Field)
		}
	}
	return fields
}
