// Package stats folds stored prompts into aggregate statistics.
package stats

import (
	"fmt"
	"io"
	"math"

	"github.com/dskvich/story-generator/pkg/codec"
	"github.com/dskvich/story-generator/pkg/domain"
)

const (
	// NoMin and NoMax are the values MinNumber and MaxNumber hold until the
	// first record is added.
	NoMin = math.MaxFloat64
	NoMax = -math.MaxFloat64
)

// Stats is the running aggregate over a store, with one FrequencyMap per
// text field.
type Stats struct {
	MinNumber float64
	MaxNumber float64
	Count     int
	Skipped   int

	fields map[domain.Field]*FrequencyMap
	onSkip func(line int, err error)
}

type Option func(*Stats)

// WithSkipHook registers fn to be called for every store line that could not
// be decoded.
func WithSkipHook(fn func(line int, err error)) Option {
	return func(s *Stats) {
		s.onSkip = fn
	}
}

func New(opts ...Option) *Stats {
	s := &Stats{
		MinNumber: NoMin,
		MaxNumber: NoMax,
		fields:    make(map[domain.Field]*FrequencyMap, len(domain.TextFields)),
	}
	for _, f := range domain.TextFields {
		s.fields[f] = NewFrequencyMap()
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Collect reads a whole store from r and returns its statistics.
func Collect(r io.Reader, opts ...Option) (*Stats, error) {
	s := New(opts...)
	if err := codec.ReadPrompts(r, s); err != nil {
		return nil, fmt.Errorf("collecting stats: %w", err)
	}
	return s, nil
}

func (s *Stats) Add(p *domain.Prompt) {
	s.MinNumber = math.Min(s.MinNumber, p.Number)
	s.MaxNumber = math.Max(s.MaxNumber, p.Number)

	for _, f := range domain.TextFields {
		s.fields[f].Add(p.Text(f))
	}
	s.Count++
}

func (s *Stats) Skip(line int, err error) {
	s.Skipped++
	if s.onSkip != nil {
		s.onSkip(line, err)
	}
}

// Empty reports whether no records were added. MinNumber and MaxNumber still
// hold NoMin and NoMax in that case.
func (s *Stats) Empty() bool {
	return s.Count == 0
}

func (s *Stats) Frequencies(f domain.Field) *FrequencyMap {
	return s.fields[f]
}

func (s *Stats) MostCommon(f domain.Field) (Entry, bool) {
	m, ok := s.fields[f]
	if !ok {
		return Entry{}, false
	}
	return m.MostCommon()
}
