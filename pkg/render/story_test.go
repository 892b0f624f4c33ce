package render

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dskvich/story-generator/pkg/domain"
)

func TestStory(t *testing.T) {
	p := &domain.Prompt{Number: 3, UnitOfMeasure: "mile", Place: "work", Adjective: "shiny", Noun: "coin"}

	assert.Equal(t,
		"One day Anna was walking her 3 mile commute to work and found a shiny coin on the ground.",
		Story(p))
}

func TestNumber(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{3, "3"},
		{0, "0"},
		{-0.5, "-0.5"},
		{2.75, "2.75"},
		{0.1, "0.1"},
		{1e21, "1000000000000000000000"},
		{-12345.678, "-12345.678"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Number(tt.in))
	}
}

func TestToHTML(t *testing.T) {
	html := ToHTML("| a | b |\n|---|---|\n| 1 | 2 |\n")

	assert.Contains(t, html, "<table>")
	assert.Contains(t, html, "<td>1</td>")
}

func TestToHTML_DropsRawHTML(t *testing.T) {
	html := ToHTML("<script>alert(1)</script>\n\nplain <b>text</b>\n")

	assert.NotContains(t, html, "<script>")
	assert.NotContains(t, html, "<b>")
	assert.Contains(t, html, "plain")
}
