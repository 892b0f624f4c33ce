package render

import (
	"fmt"
	"strconv"

	"github.com/dskvich/story-generator/pkg/domain"
)

const storyTemplate = "One day Anna was walking her %s %s commute to %s and found a %s %s on the ground."

func Story(p *domain.Prompt) string {
	return fmt.Sprintf(storyTemplate, Number(p.Number), p.UnitOfMeasure, p.Place, p.Adjective, p.Noun)
}

// Number formats n with the fewest digits that still parse back to n and
// never switches to exponent notation.
func Number(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}
