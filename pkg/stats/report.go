package stats

import (
	"fmt"
	"io"
	"strings"

	"github.com/samber/lo"

	"github.com/dskvich/story-generator/pkg/domain"
	"github.com/dskvich/story-generator/pkg/render"
)

type Format string

const (
	FormatText     Format = "text"
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
)

var Formats = []Format{FormatText, FormatMarkdown, FormatHTML}

func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	if !lo.Contains(Formats, f) {
		return "", fmt.Errorf("unsupported report format %q", s)
	}
	return f, nil
}

const noValue = "none"

// WriteReport writes s to w in the given format.
func WriteReport(w io.Writer, s *Stats, format Format) error {
	var out string
	switch format {
	case FormatText, "":
		out = s.Text()
	case FormatMarkdown:
		out = s.Markdown()
	case FormatHTML:
		out = render.ToHTML(s.Markdown())
	default:
		return fmt.Errorf("unsupported report format %q", format)
	}

	if _, err := io.WriteString(w, out); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}

func (s *Stats) minMax() (string, string) {
	if s.Empty() {
		return noValue, noValue
	}
	return render.Number(s.MinNumber), render.Number(s.MaxNumber)
}

// Text renders the plain report. Fields without any value are left out.
func (s *Stats) Text() string {
	var b strings.Builder

	minNumber, maxNumber := s.minMax()
	fmt.Fprintf(&b, "Min number: %s\n", minNumber)
	fmt.Fprintf(&b, "Max number: %s\n", maxNumber)

	for _, f := range domain.TextFields {
		if e, ok := s.MostCommon(f); ok {
			fmt.Fprintf(&b, "Most common %s: %s. Occurrences: %d\n", f, e.Value, e.Count)
		}
	}

	return b.String()
}

func (s *Stats) Markdown() string {
	var b strings.Builder

	minNumber, maxNumber := s.minMax()

	b.WriteString("# Story stats\n\n")
	b.WriteString("| Statistic | Value | Occurrences |\n")
	b.WriteString("|---|---|---|\n")
	fmt.Fprintf(&b, "| Records | %d | |\n", s.Count)
	fmt.Fprintf(&b, "| Min number | %s | |\n", minNumber)
	fmt.Fprintf(&b, "| Max number | %s | |\n", maxNumber)

	for _, f := range domain.TextFields {
		if e, ok := s.MostCommon(f); ok {
			fmt.Fprintf(&b, "| Most common %s | %s | %d |\n", f, escapeCell(e.Value), e.Count)
		}
	}

	return b.String()
}

// cellEscaper backslash-escapes everything Markdown would otherwise read as
// table structure, emphasis, code, links or inline HTML.
var cellEscaper = strings.NewReplacer(
	`\`, `\\`,
	"|", `\|`,
	"*", `\*`,
	"_", `\_`,
	"`", "\\`",
	"[", `\[`,
	"]", `\]`,
	"<", `\<`,
	">", `\>`,
	"\n", " ",
	"\r", " ",
)

func escapeCell(s string) string {
	return cellEscaper.Replace(s)
}
