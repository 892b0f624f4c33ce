package render

import (
	"github.com/russross/blackfriday"
)

// ToHTML converts Markdown to an HTML fragment. Raw HTML in the input is dropped.
func ToHTML(markdown string) string {
	extensions := blackfriday.EXTENSION_TABLES |
		blackfriday.EXTENSION_FENCED_CODE |
		blackfriday.EXTENSION_NO_INTRA_EMPHASIS

	renderer := blackfriday.HtmlRenderer(
		blackfriday.HTML_USE_XHTML|blackfriday.HTML_SKIP_STYLE|blackfriday.HTML_SKIP_HTML, "", "")

	return string(blackfriday.Markdown([]byte(markdown), renderer, extensions))
}
