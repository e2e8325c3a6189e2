package crossref

import "regexp"

// Crossref abstracts arrive as JATS XML, often with embedded LaTeX.
var (
	reXMLTags        = regexp.MustCompile(`<[^>]*>`)
	reLaTeXMath      = regexp.MustCompile(`\$.*?\$`)
	reExtraSpaces    = regexp.MustCompile(`\s+`)
	reLeadingSpaces  = regexp.MustCompile(`^\s+`)
	reBackslashWords = regexp.MustCompile(`\\[^ ]+`)
	reCurlyBraces    = regexp.MustCompile(`\{.*?\}`)
)

// ToPlainText strips JATS XML markup and LaTeX remnants from an abstract.
func ToPlainText(text string) string {
	if text == "" {
		return ""
	}
	text = reXMLTags.ReplaceAllString(text, " ")
	text = reLaTeXMath.ReplaceAllString(text, "")
	text = reExtraSpaces.ReplaceAllString(text, " ")
	text = reLeadingSpaces.ReplaceAllString(text, "")
	text = reBackslashWords.ReplaceAllString(text, "")
	return reCurlyBraces.ReplaceAllString(text, "")
}
