// Package sanitize reduces editor-submitted HTML to a fixed allow-list of
// structural tags and attributes. The policy is idempotent: sanitizing
// already-sanitized content returns it unchanged.
package sanitize

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// Sanitizer strips content down to the allow-list.
type Sanitizer struct {
	policy *bluemonday.Policy
}

// New creates a Sanitizer with the article content policy.
func New() *Sanitizer {
	p := bluemonday.NewPolicy()

	p.AllowElements(
		"p", "br",
		"h2", "h3", "h4",
		"ul", "ol", "li",
		"strong", "em", "b", "i",
		"blockquote",
		"code", "pre",
		"img",
		"a",
		"div", "span",
	)

	p.AllowAttrs("class").Globally()
	p.AllowAttrs("href", "title", "target", "rel").OnElements("a")
	p.AllowAttrs("src", "alt", "title").OnElements("img")

	p.AllowURLSchemes("http", "https", "mailto")
	p.RequireParseableURLs(true)

	return &Sanitizer{policy: p}
}

// Clean returns the sanitized form of raw. Empty input yields "".
func (s *Sanitizer) Clean(raw string) string {
	if raw == "" {
		return ""
	}
	return s.policy.Sanitize(raw)
}

// emptyPlaceholders are the editor's representations of a blank document.
var emptyPlaceholders = map[string]bool{
	"<p><br></p>":  true,
	"<p><br/></p>": true,
	"<p></p>":      true,
}

// IsBlank reports whether sanitized content carries no article text: either
// empty after trimming or equal to an empty-paragraph editor placeholder.
func IsBlank(sanitized string) bool {
	trimmed := strings.TrimSpace(sanitized)
	if trimmed == "" {
		return true
	}
	return emptyPlaceholders[trimmed]
}
