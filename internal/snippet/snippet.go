// Package snippet extracts short highlighted excerpts from article content
// for search results.
package snippet

import (
	"html"
	"regexp"
	"strings"
	"unicode/utf8"
)

// DefaultRadius is the number of characters kept on each side of the match.
const DefaultRadius = 80

const ellipsis = "…"

var tagRe = regexp.MustCompile(`<[^>]*>`)

// StripTags removes all markup from content, leaving plain text.
func StripTags(content string) string {
	return tagRe.ReplaceAllString(content, "")
}

// Build locates the first case-insensitive occurrence of query in content
// (markup stripped), extracts radius characters on each side, marks
// truncation with ellipses, escapes the excerpt, and wraps every match in
// <mark>. Returns "" when content, query, or a match is missing.
func Build(content, query string, radius int) string {
	if content == "" || strings.TrimSpace(query) == "" {
		return ""
	}
	if radius <= 0 {
		radius = DefaultRadius
	}

	plain := StripTags(content)
	q := strings.TrimSpace(query)

	matchRe, err := regexp.Compile(`(?i)` + regexp.QuoteMeta(q))
	if err != nil {
		return ""
	}

	loc := matchRe.FindStringIndex(plain)
	if loc == nil {
		return ""
	}

	// The radius counts characters, not bytes, so step outward rune by rune
	// from the match. Byte arithmetic would halve the window on Cyrillic text.
	start := loc[0]
	for i := 0; i < radius && start > 0; i++ {
		_, size := utf8.DecodeLastRuneInString(plain[:start])
		start -= size
	}
	end := loc[1]
	for i := 0; i < radius && end < len(plain); i++ {
		_, size := utf8.DecodeRuneInString(plain[end:])
		end += size
	}

	excerpt := plain[start:end]
	if start > 0 {
		excerpt = ellipsis + excerpt
	}
	if end < len(plain) {
		excerpt += ellipsis
	}

	escaped := html.EscapeString(excerpt)

	// Highlight against the escaped text so offsets stay consistent; the
	// query itself is escaped the same way before matching.
	escapedQ := html.EscapeString(q)
	highlightRe, err := regexp.Compile(`(?i)` + regexp.QuoteMeta(escapedQ))
	if err != nil {
		return escaped
	}

	return highlightRe.ReplaceAllString(escaped, "<mark>$0</mark>")
}

