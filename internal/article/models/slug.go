package models

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	slugInvalidRunes = regexp.MustCompile(`[^a-z0-9-]+`)
	slugHyphenRuns   = regexp.MustCompile(`-{2,}`)
	htmlTags         = regexp.MustCompile(`<[^>]*>`)
)

// Slugify derives a URL-safe slug from a title: lowercase, `[a-z0-9-]+`,
// no leading, trailing, or repeated hyphens.
func Slugify(title string) string {
	s := strings.ToLower(title)
	s = slugInvalidRunes.ReplaceAllString(s, "-")
	s = slugHyphenRuns.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

const excerptLength = 200

// DeriveExcerpt builds an excerpt from the first ~200 plain-text characters
// of the body, stripping HTML tags. The cut lands on a rune boundary so
// multi-byte content never yields invalid UTF-8.
func DeriveExcerpt(content string) string {
	plain := htmlTags.ReplaceAllString(content, "")
	if utf8.RuneCountInString(plain) <= excerptLength {
		return plain
	}
	runes := 0
	for i := range plain {
		if runes == excerptLength {
			return plain[:i] + "..."
		}
		runes++
	}
	return plain
}
