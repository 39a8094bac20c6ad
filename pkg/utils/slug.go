package utils

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// MaxSlugLength caps generated slugs
const MaxSlugLength = 100

var (
	nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)
	// NFD decomposition followed by removal of combining marks folds
	// accented characters to their ASCII base ("é" -> "e").
	deaccent = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
)

// GenerateSlug derives a URL-safe identifier from a display name.
// "François Müller" becomes "francois-muller". The result contains only
// [a-z0-9-], carries no leading or trailing hyphen and is at most
// MaxSlugLength characters. Input with no usable characters yields "",
// which callers must treat as invalid.
func GenerateSlug(input string) string {
	lower := strings.ToLower(input)

	ascii, _, err := transform.String(deaccent, lower)
	if err != nil {
		// Transform only fails on malformed UTF-8; fall back to the
		// lowercased input and let the character filter do the rest.
		ascii = lower
	}

	slug := nonSlugChars.ReplaceAllString(ascii, "-")
	slug = strings.Trim(slug, "-")

	if len(slug) > MaxSlugLength {
		slug = strings.Trim(slug[:MaxSlugLength], "-")
	}

	return slug
}
