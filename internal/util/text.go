package util

import (
	"regexp"
	"strings"
)

var (
	reNonWord   = regexp.MustCompile(`[^\p{L}\p{N}_\s]`)
	reSlugDrop  = regexp.MustCompile(`[^\p{L}\p{N}_\s-]`)
	reSeparator = regexp.MustCompile(`[\s_]+`)
	reSpaces    = regexp.MustCompile(`\s+`)
)

// NormalizeName canonicalizes a cocktail name for table lookups:
// lowercase, punctuation stripped, surrounding whitespace trimmed.
func NormalizeName(input string) string {
	s := strings.ToLower(input)
	s = reNonWord.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

// Slugify derives a URL slug from a name: lowercase, keep word
// characters/whitespace/hyphens, collapse whitespace and underscore runs
// into single hyphens, trim hyphens at the ends. Idempotent on its own
// output; uniqueness is handled by the slug registry, not here.
func Slugify(name string) string {
	s := strings.ToLower(name)
	s = reSlugDrop.ReplaceAllString(s, "")
	s = reSeparator.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

func CollapseSpaces(input string) string {
	return strings.TrimSpace(reSpaces.ReplaceAllString(input, " "))
}
