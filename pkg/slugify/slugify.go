// Package slugify derives URL-safe slugs from article titles and tag names.
package slugify

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	// Matches spaces, underscores, and slashes (for replacement with dashes).
	wordSeparatorRe = regexp.MustCompile(`[\s_/]+`)
	// Matches non-alphanumeric characters (except dashes).
	nonAlphanumericRe = regexp.MustCompile(`[^a-z0-9-]`)
	// Matches multiple consecutive dashes.
	multipleDashRe = regexp.MustCompile(`-+`)
)

// Make converts free text to its canonical URL-safe slug.
//
// Normalization rules:
//  1. Trim whitespace and lowercase
//  2. Replace spaces, underscores and slashes with dashes
//  3. Remove non-alphanumeric characters (except dashes)
//  4. Collapse multiple dashes
//  5. Trim leading/trailing dashes
//
// Examples:
//
//	"How to Train Your Dragon" → "how-to-train-your-dragon"
//	"  multi   word "          → "multi-word"
//	"sci-fi/fantasy"           → "sci-fi-fantasy"
func Make(input string) string {
	s := strings.ToLower(strings.TrimSpace(input))
	s = wordSeparatorRe.ReplaceAllString(s, "-")
	s = nonAlphanumericRe.ReplaceAllString(s, "")
	s = multipleDashRe.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// WithSuffix appends a numeric disambiguation suffix to a slug. The first
// candidate (n <= 1) is the slug itself, then "slug-2", "slug-3", and so on.
func WithSuffix(slug string, n int) string {
	if n <= 1 {
		return slug
	}
	return fmt.Sprintf("%s-%d", slug, n)
}
