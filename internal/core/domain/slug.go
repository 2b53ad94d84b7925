package domain

import (
	"regexp"
	"strings"
)

var (
	slugInvalid = regexp.MustCompile(`[^a-z0-9]+`)
	slugRepeat  = regexp.MustCompile(`-+`)
)

// GenerateSlug creates a filesystem-friendly slug from a title
// Converts "Digital Horizon #2" -> "digital-horizon-2"
func GenerateSlug(title string) string {
	slug := strings.ToLower(title)
	slug = slugInvalid.ReplaceAllString(slug, "-")
	slug = strings.Trim(slug, "-")
	slug = slugRepeat.ReplaceAllString(slug, "-")

	if slug == "" {
		return "artwork"
	}
	return slug
}
