package validation

import (
	"slices"
	"strings"
	"unicode/utf8"

	"medialens/internal/generator"
)

// Input limits, counted in runes.
const (
	MaxTopicLength   = 200
	MaxSearchLength  = 500
	MaxDetailsLength = 2000
)

// ValidateTopic checks the content-idea topic field.
func ValidateTopic(topic string) (bool, string) {
	return validateRequired(topic, MaxTopicLength, "Topic")
}

// ValidateSearchQuery checks the search box input.
func ValidateSearchQuery(query string) (bool, string) {
	return validateRequired(query, MaxSearchLength, "Search query")
}

// ValidateDetails checks the optional additional-context field.
func ValidateDetails(details string) (bool, string) {
	if utf8.RuneCountInString(details) > MaxDetailsLength {
		return false, "Additional context is too long"
	}
	return true, ""
}

// NormalizeCategory lowercases and trims a category so matching is
// case-insensitive.
func NormalizeCategory(category string) string {
	return strings.ToLower(strings.TrimSpace(category))
}

// IsKnownCategory reports whether category is one of the built-in
// categories. Unknown categories are still accepted by the generator and
// fall back to the default template.
func IsKnownCategory(category string) bool {
	return slices.Contains(generator.Categories, NormalizeCategory(category))
}

func validateRequired(value string, maxLen int, field string) (bool, string) {
	if strings.TrimSpace(value) == "" {
		return false, field + " is required"
	}
	if utf8.RuneCountInString(value) > maxLen {
		return false, field + " is too long"
	}
	return true, ""
}
