package utils

import "github.com/microcosm-cc/bluemonday"

var (
	ugcPolicy    = bluemonday.UGCPolicy()
	strictPolicy = bluemonday.StrictPolicy()
)

// Sanitize cleans user-generated HTML content, keeping safe formatting tags.
func Sanitize(input string) string {
	return ugcPolicy.Sanitize(input)
}

// SanitizeStrict strips all markup. Used for plain-text fields such as
// contact name and subject.
func SanitizeStrict(input string) string {
	return strictPolicy.Sanitize(input)
}
