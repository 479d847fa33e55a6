package utils

import "github.com/microcosm-cc/bluemonday"

// Strict policy: user-supplied text is stored as plain text, never markup.
var policy = bluemonday.StrictPolicy()

// SanitizeText strips any HTML from user input before it reaches storage.
func SanitizeText(s string) string {
	return policy.Sanitize(s)
}
