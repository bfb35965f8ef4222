package validators

import "strings"

// SanitizeString trims whitespace and caps the length at maxLen runes. The
// cut lands on a rune boundary so a multi-byte character is dropped whole
// rather than split into invalid UTF-8.
func SanitizeString(input string, maxLen int) string {
	trimmed := strings.TrimSpace(input)
	if maxLen <= 0 {
		return trimmed
	}

	count := 0
	for i := range trimmed {
		if count == maxLen {
			return trimmed[:i]
		}
		count++
	}
	return trimmed
}
