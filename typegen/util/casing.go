package util

import (
	"strings"
	"unicode"
)

// Words splits s into words the way lodash's `words` does for identifiers:
// any non-alphanumeric rune separates, a lower-to-upper transition starts a
// new word, the last capital of an acronym followed by lowercase starts a new
// word ("HTTPServer" -> "HTTP", "Server"), and digit runs are words of their own.
func Words(s string) []string {
	var words []string
	runes := []rune(s)
	start := -1

	flush := func(end int) {
		if start >= 0 && end > start {
			words = append(words, string(runes[start:end]))
		}
		start = -1
	}

	for i, r := range runes {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			flush(i)
			continue
		}
		if start < 0 {
			start = i
			continue
		}

		prev := runes[i-1]
		switch {
		case unicode.IsDigit(r) != unicode.IsDigit(prev):
			flush(i)
			start = i
		case unicode.IsUpper(r) && unicode.IsLower(prev):
			flush(i)
			start = i
		case unicode.IsUpper(r) && unicode.IsUpper(prev) &&
			i+1 < len(runes) && unicode.IsLower(runes[i+1]):
			flush(i)
			start = i
		}
	}
	flush(len(runes))

	return words
}

// ToCamelCase converts any identifier-ish string to camelCase.
// "fleet.service-record" -> "fleetServiceRecord", "Vehicle" -> "vehicle"
func ToCamelCase(s string) string {
	var result strings.Builder
	for i, word := range Words(s) {
		word = strings.ToLower(word)
		if i == 0 {
			result.WriteString(word)
			continue
		}
		result.WriteString(UpperFirst(word))
	}
	return result.String()
}

// ToPascalCase converts any identifier-ish string to PascalCase.
// "maintenance-record" -> "MaintenanceRecord"
func ToPascalCase(s string) string {
	return UpperFirst(ToCamelCase(s))
}

// UpperFirst capitalizes the first rune and leaves the rest untouched
func UpperFirst(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
