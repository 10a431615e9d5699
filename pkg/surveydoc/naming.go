package surveydoc

import (
	"fmt"
	"strings"
	"unicode"
)

// SanitizeFileName keeps letters, digits, spaces, hyphens and underscores
// of s, drops every other rune, and trims surrounding spaces. Distinct inputs
// can collapse to the same name.
func SanitizeFileName(s string) string {
	var sb strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == ' ' || r == '-' || r == '_' {
			sb.WriteRune(r)
		}
	}
	return strings.Trim(sb.String(), " ")
}

// OutputName builds the sanitized base name of a row's output PDF from its
// name and optional group parts. It falls back to row_<n> (1-based) when
// nothing usable is left.
func OutputName(name, group, separator string, rowIndex int) string {
	parts := make([]string, 0, 2)
	for _, p := range []string{name, group} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}

	safe := SanitizeFileName(strings.Join(parts, separator))
	if safe == "" {
		return fmt.Sprintf("row_%d", rowIndex+1)
	}
	return safe
}
