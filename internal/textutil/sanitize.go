package textutil

import "strings"

// SanitizeToken converts a string to a lowercase comparison-safe token.
// Letters are lowercased, digits and hyphens/underscores are kept, everything
// else becomes an underscore. Returns "unknown" for empty input.
func SanitizeToken(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return "unknown"
	}
	var b strings.Builder
	for _, r := range value {
		switch {
		case r >= 'a' && r <= 'z':
			b.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r + ('a' - 'A'))
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '-' || r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	out := strings.Trim(b.String(), "_-")
	if out == "" {
		return "unknown"
	}
	return out
}

// SplitWords breaks a file or folder name into words, treating underscores,
// dashes, dots, and whitespace as separators. Empty segments are dropped.
func SplitWords(name string) []string {
	return strings.FieldsFunc(name, func(r rune) bool {
		switch r {
		case '_', '-', '.', ' ', '\t':
			return true
		}
		return false
	})
}
