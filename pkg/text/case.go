package text

import (
	"strings"
	"unicode"
)

// CamelToSnake rewrites camelCase or PascalCase into snake_case.
// A separator goes before an upper-case rune that follows a lower-case rune or a
// digit, and before the last capital of an acronym that starts a new word.
// Existing underscores are kept and never doubled.
func CamelToSnake(s string) string {
	rs := []rune(s)

	var b strings.Builder
	b.Grow(len(s) + len(s)/4)
	for i, r := range rs {
		if i > 0 && unicode.IsUpper(r) && rs[i-1] != '_' {
			prev := rs[i-1]
			startsWord := i+1 < len(rs) && unicode.IsLower(rs[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && startsWord) {
				b.WriteByte('_')
			}
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

// SnakeToCamel rewrites snake_case into lowerCamelCase.
// The first segment is kept as is; every following segment is title-cased.
// Empty segments (from repeated or edge underscores) are dropped.
func SnakeToCamel(s string) string {
	parts := strings.Split(s, "_")

	var b strings.Builder
	b.Grow(len(s))
	b.WriteString(parts[0])
	for _, part := range parts[1:] {
		if part == "" {
			continue
		}
		rs := []rune(part)
		b.WriteRune(unicode.ToUpper(rs[0]))
		b.WriteString(strings.ToLower(string(rs[1:])))
	}
	return b.String()
}
