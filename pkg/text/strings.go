package text

import (
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Reverse returns s with its runes in reverse order. Strings that are not
// valid UTF-8 are reversed byte by byte, so Reverse(Reverse(s)) == s always.
func Reverse(s string) string {
	if !utf8.ValidString(s) {
		bs := []byte(s)
		slices.Reverse(bs)
		return string(bs)
	}
	rs := []rune(s)
	slices.Reverse(rs)
	return string(rs)
}

// CountVowels counts a, e, i, o and u, ignoring case.
func CountVowels(s string) int {
	n := 0
	for _, r := range s {
		switch unicode.ToLower(r) {
		case 'a', 'e', 'i', 'o', 'u':
			n++
		}
	}
	return n
}

// RemoveDuplicates keeps the first occurrence of every rune in s.
func RemoveDuplicates(s string) string {
	seen := make(map[rune]struct{}, len(s))

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		b.WriteRune(r)
	}
	return b.String()
}

// IsPalindrome reports whether the letters and digits of s read the same in
// both directions, ignoring case. Input with no letters or digits is a palindrome.
func IsPalindrome(s string) bool {
	rs := make([]rune, 0, len(s))
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			rs = append(rs, unicode.ToLower(r))
		}
	}

	for i, j := 0, len(rs)-1; i < j; i, j = i+1, j-1 {
		if rs[i] != rs[j] {
			return false
		}
	}
	return true
}
