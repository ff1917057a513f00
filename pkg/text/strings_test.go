package text_test

import (
	"testing"

	"github.com/aretw0/utilkit/pkg/text"
	"github.com/stretchr/testify/assert"
)

func TestReverse(t *testing.T) {
	assert.Equal(t, "", text.Reverse(""))
	assert.Equal(t, "dlroWolleH", text.Reverse("HelloWorld"))
	assert.Equal(t, "élocé'l", text.Reverse("l'écolé"))
	assert.Equal(t, "界世", text.Reverse("世界"))
}

func TestReverse_Involution(t *testing.T) {
	for _, s := range []string{"", "a", "ab", "racecar", "Hello, 世界!", "tab\tnew\nline", "\xff\xfeab"} {
		assert.Equal(t, s, text.Reverse(text.Reverse(s)))
	}
}

func TestCountVowels(t *testing.T) {
	tests := []struct {
		input    string
		expected int
	}{
		{"", 0},
		{"rhythm", 0},
		{"HelloWorld", 3},
		{"AEIOUaeiou", 10},
		{"Queueing", 5},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, text.CountVowels(tt.input))
		})
	}
}

func TestRemoveDuplicates(t *testing.T) {
	assert.Equal(t, "", text.RemoveDuplicates(""))
	assert.Equal(t, "HeloWrd", text.RemoveDuplicates("HelloWorld"))
	assert.Equal(t, "abc", text.RemoveDuplicates("aabbccabc"))
	assert.Equal(t, "Aa", text.RemoveDuplicates("AaAa"), "comparison is case sensitive")
	assert.Equal(t, "世界", text.RemoveDuplicates("世界世界"))
}

func TestIsPalindrome(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"A man a plan a canal Panama", true},
		{"hello", false},
		{"madam", true},
		{"No 'x' in Nixon", true},
		{"12321", true},
		{"123", false},
		{"", true},
		{"!!", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, text.IsPalindrome(tt.input))
		})
	}
}
