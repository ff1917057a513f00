package text_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/aretw0/utilkit/pkg/domain"
	"github.com/aretw0/utilkit/pkg/text"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomPassword_Length(t *testing.T) {
	for _, n := range []int{1, text.DefaultPasswordLength, 64} {
		pw, err := text.RandomPassword(n)
		require.NoError(t, err)
		assert.Len(t, []rune(pw), n)
	}
}

func TestRandomPassword_RejectsNonPositiveLength(t *testing.T) {
	for _, n := range []int{0, -1} {
		_, err := text.RandomPassword(n)
		assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	}
}

func TestRandomPassword_CharsetOptions(t *testing.T) {
	tests := []struct {
		name    string
		opts    []text.PasswordOption
		allowed string
	}{
		{"Digits Only", []text.PasswordOption{text.WithLetters(false), text.WithSymbols(false)}, text.Digits},
		{"Letters Only", []text.PasswordOption{text.WithDigits(false), text.WithSymbols(false)}, text.LowerLetters + text.UpperLetters},
		{"Symbols Only", []text.PasswordOption{text.WithLetters(false), text.WithDigits(false)}, text.Symbols},
		{"Explicit Charset", []text.PasswordOption{text.WithCharset("xyzzy")}, "xyz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pw, err := text.RandomPassword(200, tt.opts...)
			require.NoError(t, err)
			for _, r := range pw {
				assert.True(t, strings.ContainsRune(tt.allowed, r), "unexpected rune %q", r)
			}
		})
	}
}

func TestRandomPassword_EmptyCharset(t *testing.T) {
	_, err := text.RandomPassword(8, text.WithLetters(false), text.WithDigits(false), text.WithSymbols(false))
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestRandomPassword_DeterministicSource(t *testing.T) {
	// An all-zero source always selects the first character of the alphabet.
	pw, err := text.RandomPassword(4, text.WithRandomSource(bytes.NewReader(make([]byte, 16))))
	require.NoError(t, err)
	assert.Equal(t, "aaaa", pw)
}

func TestRandomPassword_ExhaustedSource(t *testing.T) {
	_, err := text.RandomPassword(4, text.WithRandomSource(bytes.NewReader(nil)))
	assert.ErrorIs(t, err, domain.ErrIOFailure)
}
