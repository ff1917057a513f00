package text

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
	"strings"

	"github.com/aretw0/utilkit/pkg/domain"
)

// Character classes available to RandomPassword.
const (
	LowerLetters = "abcdefghijklmnopqrstuvwxyz"
	UpperLetters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	Digits       = "0123456789"
	Symbols      = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"
)

// DefaultPasswordLength is the length used by callers that do not pick one.
const DefaultPasswordLength = 10

type passwordConfig struct {
	letters bool
	digits  bool
	symbols bool
	charset string
	source  io.Reader
}

// PasswordOption configures RandomPassword.
type PasswordOption func(*passwordConfig)

// WithLetters toggles ASCII letters (both cases). Enabled by default.
func WithLetters(enabled bool) PasswordOption {
	return func(c *passwordConfig) {
		c.letters = enabled
	}
}

// WithDigits toggles the digits 0-9. Enabled by default.
func WithDigits(enabled bool) PasswordOption {
	return func(c *passwordConfig) {
		c.digits = enabled
	}
}

// WithSymbols toggles ASCII punctuation. Enabled by default.
func WithSymbols(enabled bool) PasswordOption {
	return func(c *passwordConfig) {
		c.symbols = enabled
	}
}

// WithCharset replaces the class toggles with an explicit alphabet.
// Repeated characters are collapsed so every character stays equally likely.
func WithCharset(charset string) PasswordOption {
	return func(c *passwordConfig) {
		c.charset = charset
	}
}

// WithRandomSource overrides the entropy source (crypto/rand.Reader by default).
func WithRandomSource(r io.Reader) PasswordOption {
	return func(c *passwordConfig) {
		c.source = r
	}
}

func (c *passwordConfig) alphabet() []rune {
	if c.charset != "" {
		return []rune(RemoveDuplicates(c.charset))
	}

	var b strings.Builder
	if c.letters {
		b.WriteString(LowerLetters)
		b.WriteString(UpperLetters)
	}
	if c.digits {
		b.WriteString(Digits)
	}
	if c.symbols {
		b.WriteString(Symbols)
	}
	return []rune(b.String())
}

// RandomPassword returns a string of length characters drawn uniformly from the
// configured alphabet. The default source is crypto/rand.
func RandomPassword(length int, opts ...PasswordOption) (string, error) {
	if length <= 0 {
		return "", fmt.Errorf("%w: password length must be positive, got %d", domain.ErrInvalidArgument, length)
	}

	cfg := &passwordConfig{
		letters: true,
		digits:  true,
		symbols: true,
		source:  rand.Reader,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	alphabet := cfg.alphabet()
	if len(alphabet) == 0 {
		return "", fmt.Errorf("%w: password charset is empty", domain.ErrInvalidArgument)
	}

	limit := big.NewInt(int64(len(alphabet)))
	out := make([]rune, length)
	for i := range out {
		n, err := rand.Int(cfg.source, limit)
		if err != nil {
			return "", fmt.Errorf("%w: read random source: %w", domain.ErrIOFailure, err)
		}
		out[i] = alphabet[n.Int64()]
	}
	return string(out), nil
}
