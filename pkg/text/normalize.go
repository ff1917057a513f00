package text

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize folds accents and lower-cases s ("L'École" -> "l'ecole").
// Characters are decomposed (NFD), nonspacing marks are dropped and the result
// is recomposed (NFC). Letters without a decomposition, such as "ß" or "ø",
// are kept.
func Normalize(s string) string {
	// Chained transformers hold state, so one is built per call.
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	// norm and runes transformers never fail on in-memory input.
	folded, _, _ := transform.String(t, s)
	return strings.ToLower(folded)
}
