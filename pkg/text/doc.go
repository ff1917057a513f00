/*
Package text provides stateless string transforms: password generation, case
conversion, reversal, vowel counting, deduplication, accent folding and
palindrome detection.

All functions operate on runes, so multi-byte UTF-8 input is handled one code
point at a time. None of them keep state between calls and all are safe for
concurrent use.

# Case Conversion

CamelToSnake and SnakeToCamel are an inverse pair whose canonical form is
lowerCamelCase:

	text.CamelToSnake("parseHTTPRequest") // "parse_http_request"
	text.SnakeToCamel("parse_http_request") // "parseHttpRequest"
	text.SnakeToCamel(text.CamelToSnake("helloWorld")) // "helloWorld"

Acronyms collapse into a single word, which is why the round trip only holds for
words made of one capital followed by lower-case letters or digits.
*/
package text
