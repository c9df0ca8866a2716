// Package search looks words up in the dictionary in both directions.
package search

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"

	"github.com/verte-zerg/fwew/internal/dictionary"
)

// queryBlacklist is stripped from Na'vi queries before matching.
const queryBlacklist = "~@#$%^&*()[]{}<>_/.,;:!?|+\\"

// glossPunctuation is stripped from glosses before tokenizing.
const glossPunctuation = ".,;()"

var apostrophes = strings.NewReplacer("’", "'", "‘", "'")

// NormalizeQuery prepares a Na'vi query for matching: NFC, no blacklisted
// punctuation, straight apostrophes, lowercase.
func NormalizeQuery(q string) string {
	q = nfc(q)
	q = stripChars(q, queryBlacklist)
	q = apostrophes.Replace(q)
	return strings.TrimSpace(strings.ToLower(q))
}

// rootKey is the form of a root compared against queries: NFC, no +/- markers, lowercase.
func rootKey(root string) string {
	return strings.ToLower(stripChars(nfc(root), "+-"))
}

// glossTokens splits a gloss into lowercase words.
func glossTokens(gloss string) []string {
	return strings.Fields(strings.ToLower(stripChars(nfc(gloss), glossPunctuation)))
}

func nfc(s string) string {
	return norm.NFC.String(s)
}

func stripChars(s, chars string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(chars, r) {
			return -1
		}
		return r
	}, s)
}

// ParseLanguage resolves a language tag such as "en" or "de-AT" to the
// two-letter code of a gloss field.
func ParseLanguage(code string) (string, error) {
	tag, err := language.Parse(strings.TrimSpace(code))
	if err != nil {
		return "", fmt.Errorf("failed to parse language %q: %w", code, err)
	}
	base, _ := tag.Base()
	lang := base.String()
	if !slices.Contains(dictionary.Languages, lang) {
		return "", fmt.Errorf("unsupported language %q", code)
	}
	return lang, nil
}
