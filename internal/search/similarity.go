package search

import (
	"strings"
	"unicode/utf8"
)

// Threshold is the lowest similarity that still earns a full reconstruction.
const Threshold = 0.50

// genitiveSuffix queries always get a full reconstruction.
const genitiveSuffix = "eyä"

// vowelClass holds the vowels plus l and r, which are syllabic in ll and rr.
const vowelClass = "aäeiìoulr"

// Similarity scores how plausibly candidate is an inflection of root, in [0, 1]
// for most inputs. It is asymmetric and cheap, and only gates Reconstruct.
func Similarity(root, candidate string) float64 {
	if root == candidate {
		return 1.0
	}
	if root == "nga" && candidate == "ngey" {
		return 1.0
	}

	rootLen := utf8.RuneCountInString(root)
	candidateLen := utf8.RuneCountInString(candidate)
	if rootLen > candidateLen+1 {
		return 0.0
	}

	rootVowels := intersection(root, vowelClass)
	candidateVowels := intersection(candidate, vowelClass)
	if len(rootVowels) > len(candidateVowels) {
		return 0.0
	}
	if len(intersection(string(rootVowels), candidate)) == 0 {
		return 0.0
	}

	shared := len(intersection(root, candidate))
	return (float64(shared)/float64(rootLen) + float64(rootLen)/float64(candidateLen)) / 2
}

// intersection returns the runes of b that also occur in a, in b's order.
func intersection(a, b string) []rune {
	var out []rune
	for _, r := range b {
		if strings.ContainsRune(a, r) {
			out = append(out, r)
		}
	}
	return out
}
