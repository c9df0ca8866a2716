package dictionary

import "strings"

// digraphs collapse to one placeholder rune so they count once.
var digraphs = strings.NewReplacer(
	"aw", "0",
	"ay", "1",
	"ew", "2",
	"ey", "3",
	"kx", "4",
	"ll", "5",
	"ng", "6",
	"px", "7",
	"rr", "8",
	"ts", "9",
	"tx", "Q",
)

// nuclei are the vowels, diphthongs (0-3) and syllabic ll/rr (5, 8) after compression.
const nuclei = "aäeéiìou012358"

// SyllableCount returns the number of syllables in the root.
func (w Word) SyllableCount() int {
	compressed := digraphs.Replace(strings.ToLower(w.Data.Navi))
	count := 0
	for _, r := range compressed {
		if strings.ContainsRune(nuclei, r) {
			count++
		}
	}
	return count
}
