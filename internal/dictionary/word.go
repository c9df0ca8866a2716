// Package dictionary holds the Na'vi dictionary entries and the word values
// that the affix stages operate on.
package dictionary

import (
	"slices"
	"strings"
)

// NoInfixes marks an entry whose InfixLocations has no slots.
const NoInfixes = "NULL"

// Affixes records the morphemes found while reconstructing a surface form.
// Each list keeps discovery order.
type Affixes struct {
	Prefix   []string `json:"Prefix"`
	Infix    []string `json:"Infix"`
	Suffix   []string `json:"Suffix"`
	Lenition []string `json:"Lenition"`
}

// Clone returns a deep copy.
func (a Affixes) Clone() Affixes {
	return Affixes{
		Prefix:   slices.Clone(a.Prefix),
		Infix:    slices.Clone(a.Infix),
		Suffix:   slices.Clone(a.Suffix),
		Lenition: slices.Clone(a.Lenition),
	}
}

// Empty reports whether no affix of any kind was recorded.
func (a Affixes) Empty() bool {
	return len(a.Prefix) == 0 && len(a.Infix) == 0 && len(a.Suffix) == 0 && len(a.Lenition) == 0
}

// WordData is a dictionary record as exported by the fwew dictionary.
type WordData struct {
	ID             string  `json:"ID"`
	Navi           string  `json:"Navi"`
	IPA            string  `json:"IPA"`
	InfixLocations string  `json:"InfixLocations"`
	PartOfSpeech   string  `json:"PartOfSpeech"`
	Source         string  `json:"Source"`
	Stressed       string  `json:"Stressed"`
	Syllables      string  `json:"Syllables"`
	InfixDots      string  `json:"InfixDots"`
	DE             string  `json:"DE"`
	EN             string  `json:"EN"`
	ET             string  `json:"ET"`
	FR             string  `json:"FR"`
	HU             string  `json:"HU"`
	NL             string  `json:"NL"`
	PL             string  `json:"PL"`
	RU             string  `json:"RU"`
	SV             string  `json:"SV"`
	TR             string  `json:"TR"`
	Affixes        Affixes `json:"Affixes"`
}

// Word is a dictionary entry plus the state of one reconstruction attempt.
// Words are values: stages return a new Word instead of changing their input.
type Word struct {
	Data    WordData
	POS     PartOfSpeech
	Attempt string
	Target  string
}

// NewWord builds a Word and resolves its part of speech.
func NewWord(data WordData) Word {
	data.Affixes = data.Affixes.Clone()
	return Word{Data: data, POS: ParsePartOfSpeech(data.PartOfSpeech)}
}

// Clone returns a copy that shares no slices with w.
func (w Word) Clone() Word {
	w.Data.Affixes = w.Data.Affixes.Clone()
	return w
}

// Languages lists the gloss languages in field order.
var Languages = []string{"de", "en", "et", "fr", "hu", "nl", "pl", "ru", "sv", "tr"}

// Gloss returns the translation for a two-letter language code.
func (w Word) Gloss(lang string) string {
	d := w.Data
	switch strings.ToLower(lang) {
	case "de":
		return d.DE
	case "en":
		return d.EN
	case "et":
		return d.ET
	case "fr":
		return d.FR
	case "hu":
		return d.HU
	case "nl":
		return d.NL
	case "pl":
		return d.PL
	case "ru":
		return d.RU
	case "sv":
		return d.SV
	case "tr":
		return d.TR
	}
	return ""
}

// HasInfixSlots reports whether the entry carries a usable infix template.
func (w Word) HasInfixSlots() bool {
	loc := w.Data.InfixLocations
	return loc != "" && loc != NoInfixes
}
