package dictionary

import "strings"

// Kind is the part-of-speech family used to pick affix chains.
type Kind int

const (
	KindOther Kind = iota
	KindUntagged
	KindVerb
	KindNoun
	KindPronoun
	KindProperNoun
	KindAdjective
	KindInterrogative
	KindDemonstrative
	KindDemonstrativePronoun
	KindNumeral
)

var kindNames = map[Kind]string{
	KindOther:                "other",
	KindUntagged:             "untagged",
	KindVerb:                 "verb",
	KindNoun:                 "noun",
	KindPronoun:              "pronoun",
	KindProperNoun:           "proper noun",
	KindAdjective:            "adjective",
	KindInterrogative:        "interrogative",
	KindDemonstrative:        "demonstrative",
	KindDemonstrativePronoun: "demonstrative pronoun",
	KindNumeral:              "numeral",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// PartOfSpeech is a raw dictionary tag resolved into a Kind.
type PartOfSpeech struct {
	Tag          string
	Kind         Kind
	Intransitive bool
}

var exactKinds = map[string]Kind{
	"n.":        KindNoun,
	"pn.":       KindPronoun,
	"prop.n.":   KindProperNoun,
	"adj.":      KindAdjective,
	"inter.":    KindInterrogative,
	"dem.":      KindDemonstrative,
	"dem., pn.": KindDemonstrativePronoun,
	"num.":      KindNumeral,
}

// ParsePartOfSpeech resolves a dictionary tag such as "vtr." or "n.".
func ParsePartOfSpeech(tag string) PartOfSpeech {
	pos := PartOfSpeech{Tag: tag}
	switch {
	case tag == "":
		pos.Kind = KindUntagged
	case strings.HasPrefix(tag, "v"), strings.HasPrefix(tag, "svin"):
		pos.Kind = KindVerb
	default:
		if k, ok := exactKinds[tag]; ok {
			pos.Kind = k
		}
	}
	pos.Intransitive = tag == "vin."
	return pos
}

// IsVerb reports whether the tag starts as a verb tag. Only these entries
// take verb prefixes and infixes.
func (p PartOfSpeech) IsVerb() bool {
	return p.Kind == KindVerb
}

// TakesVerbSuffixes reports whether the suffix stage treats the entry as a
// verb. Compound tags such as "n., vin." qualify without being verbs.
func (p PartOfSpeech) TakesVerbSuffixes() bool {
	switch p.Kind {
	case KindVerb, KindUntagged:
		return true
	}
	return strings.Contains(p.Tag, "v") && !strings.Contains(p.Tag, "adv.")
}

// IsNominal reports whether the entry takes the nominal case chain.
func (p PartOfSpeech) IsNominal() bool {
	switch p.Kind {
	case KindNoun, KindPronoun, KindProperNoun, KindInterrogative, KindDemonstrative, KindDemonstrativePronoun:
		return true
	}
	return false
}
