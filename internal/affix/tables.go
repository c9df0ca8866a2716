// Package affix rebuilds inflected Na'vi forms from dictionary roots.
//
// Each stage (Prefix, Suffix, Infix, Lenite) takes a dictionary.Word and
// returns a new one whose Attempt may have grown toward its Target.
// Reconstruct composes the stages in two fixed orders.
package affix

import (
	"regexp"
	"slices"
	"strings"
)

// Lenition is one consonant change, applied when a root starts with From.
type Lenition struct {
	From string
	To   string
}

func (l Lenition) String() string {
	return l.From + "→" + l.To
}

// lenitionTable is ordered: digraphs come before the single letters they start with.
var lenitionTable = []Lenition{
	{"kx", "k"},
	{"px", "p"},
	{"tx", "t"},
	{"k", "h"},
	{"p", "f"},
	{"ts", "s"},
	{"t", "s"},
	{"'", ""},
}

// LenitionTable returns the lenition rules in the order they are tried.
func LenitionTable() []Lenition {
	out := make([]Lenition, len(lenitionTable))
	copy(out, lenitionTable)
	return out
}

// Prefix slots.
var (
	nounDeterminerPrefixes = []string{"pep", "pem", "pe", "fray", "tsay", "fay", "pay", "fra", "fì", "tsa"}
	nounCasePrefixes       = []string{"ay", "me", "pxe", "pe"}
	fnePrefix              = []string{"fne"}
	munsnaPrefix           = []string{"munsna"}

	adjectiveAdverbPrefixes    = []string{"nìk", "nì", "a"}
	adjectiveAttributivePrefix = []string{"ke", "a"}

	participlePrefixes  = []string{"a", "tì"}
	attributivePrefix   = []string{"a"}
	abilityPrefixes     = []string{"ketsuk", "tsuk"}
	elidedStemOpeners   = []string{"e", "'e"}
	elisionTargetPrefix = []string{"me", "pxe", "pe"}
)

// Prefix sets that decide whether a match may coexist with lenition.
var (
	lenitionBlockedPrefixes = []string{"fne", "munsna"}
	lenitionGatedPrefixes   = []string{"fì", "tsa", "fra"}
	lenitingPrefixes        = []string{"pep", "pem", "pe", "fray", "tsay", "fay", "pay", "ay", "me", "pxe"}
)

// Suffix slots.
var (
	nounLeadSuffixes   = []string{"nga'", "tsyìp", "tu"}
	nounLinkSuffix     = []string{"o"}
	nounPluralSuffix   = []string{"pe"}
	nounCaseSuffixes   = []string{"mungwrr", "kxamlä", "tafkip", "pxisre", "pximaw", "ftumfa", "mìkam", "nemfa", "takip", "lisre", "talun", "krrka", "teri", "fkip", "pxaw", "pxel", "luke", "rofa", "fpi", "ftu", "kip", "vay", "lok", "maw", "sìn", "sre", "few", "kam", "kay", "nuä", "sko", "yoa", "äo", "eo", "fa", "hu", "ka", "mì", "na", "ne", "ta", "io", "uo", "ro", "wä", "sì", "ìri", "ìl", "eyä", "yä", "ä", "it", "ri", "ru", "ti", "ur", "l", "r", "t"}
	adjectiveSuffixes  = []string{"a", "sì"}
	numeralSuffixes    = []string{"ve"}
	numeralAttributive = []string{"a"}
	verbSuffix         = []string{"yu"}
	tswoSuffix         = []string{"tswo"}

	// tsawSuffixes trigger w-deletion in "tsaw" (tsa-mì, sa-ne).
	tsawSuffixes = []string{"mungwrr", "kxamlä", "tafkip", "pxisre", "pximaw", "ftumfa", "mìkam", "nemfa", "takip", "lisre", "talun", "krrka", "teri", "fkip", "pxaw", "pxel", "luke", "rofa", "fpi", "ftu", "kip", "vay", "lok", "maw", "sìn", "sre", "few", "kam", "kay", "nuä", "sko", "yoa", "äo", "eo", "fa", "hu", "ka", "mì", "na", "ne", "ta", "io", "uo", "ro", "wä", "ìri", "ri", "ru", "ti", "r"}
)

// suffixException is a surface form that the suffix chains cannot produce.
type suffixException struct {
	root   string
	target string
	suffix string
}

var suffixExceptions = []suffixException{
	{root: "tsaw", target: "tseyä", suffix: "yä"},
	{root: "oe", target: "oey", suffix: "y"},
	{root: "nga", target: "ngey", suffix: "y"},
}

// Infix slots of a verb template such as "k<0><1>an<2>om".
var (
	reflexiveInfix = []string{"äp"}
	causativeInfix = []string{"eyk"}
	slot0Infixes   = []string{"äp", "eyk"}
	slot1Infixes   = []string{"ìyev", "iyev", "ìlm", "ìly", "ìrm", "ìry", "ìsy", "alm", "aly", "arm", "ary", "asy", "ìm", "imv", "ilv", "irv", "ìy", "am", "ay", "er", "iv", "ol", "us", "awn"}
	slot2Infixes   = []string{"eiy", "ei", "äng", "eng", "ats", "uy"}

	gerundInfix     = "us"
	participleInfix = []string{"us", "awn"}
)

// optional renders one optional capture group per slot, in order.
func optional(slots ...[]string) string {
	var b strings.Builder
	for _, slot := range slots {
		quoted := make([]string, len(slot))
		for i, s := range slot {
			quoted[i] = regexp.QuoteMeta(s)
		}
		b.WriteString("(")
		b.WriteString(strings.Join(quoted, "|"))
		b.WriteString(")?")
	}
	return b.String()
}

// Prefix chains.
var (
	nounPrefixChain       = optional(nounDeterminerPrefixes, nounCasePrefixes, fnePrefix, munsnaPrefix)
	adjectivePrefixChain  = optional(adjectiveAdverbPrefixes, adjectiveAttributivePrefix)
	participlePrefixChain = optional(participlePrefixes)
	abilityPrefixChain    = optional(attributivePrefix, abilityPrefixes)
)

// Suffix chains, end-anchored.
var (
	nounSuffixChain      = optional(nounLeadSuffixes, nounLinkSuffix, nounPluralSuffix, nounCaseSuffixes) + "$"
	adjectiveSuffixChain = optional(adjectiveSuffixes) + "$"
	numeralSuffixChain   = optional(numeralSuffixes, numeralAttributive) + "$"
	verbSuffixChain      = optional(verbSuffix) + "$"
	tswoSuffixChain      = optional(tswoSuffix) + nounSuffixChain
)

// Infix slot patterns.
var (
	slot0Pattern = optional(reflexiveInfix, causativeInfix)
	slot1Pattern = optional(slot1Infixes)
	slot2Pattern = optional(slot2Infixes)
)

// containsAny reports whether list holds any of wanted.
func containsAny(list, wanted []string) bool {
	for _, w := range wanted {
		if slices.Contains(list, w) {
			return true
		}
	}
	return false
}

// extend returns a new slice with vals appended, leaving list untouched.
func extend(list []string, vals ...string) []string {
	out := make([]string, 0, len(list)+len(vals))
	out = append(out, list...)
	return append(out, vals...)
}

// captures returns the non-empty submatches of m, skipping the whole match.
func captures(m []string) []string {
	if len(m) < 2 {
		return nil
	}
	return nonEmpty(m[1:])
}

func nonEmpty(groups []string) []string {
	var out []string
	for _, s := range groups {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}
