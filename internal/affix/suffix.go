package affix

import (
	"regexp"
	"slices"
	"strings"

	"github.com/verte-zerg/fwew/internal/dictionary"
)

// Suffix tries to explain the end of the target with suffixes.
// It returns w unchanged when no productive suffix was found.
func Suffix(w dictionary.Word) dictionary.Word {
	for _, ex := range suffixExceptions {
		if w.Data.Navi == ex.root && w.Target == ex.target {
			out := w.Clone()
			out.Attempt = ex.target
			out.Data.Affixes.Suffix = []string{ex.suffix}
			return out
		}
	}

	chain, ok := suffixChain(w)
	if !ok {
		return w
	}

	attempt := w.Attempt
	var stem string
	switch {
	case w.Data.Navi == "soaia" && strings.HasSuffix(w.Target, "soaiä"):
		attempt = strings.ReplaceAll(attempt, "soaia", "soai")
		stem = regexp.QuoteMeta(attempt)
	case strings.HasSuffix(attempt, "o"):
		stem = regexp.QuoteMeta(strings.TrimSuffix(attempt, "o")) + "[oe]"
	case strings.HasSuffix(attempt, "a"):
		stem = regexp.QuoteMeta(strings.TrimSuffix(attempt, "a")) + "[ae]"
	case w.Data.Navi == "tsaw" && takesTsawSuffix(w.Target):
		attempt = strings.Replace(attempt, "aw", "a", 1)
		stem = regexp.QuoteMeta(attempt)
	default:
		stem = regexp.QuoteMeta(attempt)
	}

	re, err := regexp.Compile(stem + chain)
	if err != nil {
		return w
	}
	subject := w.Target
	if strings.HasSuffix(subject, "siyu") {
		// two-word roots like "uvan si" keep their space in the attempt
		subject = strings.ReplaceAll(subject, "siyu", " siyu")
	}
	suffixes := captures(re.FindStringSubmatch(subject))
	if len(suffixes) == 0 {
		return w
	}

	if w.POS.Kind == dictionary.KindPronoun && slices.Contains(suffixes, "yä") {
		// po -> peyä, nga -> ngeyä
		if strings.HasSuffix(attempt, "o") || strings.HasSuffix(attempt, "a") {
			attempt = attempt[:len(attempt)-1] + "e"
		}
	}
	attempt += strings.Join(suffixes, "")
	if strings.Contains(attempt, " ") && strings.HasSuffix(attempt, "siyu") {
		attempt = strings.ReplaceAll(attempt, " siyu", "siyu")
	}

	out := w.Clone()
	out.Attempt = attempt
	out.Data.Affixes.Suffix = extend(out.Data.Affixes.Suffix, suffixes...)
	return out
}

// suffixChain picks the end-anchored suffix groups for the word's part of speech.
func suffixChain(w dictionary.Word) (string, bool) {
	switch {
	case w.POS.TakesVerbSuffixes():
		infixes := w.Data.Affixes.Infix
		prefixes := w.Data.Affixes.Prefix
		switch {
		case len(infixes) == 1 && slices.Contains(participleInfix, infixes[0]):
			if infixes[0] == gerundInfix && slices.Contains(prefixes, "tì") {
				// tì-<us> gerunds decline like nouns
				return nounSuffixChain, true
			}
			return adjectiveSuffixChain, true
		case len(infixes) == 0 && containsAny(prefixes, abilityPrefixes):
			return adjectiveSuffixChain, true
		case strings.Contains(w.Target, "tswo"):
			return tswoSuffixChain, true
		}
		return verbSuffixChain, true
	case w.POS.IsNominal():
		return nounSuffixChain, true
	case w.POS.Kind == dictionary.KindAdjective:
		return adjectiveSuffixChain, true
	case w.POS.Kind == dictionary.KindNumeral:
		return numeralSuffixChain, true
	}
	return "", false
}

func takesTsawSuffix(target string) bool {
	for _, s := range tsawSuffixes {
		if strings.HasSuffix(target, "tsa"+s) || strings.HasSuffix(target, "sa"+s) {
			return true
		}
	}
	return false
}
