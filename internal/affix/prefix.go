package affix

import (
	"regexp"
	"slices"
	"strings"

	"github.com/verte-zerg/fwew/internal/dictionary"
)

// Prefix tries to explain the start of the target with prefixes.
// It returns w unchanged when no productive prefix was found.
func Prefix(w dictionary.Word) dictionary.Word {
	chain, ok := prefixChain(w)
	if !ok {
		return w
	}

	attempt := w.Attempt
	elision := ""
	if hasAnyPrefix(w.Target, elisionTargetPrefix) {
		// pe + 'en -> pen: the stem opener is optional after these prefixes
		for _, opener := range elidedStemOpeners {
			if strings.HasPrefix(attempt, opener) {
				elision = opener
				attempt = strings.TrimPrefix(attempt, opener)
				break
			}
		}
	}
	if w.Data.Navi == "soaia" && strings.HasSuffix(w.Target, "soaiä") {
		attempt = strings.ReplaceAll(attempt, "soaia", "soai")
	}

	pattern := "^" + chain
	if elision != "" {
		pattern += optional([]string{elision})
	}
	pattern += regexp.QuoteMeta(attempt) + ".*"
	re, err := regexp.Compile(pattern)
	if err != nil {
		return w
	}
	m := re.FindStringSubmatch(w.Target)
	if m == nil {
		return w
	}

	groups := m[1:]
	restored := ""
	if elision != "" {
		restored = groups[len(groups)-1]
		groups = groups[:len(groups)-1]
	}
	prefixes := nonEmpty(groups)
	if len(prefixes) == 0 {
		return w
	}

	if len(w.Data.Affixes.Lenition) > 0 {
		if containsAny(prefixes, lenitionBlockedPrefixes) {
			return w
		}
		if containsAny(prefixes, lenitionGatedPrefixes) && !containsAny(prefixes, lenitingPrefixes) {
			return w
		}
	}

	out := w.Clone()
	out.Attempt = strings.Join(prefixes, "") + restored + attempt
	out.Data.Affixes.Prefix = extend(out.Data.Affixes.Prefix, prefixes...)
	return out
}

// prefixChain picks the optional prefix groups for the word's part of speech.
func prefixChain(w dictionary.Word) (string, bool) {
	switch w.POS.Kind {
	case dictionary.KindVerb, dictionary.KindUntagged:
		infixes := w.Data.Affixes.Infix
		switch {
		case len(infixes) > 0 && slices.Contains(participleInfix, infixes[0]):
			return participlePrefixChain, true
		case strings.Contains(w.Target, "tsuk"):
			return abilityPrefixChain, true
		case strings.Contains(w.Target, "siyu") && w.POS.Intransitive:
			return nounPrefixChain, true
		}
	case dictionary.KindNoun, dictionary.KindPronoun, dictionary.KindProperNoun:
		return nounPrefixChain, true
	case dictionary.KindAdjective:
		return adjectivePrefixChain, true
	}
	return "", false
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}
