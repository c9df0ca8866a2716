package affix

import (
	"regexp"
	"slices"
	"strings"

	"github.com/verte-zerg/fwew/internal/dictionary"
)

// Infix fills the verb's infix template from the target. Slots with no
// matching infix are left empty, so the attempt is always rebuilt from the
// template. It is a no-op once infixes are recorded or when the entry has
// no template.
func Infix(w dictionary.Word) dictionary.Word {
	if len(w.Data.Affixes.Infix) != 0 || !w.HasInfixSlots() {
		return w
	}

	template := w.Data.InfixLocations
	if w.Data.Navi == "zenke" && (strings.Contains(w.Target, "uy") || strings.Contains(w.Target, "ats")) {
		// zen<ats>eke, zen<uy>eke
		if strings.HasSuffix(template, "ke") {
			template = strings.TrimSuffix(template, "ke") + "eke"
		}
	}

	pattern := strings.Replace(regexp.QuoteMeta(template), "<0>", slot0Pattern, 1)
	switch {
	case strings.Contains(pattern, "<1>ll"):
		pattern = strings.Replace(pattern, "<1>ll", slot1Pattern+"(ll)?", 1)
	case strings.Contains(pattern, "<1>rr"):
		pattern = strings.Replace(pattern, "<1>rr", slot1Pattern+"(rr)?", 1)
	default:
		pattern = strings.Replace(pattern, "<1>", slot1Pattern, 1)
	}
	pattern = strings.Replace(pattern, "<2>", slot2Pattern, 1)

	re, err := regexp.Compile(pattern)
	if err != nil {
		return w
	}
	found := slices.DeleteFunc(captures(re.FindStringSubmatch(w.Target)), func(s string) bool {
		return s == "ll" || s == "rr"
	})

	var pos0, pos1, pos2 string
	for _, inf := range found {
		switch {
		case slices.Contains(slot0Infixes, inf):
			pos0 += inf
		case slices.Contains(slot2Infixes, inf):
			pos2 = inf
		default:
			pos1 = inf
		}
	}

	attempt := strings.Replace(template, "<0>", pos0, 1)
	attempt = strings.Replace(attempt, "<1>", pos1, 1)
	attempt = strings.Replace(attempt, "<2>", pos2, 1)
	// p<ol>lltxe substitutes to "pollltxe"
	if strings.Contains(attempt, "olll") {
		attempt = strings.Replace(attempt, "olll", "ol", 1)
	} else if strings.Contains(attempt, "errr") {
		attempt = strings.Replace(attempt, "errr", "er", 1)
	}

	out := w.Clone()
	out.Attempt = attempt
	if len(found) > 0 {
		out.Data.Affixes.Infix = extend(out.Data.Affixes.Infix, found...)
	}
	return out
}
