package affix

import (
	"strings"

	"github.com/verte-zerg/fwew/internal/dictionary"
)

// Lenite applies the first lenition rule whose consonant starts the root.
// It is a no-op once lenition is recorded.
func Lenite(w dictionary.Word) dictionary.Word {
	if len(w.Data.Affixes.Lenition) != 0 {
		return w
	}
	root := strings.ToLower(w.Data.Navi)
	for _, rule := range lenitionTable {
		if !strings.HasPrefix(root, rule.From) {
			continue
		}
		out := w.Clone()
		out.Attempt = strings.Replace(out.Attempt, rule.From, rule.To, 1)
		out.Data.Affixes.Lenition = extend(out.Data.Affixes.Lenition, rule.String())
		return out
	}
	return w
}
