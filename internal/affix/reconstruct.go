package affix

import "github.com/verte-zerg/fwew/internal/dictionary"

// Stage names one step of a reconstruction.
type Stage string

const (
	StageInit   Stage = "init"
	StageInfix  Stage = "infix"
	StagePrefix Stage = "prefix"
	StageSuffix Stage = "suffix"
	StageLenite Stage = "lenite"
)

// Step records the attempt after one stage ran.
type Step struct {
	Pass    int
	Stage   Stage
	Attempt string
}

type stage struct {
	name Stage
	fn   func(dictionary.Word) dictionary.Word
}

// Affix application does not commute, so only these two orders are tried.
var (
	firstPass = []stage{
		{StageInfix, Infix},
		{StagePrefix, Prefix},
		{StageSuffix, Suffix},
		{StageLenite, Lenite},
	}
	secondPass = []stage{
		{StageLenite, Lenite},
		{StagePrefix, Prefix},
		{StageSuffix, Suffix},
	}
)

// Reconstruct tries to rebuild target from the root of w.
// On success the returned Word has Attempt == target and its Affixes describe
// how; on failure w is returned unchanged with false.
func Reconstruct(w dictionary.Word, target string) (dictionary.Word, bool) {
	out, ok, _ := reconstruct(w, target, false)
	return out, ok
}

// ReconstructTrace is Reconstruct that also reports every stage it ran.
func ReconstructTrace(w dictionary.Word, target string) (dictionary.Word, bool, []Step) {
	return reconstruct(w, target, true)
}

func reconstruct(w dictionary.Word, target string, trace bool) (dictionary.Word, bool, []Step) {
	var steps []Step
	record := func(pass int, name Stage, cur dictionary.Word) {
		if trace {
			steps = append(steps, Step{Pass: pass, Stage: name, Attempt: cur.Attempt})
		}
	}

	cur := w.Clone()
	cur.Target = target
	cur.Attempt = cur.Data.Navi
	record(1, StageInit, cur)
	if cur.Attempt == target {
		return cur, true, steps
	}

	for _, s := range firstPass {
		if s.name == StageInfix && !cur.POS.IsVerb() {
			continue
		}
		cur = s.fn(cur)
		record(1, s.name, cur)
		if cur.Attempt == target {
			return cur, true, steps
		}
	}

	cur = cur.Clone()
	cur.Attempt = cur.Data.Navi
	cur.Data.Affixes = dictionary.Affixes{}
	for _, s := range secondPass {
		cur = s.fn(cur)
		record(2, s.name, cur)
		if cur.Attempt == target {
			return cur, true, steps
		}
	}
	return w, false, steps
}
