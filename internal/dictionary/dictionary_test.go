package dictionary

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedLoads(t *testing.T) {
	d := New(Embedded())
	if err := d.Load(); err != nil {
		t.Fatalf("load embedded: %v", err)
	}
	if d.Len() == 0 {
		t.Fatalf("expected embedded dictionary to have entries")
	}
	words := d.Words()
	if len(words) != d.Len() {
		t.Fatalf("expected %d words, got %d", d.Len(), len(words))
	}
	if words[0].Data.Navi != "'ampi" {
		t.Fatalf("expected storage order to start with 'ampi, got %q", words[0].Data.Navi)
	}
}

func TestLoadBuildsOnce(t *testing.T) {
	calls := 0
	d := New(func() ([]WordData, error) {
		calls++
		return []WordData{{Navi: "txon", PartOfSpeech: "n."}}, nil
	})
	for i := 0; i < 3; i++ {
		if err := d.Load(); err != nil {
			t.Fatalf("load: %v", err)
		}
		_ = d.Words()
	}
	if calls != 1 {
		t.Fatalf("expected source to be read once, got %d", calls)
	}
}

func TestWordsAreClones(t *testing.T) {
	d := New(FromEntries([]WordData{{Navi: "ikran", PartOfSpeech: "n."}}))
	words := d.Words()
	words[0].Data.Navi = "changed"
	words[0].Data.Affixes.Suffix = append(words[0].Data.Affixes.Suffix, "it")

	again := d.Words()
	if again[0].Data.Navi != "ikran" {
		t.Fatalf("canonical root changed: %q", again[0].Data.Navi)
	}
	if len(again[0].Data.Affixes.Suffix) != 0 {
		t.Fatalf("canonical affixes changed: %v", again[0].Data.Affixes.Suffix)
	}
}

func TestLoadRejectsEmptyRoot(t *testing.T) {
	d := New(FromEntries([]WordData{{Navi: "kä"}, {Navi: " "}}))
	if err := d.Load(); err == nil {
		t.Fatalf("expected error for empty root")
	}
	if d.Words() != nil {
		t.Fatalf("expected no words after failed load")
	}
	if d.Len() != 0 {
		t.Fatalf("expected zero length after failed load")
	}
}

func TestLoadRejectsMalformedJSON(t *testing.T) {
	d := New(FromJSON([]byte(`[{"Navi": "kä"`)))
	if err := d.Load(); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.json")
	data := `[{"ID":"1","Navi":"utral","PartOfSpeech":"n.","EN":"tree"}]`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	d := New(FromFile(path))
	words := d.Words()
	if len(words) != 1 || words[0].Data.EN != "tree" {
		t.Fatalf("unexpected words: %+v", words)
	}
	if words[0].POS.Kind != KindNoun {
		t.Fatalf("expected noun, got %s", words[0].POS.Kind)
	}
}

func TestFromFileMissing(t *testing.T) {
	d := New(FromFile(filepath.Join(t.TempDir(), "missing.json")))
	if err := d.Load(); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestNilSource(t *testing.T) {
	if err := New(nil).Load(); err == nil {
		t.Fatalf("expected error for nil source")
	}
}

func TestDefaultIsShared(t *testing.T) {
	if Default() != Default() {
		t.Fatalf("expected Default to return the same dictionary")
	}
}

func TestGloss(t *testing.T) {
	w := NewWord(WordData{Navi: "'aw", EN: "one", DE: "eins", TR: "bir"})
	if w.Gloss("en") != "one" || w.Gloss("DE") != "eins" || w.Gloss("tr") != "bir" {
		t.Fatalf("unexpected glosses")
	}
	if w.Gloss("xx") != "" {
		t.Fatalf("expected empty gloss for unknown language")
	}
}

func TestCloneIsDeep(t *testing.T) {
	w := NewWord(WordData{Navi: "kelku", Affixes: Affixes{Prefix: []string{"pe"}}})
	c := w.Clone()
	c.Data.Affixes.Prefix[0] = "fne"
	if w.Data.Affixes.Prefix[0] != "pe" {
		t.Fatalf("clone shares prefix slice")
	}
}

func TestHasInfixSlots(t *testing.T) {
	if NewWord(WordData{Navi: "ikran", InfixLocations: NoInfixes}).HasInfixSlots() {
		t.Fatalf("NULL template should have no slots")
	}
	if NewWord(WordData{Navi: "kä"}).HasInfixSlots() {
		t.Fatalf("empty template should have no slots")
	}
	if !NewWord(WordData{Navi: "kä", InfixLocations: "k<0><1><2>ä"}).HasInfixSlots() {
		t.Fatalf("expected slots for kä")
	}
}
