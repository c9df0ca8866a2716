package search

import (
	"math"
	"testing"

	"github.com/verte-zerg/fwew/internal/dictionary"
)

func TestSimilarityOfRootIsOne(t *testing.T) {
	for _, w := range dictionary.New(dictionary.Embedded()).Words() {
		if got := Similarity(w.Data.Navi, w.Data.Navi); got != 1.0 {
			t.Fatalf("%q: expected 1.0, got %v", w.Data.Navi, got)
		}
	}
}

func TestSimilarityNgey(t *testing.T) {
	if got := Similarity("nga", "ngey"); got != 1.0 {
		t.Fatalf("expected 1.0, got %v", got)
	}
}

func TestSimilarityLongRoot(t *testing.T) {
	if got := Similarity("tìfmetok", "fmetok"); got != 0 {
		t.Fatalf("expected 0 for root longer by two, got %v", got)
	}
}

func TestSimilarityNoSharedVowels(t *testing.T) {
	if got := Similarity("kä", "kivanom"); got != 0 {
		t.Fatalf("expected 0 without shared vowels, got %v", got)
	}
	if got := Similarity("soaia", "txon"); got != 0 {
		t.Fatalf("expected 0 when the root has more vowel kinds, got %v", got)
	}
}

func TestSimilarityFormula(t *testing.T) {
	// shared k,i,a,n of 5 root runes; length ratio 5/7
	got := Similarity("ikran", "kivanom")
	want := (4.0/5.0 + 5.0/7.0) / 2
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("expected %v, got %v", want, got)
	}
	if got < Threshold {
		t.Fatalf("expected score above threshold")
	}
}

func TestSimilarityCountsRunes(t *testing.T) {
	// ä and ì are two bytes each but one letter
	got := Similarity("kä", "käfa")
	want := (2.0/2.0 + 2.0/4.0) / 2
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestSimilarityIsAsymmetric(t *testing.T) {
	if Similarity("ikran", "ikranit") == Similarity("ikranit", "ikran") {
		t.Fatalf("expected asymmetric scores")
	}
}
