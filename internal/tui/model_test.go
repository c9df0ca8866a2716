package tui

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/fwew/internal/dictionary"
	"github.com/verte-zerg/fwew/internal/model"
	"github.com/verte-zerg/fwew/internal/search"
	"github.com/verte-zerg/fwew/internal/store"
)

func newTestModel(t *testing.T, st *store.Store) *Model {
	t.Helper()
	searcher, err := search.New(dictionary.New(dictionary.Embedded()))
	if err != nil {
		t.Fatalf("new searcher: %v", err)
	}
	cfg := model.Config{Lang: "en", Direction: model.FromNavi, History: true, Explain: true}
	m := NewModel(cfg, searcher, st)
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return m
}

func submit(m *Model, query string) {
	m.input.SetValue(query)
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
}

func TestWindowSizeLayout(t *testing.T) {
	m := newTestModel(t, nil)
	if m.results.Width != 80 || m.results.Height != 21 {
		t.Fatalf("unexpected viewport size %dx%d", m.results.Width, m.results.Height)
	}
}

func TestTabTogglesDirection(t *testing.T) {
	m := newTestModel(t, nil)
	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if m.config.Direction != model.ToNavi || m.input.Prompt != "en> " {
		t.Fatalf("expected reverse lookup, got %s %q", m.config.Direction, m.input.Prompt)
	}
	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if m.config.Direction != model.FromNavi || m.input.Prompt != "na'vi> " {
		t.Fatalf("expected forward lookup, got %s %q", m.config.Direction, m.input.Prompt)
	}
}

func TestEnterLooksUp(t *testing.T) {
	m := newTestModel(t, nil)
	submit(m, "ikranit")
	if len(m.lastResults) != 1 || m.lastResults[0].Data.Navi != "ikran" {
		t.Fatalf("unexpected results %+v", m.lastResults)
	}
	if m.input.Value() != "" {
		t.Fatalf("expected input to be cleared")
	}
	out := m.renderResults()
	for _, want := range []string{"ikran", "mountain banshee", "Suffixes: it", "suffix ikranit"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in results:\n%s", want, out)
		}
	}
}

func TestReverseLookup(t *testing.T) {
	m := newTestModel(t, nil)
	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	submit(m, "test")
	if len(m.lastResults) != 2 {
		t.Fatalf("expected 2 results, got %+v", m.lastResults)
	}
}

func TestEmptyQueryIgnored(t *testing.T) {
	m := newTestModel(t, nil)
	submit(m, "   ")
	if m.lookups != 0 || m.lastQuery != "" {
		t.Fatalf("expected blank query to be ignored")
	}
}

func TestNoResultsAndFooter(t *testing.T) {
	m := newTestModel(t, nil)
	submit(m, "fmetok")
	submit(m, "zzz")
	if !strings.Contains(m.renderResults(), `no results for "zzz"`) {
		t.Fatalf("expected miss message, got %q", m.renderResults())
	}
	footer := m.renderFooter()
	if !strings.Contains(footer, "Lookups 2 · hits 1") || !strings.Contains(footer, "Na'vi → en") {
		t.Fatalf("unexpected footer %q", footer)
	}
}

func TestLookupsRecordedToStore(t *testing.T) {
	st, err := store.Open(filepath.Join(t.TempDir(), "fwew.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})
	m := newTestModel(t, st)
	submit(m, "kivanom")
	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	submit(m, "home")

	recs, err := st.ListLookups(context.Background(), 0)
	if err != nil {
		t.Fatalf("list lookups: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("expected 2 records, got %+v", recs)
	}
	if recs[0].Query != "kivanom" || recs[0].Direction != model.FromNavi || recs[0].Results != 1 {
		t.Fatalf("unexpected first record %+v", recs[0])
	}
	if recs[1].Query != "home" || recs[1].Direction != model.ToNavi || recs[1].Results != 1 {
		t.Fatalf("unexpected second record %+v", recs[1])
	}
}

func TestEscQuits(t *testing.T) {
	m := newTestModel(t, nil)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected quit message")
	}
}

func TestTruncateLine(t *testing.T) {
	if got := truncateLine("kaltxì ma frapo", 9); got != "kaltxì..." {
		t.Fatalf("unexpected truncation %q", got)
	}
	if got := truncateLine("oel", 10); got != "oel" {
		t.Fatalf("unexpected truncation %q", got)
	}
}
