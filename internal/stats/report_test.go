package stats

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/verte-zerg/fwew/internal/model"
	"github.com/verte-zerg/fwew/internal/store"
)

func TestBuildReport(t *testing.T) {
	st, err := store.Open(filepath.Join(t.TempDir(), "fwew.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})

	ctx := context.Background()
	if err := st.InsertLookups(ctx, lookups("oel", "zzz", "oel", "kame", "oel")); err != nil {
		t.Fatalf("insert lookups: %v", err)
	}

	report, err := BuildReport(ctx, st, model.HistoryConfig{Last: 4, Top: 1})
	if err != nil {
		t.Fatalf("build report: %v", err)
	}
	if len(report.Lookups) != 4 || report.Lookups[0].Query != "zzz" {
		t.Fatalf("unexpected lookups: %+v", report.Lookups)
	}
	if len(report.Top) != 1 || report.Top[0].Query != "oel" || report.Top[0].Count != 2 {
		t.Fatalf("unexpected top: %+v", report.Top)
	}
	if len(report.Misses) != 1 || report.Misses[0].Query != "zzz" {
		t.Fatalf("unexpected misses: %+v", report.Misses)
	}

	var buf bytes.Buffer
	if err := RenderReport(&buf, report, 2); err != nil {
		t.Fatalf("render: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Lookups: 4", "Hit rate: 75.00%", "Top Queries", "Never Found", "zzz"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in report:\n%s", want, out)
		}
	}
}

func TestRenderSummaryEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderSummary(&buf, nil); err != nil {
		t.Fatalf("render: %v", err)
	}
	if buf.String() != "No lookups found.\n" {
		t.Fatalf("unexpected output %q", buf.String())
	}
}

func TestSparkline(t *testing.T) {
	if got := Sparkline([]float64{0, 1}); got != " @" {
		t.Fatalf("unexpected sparkline %q", got)
	}
	if got := Sparkline([]float64{2, 2, 2}); got != "+++" {
		t.Fatalf("unexpected flat sparkline %q", got)
	}
}

func TestMovingAverage(t *testing.T) {
	got := MovingAverage([]float64{1, 0, 1, 1}, 2)
	want := []float64{1, 0.5, 0.5, 1}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}
