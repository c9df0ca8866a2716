package stats

import (
	"testing"
	"time"

	"github.com/verte-zerg/fwew/internal/model"
)

func lookups(queries ...string) []model.LookupRecord {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	out := make([]model.LookupRecord, 0, len(queries))
	for i, q := range queries {
		results := 1
		if q == "zzz" || q == "qqq" {
			results = 0
		}
		out = append(out, model.LookupRecord{
			At:        base.Add(time.Duration(i) * time.Minute),
			Query:     q,
			Direction: model.FromNavi,
			Lang:      "en",
			Results:   results,
		})
	}
	return out
}

func TestAggregate(t *testing.T) {
	aggs := Aggregate(lookups("oel", "zzz", "oel", "kame"))
	if len(aggs) != 3 {
		t.Fatalf("expected 3 aggregates, got %+v", aggs)
	}
	if aggs[0].Query != "oel" || aggs[0].Count != 2 || aggs[0].Hits != 2 {
		t.Fatalf("unexpected first aggregate %+v", aggs[0])
	}
	if aggs[1].Query != "zzz" || aggs[1].Hits != 0 {
		t.Fatalf("unexpected miss aggregate %+v", aggs[1])
	}
	if aggs[0].LastAt.Minute() != 2 {
		t.Fatalf("expected last lookup time, got %v", aggs[0].LastAt)
	}
}

func TestAggregateSplitsDirections(t *testing.T) {
	recs := lookups("test", "test")
	recs[1].Direction = model.ToNavi
	if aggs := Aggregate(recs); len(aggs) != 2 {
		t.Fatalf("expected one aggregate per direction, got %+v", aggs)
	}
}

func TestTopQueries(t *testing.T) {
	aggs := Aggregate(lookups("b", "a", "b", "a", "c", "b"))
	top := TopQueries(aggs, 2)
	if len(top) != 2 {
		t.Fatalf("expected 2 queries, got %d", len(top))
	}
	if top[0].Query != "b" || top[1].Query != "a" {
		t.Fatalf("unexpected order: %+v", top)
	}
	if got := TopQueries(aggs, 0); got != nil {
		t.Fatalf("expected nil for n=0, got %+v", got)
	}
}

func TestSelectMisses(t *testing.T) {
	aggs := Aggregate(lookups("qqq", "zzz", "oel", "zzz"))
	misses := SelectMisses(aggs, 0)
	if len(misses) != 2 || misses[0].Query != "zzz" || misses[1].Query != "qqq" {
		t.Fatalf("unexpected misses %+v", misses)
	}
}
