package stats

import (
	"sort"

	"github.com/verte-zerg/fwew/internal/model"
)

// Aggregate groups lookups by query and direction, in order of first appearance.
func Aggregate(lookups []model.LookupRecord) []model.QueryAggregate {
	type key struct {
		query     string
		direction model.Direction
	}
	index := map[key]int{}
	var out []model.QueryAggregate
	for _, rec := range lookups {
		k := key{rec.Query, rec.Direction}
		i, ok := index[k]
		if !ok {
			i = len(out)
			index[k] = i
			out = append(out, model.QueryAggregate{Query: rec.Query, Direction: rec.Direction})
		}
		agg := &out[i]
		agg.Count++
		if rec.Results > 0 {
			agg.Hits++
		}
		if rec.At.After(agg.LastAt) {
			agg.LastAt = rec.At
		}
	}
	return out
}

// TopQueries returns the N most frequent queries.
func TopQueries(aggs []model.QueryAggregate, n int) []model.QueryAggregate {
	if n <= 0 || len(aggs) == 0 {
		return nil
	}
	items := make([]model.QueryAggregate, len(aggs))
	copy(items, aggs)
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Count == items[j].Count {
			return items[i].Query < items[j].Query
		}
		return items[i].Count > items[j].Count
	})
	if n > len(items) {
		n = len(items)
	}
	return items[:n]
}

// SelectMisses returns up to top queries that never found an entry, most
// frequent first.
func SelectMisses(aggs []model.QueryAggregate, top int) []model.QueryAggregate {
	var misses []model.QueryAggregate
	for _, agg := range aggs {
		if agg.Hits == 0 {
			misses = append(misses, agg)
		}
	}
	if top <= 0 || top > len(misses) {
		top = len(misses)
	}
	return TopQueries(misses, top)
}
