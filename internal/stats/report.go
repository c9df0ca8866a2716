// Package stats contains lookup history calculations and reporting.
package stats

import (
	"context"

	"github.com/verte-zerg/fwew/internal/model"
	"github.com/verte-zerg/fwew/internal/store"
)

// Report contains precomputed data for history rendering.
type Report struct {
	Lookups []model.LookupRecord
	Top     []model.QueryAggregate
	Misses  []model.QueryAggregate
}

// BuildReport loads and prepares data for history rendering.
func BuildReport(ctx context.Context, st *store.Store, cfg model.HistoryConfig) (Report, error) {
	lookups, err := st.ListLookups(ctx, cfg.Last)
	if err != nil {
		return Report{}, err
	}
	aggs := Aggregate(lookups)
	return Report{
		Lookups: lookups,
		Top:     TopQueries(aggs, cfg.Top),
		Misses:  SelectMisses(aggs, cfg.Top),
	}, nil
}
