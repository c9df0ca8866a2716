package stats

import (
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/verte-zerg/fwew/internal/model"
)

const sparkChars = " .:-=+*#%@"

// HitRate returns the share of lookups that found at least one entry.
func HitRate(lookups []model.LookupRecord) float64 {
	if len(lookups) == 0 {
		return 0
	}
	hits := 0
	for _, rec := range lookups {
		if rec.Results > 0 {
			hits++
		}
	}
	return float64(hits) / float64(len(lookups))
}

// MovingAverage computes a rolling mean over the provided window size.
func MovingAverage(values []float64, window int) []float64 {
	if window <= 1 || len(values) == 0 {
		out := make([]float64, len(values))
		copy(out, values)
		return out
	}
	out := make([]float64, len(values))
	var sum float64
	for i := 0; i < len(values); i++ {
		sum += values[i]
		if i >= window {
			sum -= values[i-window]
		}
		den := float64(i + 1)
		if i >= window {
			den = float64(window)
		}
		out[i] = sum / den
	}
	return out
}

// Sparkline renders a single-line ASCII sparkline for the values.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	minVal := values[0]
	maxVal := values[0]
	for _, v := range values[1:] {
		minVal = math.Min(minVal, v)
		maxVal = math.Max(maxVal, v)
	}
	if math.Abs(maxVal-minVal) < 1e-9 {
		return strings.Repeat(string(sparkChars[len(sparkChars)/2]), len(values))
	}
	var b strings.Builder
	for _, v := range values {
		pos := (v - minVal) / (maxVal - minVal)
		idx := int(math.Round(pos * float64(len(sparkChars)-1)))
		idx = max(0, min(idx, len(sparkChars)-1))
		b.WriteByte(sparkChars[idx])
	}
	return b.String()
}

// RenderSummary prints totals for the listed lookups.
func RenderSummary(w io.Writer, lookups []model.LookupRecord) error {
	if len(lookups) == 0 {
		_, err := fmt.Fprintln(w, "No lookups found.")
		return err
	}
	distinct := len(Aggregate(lookups))
	first := lookups[0].At.Local().Format(time.DateOnly)
	last := lookups[len(lookups)-1].At.Local().Format(time.DateOnly)
	lines := []string{
		"Summary",
		fmt.Sprintf("Lookups: %d", len(lookups)),
		fmt.Sprintf("Distinct queries: %d", distinct),
		fmt.Sprintf("Hit rate: %.2f%%", HitRate(lookups)*100),
		fmt.Sprintf("Period: %s to %s", first, last),
		"",
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// RenderTrend prints a sparkline of the rolling hit rate.
func RenderTrend(w io.Writer, lookups []model.LookupRecord, window int) error {
	if len(lookups) < 2 {
		return nil
	}
	values := make([]float64, len(lookups))
	for i, rec := range lookups {
		if rec.Results > 0 {
			values[i] = 1
		}
	}
	_, err := fmt.Fprintf(w, "Hit rate trend [%s]\n\n", Sparkline(MovingAverage(values, window)))
	return err
}

// RenderQueryTable prints query aggregates under a title.
func RenderQueryTable(w io.Writer, title string, aggs []model.QueryAggregate) error {
	if len(aggs) == 0 {
		return nil
	}
	if _, err := fmt.Fprintln(w, title); err != nil {
		return err
	}
	headers := []string{"Query", "Direction", "Count", "Hits", "Last"}
	rows := make([][]string, 0, len(aggs))
	for _, agg := range aggs {
		rows = append(rows, []string{
			agg.Query,
			string(agg.Direction),
			fmt.Sprintf("%d", agg.Count),
			fmt.Sprintf("%d", agg.Hits),
			agg.LastAt.Local().Format(time.DateOnly),
		})
	}
	rightAlign := map[int]bool{2: true, 3: true}
	for _, line := range formatTable(headers, rows, rightAlign) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "")
	return err
}

// RenderReport prints the whole history report.
func RenderReport(w io.Writer, report Report, window int) error {
	if err := RenderSummary(w, report.Lookups); err != nil {
		return err
	}
	if err := RenderTrend(w, report.Lookups, window); err != nil {
		return err
	}
	if err := RenderQueryTable(w, "Top Queries", report.Top); err != nil {
		return err
	}
	return RenderQueryTable(w, "Never Found", report.Misses)
}
