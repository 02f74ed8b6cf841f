package bench

import (
	"sort"
	"time"
)

// Row holds one variant's timings. MeanExclFirst discounts the first
// call, where compiled variants pay their one-time compilation cost.
type Row struct {
	Label         string
	Mean          time.Duration
	MeanExclFirst time.Duration

	// Ratios against the fastest variant's means.
	BestRatio          float64
	BestRatioExclFirst float64

	// Ratios against the previous row's means; 1 for the first row.
	NextRatio          float64
	NextRatioExclFirst float64

	// The first three raw timings, kept so a pathological warmup is
	// visible in the table.
	First, Second, Third time.Duration
}

// Report is a comparison result, sorted ascending by mean.
type Report struct {
	Rows []Row
}

func newRow(label string, ts []time.Duration) Row {
	var total time.Duration
	for _, t := range ts {
		total += t
	}
	var exclFirst time.Duration
	for _, t := range ts[1:] {
		exclFirst += t
	}
	return Row{
		Label:         label,
		Mean:          total / time.Duration(len(ts)),
		MeanExclFirst: exclFirst / time.Duration(len(ts)-1),
		First:         ts[0],
		Second:        ts[1],
		Third:         ts[2],
	}
}

// finalize sorts rows ascending by mean and recomputes all ratios.
func (r *Report) finalize() {
	sort.Slice(r.Rows, func(i, j int) bool {
		return r.Rows[i].Mean < r.Rows[j].Mean
	})
	if len(r.Rows) == 0 {
		return
	}

	best := r.Rows[0]
	for i := range r.Rows {
		row := &r.Rows[i]
		row.BestRatio = ratio(row.Mean, best.Mean)
		row.BestRatioExclFirst = ratio(row.MeanExclFirst, best.MeanExclFirst)
		if i == 0 {
			row.NextRatio = 1
			row.NextRatioExclFirst = 1
		} else {
			prev := r.Rows[i-1]
			row.NextRatio = ratio(row.Mean, prev.Mean)
			row.NextRatioExclFirst = ratio(row.MeanExclFirst, prev.MeanExclFirst)
		}
	}
}

func ratio(a, b time.Duration) float64 {
	if b == 0 {
		return 1
	}
	return float64(a) / float64(b)
}

// Best returns the fastest variant's row.
func (r *Report) Best() Row {
	return r.Rows[0]
}

// Merge combines reports from separate comparison runs into one table,
// re-sorted with ratios recomputed over the union.
func Merge(reports ...*Report) *Report {
	merged := &Report{}
	for _, r := range reports {
		merged.Rows = append(merged.Rows, r.Rows...)
	}
	merged.finalize()
	return merged
}
