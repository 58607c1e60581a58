// Package compaction estimates how compact the chromatin of each genomic window
// is from a GAM segregation table: the more nuclear profiles a window was
// detected in, the more compact it is taken to be.
package compaction

import (
	"math"

	"github.com/carbocation/gamstats"
	"gonum.org/v1/gonum/mat"
	"gopkg.in/guregu/null.v3"
)

// Entry is the compaction of one window. Compaction is null when the window
// has no observed samples at all.
type Entry struct {
	gamstats.Window
	Compaction null.Float
}

// Series holds one Entry per window, in the order of the segregation table.
type Series []Entry

// Get sums each window's row of the segregation table across samples. Missing
// observations are skipped. With noBlanks, windows whose compaction is null or
// not strictly positive are dropped.
func Get(seg *gamstats.SegregationTable, noBlanks bool) Series {
	sums := RowSums(seg.Values)

	out := make(Series, 0, len(sums))
	for i, sum := range sums {
		if noBlanks && (!sum.Valid || sum.Float64 <= 0) {
			continue
		}

		out = append(out, Entry{
			Window:     seg.Windows[i],
			Compaction: sum,
		})
	}

	return out
}

// RowSums adds up the non-NaN values of each row of m. Rows without any such
// value are null.
func RowSums(m mat.Matrix) []null.Float {
	rows, cols := m.Dims()

	out := make([]null.Float, 0, rows)
	for i := 0; i < rows; i++ {
		var sum float64
		observed := false

		for j := 0; j < cols; j++ {
			v := m.At(i, j)
			if math.IsNaN(v) {
				continue
			}
			sum += v
			observed = true
		}

		out = append(out, null.NewFloat(sum, observed))
	}

	return out
}
