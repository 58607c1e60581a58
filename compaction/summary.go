package compaction

import (
	"fmt"

	"github.com/montanaflynn/stats"
)

// Summary describes the distribution of non-null compaction values.
type Summary struct {
	Windows  int
	Observed int
	Mean     float64
	Median   float64
	Max      float64
}

func (s Summary) String() string {
	return fmt.Sprintf("%d windows (%d with observations): mean compaction %.3f, median %.3f, max %.3f", s.Windows, s.Observed, s.Mean, s.Median, s.Max)
}

// Summarize computes a Summary of s. It fails if no window has a value.
func Summarize(s Series) (Summary, error) {
	out := Summary{Windows: len(s)}

	data := make(stats.Float64Data, 0, len(s))
	for _, entry := range s {
		if entry.Compaction.Valid {
			data = append(data, entry.Compaction.Float64)
		}
	}
	out.Observed = data.Len()

	var err error
	if out.Mean, err = data.Mean(); err != nil {
		return out, err
	}
	if out.Median, err = data.Median(); err != nil {
		return out, err
	}
	if out.Max, err = data.Max(); err != nil {
		return out, err
	}

	return out, nil
}
