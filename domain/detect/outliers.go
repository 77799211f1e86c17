package detect

import (
	"math"

	"github.com/montanaflynn/stats"
)

// OutlierReport describes the outliers found in one numeric column.
type OutlierReport struct {
	Count   int   `json:"count"`
	Indices []int `json:"indices"`
}

// minOutlierSample is the smallest number of well-formed values for which
// quartile bounds are meaningful. Below it a column has no outliers by
// definition.
const minOutlierSample = 4

// Outliers returns the row indices whose value falls outside
// [Q1 - 1.5*IQR, Q3 + 1.5*IQR]. The input is the raw per-row value list for
// one column with NaN marking missing or unparseable cells; bounds are
// computed over the well-formed subset only.
//
// Quartiles use the Tukey-hinge method of montanaflynn/stats.Quartile: the
// sorted values are split into lower and upper halves (dropping the middle
// element when the count is odd) and Q1/Q3 are the medians of those halves.
func Outliers(values []float64) []int {
	clean := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) {
			clean = append(clean, v)
		}
	}
	if len(clean) < minOutlierSample {
		return []int{}
	}

	q, err := stats.Quartile(clean)
	if err != nil {
		return []int{}
	}
	iqr := q.Q3 - q.Q1
	lower := q.Q1 - 1.5*iqr
	upper := q.Q3 + 1.5*iqr

	indices := []int{}
	for i, v := range values {
		if math.IsNaN(v) {
			continue
		}
		if v < lower || v > upper {
			indices = append(indices, i)
		}
	}
	return indices
}
