package stats

import (
	"math"

	qwfs "github.com/qwstats/qwrank/internal/firestore"
	"gonum.org/v1/gonum/stat"
)

// Normals maps statistic keys to their normalization parameters in one region.
type Normals = map[string]qwfs.Normal

// ComputeNormals computes the mean and population standard deviation of every
// registered statistic over the given player records. The records must be the
// region's complete history: normals are a pure function of the full corpus,
// recomputed wholesale, so recomputation over identical input is bit-identical.
//
// An empty record set yields nil: the region has no normals and must not be
// scored.
func ComputeNormals(records []qwfs.Player) Normals {
	if len(records) == 0 {
		return nil
	}
	normals := make(Normals, len(Registry))
	values := make([]float64, len(records))
	deviations := make([]float64, len(records))
	for _, s := range Registry {
		for i := range records {
			values[i] = s.Derive(&records[i])
		}
		mean := stat.Mean(values, nil)
		// Population standard deviation, not the sample estimator: the legacy
		// normals divide squared deviations by N.
		for i, v := range values {
			d := v - mean
			deviations[i] = d * d
		}
		normals[s.Key] = qwfs.Normal{Mean: mean, StdDev: math.Sqrt(stat.Mean(deviations, nil))}
	}
	return normals
}
