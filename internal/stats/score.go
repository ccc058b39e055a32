package stats

import (
	"fmt"

	qwfs "github.com/qwstats/qwrank/internal/firestore"
)

// zscore standardizes a statistic value against its regional normal. A
// degenerate distribution (zero standard deviation) defines the z-score as
// exactly 0.
func zscore(value float64, n qwfs.Normal) float64 {
	if n.StdDev == 0 {
		return 0
	}
	return (value - n.Mean) / n.StdDev
}

// Score computes a player's composite match score: the weighted sum of the
// z-scores of every registered statistic. The score has no fixed range and is
// used only to order the players of one match; it is never persisted.
//
// Conditionally included statistics contribute no term when their raw
// denominator is zero. Calling Score without the region's normals is an
// ordering error on the caller's part, not a runtime condition to recover
// from.
func Score(normals Normals, p *qwfs.Player) (float64, error) {
	if len(normals) == 0 {
		return 0, fmt.Errorf("Score: no normalization parameters")
	}
	var score float64
	for _, s := range Registry {
		if s.Attempts != nil && s.Attempts(p) == 0 {
			continue
		}
		n, ok := normals[s.Key]
		if !ok {
			return 0, fmt.Errorf("Score: no normalization parameters for statistic '%s'", s.Key)
		}
		score += zscore(s.Derive(p), n) * s.Weight
	}
	return score, nil
}
