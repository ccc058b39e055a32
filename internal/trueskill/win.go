package trueskill

import (
	"math"

	"github.com/atgjack/prob"
)

// WinProbability returns the probability that a beats b in a head-to-head
// comparison under the current beliefs. Reporting convenience only; it plays
// no part in rating updates.
func WinProbability(a, b Rating, cfg Config) float64 {
	dist := prob.Normal{Mu: 0, Sigma: 1}
	c := math.Sqrt(2*cfg.Beta*cfg.Beta + a.Sigma*a.Sigma + b.Sigma*b.Sigma)
	return dist.Cdf((a.Mu - b.Mu) / c)
}
