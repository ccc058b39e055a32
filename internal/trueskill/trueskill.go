// Package trueskill implements the online skill-rating update used for
// per-region player ratings.
//
// Each player carries a Gaussian belief over latent skill. A match outcome is
// a strict total order of the participating players (best performance first),
// with every player treated as an independent competitor regardless of team.
// The observed order is decomposed into the pairwise comparisons between
// adjacent ranks, and each comparison contributes a closed-form
// truncated-Gaussian correction to both participants' beliefs:
//
//	c² = 2β² + σ_w² + σ_l²
//	t  = (μ_w − μ_l) / c
//	v  = φ(t) / Φ(t)
//	w  = v·(v + t)
//
// where φ and Φ are the standard normal density and CDF. Before any
// comparison is evaluated, every belief's variance is inflated by τ² to model
// skill drift between matches. Because w ∈ (0, 1), the posterior σ never
// exceeds its drift-inflated value: an observation can only add information.
package trueskill

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// Rating is a Gaussian belief (μ, σ) over a player's latent skill.
type Rating struct {
	Mu    float64
	Sigma float64
}

// Config holds the process-wide rating constants. These must match the values
// any persisted beliefs were produced with, or historical replays diverge.
type Config struct {
	// Mu is the prior mean assigned to a player the first time they appear.
	Mu float64

	// Sigma is the prior standard deviation of a new player.
	Sigma float64

	// Beta is the performance noise: the standard deviation of a player's
	// realized match performance around their latent skill.
	Beta float64

	// Tau is the per-match skill drift added to every belief's variance before
	// an update.
	Tau float64

	// DrawProbability is fixed at 0: the composite score yields a strict total
	// order, so the model never observes a draw.
	DrawProbability float64
}

// DefaultConfig returns the constants the historical ratings were built with.
func DefaultConfig() Config {
	return Config{Mu: 1500, Sigma: 500, Beta: 250, Tau: 5, DrawProbability: 0}
}

// NewRating returns the default prior belief for an unrated player.
func (c Config) NewRating() Rating {
	return Rating{Mu: c.Mu, Sigma: c.Sigma}
}

// sigmaMin keeps posterior standard deviations strictly positive.
const sigmaMin = 1e-4

var unit = distuv.UnitNormal

// vWin is the additive correction term φ(t)/Φ(t) (the inverse Mills ratio of
// the truncation at 0). For deeply negative t the CDF underflows; the term
// approaches its asymptote −t there.
func vWin(t float64) float64 {
	denom := unit.CDF(t)
	if denom < math.SmallestNonzeroFloat64 {
		return -t
	}
	return unit.Prob(t) / denom
}

// wWin is the multiplicative variance correction v·(v+t), clamped to [0, 1].
func wWin(t, v float64) float64 {
	w := v * (v + t)
	switch {
	case w < 0:
		return 0
	case w > 1:
		return 1
	}
	return w
}

// Rate computes posterior beliefs for a rated match. The input is ordered by
// rank: ordered[0] performed best. The input is not modified; the returned
// slice is ordered the same way.
//
// Fewer than two competitors means no comparison exists, and the input
// beliefs are returned unchanged (drift is not applied either: an unrated
// match is no observation at all).
func Rate(ordered []Rating, cfg Config) []Rating {
	posterior := make([]Rating, len(ordered))
	copy(posterior, ordered)
	if len(ordered) < 2 {
		return posterior
	}

	n := len(ordered)

	// Drift-inflated prior variances.
	variances := make([]float64, n)
	for i, r := range ordered {
		variances[i] = r.Sigma*r.Sigma + cfg.Tau*cfg.Tau
	}

	// Accumulate the contributions of the adjacent-rank comparisons. Mean
	// shifts add; variance factors multiply. A player in the middle of the
	// order participates in exactly two comparisons, the first and last in
	// exactly one.
	meanShift := make([]float64, n)
	varFactor := make([]float64, n)
	for i := range varFactor {
		varFactor[i] = 1
	}
	for i := 0; i < n-1; i++ {
		winner, loser := i, i+1
		c2 := 2*cfg.Beta*cfg.Beta + variances[winner] + variances[loser]
		c := math.Sqrt(c2)
		t := (ordered[winner].Mu - ordered[loser].Mu) / c
		v := vWin(t)
		w := wWin(t, v)

		meanShift[winner] += variances[winner] / c * v
		meanShift[loser] -= variances[loser] / c * v
		varFactor[winner] *= 1 - variances[winner]/c2*w
		varFactor[loser] *= 1 - variances[loser]/c2*w
	}

	for i := range posterior {
		posterior[i].Mu = ordered[i].Mu + meanShift[i]
		variance := variances[i] * varFactor[i]
		// Information is only gained net of drift: σ stays positive and never
		// exceeds the drift-inflated prior.
		if variance > variances[i] {
			variance = variances[i]
		}
		if variance < sigmaMin*sigmaMin {
			variance = sigmaMin * sigmaMin
		}
		posterior[i].Sigma = math.Sqrt(variance)
	}
	return posterior
}
