// Package stats declares the per-match statistics players are ranked on,
// computes per-region normalization parameters for them, and combines the
// normalized statistics into a single composite score used to order the
// players of one match.
package stats

import (
	qwfs "github.com/qwstats/qwrank/internal/firestore"
)

// Statistic is one named, region-scoped measure derived from a player's raw
// match record. Definitions are immutable: keys, derivations, and weights are
// a closed contract, and changing any of them changes historical-replay
// ranking behavior.
type Statistic struct {
	// Key is the statistic's stable name, used to key normals.
	Key string

	// Weight is the statistic's contribution factor in the composite score.
	// Positive weights reward the statistic, negative weights penalize it.
	Weight float64

	// Derive computes the statistic's value from a raw record. Deterministic
	// and total: ratio statistics define 0 at a zero denominator.
	Derive func(*qwfs.Player) float64

	// Attempts is non-nil for conditionally included statistics: when it
	// returns 0 the statistic contributes no term to the composite score at
	// all, as opposed to a defined-zero value that still enters the weighted
	// sum. A player who never fired a weapon is not penalized for its
	// accuracy.
	Attempts func(*qwfs.Player) float64
}

// ratio divides num by den, defining 0 at a zero denominator so that a
// degenerate record can never stall a whole normalization pass.
func ratio(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}

// Registry is the fixed set of registered statistics in evaluation order.
var Registry = []Statistic{
	{
		Key:    "frags",
		Weight: 7.313,
		Derive: func(p *qwfs.Player) float64 { return float64(p.Frags) },
	},
	{
		Key:    "frags_minus_deaths",
		Weight: 7.938,
		Derive: func(p *qwfs.Player) float64 { return float64(p.Frags - p.Deaths) },
	},
	{
		Key:    "teamkills",
		Weight: -4.813,
		Derive: func(p *qwfs.Player) float64 { return float64(p.Teamkills) },
	},
	{
		Key:      "efficiency",
		Weight:   6.867,
		Derive:   func(p *qwfs.Player) float64 { return ratio(float64(p.Frags), float64(p.Frags+p.Deaths)) },
		Attempts: func(p *qwfs.Player) float64 { return float64(p.Frags + p.Deaths) },
	},
	{
		Key:      "rl_accuracy",
		Weight:   5.125,
		Derive:   func(p *qwfs.Player) float64 { return ratio(float64(p.RLVirtual), float64(p.RLAttacks)) },
		Attempts: func(p *qwfs.Player) float64 { return float64(p.RLAttacks) },
	},
	{
		Key:      "lg_accuracy",
		Weight:   6.267,
		Derive:   func(p *qwfs.Player) float64 { return ratio(float64(p.LGHits), float64(p.LGAttacks)) },
		Attempts: func(p *qwfs.Player) float64 { return float64(p.LGAttacks) },
	},
	{
		Key:      "gl_accuracy",
		Weight:   2.688,
		Derive:   func(p *qwfs.Player) float64 { return ratio(float64(p.GLVirtual), float64(p.GLAttacks)) },
		Attempts: func(p *qwfs.Player) float64 { return float64(p.GLAttacks) },
	},
	{
		Key:      "sg_accuracy",
		Weight:   6.5,
		Derive:   func(p *qwfs.Player) float64 { return ratio(float64(p.SGHits), float64(p.SGAttacks)) },
		Attempts: func(p *qwfs.Player) float64 { return float64(p.SGAttacks) },
	},
	{
		Key:      "ssg_accuracy",
		Weight:   4.938,
		Derive:   func(p *qwfs.Player) float64 { return ratio(float64(p.SSGHits), float64(p.SSGAttacks)) },
		Attempts: func(p *qwfs.Player) float64 { return float64(p.SSGAttacks) },
	},
	{
		Key:    "rl_damage_enemy",
		Weight: 5.625,
		Derive: func(p *qwfs.Player) float64 { return float64(p.RLDamageEnemy) },
	},
	{
		Key:    "rl_directs",
		Weight: 3.188,
		Derive: func(p *qwfs.Player) float64 { return float64(p.RLDirects) },
	},
	{
		Key:    "ga_taken",
		Weight: 4.625,
		Derive: func(p *qwfs.Player) float64 { return float64(p.GATaken) },
	},
	{
		Key:    "ya_taken",
		Weight: 6.813,
		Derive: func(p *qwfs.Player) float64 { return float64(p.YATaken) },
	},
	{
		Key:    "ra_taken",
		Weight: 8.875,
		Derive: func(p *qwfs.Player) float64 { return float64(p.RATaken) },
	},
	{
		Key:    "health100_taken",
		Weight: 6.438,
		Derive: func(p *qwfs.Player) float64 { return float64(p.Health100Taken) },
	},
	{
		Key:    "rl_taken",
		Weight: 7.438,
		Derive: func(p *qwfs.Player) float64 { return float64(p.RLTaken) },
	},
	{
		Key:    "rl_kills_enemy",
		Weight: 8.875,
		Derive: func(p *qwfs.Player) float64 { return float64(p.RLKillsEnemy) },
	},
	{
		Key:    "rl_dropped",
		Weight: -7.75,
		Derive: func(p *qwfs.Player) float64 { return float64(p.RLDropped) },
	},
	{
		Key:    "rl_transfer",
		Weight: 6.5,
		Derive: func(p *qwfs.Player) float64 { return float64(p.RLTransfer) },
	},
	{
		Key:    "lg_taken",
		Weight: 7.125,
		Derive: func(p *qwfs.Player) float64 { return float64(p.LGTaken) },
	},
	{
		Key:    "lg_kills_enemy",
		Weight: 7.813,
		Derive: func(p *qwfs.Player) float64 { return float64(p.LGKillsEnemy) },
	},
	{
		Key:    "lg_damage_enemy",
		Weight: 5.8,
		Derive: func(p *qwfs.Player) float64 { return float64(p.LGDamageEnemy) },
	},
	{
		Key:    "lg_dropped",
		Weight: -7,
		Derive: func(p *qwfs.Player) float64 { return float64(p.LGDropped) },
	},
	{
		Key:    "lg_transfer",
		Weight: 5.688,
		Derive: func(p *qwfs.Player) float64 { return float64(p.LGTransfer) },
	},
	{
		Key:    "damage_taken",
		Weight: -4.875,
		Derive: func(p *qwfs.Player) float64 { return float64(p.DamageTaken) },
	},
	{
		Key:    "damage_given",
		Weight: 7.938,
		Derive: func(p *qwfs.Player) float64 { return float64(p.DamageGiven) },
	},
	{
		Key:    "damage_enemy_weapons",
		Weight: 7.5,
		Derive: func(p *qwfs.Player) float64 { return float64(p.DamageEnemyWeapons) },
	},
	{
		Key:    "damage_team",
		Weight: -4.875,
		Derive: func(p *qwfs.Player) float64 { return float64(p.DamageTeam) },
	},
	{
		Key:    "damage_self",
		Weight: -3.625,
		Derive: func(p *qwfs.Player) float64 { return float64(p.DamageSelf) },
	},
	{
		Key:    "damage_to_die",
		Weight: 6.125,
		Derive: func(p *qwfs.Player) float64 { return float64(p.DamageToDie) },
	},
	{
		Key:    "quad_taken",
		Weight: 8.438,
		Derive: func(p *qwfs.Player) float64 { return float64(p.QuadTaken) },
	},
	{
		Key:    "pent_taken",
		Weight: 8.75,
		Derive: func(p *qwfs.Player) float64 { return float64(p.PentTaken) },
	},
	{
		Key:    "ring_taken",
		Weight: 5.6,
		Derive: func(p *qwfs.Player) float64 { return float64(p.RingTaken) },
	},
	{
		Key:    "spree_frag",
		Weight: 4.625,
		Derive: func(p *qwfs.Player) float64 { return float64(p.SpreeFrag) },
	},
	{
		Key:    "spree_quad",
		Weight: 4.688,
		Derive: func(p *qwfs.Player) float64 { return float64(p.SpreeQuad) },
	},
	{
		Key:    "spawnfrags",
		Weight: 5.625,
		Derive: func(p *qwfs.Player) float64 { return float64(p.Spawnfrags) },
	},
	{
		Key:    "ping",
		Weight: 6.8,
		Derive: func(p *qwfs.Player) float64 { return float64(p.Ping) },
	},
}
