package hub

import (
	"fmt"

	qwfs "github.com/qwstats/qwrank/internal/firestore"
	"github.com/qwstats/qwrank/internal/qw"
)

// KTXStats is the decoded ktxstats record of one demo.
type KTXStats struct {
	Matchtag string      `json:"matchtag"`
	Map      string      `json:"map"`
	Hostname string      `json:"hostname"`
	Port     int         `json:"port"`
	DM       int         `json:"dm"`
	TP       int         `json:"tp"`
	TL       int         `json:"tl"`
	Duration int         `json:"duration"`
	Players  []KTXPlayer `json:"players"`
}

// KTXPlayer is one player's entry in a ktxstats record. The stat, damage,
// spree, and speed groups are required; weapon, item, and transfer fields are
// optional and default to zero.
type KTXPlayer struct {
	Name        string  `json:"name"`
	Login       string  `json:"login"`
	Team        string  `json:"team"`
	TopColor    *int    `json:"top-color"`
	BottomColor *int    `json:"bottom-color"`
	Ping        *int    `json:"ping"`

	Stats *ktxFrags  `json:"stats"`
	Dmg   *ktxDamage `json:"dmg"`
	Spree *ktxSpree  `json:"spree"`
	Speed *ktxSpeed  `json:"speed"`

	Weapons map[string]ktxWeapon `json:"weapons"`
	Items   map[string]ktxItem   `json:"items"`

	XferRL int `json:"xferRL"`
	XferLG int `json:"xferLG"`
}

type ktxFrags struct {
	Frags      int `json:"frags"`
	Deaths     int `json:"deaths"`
	Teamkills  int `json:"tk"`
	SpawnFrags int `json:"spawn-frags"`
	Suicides   int `json:"suicides"`
}

type ktxDamage struct {
	Taken        int `json:"taken"`
	Given        int `json:"given"`
	Team         int `json:"team"`
	Self         int `json:"self"`
	TeamWeapons  int `json:"team-weapons"`
	EnemyWeapons int `json:"enemy-weapons"`
	TakenToDie   int `json:"taken-to-die"`
}

type ktxSpree struct {
	Max  int `json:"max"`
	Quad int `json:"quad"`
}

type ktxSpeed struct {
	Max float64 `json:"max"`
	Avg float64 `json:"avg"`
}

type ktxWeapon struct {
	Acc struct {
		Attacks int `json:"attacks"`
		Hits    int `json:"hits"`
		Virtual int `json:"virtual"`
	} `json:"acc"`
	Pickups struct {
		Dropped int `json:"dropped"`
		Taken   int `json:"taken"`
	} `json:"pickups"`
	Damage struct {
		Enemy int `json:"enemy"`
		Team  int `json:"team"`
	} `json:"damage"`
	Kills struct {
		Enemy int `json:"enemy"`
		Team  int `json:"team"`
	} `json:"kills"`
}

type ktxItem struct {
	Took int `json:"took"`
	Time int `json:"time"`
}

// DedupePlayers collapses reconnect duplicates: when a player drops and
// rejoins mid-match they appear multiple times in the record, and only the
// first-seen entry is kept.
func DedupePlayers(players []KTXPlayer) []KTXPlayer {
	seen := make(map[string]struct{}, len(players))
	distinct := make([]KTXPlayer, 0, len(players))
	for _, p := range players {
		if _, ok := seen[p.Name]; ok {
			continue
		}
		seen[p.Name] = struct{}{}
		distinct = append(distinct, p)
	}
	return distinct
}

// ToPlayer converts a ktxstats entry into a player record for a match in a
// region. A missing required group makes the whole match's record malformed;
// the caller logs and skips the match.
func (k *KTXPlayer) ToPlayer(matchID int64, region string) (qwfs.Player, error) {
	var p qwfs.Player
	switch {
	case k.TopColor == nil || k.BottomColor == nil || k.Ping == nil:
		return p, fmt.Errorf("ToPlayer: player '%s' missing color or ping fields", k.Name)
	case k.Stats == nil:
		return p, fmt.Errorf("ToPlayer: player '%s' missing stats group", k.Name)
	case k.Dmg == nil:
		return p, fmt.Errorf("ToPlayer: player '%s' missing dmg group", k.Name)
	case k.Spree == nil:
		return p, fmt.Errorf("ToPlayer: player '%s' missing spree group", k.Name)
	case k.Speed == nil:
		return p, fmt.Errorf("ToPlayer: player '%s' missing speed group", k.Name)
	}

	// Absent weapons and items are zero values, matching the documented
	// defaults of the optional fields.
	sg := k.Weapons["sg"]
	ssg := k.Weapons["ssg"]
	gl := k.Weapons["gl"]
	rl := k.Weapons["rl"]
	lg := k.Weapons["lg"]

	p = qwfs.Player{
		Name:    qw.EscapeString(k.Name),
		Login:   k.Login,
		Team:    qw.EscapeString(k.Team),
		Region:  region,
		MatchID: matchID,

		TopColor:    *k.TopColor,
		BottomColor: *k.BottomColor,
		Ping:        *k.Ping,

		Frags:      k.Stats.Frags,
		Deaths:     k.Stats.Deaths,
		Teamkills:  k.Stats.Teamkills,
		Spawnfrags: k.Stats.SpawnFrags,
		Suicides:   k.Stats.Suicides,

		DamageTaken:        k.Dmg.Taken,
		DamageGiven:        k.Dmg.Given,
		DamageTeam:         k.Dmg.Team,
		DamageSelf:         k.Dmg.Self,
		DamageTeamWeapons:  k.Dmg.TeamWeapons,
		DamageEnemyWeapons: k.Dmg.EnemyWeapons,
		DamageToDie:        k.Dmg.TakenToDie,

		SpreeFrag: k.Spree.Max,
		SpreeQuad: k.Spree.Quad,

		SpeedMax: k.Speed.Max,
		SpeedAvg: k.Speed.Avg,

		SGAttacks:     sg.Acc.Attacks,
		SGHits:        sg.Acc.Hits,
		SGDamageEnemy: sg.Damage.Enemy,
		SGDamageTeam:  sg.Damage.Team,

		SSGAttacks:     ssg.Acc.Attacks,
		SSGHits:        ssg.Acc.Hits,
		SSGDamageEnemy: ssg.Damage.Enemy,
		SSGDamageTeam:  ssg.Damage.Team,

		GLAttacks: gl.Acc.Attacks,
		GLDirects: gl.Acc.Hits,
		GLVirtual: gl.Acc.Virtual,

		RLAttacks:     rl.Acc.Attacks,
		RLDirects:     rl.Acc.Hits,
		RLVirtual:     rl.Acc.Virtual,
		RLDropped:     rl.Pickups.Dropped,
		RLTaken:       rl.Pickups.Taken,
		RLTransfer:    k.XferRL,
		RLDamageEnemy: rl.Damage.Enemy,
		RLDamageTeam:  rl.Damage.Team,
		RLKillsEnemy:  rl.Kills.Enemy,
		RLKillsTeam:   rl.Kills.Team,

		LGAttacks:     lg.Acc.Attacks,
		LGHits:        lg.Acc.Hits,
		LGDropped:     lg.Pickups.Dropped,
		LGTaken:       lg.Pickups.Taken,
		LGTransfer:    k.XferLG,
		LGDamageEnemy: lg.Damage.Enemy,
		LGDamageTeam:  lg.Damage.Team,
		LGKillsEnemy:  lg.Kills.Enemy,
		LGKillsTeam:   lg.Kills.Team,

		Health15Taken:  k.Items["health_15"].Took,
		Health25Taken:  k.Items["health_25"].Took,
		Health100Taken: k.Items["health_100"].Took,

		GATaken:   k.Items["ga"].Took,
		YATaken:   k.Items["ya"].Took,
		RATaken:   k.Items["ra"].Took,
		QuadTaken: k.Items["q"].Took,
		QuadTime:  k.Items["q"].Time,
		PentTaken: k.Items["p"].Took,
		RingTaken: k.Items["r"].Took,
		RingTime:  k.Items["r"].Time,
	}
	return p, nil
}
