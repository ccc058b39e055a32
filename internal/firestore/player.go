package firestore

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
)

const PLAYERS_COLLECTION = "players"

// Player represents one player's raw statistics for one match.
// It is immutable once written. Optional fields in the upstream ktxstats feed
// default to zero at ingestion time, so every field here is always defined.
type Player struct {
	// Name is the player's in-game name with QW control characters escaped.
	Name string `firestore:"name"`

	// Login is the player's hub login, if any.
	Login string `firestore:"login"`

	// Team is the player's team tag with QW control characters escaped.
	Team string `firestore:"team"`

	// Region is the region of the server the match was played on, denormalized
	// here so region-wide aggregations can run as a single collection-group query.
	Region string `firestore:"region"`

	// MatchID is the hub's match identifier. Together with Name it uniquely
	// identifies this record.
	MatchID int64 `firestore:"match_id"`

	TopColor    int `firestore:"top_color"`
	BottomColor int `firestore:"bottom_color"`
	Ping        int `firestore:"ping"`

	Frags      int `firestore:"frags"`
	Deaths     int `firestore:"deaths"`
	Teamkills  int `firestore:"teamkills"`
	Spawnfrags int `firestore:"spawnfrags"`
	Suicides   int `firestore:"suicides"`

	DamageTaken        int `firestore:"damage_taken"`
	DamageGiven        int `firestore:"damage_given"`
	DamageTeam         int `firestore:"damage_team"`
	DamageSelf         int `firestore:"damage_self"`
	DamageTeamWeapons  int `firestore:"damage_team_weapons"`
	DamageEnemyWeapons int `firestore:"damage_enemy_weapons"`
	DamageToDie        int `firestore:"damage_to_die"`

	SpreeFrag int `firestore:"spree_frag"`
	SpreeQuad int `firestore:"spree_quad"`

	SpeedMax float64 `firestore:"speed_max"`
	SpeedAvg float64 `firestore:"speed_avg"`

	SGAttacks     int `firestore:"sg_attacks"`
	SGHits        int `firestore:"sg_hits"`
	SGDamageEnemy int `firestore:"sg_damage_enemy"`
	SGDamageTeam  int `firestore:"sg_damage_team"`

	SSGAttacks     int `firestore:"ssg_attacks"`
	SSGHits        int `firestore:"ssg_hits"`
	SSGDamageEnemy int `firestore:"ssg_damage_enemy"`
	SSGDamageTeam  int `firestore:"ssg_damage_team"`

	GLAttacks int `firestore:"gl_attacks"`
	GLDirects int `firestore:"gl_directs"`
	GLVirtual int `firestore:"gl_virtual"`

	RLAttacks     int `firestore:"rl_attacks"`
	RLDirects     int `firestore:"rl_directs"`
	RLVirtual     int `firestore:"rl_virtual"`
	RLDropped     int `firestore:"rl_dropped"`
	RLTaken       int `firestore:"rl_taken"`
	RLTransfer    int `firestore:"rl_transfer"`
	RLDamageEnemy int `firestore:"rl_damage_enemy"`
	RLDamageTeam  int `firestore:"rl_damage_team"`
	RLKillsEnemy  int `firestore:"rl_kills_enemy"`
	RLKillsTeam   int `firestore:"rl_kills_team"`

	LGAttacks     int `firestore:"lg_attacks"`
	LGHits        int `firestore:"lg_hits"`
	LGDropped     int `firestore:"lg_dropped"`
	LGTaken       int `firestore:"lg_taken"`
	LGTransfer    int `firestore:"lg_transfer"`
	LGDamageEnemy int `firestore:"lg_damage_enemy"`
	LGDamageTeam  int `firestore:"lg_damage_team"`
	LGKillsEnemy  int `firestore:"lg_kills_enemy"`
	LGKillsTeam   int `firestore:"lg_kills_team"`

	Health15Taken  int `firestore:"health15_taken"`
	Health25Taken  int `firestore:"health25_taken"`
	Health100Taken int `firestore:"health100_taken"`

	GATaken   int `firestore:"ga_taken"`
	YATaken   int `firestore:"ya_taken"`
	RATaken   int `firestore:"ra_taken"`
	QuadTaken int `firestore:"quad_taken"`
	QuadTime  int `firestore:"quad_time"`
	PentTaken int `firestore:"pent_taken"`
	RingTaken int `firestore:"ring_taken"`
	RingTime  int `firestore:"ring_time"`
}

// GetMatchPlayers gets the player records of a single match.
func GetMatchPlayers(ctx context.Context, matchRef *firestore.DocumentRef) ([]Player, error) {
	snaps, err := matchRef.Collection(PLAYERS_COLLECTION).Documents(ctx).GetAll()
	if err != nil {
		return nil, fmt.Errorf("GetMatchPlayers: unable to get players of match '%s': %w", matchRef.ID, err)
	}
	players := make([]Player, len(snaps))
	for i, snap := range snaps {
		if err := snap.DataTo(&players[i]); err != nil {
			return nil, fmt.Errorf("GetMatchPlayers: unable to convert player document '%s': %w", snap.Ref.ID, err)
		}
	}
	return players, nil
}

// GetRegionPlayers gets every player record of every match ever played in a region.
// This is the full statistic corpus the region's normals are computed from.
func GetRegionPlayers(ctx context.Context, client *firestore.Client, region string) ([]Player, error) {
	iter := client.CollectionGroup(PLAYERS_COLLECTION).Where("region", "==", region).Documents(ctx)
	defer iter.Stop()
	var players []Player
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("GetRegionPlayers: unable to iterate players of region '%s': %w", region, err)
		}
		var p Player
		if err := snap.DataTo(&p); err != nil {
			return nil, fmt.Errorf("GetRegionPlayers: unable to convert player document '%s': %w", snap.Ref.ID, err)
		}
		players = append(players, p)
	}
	return players, nil
}
