package firestore

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const MATCHES_COLLECTION = "matches"

// Match represents one recorded match. Player records live in a "players"
// subcollection under the match document.
type Match struct {
	// ID is the hub's match identifier, also used as the document ID.
	ID int64 `firestore:"id"`

	// Date is the match timestamp as reported by the hub. Rating updates are
	// strictly ordered by this field.
	Date time.Time `firestore:"date"`

	// Tag is the optional match tag (tournament name, etc.).
	Tag string `firestore:"tag"`

	// Map is the name of the map the match was played on.
	Map string `firestore:"map"`

	// ServerName is the escaped hostname of the server the match was played on.
	ServerName string `firestore:"server_name"`

	// ServerPort is the port of the server the match was played on.
	ServerPort int `firestore:"server_port"`

	// Region is the region of the server, denormalized at ingestion time.
	// Empty when the server was unknown at ingestion: such matches never rate.
	Region string `firestore:"region"`

	DeathmatchMode int    `firestore:"deathmatch_mode"`
	TeamplayMode   int    `firestore:"teamplay_mode"`
	TimeLimitMins  int    `firestore:"time_limit_mins"`
	DurationSecs   int    `firestore:"duration_secs"`
	DemoSHA256     string `firestore:"demo_sha256"`
}

// MatchRef returns the document reference for a match ID.
func MatchRef(client *firestore.Client, id int64) *firestore.DocumentRef {
	return client.Collection(MATCHES_COLLECTION).Doc(strconv.FormatInt(id, 10))
}

// MatchExists reports whether a match has already been ingested.
func MatchExists(ctx context.Context, client *firestore.Client, id int64) (bool, error) {
	_, err := MatchRef(client, id).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("MatchExists: unable to get match '%d': %w", id, err)
	}
	return true, nil
}

// CreateMatch writes a match and its player records in a single transaction,
// so a match is either fully ingested or not ingested at all.
func CreateMatch(ctx context.Context, client *firestore.Client, match Match, players []Player) error {
	matchRef := MatchRef(client, match.ID)
	err := client.RunTransaction(ctx, func(c context.Context, t *firestore.Transaction) error {
		if err := t.Create(matchRef, &match); err != nil {
			return err
		}
		for _, player := range players {
			ref := matchRef.Collection(PLAYERS_COLLECTION).Doc(NameID(player.Name))
			if err := t.Create(ref, &player); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("CreateMatch: error running transaction for match '%d': %w", match.ID, err)
	}
	return nil
}

// GetLatestMatchDate returns the date of the most recently played ingested
// match. The second return value is false when no matches have been ingested.
func GetLatestMatchDate(ctx context.Context, client *firestore.Client) (time.Time, bool, error) {
	q := client.Collection(MATCHES_COLLECTION).OrderBy("date", firestore.Desc).Limit(1)
	snaps, err := q.Documents(ctx).GetAll()
	if err != nil {
		return time.Time{}, false, fmt.Errorf("GetLatestMatchDate: unable to query matches: %w", err)
	}
	if len(snaps) == 0 {
		return time.Time{}, false, nil
	}
	var m Match
	if err := snaps[0].DataTo(&m); err != nil {
		return time.Time{}, false, fmt.Errorf("GetLatestMatchDate: unable to convert match document '%s': %w", snaps[0].Ref.ID, err)
	}
	return m.Date, true, nil
}

// GetRegionMatchesAfter gets the matches of a region played strictly after the
// cutoff, in ascending date order. The order is a correctness requirement for
// rating updates, not a presentation choice.
func GetRegionMatchesAfter(ctx context.Context, client *firestore.Client, region string, after time.Time) ([]Match, []*firestore.DocumentRef, error) {
	q := client.Collection(MATCHES_COLLECTION).
		Where("region", "==", region).
		Where("date", ">", after).
		OrderBy("date", firestore.Asc)
	iter := q.Documents(ctx)
	defer iter.Stop()
	var matches []Match
	var refs []*firestore.DocumentRef
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("GetRegionMatchesAfter: unable to iterate matches of region '%s': %w", region, err)
		}
		var m Match
		if err := snap.DataTo(&m); err != nil {
			return nil, nil, fmt.Errorf("GetRegionMatchesAfter: unable to convert match document '%s': %w", snap.Ref.ID, err)
		}
		matches = append(matches, m)
		refs = append(refs, snap.Ref)
	}
	return matches, refs, nil
}
