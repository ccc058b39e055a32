package firestore

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"github.com/qwstats/qwrank/internal/trueskill"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const RATINGS_COLLECTION = "ratings"
const RATING_PLAYERS_COLLECTION = "players"

// Rating is one player's persisted skill belief in one region.
// Document path: ratings/{regionID}/players/{nameID}.
type Rating struct {
	// Name is the player's escaped display name.
	Name string `firestore:"name"`

	Mu    float64 `firestore:"mu"`
	Sigma float64 `firestore:"sigma"`
}

// ratingRegion is the parent document of a region's rating subcollection. It
// exists only so regions with ratings can be enumerated.
type ratingRegion struct {
	Name string `firestore:"name"`
}

// PlayerRating pairs a player name with a skill belief for batch writes.
type PlayerRating struct {
	Name   string
	Rating trueskill.Rating
}

// RatingStore reads and writes skill beliefs in Firestore. It is the only
// durable checkpoint of the rating engine: a match whose batch write fails is
// simply not applied and can be retried from the stored beliefs.
type RatingStore struct {
	Client *firestore.Client
}

func regionRef(client *firestore.Client, region string) *firestore.DocumentRef {
	return client.Collection(RATINGS_COLLECTION).Doc(NameID(region))
}

// GetRating gets a player's current belief. The second return value is false
// when the player has never been rated in the region.
func (s RatingStore) GetRating(ctx context.Context, region, name string) (trueskill.Rating, bool, error) {
	var r trueskill.Rating
	snap, err := regionRef(s.Client, region).Collection(RATING_PLAYERS_COLLECTION).Doc(NameID(name)).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return r, false, nil
	}
	if err != nil {
		return r, false, fmt.Errorf("GetRating: unable to get rating of '%s' in region '%s': %w", name, region, err)
	}
	var doc Rating
	if err := snap.DataTo(&doc); err != nil {
		return r, false, fmt.Errorf("GetRating: unable to convert rating document '%s': %w", snap.Ref.ID, err)
	}
	return trueskill.Rating{Mu: doc.Mu, Sigma: doc.Sigma}, true, nil
}

// PutRatings writes a match's posterior beliefs in one transaction. Either
// every participant's belief is updated or none is.
func (s RatingStore) PutRatings(ctx context.Context, region string, ratings []PlayerRating) error {
	rref := regionRef(s.Client, region)
	err := s.Client.RunTransaction(ctx, func(c context.Context, t *firestore.Transaction) error {
		if err := t.Set(rref, &ratingRegion{Name: region}); err != nil {
			return err
		}
		for _, pr := range ratings {
			doc := Rating{Name: pr.Name, Mu: pr.Rating.Mu, Sigma: pr.Rating.Sigma}
			if err := t.Set(rref.Collection(RATING_PLAYERS_COLLECTION).Doc(NameID(pr.Name)), &doc); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("PutRatings: error running transaction for region '%s': %w", region, err)
	}
	return nil
}

// ListRatings returns every current belief in a region.
func (s RatingStore) ListRatings(ctx context.Context, region string) ([]Rating, error) {
	iter := regionRef(s.Client, region).Collection(RATING_PLAYERS_COLLECTION).Documents(ctx)
	defer iter.Stop()
	var ratings []Rating
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("ListRatings: unable to iterate ratings of region '%s': %w", region, err)
		}
		var r Rating
		if err := snap.DataTo(&r); err != nil {
			return nil, fmt.Errorf("ListRatings: unable to convert rating document '%s': %w", snap.Ref.ID, err)
		}
		ratings = append(ratings, r)
	}
	return ratings, nil
}

// ListRatedRegions returns the regions that have at least one rated player.
func (s RatingStore) ListRatedRegions(ctx context.Context) ([]string, error) {
	snaps, err := s.Client.Collection(RATINGS_COLLECTION).Documents(ctx).GetAll()
	if err != nil {
		return nil, fmt.Errorf("ListRatedRegions: unable to get regions: %w", err)
	}
	regions := make([]string, 0, len(snaps))
	for _, snap := range snaps {
		var rr ratingRegion
		if err := snap.DataTo(&rr); err != nil {
			return nil, fmt.Errorf("ListRatedRegions: unable to convert region document '%s': %w", snap.Ref.ID, err)
		}
		regions = append(regions, rr.Name)
	}
	return regions, nil
}

// DeleteRegionRatings removes every belief in a region, including the region
// marker document. Deletion happens in transactions of at most 250 documents.
func (s RatingStore) DeleteRegionRatings(ctx context.Context, region string) (int, error) {
	rref := regionRef(s.Client, region)
	refs, err := rref.Collection(RATING_PLAYERS_COLLECTION).DocumentRefs(ctx).GetAll()
	if err != nil {
		return 0, fmt.Errorf("DeleteRegionRatings: unable to list ratings of region '%s': %w", region, err)
	}
	const chunk = 250
	for ll := 0; ll < len(refs); ll += chunk {
		ul := ll + chunk
		if ul > len(refs) {
			ul = len(refs)
		}
		err := s.Client.RunTransaction(ctx, func(c context.Context, t *firestore.Transaction) error {
			for _, ref := range refs[ll:ul] {
				if err := t.Delete(ref); err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			return 0, fmt.Errorf("DeleteRegionRatings: error running delete transaction for region '%s': %w", region, err)
		}
	}
	if _, err := rref.Delete(ctx); err != nil {
		return 0, fmt.Errorf("DeleteRegionRatings: unable to delete region document '%s': %w", region, err)
	}
	return len(refs), nil
}
