package firestore

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const NORMALS_COLLECTION = "normals"

// Normal holds the normalization parameters of one statistic in one region.
type Normal struct {
	// Mean is the arithmetic mean of the statistic over every player record in
	// the region.
	Mean float64 `firestore:"mean"`

	// StdDev is the population standard deviation of the statistic. Always >= 0.
	// A zero value marks a degenerate distribution: z-scores of the statistic
	// are defined as exactly 0.
	StdDev float64 `firestore:"standard_deviation"`
}

// RegionNormals is the normals document of one region: one Normal per
// registered statistic key. It is recomputed wholesale from the full player
// corpus of the region, never incrementally updated.
type RegionNormals struct {
	Region string            `firestore:"region"`
	Stats  map[string]Normal `firestore:"stats"`
}

type NormalsNotFound string

func (e NormalsNotFound) Error() string {
	return string(e)
}

// GetNormals gets the normals of a region. Returns NormalsNotFound when the
// region has never had its normals computed; rating a region in that state is
// an ordering error on the caller's part.
func GetNormals(ctx context.Context, client *firestore.Client, region string) (map[string]Normal, error) {
	snap, err := client.Collection(NORMALS_COLLECTION).Doc(NameID(region)).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, NormalsNotFound(fmt.Sprintf("normals for region '%s' not found", region))
	}
	if err != nil {
		return nil, fmt.Errorf("GetNormals: unable to get normals for region '%s': %w", region, err)
	}
	var rn RegionNormals
	if err := snap.DataTo(&rn); err != nil {
		return nil, fmt.Errorf("GetNormals: unable to convert normals document '%s': %w", snap.Ref.ID, err)
	}
	return rn.Stats, nil
}

// SetNormals overwrites the normals of a region.
func SetNormals(ctx context.Context, client *firestore.Client, region string, normals map[string]Normal) error {
	ref := client.Collection(NORMALS_COLLECTION).Doc(NameID(region))
	rn := RegionNormals{Region: region, Stats: normals}
	if _, err := ref.Set(ctx, &rn); err != nil {
		return fmt.Errorf("SetNormals: unable to set normals for region '%s': %w", region, err)
	}
	return nil
}
