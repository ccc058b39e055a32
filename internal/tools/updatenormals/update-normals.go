package updatenormals

import (
	"fmt"
	"log"

	qwfs "github.com/qwstats/qwrank/internal/firestore"
	"github.com/qwstats/qwrank/internal/stats"
)

// UpdateNormals recomputes every selected region's normalization parameters
// wholesale from the region's complete player corpus. Normals must be
// recomputed before any rating pass that depends on them: the caller's run
// order is the happens-before contract.
func UpdateNormals(ctx *Context) error {
	var regions []string
	if ctx.Region != "" {
		regions = []string{ctx.Region}
	} else {
		var err error
		regions, err = qwfs.GetRegions(ctx, ctx.FirestoreClient)
		if err != nil {
			return fmt.Errorf("UpdateNormals: unable to enumerate regions: %w", err)
		}
	}

	for _, region := range regions {
		players, err := qwfs.GetRegionPlayers(ctx, ctx.FirestoreClient, region)
		if err != nil {
			return fmt.Errorf("UpdateNormals: %w", err)
		}
		normals := stats.ComputeNormals(players)
		if normals == nil {
			log.Printf("region '%s' has no player records: skipping", region)
			continue
		}
		if ctx.DryRun {
			log.Printf("DRY RUN: would set normals for region '%s' over %d records", region, len(players))
			continue
		}
		if err := qwfs.SetNormals(ctx, ctx.FirestoreClient, region, normals); err != nil {
			return fmt.Errorf("UpdateNormals: %w", err)
		}
		log.Printf("region '%s': normals recomputed over %d records", region, len(players))
	}
	return nil
}
