package updatematches

import (
	"fmt"
	"log"
	"time"

	qwfs "github.com/qwstats/qwrank/internal/firestore"
	"github.com/qwstats/qwrank/internal/hub"
	"github.com/qwstats/qwrank/internal/qw"
	progressbar "github.com/schollz/progressbar/v3"
)

const pageSize = 1000

// UpdateMatches ingests all hub matches recorded after the cutoff: for each
// new match, the ktxstats record is downloaded, reconnect duplicates are
// collapsed, the server's region is resolved, and the match and its player
// records are written in one transaction. A match whose stats cannot be
// fetched or decoded is logged and skipped; the run continues.
func UpdateMatches(ctx *Context) error {
	after := ctx.After.UTC().Format(time.RFC3339)
	remote, err := ctx.Hub.CountMatches(after)
	if err != nil {
		return fmt.Errorf("UpdateMatches: %w", err)
	}
	log.Printf("%d remote matches after %s", remote, after)

	var bar *progressbar.ProgressBar
	if !ctx.NoProgress {
		bar = progressbar.Default(int64(remote), "matches")
	}

	processed := 0
	ingested := 0
	for processed < remote {
		page, err := ctx.Hub.ListMatches(after, processed, pageSize)
		if err != nil {
			return fmt.Errorf("UpdateMatches: %w", err)
		}
		if len(page) == 0 {
			break
		}
		processed += len(page)

		for _, info := range page {
			if bar != nil {
				bar.Add(1)
			}
			exists, err := qwfs.MatchExists(ctx, ctx.FirestoreClient, info.ID)
			if err != nil {
				return fmt.Errorf("UpdateMatches: %w", err)
			}
			if exists {
				continue
			}
			if err := ingestMatch(ctx, info); err != nil {
				log.Printf("skipping match %d: %v", info.ID, err)
				continue
			}
			ingested++
		}
	}
	log.Printf("processed %d matches, ingested %d", processed, ingested)
	return nil
}

func ingestMatch(ctx *Context, info hub.MatchInfo) error {
	ktx, err := ctx.Hub.FetchKTXStats(info.DemoSHA256)
	if err != nil {
		return err
	}

	date, err := time.Parse(time.RFC3339, info.Timestamp)
	if err != nil {
		return fmt.Errorf("ingestMatch: unable to parse timestamp '%s': %v", info.Timestamp, err)
	}

	serverName := qw.EscapeString(ktx.Hostname)

	// Unknown servers leave the region empty; such matches are ingested but
	// never normalize or rate until the server table catches up and the match
	// is re-ingested.
	var region string
	server, err := qwfs.GetServer(ctx, ctx.FirestoreClient, serverName)
	switch err.(type) {
	case nil:
		region = server.Region
	case qwfs.ServerNotFound:
		log.Printf("match %d played on unknown server '%s'", info.ID, serverName)
	default:
		return err
	}

	distinct := hub.DedupePlayers(ktx.Players)
	players := make([]qwfs.Player, 0, len(distinct))
	for i := range distinct {
		p, err := distinct[i].ToPlayer(info.ID, region)
		if err != nil {
			return err
		}
		players = append(players, p)
	}

	match := qwfs.Match{
		ID:             info.ID,
		Date:           date,
		Tag:            ktx.Matchtag,
		Map:            ktx.Map,
		ServerName:     serverName,
		ServerPort:     ktx.Port,
		Region:         region,
		DeathmatchMode: ktx.DM,
		TeamplayMode:   ktx.TP,
		TimeLimitMins:  ktx.TL,
		DurationSecs:   ktx.Duration,
		DemoSHA256:     info.DemoSHA256,
	}

	if ctx.DryRun {
		log.Printf("DRY RUN: would ingest match %d (%s on %s) with %d players", match.ID, match.Map, match.ServerName, len(players))
		return nil
	}
	return qwfs.CreateMatch(ctx, ctx.FirestoreClient, match, players)
}
