package updateratings

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"sync"
	"time"

	fs "cloud.google.com/go/firestore"
	qwfs "github.com/qwstats/qwrank/internal/firestore"
	"github.com/qwstats/qwrank/internal/stats"
	"github.com/qwstats/qwrank/internal/trueskill"
	progressbar "github.com/schollz/progressbar/v3"
)

// Corpus is what the rating pass reads: the known regions, their
// normalization parameters, and the chronological match history.
type Corpus interface {
	Regions(ctx context.Context) ([]string, error)
	Normals(ctx context.Context, region string) (stats.Normals, error)
	MatchesAfter(ctx context.Context, region string, after time.Time) ([]qwfs.Match, error)
	MatchPlayers(ctx context.Context, matchID int64) ([]qwfs.Player, error)
}

// FirestoreCorpus reads the durable match corpus.
type FirestoreCorpus struct {
	Client *fs.Client
}

func (c FirestoreCorpus) Regions(ctx context.Context) ([]string, error) {
	return qwfs.GetRegions(ctx, c.Client)
}

func (c FirestoreCorpus) Normals(ctx context.Context, region string) (stats.Normals, error) {
	return qwfs.GetNormals(ctx, c.Client, region)
}

func (c FirestoreCorpus) MatchesAfter(ctx context.Context, region string, after time.Time) ([]qwfs.Match, error) {
	matches, _, err := qwfs.GetRegionMatchesAfter(ctx, c.Client, region, after)
	return matches, err
}

func (c FirestoreCorpus) MatchPlayers(ctx context.Context, matchID int64) ([]qwfs.Player, error) {
	return qwfs.GetMatchPlayers(ctx, qwfs.MatchRef(c.Client, matchID))
}

// UpdateRatings runs a chronological rating pass for each selected region.
// Regions share no state and are processed concurrently; within a region,
// matches form a strict sequential dependency chain, since every belief
// update conditions on the previous belief and drift compounds per match.
func UpdateRatings(ctx *Context) error {
	corpus := FirestoreCorpus{Client: ctx.FirestoreClient}

	var store Store = qwfs.RatingStore{Client: ctx.FirestoreClient}
	if ctx.DryRun {
		log.Print("DRY RUN: rating updates will be computed but not persisted")
		mem := NewMemoryStore()
		mem.Fallback = store
		store = mem
	}

	return rateRegions(ctx, corpus, store, trueskill.DefaultConfig())
}

func rateRegions(ctx *Context, corpus Corpus, store Store, cfg trueskill.Config) error {
	var regions []string
	if ctx.Region != "" {
		regions = []string{ctx.Region}
	} else {
		var err error
		regions, err = corpus.Regions(ctx)
		if err != nil {
			return fmt.Errorf("UpdateRatings: unable to enumerate regions: %w", err)
		}
	}

	var wg sync.WaitGroup
	errs := make(chan error, len(regions))
	for _, region := range regions {
		wg.Add(1)
		go func(region string) {
			defer wg.Done()
			if err := updateRegion(ctx, corpus, store, region, cfg); err != nil {
				errs <- err
			}
		}(region)
	}
	wg.Wait()
	close(errs)
	var failed []error
	for err := range errs {
		failed = append(failed, err)
	}
	if err := errors.Join(failed...); err != nil {
		return fmt.Errorf("UpdateRatings: %w", err)
	}
	return nil
}

func updateRegion(ctx *Context, corpus Corpus, store Store, region string, cfg trueskill.Config) error {
	matches, err := corpus.MatchesAfter(ctx, region, ctx.After)
	if err != nil {
		return fmt.Errorf("updateRegion: region '%s': %w", region, err)
	}
	// A region with nothing to rate is not an observation and needs no
	// normals: a server can exist in a region before any match is played
	// there.
	if len(matches) == 0 {
		log.Printf("region '%s': no matches to rate after %s", region, ctx.After.Format("2006-01-02T15:04:05Z"))
		return nil
	}

	normals, err := corpus.Normals(ctx, region)
	if err != nil {
		// Rating a region with matches but no normals is an ordering error:
		// recompute normals first.
		return fmt.Errorf("updateRegion: region '%s': %w", region, err)
	}
	log.Printf("region '%s': %d matches to rate after %s", region, len(matches), ctx.After.Format("2006-01-02T15:04:05Z"))

	var bar *progressbar.ProgressBar
	if !ctx.NoProgress {
		bar = progressbar.Default(int64(len(matches)), region)
	}

	for _, match := range matches {
		players, err := corpus.MatchPlayers(ctx, match.ID)
		if err != nil {
			return fmt.Errorf("updateRegion: region '%s': %w", region, err)
		}
		if err := RateMatch(ctx, store, region, normals, players, cfg); err != nil {
			// A malformed match fails alone: log it and keep the chain going.
			log.Printf("skipping match %d in region '%s': %v", match.ID, region, err)
		}
		if bar != nil {
			bar.Add(1)
		}
	}
	return nil
}

// RateMatch applies one match to the rating store: rank the players by
// composite score, update their beliefs, and persist the posteriors as one
// atomic batch. A match with fewer than two rankable players is no
// observation and leaves the store untouched.
//
// A failed batch write leaves every prior belief in place, so retrying the
// match re-reads current beliefs and recomputes rather than reapplying a
// delta.
func RateMatch(ctx context.Context, store Store, region string, normals stats.Normals, players []qwfs.Player, cfg trueskill.Config) error {
	players = dedupeFirstSeen(players)
	if len(players) < 2 {
		return nil
	}

	scores := make([]float64, len(players))
	for i := range players {
		s, err := stats.Score(normals, &players[i])
		if err != nil {
			return fmt.Errorf("RateMatch: unable to score player '%s': %w", players[i].Name, err)
		}
		scores[i] = s
	}

	// Best performance first. Stable, so floating-point score ties keep
	// record order.
	order := make([]int, len(players))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return scores[order[a]] > scores[order[b]] })

	priors := make([]trueskill.Rating, len(order))
	for rank, idx := range order {
		r, found, err := store.GetRating(ctx, region, players[idx].Name)
		if err != nil {
			return fmt.Errorf("RateMatch: unable to get rating of '%s': %w", players[idx].Name, err)
		}
		if !found {
			r = cfg.NewRating()
		}
		priors[rank] = r
	}

	posteriors := trueskill.Rate(priors, cfg)

	batch := make([]qwfs.PlayerRating, len(order))
	for rank, idx := range order {
		batch[rank] = qwfs.PlayerRating{Name: players[idx].Name, Rating: posteriors[rank]}
	}
	if err := store.PutRatings(ctx, region, batch); err != nil {
		return fmt.Errorf("RateMatch: unable to persist ratings: %w", err)
	}
	return nil
}

// dedupeFirstSeen collapses duplicate records of the same player name,
// keeping the first-seen occurrence. Ingestion already collapses reconnect
// duplicates, but ranking relies on uniqueness, so the invariant is enforced
// here too.
func dedupeFirstSeen(players []qwfs.Player) []qwfs.Player {
	seen := make(map[string]struct{}, len(players))
	distinct := players[:0:0]
	for _, p := range players {
		if _, ok := seen[p.Name]; ok {
			continue
		}
		seen[p.Name] = struct{}{}
		distinct = append(distinct, p)
	}
	return distinct
}
