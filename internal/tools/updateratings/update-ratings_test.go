package updateratings

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	qwfs "github.com/qwstats/qwrank/internal/firestore"
	"github.com/qwstats/qwrank/internal/stats"
	"github.com/qwstats/qwrank/internal/trueskill"
)

// memoryCorpus is an in-memory Corpus for exercising the region loop without
// a backend.
type memoryCorpus struct {
	regions []string
	normals map[string]stats.Normals
	matches map[string][]qwfs.Match
	players map[int64][]qwfs.Player
}

func (c memoryCorpus) Regions(ctx context.Context) ([]string, error) {
	return c.regions, nil
}

func (c memoryCorpus) Normals(ctx context.Context, region string) (stats.Normals, error) {
	n, ok := c.normals[region]
	if !ok {
		return nil, qwfs.NormalsNotFound(fmt.Sprintf("normals for region '%s' not found", region))
	}
	return n, nil
}

func (c memoryCorpus) MatchesAfter(ctx context.Context, region string, after time.Time) ([]qwfs.Match, error) {
	return c.matches[region], nil
}

func (c memoryCorpus) MatchPlayers(ctx context.Context, matchID int64) ([]qwfs.Player, error) {
	return c.players[matchID], nil
}

func testContext() *Context {
	ctx := NewContext(context.Background())
	ctx.NoProgress = true
	return ctx
}

func matchPlayers(frags ...int) []qwfs.Player {
	names := []string{"alpha", "bravo", "charlie", "delta"}
	players := make([]qwfs.Player, len(frags))
	for i, f := range frags {
		players[i] = qwfs.Player{Name: names[i], Frags: f, DamageGiven: f * 100}
	}
	return players
}

func testNormals(t *testing.T, players []qwfs.Player) stats.Normals {
	t.Helper()
	normals := stats.ComputeNormals(players)
	if normals == nil {
		t.Fatal("no normals computed")
	}
	return normals
}

func TestRateRegionsSkipsRegionWithoutMatches(t *testing.T) {
	// A server can exist in a region before any match is played there, in
	// which case the region also has no normals yet. Such a region has
	// nothing to rate and must not fail the run.
	corpus := memoryCorpus{regions: []string{"Africa"}}
	store := NewMemoryStore()
	if err := rateRegions(testContext(), corpus, store, trueskill.DefaultConfig()); err != nil {
		t.Fatalf("rateRegions: %v", err)
	}
	if got := store.Ratings("Africa"); len(got) != 0 {
		t.Errorf("empty region stored %d ratings", len(got))
	}
}

func TestRateRegionsMissingNormalsIsOrderingError(t *testing.T) {
	// Matches without normals means the normals pass was skipped: that is a
	// caller ordering error and must surface.
	corpus := memoryCorpus{
		regions: []string{"Europe"},
		matches: map[string][]qwfs.Match{"Europe": {{ID: 1, Region: "Europe"}}},
		players: map[int64][]qwfs.Player{1: matchPlayers(25, 5)},
	}
	err := rateRegions(testContext(), corpus, NewMemoryStore(), trueskill.DefaultConfig())
	if err == nil {
		t.Fatal("rateRegions should fail when a region has matches but no normals")
	}
	var notFound qwfs.NormalsNotFound
	if !errors.As(err, &notFound) {
		t.Errorf("error should carry the missing-normals cause, got: %v", err)
	}
}

func TestRateRegionsReportsEveryFailedRegion(t *testing.T) {
	corpus := memoryCorpus{
		regions: []string{"Europe", "Asia"},
		matches: map[string][]qwfs.Match{
			"Europe": {{ID: 1, Region: "Europe"}},
			"Asia":   {{ID: 2, Region: "Asia"}},
		},
		players: map[int64][]qwfs.Player{
			1: matchPlayers(25, 5),
			2: matchPlayers(13, 7),
		},
	}
	err := rateRegions(testContext(), corpus, NewMemoryStore(), trueskill.DefaultConfig())
	if err == nil {
		t.Fatal("rateRegions should fail when every region is missing normals")
	}
	for _, region := range []string{"Europe", "Asia"} {
		if !strings.Contains(err.Error(), region) {
			t.Errorf("error should name failed region '%s': %v", region, err)
		}
	}
}

func TestRateRegionsFullPass(t *testing.T) {
	players := matchPlayers(25, 5)
	corpus := memoryCorpus{
		regions: []string{"Europe", "Africa"},
		normals: map[string]stats.Normals{"Europe": stats.ComputeNormals(players)},
		matches: map[string][]qwfs.Match{"Europe": {{ID: 1, Region: "Europe"}}},
		players: map[int64][]qwfs.Player{1: players},
	}
	store := NewMemoryStore()
	if err := rateRegions(testContext(), corpus, store, trueskill.DefaultConfig()); err != nil {
		t.Fatalf("rateRegions: %v", err)
	}
	ratings := store.Ratings("Europe")
	if len(ratings) != 2 {
		t.Fatalf("stored %d ratings, want 2", len(ratings))
	}
	if !(ratings["alpha"].Mu > ratings["bravo"].Mu) {
		t.Errorf("winner %v should outrank loser %v", ratings["alpha"].Mu, ratings["bravo"].Mu)
	}
}

func TestRateMatchFewerThanTwoRankable(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	cfg := trueskill.DefaultConfig()
	players := matchPlayers(10)
	normals := testNormals(t, matchPlayers(10, 5))

	if err := RateMatch(ctx, store, "Europe", normals, players, cfg); err != nil {
		t.Fatalf("RateMatch: %v", err)
	}
	if got := store.Ratings("Europe"); len(got) != 0 {
		t.Errorf("single rankable player should be no observation, stored %d ratings", len(got))
	}
}

func TestRateMatchDedupeFirstSeen(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	cfg := trueskill.DefaultConfig()

	// A reconnect produces a second record under the same name. Only the
	// first-seen record counts, leaving one rankable player and no update.
	players := []qwfs.Player{
		{Name: "alpha", Frags: 20, DamageGiven: 2000},
		{Name: "alpha", Frags: 3, DamageGiven: 300},
	}
	normals := testNormals(t, matchPlayers(20, 3))
	if err := RateMatch(ctx, store, "Europe", normals, players, cfg); err != nil {
		t.Fatalf("RateMatch: %v", err)
	}
	if got := store.Ratings("Europe"); len(got) != 0 {
		t.Errorf("deduped match should be no observation, stored %d ratings", len(got))
	}
}

func TestRateMatchUpdatesWinnerAndLoser(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	cfg := trueskill.DefaultConfig()
	players := matchPlayers(25, 5)
	normals := testNormals(t, players)

	if err := RateMatch(ctx, store, "Europe", normals, players, cfg); err != nil {
		t.Fatalf("RateMatch: %v", err)
	}
	ratings := store.Ratings("Europe")
	if len(ratings) != 2 {
		t.Fatalf("stored %d ratings, want 2", len(ratings))
	}
	winner, loser := ratings["alpha"], ratings["bravo"]
	if !(winner.Mu > cfg.Mu) {
		t.Errorf("winner mean %v should rise above prior %v", winner.Mu, cfg.Mu)
	}
	if !(loser.Mu < cfg.Mu) {
		t.Errorf("loser mean %v should fall below prior %v", loser.Mu, cfg.Mu)
	}
}

func TestRateMatchOrderSensitivity(t *testing.T) {
	ctx := context.Background()
	cfg := trueskill.DefaultConfig()
	m1 := matchPlayers(25, 5)
	m2 := matchPlayers(5, 25)
	normals := testNormals(t, m1)

	// The chain is sequential: applying the same two matches in opposite
	// orders must not converge to the same beliefs, because the second match
	// conditions on the first match's posteriors.
	a := NewMemoryStore()
	for _, m := range [][]qwfs.Player{m1, m2} {
		if err := RateMatch(ctx, a, "Europe", normals, m, cfg); err != nil {
			t.Fatalf("RateMatch: %v", err)
		}
	}
	b := NewMemoryStore()
	for _, m := range [][]qwfs.Player{m2, m1} {
		if err := RateMatch(ctx, b, "Europe", normals, m, cfg); err != nil {
			t.Fatalf("RateMatch: %v", err)
		}
	}
	if a.Ratings("Europe")["alpha"] == b.Ratings("Europe")["alpha"] {
		t.Error("swapping match order should change the final belief")
	}
}

func TestRateMatchRetryAfterFailedBatch(t *testing.T) {
	ctx := context.Background()
	cfg := trueskill.DefaultConfig()
	players := matchPlayers(25, 5)
	normals := testNormals(t, players)

	failed := NewMemoryStore()
	failed.PutErr = errors.New("deadline exceeded")
	if err := RateMatch(ctx, failed, "Europe", normals, players, cfg); err == nil {
		t.Fatal("RateMatch should surface the batch write failure")
	}
	if got := failed.Ratings("Europe"); len(got) != 0 {
		t.Fatalf("failed batch must leave no partial state, found %d ratings", len(got))
	}

	// Retrying against the untouched priors must land on the same posteriors
	// a store that never failed would hold.
	if err := RateMatch(ctx, failed, "Europe", normals, players, cfg); err != nil {
		t.Fatalf("retry: %v", err)
	}
	clean := NewMemoryStore()
	if err := RateMatch(ctx, clean, "Europe", normals, players, cfg); err != nil {
		t.Fatalf("RateMatch: %v", err)
	}
	got, want := failed.Ratings("Europe"), clean.Ratings("Europe")
	for name, r := range want {
		if got[name] != r {
			t.Errorf("player '%s': retried belief %+v, want %+v", name, got[name], r)
		}
	}
}

func TestMemoryStoreFallback(t *testing.T) {
	ctx := context.Background()
	durable := NewMemoryStore()
	if err := durable.PutRatings(ctx, "Europe", []qwfs.PlayerRating{
		{Name: "alpha", Rating: trueskill.Rating{Mu: 1700, Sigma: 120}},
	}); err != nil {
		t.Fatalf("PutRatings: %v", err)
	}

	overlay := NewMemoryStore()
	overlay.Fallback = durable

	r, found, err := overlay.GetRating(ctx, "Europe", "alpha")
	if err != nil {
		t.Fatalf("GetRating: %v", err)
	}
	if !found || r.Mu != 1700 {
		t.Errorf("miss should fall through to the durable store, got %+v found=%v", r, found)
	}

	// Writes stay in the overlay.
	if err := overlay.PutRatings(ctx, "Europe", []qwfs.PlayerRating{
		{Name: "alpha", Rating: trueskill.Rating{Mu: 1800, Sigma: 110}},
	}); err != nil {
		t.Fatalf("PutRatings: %v", err)
	}
	if r, _, _ := durable.GetRating(ctx, "Europe", "alpha"); r.Mu != 1700 {
		t.Errorf("durable store mutated by an overlay write: %+v", r)
	}
	if r, _, _ := overlay.GetRating(ctx, "Europe", "alpha"); r.Mu != 1800 {
		t.Errorf("overlay should serve its own write, got %+v", r)
	}
}
