package exportratings

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	qwfs "github.com/qwstats/qwrank/internal/firestore"
	"github.com/qwstats/qwrank/internal/trueskill"
)

// LsRatings prints the current leaderboards to stdout.
func LsRatings(ctx *Context) error {
	regions, err := gatherRegions(ctx)
	if err != nil {
		return fmt.Errorf("LsRatings: %w", err)
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Region", "Rank", "Player", "Rating", "±", "Matches"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, AutoMerge: true},
	})
	for _, region := range regions {
		for rank, e := range region.Ratings {
			t.AppendRow(table.Row{region.Name, rank + 1, e.Name, fmt.Sprintf("%0.0f", e.Mu), fmt.Sprintf("%0.0f", e.Sigma), e.Matches})
		}
		t.AppendSeparator()
	}
	t.SetStyle(table.StyleLight)
	t.Render()
	return nil
}

// VersusRatings prints the head-to-head win probabilities between named
// players of one region under the current beliefs.
func VersusRatings(ctx *Context, names []string) error {
	if ctx.Region == "" {
		return fmt.Errorf("VersusRatings: a region is required")
	}
	if len(names) < 2 {
		return fmt.Errorf("VersusRatings: at least two player names are required")
	}
	store := qwfs.RatingStore{Client: ctx.FirestoreClient}
	cfg := trueskill.DefaultConfig()

	beliefs := make(map[string]trueskill.Rating, len(names))
	for _, name := range names {
		r, found, err := store.GetRating(ctx, ctx.Region, name)
		if err != nil {
			return fmt.Errorf("VersusRatings: %w", err)
		}
		if !found {
			return fmt.Errorf("VersusRatings: player '%s' has no rating in region '%s'", name, ctx.Region)
		}
		beliefs[name] = r
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Player", "Opponent", "Win Prob."})
	for _, a := range sortedKeys(beliefs) {
		for _, b := range sortedKeys(beliefs) {
			if a == b {
				continue
			}
			t.AppendRow(table.Row{a, b, fmt.Sprintf("%0.4f", trueskill.WinProbability(beliefs[a], beliefs[b], cfg))})
		}
	}
	t.SetStyle(table.StyleLight)
	t.Render()
	return nil
}
