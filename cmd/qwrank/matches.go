package main

import (
	"context"

	fs "cloud.google.com/go/firestore"
	"github.com/qwstats/qwrank/internal/hub"
	"github.com/qwstats/qwrank/internal/tools/updatematches"
)

type updateMatchesCmd struct {
	After      string `help:"Cutoff date (RFC 3339 or YYYY-MM-DD). Defaults to the latest ingested match date."`
	NoProgress bool   `help:"Do not display a progress bar."`
}

func (a *updateMatchesCmd) Run(g *globalCmd) error {
	ctx := updatematches.NewContext(context.Background())
	ctx.DryRun = g.DryRun
	ctx.Force = g.Force
	var err error
	ctx.FirestoreClient, err = fs.NewClient(ctx.Context, g.ProjectID)
	if err != nil {
		return err
	}
	ctx.Hub = hub.NewClient(nil)
	ctx.After, err = resolveAfter(ctx.Context, ctx.FirestoreClient, a.After)
	if err != nil {
		return err
	}
	ctx.NoProgress = a.NoProgress
	return updatematches.UpdateMatches(ctx)
}
