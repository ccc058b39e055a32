package main

import (
	"context"

	fs "cloud.google.com/go/firestore"
	"github.com/qwstats/qwrank/internal/tools/exportratings"
	"github.com/qwstats/qwrank/internal/tools/resetratings"
	"github.com/qwstats/qwrank/internal/tools/updateratings"
)

type updateRatingsCmd struct {
	After      string `help:"Cutoff date (RFC 3339 or YYYY-MM-DD). Defaults to the latest ingested match date."`
	Region     string `help:"Rate matches in this region only."`
	NoProgress bool   `help:"Do not display a progress bar."`
}

func (a *updateRatingsCmd) Run(g *globalCmd) error {
	ctx := updateratings.NewContext(context.Background())
	ctx.DryRun = g.DryRun
	ctx.Force = g.Force
	var err error
	ctx.FirestoreClient, err = fs.NewClient(ctx.Context, g.ProjectID)
	if err != nil {
		return err
	}
	ctx.After, err = resolveAfter(ctx.Context, ctx.FirestoreClient, a.After)
	if err != nil {
		return err
	}
	ctx.Region = a.Region
	ctx.NoProgress = a.NoProgress
	return updateratings.UpdateRatings(ctx)
}

type lsRatingsCmd struct {
	Region string `help:"List this region only."`
}

func (a *lsRatingsCmd) Run(g *globalCmd) error {
	ctx := exportratings.NewContext(context.Background())
	var err error
	ctx.FirestoreClient, err = fs.NewClient(ctx.Context, g.ProjectID)
	if err != nil {
		return err
	}
	ctx.Region = a.Region
	return exportratings.LsRatings(ctx)
}

type versusCmd struct {
	Region  string   `arg:"" help:"Region of the players."`
	Players []string `arg:"" help:"Two or more player names to compare."`
}

func (a *versusCmd) Run(g *globalCmd) error {
	ctx := exportratings.NewContext(context.Background())
	var err error
	ctx.FirestoreClient, err = fs.NewClient(ctx.Context, g.ProjectID)
	if err != nil {
		return err
	}
	ctx.Region = a.Region
	return exportratings.VersusRatings(ctx, a.Players)
}

type resetRatingsCmd struct {
	Region string `help:"Reset this region only."`
}

func (a *resetRatingsCmd) Run(g *globalCmd) error {
	ctx := resetratings.NewContext(context.Background())
	ctx.DryRun = g.DryRun
	ctx.Force = g.Force
	var err error
	ctx.FirestoreClient, err = fs.NewClient(ctx.Context, g.ProjectID)
	if err != nil {
		return err
	}
	ctx.Region = a.Region
	return resetratings.ResetRatings(ctx)
}
