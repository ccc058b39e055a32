package main

import (
	"context"

	fs "cloud.google.com/go/firestore"
	"github.com/qwstats/qwrank/internal/tools/updatenormals"
)

type updateNormalsCmd struct {
	Region string `help:"Recompute normals for this region only."`
}

func (a *updateNormalsCmd) Run(g *globalCmd) error {
	ctx := updatenormals.NewContext(context.Background())
	ctx.DryRun = g.DryRun
	ctx.Force = g.Force
	var err error
	ctx.FirestoreClient, err = fs.NewClient(ctx.Context, g.ProjectID)
	if err != nil {
		return err
	}
	ctx.Region = a.Region
	return updatenormals.UpdateNormals(ctx)
}
