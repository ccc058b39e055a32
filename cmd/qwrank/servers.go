package main

import (
	"context"
	"time"

	fs "cloud.google.com/go/firestore"
	"github.com/qwstats/qwrank/internal/hub"
	"github.com/qwstats/qwrank/internal/tools/updateservers"
)

type updateServersCmd struct {
	Timeout time.Duration `help:"UDP status query timeout per server." default:"5s"`
}

func (a *updateServersCmd) Run(g *globalCmd) error {
	ctx := updateservers.NewContext(context.Background())
	ctx.DryRun = g.DryRun
	ctx.Force = g.Force
	var err error
	ctx.FirestoreClient, err = fs.NewClient(ctx.Context, g.ProjectID)
	if err != nil {
		return err
	}
	ctx.Hub = hub.NewClient(nil)
	ctx.Timeout = a.Timeout
	return updateservers.UpdateServers(ctx)
}
