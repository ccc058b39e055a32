package main

import (
	"context"

	fs "cloud.google.com/go/firestore"
	"github.com/qwstats/qwrank/internal/tools/exportratings"
)

type exportCmd struct {
	Out  string `help:"Destination of the JSON export: a local path or a gs:// URL." default:"data.json"`
	Xlsx string `help:"Additionally write a ratings workbook to this local path."`
}

func (a *exportCmd) Run(g *globalCmd) error {
	ctx := exportratings.NewContext(context.Background())
	ctx.DryRun = g.DryRun
	ctx.Force = g.Force
	var err error
	ctx.FirestoreClient, err = fs.NewClient(ctx.Context, g.ProjectID)
	if err != nil {
		return err
	}
	ctx.Out = a.Out
	ctx.XLSX = a.Xlsx
	return exportratings.ExportRatings(ctx)
}
