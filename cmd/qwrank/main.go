package main

import "github.com/alecthomas/kong"

type globalCmd struct {
	ProjectID string `help:"GCP project ID." env:"GCP_PROJECT" required:""`
	DryRun    bool   `help:"Print database writes to log and exit without writing." xor:"Force,DryRun"`
	Force     bool   `help:"Force overwriting or deleting data in database." xor:"Force,DryRun"`
}

var CLI struct {
	globalCmd

	Servers struct {
		Update updateServersCmd `cmd:"" help:"Refresh the server table from the public server list."`
	} `cmd:""`

	Matches struct {
		Update updateMatchesCmd `cmd:"" help:"Ingest new matches and player statistics from the hub."`
	} `cmd:""`

	Normals struct {
		Update updateNormalsCmd `cmd:"" help:"Recompute per-region statistic normals from the full match history."`
	} `cmd:""`

	Ratings struct {
		Update updateRatingsCmd `cmd:"" help:"Rate unprocessed matches in chronological order."`
		Ls     lsRatingsCmd     `cmd:"" help:"List current leaderboards."`
		Versus versusCmd        `cmd:"" help:"Show head-to-head win probabilities between players."`
		Reset  resetRatingsCmd  `cmd:"" help:"Delete persisted ratings."`
	} `cmd:""`

	Export exportCmd `cmd:"" help:"Export current ratings as JSON (and optionally xlsx) for the website."`
}

func main() {
	ctx := kong.Parse(&CLI)
	err := ctx.Run(&CLI.globalCmd)
	ctx.FatalIfErrorf(err)
}
