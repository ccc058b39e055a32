package updateratings

import (
	"context"
	"time"

	fs "cloud.google.com/go/firestore"
)

type Context struct {
	context.Context

	DryRun          bool
	Force           bool
	FirestoreClient *fs.Client

	// Region restricts the pass to one region. Empty means every known
	// region; regions with no matches after the cutoff are skipped.
	Region string

	// After is the cutoff: only matches played strictly after it are rated.
	After time.Time

	NoProgress bool
}

func NewContext(ctx context.Context) *Context {
	return &Context{Context: ctx}
}
