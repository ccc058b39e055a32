package updatematches

import (
	"context"
	"time"

	fs "cloud.google.com/go/firestore"
	"github.com/qwstats/qwrank/internal/hub"
)

type Context struct {
	context.Context

	DryRun          bool
	Force           bool
	FirestoreClient *fs.Client
	Hub             *hub.Client

	// After is the cutoff: only matches recorded strictly after it are
	// fetched from the hub.
	After time.Time

	NoProgress bool
}

func NewContext(ctx context.Context) *Context {
	return &Context{Context: ctx}
}
