package updateservers

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

	// Timeout bounds each server's UDP status query.
	Timeout time.Duration
}

func NewContext(ctx context.Context) *Context {
	return &Context{Context: ctx}
}
