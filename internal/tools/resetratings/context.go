package resetratings

import (
	"context"

	fs "cloud.google.com/go/firestore"
)

type Context struct {
	context.Context

	DryRun          bool
	Force           bool
	FirestoreClient *fs.Client

	// Region restricts the reset to one region. Empty means every rated
	// region.
	Region string
}

func NewContext(ctx context.Context) *Context {
	return &Context{Context: ctx}
}
