package updatenormals

import (
	"context"

	fs "cloud.google.com/go/firestore"
)

type Context struct {
	context.Context

	DryRun          bool
	Force           bool
	FirestoreClient *fs.Client

	// Region restricts recomputation to one region. Empty means every known
	// region.
	Region string
}

func NewContext(ctx context.Context) *Context {
	return &Context{Context: ctx}
}
