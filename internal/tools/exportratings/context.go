package exportratings

import (
	"context"

	fs "cloud.google.com/go/firestore"
)

type Context struct {
	context.Context

	DryRun          bool
	Force           bool
	FirestoreClient *fs.Client

	// Out is the destination of the JSON export: a local path or a gs:// URL.
	Out string

	// XLSX, when non-empty, additionally writes a ratings workbook to this
	// local path.
	XLSX string

	// Region restricts listings to one region. Empty means all.
	Region string
}

func NewContext(ctx context.Context) *Context {
	return &Context{Context: ctx}
}
