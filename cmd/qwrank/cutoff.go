package main

import (
	"context"
	"fmt"
	"time"

	fs "cloud.google.com/go/firestore"
	qwfs "github.com/qwstats/qwrank/internal/firestore"
)

// resolveAfter determines the cutoff for an update. An explicit value is
// parsed as RFC 3339 or as a bare date; otherwise the cutoff is the latest
// ingested match date, or the epoch when nothing has been ingested yet.
func resolveAfter(ctx context.Context, client *fs.Client, after string) (time.Time, error) {
	if after != "" {
		for _, layout := range []string{time.RFC3339, "2006-01-02"} {
			if t, err := time.Parse(layout, after); err == nil {
				return t, nil
			}
		}
		return time.Time{}, fmt.Errorf("unable to parse cutoff date '%s'", after)
	}
	latest, found, err := qwfs.GetLatestMatchDate(ctx, client)
	if err != nil {
		return time.Time{}, err
	}
	if !found {
		return time.Unix(0, 0).UTC(), nil
	}
	return latest, nil
}
