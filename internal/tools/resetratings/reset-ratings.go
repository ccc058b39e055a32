package resetratings

import (
	"fmt"
	"log"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	qwfs "github.com/qwstats/qwrank/internal/firestore"
)

// ResetRatings deletes persisted skill beliefs so the next rating pass starts
// every player from the default prior. Beliefs are never deleted by the
// engine itself, so this asks for confirmation unless forced.
func ResetRatings(ctx *Context) error {
	store := qwfs.RatingStore{Client: ctx.FirestoreClient}

	var regions []string
	if ctx.Region != "" {
		regions = []string{ctx.Region}
	} else {
		var err error
		regions, err = store.ListRatedRegions(ctx)
		if err != nil {
			return fmt.Errorf("ResetRatings: %w", err)
		}
	}
	if len(regions) == 0 {
		log.Print("no rated regions: nothing to reset")
		return nil
	}

	if ctx.DryRun {
		log.Printf("DRY RUN: would delete all ratings in regions: %s", strings.Join(regions, ", "))
		return nil
	}

	if !ctx.Force {
		ok := false
		prompt := &survey.Confirm{
			Message: fmt.Sprintf("Permanently delete all ratings in regions %s?", strings.Join(regions, ", ")),
		}
		if err := survey.AskOne(prompt, &ok); err != nil {
			return fmt.Errorf("ResetRatings: %w", err)
		}
		if !ok {
			log.Print("reset aborted")
			return nil
		}
	}

	for _, region := range regions {
		n, err := store.DeleteRegionRatings(ctx, region)
		if err != nil {
			return fmt.Errorf("ResetRatings: %w", err)
		}
		log.Printf("region '%s': deleted %d ratings", region, n)
	}
	return nil
}
