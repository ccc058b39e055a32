package exportratings

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"math"
	"net/url"
	"os"
	"sort"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	qwfs "github.com/qwstats/qwrank/internal/firestore"
	"github.com/xuri/excelize/v2"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// ratingEntry is one exported leaderboard row. It marshals as the legacy
// array form [name, mu, sigma, matches].
type ratingEntry struct {
	Name    string
	Mu      float64
	Sigma   float64
	Matches int
}

func (e ratingEntry) MarshalJSON() ([]byte, error) {
	return json.Marshal([]interface{}{e.Name, int(math.Round(e.Mu)), int(math.Round(e.Sigma)), e.Matches})
}

type regionExport struct {
	Name    string        `json:"name"`
	Ratings []ratingEntry `json:"ratings"`
}

type export struct {
	Timestamp string         `json:"timestamp"`
	Regions   []regionExport `json:"regions"`
}

// ExportRatings writes the current ratings of every region as JSON for the
// web front end, and optionally as an xlsx workbook, one sheet per region.
func ExportRatings(ctx *Context) error {
	regions, err := gatherRegions(ctx)
	if err != nil {
		return fmt.Errorf("ExportRatings: %w", err)
	}

	out := export{
		Timestamp: time.Now().UTC().Format("2006-01-02T15:04:05Z"),
		Regions:   regions,
	}

	if ctx.DryRun {
		log.Printf("DRY RUN: would export %d regions to '%s'", len(out.Regions), ctx.Out)
		return nil
	}

	w, err := openFileOrGSWriter(ctx, ctx.Out)
	if err != nil {
		return fmt.Errorf("ExportRatings: failed to open '%s': %w", ctx.Out, err)
	}
	enc := json.NewEncoder(w)
	if err := enc.Encode(&out); err != nil {
		w.Close()
		return fmt.Errorf("ExportRatings: failed to encode: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("ExportRatings: failed to close '%s': %w", ctx.Out, err)
	}
	log.Printf("exported %d regions to '%s'", len(out.Regions), ctx.Out)

	if ctx.XLSX != "" {
		if err := writeWorkbook(ctx.XLSX, out.Regions); err != nil {
			return fmt.Errorf("ExportRatings: %w", err)
		}
		log.Printf("wrote workbook '%s'", ctx.XLSX)
	}
	return nil
}

// gatherRegions assembles the per-region leaderboards, highest mean skill
// first, with per-player match counts from the player corpus.
func gatherRegions(ctx *Context) ([]regionExport, error) {
	store := qwfs.RatingStore{Client: ctx.FirestoreClient}
	var regionNames []string
	var err error
	if ctx.Region != "" {
		regionNames = []string{ctx.Region}
	} else {
		regionNames, err = store.ListRatedRegions(ctx)
		if err != nil {
			return nil, err
		}
		slices.Sort(regionNames)
	}

	regions := make([]regionExport, 0, len(regionNames))
	for _, name := range regionNames {
		ratings, err := store.ListRatings(ctx, name)
		if err != nil {
			return nil, err
		}
		counts, err := matchCounts(ctx, name)
		if err != nil {
			return nil, err
		}
		entries := make([]ratingEntry, len(ratings))
		for i, r := range ratings {
			entries[i] = ratingEntry{Name: r.Name, Mu: r.Mu, Sigma: r.Sigma, Matches: counts[r.Name]}
		}
		sort.Slice(entries, func(i, j int) bool { return entries[i].Mu > entries[j].Mu })
		regions = append(regions, regionExport{Name: name, Ratings: entries})
	}
	return regions, nil
}

func matchCounts(ctx *Context, region string) (map[string]int, error) {
	players, err := qwfs.GetRegionPlayers(ctx, ctx.FirestoreClient, region)
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int)
	for _, p := range players {
		counts[p.Name]++
	}
	return counts, nil
}

func writeWorkbook(path string, regions []regionExport) error {
	f := excelize.NewFile()
	defer f.Close()
	for i, region := range regions {
		sheet := region.Name
		if i == 0 {
			f.SetSheetName("Sheet1", sheet)
		} else {
			if _, err := f.NewSheet(sheet); err != nil {
				return fmt.Errorf("writeWorkbook: unable to create sheet '%s': %w", sheet, err)
			}
		}
		f.SetSheetRow(sheet, "A1", &[]interface{}{"Player", "Rating", "Uncertainty", "Matches"})
		for row, e := range region.Ratings {
			cell, err := excelize.CoordinatesToCellName(1, row+2)
			if err != nil {
				return fmt.Errorf("writeWorkbook: %w", err)
			}
			f.SetSheetRow(sheet, cell, &[]interface{}{e.Name, e.Mu, e.Sigma, e.Matches})
		}
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("writeWorkbook: unable to save '%s': %w", path, err)
	}
	return nil
}

func openFileOrGSWriter(ctx context.Context, f string) (io.WriteCloser, error) {
	u, err := url.Parse(f)
	if err != nil {
		return nil, err
	}
	switch u.Scheme {
	case "gs":
		gsClient, err := storage.NewClient(ctx)
		if err != nil {
			return nil, err
		}
		bucket := gsClient.Bucket(u.Host)
		obj := bucket.Object(strings.Trim(u.Path, "/"))
		return obj.NewWriter(ctx), nil

	case "file":
		fallthrough
	case "":
		return os.Create(u.Path)

	default:
		return nil, fmt.Errorf("unable to determine how to open '%s'", f)
	}
}

// sortedKeys is a small convenience for deterministic map iteration in logs
// and tables.
func sortedKeys[V any](m map[string]V) []string {
	keys := maps.Keys(m)
	slices.Sort(keys)
	return keys
}
