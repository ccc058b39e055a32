package updateratings

import (
	"context"
	"sync"

	qwfs "github.com/qwstats/qwrank/internal/firestore"
	"github.com/qwstats/qwrank/internal/trueskill"
)

// Store is what the rating pass needs from a rating store: single-belief
// reads and atomic per-match batch writes. qwfs.RatingStore is the durable
// implementation; MemoryStore backs tests and dry runs.
type Store interface {
	GetRating(ctx context.Context, region, name string) (trueskill.Rating, bool, error)
	PutRatings(ctx context.Context, region string, ratings []qwfs.PlayerRating) error
}

// MemoryStore is an in-memory Store. When Fallback is set, reads miss through
// to it while writes stay in memory, which lets a dry run walk the full match
// chain without touching the durable store.
type MemoryStore struct {
	mu      sync.Mutex
	ratings map[string]map[string]trueskill.Rating

	Fallback Store

	// PutErr, when non-nil, makes the next PutRatings fail without applying
	// anything. Tests use it to check that a failed batch is retry-safe.
	PutErr error
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{ratings: make(map[string]map[string]trueskill.Rating)}
}

func (s *MemoryStore) GetRating(ctx context.Context, region, name string) (trueskill.Rating, bool, error) {
	s.mu.Lock()
	r, ok := s.ratings[region][name]
	s.mu.Unlock()
	if ok {
		return r, true, nil
	}
	if s.Fallback != nil {
		return s.Fallback.GetRating(ctx, region, name)
	}
	return trueskill.Rating{}, false, nil
}

func (s *MemoryStore) PutRatings(ctx context.Context, region string, ratings []qwfs.PlayerRating) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.PutErr != nil {
		err := s.PutErr
		s.PutErr = nil
		return err
	}
	regional, ok := s.ratings[region]
	if !ok {
		regional = make(map[string]trueskill.Rating)
		s.ratings[region] = regional
	}
	for _, pr := range ratings {
		regional[pr.Name] = pr.Rating
	}
	return nil
}

// Ratings returns a copy of the beliefs currently held for a region.
func (s *MemoryStore) Ratings(region string) map[string]trueskill.Rating {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]trueskill.Rating, len(s.ratings[region]))
	for name, r := range s.ratings[region] {
		out[name] = r
	}
	return out
}
