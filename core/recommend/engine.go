package recommend

import (
	"errors"
	"math/rand"
	"sync"

	"MoodFM/catalog"
	"MoodFM/logger"
	"MoodFM/model"

	"github.com/google/uuid"
)

const (
	// minExact is the exact-pass count below which the fallback pass runs.
	minExact = 3
	// fallbackSize caps how many tracks the fallback pass samples.
	fallbackSize = 3
	// defaultSeed is used when no seed or source is supplied.
	defaultSeed = 42
)

// ErrNilCatalog is returned by NewEngine when no catalog is given.
var ErrNilCatalog = errors.New("recommend: nil catalog")

// Engine recommends tracks from a catalog by artist and mood.
// It is safe for concurrent use.
type Engine struct {
	catalog *catalog.Catalog

	// rng drives fallback sampling; rngMu serialises access to it.
	rng   *rand.Rand
	rngMu sync.Mutex
}

// Option configures an Engine.
type Option func(*Engine)

// WithSeed seeds the engine's private random source.
func WithSeed(seed int64) Option {
	return func(e *Engine) {
		e.rng = rand.New(rand.NewSource(seed)) //nolint:gosec // sampling, not security
	}
}

// WithRand hands the engine a random source. The engine takes ownership;
// callers must not use r concurrently afterwards.
func WithRand(r *rand.Rand) Option {
	return func(e *Engine) {
		if r != nil {
			e.rng = r
		}
	}
}

// NewEngine creates an engine over cat. Without WithSeed or WithRand the
// engine is seeded with a fixed value, so results are reproducible.
func NewEngine(cat *catalog.Catalog, opts ...Option) (*Engine, error) {
	if cat == nil {
		return nil, ErrNilCatalog
	}

	e := &Engine{catalog: cat}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewSource(defaultSeed)) //nolint:gosec // sampling, not security
	}
	return e, nil
}

// AvailableArtists returns the catalog's artist names in catalog order.
func (e *Engine) AvailableArtists() []string {
	return e.catalog.Artists()
}

// Recommend parses mood and returns matching tracks for artists.
// An unrecognised mood yields a model.InvalidMoodError. Unknown artists are
// ignored. An empty, non-nil slice means nothing in the catalog matched.
func (e *Engine) Recommend(artists []string, mood string) ([]model.RecommendedTrack, error) {
	m, err := model.ParseMood(mood)
	if err != nil {
		logger.Debug("rejected recommendation request",
			logger.String("mood", mood),
			logger.ErrorField(err))
		return nil, err
	}
	return e.RecommendMood(artists, m)
}

// RecommendMood is Recommend for an already parsed mood.
//
// Tracks by the resolved artists whose mood matches come first, in catalog
// order. If there are fewer than three of them, up to three tracks with the
// same mood are sampled from the whole catalog and appended. The sampled
// tracks are not deduplicated against the first group.
func (e *Engine) RecommendMood(artists []string, mood model.Mood) ([]model.RecommendedTrack, error) {
	if !mood.Valid() {
		return nil, model.InvalidMoodError{Input: string(mood)}
	}

	requestID := uuid.New().String()
	resolved := ResolveArtists(artists, e.catalog)

	results := e.exactPass(resolved, mood)
	exact := len(results)

	if exact < minExact {
		results = append(results, e.fallbackPass(mood)...)
	}

	logger.Debug("recommendation complete",
		logger.String("request_id", requestID),
		logger.String("mood", mood.String()),
		logger.Int("requested_artists", len(artists)),
		logger.Int("resolved_artists", len(resolved)),
		logger.Int("exact", exact),
		logger.Int("fallback", len(results)-exact))

	return results, nil
}

func (e *Engine) exactPass(artists []string, mood model.Mood) []model.RecommendedTrack {
	results := make([]model.RecommendedTrack, 0)
	for _, artist := range artists {
		tracks, ok := e.catalog.Tracks(artist)
		if !ok {
			continue
		}
		for _, t := range tracks {
			if trackMood := Classify(t.Valence); trackMood == mood {
				results = append(results, model.RecommendedTrack{
					Name:    t.Name,
					Artist:  artist,
					Mood:    trackMood,
					Valence: t.Valence,
				})
			}
		}
	}
	return results
}

func (e *Engine) fallbackPass(mood model.Mood) []model.RecommendedTrack {
	var candidates []model.TrackRecord
	// A track listed under several artists is credited to the first of them.
	owners := make(map[model.TrackRecord]string)

	e.catalog.Each(func(artist string, tracks []model.TrackRecord) {
		for _, t := range tracks {
			if _, seen := owners[t]; !seen {
				owners[t] = artist
			}
			if Classify(t.Valence) == mood {
				candidates = append(candidates, t)
			}
		}
	})

	n := fallbackSize
	if len(candidates) < n {
		n = len(candidates)
	}
	if n == 0 {
		return nil
	}

	picks := e.sample(len(candidates), n)
	results := make([]model.RecommendedTrack, 0, n)
	for _, i := range picks {
		t := candidates[i]
		results = append(results, model.RecommendedTrack{
			Name:    t.Name,
			Artist:  owners[t],
			Mood:    mood,
			Valence: t.Valence,
		})
	}
	return results
}

// sample draws k distinct indices from [0,n) uniformly at random.
func (e *Engine) sample(n, k int) []int {
	e.rngMu.Lock()
	defer e.rngMu.Unlock()
	return e.rng.Perm(n)[:k]
}
