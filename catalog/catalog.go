package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"MoodFM/core/utils"
	"MoodFM/model"

	"github.com/goccy/go-json"
)

//go:embed data/catalog.json
var defaultCatalogJSON []byte

var (
	ErrEmptyArtist     = errors.New("catalog: empty artist name")
	ErrDuplicateArtist = errors.New("catalog: duplicate artist")
	ErrInvalidValence  = errors.New("catalog: valence out of range [0,1]")
)

// Entry is one artist and its tracks, in the order they should be iterated.
type Entry struct {
	Artist string              `json:"artist"`
	Tracks []model.TrackRecord `json:"tracks"`
}

// Catalog is an immutable artist -> tracks mapping. It is safe to share
// between goroutines; nothing mutates it after New returns.
type Catalog struct {
	entries  []Entry
	byArtist map[string]int    // canonical name -> position in entries
	index    map[string]string // normalized name -> canonical name
}

// New builds a catalog from entries, keeping their order. Artist names must
// be unique even after case and whitespace folding.
func New(entries []Entry) (*Catalog, error) {
	c := &Catalog{
		entries:  make([]Entry, 0, len(entries)),
		byArtist: make(map[string]int, len(entries)),
		index:    make(map[string]string, len(entries)),
	}

	for _, e := range entries {
		key := utils.NormalizeKey(e.Artist)
		if key == "" {
			return nil, ErrEmptyArtist
		}
		if existing, ok := c.index[key]; ok {
			return nil, fmt.Errorf("%w: %q collides with %q", ErrDuplicateArtist, e.Artist, existing)
		}
		for _, t := range e.Tracks {
			if !(t.Valence >= 0 && t.Valence <= 1) {
				return nil, fmt.Errorf("%w: %s - %s has %v", ErrInvalidValence, e.Artist, t.Name, t.Valence)
			}
		}

		tracks := make([]model.TrackRecord, len(e.Tracks))
		copy(tracks, e.Tracks)

		c.byArtist[e.Artist] = len(c.entries)
		c.index[key] = e.Artist
		c.entries = append(c.entries, Entry{Artist: e.Artist, Tracks: tracks})
	}

	return c, nil
}

// Parse decodes a JSON array of entries and builds a catalog from it.
func Parse(data []byte) (*Catalog, error) {
	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}
	return New(entries)
}

// Load reads a catalog file in the same format as the embedded one.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog %s: %w", path, err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return c, nil
}

// Default returns the catalog shipped with the binary.
func Default() (*Catalog, error) {
	return Parse(defaultCatalogJSON)
}

// Artists returns the canonical artist names in catalog order.
func (c *Catalog) Artists() []string {
	out := make([]string, len(c.entries))
	for i, e := range c.entries {
		out[i] = e.Artist
	}
	return out
}

// Tracks returns a copy of the artist's tracks. The name must be canonical.
func (c *Catalog) Tracks(artist string) ([]model.TrackRecord, bool) {
	i, ok := c.byArtist[artist]
	if !ok {
		return nil, false
	}
	tracks := make([]model.TrackRecord, len(c.entries[i].Tracks))
	copy(tracks, c.entries[i].Tracks)
	return tracks, true
}

// Lookup resolves a user-supplied artist name to its canonical form,
// ignoring case and surrounding whitespace.
func (c *Catalog) Lookup(name string) (string, bool) {
	canonical, ok := c.index[utils.NormalizeKey(name)]
	return canonical, ok
}

// Position returns the artist's index in catalog order, or -1.
func (c *Catalog) Position(artist string) int {
	if i, ok := c.byArtist[artist]; ok {
		return i
	}
	return -1
}

// Len is the number of artists.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Each calls fn for every artist in catalog order. The tracks slice is
// shared with the catalog and must not be modified.
func (c *Catalog) Each(fn func(artist string, tracks []model.TrackRecord)) {
	for _, e := range c.entries {
		fn(e.Artist, e.Tracks)
	}
}
