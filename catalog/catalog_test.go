package catalog

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"MoodFM/model"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		entries []Entry
		wantErr error
		wantLen int
	}{
		{
			name: "builds catalog",
			entries: []Entry{
				{Artist: "A", Tracks: []model.TrackRecord{{Name: "a1", Valence: 0.1}}},
				{Artist: "B", Tracks: []model.TrackRecord{{Name: "b1", Valence: 1}}},
			},
			wantLen: 2,
		},
		{
			name:    "empty catalog is allowed",
			entries: nil,
			wantLen: 0,
		},
		{
			name:    "rejects blank artist",
			entries: []Entry{{Artist: "   "}},
			wantErr: ErrEmptyArtist,
		},
		{
			name:    "rejects exact duplicate",
			entries: []Entry{{Artist: "Adele"}, {Artist: "Adele"}},
			wantErr: ErrDuplicateArtist,
		},
		{
			name:    "rejects duplicate after folding",
			entries: []Entry{{Artist: "Adele"}, {Artist: " ADELE "}},
			wantErr: ErrDuplicateArtist,
		},
		{
			name:    "rejects valence above one",
			entries: []Entry{{Artist: "A", Tracks: []model.TrackRecord{{Name: "x", Valence: 1.2}}}},
			wantErr: ErrInvalidValence,
		},
		{
			name:    "rejects negative valence",
			entries: []Entry{{Artist: "A", Tracks: []model.TrackRecord{{Name: "x", Valence: -0.1}}}},
			wantErr: ErrInvalidValence,
		},
		{
			name:    "rejects NaN valence",
			entries: []Entry{{Artist: "A", Tracks: []model.TrackRecord{{Name: "x", Valence: math.NaN()}}}},
			wantErr: ErrInvalidValence,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			c, err := New(tc.entries)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("expected error %v, got %v", tc.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if c.Len() != tc.wantLen {
				t.Fatalf("expected %d artists, got %d", tc.wantLen, c.Len())
			}
		})
	}
}

func TestCatalog_IsolatedFromInput(t *testing.T) {
	tracks := []model.TrackRecord{{Name: "a1", Valence: 0.5}}
	c, err := New([]Entry{{Artist: "A", Tracks: tracks}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tracks[0].Name = "mutated"
	got, _ := c.Tracks("A")
	if got[0].Name != "a1" {
		t.Fatalf("catalog shares storage with caller input: %+v", got)
	}

	got[0].Name = "mutated again"
	again, _ := c.Tracks("A")
	if again[0].Name != "a1" {
		t.Fatalf("Tracks leaks internal storage: %+v", again)
	}
}

func TestCatalog_ArtistsOrderAndIdempotence(t *testing.T) {
	c, err := New([]Entry{{Artist: "Zed"}, {Artist: "Abba"}, {Artist: "Moby"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"Zed", "Abba", "Moby"}
	first := c.Artists()
	second := c.Artists()
	if !reflect.DeepEqual(first, want) {
		t.Fatalf("expected %v, got %v", want, first)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("Artists not idempotent: %v vs %v", first, second)
	}

	first[0] = "changed"
	if c.Artists()[0] != "Zed" {
		t.Fatal("Artists leaks internal storage")
	}

	if c.Position("Abba") != 1 || c.Position("Nobody") != -1 {
		t.Fatalf("unexpected positions: Abba=%d Nobody=%d", c.Position("Abba"), c.Position("Nobody"))
	}
}

func TestCatalog_Lookup(t *testing.T) {
	c, err := New([]Entry{{Artist: "Bruno Mars"}, {Artist: "Dua Lipa"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		input  string
		want   string
		wantOK bool
	}{
		{input: "Bruno Mars", want: "Bruno Mars", wantOK: true},
		{input: "bruno mars", want: "Bruno Mars", wantOK: true},
		{input: "  BRUNO MARS  ", want: "Bruno Mars", wantOK: true},
		{input: "dua lipa", want: "Dua Lipa", wantOK: true},
		{input: "Totally Unknown Artist", wantOK: false},
		{input: "", wantOK: false},
	}

	for _, tc := range tests {
		got, ok := c.Lookup(tc.input)
		if ok != tc.wantOK || got != tc.want {
			t.Fatalf("Lookup(%q) = (%q, %v), want (%q, %v)", tc.input, got, ok, tc.want, tc.wantOK)
		}
	}

	if _, ok := c.Tracks("bruno mars"); ok {
		t.Fatal("Tracks should only accept canonical names")
	}
}

func TestDefault(t *testing.T) {
	c, err := Default()
	if err != nil {
		t.Fatalf("default catalog failed to load: %v", err)
	}
	if c.Len() == 0 {
		t.Fatal("default catalog is empty")
	}

	tracks, ok := c.Tracks("Bruno Mars")
	if !ok {
		t.Fatal("default catalog is missing Bruno Mars")
	}
	found := map[string]float64{}
	for _, tr := range tracks {
		found[tr.Name] = tr.Valence
	}
	if v, ok := found["Grenade"]; !ok || v != 0.3 {
		t.Fatalf("expected Grenade with valence 0.3, got %v (present=%v)", v, ok)
	}
	if v, ok := found["When I Was Your Man"]; !ok || v < 0.2 || v > 0.3 {
		t.Fatalf("expected When I Was Your Man with valence in [0.2,0.3], got %v (present=%v)", v, ok)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	good := filepath.Join(dir, "good.json")
	if err := os.WriteFile(good, []byte(`[{"artist":"Solo","tracks":[{"name":"One","valence":0.9}]}]`), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	c, err := Load(good)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := c.Artists(); !reflect.DeepEqual(got, []string{"Solo"}) {
		t.Fatalf("unexpected artists %v", got)
	}

	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte(`{"not":"an array"}`), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	if _, err := Load(bad); err == nil {
		t.Fatal("expected decode error for malformed catalog")
	}

	dup := filepath.Join(dir, "dup.json")
	if err := os.WriteFile(dup, []byte(`[{"artist":"X"},{"artist":"x"}]`), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	if _, err := Load(dup); !errors.Is(err, ErrDuplicateArtist) {
		t.Fatalf("expected ErrDuplicateArtist, got %v", err)
	}

	if _, err := Load(filepath.Join(dir, "missing.json")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}
