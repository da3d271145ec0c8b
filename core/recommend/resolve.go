package recommend

import (
	"sort"

	"MoodFM/catalog"
)

// ResolveArtists maps requested names to canonical catalog names. Matching
// ignores case and surrounding whitespace. Names the catalog does not know
// are dropped, duplicates collapse, and the result follows catalog order.
func ResolveArtists(requested []string, cat *catalog.Catalog) []string {
	seen := make(map[string]struct{}, len(requested))
	resolved := make([]string, 0, len(requested))

	for _, name := range requested {
		canonical, ok := cat.Lookup(name)
		if !ok {
			continue
		}
		if _, dup := seen[canonical]; dup {
			continue
		}
		seen[canonical] = struct{}{}
		resolved = append(resolved, canonical)
	}

	sort.Slice(resolved, func(i, j int) bool {
		return cat.Position(resolved[i]) < cat.Position(resolved[j])
	})
	return resolved
}
