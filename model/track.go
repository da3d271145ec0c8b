package model

// TrackRecord is a single catalog entry. Mood is never stored on it; it is
// derived from Valence on demand.
type TrackRecord struct {
	Name    string  `json:"name"`
	Valence float64 `json:"valence"` // positivity in [0,1]
}

// RecommendedTrack is what the recommender hands back to its caller.
type RecommendedTrack struct {
	Name    string  `json:"name"`
	Artist  string  `json:"artist"` // canonical catalog name
	Mood    Mood    `json:"mood"`
	Valence float64 `json:"valence"`
}
