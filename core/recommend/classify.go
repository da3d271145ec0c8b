package recommend

import "MoodFM/model"

// Fixed valence thresholds. Both bounds are exclusive, so 0.7 and 0.4 are neutral.
const (
	happyAbove = 0.7
	sadBelow   = 0.4
)

// Classify maps a valence score to a mood. It is total: NaN and values
// outside [0,1] still land in one of the three bands.
func Classify(valence float64) model.Mood {
	switch {
	case valence > happyAbove:
		return model.MoodHappy
	case valence < sadBelow:
		return model.MoodSad
	default:
		return model.MoodNeutral
	}
}
