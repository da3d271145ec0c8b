package model

import (
	"errors"
	"fmt"

	"MoodFM/core/utils"
)

// Mood is one of three labels derived from a track's valence.
type Mood string

const (
	MoodHappy   Mood = "happy"
	MoodSad     Mood = "sad"
	MoodNeutral Mood = "neutral"
)

// ErrInvalidMood is matched by every InvalidMoodError.
var ErrInvalidMood = errors.New("invalid mood")

// InvalidMoodError carries the rejected input.
type InvalidMoodError struct {
	Input string
}

func (e InvalidMoodError) Error() string {
	return fmt.Sprintf("invalid mood %q: must be one of happy, sad, neutral", e.Input)
}

func (e InvalidMoodError) Is(target error) bool {
	return target == ErrInvalidMood
}

// moodAliases maps normalized input to a mood. The Russian labels are the
// ones the first version of the tool asked for.
var moodAliases = map[string]Mood{
	"happy":       MoodHappy,
	"sad":         MoodSad,
	"neutral":     MoodNeutral,
	"веселое":     MoodHappy,
	"весёлое":     MoodHappy,
	"грустное":    MoodSad,
	"нейтральное": MoodNeutral,
}

// Moods returns the labels in display order.
func Moods() []Mood {
	return []Mood{MoodHappy, MoodSad, MoodNeutral}
}

// ParseMood is case and whitespace insensitive.
func ParseMood(s string) (Mood, error) {
	if m, ok := moodAliases[utils.NormalizeKey(s)]; ok {
		return m, nil
	}
	return "", InvalidMoodError{Input: s}
}

// Valid reports whether m is one of the three labels.
func (m Mood) Valid() bool {
	switch m {
	case MoodHappy, MoodSad, MoodNeutral:
		return true
	}
	return false
}

// Alternative is the mood suggested when a request for m comes back empty.
// Sad flips to happy; everything else, neutral included, falls back to sad.
func (m Mood) Alternative() Mood {
	if m == MoodSad {
		return MoodHappy
	}
	return MoodSad
}

func (m Mood) String() string {
	return string(m)
}
