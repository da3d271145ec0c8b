package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"MoodFM/core/utils"
	"MoodFM/model"
)

// maxAlternatives caps the suggestions shown for the alternative mood.
const maxAlternatives = 3

// recommender is the part of recommend.Engine the CLI needs.
type recommender interface {
	AvailableArtists() []string
	RecommendMood(artists []string, mood model.Mood) ([]model.RecommendedTrack, error)
}

// runSession runs one interactive round: read artists and a mood, print
// recommendations, and suggest the alternative mood if nothing matched.
func runSession(in io.Reader, out io.Writer, rec recommender) error {
	scanner := bufio.NewScanner(in)

	fmt.Fprintln(out, "🎵 MoodFM 🎵")
	fmt.Fprintln(out, "Available artists:", strings.Join(rec.AvailableArtists(), ", "))
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Enter your favorite artists, separated by commas (finish with an empty line):")

	var lines []string
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			break
		}
		lines = append(lines, line)
	}
	artists := utils.SplitList(strings.Join(lines, " "))

	fmt.Fprint(out, "What's your mood? (happy/sad/neutral): ")
	var moodInput string
	if scanner.Scan() {
		moodInput = scanner.Text()
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	fmt.Fprintln(out)

	mood, err := model.ParseMood(moodInput)
	if err != nil {
		fmt.Fprintln(out, "Error: mood must be one of happy, sad, neutral")
		return nil
	}

	recs, err := rec.RecommendMood(artists, mood)
	if err != nil {
		return err
	}
	if len(recs) > 0 {
		fmt.Fprintf(out, "\n🎧 Recommended tracks for %s mood:\n", mood)
		printRecommendations(out, recs)
		return nil
	}

	fmt.Fprintln(out, "Sorry, no tracks found for your request.")

	alt := mood.Alternative()
	altRecs, err := rec.RecommendMood(artists, alt)
	if err != nil {
		return err
	}
	if len(altRecs) > 0 {
		fmt.Fprintf(out, "\nMaybe a %s mood suits you?\n", alt)
		for i, t := range altRecs[:min(maxAlternatives, len(altRecs))] {
			fmt.Fprintf(out, "%d. %s - %s\n", i+1, t.Name, t.Artist)
		}
	}
	return nil
}

func printRecommendations(out io.Writer, recs []model.RecommendedTrack) {
	for i, t := range recs {
		fmt.Fprintf(out, "%d. %s - %s (mood: %s)\n", i+1, t.Name, t.Artist, t.Mood)
	}
}
