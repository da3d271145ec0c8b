package cmd

import (
	"fmt"

	"MoodFM/core/utils"
	"MoodFM/logger"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
)

var (
	artistsFlag string
	moodFlag    string
	jsonOutput  bool
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Recommend tracks for the given artists and mood",
	Long: `Recommend tracks by the given artists whose mood matches. When fewer than
three match, tracks with the same mood are sampled from the whole catalog.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		artists := utils.SplitList(artistsFlag)
		recs, err := engine.Recommend(artists, moodFlag)
		if err != nil {
			return err
		}
		logger.Info("recommend command served",
			logger.Strings("artists", artists),
			logger.String("mood", moodFlag),
			logger.Int("tracks", len(recs)))

		out := cmd.OutOrStdout()
		if jsonOutput {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			if err := enc.Encode(recs); err != nil {
				return fmt.Errorf("failed to encode recommendations: %w", err)
			}
			return nil
		}

		if len(recs) == 0 {
			fmt.Fprintln(out, "Sorry, no tracks found for your request.")
			return nil
		}
		printRecommendations(out, recs)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(recommendCmd)

	recommendCmd.Flags().StringVarP(&artistsFlag, "artists", "a", "", "comma-separated list of favorite artists")
	recommendCmd.Flags().StringVarP(&moodFlag, "mood", "m", "", "mood: happy, sad or neutral")
	recommendCmd.Flags().BoolVar(&jsonOutput, "json", false, "print recommendations as JSON")
	_ = recommendCmd.MarkFlagRequired("mood")

	recommendCmd.Example = `  # Sad tracks by Bruno Mars, topped up from the catalog
  moodfm recommend -a "Bruno Mars" -m sad

  # Several artists, JSON output, reproducible sampling
  moodfm recommend -a "Adele, Dua Lipa" -m happy --json --seed 42`
}
