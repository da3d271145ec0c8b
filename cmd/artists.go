package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var artistsCmd = &cobra.Command{
	Use:   "artists",
	Short: "List the artists in the catalog",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		for _, a := range engine.AvailableArtists() {
			fmt.Fprintln(out, a)
		}
	},
}

func init() {
	rootCmd.AddCommand(artistsCmd)
}
