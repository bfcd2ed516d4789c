package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"mommy/src/config"
	"mommy/src/errors"
	"mommy/src/moodstate"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent tracked runs",
	Long: `Lists the most recent wrapped-command runs from the local mood
database. Requires mood tracking to be enabled (MOOD_STATE=1).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		if !cfg.MoodState {
			return errors.ErrTrackingDisabled
		}

		store, err := moodstate.Open(config.MoodDBPath())
		if err != nil {
			return err
		}
		defer store.Close()

		runs, err := store.Recent(historyLimit)
		if err != nil {
			return err
		}
		if len(runs) == 0 {
			fmt.Println("No runs recorded yet~")
			return nil
		}

		for _, r := range runs {
			outcome := fmt.Sprintf("failed (%d)", r.ExitCode)
			if r.ExitCode == 0 {
				outcome = "succeeded"
			}
			fmt.Printf("[%s] %s/%s %s\n",
				r.Timestamp.Local().Format("2006-01-02 15:04"),
				r.Role, r.Mood, outcome)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "maximum runs to show")
	rootCmd.AddCommand(historyCmd)
}
