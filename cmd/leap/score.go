package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/vanara-leap/internal/games/quest"
	"github.com/vovakirdan/vanara-leap/internal/storage"
)

var flagReset bool

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Show the high score",
	Long: `Display the best karmic favor reached in a run that ended in defeat.

Examples:
  leap score
  leap score --reset
  leap score --db ./scores.db`,
	Args: cobra.NoArgs,
	Run:  runScore,
}

func init() {
	scoreCmd.Flags().BoolVar(&flagReset, "reset", false, "Clear the stored high score")
}

func runScore(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	exitOnError("opening scores database", err)
	defer store.Close()

	if flagReset {
		exitOnError("clearing high score", store.ClearHighScore(quest.HighScoreKey))
		fmt.Println("High score cleared.")
		return
	}

	high, err := store.HighScore(quest.HighScoreKey)
	exitOnError("retrieving high score", err)

	if high == 0 {
		fmt.Println("No high score recorded yet.")
		fmt.Println()
		fmt.Println("Play 'leap play' to set the first one!")
		return
	}
	fmt.Printf("High score: %07d\n", high)
}
