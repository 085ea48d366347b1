// leap is Vanara Leap, a side-scrolling platformer played in the terminal.
//
// Usage:
//
//	leap play               - Play the campaign
//	leap levels             - List the configured levels
//	leap score [--reset]    - Show or clear the high score
//	leap serve              - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>           - Set tick rate (default: 60)
//	--seed <value>         - Set RNG seed for reproducible level layouts
//	--db <path>            - Set database path (default: ~/.arcade/scores.db)
//	--config <path>        - Use a custom quest YAML
//	--difficulty <preset>  - easy, normal or hard
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the quest to register it
	_ "github.com/vovakirdan/vanara-leap/internal/games/quest"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "leap",
	Short: "Vanara Leap - carry the Sanjeevani herb across three realms",
	Long: `Vanara Leap is a terminal side-scrolling platformer. Run, leap and fly
as Hanuman through Kishkindha, the Vindhya Mountains and Lanka.

Available commands:
  play     - Play the campaign
  levels   - List the configured levels
  score    - Show or reset the high score
  serve    - Start SSH server for remote play

Examples:
  leap play
  leap play --difficulty hard --seed 42
  leap levels --config ./my-quest.yaml
  leap serve --ssh :2222 --metrics :9464`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second); physics is tuned for 60")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom quest config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(serveCmd)
}
