package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/vanara-leap/internal/config"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the configured levels",
	Long: `Shows the campaign levels in play order, after loading and validating
the configuration. Use it to check a custom --config before playing.`,
	Args: cobra.NoArgs,
	Run:  runLevels,
}

func runLevels(cmd *cobra.Command, args []string) {
	cfg, err := loadQuest()
	exitOnError("loading config", err)

	source := config.ResolvePath(flagConfig)
	if source == "" {
		source = "embedded defaults"
	}
	fmt.Printf("Levels (%s):\n", source)
	fmt.Println()

	maxIDLen, maxNameLen := 2, 4 // "ID", "Name" headers
	for _, l := range cfg.Levels {
		maxIDLen = max(maxIDLen, len(l.ID))
		maxNameLen = max(maxNameLen, len(l.Name))
	}

	fmt.Printf("  %-3s  %-*s  %-*s  %6s  %s\n", "#", maxIDLen, "ID", maxNameLen, "Name", "Width", "Theme")
	fmt.Printf("  %-3s  %-*s  %-*s  %6s  %s\n", "-", maxIDLen, "--", maxNameLen, "----", "-----", "-----")
	for i, l := range cfg.Levels {
		fmt.Printf("  %-3d  %-*s  %-*s  %6.0f  %s\n", i+1, maxIDLen, l.ID, maxNameLen, l.Name, l.Width, l.Theme)
	}

	fmt.Println()
	fmt.Println("Run 'leap play --level <id>' to start at a level.")
}
