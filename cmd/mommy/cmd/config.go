package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"mommy/src/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect the resolved configuration",
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "Print every option after defaults, settings file, and environment are layered",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.Load()

		fmt.Printf("role:          %s\n", cfg.Role)
		fmt.Printf("env prefix:    %s\n", config.EnvPrefix(cfg.Role, cfg.IsSubcommand))
		fmt.Printf("settings file: %s\n", config.SettingsPath())
		fmt.Println()
		fmt.Printf("roles:         %s\n", strings.Join(cfg.Roles, " / "))
		fmt.Printf("pronouns:      %s\n", strings.Join(cfg.Pronouns, " / "))
		fmt.Printf("little:        %s\n", strings.Join(cfg.Little, " / "))
		fmt.Printf("emotes:        %s\n", strings.Join(cfg.Emotes, " / "))
		fmt.Printf("moods:         %s\n", strings.Join(cfg.Moods, " / "))
		fmt.Printf("colors:        %s\n", strings.Join(cfg.Colors, " / "))
		if cfg.ColorRGB != nil {
			fmt.Printf("color rgb:     %s\n", strings.Join(cfg.ColorRGB, " / "))
		}
		fmt.Printf("styles:        %s\n", joinCombos(cfg.Styles))
		fmt.Println()
		fmt.Printf("needy:         %v\n", cfg.Needy)
		fmt.Printf("only negative: %v\n", cfg.OnlyNegative)
		fmt.Printf("mood mixing:   %v\n", cfg.MoodMixing)
		fmt.Printf("mood tracking: %v\n", cfg.MoodState)
		if cfg.AffirmationsPath != "" {
			fmt.Printf("affirmations:  %s\n", cfg.AffirmationsPath)
		}
		if cfg.AliasesPath != "" {
			fmt.Printf("aliases:       %s\n", cfg.AliasesPath)
		}
	},
}

func joinCombos(combos [][]string) string {
	parts := make([]string, len(combos))
	for i, combo := range combos {
		parts[i] = strings.Join(combo, ",")
	}
	return strings.Join(parts, " / ")
}

func init() {
	configCmd.AddCommand(configListCmd)
	rootCmd.AddCommand(configCmd)
}
