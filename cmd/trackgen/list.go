package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/trackgen/internal/config"
	"github.com/vovakirdan/trackgen/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List track templates",
	Long:  `Shows every registered track template and the roughness presets.`,
	Args:  cobra.NoArgs,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	templates := registry.List()

	if len(templates) == 0 {
		fmt.Println("No templates available.")
		return
	}

	fmt.Println("Available templates:")
	fmt.Println()

	maxIDLen, maxTitleLen := 2, 5 // "ID", "Title" headers
	for _, t := range templates {
		maxIDLen = max(maxIDLen, len(t.ID))
		maxTitleLen = max(maxTitleLen, len(t.Title))
	}

	fmt.Printf("  %-*s  %-*s  %-8s  %s\n", maxIDLen, "ID", maxTitleLen, "Title", "Strategy", "Description")
	fmt.Printf("  %-*s  %-*s  %-8s  %s\n", maxIDLen, "--", maxTitleLen, "-----", "--------", "-----------")

	for _, t := range templates {
		fmt.Printf("  %-*s  %-*s  %-8s  %s\n", maxIDLen, t.ID, maxTitleLen, t.Title, t.Strategy, t.Description)
	}

	fmt.Println()
	fmt.Print("Presets:")
	for _, p := range config.Presets() {
		fmt.Printf(" %s (x%g)", p, config.ScaleForPreset(p))
	}
	fmt.Println()
	fmt.Println()
	fmt.Println("Run 'trackgen generate --template <id>' to generate a level.")
}
