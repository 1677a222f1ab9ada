package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/snek/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the board variants",
	Long:  `Shows every board variant from the configuration, with its size and step interval.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	variants := registry.List()

	fmt.Printf("Board variants (difficulty: %s):\n\n", cfg.Difficulty)

	maxIDLen := 2 // "ID" header
	for _, v := range variants {
		maxIDLen = max(maxIDLen, len(v.ID))
	}

	fmt.Printf("  %-*s  %-7s  %-6s  %s\n", maxIDLen, "ID", "Size", "Step", "Title")
	fmt.Printf("  %-*s  %-7s  %-6s  %s\n", maxIDLen, "--", "----", "----", "-----")

	for _, v := range variants {
		marker := ""
		if v.ID == cfg.DefaultVariant {
			marker = " (default)"
		}
		size := fmt.Sprintf("%dx%d", v.Settings.Columns, v.Settings.Rows)
		fmt.Printf("  %-*s  %-7s  %-6s  %s%s\n", maxIDLen, v.ID, size, v.Settings.Speed, v.Title, marker)
	}

	fmt.Println()
	fmt.Println("Run 'snek play <id>' to play a variant.")
}
