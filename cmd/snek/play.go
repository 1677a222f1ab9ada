package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/snek/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a board variant",
	Long: `Start playing the given board variant, or the configured default.

Controls:
  Arrows/hjkl/WASD  - Steer
  Esc/Q/Ctrl+C      - Quit
  Ctrl+S            - Save a screenshot to ~/.snek/screenshots

Running into a wall or into yourself restarts the run; every run that
scored is saved to the scores database.

Difficulty options:
  easy   - 35% slower steps
  normal - Steps as configured
  hard   - 35% faster steps
  fixed  - Steps as configured, ignoring presets

Examples:
  snek play
  snek play wide
  snek play small --difficulty hard
  snek play --config ./my-snek.yaml --seed 42`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	variantID := cfg.DefaultVariant
	if len(args) == 1 {
		variantID = args[0]
	}

	if !registry.Exists(variantID) {
		return fmt.Errorf("unknown variant %q, run 'snek list' to see available variants", variantID)
	}
	return runApp(variantID)
}
