// snek is a terminal snake game on a fixed-step simulation core.
//
// Usage:
//
//	snek                  - Start the menu
//	snek list             - List board variants
//	snek play [variant]   - Play a variant directly (default from config)
//	snek scores [variant] - Show high scores
//	snek serve            - Start SSH server for remote play
//	snek config           - Print the default configuration
//
// Global flags:
//
//	--config <path>      - Configuration file
//	--db <path>          - Scores database (default: ~/.snek/scores.db)
//	--seed <value>       - RNG seed for reproducible food placement
//	--fps <rate>         - Frame rate override
//	--difficulty <name>  - easy, normal, hard or fixed
//	--log-file <path>    - Write logs to this file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/snek/internal/config"
	"github.com/vovakirdan/snek/internal/core"
	"github.com/vovakirdan/snek/internal/logging"
	"github.com/vovakirdan/snek/internal/platform/tui"
	"github.com/vovakirdan/snek/internal/registry"
	"github.com/vovakirdan/snek/internal/storage"
)

var (
	flagConfig     string
	flagDBPath     string
	flagSeed       int64
	flagFPS        int
	flagDifficulty string
	flagLogFile    string
	flagDebug      bool
)

// Set up by the root command before any subcommand runs.
var (
	cfg       config.Config
	logger    *log.Logger
	logCloser io.Closer
)

func main() {
	err := rootCmd.Execute()
	if logCloser != nil {
		logCloser.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snek",
	Short: "snek - snake in your terminal",
	Long: `snek is a terminal snake game. Steer with the arrow keys, h/j/k/l or
WASD, eat the food and do not bite yourself or leave the board.

Available commands:
  list     - Show the board variants
  play     - Play a variant directly
  scores   - View high scores
  serve    - Start SSH server for remote play
  config   - Print the default configuration

Examples:
  snek
  snek play small
  snek play --difficulty hard
  snek serve --ssh :2222
  snek scores classic`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	RunE:              runMenu,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "Path to config YAML")
	pf.StringVar(&flagDBPath, "db", "~/.snek/scores.db", "Path to scores database")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.IntVar(&flagFPS, "fps", 0, "Frame rate (0 = from config)")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	pf.BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// setup loads configuration, applies flag overrides and registers variants.
func setup(_ *cobra.Command, _ []string) error {
	var err error
	cfg, err = config.Load(flagConfig)
	if err != nil {
		return err
	}

	if flagFPS > 0 {
		cfg.FrameRate = flagFPS
	}
	if flagDifficulty != "" {
		cfg.Difficulty = config.DifficultyPreset(flagDifficulty)
		if !cfg.Difficulty.Valid() {
			return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
		}
	}

	logger, logCloser, err = logging.Open(flagLogFile, "snek", flagDebug)
	if err != nil {
		return err
	}

	registry.Reset()
	for _, v := range cfg.Variants {
		err := registry.Register(registry.Variant{
			ID:       v.ID,
			Title:    v.Title,
			Settings: v.Settings(cfg.Difficulty),
		})
		if err != nil {
			return err
		}
	}
	logger.Debug("configuration loaded",
		"variants", len(cfg.Variants),
		"difficulty", string(cfg.Difficulty),
		"fps", cfg.FrameRate,
	)
	return nil
}

// runtimeConfig sizes the screen from the controlling terminal.
func runtimeConfig() core.RuntimeConfig {
	rc := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		rc.ScreenW, rc.ScreenH = w, h
	}
	rc.FrameRate = cfg.FrameRate
	rc.Seed = flagSeed
	return rc
}

// openStore opens the scores database. Play continues without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("scores database unavailable", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

func runMenu(_ *cobra.Command, _ []string) error {
	return runApp("")
}

func runApp(variantID string) error {
	store := openStore()
	if store != nil {
		defer store.Close()
	}

	return tui.Run(tui.AppOptions{
		Store:   store,
		Logger:  logger,
		Runtime: runtimeConfig(),
		Variant: variantID,
	})
}
