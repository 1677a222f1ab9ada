package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/snek/internal/logging"
	"github.com/vovakirdan/snek/internal/platform/tui"
	"github.com/vovakirdan/snek/internal/storage"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the snek SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own session with the main menu. Quitting
ends only that session. All users share the same scores database.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.snek/host_key

Examples:
  snek serve                           # Listen on :23234
  snek serve --ssh :2222               # Listen on port 2222
  snek serve --host-key ./my_host_key  # Use specific host key
  snek serve --db ./scores.db          # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) error {
	// The server has no alternate screen of its own, so it logs to stderr
	// unless a log file was requested.
	srvLogger := logger
	if flagLogFile == "" {
		srvLogger = logging.New(os.Stderr, "snek-ssh")
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		srvLogger.Warn("could not open scores database", "error", err)
	} else {
		defer store.Close()
	}

	server, err := tui.NewSSHServer(tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		FrameRate:   cfg.FrameRate,
		Seed:        flagSeed,
	}, store, srvLogger)
	if err != nil {
		return err
	}

	fmt.Printf("Starting snek SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	return server.ListenAndServe()
}
