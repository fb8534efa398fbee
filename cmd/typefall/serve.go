package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/typefall/internal/platform/tui"
	"github.com/vovakirdan/typefall/internal/storage"
	"github.com/vovakirdan/typefall/internal/words"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the typefall SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own independent game with a mode and
word pack picker. Sound is disabled for remote sessions. Imported
packs from the database are offered alongside the built-in ones.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.typefall/host_key

Examples:
  typefall serve                           # Listen on :23234 with auto-generated key
  typefall serve --ssh :2222               # Listen on port 2222
  typefall serve --host-key ./my_host_key  # Use specific host key
  typefall serve --difficulty hard         # Faster fall for everyone

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	serveCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	serveCmd.Flags().StringVar(&flagLibrary, "library", "", "Path to a word library YAML")
}

func runServe(_ *cobra.Command, _ []string) {
	logger := newLogger(os.Stderr)

	gameCfg, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	lib, err := words.LoadLibrary(flagLibrary)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading word library: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open word pack database", "error", err)
		store = nil
	}

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		Game:        gameCfg,
		Library:     lib,
	}

	server, err := tui.NewSSHServer(cfg, store, logger.WithPrefix("typefall-ssh"))
	if err != nil {
		if store != nil {
			store.Close()
		}
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting typefall SSH server on %s\n", cfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	err = server.ListenAndServe()
	if store != nil {
		store.Close()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
