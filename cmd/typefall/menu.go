package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/typefall/internal/game"
	"github.com/vovakirdan/typefall/internal/platform/tui"
	"github.com/vovakirdan/typefall/internal/storage"
	"github.com/vovakirdan/typefall/internal/words"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start typefall with a mode and word pack picker",
	Long: `Start typefall in interactive menu mode.

Use Tab or Left/Right to choose a mode, Up/Down to choose a word pack
and Enter to play. Press b after a session to return to the menu.

Controls:
  Tab/Left/Right  - Change mode
  Up/Down/j/k     - Choose word pack
  Enter           - Play
  Q               - Quit

Examples:
  typefall menu
  typefall menu --difficulty easy
  typefall menu --db ./words.db`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func init() {
	addGameFlags(menuCmd)
}

func runMenu(_ *cobra.Command, _ []string) {
	if err := menu(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func menu() error {
	cfg, err := loadGameConfig()
	if err != nil {
		return err
	}

	lib, err := words.LoadLibrary(flagLibrary)
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open word pack database: %v\n", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	packs, err := tui.CollectPacks(lib, store)
	if err != nil {
		return err
	}

	logger, logFile, err := openLogger(flagLogPath)
	if err != nil {
		return err
	}
	defer logFile.Close()

	opts := []game.Option{game.WithLogger(logger)}
	if cues := openCues(cfg, logger); cues != nil {
		defer cues.Close()
		opts = append(opts, game.WithCues(cues))
	}

	return tui.RunSession(tui.NewSessionModel(cfg, packs, runtimeConfig(), opts...))
}
