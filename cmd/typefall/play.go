package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/typefall/internal/audio"
	"github.com/vovakirdan/typefall/internal/config"
	"github.com/vovakirdan/typefall/internal/core"
	"github.com/vovakirdan/typefall/internal/game"
	"github.com/vovakirdan/typefall/internal/platform/tui"
	"github.com/vovakirdan/typefall/internal/registry"
	"github.com/vovakirdan/typefall/internal/storage"
	"github.com/vovakirdan/typefall/internal/words"
)

var (
	flagConfig     string
	flagDifficulty string
	flagMode       string
	flagPack       string
	flagLibrary    string
	flagTarget     int
	flagMute       bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game with the chosen mode and word pack.

Controls:
  Enter      - Start / play again
  Esc        - Pause / resume
  Ctrl+X     - Stop the session
  Ctrl+N     - Dismiss a message
  Ctrl+S     - Save a screenshot of the lane
  Q/Ctrl+C   - Quit (q only when no session is running)

Difficulty options:
  easy   - Slower fall
  normal - Fall speed from the config
  hard   - Faster fall, input limited to the word's length

Examples:
  typefall play
  typefall play --mode timed
  typefall play --pack nature --difficulty hard
  typefall play --target 20 --mute
  typefall play --config ./my-typefall.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	addGameFlags(playCmd)
	playCmd.Flags().StringVar(&flagMode, "mode", game.DefaultMode, "Game mode (see 'typefall modes')")
	playCmd.Flags().StringVar(&flagPack, "pack", "", "Word pack ID (stored packs first, then the library default)")
	playCmd.Flags().IntVar(&flagTarget, "target", 0, "Words to complete before the session ends (0 = config value)")
}

// addGameFlags registers the flags shared by every command that runs games.
func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	cmd.Flags().StringVar(&flagLibrary, "library", "", "Path to a word library YAML")
	cmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound cues")
}

func runPlay(_ *cobra.Command, _ []string) {
	if err := play(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func play() error {
	if !registry.Exists(flagMode) {
		return fmt.Errorf("unknown mode %q, run 'typefall modes' to see available modes", flagMode)
	}
	mode, err := registry.Create(flagMode)
	if err != nil {
		return err
	}

	cfg, err := loadGameConfig()
	if err != nil {
		return err
	}
	mode.Configure(&cfg)
	if flagTarget > 0 {
		cfg.Rules.TargetWords = flagTarget
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	// Open pack storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open word pack database: %v\n", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	pack, err := resolvePack(flagPack, store)
	if err != nil {
		return err
	}
	list, skipped, err := game.RulesFromConfig(cfg).PlayableWords(pack.Words)
	if err != nil {
		return fmt.Errorf("pack %q: %w", pack.ID, err)
	}
	if len(skipped) > 0 {
		fmt.Fprintf(os.Stderr, "Warning: pack %q: skipping %d words that cannot be typed (first: %q)\n", pack.ID, len(skipped), skipped[0])
	}
	src, err := words.NewCatalog(list, flagSeed)
	if err != nil {
		return fmt.Errorf("pack %q: %w", pack.ID, err)
	}

	logger, logFile, err := openLogger(flagLogPath)
	if err != nil {
		return err
	}
	defer logFile.Close()
	logger.Info("starting", "mode", mode.ID(), "pack", pack.ID, "words", src.Len(), "skipped", len(skipped))

	opts := []game.Option{game.WithLogger(logger)}
	if cues := openCues(cfg, logger); cues != nil {
		defer cues.Close()
		opts = append(opts, game.WithCues(cues))
	}

	model := tui.NewModel(cfg, src, mode.Title()+" / "+pack.Name, runtimeConfig(), opts...)
	return tui.Run(model)
}

// loadGameConfig loads the config file and applies the difficulty preset.
func loadGameConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}
	preset, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		return config.Config{}, err
	}
	config.ApplyDifficulty(&cfg, preset)
	return cfg, cfg.Validate()
}

// resolvePack looks id up in the database first, then in the library.
// An empty id selects the library's default pack.
func resolvePack(id string, store *storage.Store) (words.Pack, error) {
	if id != "" && store != nil {
		p, err := store.Pack(id)
		if err == nil {
			return p, nil
		}
		if !errors.Is(err, storage.ErrPackNotFound) {
			return words.Pack{}, err
		}
	}

	lib, err := words.LoadLibrary(flagLibrary)
	if err != nil {
		return words.Pack{}, err
	}
	return lib.Pack(id)
}

// openCues starts the audio player. Sound is optional: any failure is
// reported and the game runs silently.
func openCues(cfg config.Config, logger *log.Logger) *audio.Player {
	if flagMute || !cfg.Audio.Enabled {
		return nil
	}
	player := audio.NewPlayer(cfg.Audio, logger)
	if err := player.Init(); err != nil {
		logger.Warn("sound disabled", "error", err)
		fmt.Fprintf(os.Stderr, "Warning: sound disabled: %v\n", err)
		return nil
	}
	return player
}

// runtimeConfig sizes the first frame from the terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.Seed = flagSeed
	return cfg
}
