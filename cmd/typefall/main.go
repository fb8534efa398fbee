// typefall is a falling-word typing game for the terminal.
//
// Usage:
//
//	typefall play               - Play a game
//	typefall menu               - Pick a mode and word pack interactively
//	typefall modes              - List game modes
//	typefall packs list         - List word packs
//	typefall packs import <f>   - Import a word pack
//	typefall serve              - Start SSH server for remote play
//
// Global flags:
//
//	--seed <value>  - Set RNG seed for reproducible word order
//	--db <path>     - Set database path (default: ~/.typefall/words.db)
//	--log <path>    - Set log file path (default: ~/.typefall/typefall.log)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed    int64
	flagDBPath  string
	flagLogPath string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "typefall",
	Short: "Typefall - Type the falling words before they land",
	Long: `Typefall is a terminal typing game. A word falls down the lane;
type it before it reaches the bottom to score its length in points.
Miss it and you lose the same amount.

Available commands:
  play     - Play a game directly
  menu     - Interactive mode and word pack picker
  modes    - Show all game modes
  packs    - Manage word packs
  serve    - Start SSH server for remote play

Examples:
  typefall play
  typefall play --mode timed --pack nature
  typefall menu
  typefall packs import ./animals.yaml
  typefall serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.typefall/words.db", "Path to word pack database")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "~/.typefall/typefall.log", "Path to log file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(modesCmd)
	rootCmd.AddCommand(packsCmd)
	rootCmd.AddCommand(serveCmd)
}
