package main

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/typefall/internal/config"
	"github.com/vovakirdan/typefall/internal/game"
	"github.com/vovakirdan/typefall/internal/platform/tui"
	"github.com/vovakirdan/typefall/internal/storage"
	"github.com/vovakirdan/typefall/internal/words"
)

var flagPackID string

var packsCmd = &cobra.Command{
	Use:   "packs",
	Short: "Manage word packs",
	Long: `List, inspect, import and remove word packs.

Built-in packs come from the word library (embedded, or --library).
Imported packs live in the database (--db) and take precedence over
built-in packs with the same ID.

Pack files are YAML documents with a name and a list of words:

  name: Animals
  words:
    - owl
    - red fox

Plain .txt files with one word per line are accepted too.

Words may contain letters, digits and the punctuation allowed by the
game config (space, ' and - by default). A pack with any other
character is rejected.`,
}

var packsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List built-in and imported word packs",
	Args:  cobra.NoArgs,
	Run:   runPacksList,
}

var packsShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show the words of a pack",
	Args:  cobra.ExactArgs(1),
	Run:   runPacksShow,
}

var packsImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a word pack into the database",
	Long: `Import a YAML or plain text word pack. The pack ID defaults to the
file name without its extension. Importing an existing ID replaces it.

Examples:
  typefall packs import ./animals.yaml
  typefall packs import ./spells.txt --id wizarding`,
	Args: cobra.ExactArgs(1),
	Run:  runPacksImport,
}

var packsRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Remove an imported word pack",
	Args:  cobra.ExactArgs(1),
	Run:   runPacksRemove,
}

func init() {
	packsCmd.PersistentFlags().StringVar(&flagLibrary, "library", "", "Path to a word library YAML")
	packsImportCmd.Flags().StringVar(&flagPackID, "id", "", "Pack ID (default: file name)")

	packsCmd.AddCommand(packsListCmd)
	packsCmd.AddCommand(packsShowCmd)
	packsCmd.AddCommand(packsImportCmd)
	packsCmd.AddCommand(packsRemoveCmd)
}

// mustOpenStore opens the pack database or exits.
func mustOpenStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening word pack database: %v\n", err)
		os.Exit(1)
	}
	return store
}

func runPacksList(_ *cobra.Command, _ []string) {
	lib, err := words.LoadLibrary(flagLibrary)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading word library: %v\n", err)
		os.Exit(1)
	}

	store := mustOpenStore()
	entries, err := tui.CollectPacks(lib, store)
	store.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error listing packs: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Word packs:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, e := range entries {
		if len(e.Pack.ID) > maxIDLen {
			maxIDLen = len(e.Pack.ID)
		}
	}

	fmt.Printf("  %-*s  %-6s  %-8s  %s\n", maxIDLen, "ID", "Words", "Source", "Name")
	fmt.Printf("  %-*s  %-6s  %-8s  %s\n", maxIDLen, "--", "-----", "------", "----")

	for _, e := range entries {
		source := "built-in"
		if e.Stored {
			source = "imported"
		}
		marker := ""
		if !e.Stored && e.Pack.ID == lib.DefaultCategory {
			marker = " (default)"
		}
		fmt.Printf("  %-*s  %-6d  %-8s  %s%s\n", maxIDLen, e.Pack.ID, len(e.Pack.Words), source, e.Pack.Name, marker)
	}

	fmt.Println()
	fmt.Println("Run 'typefall play --pack <id>' to play with a pack.")
}

func runPacksShow(_ *cobra.Command, args []string) {
	store := mustOpenStore()
	pack, err := resolvePack(args[0], store)
	store.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%s (%s) - %d words\n", pack.Name, pack.ID, len(pack.Words))
	fmt.Println()
	for _, w := range pack.Words {
		fmt.Printf("  %s\n", w)
	}
}

func runPacksImport(_ *cobra.Command, args []string) {
	path := args[0]
	id := flagPackID
	if id == "" {
		id = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	pack, err := readPackFile(id, path, game.RulesFromConfig(cfg))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store := mustOpenStore()
	err = store.SavePack(pack)
	store.Close()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Imported pack %q (%s) with %d words.\n", pack.ID, pack.Name, len(pack.Words))
}

// readPackFile parses a YAML pack, or a plain text pack for .txt files.
// Every word must be typeable under rules.
func readPackFile(id, path string, rules game.Rules) (words.Pack, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return words.Pack{}, fmt.Errorf("cannot read pack file: %w", err)
	}

	var pack words.Pack
	if strings.EqualFold(filepath.Ext(path), ".txt") {
		pack, err = parseTextPack(id, data)
	} else {
		pack, err = words.ParsePack(id, data)
	}
	if err != nil {
		return words.Pack{}, err
	}

	_, skipped, err := rules.PlayableWords(pack.Words)
	if err != nil {
		return words.Pack{}, fmt.Errorf("pack %q: %w", id, err)
	}
	if len(skipped) > 0 {
		return words.Pack{}, fmt.Errorf("pack %q: %d words cannot be typed, first %q: %w",
			id, len(skipped), skipped[0], rules.CheckWord(skipped[0]))
	}
	return pack, nil
}

// parseTextPack reads one word per line.
func parseTextPack(id string, data []byte) (words.Pack, error) {
	var list []string
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		list = append(list, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return words.Pack{}, fmt.Errorf("cannot read pack file: %w", err)
	}
	if _, err := words.NewCatalog(list, 1); err != nil {
		return words.Pack{}, fmt.Errorf("pack %q: %w", id, err)
	}
	return words.Pack{ID: id, Name: id, Words: list}, nil
}

func runPacksRemove(_ *cobra.Command, args []string) {
	store := mustOpenStore()
	err := store.DeletePack(args[0])
	store.Close()

	if errors.Is(err, storage.ErrPackNotFound) {
		fmt.Fprintf(os.Stderr, "No imported pack %q. Built-in packs cannot be removed.\n", args[0])
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Removed pack %q.\n", args[0])
}
