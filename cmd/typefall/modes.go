package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/typefall/internal/registry"
)

var modesCmd = &cobra.Command{
	Use:   "modes",
	Short: "List all game modes",
	Long:  `Shows a list of all registered game modes.`,
	Run:   runModes,
}

func runModes(cmd *cobra.Command, args []string) {
	modes := registry.List()

	if len(modes) == 0 {
		fmt.Println("No modes available.")
		return
	}

	fmt.Println("Available modes:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, m := range modes {
		if len(m.ID) > maxIDLen {
			maxIDLen = len(m.ID)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Description")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----------")

	for _, m := range modes {
		fmt.Printf("  %-*s  %s\n", maxIDLen, m.ID, m.Description)
	}

	fmt.Println()
	fmt.Println("Run 'typefall play --mode <id>' to play a mode.")
}
