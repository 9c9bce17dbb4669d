package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/levels"
)

var levelsCmd = &cobra.Command{
	Use:   "levels [id]",
	Short: "List all available levels",
	Long: `Shows the levels in play order with their size and brick counts.
With an ID, prints that level's brick grid.

Examples:
  breakout levels
  breakout levels 02-gaps`,
	Args: cobra.MaximumNArgs(1),
	Run:  runLevels,
}

func runLevels(cmd *cobra.Command, args []string) {
	if len(args) == 1 {
		showLevel(args[0])
		return
	}

	defs, err := loadLevels()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading levels: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Available levels:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, l := range defs {
		if len(l.ID) > maxIDLen {
			maxIDLen = len(l.ID)
		}
	}

	// Print header
	fmt.Printf("  %-3s  %-*s  %-7s  %-6s  %-5s  %s\n", "#", maxIDLen, "ID", "Size", "Bricks", "Solid", "Name")
	fmt.Printf("  %-3s  %-*s  %-7s  %-6s  %-5s  %s\n", "-", maxIDLen, "--", "----", "------", "-----", "----")

	for i, l := range defs {
		w, h := l.Size()
		solid, destructible := l.Count()
		fmt.Printf("  %-3d  %-*s  %-7s  %-6d  %-5d  %s\n",
			i+1, maxIDLen, l.ID, fmt.Sprintf("%dx%d", w, h), destructible, solid, l.Name)
	}

	fmt.Println()
	fmt.Println("Run 'breakout play --level <#>' to play a level.")
}

func showLevel(id string) {
	l, err := levels.NewLoader(flagLevels).LoadByID(id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'breakout levels' to see available levels.")
		os.Exit(1)
	}

	w, h := l.Size()
	solid, destructible := l.Count()
	fmt.Printf("%s (%s)  %dx%d  %d bricks, %d solid\n", l.Name, l.ID, w, h, destructible, solid)
	if l.FilePath != "" {
		fmt.Printf("File: %s\n", l.FilePath)
	}
	fmt.Println()

	var b strings.Builder
	for _, row := range l.Grid {
		b.WriteString("  ")
		for _, code := range row {
			switch {
			case code == 0:
				b.WriteString("  ")
			case code == 1:
				b.WriteString("##")
			default:
				b.WriteString("[]")
			}
		}
		b.WriteString("\n")
	}
	fmt.Print(b.String())
}
