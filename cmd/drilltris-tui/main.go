package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/deitrix/drilltris/game"
	"github.com/deitrix/drilltris/piece"
	"github.com/deitrix/drilltris/tui"
)

func main() {
	seed := flag.Uint64("seed", 0, "Random seed; 0 seeds from the clock")
	limit := flag.Int("time", 0, "Time limit in seconds; 0 keeps the default")
	flag.Parse()

	config := game.DefaultConfig()
	if *limit > 0 {
		config.TimeLimit = *limit
	}
	var src piece.Source
	if *seed != 0 {
		src = piece.NewSource(*seed)
	}

	model := tui.NewModel(game.New(config, src))
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
