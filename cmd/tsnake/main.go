// Command tsnake plays the snake game in a terminal.
package main

import (
	"bytes"
	"log"
	"os"

	"the-snake/game"
	"the-snake/ui"
)

func main() {
	// The terminal is ours while the game runs; hold log lines until it is released.
	var logs bytes.Buffer
	cfg := game.DefaultConfig()
	cfg.Logger = log.New(&logs, "", log.LstdFlags)

	screen, err := ui.NewTerminalScreen()
	if err != nil {
		log.Fatalf("Error opening terminal: %v", err)
	}
	window, err := ui.NewTerminalWindow(screen, cfg.Speed)
	if err != nil {
		log.Fatalf("Error opening terminal: %v", err)
	}

	g := game.NewGame(cfg)
	runErr := game.Run(window, g)
	window.Close()

	os.Stderr.Write(logs.Bytes())
	if runErr != nil {
		log.Fatalf("Error running game: %v", runErr)
	}
}
