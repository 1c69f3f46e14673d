package main

import (
	"log"

	"the-snake/game"
	"the-snake/ui"
)

func main() {
	cfg := game.DefaultConfig()

	window, err := ui.NewRaylibWindow("Snake", cfg.Speed)
	if err != nil {
		log.Fatalf("Error opening window: %v", err)
	}
	defer window.Close()

	g := game.NewGame(cfg)
	if err := game.Run(window, g); err != nil {
		log.Printf("Error running game: %v", err)
	}
}
