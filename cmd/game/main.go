package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"siegeline/internal/game"
)

func main() {
	ebiten.SetWindowTitle("Siegeline")
	ebiten.SetWindowSize(1600, 900)
	if err := ebiten.RunGame(game.New()); err != nil {
		log.Fatal(err)
	}
}
