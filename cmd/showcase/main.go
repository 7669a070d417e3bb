package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	specPath := flag.String("spec", "", "atlas definition yaml (optional, procedural sheet when omitted)")
	scriptPath := flag.String("script", "", "tengo sequence-authoring script (optional)")
	watch := flag.Bool("watch", false, "hot reload sequence definitions on change")
	flag.Parse()

	game, err := NewGame(*specPath, *scriptPath, *watch)
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("cellanim showcase")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
