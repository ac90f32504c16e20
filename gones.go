package main

import (
	"flag"
	"log"

	"github.com/bdwalton/gones/console"
	"github.com/bdwalton/gones/mappers"
	"github.com/bdwalton/gones/nesrom"
	"github.com/bdwalton/gones/ppu"
	"github.com/hajimehoshi/ebiten/v2"
)

var romFile = flag.String("nes_rom", "", "Path to NES ROM to run.")

func main() {
	flag.Parse()

	rom, err := nesrom.New(*romFile)
	if err != nil {
		log.Fatalf("Invalid ROM: %v", err)
	}

	m, err := mappers.Get(rom)
	if err != nil {
		log.Fatalf("Couldn't Get() mapper: %v", err)
	}

	mc := console.NewMachine(m)
	mc.Reset()

	ebiten.SetWindowSize(ppu.NES_RES_WIDTH*2, ppu.NES_RES_HEIGHT*2)
	ebiten.SetWindowTitle("gones")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(newGame(mc)); err != nil {
		log.Fatal(err)
	}
}
