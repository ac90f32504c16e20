package main

import (
	"image/color"

	"github.com/bdwalton/gones/console"
	"github.com/bdwalton/gones/ppu"
	"github.com/hajimehoshi/ebiten/v2"
)

// keys maps the controller's shift-register bit order to the ebiten keys
// that drive it on this host.
var keys = []ebiten.Key{
	ebiten.KeyA,     // A
	ebiten.KeyB,     // B
	ebiten.KeySpace, // Select
	ebiten.KeyEnter, // Start
	ebiten.KeyUp,    // Up
	ebiten.KeyDown,  // Down
	ebiten.KeyLeft,  // Left
	ebiten.KeyRight, // Right
}

func pollKeys() uint8 {
	var buttons uint8
	for i, k := range keys {
		if ebiten.IsKeyPressed(k) {
			buttons |= 1 << i
		}
	}
	return buttons
}

// game is a thin ebiten.Game adapter over *console.Machine: it converts
// the core's palette-index frame buffer into RGBA pixels once per draw
// and drains host key state into the core's controller once per CPU
// cycle via Machine.RunFrame.
type game struct {
	mc *console.Machine
}

func newGame(mc *console.Machine) *game {
	return &game{mc: mc}
}

func (g *game) Update() error {
	g.mc.RunFrame(func() (uint8, uint8) {
		return pollKeys(), 0
	})
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	frame := g.mc.Frame()
	for y := 0; y < ppu.NES_RES_HEIGHT; y++ {
		for x := 0; x < ppu.NES_RES_WIDTH; x++ {
			c := ppu.SYSTEM_PALETTE[frame[y][x]&0x3F]
			screen.Set(x, y, color.RGBA{R: c[0], G: c[1], B: c[2], A: c[3]})
		}
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ppu.NES_RES_WIDTH, ppu.NES_RES_HEIGHT
}
