package mappers

import (
	"testing"

	"github.com/bdwalton/gones/nesrom"
)

// loadMMC1Register feeds val through the 5-write serial protocol real
// MMC1 boards use: one bit per write, LSB first.
func loadMMC1Register(m *mapper1, addr uint16, val uint8) {
	for i := 0; i < 5; i++ {
		m.PrgWrite(addr, (val>>i)&1)
	}
}

func TestMapper1ControlRegisterSetsMirroring(t *testing.T) {
	rom := newTestROM(t, 2, 2, 1)
	m := &mapper1{baseMapper: newBaseMapper(1, "MMC1")}
	m.Init(rom)

	loadMMC1Register(m, 0x8000, 0x02) // mirror=vertical, prgMode=0, chrMode=0
	if got, want := m.MirroringMode(), uint8(nesrom.MIRROR_VERTICAL); got != want {
		t.Errorf("MirroringMode() = %d, want %d", got, want)
	}
}

func TestMapper1ResetOnHighBitWrite(t *testing.T) {
	rom := newTestROM(t, 2, 2, 1)
	m := &mapper1{baseMapper: newBaseMapper(1, "MMC1")}
	m.Init(rom)

	m.PrgWrite(0x8000, 1)
	m.PrgWrite(0x8000, 0)
	if m.shiftCount != 2 {
		t.Fatalf("shiftCount = %d, want 2 mid-sequence", m.shiftCount)
	}

	m.PrgWrite(0x8000, 0x80) // bit 7 set: abort and reset to PRG mode 3
	if m.shiftCount != 0 || m.shift != 0 {
		t.Errorf("shift register not reset after high-bit write: shift=%d count=%d", m.shift, m.shiftCount)
	}
	if m.prgMode != 3 {
		t.Errorf("prgMode = %d, want 3 after reset", m.prgMode)
	}
}

func TestMapper1PrgBank16KSwitching(t *testing.T) {
	rom := newTestROM(t, 4, 2, 1) // 64KB PRG: banks 0-3
	m := &mapper1{baseMapper: newBaseMapper(1, "MMC1")}
	m.Init(rom)

	// prgMode 3 (the power-on default): $C000 is fixed to the last bank,
	// $8000 is switchable via the PRG bank register.
	if got, want := m.PrgRead(0xC000), uint8(3); got != want {
		t.Errorf("PrgRead(0xC000) = %#02x, want %#02x (fixed last bank)", got, want)
	}

	loadMMC1Register(m, 0xE000, 1) // select PRG bank 1 for the $8000 window
	if got, want := m.PrgRead(0x8000), uint8(1); got != want {
		t.Errorf("PrgRead(0x8000) = %#02x, want %#02x (bank 1)", got, want)
	}
	if got, want := m.PrgRead(0xC000), uint8(3); got != want {
		t.Errorf("PrgRead(0xC000) after bank switch = %#02x, want %#02x (still fixed last)", got, want)
	}
}

func TestMapper1ChrBanking4K(t *testing.T) {
	rom := newTestROM(t, 2, 2, 1) // 16KB CHR: four 4KB banks (0-3)
	m := &mapper1{baseMapper: newBaseMapper(1, "MMC1")}
	m.Init(rom)

	loadMMC1Register(m, 0x8000, 0x10) // chrMode=1 (two independent 4KB banks)
	loadMMC1Register(m, 0xA000, 2)    // chrBank0 selects bank 2 for $0000-$0FFF

	if got, want := m.ChrRead(0x0010), uint8(0x10*3)+1; got != want {
		t.Errorf("ChrRead(0x0010) = %#02x, want %#02x (bank 2)", got, want)
	}
}
