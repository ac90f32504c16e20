package mappers

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bdwalton/gones/nesrom"
)

// newTestROM assembles a minimal iNES file with prgBlocks*16KB of PRG-ROM
// (byte i+b at offset i of block b) and chrBlocks*8KB of CHR-ROM (byte
// i*3+b at offset i of block b), tagged with mapperNum in the header.
func newTestROM(t *testing.T, prgBlocks, chrBlocks, mapperNum uint8) *nesrom.ROM {
	t.Helper()

	header := []byte{
		'N', 'E', 'S', 0x1A,
		prgBlocks, chrBlocks,
		(mapperNum & 0x0F) << 4, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
	}

	var data []byte
	data = append(data, header...)
	for b := uint8(0); b < prgBlocks; b++ {
		block := make([]byte, nesrom.PRG_BLOCK_SIZE)
		for i := range block {
			// Offset by the bank index so distinct banks are
			// distinguishable in banking tests.
			block[i] = uint8(i) + b
		}
		data = append(data, block...)
	}
	for b := uint8(0); b < chrBlocks; b++ {
		block := make([]byte, nesrom.CHR_BLOCK_SIZE)
		for i := range block {
			block[i] = uint8(i*3) + b
		}
		data = append(data, block...)
	}

	path := filepath.Join(t.TempDir(), "test.nes")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("couldn't write test ROM: %v", err)
	}

	rom, err := nesrom.New(path)
	if err != nil {
		t.Fatalf("nesrom.New(%q) = %v, want nil error", path, err)
	}
	return rom
}
