package mappers

import "github.com/bdwalton/gones/nesrom"

// mapper0 implements NROM: no bank switching. PRG-ROM is 16KB or 32KB,
// mapped at $8000-$FFFF (mirrored if only 16KB); CHR is a single fixed
// 8KB bank.
type mapper0 struct {
	*baseMapper
}

func init() {
	RegisterMapper(0, &mapper0{baseMapper: newBaseMapper(0, "NROM")})
}

func (m *mapper0) PrgRead(addr uint16) uint8 {
	off := addr - 0x8000
	if m.rom.NumPrgBlocks() == 1 {
		off %= nesrom.PRG_BLOCK_SIZE
	}
	return m.rom.PrgRead(off)
}

func (m *mapper0) PrgWrite(addr uint16, val uint8) {
	// PRG-ROM is read-only on this board; writes are ignored.
}

func (m *mapper0) ChrRead(addr uint16) uint8 {
	return m.rom.ChrRead(addr)
}

func (m *mapper0) ChrWrite(addr uint16, val uint8) {
	m.rom.ChrWrite(addr, val)
}
