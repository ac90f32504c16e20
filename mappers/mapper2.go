package mappers

// mapper2 implements UxROM: a single bank-select register, any write to
// $8000-$FFFF selects the switchable 16KB PRG window at $8000; $C000 is
// permanently wired to the last bank. CHR is a fixed 8KB RAM bank (no
// banking at all).
type mapper2 struct {
	*baseMapper
	prgBank uint8
}

func init() {
	RegisterMapper(2, &mapper2{baseMapper: newBaseMapper(2, "UxROM")})
}

func (m *mapper2) PrgRead(addr uint16) uint8 {
	banks := uint32(m.rom.NumPrgBlocks())
	if addr < 0xC000 {
		bank := uint32(m.prgBank) % banks
		return m.rom.PrgByte(bank*0x4000 + uint32(addr-0x8000))
	}
	return m.rom.PrgByte((banks-1)*0x4000 + uint32(addr-0xC000))
}

func (m *mapper2) PrgWrite(addr uint16, val uint8) {
	m.prgBank = val & 0x0F
}

func (m *mapper2) ChrRead(addr uint16) uint8 {
	return m.rom.ChrRead(addr)
}

func (m *mapper2) ChrWrite(addr uint16, val uint8) {
	m.rom.ChrWrite(addr, val)
}
