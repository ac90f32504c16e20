package mos6502

// operandAddr resolves the effective address for mode, advancing PC past
// the operand bytes. It returns an extra-cycle count of 1 when indexing
// crossed a page boundary; callers for write/RMW instructions (which never
// take the penalty on real hardware) simply ignore it.
func (c *CPU) operandAddr(mode uint8) (addr uint16, extra uint8) {
	switch mode {
	case Immediate:
		addr = c.PC
		c.PC++
	case ZeroPage:
		addr = uint16(c.read(c.PC))
		c.PC++
	case ZeroPageX:
		addr = uint16(c.read(c.PC) + c.X)
		c.PC++
	case ZeroPageY:
		addr = uint16(c.read(c.PC) + c.Y)
		c.PC++
	case Absolute:
		addr = c.read16(c.PC)
		c.PC += 2
	case AbsoluteX:
		base := c.read16(c.PC)
		addr = base + uint16(c.X)
		c.PC += 2
		if pageCrossed(base, addr) {
			extra = 1
		}
	case AbsoluteY:
		base := c.read16(c.PC)
		addr = base + uint16(c.Y)
		c.PC += 2
		if pageCrossed(base, addr) {
			extra = 1
		}
	case Indirect:
		ptr := c.read16(c.PC)
		addr = c.read16PageWrap(ptr)
		c.PC += 2
	case IndirectX:
		zp := c.read(c.PC) + c.X
		addr = c.read16ZeroPage(zp)
		c.PC++
	case IndirectY:
		zp := c.read(c.PC)
		base := c.read16ZeroPage(zp)
		addr = base + uint16(c.Y)
		c.PC++
		if pageCrossed(base, addr) {
			extra = 1
		}
	case Relative:
		offset := int8(c.read(c.PC))
		c.PC++
		addr = uint16(int32(c.PC) + int32(offset))
	default:
		panic("mos6502: addressing mode has no operand address")
	}

	return addr, extra
}

// read16ZeroPage reads a little-endian 16-bit pointer stored in zero page,
// wrapping within page 0 instead of crossing into page 1.
func (c *CPU) read16ZeroPage(addr uint8) uint16 {
	lo := uint16(c.read(uint16(addr)))
	hi := uint16(c.read(uint16(addr + 1)))
	return hi<<8 | lo
}
