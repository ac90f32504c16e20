package mos6502

// addWithOverflow adds b plus the carry flag into A, setting C/V/N/Z.
// Decimal mode is never consulted: the D flag is inert on this CPU
// (spec.md §4.7).
func (c *CPU) addWithOverflow(b uint8) {
	sum := uint16(c.A) + uint16(b) + uint16(c.P&FlagCarry)
	res := uint8(sum)

	c.setFlag(FlagCarry, sum&0x100 != 0)
	c.setFlag(FlagOverflow, (c.A^res)&(b^res)&0x80 != 0)
	c.A = res
	c.setZN(c.A)
}

func (c *CPU) baseCMP(a, b uint8) {
	c.setZN(a - b)
	c.setFlag(FlagCarry, a >= b)
}

func (c *CPU) branch(mask uint8, want bool) uint8 {
	if (c.P&mask != 0) != want {
		c.PC++ // step past the unused relative operand byte
		return 0
	}

	from := c.PC
	target, _ := c.operandAddr(Relative)

	extra := uint8(1) // taken branches cost one extra cycle
	if pageCrossed(from, target) {
		extra++
	}
	c.PC = target
	return extra
}

func (c *CPU) adc(mode uint8) uint8 {
	addr, extra := c.operandAddr(mode)
	c.addWithOverflow(c.read(addr))
	return extra
}

func (c *CPU) and(mode uint8) uint8 {
	addr, extra := c.operandAddr(mode)
	c.A &= c.read(addr)
	c.setZN(c.A)
	return extra
}

func (c *CPU) asl(mode uint8) uint8 {
	if mode == Accumulator {
		c.setFlag(FlagCarry, c.A&0x80 != 0)
		c.A <<= 1
		c.setZN(c.A)
		return 0
	}

	addr, _ := c.operandAddr(mode)
	v := c.read(addr)
	c.setFlag(FlagCarry, v&0x80 != 0)
	v <<= 1
	c.write(addr, v)
	c.setZN(v)
	return 0
}

func (c *CPU) bcc(mode uint8) uint8 { return c.branch(FlagCarry, false) }
func (c *CPU) bcs(mode uint8) uint8 { return c.branch(FlagCarry, true) }
func (c *CPU) beq(mode uint8) uint8 { return c.branch(FlagZero, true) }
func (c *CPU) bmi(mode uint8) uint8 { return c.branch(FlagNegative, true) }
func (c *CPU) bne(mode uint8) uint8 { return c.branch(FlagZero, false) }
func (c *CPU) bpl(mode uint8) uint8 { return c.branch(FlagNegative, false) }
func (c *CPU) bvc(mode uint8) uint8 { return c.branch(FlagOverflow, false) }
func (c *CPU) bvs(mode uint8) uint8 { return c.branch(FlagOverflow, true) }

func (c *CPU) bit(mode uint8) uint8 {
	addr, _ := c.operandAddr(mode)
	v := c.read(addr)
	c.setFlag(FlagZero, v&c.A == 0)
	c.setFlag(FlagNegative, v&FlagNegative != 0)
	c.setFlag(FlagOverflow, v&FlagOverflow != 0)
	return 0
}

func (c *CPU) brk(mode uint8) uint8 {
	c.pushAddr(c.PC + 1) // skip the padding byte per spec.md §4.7
	c.pushByte(c.P | flagUnused | FlagBreak)
	c.setFlag(FlagInterruptDisable, true)
	c.PC = c.read16(vectorBRK)
	return 0
}

func (c *CPU) clc(mode uint8) uint8 { c.setFlag(FlagCarry, false); return 0 }
func (c *CPU) cld(mode uint8) uint8 { c.setFlag(FlagDecimal, false); return 0 }
func (c *CPU) cli(mode uint8) uint8 { c.setFlag(FlagInterruptDisable, false); return 0 }
func (c *CPU) clv(mode uint8) uint8 { c.setFlag(FlagOverflow, false); return 0 }

func (c *CPU) cmp(mode uint8) uint8 {
	addr, extra := c.operandAddr(mode)
	c.baseCMP(c.A, c.read(addr))
	return extra
}

func (c *CPU) cpx(mode uint8) uint8 {
	addr, _ := c.operandAddr(mode)
	c.baseCMP(c.X, c.read(addr))
	return 0
}

func (c *CPU) cpy(mode uint8) uint8 {
	addr, _ := c.operandAddr(mode)
	c.baseCMP(c.Y, c.read(addr))
	return 0
}

func (c *CPU) dec(mode uint8) uint8 {
	addr, _ := c.operandAddr(mode)
	v := c.read(addr) - 1
	c.write(addr, v)
	c.setZN(v)
	return 0
}

func (c *CPU) dex(mode uint8) uint8 { c.X--; c.setZN(c.X); return 0 }
func (c *CPU) dey(mode uint8) uint8 { c.Y--; c.setZN(c.Y); return 0 }

func (c *CPU) eor(mode uint8) uint8 {
	addr, extra := c.operandAddr(mode)
	c.A ^= c.read(addr)
	c.setZN(c.A)
	return extra
}

func (c *CPU) inc(mode uint8) uint8 {
	addr, _ := c.operandAddr(mode)
	v := c.read(addr) + 1
	c.write(addr, v)
	c.setZN(v)
	return 0
}

func (c *CPU) inx(mode uint8) uint8 { c.X++; c.setZN(c.X); return 0 }
func (c *CPU) iny(mode uint8) uint8 { c.Y++; c.setZN(c.Y); return 0 }

func (c *CPU) jmp(mode uint8) uint8 {
	addr, _ := c.operandAddr(mode)
	c.PC = addr
	return 0
}

func (c *CPU) jsr(mode uint8) uint8 {
	addr, _ := c.operandAddr(mode)
	c.pushAddr(c.PC - 1) // address of the last byte of the JSR instruction
	c.PC = addr
	return 0
}

func (c *CPU) lda(mode uint8) uint8 {
	addr, extra := c.operandAddr(mode)
	c.A = c.read(addr)
	c.setZN(c.A)
	return extra
}

func (c *CPU) ldx(mode uint8) uint8 {
	addr, extra := c.operandAddr(mode)
	c.X = c.read(addr)
	c.setZN(c.X)
	return extra
}

func (c *CPU) ldy(mode uint8) uint8 {
	addr, extra := c.operandAddr(mode)
	c.Y = c.read(addr)
	c.setZN(c.Y)
	return extra
}

func (c *CPU) lsr(mode uint8) uint8 {
	if mode == Accumulator {
		c.setFlag(FlagCarry, c.A&0x01 != 0)
		c.A >>= 1
		c.setZN(c.A)
		return 0
	}

	addr, _ := c.operandAddr(mode)
	v := c.read(addr)
	c.setFlag(FlagCarry, v&0x01 != 0)
	v >>= 1
	c.write(addr, v)
	c.setZN(v)
	return 0
}

func (c *CPU) nop(mode uint8) uint8 { return 0 }

func (c *CPU) ora(mode uint8) uint8 {
	addr, extra := c.operandAddr(mode)
	c.A |= c.read(addr)
	c.setZN(c.A)
	return extra
}

func (c *CPU) pha(mode uint8) uint8 { c.pushByte(c.A); return 0 }
func (c *CPU) php(mode uint8) uint8 { c.pushByte(c.P | flagUnused | FlagBreak); return 0 }

func (c *CPU) pla(mode uint8) uint8 {
	c.A = c.popByte()
	c.setZN(c.A)
	return 0
}

func (c *CPU) plp(mode uint8) uint8 {
	c.P = (c.popByte() &^ FlagBreak) | flagUnused
	return 0
}

func (c *CPU) rol(mode uint8) uint8 {
	if mode == Accumulator {
		old := c.A
		c.A = old<<1 | (c.P & FlagCarry)
		c.setFlag(FlagCarry, old&0x80 != 0)
		c.setZN(c.A)
		return 0
	}

	addr, _ := c.operandAddr(mode)
	old := c.read(addr)
	v := old<<1 | (c.P & FlagCarry)
	c.write(addr, v)
	c.setFlag(FlagCarry, old&0x80 != 0)
	c.setZN(v)
	return 0
}

func (c *CPU) ror(mode uint8) uint8 {
	if mode == Accumulator {
		old := c.A
		c.A = old>>1 | (c.P&FlagCarry)<<7
		c.setFlag(FlagCarry, old&0x01 != 0)
		c.setZN(c.A)
		return 0
	}

	addr, _ := c.operandAddr(mode)
	old := c.read(addr)
	v := old>>1 | (c.P&FlagCarry)<<7
	c.write(addr, v)
	c.setFlag(FlagCarry, old&0x01 != 0)
	c.setZN(v)
	return 0
}

func (c *CPU) rti(mode uint8) uint8 {
	c.P = (c.popByte() &^ FlagBreak) | flagUnused
	c.PC = c.popAddr()
	return 0
}

func (c *CPU) rts(mode uint8) uint8 {
	c.PC = c.popAddr() + 1
	return 0
}

func (c *CPU) sbc(mode uint8) uint8 {
	addr, extra := c.operandAddr(mode)
	c.addWithOverflow(^c.read(addr))
	return extra
}

func (c *CPU) sec(mode uint8) uint8 { c.setFlag(FlagCarry, true); return 0 }
func (c *CPU) sed(mode uint8) uint8 { c.setFlag(FlagDecimal, true); return 0 }
func (c *CPU) sei(mode uint8) uint8 { c.setFlag(FlagInterruptDisable, true); return 0 }

func (c *CPU) sta(mode uint8) uint8 {
	addr, _ := c.operandAddr(mode)
	c.write(addr, c.A)
	return 0
}

func (c *CPU) stx(mode uint8) uint8 {
	addr, _ := c.operandAddr(mode)
	c.write(addr, c.X)
	return 0
}

func (c *CPU) sty(mode uint8) uint8 {
	addr, _ := c.operandAddr(mode)
	c.write(addr, c.Y)
	return 0
}

func (c *CPU) tax(mode uint8) uint8 { c.X = c.A; c.setZN(c.X); return 0 }
func (c *CPU) tay(mode uint8) uint8 { c.Y = c.A; c.setZN(c.Y); return 0 }
func (c *CPU) tsx(mode uint8) uint8 { c.X = c.SP; c.setZN(c.X); return 0 }
func (c *CPU) txa(mode uint8) uint8 { c.A = c.X; c.setZN(c.A); return 0 }
func (c *CPU) txs(mode uint8) uint8 { c.SP = c.X; return 0 }
func (c *CPU) tya(mode uint8) uint8 { c.A = c.Y; c.setZN(c.A); return 0 }
