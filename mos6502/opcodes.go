package mos6502

// 6502 Addressing Modes
// https://www.nesdev.org/obelisk-6502-guide/addressing.html
const (
	Implicit = iota
	Accumulator
	Immediate
	ZeroPage
	ZeroPageX
	ZeroPageY
	Relative
	Absolute
	AbsoluteX
	AbsoluteY
	Indirect
	IndirectX // Indexed Indirect
	IndirectY // Indirect Indexed
)

type instFunc func(c *CPU, mode uint8) uint8

type opcode struct {
	mode   uint8
	bytes  uint8
	cycles uint8
	exec   instFunc
}

// opcodeTable is the documented 6502 instruction set used by NES software.
// Addressing modes, byte counts and base cycle counts are grounded on the
// teacher's mos6502/mos6502.go table; dispatch is a direct function
// pointer per entry instead of a name string resolved through reflection.
var opcodeTable = map[uint8]opcode{
	0x69: {Immediate, 2, 2, (*CPU).adc},
	0x65: {ZeroPage, 2, 3, (*CPU).adc},
	0x75: {ZeroPageX, 2, 4, (*CPU).adc},
	0x6D: {Absolute, 3, 4, (*CPU).adc},
	0x7D: {AbsoluteX, 3, 4, (*CPU).adc},
	0x79: {AbsoluteY, 3, 4, (*CPU).adc},
	0x61: {IndirectX, 2, 6, (*CPU).adc},
	0x71: {IndirectY, 2, 5, (*CPU).adc},

	0x29: {Immediate, 2, 2, (*CPU).and},
	0x25: {ZeroPage, 2, 3, (*CPU).and},
	0x35: {ZeroPageX, 2, 4, (*CPU).and},
	0x2D: {Absolute, 3, 4, (*CPU).and},
	0x3D: {AbsoluteX, 3, 4, (*CPU).and},
	0x39: {AbsoluteY, 3, 4, (*CPU).and},
	0x21: {IndirectX, 2, 6, (*CPU).and},
	0x31: {IndirectY, 2, 5, (*CPU).and},

	0x0A: {Accumulator, 1, 2, (*CPU).asl},
	0x06: {ZeroPage, 2, 5, (*CPU).asl},
	0x16: {ZeroPageX, 2, 6, (*CPU).asl},
	0x0E: {Absolute, 3, 6, (*CPU).asl},
	0x1E: {AbsoluteX, 3, 7, (*CPU).asl},

	0x90: {Relative, 2, 2, (*CPU).bcc},
	0xB0: {Relative, 2, 2, (*CPU).bcs},
	0xF0: {Relative, 2, 2, (*CPU).beq},
	0x24: {ZeroPage, 2, 3, (*CPU).bit},
	0x2C: {Absolute, 3, 4, (*CPU).bit},
	0x30: {Relative, 2, 2, (*CPU).bmi},
	0xD0: {Relative, 2, 2, (*CPU).bne},
	0x10: {Relative, 2, 2, (*CPU).bpl},
	0x00: {Implicit, 2, 7, (*CPU).brk},
	0x50: {Relative, 2, 2, (*CPU).bvc},
	0x70: {Relative, 2, 2, (*CPU).bvs},

	0x18: {Implicit, 1, 2, (*CPU).clc},
	0xD8: {Implicit, 1, 2, (*CPU).cld},
	0x58: {Implicit, 1, 2, (*CPU).cli},
	0xB8: {Implicit, 1, 2, (*CPU).clv},

	0xC9: {Immediate, 2, 2, (*CPU).cmp},
	0xC5: {ZeroPage, 2, 3, (*CPU).cmp},
	0xD5: {ZeroPageX, 2, 4, (*CPU).cmp},
	0xCD: {Absolute, 3, 4, (*CPU).cmp},
	0xDD: {AbsoluteX, 3, 4, (*CPU).cmp},
	0xD9: {AbsoluteY, 3, 4, (*CPU).cmp},
	0xC1: {IndirectX, 2, 6, (*CPU).cmp},
	0xD1: {IndirectY, 2, 5, (*CPU).cmp},

	0xE0: {Immediate, 2, 2, (*CPU).cpx},
	0xE4: {ZeroPage, 2, 3, (*CPU).cpx},
	0xEC: {Absolute, 3, 4, (*CPU).cpx},
	0xC0: {Immediate, 2, 2, (*CPU).cpy},
	0xC4: {ZeroPage, 2, 3, (*CPU).cpy},
	0xCC: {Absolute, 3, 4, (*CPU).cpy},

	0xC6: {ZeroPage, 2, 5, (*CPU).dec},
	0xD6: {ZeroPageX, 2, 6, (*CPU).dec},
	0xCE: {Absolute, 3, 6, (*CPU).dec},
	0xDE: {AbsoluteX, 3, 7, (*CPU).dec},
	0xCA: {Implicit, 1, 2, (*CPU).dex},
	0x88: {Implicit, 1, 2, (*CPU).dey},

	0x49: {Immediate, 2, 2, (*CPU).eor},
	0x45: {ZeroPage, 2, 3, (*CPU).eor},
	0x55: {ZeroPageX, 2, 4, (*CPU).eor},
	0x4D: {Absolute, 3, 4, (*CPU).eor},
	0x5D: {AbsoluteX, 3, 4, (*CPU).eor},
	0x59: {AbsoluteY, 3, 4, (*CPU).eor},
	0x41: {IndirectX, 2, 6, (*CPU).eor},
	0x51: {IndirectY, 2, 5, (*CPU).eor},

	0xE6: {ZeroPage, 2, 5, (*CPU).inc},
	0xF6: {ZeroPageX, 2, 6, (*CPU).inc},
	0xEE: {Absolute, 3, 6, (*CPU).inc},
	0xFE: {AbsoluteX, 3, 7, (*CPU).inc},
	0xE8: {Implicit, 1, 2, (*CPU).inx},
	0xC8: {Implicit, 1, 2, (*CPU).iny},

	0x4C: {Absolute, 3, 3, (*CPU).jmp},
	0x6C: {Indirect, 3, 5, (*CPU).jmp},
	0x20: {Absolute, 3, 6, (*CPU).jsr},

	0xA9: {Immediate, 2, 2, (*CPU).lda},
	0xA5: {ZeroPage, 2, 3, (*CPU).lda},
	0xB5: {ZeroPageX, 2, 4, (*CPU).lda},
	0xAD: {Absolute, 3, 4, (*CPU).lda},
	0xBD: {AbsoluteX, 3, 4, (*CPU).lda},
	0xB9: {AbsoluteY, 3, 4, (*CPU).lda},
	0xA1: {IndirectX, 2, 6, (*CPU).lda},
	0xB1: {IndirectY, 2, 5, (*CPU).lda},

	0xA2: {Immediate, 2, 2, (*CPU).ldx},
	0xA6: {ZeroPage, 2, 3, (*CPU).ldx},
	0xB6: {ZeroPageY, 2, 4, (*CPU).ldx},
	0xAE: {Absolute, 3, 4, (*CPU).ldx},
	0xBE: {AbsoluteY, 3, 4, (*CPU).ldx},

	0xA0: {Immediate, 2, 2, (*CPU).ldy},
	0xA4: {ZeroPage, 2, 3, (*CPU).ldy},
	0xB4: {ZeroPageX, 2, 4, (*CPU).ldy},
	0xAC: {Absolute, 3, 4, (*CPU).ldy},
	0xBC: {AbsoluteX, 3, 4, (*CPU).ldy},

	0x4A: {Accumulator, 1, 2, (*CPU).lsr},
	0x46: {ZeroPage, 2, 5, (*CPU).lsr},
	0x56: {ZeroPageX, 2, 6, (*CPU).lsr},
	0x4E: {Absolute, 3, 6, (*CPU).lsr},
	0x5E: {AbsoluteX, 3, 7, (*CPU).lsr},

	0xEA: {Implicit, 1, 2, (*CPU).nop},

	0x09: {Immediate, 2, 2, (*CPU).ora},
	0x05: {ZeroPage, 2, 3, (*CPU).ora},
	0x15: {ZeroPageX, 2, 4, (*CPU).ora},
	0x0D: {Absolute, 3, 4, (*CPU).ora},
	0x1D: {AbsoluteX, 3, 4, (*CPU).ora},
	0x19: {AbsoluteY, 3, 4, (*CPU).ora},
	0x01: {IndirectX, 2, 6, (*CPU).ora},
	0x11: {IndirectY, 2, 5, (*CPU).ora},

	0x48: {Implicit, 1, 3, (*CPU).pha},
	0x08: {Implicit, 1, 3, (*CPU).php},
	0x68: {Implicit, 1, 4, (*CPU).pla},
	0x28: {Implicit, 1, 4, (*CPU).plp},

	0x2A: {Accumulator, 1, 2, (*CPU).rol},
	0x26: {ZeroPage, 2, 5, (*CPU).rol},
	0x36: {ZeroPageX, 2, 6, (*CPU).rol},
	0x2E: {Absolute, 3, 6, (*CPU).rol},
	0x3E: {AbsoluteX, 3, 7, (*CPU).rol},

	0x6A: {Accumulator, 1, 2, (*CPU).ror},
	0x66: {ZeroPage, 2, 5, (*CPU).ror},
	0x76: {ZeroPageX, 2, 6, (*CPU).ror},
	0x6E: {Absolute, 3, 6, (*CPU).ror},
	0x7E: {AbsoluteX, 3, 7, (*CPU).ror},

	0x40: {Implicit, 1, 6, (*CPU).rti},
	0x60: {Implicit, 1, 6, (*CPU).rts},

	0xE9: {Immediate, 2, 2, (*CPU).sbc},
	0xE5: {ZeroPage, 2, 3, (*CPU).sbc},
	0xF5: {ZeroPageX, 2, 4, (*CPU).sbc},
	0xED: {Absolute, 3, 4, (*CPU).sbc},
	0xFD: {AbsoluteX, 3, 4, (*CPU).sbc},
	0xF9: {AbsoluteY, 3, 4, (*CPU).sbc},
	0xE1: {IndirectX, 2, 6, (*CPU).sbc},
	0xF1: {IndirectY, 2, 5, (*CPU).sbc},

	0x38: {Implicit, 1, 2, (*CPU).sec},
	0xF8: {Implicit, 1, 2, (*CPU).sed},
	0x78: {Implicit, 1, 2, (*CPU).sei},

	0x85: {ZeroPage, 2, 3, (*CPU).sta},
	0x95: {ZeroPageX, 2, 4, (*CPU).sta},
	0x8D: {Absolute, 3, 4, (*CPU).sta},
	0x9D: {AbsoluteX, 3, 5, (*CPU).sta},
	0x99: {AbsoluteY, 3, 5, (*CPU).sta},
	0x81: {IndirectX, 2, 6, (*CPU).sta},
	0x91: {IndirectY, 2, 6, (*CPU).sta},

	0x86: {ZeroPage, 2, 3, (*CPU).stx},
	0x96: {ZeroPageY, 2, 4, (*CPU).stx},
	0x8E: {Absolute, 3, 4, (*CPU).stx},

	0x84: {ZeroPage, 2, 3, (*CPU).sty},
	0x94: {ZeroPageX, 2, 4, (*CPU).sty},
	0x8C: {Absolute, 3, 4, (*CPU).sty},

	0xAA: {Implicit, 1, 2, (*CPU).tax},
	0xA8: {Implicit, 1, 2, (*CPU).tay},
	0xBA: {Implicit, 1, 2, (*CPU).tsx},
	0x8A: {Implicit, 1, 2, (*CPU).txa},
	0x9A: {Implicit, 1, 2, (*CPU).txs},
	0x98: {Implicit, 1, 2, (*CPU).tya},
}
