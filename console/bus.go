// Package console wires the CPU, PPU, controllers and cartridge mapper
// into the shared memory-mapped bus spec.md §3-§4.1 describes, and drives
// them with the per-cycle ticker spec.md §5 requires.
package console

import (
	"github.com/bdwalton/gones/mappers"
	"github.com/bdwalton/gones/mos6502"
	"github.com/bdwalton/gones/ppu"
)

const (
	ramMirror  = 0x1FFF
	ppuMirror  = 0x3FFF
	cartStart  = 0x4020
	pad1Strobe = 0x4016
	pad2Strobe = 0x4017
)

// Bus implements both mos6502.Bus (Read/Write) and ppu.Bus (ChrLoad/
// ChrStore/MirrorMode/TakeMailbox/TriggerNMI/Publish). CPU-side accesses
// to $2000-$2007 never call into the PPU directly; instead they go
// through a one-shot mailbox the PPU drains on its own tick, and reads
// are served from the snapshot the PPU last published. This plays the
// same role as original_source's MemState enum without needing its
// borrow-checker workaround: ordinary field access is enough in Go.
type Bus struct {
	cpu    *mos6502.CPU
	mapper mappers.Mapper

	pad1, pad2 controller

	pending    ppu.MailboxOp
	hasPending bool

	// snapshot of the values the PPU last published via Publish.
	snapDataBuffer, snapOAMData, snapStatus uint8
}

// New constructs a Bus wired to m. Call AttachCPU before the first Tick:
// the PPU's Bus and the CPU's Bus are both satisfied by this same value,
// so neither the CPU nor the PPU can be built before the bus exists.
func New(m mappers.Mapper) *Bus {
	return &Bus{mapper: m}
}

func (b *Bus) AttachCPU(cpu *mos6502.CPU) {
	b.cpu = cpu
}

// SetButtons1 and SetButtons2 feed the latest button state into each
// controller's shift register; see controller.go.
func (b *Bus) SetButtons1(buttons uint8) { b.pad1.buttons = buttons }
func (b *Bus) SetButtons2(buttons uint8) { b.pad2.buttons = buttons }

func (b *Bus) queue(tag ppu.MemTag, val uint8, write bool) {
	b.pending = ppu.MailboxOp{Tag: tag, Value: val, Write: write}
	b.hasPending = true
}

// --- mos6502.Bus ---

func (b *Bus) Read(addr uint16) uint8 {
	switch {
	case addr <= ramMirror:
		return b.mapper.ReadBaseRAM(addr & 0x07FF)
	case addr <= ppuMirror:
		return b.readPPU(0x2000 + addr&0x0007)
	case addr == pad1Strobe:
		return b.pad1.read()
	case addr == pad2Strobe:
		return b.pad2.read()
	case addr < cartStart:
		// APU and remaining I/O registers; audio synthesis is out
		// of scope, so reads here are open-bus zero.
		return 0
	default:
		return b.mapper.PrgRead(addr)
	}
}

func (b *Bus) Write(addr uint16, val uint8) {
	switch {
	case addr <= ramMirror:
		b.mapper.WriteBaseRAM(addr&0x07FF, val)
	case addr <= ppuMirror:
		b.writePPU(0x2000+addr&0x0007, val)
	case addr == ppu.OAMDMA:
		b.cpu.RequestDMA(val)
	case addr == pad1Strobe:
		b.pad1.write(val)
		b.pad2.write(val)
	case addr < cartStart:
		// Remaining APU registers are not modeled.
	default:
		b.mapper.PrgWrite(addr, val)
	}
}

func (b *Bus) readPPU(reg uint16) uint8 {
	switch reg {
	case ppu.PPUSTATUS:
		v := b.snapStatus
		b.queue(ppu.TagPpuStatus, 0, false)
		return v
	case ppu.OAMDATA:
		return b.snapOAMData
	case ppu.PPUDATA:
		v := b.snapDataBuffer
		b.queue(ppu.TagPpuData, 0, false)
		return v
	default:
		return 0
	}
}

func (b *Bus) writePPU(reg uint16, val uint8) {
	var tag ppu.MemTag
	switch reg {
	case ppu.PPUCTRL:
		tag = ppu.TagPpuCtrl
	case ppu.PPUMASK:
		tag = ppu.TagPpuMask
	case ppu.OAMADDR:
		tag = ppu.TagOamAddr
	case ppu.OAMDATA:
		tag = ppu.TagOamData
	case ppu.PPUSCROLL:
		tag = ppu.TagPpuScroll
	case ppu.PPUADDR:
		tag = ppu.TagPpuAddr
	case ppu.PPUDATA:
		tag = ppu.TagPpuData
	default:
		return
	}
	b.queue(tag, val, true)
}

// --- ppu.Bus ---

func (b *Bus) ChrLoad(addr uint16) uint8 {
	return b.mapper.ChrRead(addr)
}

func (b *Bus) ChrStore(addr uint16, v uint8) {
	b.mapper.ChrWrite(addr, v)
}

func (b *Bus) MirrorMode() int {
	return int(b.mapper.MirroringMode())
}

func (b *Bus) TakeMailbox() (ppu.MailboxOp, bool) {
	if !b.hasPending {
		return ppu.MailboxOp{}, false
	}
	op := b.pending
	b.hasPending = false
	return op, true
}

func (b *Bus) TriggerNMI() {
	b.cpu.TriggerNMI()
}

func (b *Bus) Publish(dataBuffer, oamData, status uint8) {
	b.snapDataBuffer = dataBuffer
	b.snapOAMData = oamData
	b.snapStatus = status
}
