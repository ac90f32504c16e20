package console

import (
	"github.com/bdwalton/gones/mappers"
	"github.com/bdwalton/gones/mos6502"
	"github.com/bdwalton/gones/ppu"
)

// Machine is the top-level ticker: it owns the CPU, PPU and the Bus that
// joins them to a cartridge mapper, and drives them in the fixed 1:3
// CPU:PPU cycle ratio real hardware runs at.
type Machine struct {
	Bus *Bus
	cpu *mos6502.CPU
	ppu *ppu.PPU
}

func NewMachine(m mappers.Mapper) *Machine {
	bus := New(m)
	cpu := mos6502.New(bus)
	bus.AttachCPU(cpu)

	return &Machine{
		Bus: bus,
		cpu: cpu,
		ppu: ppu.New(bus),
	}
}

func (mc *Machine) Reset() {
	mc.cpu.Reset()
}

func (mc *Machine) Frame() *[ppu.NES_RES_HEIGHT][ppu.NES_RES_WIDTH]uint8 {
	return mc.ppu.Frame()
}

func (mc *Machine) FrameCount() uint64 {
	return mc.ppu.FrameCount()
}

// Tick advances the machine by one CPU cycle's worth of work: a single
// CPU tick followed by three PPU ticks.
func (mc *Machine) Tick() {
	mc.cpu.Tick()
	mc.ppu.Tick()
	mc.ppu.Tick()
	mc.ppu.Tick()
}

// RunFrame ticks the machine until a new frame has been produced. poll is
// called once per CPU cycle (not once per frame) so held buttons reach
// the controller shift registers with at most a single NES cycle of
// latency; poll may be nil for headless runs that drive SetButtons
// through the Bus directly.
func (mc *Machine) RunFrame(poll func() (p1, p2 uint8)) {
	start := mc.ppu.FrameCount()
	for mc.ppu.FrameCount() == start {
		if poll != nil {
			b1, b2 := poll()
			mc.Bus.SetButtons1(b1)
			mc.Bus.SetButtons2(b2)
		}
		mc.Tick()
	}
}
