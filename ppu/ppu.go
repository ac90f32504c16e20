// Package ppu implements the picture processing unit hardware of the NES:
// the scroll/address unit, the background fetch/shift pipeline, the OAM
// sprite evaluator, and the pixel compositor, driven one dot at a time.
package ppu

// PPU implements the per-dot NES picture processing unit.
type PPU struct {
	bus Bus

	ctrl, mask, status uint8
	oamAddr             uint8
	oam                 [OAM_SIZE]uint8

	scroll scrollUnit
	bg     background
	eval   spriteEval
	units  [8]renderUnit
	active int // number of loaded renderUnits this scanline

	vram    [VRAM_SIZE]uint8
	palette [PALETTE_SIZE]uint8

	frame [NES_RES_HEIGHT][NES_RES_WIDTH]uint8

	scanline   int
	dot        int
	frameCount uint64

	dataBuffer uint8
}

// New constructs a PPU wired to bus. The PPU starts at dot 0 of scanline 0
// so the first Tick begins a fresh frame.
func New(bus Bus) *PPU {
	return &PPU{bus: bus, scanline: 0}
}

// Frame returns the current frame buffer: 240 rows of 256 palette indices.
// It is safe to read between frames; the compositor only ever writes
// during visible dots.
func (p *PPU) Frame() *[NES_RES_HEIGHT][NES_RES_WIDTH]uint8 {
	return &p.frame
}

// FrameCount returns the number of frames completed so far.
func (p *PPU) FrameCount() uint64 {
	return p.frameCount
}

// Tick advances the PPU by exactly one dot.
func (p *PPU) Tick() {
	if op, ok := p.bus.TakeMailbox(); ok {
		p.applyMailbox(op)
	}

	rendering := p.renderingEnabled()

	switch {
	case p.scanline <= 239:
		p.scanlineDot(rendering, true)
	case p.scanline == 241 && p.dot == 1:
		p.status |= STATUS_VERTICAL_BLANK
		if p.ctrl&CTRL_GENERATE_NMI != 0 {
			p.bus.TriggerNMI()
		}
	case p.scanline == 261:
		if p.dot == 1 {
			p.status &^= STATUS_VERTICAL_BLANK | STATUS_SPRITE_0_HIT | STATUS_SPRITE_OVERFLOW
		}
		p.scanlineDot(rendering, false)
		if rendering && p.dot >= 280 && p.dot <= 304 {
			p.scroll.CopyVertical()
		}
	}

	p.advanceDot()
	p.bus.Publish(p.dataBuffer, p.oam[p.oamAddr], p.status)
}

func (p *PPU) renderingEnabled() bool {
	return p.mask&(MASK_SHOW_BACKGROUND|MASK_SHOW_SPRITES) != 0
}

// scanlineDot drives the background fetch/shift cadence and the sprite
// evaluator for a visible or pre-render scanline, and composites a pixel
// when visible is true.
func (p *PPU) scanlineDot(rendering bool, visible bool) {
	dot := p.dot

	if rendering {
		if (dot >= 1 && dot <= 256) || (dot >= 321 && dot <= 336) {
			p.bg.shift()
			p.runFetchCadence(dot)
		}
		if dot >= 1 && dot <= 256 {
			for i := 0; i < p.active; i++ {
				p.units[i].tick()
			}
		}
		if dot == 256 {
			p.scroll.IncrementY()
		}
		if dot == 257 {
			p.scroll.CopyHorizontal()
		}
		nextScanline := (p.scanline + 1) % 262
		if dot == 65 {
			if p.eval.evaluate(&p.oam, nextScanline, p.ctrl&CTRL_SPRITE_SIZE != 0) {
				p.status |= STATUS_SPRITE_OVERFLOW
			}
		}
		if dot == 257 {
			p.active = p.eval.loadUnits(&p.units, nextScanline, p.ctrl, p.bus.ChrLoad)
		}
	}

	if visible && dot >= 1 && dot <= 256 {
		p.compositePixel(dot, rendering)
	}
}

func (p *PPU) runFetchCadence(dot int) {
	switch phase := (dot - 1) & 7; phase {
	case 1:
		p.bg.ntByte = p.fetchNametableByte()
	case 3:
		p.bg.atBits = p.fetchAttributeBits()
	case 5:
		p.bg.patLoByte = p.fetchPatternByte(false)
	case 7:
		p.bg.patHiByte = p.fetchPatternByte(true)
		p.bg.loadShifters()
		p.scroll.IncrementCoarseX()
	}
}

func (p *PPU) fetchNametableByte() uint8 {
	addr := nametable0 | (p.scroll.v.data & 0x0FFF)
	return p.vramRead(addr)
}

func (p *PPU) fetchAttributeBits() uint8 {
	v := p.scroll.v.data
	addr := uint16(0x23C0) | (v & 0x0C00) | ((v >> 4) & 0x38) | ((v >> 2) & 0x07)
	raw := p.vramRead(addr)

	coarseX := v & 0x1F
	coarseY := (v >> 5) & 0x1F
	shift := ((coarseY & 2) << 1) | (coarseX & 2)
	return (raw >> shift) & 0x03
}

func (p *PPU) fetchPatternByte(high bool) uint8 {
	table := uint16(0)
	if p.ctrl&CTRL_BACKROUND_PATTERN_ADDR != 0 {
		table = 0x1000
	}
	addr := table + uint16(p.bg.ntByte)*16 + p.scroll.FineY()
	if high {
		addr += 8
	}
	return p.bus.ChrLoad(addr)
}

// compositePixel implements spec §4.5: background pixel, then sprite
// override by priority, writing the final palette index into the frame
// buffer.
func (p *PPU) compositePixel(dot int, rendering bool) {
	if !rendering {
		p.frame[p.scanline][dot-1] = p.palette[0]
		return
	}

	showLeft := dot > 8
	bgIndex := uint8(0)
	if p.mask&MASK_SHOW_BACKGROUND != 0 && (showLeft || p.mask&MASK_SHOW_BACKGROUND_LEFT != 0) {
		bgIndex = p.bg.pixel(p.scroll.fineX)
	}

	color := p.palette[paletteRAMIndex(bgIndex)]

	if p.mask&MASK_SHOW_SPRITES != 0 && (showLeft || p.mask&MASK_SHOW_SPRITES_LEFT != 0) {
		for i := 0; i < p.active; i++ {
			u := &p.units[i]
			if !u.hasPixel() {
				continue
			}

			if u.isZero && p.eval.zeroHitNow && bgIndex != 0 && dot != 256 {
				p.status |= STATUS_SPRITE_0_HIT
			}

			foreground := u.attr&0x20 == 0
			if foreground || bgIndex == 0 {
				spriteIndex := 0x10 | (u.attr&0x03)<<2 | u.colorIndex()
				color = p.palette[paletteRAMIndex(spriteIndex)]
			}
			break
		}
	}

	p.frame[p.scanline][dot-1] = color
}

func (p *PPU) advanceDot() {
	p.dot++
	if p.dot > 340 {
		p.dot = 0
		p.scanline++
		if p.scanline > 261 {
			p.scanline = 0
			p.frameCount++
		}

		p.eval.zeroHitNow = p.eval.zeroHitNext
		p.eval.zeroHitNext = false

		if p.scanline == 0 && p.mask&MASK_SHOW_BACKGROUND != 0 && p.frameCount%2 == 1 {
			p.dot = 1
		}
	}
}

// applyMailbox reacts to the one-shot mailbox entry taken from the bus:
// either a register write, or the deferred side effect of a register read
// (PPUSTATUS clears VBLANK/w; PPUDATA refills the read buffer).
func (p *PPU) applyMailbox(op MailboxOp) {
	if !op.Write {
		switch op.Tag {
		case TagPpuStatus:
			p.status &^= STATUS_VERTICAL_BLANK
			p.scroll.Reset()
		case TagPpuData:
			p.refillDataBuffer()
		}
		return
	}

	switch op.Tag {
	case TagPpuCtrl:
		p.ctrl = op.Value
		p.scroll.SetPPUCtrl(op.Value)
	case TagPpuMask:
		p.mask = op.Value
	case TagOamAddr:
		p.oamAddr = op.Value
	case TagOamData:
		p.oam[p.oamAddr] = op.Value
		p.oamAddr++
	case TagPpuScroll:
		p.scroll.SetScroll(op.Value)
	case TagPpuAddr:
		p.scroll.SetAddress(op.Value)
	case TagPpuData:
		p.writeData(op.Value)
	}
}

func (p *PPU) vramIncrement() uint16 {
	if p.ctrl&CTRL_VRAM_ADD_INCREMENT != 0 {
		return CTRL_INCR_DOWN
	}
	return CTRL_INCR_ACROSS
}

func (p *PPU) writeData(val uint8) {
	addr := p.scroll.GetAddress(false, p.vramIncrement())
	p.vramWrite(addr, val)
}

func (p *PPU) refillDataBuffer() {
	addr := p.scroll.GetAddress(false, p.vramIncrement())
	p.dataBuffer = p.vramRead(addr)
}

func (p *PPU) vramRead(addr uint16) uint8 {
	addr &= 0x3FFF
	switch {
	case addr < nametable0:
		return p.bus.ChrLoad(addr)
	case addr < paletteRAM:
		return p.vram[p.mirrorAddr(addr)]
	default:
		return p.palette[paletteRAMIndex(uint8(addr))]
	}
}

func (p *PPU) vramWrite(addr uint16, v uint8) {
	addr &= 0x3FFF
	switch {
	case addr < nametable0:
		p.bus.ChrStore(addr, v)
	case addr < paletteRAM:
		p.vram[p.mirrorAddr(addr)] = v
	default:
		p.palette[paletteRAMIndex(uint8(addr))] = v & 0x3F
	}
}

// mirrorAddr maps a $2000-$3EFF nametable address into the 2 KiB of
// on-console VRAM according to the cartridge's mirroring mode.
// https://www.nesdev.org/wiki/Mirroring#Nametable_Mirroring
func (p *PPU) mirrorAddr(addr uint16) uint16 {
	a := (addr - nametable0) % 0x1000
	switch p.bus.MirrorMode() {
	case MIRROR_HORIZONTAL:
		if a >= 0x800 {
			return 0x0400 + ((a - 0x800) % 0x400)
		}
		return a % 0x0400
	case MIRROR_VERTICAL:
		return a % 0x800
	default:
		panic("ppu: four-screen mirroring needs mapper-provided VRAM, not supported")
	}
}

// paletteRAMIndex applies the $10/$14/$18/$1C background-color aliasing
// (spec §8 property 3) to a raw palette address or index.
func paletteRAMIndex(i uint8) uint8 {
	i &= 0x1F
	if i&0x03 == 0 {
		i &= 0x0F
	}
	return i
}
