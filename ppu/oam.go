package ppu

type priority uint8

const (
	FRONT priority = iota
	BACK
)

// oam decodes one 4-byte primary/secondary OAM entry into its fields.
type oam struct {
	// Y position of top of sprite. Sprite data is delayed by one
	// scanline; the evaluator compares it directly against the scanline
	// about to be rendered. Hide a sprite by moving it down offscreen,
	// by writing any value between #$F0-#$FF here.
	y uint8
	// For 8x8 sprites, this is the tile number of this sprite within the
	// pattern table selected by PPUCTRL bit 3. For 8x16 sprites (PPUCTRL
	// bit 5 set), the PPU ignores that bit and selects the pattern table
	// from bit 0 of this number instead.
	tileId uint8

	palette      uint8
	renderP      priority
	flipV, flipH bool

	// X position of left side of sprite.
	x uint8
}

func OAMFromBytes(in []uint8) oam {
	// 76543210 -> in[2]
	// ||||||||
	// ||||||++- Palette (4 to 7) of sprite
	// |||+++--- Unimplemented (read 0)
	// ||+------ Priority (0: in front of background; 1: behind background)
	// |+------- Flip sprite horizontally
	// +-------- Flip sprite vertically
	return oam{
		y:       in[0],
		tileId:  in[1],
		palette: (in[2] & 0x03),
		renderP: priority((in[2] & 0x20) >> 5),
		flipH:   ((in[2] & 0x40) >> 6) == 1,
		flipV:   ((in[2] & 0x80) >> 7) == 1,
		x:       in[3],
	}
}

func (o oam) attributes() uint8 {
	a := o.palette | uint8(o.renderP<<5)
	if o.flipH {
		a |= (1 << 6)
	}
	if o.flipV {
		a |= (1 << 7)
	}

	return a
}

// renderUnit is one of the eight sprite rendering slots a scanline's
// secondary OAM is copied into at dots 257-320. Once loaded it counts down
// its X position, then shifts its two pattern bytes one bit per dot.
type renderUnit struct {
	attr    uint8
	counter uint8
	lshift  uint8
	hshift  uint8
	isZero  bool
}

// hasPixel reports whether this unit is both active (X counter elapsed)
// and currently holding an opaque pixel.
func (r *renderUnit) hasPixel() bool {
	return r.counter == 0 && (r.lshift|r.hshift)&0x01 != 0
}

// colorIndex returns the 2-bit pattern color of the current pixel; callers
// must only use this when hasPixel reports true.
func (r *renderUnit) colorIndex() uint8 {
	return (r.hshift&0x01)<<1 | r.lshift&0x01
}

// tick decrements the X counter while waiting, then shifts once active.
// Called once per visible dot for every loaded unit.
func (r *renderUnit) tick() {
	if r.counter > 0 {
		r.counter--
		return
	}
	r.lshift >>= 1
	r.hshift >>= 1
}

// spriteEval is the per-scanline secondary-OAM evaluator state described in
// spec §4.4: a range test over the 64 primary sprites, an 8-sprite cap, the
// documented overflow hardware bug, and sprite-zero bookkeeping one
// scanline ahead of when it is consumed by the compositor.
type spriteEval struct {
	secondary       [32]uint8
	secondaryIsZero [8]bool
	count           int

	zeroHitNow, zeroHitNext bool
}

// evaluate scans primary OAM for sprites visible on scanline and fills
// secondary OAM. The real hardware does this dot-by-dot across c=1..256;
// nothing externally observable (register reads, rendered pixels) depends
// on the intermediate per-dot progress, only on the final secondary OAM
// contents and the overflow flag, both of which this reproduces exactly.
func (e *spriteEval) evaluate(primary *[OAM_SIZE]uint8, scanline int, big bool) (overflow bool) {
	for i := range e.secondary {
		e.secondary[i] = 0xFF
	}
	for i := range e.secondaryIsZero {
		e.secondaryIsZero[i] = false
	}

	height := uint8(8)
	if big {
		height = 16
	}

	e.count = 0
	e.zeroHitNext = false

	memIndex := 0
	for memIndex < OAM_SIZE {
		y := primary[memIndex]
		inRange := y < 0xF0 && uint8(scanline) >= y && uint8(scanline) < y+height

		if e.count < 8 {
			if inRange {
				copy(e.secondary[e.count*4:e.count*4+4], primary[memIndex:memIndex+4])
				if memIndex == 0 {
					e.secondaryIsZero[e.count] = true
					e.zeroHitNext = true
				}
				e.count++
			}
			memIndex += 4
			continue
		}

		// Past the 8-sprite limit: the documented hardware bug reuses
		// the same counter for both sprite index and in-sprite byte
		// offset, so a miss here advances by 5 bytes instead of 4.
		if inRange {
			overflow = true
			break
		}
		memIndex += 5
	}

	return overflow
}

// loadUnits copies secondary OAM into the eight rendering units, fetching
// each sprite's pattern bytes from the mapper via load.
func (e *spriteEval) loadUnits(units *[8]renderUnit, scanline int, ctrl uint8, load func(addr uint16) uint8) int {
	big := ctrl&CTRL_SPRITE_SIZE != 0

	for i := 0; i < 8; i++ {
		u := &units[i]
		if i >= e.count {
			*u = renderUnit{}
			continue
		}

		s := OAMFromBytes(e.secondary[i*4 : i*4+4])

		row := uint8(scanline) - s.y
		if s.flipV {
			if big {
				row = 15 - row
			} else {
				row = 7 - row
			}
		}

		var tileAddr uint16
		if big {
			table := uint16(s.tileId&0x01) * 0x1000
			tile := uint16(s.tileId &^ 0x01)
			if row >= 8 {
				tile++
				row -= 8
			}
			tileAddr = table + tile*16 + uint16(row)
		} else {
			table := uint16(0)
			if ctrl&CTRL_SPRITE_PATTERN_ADDR != 0 {
				table = 0x1000
			}
			tileAddr = table + uint16(s.tileId)*16 + uint16(row)
		}

		lo := load(tileAddr)
		hi := load(tileAddr + 8)
		if s.flipH {
			lo = reverseBits(lo)
			hi = reverseBits(hi)
		}

		*u = renderUnit{
			attr:    s.attributes(),
			counter: s.x,
			lshift:  lo,
			hshift:  hi,
			isZero:  e.secondaryIsZero[i],
		}
	}

	return e.count
}

func reverseBits(b uint8) uint8 {
	var r uint8
	for i := 0; i < 8; i++ {
		r <<= 1
		r |= b & 1
		b >>= 1
	}
	return r
}
