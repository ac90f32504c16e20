package ppu

// scrollUnit is the canonical "loopy" scroll/address design: two 15-bit
// registers v (current VRAM address) and t (temporary address), a 3-bit
// fine-X, and the PPUSCROLL/PPUADDR write-toggle w.
type scrollUnit struct {
	v, t  loopy
	fineX uint8
	w     bool
}

// SetPPUCtrl copies the base-nametable bits of a PPUCTRL write into t.
func (s *scrollUnit) SetPPUCtrl(val uint8) {
	s.t.data = (s.t.data & 0xF3FF) | (uint16(val&0x03) << 10)
}

// SetScroll handles a PPUSCROLL write, alternating on w between the X and Y
// halves of the scroll position.
func (s *scrollUnit) SetScroll(val uint8) {
	if !s.w {
		s.t.setCoarseX(uint16(val >> 3))
		s.fineX = val & 0x07
	} else {
		s.t.setCoarseY(uint16(val >> 3))
		s.t.setFineY(uint16(val & 0x07))
	}
	s.w = !s.w
}

// SetAddress handles a PPUADDR write, alternating on w between the high and
// low bytes of t. The second write copies t into v.
func (s *scrollUnit) SetAddress(val uint8) {
	if !s.w {
		s.t.data = (s.t.data & 0x00FF) | (uint16(val&0x3F) << 8)
	} else {
		s.t.data = (s.t.data & 0xFF00) | uint16(val)
		s.v = s.t
	}
	s.w = !s.w
}

// Reset clears the write toggle, as happens on every PPUSTATUS read.
func (s *scrollUnit) Reset() {
	s.w = false
}

// IncrementCoarseX wraps coarse-X at 31 back to 0, flipping the horizontal
// nametable bit.
func (s *scrollUnit) IncrementCoarseX() {
	if s.v.coarseX() == 31 {
		s.v.setCoarseX(0)
		s.v.toggleNametableX()
	} else {
		s.v.incrementCoarseX()
	}
}

// IncrementY advances fine-Y, rolling into coarse-Y (with the nametable
// flip at row 29, and the documented non-flipping wrap at row 31 for
// scroll positions beyond the nametable) once fine-Y overflows.
func (s *scrollUnit) IncrementY() {
	if s.v.fineY() < 7 {
		s.v.incrementFineY()
		return
	}

	s.v.setFineY(0)
	switch y := s.v.coarseY(); y {
	case 29:
		s.v.setCoarseY(0)
		s.v.toggleNametableY()
	case 31:
		s.v.setCoarseY(0)
	default:
		s.v.incrementCoarseY()
	}
}

// CopyHorizontal copies the horizontal nametable bit and coarse-X from t
// into v, performed at dot 257 of every scanline.
func (s *scrollUnit) CopyHorizontal() {
	s.v.data = (s.v.data & 0xFBE0) | (s.t.data & 0x041F)
}

// CopyVertical copies the vertical nametable bit, coarse-Y and fine-Y from
// t into v, performed at dots 280-304 of the pre-render line.
func (s *scrollUnit) CopyVertical() {
	s.v.data = (s.v.data & 0x841F) | (s.t.data & 0x7BE0)
}

// GetAddress returns the address background/sprite fetches or a PPUDATA
// access should use. Outside of rendering it also performs the
// CTRL_INCREMENT post-increment of v, exactly once per PPUDATA access.
func (s *scrollUnit) GetAddress(rendering bool, increment uint16) uint16 {
	addr := s.v.data & 0x7FFF
	if !rendering {
		s.v.data = (s.v.data + increment) & 0x7FFF
	}
	return addr
}

// FineY returns the 3-bit fine-Y scroll of v.
func (s *scrollUnit) FineY() uint16 {
	return s.v.fineY()
}
