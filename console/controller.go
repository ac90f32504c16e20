package console

// controller implements the NES's shift-register joypad protocol. Button
// state comes from outside via SetButtons1/SetButtons2 on Bus (the host
// owns key polling); this type only owns the strobe/shift-register
// timing, which is unchanged from the original design.
//
// Buttons, as bits:
// 0 - A
// 1 - B
// 2 - Select
// 3 - Start
// 4 - Up
// 5 - Down
// 6 - Left
// 7 - Right
type controller struct {
	strobe   bool
	buttons  uint8 // live external state, refreshed by Bus.SetButtons*
	shiftReg uint8 // snapshot latched when strobe goes low
	idx      uint8
}

func (c *controller) write(val uint8) {
	switch val & 0x01 {
	case 0:
		c.strobe = false
		c.shiftReg = c.buttons
		c.idx = 0

	case 1:
		c.strobe = true
		c.idx = 0
	}
}

func (c *controller) read() uint8 {
	if c.idx > 7 {
		return 1
	}

	ret := c.shiftReg & (1 << c.idx) >> c.idx
	c.idx++
	return ret
}
