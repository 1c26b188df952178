// Package speed implements the CGB double-speed controller: the KEY1
// register, the STOP-triggered speed swap, and the 2050-M-cycle STOP
// freeze. Generalized from the teacher's Scheduler double-speed
// bookkeeping into the narrower state machine spec.md §4.12 asks for.
package speed

// stopFreezeCycles is the duration of the CPU freeze triggered by STOP.
const stopFreezeCycles = 2050

// Controller tracks the current CPU speed and any in-progress STOP
// freeze.
type Controller struct {
	double    bool
	armed     bool
	remaining int
	parity    bool
}

// NewController returns a speed controller starting in normal speed.
func NewController() *Controller {
	return &Controller{}
}

// Double reports whether the CPU is currently running at double speed.
func (c *Controller) Double() bool { return c.double }

// Frozen reports whether a STOP freeze is in progress.
func (c *Controller) Frozen() bool { return c.remaining > 0 }

// ReadKEY1 returns the KEY1 register: bit 7 is the current speed, bit
// 0 reports whether a swap is armed.
func (c *Controller) ReadKEY1() uint8 {
	v := uint8(0)
	if c.double {
		v |= 0x80
	}
	if c.armed {
		v |= 0x01
	}
	return v
}

// WriteKEY1 arms (or disarms) the speed swap that occurs on the next STOP.
func (c *Controller) WriteKEY1(v uint8) {
	c.armed = v&0x01 != 0
}

// TriggerSTOP is called when the CPU executes STOP. It performs the
// speed swap if armed, and always begins the 2050-M-cycle freeze.
func (c *Controller) TriggerSTOP() {
	if c.armed {
		c.double = !c.double
		c.armed = false
	}
	c.remaining = stopFreezeCycles
}

// Advance is called once per M-cycle by the top-level tick loop. It
// counts down an in-progress STOP freeze and tracks which half of a
// double-speed pair the current M-cycle is.
func (c *Controller) Advance() {
	if c.remaining > 0 {
		c.remaining--
	}
	if c.double {
		c.parity = !c.parity
	} else {
		c.parity = true
	}
}

// FullCycle reports whether the current M-cycle is the first of each
// pair of double-speed M-cycles (always true at normal speed). PPU and
// VRAM DMA consult this so they never advance twice per double-speed
// pair.
func (c *Controller) FullCycle() bool {
	if !c.double {
		return true
	}
	return c.parity
}
