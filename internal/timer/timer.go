// Package timer implements the DIV/TIMA hardware timers: two
// independent dividers advanced once per M-cycle by the top-level
// tick loop. Grounded on the teacher's timer.Controller register
// wiring, restated against the spec's explicit per-M-cycle counters
// instead of the teacher's scheduler-event cadence.
package timer

import "gbcore/internal/interrupts"

// timaPeriods maps TAC bits[1:0] to the TIMA increment period, in
// M-cycles.
var timaPeriods = [4]uint16{256, 4, 16, 64}

// Controller owns DIV and TIMA.
type Controller struct {
	irq *interrupts.Controller

	divSub uint16 // sub-counter, wraps every 64 M-cycles
	div    uint8

	timaSub uint16 // sub-counter within the current TIMA period
	tima    uint8
	tma     uint8
	tac     uint8
}

// NewController returns a timer controller driving the given
// interrupt controller on TIMA overflow.
func NewController(irq *interrupts.Controller) *Controller {
	return &Controller{irq: irq}
}

// Tick advances both dividers by one M-cycle. While frozen (during a
// STOP freeze window) neither divider moves.
func (c *Controller) Tick(frozen bool) {
	if frozen {
		return
	}

	c.divSub++
	if c.divSub >= 64 {
		c.divSub = 0
		c.div++
	}

	if c.tac&0x04 == 0 {
		return
	}
	period := timaPeriods[c.tac&0x03]
	c.timaSub++
	if c.timaSub >= period {
		c.timaSub -= period
		c.tima++
		if c.tima == 0 {
			c.tima = c.tma
			c.irq.Request(interrupts.Timer)
		}
	}
}

// ReadDIV returns the visible DIV register.
func (c *Controller) ReadDIV() uint8 { return c.div }

// WriteDIV resets DIV (and its internal sub-counter) to zero,
// regardless of the value written.
func (c *Controller) WriteDIV(uint8) {
	c.div = 0
	c.divSub = 0
}

// ReadTIMA returns TIMA.
func (c *Controller) ReadTIMA() uint8 { return c.tima }

// WriteTIMA sets TIMA directly.
func (c *Controller) WriteTIMA(v uint8) { c.tima = v }

// ReadTMA returns TMA.
func (c *Controller) ReadTMA() uint8 { return c.tma }

// WriteTMA sets TMA.
func (c *Controller) WriteTMA(v uint8) { c.tma = v }

// ReadTAC returns TAC; the unused upper bits read back as 1.
func (c *Controller) ReadTAC() uint8 { return c.tac&0x07 | 0xF8 }

// WriteTAC sets TAC's enable bit and period selector.
func (c *Controller) WriteTAC(v uint8) { c.tac = v & 0x07 }
