package cpu

import "gbcore/internal/interrupts"

// Bus is the memory interface the CPU reads instructions and operands
// through.
type Bus interface {
	Read(addr uint16) uint8
	Write(addr uint16, v uint8)
}

// StopHook is invoked when the CPU executes STOP, letting the system
// arm the speed-swap/freeze controller without the CPU package
// depending on it directly.
type StopHook func()

// CPU is the Game Boy instruction fetch/decode/execute engine.
// Grounded on the teacher's cpu.CPU, restated against spec.md's
// explicit per-M-cycle delay-counter scheduling (internal/cpu does
// not tick itself; the system tick loop calls Step once a
// previously-returned delay has elapsed).
type CPU struct {
	*Registers
	bus Bus
	irq *interrupts.Controller

	halted   bool
	ime      bool
	imePend  bool // EI's enable takes effect after the following instruction
	onStop   StopHook

	NOPCount int // executed NOPs, watched by the debug kill-conditions
}

// New returns a CPU with a fresh register file.
func New(bus Bus, irq *interrupts.Controller) *CPU {
	return &CPU{Registers: NewRegisters(), bus: bus, irq: irq}
}

// SetStopHook installs the callback invoked when STOP executes.
func (c *CPU) SetStopHook(fn StopHook) { c.onStop = fn }

// Halted reports whether the CPU is suspended awaiting an interrupt.
func (c *CPU) Halted() bool { return c.halted }

// IME reports the interrupt master enable flag.
func (c *CPU) IME() bool { return c.ime }

// Reset sets the documented post-boot-ROM register state (spec.md
// §7's reset scenario).
func (c *CPU) Reset(cgb bool) {
	c.PC = 0x0100
	c.SP = 0xFFFE
	if cgb {
		c.AF.SetUint16(0x1180)
	} else {
		c.AF.SetUint16(0x01B0)
	}
	c.BC.SetUint16(0x0013)
	c.DE.SetUint16(0x00D8)
	c.HL.SetUint16(0x014D)
	c.halted = false
	c.ime = false
}

// ServiceInterrupt services the highest-priority pending-and-enabled
// interrupt if IME is set, per spec.md §4.6. Returns the M-cycle cost
// (5) and true if an interrupt was dispatched. A pending interrupt
// always wakes the CPU from HALT, even when IME is false and nothing
// is actually serviced.
func (c *CPU) ServiceInterrupt() (cycles int, serviced bool) {
	if c.halted && c.irq.Pending() {
		c.halted = false
	}
	if !c.ime {
		return 0, false
	}
	bit, vector, ok := c.irq.Next()
	if !ok {
		return 0, false
	}
	c.ime = false
	c.irq.Clear(bit)
	c.push16(c.PC)
	c.PC = vector
	return 5, true
}

// Step fetches, decodes and executes the next instruction, applying
// any pending EI-delayed IME enable first. Returns the M-cycle cost
// of the instruction executed, or an error if the opcode is outside
// the decoder's closed set.
func (c *CPU) Step() (int, error) {
	if c.halted {
		return 1, nil
	}

	if c.imePend {
		c.ime = true
		c.imePend = false
	}

	opcode := c.fetch8()
	inst, err := Decode(opcode)
	if err != nil {
		return 0, err
	}
	return c.execute(inst)
}

func (c *CPU) fetch8() uint8 {
	v := c.bus.Read(c.PC)
	c.PC++
	return v
}

func (c *CPU) fetch16() uint16 {
	lo := c.fetch8()
	hi := c.fetch8()
	return uint16(hi)<<8 | uint16(lo)
}

func (c *CPU) push16(v uint16) {
	c.SP--
	c.bus.Write(c.SP, uint8(v>>8))
	c.SP--
	c.bus.Write(c.SP, uint8(v))
}

func (c *CPU) readR8(r r8) uint8 {
	switch r {
	case r8B:
		return c.B
	case r8C:
		return c.C
	case r8D:
		return c.D
	case r8E:
		return c.E
	case r8H:
		return c.H
	case r8L:
		return c.L
	case r8HLInd:
		return c.bus.Read(c.HL.Uint16())
	default:
		return c.A
	}
}

func (c *CPU) writeR8(r r8, v uint8) {
	switch r {
	case r8B:
		c.B = v
	case r8C:
		c.C = v
	case r8D:
		c.D = v
	case r8E:
		c.E = v
	case r8H:
		c.H = v
	case r8L:
		c.L = v
	case r8HLInd:
		c.bus.Write(c.HL.Uint16(), v)
	default:
		c.A = v
	}
}

func (c *CPU) readR16(r r16) uint16 {
	switch r {
	case r16BC:
		return c.BC.Uint16()
	case r16DE:
		return c.DE.Uint16()
	case r16HL:
		return c.HL.Uint16()
	default:
		return c.SP
	}
}

func (c *CPU) writeR16(r r16, v uint16) {
	switch r {
	case r16BC:
		c.BC.SetUint16(v)
	case r16DE:
		c.DE.SetUint16(v)
	case r16HL:
		c.HL.SetUint16(v)
	default:
		c.SP = v
	}
}

// r16MemAddr resolves the effective address for an r16mem operand,
// post-adjusting HL for the HL+/HL- forms.
func (c *CPU) r16MemAddr(r r16mem) uint16 {
	switch r {
	case r16memBC:
		return c.BC.Uint16()
	case r16memDE:
		return c.DE.Uint16()
	case r16memHLInc:
		addr := c.HL.Uint16()
		c.HL.SetUint16(addr + 1)
		return addr
	default:
		addr := c.HL.Uint16()
		c.HL.SetUint16(addr - 1)
		return addr
	}
}
