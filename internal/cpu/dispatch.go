package cpu

import "gbcore/internal/fault"

// execute runs a decoded instruction and returns its M-cycle cost.
func (c *CPU) execute(inst Instruction) (int, error) {
	switch inst.Kind {
	case KindNOP:
		c.NOPCount++
		return 1, nil
	case KindSTOP:
		c.fetch8() // STOP is followed by a padding byte on real hardware
		if c.onStop != nil {
			c.onStop()
		}
		return 1, nil
	case KindHALT:
		c.halted = true
		return 1, nil
	case KindJR:
		return c.execJR(inst)
	case KindJRCond:
		return c.execJRCond(inst)
	case KindLDR16Imm16:
		return c.execLDR16Imm16(inst)
	case KindLDR16MemA:
		return c.execLDR16MemA(inst)
	case KindLDAR16Mem:
		return c.execLDAR16Mem(inst)
	case KindLDImm16SP:
		return c.execLDImm16SP()
	case KindIncR16:
		return c.execIncR16(inst)
	case KindDecR16:
		return c.execDecR16(inst)
	case KindAddHLR16:
		return c.execAddHLR16(inst)
	case KindIncR8:
		return c.execIncR8(inst)
	case KindDecR8:
		return c.execDecR8(inst)
	case KindLDR8Imm8:
		return c.execLDR8Imm8(inst)
	case KindLDR8R8:
		return c.execLDR8R8(inst)
	case KindALU:
		return c.execALU(inst)
	}
	return 0, fault.New(fault.UndecodedOpcode, "unreachable: decoded instruction with no executor")
}
