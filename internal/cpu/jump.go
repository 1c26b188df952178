package cpu

// execJR implements unconditional JR imm8. The operand is fetched
// (advancing PC past it) before the signed offset is applied, so the
// jump is relative to the instruction following JR, per spec.md §4.5.
func (c *CPU) execJR(inst Instruction) (int, error) {
	offset := int8(c.fetch8())
	c.PC = uint16(int32(c.PC) + int32(offset))
	return 3, nil
}

// execJRCond implements JR cc,imm8.
func (c *CPU) execJRCond(inst Instruction) (int, error) {
	offset := int8(c.fetch8())
	if !c.condMet(inst.Cond) {
		return 2, nil
	}
	c.PC = uint16(int32(c.PC) + int32(offset))
	return 3, nil
}

func (c *CPU) condMet(cc cond) bool {
	switch cc {
	case condNZ:
		return !c.Flag(FlagZ)
	case condZ:
		return c.Flag(FlagZ)
	case condNC:
		return !c.Flag(FlagC)
	default:
		return c.Flag(FlagC)
	}
}
