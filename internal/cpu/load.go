package cpu

// execLDR16Imm16 implements LD r16,imm16.
func (c *CPU) execLDR16Imm16(inst Instruction) (int, error) {
	v := c.fetch16()
	c.writeR16(inst.R16, v)
	return 3, nil
}

// execLDR16MemA implements LD (r16mem),A.
func (c *CPU) execLDR16MemA(inst Instruction) (int, error) {
	addr := c.r16MemAddr(inst.R16Mem)
	c.bus.Write(addr, c.A)
	return 2, nil
}

// execLDAR16Mem implements LD A,(r16mem).
func (c *CPU) execLDAR16Mem(inst Instruction) (int, error) {
	addr := c.r16MemAddr(inst.R16Mem)
	c.A = c.bus.Read(addr)
	return 2, nil
}

// execLDImm16SP implements LD (imm16),SP.
func (c *CPU) execLDImm16SP() (int, error) {
	addr := c.fetch16()
	c.bus.Write(addr, uint8(c.SP))
	c.bus.Write(addr+1, uint8(c.SP>>8))
	return 5, nil
}

// execLDR8Imm8 implements LD r8,imm8.
func (c *CPU) execLDR8Imm8(inst Instruction) (int, error) {
	v := c.fetch8()
	c.writeR8(inst.R8Dst, v)
	if inst.R8Dst == r8HLInd {
		return 3, nil
	}
	return 2, nil
}

// execLDR8R8 implements LD r8,r8 (block 1, excluding 0x76/HALT).
func (c *CPU) execLDR8R8(inst Instruction) (int, error) {
	v := c.readR8(inst.R8Src)
	c.writeR8(inst.R8Dst, v)
	if inst.R8Dst == r8HLInd || inst.R8Src == r8HLInd {
		return 2, nil
	}
	return 1, nil
}
