package cpu

import "gbcore/internal/fault"

// Kind tags the closed set of instruction variants spec.md §4.4 names
// for blocks 0-2. Block 3 and the 0xCB prefix, and the handful of
// block-0 single-register ops it never enumerates (RLCA/RRCA/RLA/RRA/
// DAA/CPL/SCF/CCF), decode to an UndecodedOpcode fault instead of a Kind.
type Kind uint8

const (
	KindNOP Kind = iota
	KindSTOP
	KindJR
	KindJRCond
	KindLDR16Imm16
	KindLDR16MemA
	KindLDAR16Mem
	KindLDImm16SP
	KindIncR16
	KindDecR16
	KindAddHLR16
	KindIncR8
	KindDecR8
	KindLDR8Imm8
	KindLDR8R8
	KindHALT
	KindALU
)

// AluOp is the block-2 arithmetic/logic operation selector.
type AluOp uint8

const (
	AluADD AluOp = iota
	AluADC
	AluSUB
	AluSBC
	AluAND
	AluXOR
	AluOR
	AluCP
)

// Immediate distinguishes an instruction's trailing operand shape.
type Immediate uint8

const (
	ImmNone Immediate = iota
	ImmU8
	ImmU16
)

// Instruction is a decoded opcode: a tag plus whichever operand
// fields that tag uses. Grounded on spec.md's redesign note calling
// for a tagged-union decode result instead of per-instruction
// polymorphic objects.
type Instruction struct {
	Kind Kind
	Imm  Immediate

	R8Dst, R8Src r8
	R16          r16
	R16Mem       r16mem
	Cond         cond
	Alu          AluOp
}

// Decode classifies a single opcode byte into its Instruction, or
// returns an UndecodedOpcode fault for anything outside spec.md
// §4.4's enumerated blocks 0-2 set.
func Decode(opcode uint8) (Instruction, error) {
	switch opcode >> 6 {
	case 0:
		return decodeBlock0(opcode)
	case 1:
		return decodeBlock1(opcode)
	case 2:
		return decodeBlock2(opcode)
	default:
		return Instruction{}, fault.New(fault.UndecodedOpcode, "block 3 opcode %#02x", opcode)
	}
}

func decodeBlock0(op uint8) (Instruction, error) {
	switch {
	case op == 0x00:
		return Instruction{Kind: KindNOP}, nil
	case op == 0x10:
		return Instruction{Kind: KindSTOP}, nil
	case op == 0x18:
		return Instruction{Kind: KindJR, Imm: ImmU8}, nil
	case op&0xE7 == 0x20:
		return Instruction{Kind: KindJRCond, Imm: ImmU8, Cond: cond((op >> 3) & 0x03)}, nil
	case op&0xCF == 0x01:
		return Instruction{Kind: KindLDR16Imm16, Imm: ImmU16, R16: r16((op >> 4) & 0x03)}, nil
	case op&0xCF == 0x02:
		return Instruction{Kind: KindLDR16MemA, R16Mem: r16mem((op >> 4) & 0x03)}, nil
	case op&0xCF == 0x0A:
		return Instruction{Kind: KindLDAR16Mem, R16Mem: r16mem((op >> 4) & 0x03)}, nil
	case op == 0x08:
		return Instruction{Kind: KindLDImm16SP, Imm: ImmU16}, nil
	case op&0xCF == 0x03:
		return Instruction{Kind: KindIncR16, R16: r16((op >> 4) & 0x03)}, nil
	case op&0xCF == 0x0B:
		return Instruction{Kind: KindDecR16, R16: r16((op >> 4) & 0x03)}, nil
	case op&0xCF == 0x09:
		return Instruction{Kind: KindAddHLR16, R16: r16((op >> 4) & 0x03)}, nil
	case op&0xC7 == 0x04:
		return Instruction{Kind: KindIncR8, R8Dst: r8((op >> 3) & 0x07)}, nil
	case op&0xC7 == 0x05:
		return Instruction{Kind: KindDecR8, R8Dst: r8((op >> 3) & 0x07)}, nil
	case op&0xC7 == 0x06:
		return Instruction{Kind: KindLDR8Imm8, Imm: ImmU8, R8Dst: r8((op >> 3) & 0x07)}, nil
	}
	return Instruction{}, fault.New(fault.UndecodedOpcode, "block 0 opcode %#02x", op)
}

func decodeBlock1(op uint8) (Instruction, error) {
	if op == 0x76 {
		return Instruction{Kind: KindHALT}, nil
	}
	return Instruction{
		Kind:  KindLDR8R8,
		R8Dst: r8((op >> 3) & 0x07),
		R8Src: r8(op & 0x07),
	}, nil
}

func decodeBlock2(op uint8) (Instruction, error) {
	return Instruction{
		Kind:  KindALU,
		Alu:   AluOp((op >> 3) & 0x07),
		R8Src: r8(op & 0x07),
	}, nil
}
