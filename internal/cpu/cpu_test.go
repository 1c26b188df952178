package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gbcore/internal/fault"
	"gbcore/internal/interrupts"
)

type fakeBus struct {
	mem [0x10000]uint8
}

func (b *fakeBus) Read(addr uint16) uint8     { return b.mem[addr] }
func (b *fakeBus) Write(addr uint16, v uint8) { b.mem[addr] = v }

func newTestCPU() (*CPU, *fakeBus, *interrupts.Controller) {
	bus := &fakeBus{}
	irq := interrupts.NewController()
	return New(bus, irq), bus, irq
}

func TestResetStateDMG(t *testing.T) {
	c, _, _ := newTestCPU()
	c.Reset(false)
	assert.Equal(t, uint16(0x0100), c.PC)
	assert.Equal(t, uint16(0xFFFE), c.SP)
	assert.Equal(t, uint16(0x01B0), c.AF.Uint16())
	assert.False(t, c.IME())
}

func TestResetStateCGB(t *testing.T) {
	c, _, _ := newTestCPU()
	c.Reset(true)
	assert.Equal(t, uint16(0x1180), c.AF.Uint16())
}

func TestNOPCosts1Cycle(t *testing.T) {
	c, bus, _ := newTestCPU()
	c.Reset(false)
	bus.mem[0x0100] = 0x00
	cycles, err := c.Step()
	require.NoError(t, err)
	assert.Equal(t, 1, cycles)
	assert.Equal(t, uint16(0x0101), c.PC)
}

func TestJRUsesPostFetchPC(t *testing.T) {
	c, bus, _ := newTestCPU()
	c.Reset(false)
	bus.mem[0x0100] = 0x18 // JR
	bus.mem[0x0101] = 0xFE // -2: jump back to self
	_, err := c.Step()
	require.NoError(t, err)
	assert.Equal(t, uint16(0x0100), c.PC)
}

func TestJRCondNotTakenCosts2(t *testing.T) {
	c, bus, _ := newTestCPU()
	c.Reset(false)
	c.SetFlag(FlagZ, false)
	bus.mem[0x0100] = 0x28 // JR Z
	bus.mem[0x0101] = 0x10
	cycles, err := c.Step()
	require.NoError(t, err)
	assert.Equal(t, 2, cycles)
	assert.Equal(t, uint16(0x0102), c.PC)
}

func TestUndecodedBlock3ReturnsFault(t *testing.T) {
	c, bus, _ := newTestCPU()
	c.Reset(false)
	bus.mem[0x0100] = 0xF3 // DI, block 3
	_, err := c.Step()
	var f *fault.Fault
	require.ErrorAs(t, err, &f)
	assert.Equal(t, fault.UndecodedOpcode, f.Kind)
}

func TestUndecodedBlock0MiscOpReturnsFault(t *testing.T) {
	c, bus, _ := newTestCPU()
	c.Reset(false)
	bus.mem[0x0100] = 0x27 // DAA, named in no block-0 variant
	_, err := c.Step()
	var f *fault.Fault
	require.ErrorAs(t, err, &f)
	assert.Equal(t, fault.UndecodedOpcode, f.Kind)
}

func TestHALTSuspendsStepping(t *testing.T) {
	c, bus, _ := newTestCPU()
	c.Reset(false)
	bus.mem[0x0100] = 0x76 // HALT
	_, err := c.Step()
	require.NoError(t, err)
	assert.True(t, c.Halted())

	pc := c.PC
	cycles, err := c.Step()
	require.NoError(t, err)
	assert.Equal(t, 1, cycles)
	assert.Equal(t, pc, c.PC, "halted CPU does not advance PC")
}

func TestPendingInterruptWakesHaltEvenWithoutIME(t *testing.T) {
	c, _, irq := newTestCPU()
	c.Reset(false)
	c.halted = true
	irq.WriteIE(0x01)
	irq.Request(interrupts.VBlank)

	cycles, serviced := c.ServiceInterrupt()
	assert.False(t, serviced)
	assert.Equal(t, 0, cycles)
	assert.False(t, c.Halted())
}

func TestServiceInterruptPushesPCAndJumps(t *testing.T) {
	c, bus, irq := newTestCPU()
	c.Reset(false)
	c.ime = true
	c.PC = 0x1234
	irq.WriteIE(0x01)
	irq.Request(interrupts.VBlank)

	cycles, serviced := c.ServiceInterrupt()
	assert.True(t, serviced)
	assert.Equal(t, 5, cycles)
	assert.Equal(t, uint16(0x0040), c.PC)
	assert.False(t, c.IME())
	assert.Equal(t, uint8(0x12), bus.mem[c.SP+1])
	assert.Equal(t, uint8(0x34), bus.mem[c.SP])
}

func TestSTOPInvokesHook(t *testing.T) {
	c, bus, _ := newTestCPU()
	c.Reset(false)
	var stopped bool
	c.SetStopHook(func() { stopped = true })
	bus.mem[0x0100] = 0x10
	bus.mem[0x0101] = 0x00
	_, err := c.Step()
	require.NoError(t, err)
	assert.True(t, stopped)
}

func TestIncDecR8FlagsLeaveCarryUnchanged(t *testing.T) {
	c, _, _ := newTestCPU()
	c.SetFlag(FlagC, true)
	c.B = 0xFF
	_, _ = c.execIncR8(Instruction{Kind: KindIncR8, R8Dst: r8B})
	assert.Equal(t, uint8(0), c.B)
	assert.True(t, c.Flag(FlagZ))
	assert.True(t, c.Flag(FlagH))
	assert.True(t, c.Flag(FlagC), "INC must not touch carry")
}

func TestAddHLR16HalfCarryAndCarry(t *testing.T) {
	c, _, _ := newTestCPU()
	c.HL.SetUint16(0x0FFF)
	c.BC.SetUint16(0x0001)
	c.SetFlag(FlagZ, true)
	_, _ = c.execAddHLR16(Instruction{Kind: KindAddHLR16, R16: r16BC})
	assert.Equal(t, uint16(0x1000), c.HL.Uint16())
	assert.True(t, c.Flag(FlagH))
	assert.False(t, c.Flag(FlagC))
	assert.True(t, c.Flag(FlagZ), "ADD HL,r16 leaves Z unchanged")
}

func TestALUFlagsExhaustiveADD(t *testing.T) {
	for a := 0; a < 256; a++ {
		for b := 0; b < 256; b++ {
			c, _, _ := newTestCPU()
			c.A = uint8(a)
			c.aluAdd(uint8(b), false)

			want := uint8(a + b)
			assert.Equal(t, want, c.A)
			assert.Equal(t, want == 0, c.Flag(FlagZ))
			assert.False(t, c.Flag(FlagN))
			assert.Equal(t, (a&0x0F)+(b&0x0F) > 0x0F, c.Flag(FlagH))
			assert.Equal(t, a+b > 0xFF, c.Flag(FlagC))
		}
	}
}

func TestALUFlagsExhaustiveAND(t *testing.T) {
	for a := 0; a < 256; a++ {
		for b := 0; b < 256; b++ {
			c, _, _ := newTestCPU()
			c.A = uint8(a)
			c.B = uint8(b)
			_, _ = c.execALU(Instruction{Kind: KindALU, Alu: AluAND, R8Src: r8B})

			want := uint8(a) & uint8(b)
			assert.Equal(t, want, c.A)
			assert.Equal(t, want == 0, c.Flag(FlagZ))
			assert.False(t, c.Flag(FlagN))
			assert.True(t, c.Flag(FlagH))
			assert.False(t, c.Flag(FlagC))
		}
	}
}

func TestALUFlagsExhaustiveSUB(t *testing.T) {
	for a := 0; a < 256; a++ {
		for b := 0; b < 256; b++ {
			c, _, _ := newTestCPU()
			c.A = uint8(a)
			c.B = uint8(b)
			_, _ = c.execALU(Instruction{Kind: KindALU, Alu: AluSUB, R8Src: r8B})

			want := uint8(a - b)
			assert.Equal(t, want, c.A)
			assert.Equal(t, want == 0, c.Flag(FlagZ))
			assert.True(t, c.Flag(FlagN))
			assert.Equal(t, (a&0x0F) < (b&0x0F), c.Flag(FlagH))
			assert.Equal(t, a < b, c.Flag(FlagC))
		}
	}
}

func TestALUFlagsExhaustiveSBC(t *testing.T) {
	for a := 0; a < 256; a++ {
		for b := 0; b < 256; b++ {
			for _, carryIn := range []bool{false, true} {
				c, _, _ := newTestCPU()
				c.A = uint8(a)
				c.B = uint8(b)
				c.SetFlag(FlagC, carryIn)
				_, _ = c.execALU(Instruction{Kind: KindALU, Alu: AluSBC, R8Src: r8B})

				cin := 0
				if carryIn {
					cin = 1
				}
				want := uint8(a - b - cin)
				assert.Equal(t, want, c.A)
				assert.Equal(t, want == 0, c.Flag(FlagZ))
				assert.True(t, c.Flag(FlagN))
				assert.Equal(t, (a&0x0F) < (b&0x0F)+cin, c.Flag(FlagH))
				assert.Equal(t, a-b-cin < 0, c.Flag(FlagC))
			}
		}
	}
}

func TestALUFlagsExhaustiveOR(t *testing.T) {
	for a := 0; a < 256; a++ {
		for b := 0; b < 256; b++ {
			c, _, _ := newTestCPU()
			c.A = uint8(a)
			c.B = uint8(b)
			_, _ = c.execALU(Instruction{Kind: KindALU, Alu: AluOR, R8Src: r8B})

			want := uint8(a) | uint8(b)
			assert.Equal(t, want, c.A)
			assert.Equal(t, want == 0, c.Flag(FlagZ))
			assert.False(t, c.Flag(FlagN))
			assert.False(t, c.Flag(FlagH))
			assert.False(t, c.Flag(FlagC))
		}
	}
}

func TestALUFlagsExhaustiveXOR(t *testing.T) {
	for a := 0; a < 256; a++ {
		for b := 0; b < 256; b++ {
			c, _, _ := newTestCPU()
			c.A = uint8(a)
			c.B = uint8(b)
			_, _ = c.execALU(Instruction{Kind: KindALU, Alu: AluXOR, R8Src: r8B})

			want := uint8(a) ^ uint8(b)
			assert.Equal(t, want, c.A)
			assert.Equal(t, want == 0, c.Flag(FlagZ))
			assert.False(t, c.Flag(FlagN))
			assert.False(t, c.Flag(FlagH))
			assert.False(t, c.Flag(FlagC))
		}
	}
}

func TestALUFlagsExhaustiveCP(t *testing.T) {
	for a := 0; a < 256; a++ {
		for b := 0; b < 256; b++ {
			c, _, _ := newTestCPU()
			c.A = uint8(a)
			c.B = uint8(b)
			_, _ = c.execALU(Instruction{Kind: KindALU, Alu: AluCP, R8Src: r8B})

			assert.Equal(t, uint8(a), c.A, "CP must not write A")
			want := uint8(a - b)
			assert.Equal(t, want == 0, c.Flag(FlagZ))
			assert.True(t, c.Flag(FlagN))
			assert.Equal(t, (a&0x0F) < (b&0x0F), c.Flag(FlagH))
			assert.Equal(t, a < b, c.Flag(FlagC))
		}
	}
}

func TestLDR16MemAWithHLIncDec(t *testing.T) {
	c, bus, _ := newTestCPU()
	c.HL.SetUint16(0xC000)
	c.A = 0x42
	_, _ = c.execLDR16MemA(Instruction{Kind: KindLDR16MemA, R16Mem: r16memHLInc})
	assert.Equal(t, uint8(0x42), bus.mem[0xC000])
	assert.Equal(t, uint16(0xC001), c.HL.Uint16())
}
