package ppu

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gbcore/internal/interrupts"
	"gbcore/internal/memory/banked"
)

type fakeBus struct {
	mem [0x10000]uint8
}

func (b *fakeBus) Read(addr uint16) uint8 { return b.mem[addr] }

func TestOAMDMACopies160BytesOverride160Ticks(t *testing.T) {
	bus := &fakeBus{}
	for i := 0; i < 160; i++ {
		bus.mem[0x4000+i] = uint8(i)
	}
	p := New(banked.NewVRAM(), banked.NewCRAM(), banked.NewCRAM(), interrupts.NewController(), false)
	d := NewOAMDMA(bus, p)

	d.Trigger(0x40)
	for i := 0; i < 159; i++ {
		assert.True(t, d.Active())
		d.Tick()
	}
	assert.True(t, d.Active())
	d.Tick()
	assert.False(t, d.Active())

	for i := 0; i < 160; i++ {
		assert.Equal(t, uint8(i), p.ReadOAM(uint16(i)))
	}
}

func TestOAMDMARestartsFromNewSource(t *testing.T) {
	bus := &fakeBus{}
	bus.mem[0x4000] = 0xAA
	bus.mem[0x5000] = 0xBB
	p := New(banked.NewVRAM(), banked.NewCRAM(), banked.NewCRAM(), interrupts.NewController(), false)
	d := NewOAMDMA(bus, p)

	d.Trigger(0x40)
	d.Tick()
	d.Trigger(0x50) // restart mid-transfer
	d.Tick()
	assert.Equal(t, uint8(0xBB), p.ReadOAM(0))
}
