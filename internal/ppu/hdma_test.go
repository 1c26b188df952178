package ppu

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gbcore/internal/memory/banked"
)

func TestHDMAGeneralModeCopiesOneBlockPerTick(t *testing.T) {
	bus := &fakeBus{}
	for i := 0; i < 32; i++ {
		bus.mem[0x4000+i] = uint8(i + 1)
	}
	vram := banked.NewVRAM()
	h := NewHDMA(bus, vram)

	h.WriteHDMA1(0x40)
	h.WriteHDMA2(0x00)
	h.WriteHDMA3(0x00)
	h.WriteHDMA4(0x00)
	h.WriteHDMA5(0x01) // general mode, 2 blocks (32 bytes)

	assert.True(t, h.Active())
	h.Tick()
	assert.Equal(t, uint8(1), vram.Read(0x0000))
	assert.True(t, h.Active())
	h.Tick()
	assert.False(t, h.Active())
	assert.Equal(t, uint8(32), vram.Read(0x001F))
	assert.Equal(t, uint8(0xFF), h.ReadHDMA5())
}

func TestHDMAHBlankModeCopiesOneBlockPerEntry(t *testing.T) {
	bus := &fakeBus{}
	bus.mem[0x4000] = 0x11
	vram := banked.NewVRAM()
	h := NewHDMA(bus, vram)
	h.WriteHDMA1(0x40)
	h.WriteHDMA5(0x81) // hblank mode, 1 block

	h.Tick() // no-op in hblank mode
	assert.Equal(t, uint8(0), vram.Read(0x0000))

	h.OnHBlankEntry()
	assert.Equal(t, uint8(0x11), vram.Read(0x0000))
	assert.False(t, h.Active())
}

func TestHDMAHBlankCancellationReportsRemainingWithBit7(t *testing.T) {
	bus := &fakeBus{}
	vram := banked.NewVRAM()
	h := NewHDMA(bus, vram)
	h.WriteHDMA1(0x40)
	h.WriteHDMA5(0x83) // hblank mode, 4 blocks

	h.OnHBlankEntry() // 3 remaining
	h.WriteHDMA5(0x00) // cancel
	assert.False(t, h.Active())
	assert.Equal(t, uint8(0x80|2), h.ReadHDMA5())
}
