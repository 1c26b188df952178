package timer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gbcore/internal/interrupts"
)

func TestTIMAOverflowReloadsAndInterrupts(t *testing.T) {
	irq := interrupts.NewController()
	c := NewController(irq)

	c.WriteTAC(0x05) // enabled, period = 4 M-cycles
	c.WriteTIMA(0xFE)
	c.WriteTMA(0xAB)

	for i := 0; i < 8; i++ {
		c.Tick(false)
	}

	assert.Equal(t, uint8(0xAB), c.ReadTIMA())
	assert.True(t, irq.ReadIF()&0x04 != 0, "timer interrupt flag should be set")
}

func TestDIVIncrementsEvery64MCycles(t *testing.T) {
	irq := interrupts.NewController()
	c := NewController(irq)

	for i := 0; i < 63; i++ {
		c.Tick(false)
	}
	assert.Equal(t, uint8(0), c.ReadDIV())
	c.Tick(false)
	assert.Equal(t, uint8(1), c.ReadDIV())
}

func TestDIVWriteResets(t *testing.T) {
	irq := interrupts.NewController()
	c := NewController(irq)
	for i := 0; i < 200; i++ {
		c.Tick(false)
	}
	assert.NotEqual(t, uint8(0), c.ReadDIV())
	c.WriteDIV(0xFF)
	assert.Equal(t, uint8(0), c.ReadDIV())
}

func TestFrozenDuringStop(t *testing.T) {
	irq := interrupts.NewController()
	c := NewController(irq)
	c.WriteTAC(0x05)
	for i := 0; i < 100; i++ {
		c.Tick(true)
	}
	assert.Equal(t, uint8(0), c.ReadDIV())
	assert.Equal(t, uint8(0), c.ReadTIMA())
}

func TestDisabledTimerDoesNotIncrement(t *testing.T) {
	irq := interrupts.NewController()
	c := NewController(irq)
	c.WriteTAC(0x01) // period selected but enable bit clear
	for i := 0; i < 100; i++ {
		c.Tick(false)
	}
	assert.Equal(t, uint8(0), c.ReadTIMA())
}
