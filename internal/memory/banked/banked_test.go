package banked

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVRAMBanksAreIndependent(t *testing.T) {
	v := NewVRAM()
	v.Write(0x0000, 0x11)
	v.SelectBank(1)
	v.Write(0x0000, 0x22)
	assert.Equal(t, uint8(0x22), v.Read(0x0000))
	v.SelectBank(0)
	assert.Equal(t, uint8(0x11), v.Read(0x0000))
}

func TestVRAMSelectBankMasksToOneBit(t *testing.T) {
	v := NewVRAM()
	v.SelectBank(0xFE)
	assert.Equal(t, uint8(0), v.Bank())
	v.SelectBank(0xFF)
	assert.Equal(t, uint8(1), v.Bank())
}

func TestVRAMExplicitBankAccessBypassesSelector(t *testing.T) {
	v := NewVRAM()
	v.WriteBank(1, 0x10, 0x55)
	assert.Equal(t, uint8(0x55), v.ReadBank(1, 0x10))
	assert.Equal(t, uint8(0), v.Read(0x10))
}

func TestWRAMBank0Fixed(t *testing.T) {
	w := NewWRAM()
	w.Write(0x0500, 0x42)
	w.SelectBank(3)
	assert.Equal(t, uint8(0x42), w.Read(0x0500))
}

func TestWRAMSwitchableBanks(t *testing.T) {
	w := NewWRAM()
	w.SelectBank(2)
	w.Write(0x1500, 0xAA)
	w.SelectBank(5)
	w.Write(0x1500, 0xBB)
	w.SelectBank(2)
	assert.Equal(t, uint8(0xAA), w.Read(0x1500))
}

func TestWRAMSVBKZeroSelectsBankOne(t *testing.T) {
	w := NewWRAM()
	w.SelectBank(5)
	w.SelectBank(0)
	assert.Equal(t, uint8(1), w.Bank())
}

func TestCRAMAutoIncrement(t *testing.T) {
	c := NewCRAM()
	c.WriteSpec(0x80) // index 0, auto-increment
	c.WriteData(0x34)
	c.WriteData(0x12)
	assert.Equal(t, uint8(2), c.ReadSpec()&0x3F)

	r, g, b := c.Color(0, 0)
	assert.Equal(t, uint8(0x14), r)
	assert.Equal(t, uint8(0x11), g)
	assert.Equal(t, uint8(0x04), b)
}

func TestCRAMWithoutAutoIncrementStaysPut(t *testing.T) {
	c := NewCRAM()
	c.WriteSpec(0x05)
	c.WriteData(0x7F)
	assert.Equal(t, uint8(0x7F), c.ReadData())
	assert.Equal(t, uint8(5), c.ReadSpec()&0x3F)
}

func TestCRAMIndexWrapsAt64(t *testing.T) {
	c := NewCRAM()
	c.WriteSpec(0x80 | 63)
	c.WriteData(0x01)
	assert.Equal(t, uint8(0), c.ReadSpec()&0x3F)
}
