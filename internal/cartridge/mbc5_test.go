package cartridge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gbcore/internal/fault"
)

func makeROM(banks int) []byte {
	rom := make([]byte, banks*0x4000)
	for b := 0; b < banks; b++ {
		for i := 0; i < 0x4000; i++ {
			rom[b*0x4000+i] = byte(b)
		}
	}
	return rom
}

func TestMBC5Banking(t *testing.T) {
	rom := makeROM(16)
	h := Header{RAMSize: 0x2000}
	m := NewMBC5(rom, h)

	require.NoError(t, m.Write(0x2000, 0x05))
	v, err := m.Read(0x4000)
	require.NoError(t, err)
	assert.Equal(t, byte(0x05), v)
}

func TestMBC5Bank0NotRemapped(t *testing.T) {
	rom := makeROM(4)
	m := NewMBC5(rom, Header{})

	require.NoError(t, m.Write(0x2000, 0x00))
	v, err := m.Read(0x0000)
	require.NoError(t, err)
	assert.Equal(t, byte(0x00), v, "bank 0 at 0x0000 is always physical bank 0")

	v, err = m.Read(0x4000)
	require.NoError(t, err)
	assert.Equal(t, byte(0x00), v, "selector 0 maps bank 0 into the switchable window too, unlike MBC1")
}

func TestMBC5HighBankBit(t *testing.T) {
	rom := makeROM(1 << 9)
	m := NewMBC5(rom, Header{})

	require.NoError(t, m.Write(0x2000, 0xFF))
	require.NoError(t, m.Write(0x3000, 0x01))

	v, err := m.Read(0x4000)
	require.NoError(t, err)
	assert.Equal(t, byte(0xFF), v)
}

func TestMBC5RAMEnable(t *testing.T) {
	m := NewMBC5(makeROM(2), Header{RAMSize: 0x2000})

	v, err := m.Read(0xA000)
	require.NoError(t, err)
	assert.Equal(t, byte(0), v, "ram reads 0 while disabled")

	require.NoError(t, m.Write(0x0000, 0x0A))
	require.NoError(t, m.Write(0xA000, 0x42))
	v, err = m.Read(0xA000)
	require.NoError(t, err)
	assert.Equal(t, byte(0x42), v)

	require.NoError(t, m.Write(0x0000, 0x00))
	v, err = m.Read(0xA000)
	require.NoError(t, err)
	assert.Equal(t, byte(0), v, "ram reads 0 once disabled again")
}

func TestMBC5OtherEnableValuesAreNoop(t *testing.T) {
	m := NewMBC5(makeROM(2), Header{RAMSize: 0x2000})
	require.NoError(t, m.Write(0x0000, 0x0A))
	require.NoError(t, m.Write(0x0000, 0x55)) // neither 0x0A nor 0x00: leaves state unchanged
	v, err := m.Read(0xA000)
	require.NoError(t, err)
	_ = v // still enabled; writing should succeed
	require.NoError(t, m.Write(0xA000, 0x11))
	v, err = m.Read(0xA000)
	require.NoError(t, err)
	assert.Equal(t, byte(0x11), v)
}

func TestMBC5InvalidAddress(t *testing.T) {
	m := NewMBC5(makeROM(2), Header{})
	_, err := m.Read(0xC000)
	require.Error(t, err)
	var f *fault.Fault
	require.ErrorAs(t, err, &f)
	assert.Equal(t, fault.InvalidAddress, f.Kind)
}
