package cartridge

import "gbcore/internal/fault"

// MBC5 implements the MBC5 memory bank controller: a 9-bit ROM bank
// selector, a 4-bit RAM bank selector, and a RAM-enable latch. Unlike
// MBC1, ROM bank 0 is not remapped to bank 1 - writing 0 to the bank
// selector really does select physical bank 0 for the 0x4000-0x7FFF
// window. The selector only affects that window; 0x0000-0x3FFF always
// reads physical bank 0.
type MBC5 struct {
	rom []byte
	ram []byte

	ramEnabled bool
	romBankLo  uint8 // low 8 bits of the ROM bank selector
	romBankHi  uint8 // bit 0 holds the 9th bit of the selector
	ramBank    uint8 // low 4 bits used

	header Header
}

// NewMBC5 constructs an MBC5 controller over the given ROM image.
func NewMBC5(rom []byte, h Header) *MBC5 {
	return &MBC5{
		rom:       rom,
		ram:       make([]byte, h.RAMSize),
		romBankLo: 1,
		header:    h,
	}
}

func (m *MBC5) romBank() int {
	return int(m.romBankLo) | int(m.romBankHi&0x1)<<8
}

func (m *MBC5) Read(addr uint16) (uint8, error) {
	switch {
	case addr < 0x4000:
		return m.rom[addr], nil
	case addr < 0x8000:
		off := m.romBank()*0x4000 + int(addr&0x3FFF)
		if off >= len(m.rom) {
			return 0, nil
		}
		return m.rom[off], nil
	case addr >= 0xA000 && addr < 0xC000:
		if !m.ramEnabled {
			return 0, nil
		}
		off := int(m.ramBank)*0x2000 + int(addr&0x1FFF)
		if off >= len(m.ram) {
			return 0, nil
		}
		return m.ram[off], nil
	}
	return 0, fault.New(fault.InvalidAddress, "mbc5: read from %#04x", addr)
}

func (m *MBC5) Write(addr uint16, v uint8) error {
	switch {
	case addr < 0x2000:
		// minimal model: only the canonical enable/disable values move state
		switch v {
		case 0x0A:
			m.ramEnabled = true
		case 0x00:
			m.ramEnabled = false
		}
		return nil
	case addr < 0x3000:
		m.romBankLo = v
		return nil
	case addr < 0x4000:
		m.romBankHi = v & 0x1
		return nil
	case addr < 0x6000:
		m.ramBank = v & 0x0F
		return nil
	case addr >= 0xA000 && addr < 0xC000:
		if !m.ramEnabled {
			return nil
		}
		off := int(m.ramBank)*0x2000 + int(addr&0x1FFF)
		if off < len(m.ram) {
			m.ram[off] = v
		}
		return nil
	}
	return fault.New(fault.InvalidAddress, "mbc5: write to %#04x", addr)
}

// LoadRAM replaces the external RAM contents, e.g. from a save file.
func (m *MBC5) LoadRAM(data []byte) { copy(m.ram, data) }

// SaveRAM returns the external RAM contents.
func (m *MBC5) SaveRAM() []byte { return m.ram }
