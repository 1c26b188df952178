// Package cartridge owns cartridge ROM/RAM storage and bank-mapped
// access. It parses the Game Boy header and dispatches to the
// appropriate memory bank controller.
package cartridge

import "gbcore/internal/fault"

// MemoryBankController is the interface every MBC implements. The
// memory map talks to a cartridge purely through this interface, so a
// future MBC1/MBC3 implementation slots in without touching anything
// else (spec.md §4.1 specifies only MBC5; this interface is what lets
// the rest of the core stay agnostic of that restriction).
type MemoryBankController interface {
	Read(addr uint16) (uint8, error)
	Write(addr uint16, v uint8) error
}

// RAMPersister is implemented by controllers that carry battery-backed
// external RAM, for host save-file round-tripping.
type RAMPersister interface {
	LoadRAM(data []byte)
	SaveRAM() []byte
}

// Cartridge aggregates a parsed header with its memory bank controller.
type Cartridge struct {
	MemoryBankController
	Header Header
}

// New parses the header at 0x0100-0x014F and constructs the
// appropriate MBC. A ROM shorter than 0x150 bytes, or shorter than the
// size its header declares, is a BadHeader fault, matching spec.md §7.
func New(rom []byte) (*Cartridge, error) {
	if len(rom) < HeaderOffset+HeaderSize {
		return nil, fault.New(fault.BadHeader, "rom is %d bytes, need at least %#x", len(rom), HeaderOffset+HeaderSize)
	}

	header, err := ParseHeader(rom[HeaderOffset : HeaderOffset+HeaderSize])
	if err != nil {
		return nil, fault.New(fault.BadHeader, "%v", err)
	}
	if uint(len(rom)) < header.ROMSize {
		return nil, fault.New(fault.BadHeader, "rom is %d bytes, header declares %d", len(rom), header.ROMSize)
	}

	var mbc MemoryBankController
	switch header.CartridgeType {
	case ROM, ROMRAM, ROMRAMBATT:
		mbc = newROMOnly(rom, header)
	case MBC5, MBC5RAM, MBC5RAMBATT, MBC5RUMBLE, MBC5RUMBLERAM, MBC5RUMBLERAMBATT:
		mbc = NewMBC5(rom, header)
	default:
		return nil, fault.New(fault.UnsupportedMBC, "cartridge type %s (%#02x) is not implemented", header.CartridgeType, uint8(header.CartridgeType))
	}

	return &Cartridge{MemoryBankController: mbc, Header: header}, nil
}

// romOnly backs cartridge type 0x00/0x08/0x09: no bank switching, an
// optional flat RAM window. Grounded on the teacher's NewROMCartridge,
// which this core generalizes to fail like every other MBC instead of
// panicking on an out-of-range address.
type romOnly struct {
	rom []byte
	ram []byte
}

func newROMOnly(rom []byte, h Header) *romOnly {
	size := len(rom)
	if size < 0x8000 {
		padded := make([]byte, 0x8000)
		copy(padded, rom)
		rom = padded
	}
	return &romOnly{rom: rom, ram: make([]byte, h.RAMSize)}
}

func (r *romOnly) Read(addr uint16) (uint8, error) {
	switch {
	case addr < 0x8000:
		return r.rom[addr], nil
	case addr >= 0xA000 && addr < 0xC000:
		off := int(addr - 0xA000)
		if off >= len(r.ram) {
			return 0xFF, nil
		}
		return r.ram[off], nil
	}
	return 0, fault.New(fault.InvalidAddress, "romOnly: read from %#04x", addr)
}

func (r *romOnly) Write(addr uint16, v uint8) error {
	switch {
	case addr < 0x8000:
		return nil // writes to a ROM-only cartridge are ignored, not fatal
	case addr >= 0xA000 && addr < 0xC000:
		off := int(addr - 0xA000)
		if off < len(r.ram) {
			r.ram[off] = v
		}
		return nil
	}
	return fault.New(fault.InvalidAddress, "romOnly: write to %#04x", addr)
}

func (r *romOnly) LoadRAM(data []byte) { copy(r.ram, data) }
func (r *romOnly) SaveRAM() []byte     { return r.ram }
