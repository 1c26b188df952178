package cartridge

import "fmt"

// Mode reports whether a cartridge targets the original DMG, is
// backward-compatible with it while supporting CGB, or is CGB-only.
type Mode uint8

const (
	ModeDMGOnly Mode = iota
	ModeSupportsCGB
	ModeCGBOnly
)

// Type is the cartridge-type byte at 0x0147, which selects the MBC.
type Type uint8

const (
	ROM               Type = 0x00
	MBC1              Type = 0x01
	MBC1RAM           Type = 0x02
	MBC1RAMBATT       Type = 0x03
	MBC2              Type = 0x05
	MBC2BATT          Type = 0x06
	ROMRAM            Type = 0x08
	ROMRAMBATT        Type = 0x09
	MBC3TIMERBATT     Type = 0x0F
	MBC3TIMERRAMBATT  Type = 0x10
	MBC3              Type = 0x11
	MBC3RAM           Type = 0x12
	MBC3RAMBATT       Type = 0x13
	MBC5              Type = 0x19
	MBC5RAM           Type = 0x1A
	MBC5RAMBATT       Type = 0x1B
	MBC5RUMBLE        Type = 0x1C
	MBC5RUMBLERAM     Type = 0x1D
	MBC5RUMBLERAMBATT Type = 0x1E
)

func (t Type) String() string {
	switch t {
	case ROM:
		return "ROM"
	case MBC1, MBC1RAM, MBC1RAMBATT:
		return "MBC1"
	case MBC2, MBC2BATT:
		return "MBC2"
	case ROMRAM, ROMRAMBATT:
		return "ROM+RAM"
	case MBC3, MBC3RAM, MBC3RAMBATT, MBC3TIMERBATT, MBC3TIMERRAMBATT:
		return "MBC3"
	case MBC5, MBC5RAM, MBC5RAMBATT, MBC5RUMBLE, MBC5RUMBLERAM, MBC5RUMBLERAMBATT:
		return "MBC5"
	default:
		return fmt.Sprintf("Type(%#02x)", uint8(t))
	}
}

// HasRAM reports whether the cartridge type carries external RAM.
func (t Type) HasRAM() bool {
	switch t {
	case MBC1RAM, MBC1RAMBATT, ROMRAM, ROMRAMBATT, MBC3RAM, MBC3RAMBATT,
		MBC3TIMERRAMBATT, MBC5RAM, MBC5RAMBATT, MBC5RUMBLERAM, MBC5RUMBLERAMBATT:
		return true
	default:
		return false
	}
}

var ramSizes = map[uint8]uint{
	0x00: 0,
	0x01: 2 * 1024, // unofficial, some homebrew headers use it
	0x02: 8 * 1024,
	0x03: 32 * 1024,
	0x04: 128 * 1024,
	0x05: 64 * 1024,
}

// Header is the parsed 0x0100-0x014F cartridge header.
type Header struct {
	Title            string
	ManufacturerCode string
	Mode             Mode
	NewLicenseeCode  string
	SGBSupported     bool
	CartridgeType    Type
	ROMSize          uint
	RAMSize          uint
	CountryCode      uint8
	OldLicenseeCode  uint8
	MaskROMVersion   uint8
	HeaderChecksum   uint8
	GlobalChecksum   uint16
}

// HeaderSize is the span of the header within the ROM image, 0x0100-0x014F.
const HeaderSize = 0x50

// HeaderOffset is where the header begins within the ROM image.
const HeaderOffset = 0x0100

// ParseHeader parses a HeaderSize-byte slice taken from
// rom[HeaderOffset:HeaderOffset+HeaderSize].
func ParseHeader(h []byte) (Header, error) {
	if len(h) != HeaderSize {
		return Header{}, fmt.Errorf("cartridge: header must be %d bytes, got %d", HeaderSize, len(h))
	}

	var header Header
	switch h[0x43] {
	case 0x80:
		header.Mode = ModeSupportsCGB
	case 0xC0:
		header.Mode = ModeCGBOnly
	default:
		header.Mode = ModeDMGOnly
	}

	if header.Mode == ModeDMGOnly {
		header.Title = trimTitle(h[0x34:0x44])
	} else {
		header.Title = trimTitle(h[0x34:0x43])
	}

	header.ManufacturerCode = string(h[0x3F:0x43])
	header.NewLicenseeCode = string(h[0x44:0x46])
	header.SGBSupported = h[0x46] == 0x03
	header.CartridgeType = Type(h[0x47])
	header.ROMSize = (32 * 1024) << h[0x48]
	header.RAMSize = ramSizes[h[0x49]]
	header.CountryCode = h[0x4A]
	header.OldLicenseeCode = h[0x4B]
	header.MaskROMVersion = h[0x4C]
	header.HeaderChecksum = h[0x4D]
	header.GlobalChecksum = uint16(h[0x4E])<<8 | uint16(h[0x4F])

	return header, nil
}

func trimTitle(b []byte) string {
	for i, c := range b {
		if c == 0 {
			return string(b[:i])
		}
	}
	return string(b)
}

// GameboyColor reports whether the header declares any CGB support.
func (h Header) GameboyColor() bool {
	return h.Mode == ModeSupportsCGB || h.Mode == ModeCGBOnly
}

func (h Header) String() string {
	return fmt.Sprintf("%q (%s) ROM=%dKiB RAM=%dKiB", h.Title, h.CartridgeType, h.ROMSize/1024, h.RAMSize/1024)
}
